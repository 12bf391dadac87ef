package script

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"rewind/internal/domain"
)

// Generator turns a feed into a validated multi-section script.
type Generator struct {
	model  TextModel
	logger *slog.Logger
}

func NewGenerator(model TextModel, logger *slog.Logger) *Generator {
	return &Generator{
		model:  model,
		logger: logger.With("component", "script"),
	}
}

// Generate asks the model for a script. The answer is never repaired beyond
// stripping one enclosing code fence; it is either valid or ErrMalformedScript.
func (g *Generator) Generate(ctx context.Context, feed *domain.Feed) (*domain.Script, error) {
	raw, err := g.model.Complete(ctx, Instruction, feed.Text(), ResponseSchema)
	if err != nil {
		return nil, fmt.Errorf("complete script: %w", err)
	}

	script, err := Parse(raw)
	if err != nil {
		g.logger.Warn("model returned a malformed script",
			"event_id", feed.EventID,
			"error", err,
		)
		return nil, err
	}

	g.logger.Debug("script generated",
		"event_id", feed.EventID,
		"sections", len(script.Sections),
	)
	return script, nil
}

type rawScript struct {
	Sections []rawSection `json:"sections"`
}

type rawSection struct {
	ID          *int            `json:"id"`
	Narration   *string         `json:"narration"`
	UIComponent json.RawMessage `json:"ui_component"`
}

// Parse decodes and validates a script document.
func Parse(raw string) (*domain.Script, error) {
	body := stripFence(raw)

	var doc rawScript
	dec := json.NewDecoder(strings.NewReader(body))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", domain.ErrMalformedScript, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", domain.ErrMalformedScript)
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("%w: no sections", domain.ErrMalformedScript)
	}

	script := &domain.Script{Sections: make([]domain.Section, 0, len(doc.Sections))}
	for pos, s := range doc.Sections {
		if s.ID == nil {
			return nil, fmt.Errorf("%w: section %d has no id", domain.ErrMalformedScript, pos)
		}
		if *s.ID != pos {
			return nil, fmt.Errorf("%w: section at position %d has id %d", domain.ErrMalformedScript, pos, *s.ID)
		}
		if s.Narration == nil || strings.TrimSpace(*s.Narration) == "" {
			return nil, fmt.Errorf("%w: section %d has no narration", domain.ErrMalformedScript, pos)
		}
		if len(bytes.TrimSpace(s.UIComponent)) == 0 || string(bytes.TrimSpace(s.UIComponent)) == "null" {
			return nil, fmt.Errorf("%w: section %d has no ui_component", domain.ErrMalformedScript, pos)
		}

		component, err := domain.DecodeComponent(s.UIComponent)
		if err != nil {
			return nil, fmt.Errorf("%w: section %d: %w", domain.ErrMalformedScript, pos, err)
		}

		script.Sections = append(script.Sections, domain.Section{
			ID:          pos,
			Narration:   strings.TrimSpace(*s.Narration),
			UIComponent: component,
		})
	}

	return script, nil
}

// stripFence removes a single ``` or ```json fence around the document.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{[") {
		s = s[nl+1:]
	}
	return strings.TrimSpace(s)
}
