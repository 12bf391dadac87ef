package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiConfig targets Vertex AI through Project and Location, or the
// Gemini API when APIKey is set.
type GeminiConfig struct {
	Project  string
	Location string
	Model    string
	APIKey   string
	BaseURL  string
}

// Gemini selects clip ranges from videos stored in Cloud Storage.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, config GeminiConfig) (*Gemini, error) {
	if config.Model == "" {
		return nil, fmt.Errorf("%w: missing model name", ErrInvalidConfig)
	}

	cc := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{BaseURL: config.BaseURL},
	}
	switch {
	case config.APIKey != "":
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = config.APIKey
	case config.Project != "" && config.Location != "":
		cc.Backend = genai.BackendVertexAI
		cc.Project = config.Project
		cc.Location = config.Location
	default:
		return nil, fmt.Errorf("%w: missing project or location", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, model: config.Model}, nil
}

func (g *Gemini) SelectRange(ctx context.Context, videoRef string, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(videoRef, "video/mp4"),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
