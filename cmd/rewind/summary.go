package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rewind/internal/domain"
)

var (
	headerColor  = lipgloss.Color("#F780FF")
	sectionColor = lipgloss.Color("#BD93F9")
	numberColor  = lipgloss.Color("#FF79C6")
	detailColor  = lipgloss.Color("#E9E9F4")
	borderColor  = lipgloss.Color("#6272A4")
	summaryColor = lipgloss.Color("#8BE9FD")
	warnColor    = lipgloss.Color("#FFB86C")
)

const (
	idWidth       = 9
	durationWidth = 10
	typeWidth     = 16
	detailWidth   = 48
)

func renderProgress(stage domain.Stage, section int) string {
	style := lipgloss.NewStyle().Foreground(summaryColor).Italic(true)
	if section >= 0 {
		return style.Render(fmt.Sprintf("› %s (section %d)", stage, section))
	}
	return style.Render("› " + string(stage))
}

// renderSummary draws one row per section followed by the total duration.
func renderSummary(t *domain.Timeline) string {
	headerStyle := lipgloss.NewStyle().Foreground(headerColor).Bold(true).Padding(0, 1)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	cell := func(color lipgloss.Color, width int) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(color).Padding(0, 1).Width(width)
	}

	var b strings.Builder

	headers := []string{
		headerStyle.Width(idWidth).Render("SECTION"),
		headerStyle.Width(durationWidth).Render("SECONDS"),
		headerStyle.Width(typeWidth).Render("COMPONENT"),
		headerStyle.Width(detailWidth).Render("DETAIL"),
	}
	b.WriteString(strings.Join(headers, borderStyle.Render("│")) + "\n")

	separator := []string{
		strings.Repeat("─", idWidth),
		strings.Repeat("─", durationWidth),
		strings.Repeat("─", typeWidth),
		strings.Repeat("─", detailWidth),
	}
	b.WriteString(borderStyle.Render(strings.Join(separator, "┼")) + "\n")

	for _, s := range t.Sections {
		kind, detail := describeVisual(s.Components)
		typeColor := sectionColor
		if kind == domain.KindUnavailable {
			typeColor = warnColor
		}

		cells := []string{
			cell(sectionColor, idWidth).Render(fmt.Sprintf("%d", s.SectionID)),
			cell(numberColor, durationWidth).Align(lipgloss.Right).Render(fmt.Sprintf("%.1f", s.SectionDuration)),
			cell(typeColor, typeWidth).Render(string(kind)),
			cell(detailColor, detailWidth).Render(detail),
		}
		b.WriteString(strings.Join(cells, borderStyle.Render("│")) + "\n")
	}

	summary := lipgloss.NewStyle().Foreground(summaryColor).Italic(true)
	b.WriteString("\n")
	b.WriteString(summary.Render(fmt.Sprintf("Game %s · %d sections · %.1fs total",
		t.EventID, len(t.Sections), t.TotalDuration)))

	return b.String()
}

func describeVisual(components []domain.SectionComponent) (domain.ComponentKind, string) {
	for _, c := range components {
		switch c.Type {
		case domain.KindDialogue:
			continue
		case domain.KindHighlightVideo:
			var v domain.HighlightVideoData
			if err := json.Unmarshal(c.Data, &v); err != nil {
				return c.Type, ""
			}
			detail := fmt.Sprintf("%s → %s  %s", v.StartTime, v.EndTime, v.Title)
			if !v.Aligned {
				detail += " (unaligned)"
			}
			return c.Type, truncate(detail, detailWidth-2)
		case domain.KindUnavailable:
			var u domain.UnavailableData
			if err := json.Unmarshal(c.Data, &u); err != nil {
				return c.Type, ""
			}
			return c.Type, fmt.Sprintf("%s: %s", u.RequestedType, u.Reason)
		default:
			return c.Type, ""
		}
	}
	return "", ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
