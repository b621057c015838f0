package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sentiment/internal/sentiment"
)

// OutcomeView is everything needed to draw an outcome card.
type OutcomeView struct {
	Category    sentiment.Category
	Icon        string
	Title       string
	Caption     string
	Description string
	Color       lipgloss.TerminalColor
}

// ForOutcome maps an outcome to its view under the current theme.
func ForOutcome(o sentiment.Outcome) OutcomeView {
	t := Current()
	v := OutcomeView{
		Category: o.Category,
		Title:    o.Display(),
		Caption:  "Sentiment Detected",
	}
	switch o.Category {
	case sentiment.Positive:
		v.Icon = t.IconPositive
		v.Description = "This text expresses positive sentiment"
		v.Color = t.Positive
	case sentiment.Negative:
		v.Icon = t.IconNegative
		v.Description = "This text expresses negative sentiment"
		v.Color = t.Negative
	default:
		v.Icon = t.IconNeutral
		v.Description = "Sentiment analysis complete"
		v.Color = t.Neutral
	}
	return v
}

// RenderOutcome draws the outcome card. width <= 0 lets it size to content.
func RenderOutcome(o sentiment.Outcome, width int) string {
	t := Current()
	v := ForOutcome(o)

	icon := lipgloss.NewStyle().Bold(true).Foreground(v.Color).Padding(0, 1).Render(v.Icon)
	heading := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(v.Color).Render(v.Title),
		t.Muted.Render(v.Caption),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", heading)
	body := lipgloss.JoinVertical(lipgloss.Center, top, "", t.Muted.Render(v.Description))

	card := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(v.Color).
		Padding(0, 2).
		Align(lipgloss.Center)
	if width > 2 {
		card = card.Width(width - 2)
	}
	return card.Render(body)
}

// RenderBusy draws the busy indicator around a spinner frame.
func RenderBusy(frame string) string {
	t := Current()
	return lipgloss.JoinVertical(lipgloss.Center,
		t.Accent.Render(frame)+" "+t.Subtitle.Render("Analyzing sentiment..."),
		t.Muted.Render("This will only take a moment"),
	)
}
