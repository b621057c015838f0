package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sentiment/internal/ui"
)

const performanceNotice = "Our model is currently not performing perfectly on negative sentiment classification. " +
	"We are actively working on improving the negative class accuracy through enhanced training data and advanced NLP techniques. " +
	"Thank you for your patience as we continue to refine the model."

var aboutParagraphs = []string{
	"Our sentiment analysis model was built using Natural Language Processing (NLP) techniques to understand how users feel about products and services on Twitter. " +
		"The model currently classifies tweets as Positive or Negative.",
	"We are continuously improving the model by collecting more data, refining preprocessing, and balancing the training examples. " +
		"Future updates will use advanced AI techniques such as:",
}

var aboutPlans = [][2]string{
	{"Deep Learning Models", "like BERT and LSTMs for contextual understanding."},
	{"Sentiment Calibration", "to better detect subtle emotions and sarcasm."},
	{"Continuous Learning", "from new user-submitted examples."},
}

const aboutGoal = "Our goal is to make the model more accurate, fair, and context-aware, " +
	"ensuring that both positive and negative sentiments are understood equally well."

func (m Model) View() string {
	t := ui.Current()
	w := m.cardWidth()

	sections := []string{
		m.viewHeader(w),
		m.viewNotice(w),
		m.viewCard(w),
		m.viewExamples(w),
		m.viewAbout(w),
	}
	if len(m.toasts) > 0 {
		sections = append(sections, m.viewToasts())
	}

	var hk help.KeyMap = editorHelp{m.keys}
	if m.focus == focusExamples {
		hk = examplesHelp{m.keys}
	}
	sections = append(sections,
		m.help.View(hk),
		t.Muted.Render("Powered by advanced machine learning algorithms"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader(w int) string {
	t := ui.Current()
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)
	return center.Render(lipgloss.JoinVertical(lipgloss.Center,
		t.Title.Render("Group 4 Project"),
		t.Subtitle.Render("Moringa School"),
		t.Muted.Render("AI-powered sentiment analysis in real-time"),
	))
}

func (m Model) viewNotice(w int) string {
	t := ui.Current()
	box := ui.Box().BorderForeground(t.Warning.GetForeground()).Width(w - 2)
	return box.Render(t.Warning.Render("! Model Performance Notice") + "\n" + t.Muted.Render(performanceNotice))
}

// viewCard is the form: editor, counter, submit button, then busy
// indicator or outcome.
func (m Model) viewCard(w int) string {
	t := ui.Current()
	snap := m.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(t.Subtitle.Render("Enter your text"))
	b.WriteString("\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n")

	counter := t.Muted.Render(fmt.Sprintf("%d characters", utf8.RuneCountInString(snap.Text)))
	if snap.Text != "" {
		clearHint := t.Accent.Render("ctrl+l clear")
		gap := w - 4 - lipgloss.Width(counter) - lipgloss.Width(clearHint)
		if gap < 1 {
			gap = 1
		}
		counter += strings.Repeat(" ", gap) + clearHint
	}
	b.WriteString(counter)
	b.WriteString("\n\n")

	label := "Analyze Sentiment"
	if snap.Busy {
		label = "Analyzing..."
	}
	button := t.Disabled.Render("[ " + label + " ]")
	if m.ctrl.CanSubmit() {
		button = t.Button.Render(label)
	}
	b.WriteString(lipgloss.PlaceHorizontal(w-4, lipgloss.Center, button))

	switch {
	case snap.Busy:
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(w-4, lipgloss.Center, ui.RenderBusy(m.spinner.View())))
	default:
		if o, ok := snap.Outcome(); ok {
			b.WriteString("\n\n")
			b.WriteString(ui.RenderOutcome(o, w-4))
		}
	}

	return ui.Box().Width(w - 2).Render(b.String())
}

func (m Model) viewExamples(w int) string {
	t := ui.Current()
	heading := t.Accent.Render("✦ ") + t.Subtitle.Render("Try These Negative Examples")
	hint := t.Muted.Render("Press tab, then enter on any example to load it into the editor")
	style := ui.Box().Width(w - 2)
	if m.focus == focusExamples {
		style = style.BorderForeground(t.Accent.GetForeground())
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, heading, hint, "", m.examples.View()))
}

func (m Model) viewToasts() string {
	lines := make([]string, 0, len(m.toasts))
	for _, tt := range m.toasts {
		lines = append(lines, ui.RenderNotice(tt.notice))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewAbout(w int) string {
	t := ui.Current()
	text := lipgloss.NewStyle().Width(w - 4)

	lines := []string{t.Subtitle.Render("About Our NLP Sentiment Model"), ""}
	for _, p := range aboutParagraphs {
		lines = append(lines, text.Render(t.Muted.Render(p)), "")
	}
	for _, p := range aboutPlans {
		lines = append(lines, text.Render("  "+t.SymInfo+" "+t.Subtitle.Render(p[0])+" "+t.Muted.Render(p[1])))
	}
	lines = append(lines, "", text.Render(t.Muted.Render(aboutGoal)))
	return ui.Box().Width(w - 2).Render(strings.Join(lines, "\n"))
}
