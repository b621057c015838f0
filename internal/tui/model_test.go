package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sentiment/internal/controller"
	"github.com/idilsaglam/sentiment/internal/logging"
	"github.com/idilsaglam/sentiment/internal/sentiment"
	"github.com/idilsaglam/sentiment/internal/ui"
)

func newTestModel(t *testing.T, p sentiment.Predictor) Model {
	t.Helper()
	ui.SetTheme("mono")
	ui.SetColorEnabled(false)
	t.Cleanup(func() { ui.SetTheme("classic") })

	m := New(p, Options{Logger: logging.Discard()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 60})
	return next.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

// collect runs cmd and every command it batches, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func predictionFrom(t *testing.T, cmd tea.Cmd) predictionMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if pm, ok := msg.(predictionMsg); ok {
			return pm
		}
	}
	t.Fatal("no prediction in command")
	return predictionMsg{}
}

func TestEnterOnEmptyInputShowsToast(t *testing.T) {
	calls := 0
	m := newTestModel(t, sentiment.PredictorFunc(func(context.Context, string) (string, error) {
		calls++
		return "positive", nil
	}))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Controller().Busy())
	assert.Zero(t, calls)
	require.Len(t, m.toasts, 1)
	assert.Equal(t, "Please enter some text to analyze", m.toasts[0].notice.Message)
	assert.Contains(t, m.View(), "Please enter some text to analyze")
}

func TestSubmitShowsBusyThenOutcome(t *testing.T) {
	var sent string
	m := newTestModel(t, sentiment.PredictorFunc(func(_ context.Context, text string) (string, error) {
		sent = text
		return "positive", nil
	}))

	m = typeText(t, m, "  I love it ")
	assert.Equal(t, "  I love it ", m.Controller().Text())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.Controller().Busy())
	view := m.View()
	assert.Contains(t, view, "Analyzing sentiment...")
	assert.Contains(t, view, "Analyzing...")

	pm := predictionFrom(t, cmd)
	assert.Equal(t, "I love it", sent)

	m, _ = send(t, m, pm)
	assert.False(t, m.Controller().Busy())
	view = m.View()
	assert.NotContains(t, view, "Analyzing sentiment...")
	assert.Contains(t, view, "Positive")
	assert.Contains(t, view, "Sentiment Detected")
	assert.Contains(t, view, "Analysis Complete")
}

func TestSubmitIgnoredWhileBusy(t *testing.T) {
	m := newTestModel(t, sentiment.PredictorFunc(func(context.Context, string) (string, error) {
		return "negative", nil
	}))
	m = typeText(t, m, "bad")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, m.Controller().Busy())

	m = typeText(t, m, "ger")
	assert.Equal(t, "bad", m.Controller().Text(), "editor is read-only while busy")
}

func TestFailureShowsGenericToast(t *testing.T) {
	m := newTestModel(t, sentiment.PredictorFunc(func(context.Context, string) (string, error) {
		return "", errors.New("connection refused")
	}))
	m = typeText(t, m, "hello")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, predictionFrom(t, cmd))

	_, ok := m.Controller().Outcome()
	assert.False(t, ok)
	require.NotEmpty(t, m.toasts)
	assert.Equal(t, controller.GenericFailureMessage, m.toasts[len(m.toasts)-1].notice.Message)
}

func TestLoadExampleFromList(t *testing.T) {
	m := newTestModel(t, sentiment.PredictorFunc(func(context.Context, string) (string, error) {
		return "negative", nil
	}))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusExamples, m.focus)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	first, _ := sentiment.Example(1)
	assert.Equal(t, focusEditor, m.focus)
	assert.Equal(t, first, m.Controller().Text())
	assert.Equal(t, first, m.editor.Value())
	assert.False(t, m.Controller().Busy(), "loading does not submit")
	require.Len(t, m.toasts, 1)
	assert.Equal(t, "Example Loaded", m.toasts[0].notice.Title)
}

func TestClearKey(t *testing.T) {
	m := newTestModel(t, sentiment.PredictorFunc(func(context.Context, string) (string, error) {
		return "positive", nil
	}))
	assert.False(t, m.keys.Clear.Enabled())

	m = typeText(t, m, "great")
	assert.True(t, m.keys.Clear.Enabled())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, predictionFrom(t, cmd))
	_, ok := m.Controller().Outcome()
	require.True(t, ok)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Equal(t, controller.Snapshot{}, m.Controller().Snapshot())
	assert.Empty(t, m.editor.Value())
	assert.False(t, m.keys.Clear.Enabled())
	assert.Contains(t, m.View(), "0 characters")
}

func TestToastExpiry(t *testing.T) {
	m := newTestModel(t, sentiment.PredictorFunc(func(context.Context, string) (string, error) {
		return "", nil
	}))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.toasts, 1)

	m, _ = send(t, m, toastExpiredMsg{id: m.toasts[0].id})
	assert.Empty(t, m.toasts)
}

func TestToastsAreCapped(t *testing.T) {
	m := newTestModel(t, sentiment.PredictorFunc(func(context.Context, string) (string, error) {
		return "", nil
	}))
	for i := 0; i < maxToasts+2; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	assert.Len(t, m.toasts, maxToasts)
	assert.Equal(t, maxToasts+2, m.toasts[maxToasts-1].id)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, sentiment.PredictorFunc(func(context.Context, string) (string, error) {
		return "", nil
	}))

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewStaticSections(t *testing.T) {
	m := newTestModel(t, sentiment.PredictorFunc(func(context.Context, string) (string, error) {
		return "", nil
	}))
	view := m.View()

	for _, want := range []string{
		"Group 4 Project",
		"Moringa School",
		"AI-powered sentiment analysis in real-time",
		"Model Performance Notice",
		"patience",
		"About Our NLP Sentiment Model",
		"Deep Learning Models",
		"Continuous Learning",
		"Enter your text",
		"Analyze Sentiment",
		"Try These Negative Examples",
		"Powered by advanced machine learning algorithms",
	} {
		assert.Contains(t, view, want)
	}
}
