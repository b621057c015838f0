package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/sentiment/internal/controller"
	"github.com/idilsaglam/sentiment/internal/sentiment"
	"github.com/idilsaglam/sentiment/internal/ui"
)

type focus int

const (
	focusEditor focus = iota
	focusExamples
)

const (
	defaultWidth  = 80
	maxCardWidth  = 100
	editorHeight  = 6
	examplesShown = 5
)

// Options tune the model.
type Options struct {
	Context       context.Context
	ToastDuration time.Duration
	Logger        *slog.Logger
}

// Model is the Bubble Tea model for the analyzer screen.
type Model struct {
	ctrl  *controller.Controller
	inbox *controller.Inbox
	ctx   context.Context

	editor   textarea.Model
	examples list.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	focus    focus

	toasts    []toast
	nextToast int
	toastTTL  time.Duration

	width, height int
}

// predictionMsg carries the result of a Fetch back into the loop.
type predictionMsg struct {
	label string
	err   error
}

// New builds the model around p. Notices raised by the controller are shown as toasts.
func New(p sentiment.Predictor, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	inbox := &controller.Inbox{}
	ctrl := controller.New(p, inbox, controller.WithLogger(log))

	ta := textarea.New()
	ta.Placeholder = "Type or paste your text here... (e.g., 'I absolutely love this product!')"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(editorHeight)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "newline"))
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.Current().Accent

	m := Model{
		ctrl:     ctrl,
		inbox:    inbox,
		ctx:      ctx,
		editor:   ta,
		examples: newExampleList(),
		spinner:  s,
		help:     help.New(),
		keys:     defaultKeys(),
		toastTTL: opts.ToastDuration,
	}
	m.resize(defaultWidth, 0)
	return m
}

// Controller exposes the state behind the screen.
func (m Model) Controller() *controller.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case predictionMsg:
		m.ctrl.Finish(msg.label, msg.err)
		cmds := []tea.Cmd{m.flushNotices()}
		if m.focus == focusEditor {
			cmds = append(cmds, m.editor.Focus())
		}
		return m, tea.Batch(cmds...)

	case toastExpiredMsg:
		m.dropToast(msg.id)
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// cursor blinks and other component messages
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.focus == focusExamples {
		return m.handleExamplesKey(msg)
	}
	return m.handleEditorKey(msg)
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		m.setFocus(focusExamples)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Clear()
		m.editor.Reset()
		m.syncKeys()
		return m, nil
	}

	// the editor is read-only while a request is in flight
	if m.ctrl.Busy() {
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.ctrl.SetText(m.editor.Value())
	m.syncKeys()
	return m, cmd
}

func (m Model) handleExamplesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Focus):
		cmd := m.setFocus(focusEditor)
		return m, cmd

	case key.Matches(msg, m.keys.Load):
		it, ok := m.examples.SelectedItem().(exampleItem)
		if !ok {
			return m, nil
		}
		m.ctrl.LoadExample(it.text)
		m.editor.SetValue(it.text)
		m.syncKeys()
		cmd := tea.Batch(m.setFocus(focusEditor), m.flushNotices())
		return m, cmd
	}

	var cmd tea.Cmd
	m.examples, cmd = m.examples.Update(msg)
	return m, cmd
}

// submit is a no-op while busy; that is the only guard against overlapping requests.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.ctrl.Busy() {
		return m, nil
	}
	text, ok := m.ctrl.Begin(m.editor.Value())
	notices := m.flushNotices()
	if !ok {
		return m, notices
	}
	m.editor.Blur()
	return m, tea.Batch(m.spinner.Tick, m.fetch(text), notices)
}

func (m Model) fetch(text string) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		label, err := ctrl.Fetch(ctx, text)
		return predictionMsg{label: label, err: err}
	}
}

// setFocus moves focus. The editor only takes the cursor back when idle.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.examples.SetDelegate(exampleDelegate{active: f == focusExamples})
	if f == focusExamples {
		m.editor.Blur()
		return nil
	}
	if m.ctrl.Busy() {
		return nil
	}
	return m.editor.Focus()
}

func (m *Model) syncKeys() {
	m.keys.Clear.SetEnabled(m.ctrl.CanClear())
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	inner := m.cardWidth() - 4
	m.editor.SetWidth(inner)
	m.examples.SetSize(inner, examplesShown+1)
	m.help.Width = inner
}

func (m Model) cardWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	if w > maxCardWidth {
		w = maxCardWidth
	}
	return w
}
