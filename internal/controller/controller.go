// Package controller holds the input/result state of an analysis session:
// the text being edited, the last outcome and whether a request is in flight.
//
// A submission runs Idle -> Submitting -> Idle. Begin validates and enters
// Submitting, Fetch performs the network call, Finish records the result and
// returns to Idle. Submit chains the three for synchronous callers; event
// loops call them separately so the network call can run off the loop.
//
// Nothing here stops two submissions from overlapping. Surfaces are expected
// to consult CanSubmit before starting one; if they do not, whichever
// response resolves last is the one that sticks.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/idilsaglam/sentiment/internal/sentiment"
)

// ErrEmptyInput is returned by Submit for empty or whitespace-only text.
var ErrEmptyInput = errors.New("input text is empty")

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Text       string
	Label      string
	HasOutcome bool
	Busy       bool
}

// Outcome classifies the stored label. ok is false when there is none.
func (s Snapshot) Outcome() (sentiment.Outcome, bool) {
	if !s.HasOutcome {
		return sentiment.Outcome{}, false
	}
	return sentiment.Classify(s.Label), true
}

type Controller struct {
	predictor sentiment.Predictor
	notifier  Notifier
	log       *slog.Logger

	mu         sync.Mutex
	text       string
	label      string
	hasOutcome bool
	busy       bool
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New returns an idle controller. A nil notifier drops notices.
func New(p sentiment.Predictor, n Notifier, opts ...Option) *Controller {
	if n == nil {
		n = NotifierFunc(func(Notice) {})
	}
	c := &Controller{
		predictor: p,
		notifier:  n,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(slog.String("component", "controller"))
	return c
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Text: c.text, Label: c.label, HasOutcome: c.hasOutcome, Busy: c.busy}
}

func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// SetText replaces the input text. The outcome is left alone.
func (c *Controller) SetText(s string) {
	c.mu.Lock()
	c.text = s
	c.mu.Unlock()
}

func (c *Controller) Outcome() (sentiment.Outcome, bool) {
	return c.Snapshot().Outcome()
}

func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// CanSubmit reports whether a surface should offer submission.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.busy && strings.TrimSpace(c.text) != ""
}

// CanClear reports whether there is any text to clear.
func (c *Controller) CanClear() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text != ""
}

// Begin records text as the input and, when it has content, enters the
// submitting state and returns the trimmed text to send. Empty input raises
// the validation notice and leaves the state untouched otherwise.
func (c *Controller) Begin(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)

	c.mu.Lock()
	c.text = text
	if trimmed == "" {
		c.mu.Unlock()
		c.log.Debug("rejected empty submission")
		c.notifier.Notify(noticeEmptyInput)
		return "", false
	}
	c.busy = true
	c.label = ""
	c.hasOutcome = false
	c.mu.Unlock()

	c.log.Debug("submitting", slog.Int("chars", len(trimmed)))
	return trimmed, true
}

// Fetch asks the predictor for a label. It touches no state.
func (c *Controller) Fetch(ctx context.Context, text string) (string, error) {
	return c.predictor.Predict(ctx, text)
}

// Finish leaves the submitting state with the result of Fetch.
func (c *Controller) Finish(label string, err error) {
	c.mu.Lock()
	c.busy = false
	// an empty label is a success with nothing to show
	if err == nil && label != "" {
		c.label = label
		c.hasOutcome = true
	}
	c.mu.Unlock()

	if err == nil {
		c.log.Debug("analysis complete", slog.String("label", label))
		c.notifier.Notify(noticeAnalyzed)
		return
	}

	var ve *sentiment.ValidationError
	if errors.As(err, &ve) {
		c.log.Info("server rejected input", slog.String("message", ve.First()))
		c.notifier.Notify(validationNotice(ve.First()))
		return
	}
	c.log.Warn("analysis failed", slog.Any("error", err))
	c.notifier.Notify(noticeFailed)
}

// Submit runs a whole submission and returns the predictor's error, or
// ErrEmptyInput when nothing was sent.
func (c *Controller) Submit(ctx context.Context, text string) error {
	trimmed, ok := c.Begin(text)
	if !ok {
		return ErrEmptyInput
	}
	label, err := c.Fetch(ctx, trimmed)
	c.Finish(label, err)
	return err
}

// Clear empties the input and forgets the outcome. A request already in
// flight keeps running and its result is still recorded.
func (c *Controller) Clear() {
	c.mu.Lock()
	c.text = ""
	c.label = ""
	c.hasOutcome = false
	c.mu.Unlock()
	c.log.Debug("cleared")
}

// LoadExample puts sample into the input and forgets the outcome.
func (c *Controller) LoadExample(sample string) {
	c.mu.Lock()
	c.text = sample
	c.label = ""
	c.hasOutcome = false
	c.mu.Unlock()
	c.log.Debug("example loaded", slog.Int("chars", len(sample)))
	c.notifier.Notify(noticeExample)
}
