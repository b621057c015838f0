package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sentiment/internal/sentiment"
)

type fakePredictor struct {
	mu    sync.Mutex
	calls []string
	label string
	err   error
}

func (f *fakePredictor) Predict(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	return f.label, f.err
}

func (f *fakePredictor) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestController(p sentiment.Predictor) (*Controller, *Inbox) {
	inbox := &Inbox{}
	return New(p, inbox), inbox
}

func TestInitialState(t *testing.T) {
	c, inbox := newTestController(&fakePredictor{})

	snap := c.Snapshot()
	assert.Equal(t, Snapshot{}, snap)
	_, ok := c.Outcome()
	assert.False(t, ok)
	assert.False(t, c.CanSubmit())
	assert.False(t, c.CanClear())
	assert.Empty(t, inbox.Drain())
}

func TestSubmitEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		p := &fakePredictor{label: "positive"}
		c, inbox := newTestController(p)

		err := c.Submit(context.Background(), text)
		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Zero(t, p.count(), "no request for %q", text)
		assert.False(t, c.Busy())
		assert.Equal(t, text, c.Text())
		assert.Equal(t, []Notice{noticeEmptyInput}, inbox.Drain())
	}
}

func TestSubmitSuccessTrimsText(t *testing.T) {
	p := &fakePredictor{label: "positive"}
	c, inbox := newTestController(p)

	require.NoError(t, c.Submit(context.Background(), "  I love it  \n"))

	assert.Equal(t, []string{"I love it"}, p.calls)
	assert.Equal(t, "  I love it  \n", c.Text())
	assert.False(t, c.Busy())

	o, ok := c.Outcome()
	require.True(t, ok)
	assert.Equal(t, sentiment.Positive, o.Category)
	assert.Equal(t, []Notice{noticeAnalyzed}, inbox.Drain())
}

func TestSubmitKeepsUnknownLabel(t *testing.T) {
	c, _ := newTestController(&fakePredictor{label: "Unknown"})

	require.NoError(t, c.Submit(context.Background(), "hmm"))

	o, ok := c.Outcome()
	require.True(t, ok)
	assert.Equal(t, sentiment.Other, o.Category)
	assert.Equal(t, "Unknown", o.Display())
}

func TestSubmitEmptyLabelHasNoOutcome(t *testing.T) {
	p := &fakePredictor{label: "positive"}
	c, inbox := newTestController(p)
	require.NoError(t, c.Submit(context.Background(), "good"))
	inbox.Drain()

	p.label = ""
	require.NoError(t, c.Submit(context.Background(), "good"))

	_, ok := c.Outcome()
	assert.False(t, ok)
	assert.False(t, c.Busy())
	assert.Equal(t, []Notice{noticeAnalyzed}, inbox.Drain())
}

func TestSubmitValidationError(t *testing.T) {
	p := &fakePredictor{err: &sentiment.ValidationError{StatusCode: 400, Messages: []string{"Text is too long"}}}
	c, inbox := newTestController(p)

	err := c.Submit(context.Background(), "text")
	require.Error(t, err)

	_, ok := c.Outcome()
	assert.False(t, ok)
	assert.False(t, c.Busy())
	assert.Equal(t, []Notice{{Kind: NoticeError, Title: "Validation Error", Message: "Text is too long"}}, inbox.Drain())
}

func TestSubmitGenericFailure(t *testing.T) {
	errs := []error{
		&sentiment.RequestError{Op: "send", Err: errors.New("connection refused")},
		&sentiment.RequestError{Op: "status", StatusCode: 500},
		errors.New("boom"),
	}
	for _, e := range errs {
		c, inbox := newTestController(&fakePredictor{err: e})

		assert.Error(t, c.Submit(context.Background(), "text"))
		assert.False(t, c.Busy())
		assert.Equal(t, []Notice{noticeFailed}, inbox.Drain())
		assert.Equal(t, GenericFailureMessage, noticeFailed.Message)
	}
}

func TestBeginClearsPreviousOutcome(t *testing.T) {
	p := &fakePredictor{label: "negative"}
	c, _ := newTestController(p)
	require.NoError(t, c.Submit(context.Background(), "bad"))

	trimmed, ok := c.Begin(" worse ")
	require.True(t, ok)
	assert.Equal(t, "worse", trimmed)

	snap := c.Snapshot()
	assert.True(t, snap.Busy)
	assert.False(t, snap.HasOutcome)
	assert.False(t, c.CanSubmit())

	c.Finish("negative", nil)
	assert.False(t, c.Busy())
}

func TestFailureLeavesNoOutcome(t *testing.T) {
	p := &fakePredictor{label: "positive"}
	c, _ := newTestController(p)
	require.NoError(t, c.Submit(context.Background(), "good"))

	p.label, p.err = "", errors.New("down")
	require.Error(t, c.Submit(context.Background(), "good"))

	_, ok := c.Outcome()
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	c, inbox := newTestController(&fakePredictor{label: "positive"})
	require.NoError(t, c.Submit(context.Background(), "good"))
	inbox.Drain()

	c.Clear()

	assert.Equal(t, Snapshot{}, c.Snapshot())
	assert.False(t, c.CanClear())
	assert.Empty(t, inbox.Drain())
}

func TestStaleResponseAfterClearIsRecorded(t *testing.T) {
	c, _ := newTestController(&fakePredictor{})

	_, ok := c.Begin("first")
	require.True(t, ok)
	c.Clear()
	assert.True(t, c.Busy(), "clear does not cancel the request")

	c.Finish("positive", nil)

	snap := c.Snapshot()
	assert.Equal(t, "", snap.Text)
	assert.True(t, snap.HasOutcome)
	assert.Equal(t, "positive", snap.Label)
}

func TestLastResponseWins(t *testing.T) {
	c, _ := newTestController(&fakePredictor{})

	_, ok := c.Begin("one")
	require.True(t, ok)
	_, ok = c.Begin("two")
	require.True(t, ok)

	c.Finish("negative", nil)
	c.Finish("positive", nil)

	o, ok := c.Outcome()
	require.True(t, ok)
	assert.Equal(t, sentiment.Positive, o.Category)
}

func TestLoadExample(t *testing.T) {
	c, inbox := newTestController(&fakePredictor{label: "negative"})
	require.NoError(t, c.Submit(context.Background(), "bad"))
	inbox.Drain()

	sample, ok := sentiment.Example(3)
	require.True(t, ok)
	c.LoadExample(sample)

	assert.Equal(t, sample, c.Text())
	_, has := c.Outcome()
	assert.False(t, has)
	assert.True(t, c.CanSubmit())
	assert.Equal(t, []Notice{noticeExample}, inbox.Drain())
}

func TestSetTextKeepsOutcome(t *testing.T) {
	c, _ := newTestController(&fakePredictor{label: "positive"})
	require.NoError(t, c.Submit(context.Background(), "good"))

	c.SetText("good and more")

	_, ok := c.Outcome()
	assert.True(t, ok)
	assert.True(t, c.CanClear())
	assert.True(t, c.CanSubmit())
}

func TestNilNotifier(t *testing.T) {
	c := New(&fakePredictor{}, nil)
	assert.NotPanics(t, func() {
		_ = c.Submit(context.Background(), "")
		c.LoadExample("x")
	})
}

func TestInboxDrain(t *testing.T) {
	var b Inbox
	b.Notify(noticeExample)
	b.Notify(noticeAnalyzed)

	assert.Equal(t, []Notice{noticeExample, noticeAnalyzed}, b.Drain())
	assert.Empty(t, b.Drain())
}

func TestNoticeKindString(t *testing.T) {
	assert.Equal(t, "info", NoticeInfo.String())
	assert.Equal(t, "success", NoticeSuccess.String())
	assert.Equal(t, "error", NoticeError.String())
}
