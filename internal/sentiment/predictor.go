// Package sentiment holds the outcome model, the sample texts and the
// backends that turn a piece of text into a sentiment label.
package sentiment

import "context"

// Predictor returns the sentiment label for text.
type Predictor interface {
	Predict(ctx context.Context, text string) (string, error)
}

// PredictorFunc adapts a function to Predictor.
type PredictorFunc func(ctx context.Context, text string) (string, error)

func (f PredictorFunc) Predict(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
