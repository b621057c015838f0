package cli

import (
	"fmt"
	"log/slog"

	"github.com/idilsaglam/sentiment/internal/config"
	"github.com/idilsaglam/sentiment/internal/sentiment"
)

func newPredictor(cfg *config.Config, log *slog.Logger) (sentiment.Predictor, error) {
	switch cfg.Backend {
	case config.BackendVader:
		log.Debug("using offline vader backend")
		return sentiment.NewVader(), nil
	case config.BackendRemote:
		c, err := sentiment.NewClient(cfg.Endpoint,
			sentiment.WithTimeout(cfg.Timeout),
			sentiment.WithLogger(log.With(slog.String("component", "client"))),
		)
		if err != nil {
			return nil, err
		}
		log.Debug("using remote backend", slog.String("endpoint", c.Endpoint()), slog.Duration("timeout", cfg.Timeout))
		return c, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
