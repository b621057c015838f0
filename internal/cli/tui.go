package cli

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/sentiment/internal/logging"
	"github.com/idilsaglam/sentiment/internal/tui"
)

// runTUI starts the interactive screen. Logs go to log.file so they
// never draw over the alt screen.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.InitFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	p, err := newPredictor(cfg, log)
	if err != nil {
		return err
	}

	m := tui.New(p, tui.Options{
		Context:       cmd.Context(),
		ToastDuration: cfg.UI.ToastDuration,
		Logger:        log,
	})

	log.Info("starting interactive session", slog.String("backend", cfg.Backend))
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := prog.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
