package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/sentiment/internal/config"
	"github.com/idilsaglam/sentiment/internal/ui"
)

var (
	cfgFile  string
	endpoint string
	backend  string
	timeout  time.Duration
	theme    string
	noColor  bool
	verbose  bool
)

// errReported marks failures that were already shown to the user.
var errReported = errors.New("reported")

type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Execute runs the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(version, commit, date string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCommand(version, commit, date)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var ue *usageError
	switch {
	case errors.Is(err, errReported):
		return 1
	case errors.As(err, &ue):
		ui.Fail(os.Stderr, err.Error())
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Run 'sentiment --help' for usage."))
		return 2
	default:
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
}

// NewRootCommand creates the root command. Without a subcommand it opens the TUI.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sentiment",
		Short: "Analyze the sentiment of a piece of text",
		Long: `sentiment sends text to a sentiment classification service and shows whether it
reads as positive or negative.

Run without arguments for the interactive screen, or use 'analyze' for one-shot
use in scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file path")
	pf.StringVar(&endpoint, "endpoint", "", "prediction endpoint URL")
	pf.StringVar(&backend, "backend", "", "prediction backend (remote, vader)")
	pf.DurationVar(&timeout, "timeout", 0, "request timeout (0 waits forever)")
	pf.StringVar(&theme, "theme", "", "color theme (classic, neon, mono)")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newExamplesCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// loadSettings resolves config (defaults < files < env < flags) and applies
// the UI settings.
func loadSettings(cmd *cobra.Command) (*config.Config, []string, error) {
	cfg, used, err := config.NewLoader().Load(cfgFile)
	if err != nil {
		return nil, nil, &usageError{err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = endpoint
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = theme
	}
	if flags.Changed("no-color") {
		cfg.UI.NoColor = noColor
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, nil, &usageError{err: fmt.Errorf("invalid configuration: %w", err)}
	}

	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorEnabled(!cfg.UI.NoColor)
	return cfg, used, nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if version == "dev" || version == "" {
				version = "development"
			}
			if commit == "none" || commit == "" {
				commit = "local-build"
			}
			if date == "unknown" || date == "" {
				date = "local-build"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sentiment %s (%s) built on %s\n", version, commit, date)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
