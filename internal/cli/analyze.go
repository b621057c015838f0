package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/sentiment/internal/config"
	"github.com/idilsaglam/sentiment/internal/controller"
	"github.com/idilsaglam/sentiment/internal/logging"
	"github.com/idilsaglam/sentiment/internal/ui"
)

var analyzeJSON bool

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze text once and print the result",
		Long: `Submit text for analysis and print the outcome.

The words given as arguments are joined with spaces. With no arguments, or a
single "-", the text is read from stdin.

Examples:
  sentiment analyze "I absolutely love this product!"
  echo "This app is useless" | sentiment analyze
  sentiment analyze --json < review.txt`,
		RunE: runAnalyze,
	}
	cmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the result as JSON")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.analyze(cmd, text)
}

func inputText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

// session is the non-interactive wiring of a controller: notices go to
// stderr and outcomes to stdout.
type session struct {
	cfg  *config.Config
	ctrl *controller.Controller
	log  *slog.Logger

	// quietInfo drops info notices whose advice does not apply to the CLI.
	quietInfo bool
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, !cfg.UI.NoColor)

	p, err := newPredictor(cfg, log)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, log: log}
	errOut := cmd.ErrOrStderr()
	notify := controller.NotifierFunc(func(n controller.Notice) {
		// the outcome itself says enough in JSON mode
		if analyzeJSON && n.Kind == controller.NoticeSuccess {
			return
		}
		if s.quietInfo && n.Kind == controller.NoticeInfo {
			return
		}
		ui.PrintNotice(errOut, n)
	})
	s.ctrl = controller.New(p, notify, controller.WithLogger(log))
	return s, nil
}

// analyze submits text and prints the outcome. Failures have already been
// reported as notices, so they come back as errReported.
func (s *session) analyze(cmd *cobra.Command, text string) error {
	if !analyzeJSON && strings.TrimSpace(text) != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderBusy("…"))
	}
	if err := s.ctrl.Submit(cmd.Context(), text); err != nil {
		return fmt.Errorf("%w: %v", errReported, err)
	}
	return s.printOutcome(cmd.OutOrStdout())
}

type outcomeJSON struct {
	Sentiment string `json:"sentiment"`
	Category  string `json:"category"`
}

func (s *session) printOutcome(w io.Writer) error {
	o, ok := s.ctrl.Outcome()
	if !ok {
		return nil
	}
	if analyzeJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(outcomeJSON{Sentiment: o.Label, Category: o.Category.String()})
	}
	fmt.Fprintln(w, ui.RenderOutcome(o, 0))
	return nil
}
