package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/sentiment/internal/sentiment"
	"github.com/idilsaglam/sentiment/internal/ui"
)

var exampleToAnalyze int

func newExamplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List the sample negative texts, or analyze one",
		Long: `List the ten built-in negative examples.

With --analyze N, example N (1-based) is loaded and submitted.

Examples:
  sentiment examples
  sentiment examples --analyze 3`,
		Args: cobra.NoArgs,
		RunE: runExamples,
	}
	cmd.Flags().IntVarP(&exampleToAnalyze, "analyze", "a", 0, "load and analyze example N")
	return cmd
}

func runExamples(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("analyze") {
		if _, _, err := loadSettings(cmd); err != nil {
			return err
		}
		ui.Panel(cmd.OutOrStdout(), exampleLines())
		return nil
	}

	sample, ok := sentiment.Example(exampleToAnalyze)
	if !ok {
		return &usageError{err: fmt.Errorf("example out of range: have %d, got %d", len(sentiment.Examples()), exampleToAnalyze)}
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	s.quietInfo = true
	s.ctrl.LoadExample(sample)

	t := ui.Current()
	fmt.Fprintln(cmd.OutOrStdout(), t.Subtitle.Render(fmt.Sprintf("Example %d", exampleToAnalyze)))
	fmt.Fprintln(cmd.OutOrStdout(), t.Muted.Render(sample))
	return s.analyze(cmd, s.ctrl.Text())
}

func exampleLines() []string {
	t := ui.Current()
	lines := []string{t.Title.Render("Try These Negative Examples"), ""}
	for i, ex := range sentiment.Examples() {
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), wrap(ex, 76, "    ")))
	}
	lines = append(lines, "", t.Muted.Render("Tip: analyze one with `sentiment examples --analyze 1`"))
	return lines
}

// wrap breaks s on spaces at width, indenting continuation lines.
func wrap(s string, width int, indent string) string {
	var b strings.Builder
	col := 0
	for i, word := range strings.Fields(s) {
		if i > 0 {
			if col+1+len(word) > width {
				b.WriteString("\n" + indent)
				col = len(indent)
			} else {
				b.WriteByte(' ')
				col++
			}
		}
		b.WriteString(word)
		col += len(word)
	}
	return b.String()
}
