package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/sentiment/internal/config"
	"github.com/idilsaglam/sentiment/internal/ui"
)

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after defaults, config files, environment variables
and flags have been applied, along with the files that were read.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, used, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	t := ui.Current()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, t.Subtitle.Render("Config files"))
	if len(used) == 0 {
		fmt.Fprintln(out, t.Muted.Render("  (none, using defaults; user file would be "+config.UserConfigPath()+")"))
	}
	for _, p := range used {
		fmt.Fprintln(out, "  "+p)
	}
	fmt.Fprintln(out)

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Fprint(out, string(b))
	return nil
}
