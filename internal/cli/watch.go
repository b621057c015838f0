package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/sentiment/internal/ui"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-analyze a file every time it is saved",
		Long: `Analyze a text file, then watch it and analyze it again whenever its content
changes. Press Ctrl+C to stop watching.

Examples:
  sentiment watch draft.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	// watch the directory: editors often save by renaming over the file
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			s.log.Warn("failed to close watcher", slog.Any("error", err))
		}
	}()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Current().Muted.Render("Watching "+path+" (Ctrl+C to stop)"))

	last := ""
	check := func() {
		b, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn("failed to read watched file", slog.String("path", path), slog.Any("error", err))
			return
		}
		text := string(b)
		if text == last {
			return
		}
		last = text
		// failures were shown as notices; keep watching
		_ = s.analyze(cmd, text)
	}
	check()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			s.log.Debug("file changed", slog.String("op", ev.Op.String()))
			check()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watcher error", slog.Any("error", err))
		}
	}
}
