package main

import (
	"os"

	"github.com/idilsaglam/sentiment/internal/cli"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Hand everything to the CLI runner; it maps errors to exit codes.
	os.Exit(cli.Execute(version, commit, date))
}
