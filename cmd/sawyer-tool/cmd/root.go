package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the sawyer-tool build version, overridable via -ldflags the
// way the corpus's own CLI entry points are versioned.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "sawyer-tool",
	Short: "Inspect and document sawyer-based command-line parsers",
	Long: `sawyer-tool exercises the sawyer declarative switch-parsing library
against a small demonstration Parser: it can render that Parser's help text
and Markdown reference, parse an arbitrary argument list against it and dump
the resulting Result as JSON, and lint its switch declarations for obvious
mistakes (duplicate names, unreachable defaults).`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "sawyer-tool: "+msg+"\n", args...)
	os.Exit(1)
}
