// Command sawyer-tool exercises the sawyer library end to end: it builds a
// small demonstration Parser and exposes docgen, inspect, and lint
// subcommands against it.
package main

import (
	"fmt"
	"os"

	"github.com/sawyer-cli/sawyer/cmd/sawyer-tool/cmd"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
