package cmd

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/sawyer-cli/sawyer"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check the demonstration parser's switches for duplicate names and unreachable defaults",
	RunE: func(_ *cobra.Command, _ []string) error {
		problems := lintParser(demoParser())
		for _, p := range problems {
			fmt.Println(p)
		}
		if len(problems) > 0 {
			exitWithError("%d problem(s) found", len(problems))
		}
		fmt.Println("ok: no duplicate switch names or unreachable defaults")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

// lintParser reports every name (long or short) claimed by more than one
// Switch across all of p's groups, followed by every Argument declared
// Required with a non-empty Default — the default text can never be used
// since a required argument always aborts the parse rather than falling
// back to it, so setting one is always a mistake. Names are reported in
// natural sort order so "switch2" precedes "switch10" the way a changelog
// reads to a human, rather than the lexicographic "switch10" < "switch2".
func lintParser(p *sawyer.Parser) []string {
	owners := map[string][]string{}
	for _, g := range p.Groups {
		for _, sw := range g.Switches() {
			for _, n := range sw.LongNames {
				owners["--"+n] = append(owners["--"+n], sw.Key)
			}
			for _, c := range sw.ShortNames {
				owners["-"+string(c)] = append(owners["-"+string(c)], sw.Key)
			}
		}
	}

	var dupNames []string
	for name, keys := range owners {
		if len(keys) > 1 {
			dupNames = append(dupNames, name)
		}
	}
	sort.Slice(dupNames, func(i, j int) bool { return natural.Less(dupNames[i], dupNames[j]) })

	var problems []string
	for _, name := range dupNames {
		problems = append(problems, fmt.Sprintf("duplicate switch name %s claimed by: %v", name, owners[name]))
	}
	problems = append(problems, unreachableDefaults(p)...)
	return problems
}

// unreachableDefaults reports every Required Argument carrying a non-empty
// Default, across all switches in p, in declaration order.
func unreachableDefaults(p *sawyer.Parser) []string {
	var problems []string
	for _, g := range p.Groups {
		for _, sw := range g.Switches() {
			for _, arg := range sw.Args {
				if arg.Required && arg.Default != "" {
					problems = append(problems, fmt.Sprintf(
						"switch %s: argument %s is required but declares a default %q, which can never be reached",
						sw.Key, arg.Name, arg.Default))
				}
			}
		}
	}
	return problems
}
