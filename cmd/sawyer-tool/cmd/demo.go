package cmd

import (
	"regexp"

	"github.com/sawyer-cli/sawyer"
	"github.com/sawyer-cli/sawyer/valparse"
)

// demoParser builds a small, representative Parser used to exercise
// sawyer-tool's subcommands (docgen/inspect/lint) without requiring a real
// target application's switch set on hand.
func demoParser() *sawyer.Parser {
	p := sawyer.NewParser("sawyer-tool")
	p.Doc = "a small demonstration command line, wired up the way any sawyer-based tool would be"
	p.Version = "0.1.0"

	general := sawyer.NewSwitchGroup("General options").SetDoc("common switches")
	general.Add(
		sawyer.NewSwitch("help").Long("help").Short("h").SetDoc("show this help and exit").Retain(sawyer.SaveOne),
		sawyer.NewSwitch("version").Long("version").SetDoc("show version and exit").Retain(sawyer.SaveOne),
		sawyer.NewSwitch("verbose").Long("verbose").Short("v").Retain(sawyer.SaveOne).
			SetDoc("print extra diagnostic output"),
	)

	io := sawyer.NewSwitchGroup("Input/output options")
	io.Add(
		sawyer.NewSwitch("output").Long("output").Short("o").Retain(sawyer.SaveLast).
			Arg(sawyer.Argument{Name: "path", Parser: valparse.NewAny(), Required: true}).
			SetDoc("write results to @v{path} instead of stdout"),
		sawyer.NewSwitch("width").Long("width").Retain(sawyer.SaveLast).
			Arg(sawyer.Argument{Name: "n", Parser: valparse.NewNonNegativeInteger(), Required: false, Default: "80"}).
			SetDoc("wrap output at @v{n} columns"),
		sawyer.NewSwitch("format").Long("format").Retain(sawyer.SaveLast).
			Arg(sawyer.Argument{Name: "kind", Parser: valparse.NewStringSet("text", "json", "yaml").FoldCase(), Required: true}).
			SetDoc("select the output format"),
		sawyer.NewSwitch("incdir").Long("incdir").Retain(sawyer.SaveAll).SetExplode(true).
			Arg(sawyer.Argument{
				Name: "dirs",
				Parser: valparse.NewList(valparse.Member{
					Parser:    valparse.NewAny(),
					Separator: regexp.MustCompile(`,`),
				}),
				Required: true,
			}).
			SetDoc("add @v{dirs} (comma-separated) to the include search path; may be repeated"),
	)

	p.AddGroup(general, io)
	return p
}
