package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	tidwallpretty "github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/sawyer-cli/sawyer"
)

var inspectDebug bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [args...]",
	Short: "Parse args against the demonstration parser and dump the Result as JSON",
	RunE: func(_ *cobra.Command, args []string) error {
		p := demoParser()
		res, err := p.Parse(args)
		if err != nil {
			exitWithError("%v", err)
		}
		if inspectDebug {
			fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(res.Occurrences()))
		}
		out, err := resultJSON(res)
		if err != nil {
			return err
		}
		fmt.Println(string(tidwallpretty.Pretty([]byte(out))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectDebug, "debug", false, "also dump the parsed occurrences as a Go-syntax value to stderr")
}

// resultJSON renders a Result into a JSON document using sjson's
// path-based Set calls, one field at a time, the way a log pipeline that
// only ever appends fields tends to build up a record.
func resultJSON(res *sawyer.Result) (string, error) {
	doc := "{}"
	var err error
	for i, pv := range res.Occurrences() {
		base := fmt.Sprintf("parsed.%d", i)
		if doc, err = sjson.Set(doc, base+".key", pv.Key); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, base+".name", pv.Name); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, base+".token", pv.Token); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, base+".value", pv.Value.String()); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, base+".location", pv.Location.String()); err != nil {
			return "", err
		}
	}
	if doc, err = sjson.Set(doc, "skipped", res.SkippedArgs()); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "unreached", res.UnreachedArgs()); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "unparsed", res.UnparsedArgs(true)); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "parsedArgs", res.ParsedArgs()); err != nil {
		return "", err
	}
	return doc, nil
}
