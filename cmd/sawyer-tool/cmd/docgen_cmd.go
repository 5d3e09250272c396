package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sawyer-cli/sawyer/docgen"
)

var docgenMarkdown bool

var docgenCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Render the demonstration parser's documentation",
	RunE: func(_ *cobra.Command, _ []string) error {
		p := demoParser()
		if docgenMarkdown {
			return docgen.RenderMarkdown(os.Stdout, p)
		}
		return docgen.Generate(os.Stdout, p)
	},
}

func init() {
	rootCmd.AddCommand(docgenCmd)
	docgenCmd.Flags().BoolVar(&docgenMarkdown, "markdown", false, "render a Markdown reference instead of a terminal help page")
}
