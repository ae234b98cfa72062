package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mstanek/kabigen"
	"github.com/mstanek/kabigen/chroma"
	"github.com/mstanek/kabigen/htmlgen"
	"github.com/mstanek/kabigen/yaml"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		graphicalDiffs  bool
		highlightSyntax bool
	)

	cmd := &cobra.Command{
		Use:   "kabigen <input-dir> <output-dir>",
		Short: "Render kernel symbol difference records as a static HTML report",
		Long: `kabigen converts a directory of YAML difference records describing
kernel symbol comparisons into a browsable static HTML site: one page per
differing internal symbol, one page per affected external symbol, and an
index cross-linking both.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var highlighter kabigen.Highlighter = kabigen.PlainHighlighter{}
			if highlightSyntax {
				highlighter = chroma.NewHighlighter()
			}

			gen := htmlgen.New(yaml.NewLoader(), highlighter, graphicalDiffs)
			return gen.Generate(args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&graphicalDiffs, "graphical-diffs", false,
		"parse diffs and render them as aligned two-column tables")
	cmd.Flags().BoolVar(&highlightSyntax, "highlight-syntax", false,
		"enable C syntax highlighting of rendered diffs")

	return cmd
}
