package main

import (
	"io"

	"github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/util"

	"github.com/spf13/cobra"
)

type options struct {
	pattern string
	input   string
	width   float64
	verbose bool
}

// tracker makes a Tracker for the pattern and feeds it the input.
func (o *options) tracker() *core.Tracker {
	t := core.NewTracker(o.pattern)
	t.Walk(core.Chars(o.input))
	return t
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "kmptool",
		Short: "Render and exercise naive string-matching automata",
		Long: `kmptool builds the automaton for a pattern, feeds it some input, and
then renders the result (svg, dot, png, mermaid, yaml) or reports each step
(walk).  expect runs YAML session files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			util.Logging = o.verbose
		},
	}

	root.SetIn(in)
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&o.pattern, "pattern", "p", "abacaba", "pattern")
	pf.StringVarP(&o.input, "input", "i", "", "characters to feed the automaton")
	pf.Float64VarP(&o.width, "width", "w", 800, "viewport width for svg")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newSVGCmd(o),
		newDotCmd(o),
		newPNGCmd(o),
		newMermaidCmd(o),
		newYAMLCmd(o),
		newWalkCmd(o),
		newExpectCmd(o),
	)

	return root
}
