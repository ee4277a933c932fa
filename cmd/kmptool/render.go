package main

import (
	"fmt"
	"math"

	"github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/diagram"
	"github.com/Comcast/kmpviz/tools"

	"github.com/spf13/cobra"
)

func newSVGCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "svg",
		Short: "Write the diagram as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(o.width > 0) || math.IsInf(o.width, 0) {
				return fmt.Errorf("width must be a positive number, not %v", o.width)
			}
			return diagram.SVG(cmd.OutOrStdout(), o.tracker(), o.width)
		},
	}
}

func newDotCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Write the automaton as Graphviz dot",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := o.tracker()
			return tools.Dot(core.Machine(t.Pattern), t.Alive, cmd.OutOrStdout())
		},
	}
}

func newPNGCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "png BASENAME",
		Short: "Write BASENAME.dot and BASENAME.png (needs Graphviz)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := o.tracker()
			filename, err := tools.PNG(core.Machine(t.Pattern), t.Alive, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", filename)
			return nil
		},
	}
}

func newMermaidCmd(o *options) *cobra.Command {
	var noRestart bool
	c := &cobra.Command{
		Use:   "mermaid",
		Short: "Write the automaton as a Mermaid graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := o.tracker()
			opts := *tools.DefaultMermaidOpts
			opts.ShowRestart = !noRestart
			return tools.Mermaid(core.Machine(t.Pattern), t.Alive, cmd.OutOrStdout(), &opts)
		},
	}
	c.Flags().BoolVar(&noRestart, "no-restart", false, "leave out the Σ loop")
	return c
}

func newYAMLCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "yaml",
		Short: "Write the automaton and its alive set as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := o.tracker()
			return tools.WriteYAML(core.Machine(t.Pattern), t.Alive, cmd.OutOrStdout())
		},
	}
}
