package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/tools"

	"github.com/spf13/cobra"
)

func newWalkCmd(o *options) *cobra.Command {
	var compact bool
	c := &cobra.Command{
		Use:   "walk",
		Short: "Feed input and print each step",
		Long: `walk feeds --input to the automaton and prints one line per step.
Without --input, walk reads stdin and feeds each line's characters
(without the newline) to the same automaton.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out = cmd.OutOrStdout()
				t   = core.NewTracker(o.pattern)
			)

			emit := func(ss []*core.Stride) error {
				if compact {
					_, err := io.WriteString(out, core.Strides(ss))
					return err
				}
				for _, s := range ss {
					js, err := json.Marshal(s)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\n", js)
				}
				return nil
			}

			if o.input != "" {
				return emit(t.Walk(core.Chars(o.input)))
			}

			in := bufio.NewScanner(cmd.InOrStdin())
			for in.Scan() {
				if err := emit(t.Walk(core.Chars(in.Text()))); err != nil {
					return err
				}
			}
			return in.Err()
		},
	}
	c.Flags().BoolVarP(&compact, "compact", "c", false, "one short line per step instead of JSON")
	return c
}

func newExpectCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "expect FILE...",
		Short: "Run session files and check their expectations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, filename := range args {
				s, err := tools.ReadSession(filename)
				if err != nil {
					return err
				}
				strides, err := s.Run(cmd.Context())
				if err != nil {
					return fmt.Errorf("%s: %w", filename, err)
				}
				fmt.Fprintf(out, "ok %s (%d steps)\n", filename, len(strides))
			}
			return nil
		},
	}
}
