package tools

// dot -Tpng g.dot > g.png

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	. "github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/util"
)

// Dot makes a Graphviz dot file for the given automaton.
//
// Nodes in the given alive set are filled red.  The accepting node
// is a double circle.  The restart branch is a dashed loop on s0.
func Dot(spec *Spec, alive Alive, w io.Writer) error {

	util.Logf("dot processing %d nodes", len(spec.Nodes))

	fmt.Fprintf(w, "digraph G {\n")
	fmt.Fprintf(w, `  graph [rankdir=LR,nodesep=0.3,ranksep=0.6]
  node [shape="circle" style="filled" color="black"]
  edge [fontsize = "12"]
`)

	for _, n := range spec.Nodes {
		shape := "circle"
		if n.Accepting {
			shape = "doublecircle"
		}
		fillcolor := "white"
		if alive.Has(n.Index) {
			fillcolor = "red"
		}
		style := "filled"
		if n.Index == 0 {
			style += ",bold"
		}
		fmt.Fprintf(w, "  %s [shape=\"%s\", style=\"%s\", fillcolor=\"%s\", label=\"%d\" ]\n",
			n.Name(), shape, style, fillcolor, n.Index)
	}

	for _, n := range spec.Nodes {
		for _, b := range n.Branches {
			style := "solid"
			if b.Restart {
				style = "dashed"
			}
			fmt.Fprintf(w, "  %s -> s%d [ style=\"%s\" label = \"%s\" ]\n",
				n.Name(), b.Target, style, escape(b.Symbol))
		}
	}

	_, err := fmt.Fprintf(w, "}\n")
	return err
}

// PNG generates a PNG image based on output from Dot.
//
// This function with write two files: basename.dot and basename.png,
// where the basename is the given string.  Requires Graphviz's dot
// in the PATH.
func PNG(spec *Spec, alive Alive, basename string) (string, error) {
	dotname := basename + ".dot"
	pngname := basename + ".png"

	dotfile, err := os.Create(dotname)
	if err != nil {
		return pngname, err
	}
	if err := Dot(spec, alive, dotfile); err != nil {
		dotfile.Close()
		return pngname, err
	}
	if err := dotfile.Close(); err != nil {
		return pngname, err
	}
	if err := exec.Command("dot", "-Tpng", "-o", pngname, dotname).Run(); err != nil {
		return pngname, err
	}
	return pngname, nil
}

func escape(s string) string {
	s = strings.Replace(s, `\`, `\\`, -1)
	return strings.Replace(s, `"`, `\"`, -1)
}
