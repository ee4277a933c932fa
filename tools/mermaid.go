/* Copyright 2026 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tools

import (
	"fmt"
	"io"
	"strings"

	. "github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/util"
)

type MermaidOpts struct {
	// AliveFill is the fill color for alive nodes.
	AliveFill string `json:"aliveFill,omitempty"`

	// AcceptingClass, if given, is a CSS class for the
	// accepting node.  Mermaid needs a classDef for it
	// somewhere.
	AcceptingClass string `json:"acceptingClass,omitempty"`

	// ShowRestart includes the Σ loop on s0.
	ShowRestart bool `json:"showRestart"`
}

// DefaultMermaidOpts is used when Mermaid gets nil opts.
var DefaultMermaidOpts = &MermaidOpts{
	AliveFill:   "#f98b8b",
	ShowRestart: true,
}

// Mermaid makes a Mermaid (https://mermaidjs.github.io/) input file
// for the given automaton.
func Mermaid(spec *Spec, alive Alive, w io.Writer, opts *MermaidOpts) error {

	if opts == nil {
		opts = DefaultMermaidOpts
	}

	util.Logf("mermaid processing %d nodes", len(spec.Nodes))

	fmt.Fprintf(w, "graph LR\n")

	for _, n := range spec.Nodes {
		if n.Accepting {
			fmt.Fprintf(w, "  %s((\"%d\"))\n", n.Name(), n.Index)
			if opts.AcceptingClass != "" {
				fmt.Fprintf(w, "  class %s %s\n", n.Name(), opts.AcceptingClass)
			}
		} else {
			fmt.Fprintf(w, "  %s(\"%d\")\n", n.Name(), n.Index)
		}
		if alive.Has(n.Index) && opts.AliveFill != "" {
			fmt.Fprintf(w, "  style %s fill:%s\n", n.Name(), opts.AliveFill)
		}
	}

	for _, n := range spec.Nodes {
		for _, b := range n.Branches {
			if b.Restart && !opts.ShowRestart {
				continue
			}
			label := strings.Replace(b.Symbol, `"`, "#quot;", -1)
			fmt.Fprintf(w, "  %s -- \"%s\" --> s%d\n", n.Name(), label, b.Target)
		}
	}

	_, err := fmt.Fprintf(w, "\n")
	util.Logf("mermaid gen done")

	return err
}
