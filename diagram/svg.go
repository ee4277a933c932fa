package diagram

import (
	"io"

	"github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/element"

	"golang.org/x/net/html"
)

// Node lays out the tracker's automaton and builds it as an
// golang.org/x/net/html node tree.
func Node(t *core.Tracker, width float64) *html.Node {
	d := Layout(t.Pattern, t.Alive, width)
	return Render[*html.Node](element.NewSVG(), d)
}

// SVG writes the tracker's automaton as SVG markup.
func SVG(w io.Writer, t *core.Tracker, width float64) error {
	return element.Render(w, Node(t, width))
}

// SVGString is SVG that returns a string.
func SVGString(t *core.Tracker, width float64) (string, error) {
	return element.String(Node(t, width))
}

// Painted reads the alive set back out of a rendered diagram: the
// indexes of the nodes whose outer circle has AliveFill.
//
// Circles come in node order.  An accepting node's inner circle
// follows its outer circle and shares its center.
func Painted(root *html.Node) core.Alive {
	var (
		alive  = core.NewAlive()
		i      = -1
		lastCX string
	)
	for _, c := range element.Find(root, "circle") {
		cx, _ := element.Attribute(c, "cx")
		if 0 <= i && cx == lastCX {
			continue
		}
		i++
		lastCX = cx
		if fill, _ := element.Attribute(c, "fill"); fill == AliveFill {
			alive.Add(i)
		}
	}
	return alive
}
