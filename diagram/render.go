package diagram

import (
	"github.com/Comcast/kmpviz/element"
)

// SVGNS is the SVG namespace URI.
const SVGNS = "http://www.w3.org/2000/svg"

// Render builds the SVG for the Diagram using the given host.
//
// The loop and its label come first, then each node followed by its
// outgoing arrow and that arrow's label.
func Render[N any](h element.Host[N], d *Diagram) N {
	children := make([]N, 0, 2+4*len(d.Nodes))

	children = append(children,
		h.Element("path", element.A(
			"d", d.Loop.D,
			"fill", "none",
			"stroke", Ink,
			"stroke-width", StrokeWidth,
		), nil),
		label(h, d.Sigma))

	for i, c := range d.Nodes {
		children = append(children, circles(h, c)...)
		if i < len(d.Arrows) {
			children = append(children,
				h.Element("path", element.A(
					"d", d.Arrows[i].D,
					"stroke", Ink,
					"stroke-width", StrokeWidth,
					"fill", "none",
				), nil),
				label(h, d.Labels[i]))
		}
	}

	return h.Element("svg", element.A(
		"width", d.Width,
		"height", d.Height,
		"xmlns", SVGNS,
	), children)
}

// circles renders a node, which is two circles if it's accepting.
func circles[N any](h element.Host[N], c *Circle) []N {
	attrs := element.A(
		"cx", c.X,
		"cy", c.Y,
		"r", c.R,
		"fill", c.Fill,
		"stroke", Ink,
		"stroke-width", StrokeWidth,
	)
	outer := h.Element("circle", attrs, nil)
	if !c.Accepting {
		return []N{outer}
	}
	inner := h.Element("circle", attrs.With("r", c.R*InnerScale), nil)
	return []N{outer, inner}
}

func label[N any](h element.Host[N], l *Label) N {
	return h.Element("text", element.A(
		"x", l.X,
		"y", l.Y,
		"fill", Ink,
		"text-anchor", "middle",
	), []N{h.Text(l.Text)})
}
