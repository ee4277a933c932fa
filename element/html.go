package element

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML is a Host that builds golang.org/x/net/html node trees.
type HTML struct {
	// Namespace is set on every element.  Use "svg" for SVG
	// content.
	Namespace string
}

// NewSVG makes an HTML host for SVG elements.
func NewSVG() *HTML {
	return &HTML{
		Namespace: "svg",
	}
}

// Element implements Host.
func (h *HTML) Element(tag string, attrs Attrs, children []*html.Node) *html.Node {
	n := &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: h.Namespace,
		Attr:      make([]html.Attribute, 0, len(attrs)),
	}
	for _, a := range attrs {
		n.Attr = append(n.Attr, html.Attribute{
			Key: a.Name,
			Val: Format(a.Value),
		})
	}
	for _, c := range children {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		n.AppendChild(c)
	}
	return n
}

// Text implements Host.
func (h *HTML) Text(s string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: s,
	}
}

// Render writes the node tree as markup.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// String renders the node tree as markup.
func String(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Attribute returns the value of a node's attribute.
func Attribute(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Find returns all elements with the given tag in the tree (in
// document order).
func Find(n *html.Node, tag string) []*html.Node {
	var acc []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			acc = append(acc, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return acc
}
