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

// Package diagram lays out the automaton for a pattern as a
// horizontal chain of circles and renders it as SVG through an
// element.Host.
//
// Layout is a pure function of the pattern, the alive set, and the
// viewport width.  Nothing is cached or diffed.  Every render starts
// over.
package diagram

import (
	"fmt"
	"math"

	"github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/element"
)

var (
	// MaxRadius is the largest node radius.
	MaxRadius = 32.0

	// MinRadius replaces a radius that comes out zero, negative or
	// non-finite.  Small positive radii are kept.
	MinRadius = 1.0

	// DefaultWidth replaces a viewport width that isn't a positive
	// finite number.
	DefaultWidth = 800.0

	// AliveFill is the fill for nodes in the alive set.
	AliveFill = "red"

	// DeadFill is the fill for all other nodes.
	DeadFill = "white"

	// Ink is the stroke and text color.
	Ink = "black"

	// StrokeWidth is the width of every stroke.
	StrokeWidth = "2"

	// InnerScale is the radius of the accepting node's inner
	// circle relative to the outer one.
	InnerScale = 0.8
)

// Diagram is the geometry for one render.
type Diagram struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Radius is the node radius.
	Radius float64 `json:"radius"`

	// Arrow is the length of a forward arrow.
	Arrow float64 `json:"arrow"`

	// Offset shifts the chain so it's centered.
	Offset float64 `json:"offset"`

	Nodes  []*Circle `json:"nodes"`
	Arrows []*Path   `json:"arrows"`
	Labels []*Label  `json:"labels"`

	// Loop is the restart loop over node 0.
	Loop *Path `json:"loop"`

	// Sigma labels Loop.
	Sigma *Label `json:"sigma"`
}

// Circle is a node.
type Circle struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Fill  string  `json:"fill"`

	// Accepting nodes get a second, smaller circle.
	Accepting bool `json:"accepting,omitempty"`
}

// Path is an SVG path.
type Path struct {
	D string `json:"d"`
}

// Label is some text centered at (X,Y).
type Label struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Radius computes the node radius for a pattern length and viewport
// width.
func Radius(n int, width float64) float64 {
	r := math.Min(MaxRadius, (width-10)/float64(4*n+4))
	if !(0 < r) || math.IsInf(r, 0) {
		r = MinRadius
	}
	return r
}

// Viewport returns the width unless it isn't a positive finite
// number, in which case it returns DefaultWidth.
func Viewport(width float64) float64 {
	if !(0 < width) || math.IsInf(width, 0) {
		return DefaultWidth
	}
	return width
}

// Layout computes the Diagram for the given pattern and alive set at
// the given viewport width.
func Layout(pattern string, alive core.Alive, width float64) *Diagram {
	width = Viewport(width)

	var (
		rs     = []rune(pattern)
		n      = len(rs)
		r      = Radius(n, width)
		arrow  = 2 * r
		height = 5 * r
		offset = (width-4*r-4*float64(n)*r)/2 - 10
		y      = height - r - 3
	)

	x := func(i int) float64 {
		return float64(i)*(2*r+arrow) + 2*r + offset
	}

	d := &Diagram{
		Width:  width,
		Height: height,
		Radius: r,
		Arrow:  arrow,
		Offset: offset,
		Nodes:  make([]*Circle, 0, n+1),
		Arrows: make([]*Path, 0, n),
		Labels: make([]*Label, 0, n),
	}

	for i := 0; i <= n; i++ {
		fill := DeadFill
		if alive.Has(i) {
			fill = AliveFill
		}
		d.Nodes = append(d.Nodes, &Circle{
			Index:     i,
			X:         x(i),
			Y:         y,
			R:         r,
			Fill:      fill,
			Accepting: i == n,
		})
		if i == n {
			break
		}
		d.Arrows = append(d.Arrows, &Path{
			D: fmt.Sprintf("M %s %s l %s 0 l -13 -7 m 13 7 l -13 7",
				f(x(i)+r), f(y), f(arrow)),
		})
		d.Labels = append(d.Labels, &Label{
			X:    (x(i)+x(i+1))/2 - 4,
			Y:    y * 0.95,
			Text: string(rs[i]),
		})
	}

	var (
		x0    = x(0) - r*0.9
		x1    = x(0) + r*0.9
		ly    = y - r - 2
		highY = ly - 1.2*r
	)
	d.Loop = &Path{
		D: fmt.Sprintf("M %s %s Q %s %s, %s %s Q %s %s, %s %s l -5 -6 m 5 6 l 6 -4",
			f(x0), f(ly),
			f(x0-10), f(highY), f((x0+x1)/2), f(highY),
			f(x1+10), f(highY), f(x1), f(ly)),
	}
	d.Sigma = &Label{
		X:    x(0),
		Y:    y - 2.5*r,
		Text: core.Sigma,
	}

	return d
}

func f(x float64) string {
	return element.Float(x)
}
