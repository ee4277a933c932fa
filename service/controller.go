package service

import (
	"github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/diagram"
)

// Controller is the single owner of one Tracker.
//
// A pattern change replaces the Tracker.  An input advances it.
// Either way, the caller then renders.  A Controller is not safe for
// concurrent use; each websocket connection has its own.
type Controller struct {
	tracker *core.Tracker
}

// NewController makes a Controller with a fresh Tracker for the
// pattern.
func NewController(pattern string) *Controller {
	return &Controller{
		tracker: core.NewTracker(pattern),
	}
}

// SetPattern replaces the Tracker with a fresh one for the pattern.
func (c *Controller) SetPattern(pattern string) {
	c.tracker = core.NewTracker(pattern)
}

// Input feeds one character to the Tracker.
func (c *Controller) Input(s string) core.Alive {
	return c.tracker.Advance(s)
}

// Tracker returns a copy of the current Tracker.
func (c *Controller) Tracker() *core.Tracker {
	return c.tracker.Copy()
}

// Reply describes the Controller's current state.  If width is
// positive, the reply includes the rendered SVG.
func (c *Controller) Reply(width float64) (*Reply, error) {
	r := &Reply{
		Pattern:  c.tracker.Pattern,
		Alive:    c.tracker.Alive.Copy(),
		Accepted: c.tracker.Accepting(),
	}
	if 0 < width {
		svg, err := diagram.SVGString(c.tracker, width)
		if err != nil {
			return nil, err
		}
		r.SVG = svg
	}
	return r, nil
}
