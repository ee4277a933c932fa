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

package service

import (
	"context"
	"errors"
	"math"

	"github.com/Comcast/kmpviz/core"
)

// MaxWidth is the largest viewport width we'll render.
var MaxWidth = 16384.0

// Op is an operation sent over the websocket API.
//
// Only one of Pattern, Input, or Get should have value.
type Op struct {
	// Pattern replaces the Tracker with a fresh one for this
	// pattern.
	Pattern *string `json:"pattern,omitempty"`

	// Input is fed to the Tracker.
	Input *string `json:"input,omitempty"`

	// Get just asks for the current state.
	Get bool `json:"get,omitempty"`

	// Width is the client's viewport width.  Zero means the
	// service's default.
	Width float64 `json:"width,omitempty"`
}

// Reply is what an Op returns.
type Reply struct {
	Pattern  string     `json:"pattern"`
	Alive    core.Alive `json:"alive"`
	Accepted bool       `json:"accepted"`

	// SVG is the rendered diagram.
	SVG string `json:"svg,omitempty"`

	// Err will hold a string representation of an error (if any)
	// that results from processing the operation.
	Err string `json:"err,omitempty"`
}

// NoOp occurs when an Op has nothing to do.
var NoOp = errors.New("op has no pattern, input, or get")

// erred is a utility function that makes a Reply carrying an error.
func erred(err error) *Reply {
	return &Reply{
		Err: err.Error(),
	}
}

// Do performs the operation with the given Controller and renders
// the result.
func (o *Op) Do(ctx context.Context, c *Controller, defaultWidth float64) (*Reply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case o.Pattern != nil:
		c.SetPattern(*o.Pattern)
	case o.Input != nil:
		c.Input(*o.Input)
	case o.Get:
	default:
		return nil, NoOp
	}

	return c.Reply(Width(o.Width, defaultWidth))
}

// Width picks a usable viewport width: the given one if it's
// positive and finite (capped at MaxWidth), otherwise the default.
func Width(w, def float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return def
	}
	return math.Min(w, MaxWidth)
}
