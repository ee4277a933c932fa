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
	"context"
	"fmt"
	"os"

	"github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/diagram"
	"github.com/Comcast/kmpviz/util"

	"github.com/jsccast/yaml"
)

// Step is one input and what's expected after consuming it.
type Step struct {
	// Doc is an opaque documentation string.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Input is given to Advance.
	Input string `json:"input" yaml:"input"`

	// Alive, if not nil, is the expected alive set after the
	// step.
	Alive []int `json:"alive,omitempty" yaml:"alive,omitempty"`

	// Accepted, if not nil, is whether the step should complete a
	// match.
	Accepted *bool `json:"accepted,omitempty" yaml:"accepted,omitempty"`
}

// Session is a pattern and a sequence of Steps with expectations.
//
// Sessions are usually written in YAML:
//
//	doc: abacaba from the top
//	pattern: abacaba
//	steps:
//	- input: a
//	  alive: [0, 1]
//	- input: b
//	  alive: [0, 2]
type Session struct {
	// Doc is an opaque documentation string.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Pattern is the pattern for a fresh Tracker.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Steps are run in order.
	Steps []Step `json:"steps" yaml:"steps"`

	// Width, if positive, makes Run also render the diagram after
	// every step and check that the nodes painted alive are the
	// alive set.
	Width float64 `json:"width,omitempty" yaml:"width,omitempty"`
}

// Mismatch occurs when a Step's expectation isn't met.
type Mismatch struct {
	// Step is the index of the failing Step.
	Step int

	// What names the failed check, e.g. "alive" or "painted".
	What string

	Want interface{}
	Got  interface{}
}

func (e *Mismatch) Error() string {
	return fmt.Sprintf("step %d: %s: want %v, got %v", e.Step, e.What, e.Want, e.Got)
}

// ReadSession reads a Session from a YAML (or JSON) file.
func ReadSession(filename string) (*Session, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var s Session
	if err = yaml.Unmarshal(bs, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return &s, nil
}

// Run feeds the Steps to a fresh Tracker and checks each
// expectation.  Returns the Strides taken so far along with the first
// Mismatch (if any).
func (s *Session) Run(ctx context.Context) ([]*core.Stride, error) {
	t := core.NewTracker(s.Pattern)
	strides := make([]*core.Stride, 0, len(s.Steps))

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return strides, err
		}

		stride := t.Walk([]string{step.Input})[0]
		strides = append(strides, stride)
		util.Logf("session step %d %q %s", i, step.Input, stride.To)

		if step.Alive != nil {
			if want := core.NewAlive(step.Alive...); !want.Equal(stride.To) {
				return strides, &Mismatch{
					Step: i,
					What: "alive",
					Want: want,
					Got:  stride.To,
				}
			}
		}
		if step.Accepted != nil && *step.Accepted != stride.Accepted {
			return strides, &Mismatch{
				Step: i,
				What: "accepted",
				Want: *step.Accepted,
				Got:  stride.Accepted,
			}
		}

		if 0 < s.Width {
			if painted := diagram.Painted(diagram.Node(t, s.Width)); !painted.Equal(stride.To) {
				return strides, &Mismatch{
					Step: i,
					What: "painted",
					Want: stride.To,
					Got:  painted,
				}
			}
		}
	}

	return strides, nil
}
