package core

import (
	"encoding/json"
	"unicode/utf8"
)

// Tracker holds a pattern and the states of the automaton for that
// pattern that are currently alive.
//
// A Tracker is not safe for concurrent use.  It's meant to have a
// single owner, which replaces the whole Tracker when the pattern
// changes.
type Tracker struct {
	// Pattern is the string being matched.
	Pattern string `json:"pattern"`

	// Alive is the current set of alive states.
	Alive Alive `json:"alive"`
}

// NewTracker makes a Tracker for the given pattern.  Only state 0 is
// alive.
func NewTracker(pattern string) *Tracker {
	return &Tracker{
		Pattern: pattern,
		Alive:   NewAlive(0),
	}
}

// Len returns the length of the pattern in characters, which is also
// the index of the accepting state.
func (t *Tracker) Len() int {
	return utf8.RuneCountInString(t.Pattern)
}

// Advance is the fundamental operation that consumes one character.
//
// The new alive set always contains 0.  For each currently alive
// state i, if the pattern's i-th character is c, then i+1 is alive
// too.
//
// The accepting state (i == Len()) has no character to compare, so
// it never contributes a transition.  Any string that isn't exactly
// one character matches nothing.
func (t *Tracker) Advance(c string) Alive {
	var (
		alive = NewAlive(0)
		rs    = []rune(t.Pattern)
	)

	for i := range t.Alive {
		if i < len(rs) && string(rs[i]) == c {
			alive.Add(i + 1)
		}
	}

	t.Alive = alive
	return alive
}

// Accepting reports whether the accepting state is alive, which
// means the last character consumed completed a match.
func (t *Tracker) Accepting() bool {
	return t.Alive.Has(t.Len())
}

// Copy makes a deep copy of the Tracker.
func (t *Tracker) Copy() *Tracker {
	return &Tracker{
		Pattern: t.Pattern,
		Alive:   t.Alive.Copy(),
	}
}

func (t *Tracker) String() string {
	if t == nil {
		return "nil"
	}
	js, err := json.Marshal(t.Pattern)
	if err != nil {
		return t.Pattern + "/" + t.Alive.String()
	}
	return string(js) + "/" + t.Alive.String()
}

// Stride represents a step that Walk has taken.
type Stride struct {
	// From is the alive set before the step.
	From Alive `json:"from" yaml:"from"`

	// To is the alive set after the step.
	To Alive `json:"to" yaml:"to"`

	// Consumed is the input given to Advance.
	Consumed string `json:"consumed" yaml:"consumed"`

	// Accepted is true when To contains the accepting state.
	Accepted bool `json:"accepted,omitempty" yaml:"accepted,omitempty"`
}

// Walk advances once for each of the given inputs and returns a
// Stride for each step.
func (t *Tracker) Walk(inputs []string) []*Stride {
	strides := make([]*Stride, 0, len(inputs))
	for _, c := range inputs {
		from := t.Alive.Copy()
		to := t.Advance(c)
		strides = append(strides, &Stride{
			From:     from,
			To:       to.Copy(),
			Consumed: c,
			Accepted: t.Accepting(),
		})
	}
	return strides
}

// Chars splits a string into its characters, which is handy for
// turning a line of text into inputs for Walk.
func Chars(s string) []string {
	acc := make([]string, 0, len(s))
	for _, r := range s {
		acc = append(acc, string(r))
	}
	return acc
}
