package core

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Alive is a set of state indexes.
//
// The zero value is an empty set that's ready to use for reading but
// not for Add.  Use NewAlive.
type Alive map[int]struct{}

// NewAlive makes a set containing the given states.
func NewAlive(states ...int) Alive {
	a := make(Alive, len(states))
	for _, i := range states {
		a[i] = struct{}{}
	}
	return a
}

// Add puts the state in the set.
func (a Alive) Add(i int) {
	a[i] = struct{}{}
}

// Has reports whether the state is in the set.
func (a Alive) Has(i int) bool {
	_, have := a[i]
	return have
}

// Sorted returns the states in ascending order.
func (a Alive) Sorted() []int {
	acc := make([]int, 0, len(a))
	for i := range a {
		acc = append(acc, i)
	}
	sort.Ints(acc)
	return acc
}

// Copy makes a copy of the set.
func (a Alive) Copy() Alive {
	acc := make(Alive, len(a))
	for i := range a {
		acc[i] = struct{}{}
	}
	return acc
}

// Equal reports whether both sets have the same members.
func (a Alive) Equal(b Alive) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !b.Has(i) {
			return false
		}
	}
	return true
}

// String renders the set like "{0,2}".
func (a Alive) String() string {
	ss := make([]string, 0, len(a))
	for _, i := range a.Sorted() {
		ss = append(ss, strconv.Itoa(i))
	}
	return "{" + strings.Join(ss, ",") + "}"
}

// MarshalJSON writes the set as a sorted array.
func (a Alive) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Sorted())
}

// UnmarshalJSON reads an array of states.
func (a *Alive) UnmarshalJSON(bs []byte) error {
	var is []int
	if err := json.Unmarshal(bs, &is); err != nil {
		return err
	}
	*a = NewAlive(is...)
	return nil
}

// MarshalYAML writes the set as a sorted sequence.
func (a Alive) MarshalYAML() (interface{}, error) {
	return a.Sorted(), nil
}
