package core

import (
	"strconv"
)

// Sigma is the label for the restart branch, which any character can
// follow.
const Sigma = "Σ"

// Spec is a description of the automaton for a pattern.
//
// A Spec gives the structure of the automaton.  It doesn't include
// any state.  See Tracker for that.
type Spec struct {
	// Pattern is the string the automaton matches.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Doc is general documentation about this automaton.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Nodes are the states 0 through len(Pattern) in order.
	Nodes []*Node `json:"nodes" yaml:"nodes"`
}

// Node represents one state: the length of a prefix of the pattern.
type Node struct {
	// Index is the length of the prefix.
	Index int `json:"index" yaml:"index"`

	// Accepting is true only for the last node.
	Accepting bool `json:"accepting,omitempty" yaml:"accepting,omitempty"`

	// Branches are the transitions out of this node.
	Branches []*Branch `json:"branches,omitempty" yaml:"branches,omitempty"`
}

// Name returns the node's name for exporters, like "s0".
func (n *Node) Name() string {
	return "s" + strconv.Itoa(n.Index)
}

// Terminal determines if a node has no branches.
func (n *Node) Terminal() bool {
	return len(n.Branches) == 0
}

// Branch is a transition to Target on the character Symbol.
type Branch struct {
	// Symbol is the pattern character or Sigma.
	Symbol string `json:"symbol" yaml:"symbol"`

	// Target is the index of the next node.
	Target int `json:"target" yaml:"target"`

	// Restart is true for the Σ branch.
	Restart bool `json:"restart,omitempty" yaml:"restart,omitempty"`
}

// Machine builds the Spec for the given pattern.
//
// Node i < N has one forward branch to i+1 on pattern[i].  Node 0
// also gets the Σ restart branch back to itself.  The accepting node
// N has no branches.
func Machine(pattern string) *Spec {
	rs := []rune(pattern)
	nodes := make([]*Node, 0, len(rs)+1)
	for i := 0; i <= len(rs); i++ {
		n := &Node{
			Index:     i,
			Accepting: i == len(rs),
		}
		if i == 0 {
			n.Branches = append(n.Branches, &Branch{
				Symbol:  Sigma,
				Target:  0,
				Restart: true,
			})
		}
		if i < len(rs) {
			n.Branches = append(n.Branches, &Branch{
				Symbol: string(rs[i]),
				Target: i + 1,
			})
		}
		nodes = append(nodes, n)
	}
	return &Spec{
		Pattern: pattern,
		Nodes:   nodes,
	}
}

// Accepting returns the accepting node.
func (s *Spec) Accepting() *Node {
	return s.Nodes[len(s.Nodes)-1]
}
