package tools

import (
	"io"

	"github.com/Comcast/kmpviz/core"

	"gopkg.in/yaml.v2"
)

// Snapshot is a Spec together with an alive set, which is what
// WriteYAML writes.
type Snapshot struct {
	Spec  *core.Spec `yaml:"spec"`
	Alive core.Alive `yaml:"alive"`

	// Accepting is true when the accepting node is alive.
	Accepting bool `yaml:"accepting"`
}

// WriteYAML writes the automaton and its alive set as YAML.
func WriteYAML(spec *core.Spec, alive core.Alive, w io.Writer) error {
	s := &Snapshot{
		Spec:      spec,
		Alive:     alive,
		Accepting: alive.Has(spec.Accepting().Index),
	}
	bs, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}
