package tools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Comcast/kmpviz/core"
)

func TestMermaid(t *testing.T) {
	var (
		spec  = core.Machine("ab")
		alive = core.NewAlive(0, 2)
	)

	t.Run("defaults", func(t *testing.T) {
		out := &bytes.Buffer{}
		if err := Mermaid(spec, alive, out, nil); err != nil {
			t.Fatal(err)
		}
		want := `graph LR
  s0("0")
  style s0 fill:#f98b8b
  s1("1")
  s2(("2"))
  style s2 fill:#f98b8b
  s0 -- "Σ" --> s0
  s0 -- "a" --> s1
  s1 -- "b" --> s2

`
		if got := out.String(); got != want {
			t.Fatalf("got\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("noRestart", func(t *testing.T) {
		out := &bytes.Buffer{}
		opts := &MermaidOpts{
			AcceptingClass: "accepting",
		}
		if err := Mermaid(spec, alive, out, opts); err != nil {
			t.Fatal(err)
		}
		got := out.String()
		if strings.Contains(got, "Σ") {
			t.Fatal(got)
		}
		if strings.Contains(got, "style") {
			t.Fatal(got)
		}
		if !strings.Contains(got, "class s2 accepting") {
			t.Fatal(got)
		}
	})
}
