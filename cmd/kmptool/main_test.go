package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	out := &bytes.Buffer{}
	root := newRootCmd(strings.NewReader(stdin), out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSVG(t *testing.T) {
	got, err := run(t, "", "svg", "-p", "ab", "-i", "a", "-w", "500")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, `<svg width="500"`) {
		t.Fatal(got)
	}
	for _, w := range []string{"0", "-3", "NaN", "+Inf"} {
		if _, err = run(t, "", "svg", "-w", w); err == nil {
			t.Fatalf("width %s: expected an error", w)
		}
	}
}

func TestPNG(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("Graphviz dot isn't installed")
	}
	base := filepath.Join(t.TempDir(), "ab")
	got, err := run(t, "", "png", "-p", "ab", "-i", "a", base)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(got) != base+".png" {
		t.Fatal(got)
	}
	for _, suffix := range []string{".dot", ".png"} {
		if _, err := os.Stat(base + suffix); err != nil {
			t.Fatal(err)
		}
	}
	if _, err = run(t, "", "png"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestWalkInput(t *testing.T) {
	got, err := run(t, "", "walk", "-p", "aaa", "-i", "aaa", "-c")
	if err != nil {
		t.Fatal(err)
	}
	want := "a {0} -> {0,1}\n" +
		"a {0,1} -> {0,1,2}\n" +
		"a {0,1,2} -> {0,1,2,3} accepted\n"
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestWalkStdin(t *testing.T) {
	got, err := run(t, "ab\nc\n", "walk", "-p", "abacaba")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatal(got)
	}
	if lines[2] != `{"from":[0,2],"to":[0],"consumed":"c"}` {
		t.Fatal(lines[2])
	}
}

func TestExports(t *testing.T) {
	for _, sub := range []string{"dot", "mermaid", "yaml"} {
		got, err := run(t, "", sub, "-p", "ab")
		if err != nil {
			t.Fatalf("%s: %v", sub, err)
		}
		if got == "" {
			t.Fatalf("%s: no output", sub)
		}
	}
	got, _ := run(t, "", "mermaid", "-p", "ab", "--no-restart")
	if strings.Contains(got, "Σ") {
		t.Fatal(got)
	}
}

func TestExpect(t *testing.T) {
	got, err := run(t, "", "expect", "../../testdata/sessions/abacaba.yaml", "../../testdata/sessions/aaa.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(got, "ok ") != 2 {
		t.Fatal(got)
	}
	if _, err = run(t, "", "expect"); err == nil {
		t.Fatal("expected an error")
	}
}
