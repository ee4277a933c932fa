package element

import (
	"testing"

	"golang.org/x/net/html"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		arg  interface{}
		want string
	}{
		{"int", 32, "32"},
		{"whole float", 32.0, "32"},
		{"fraction", 25.6, "25.6"},
		{"negative", -13.0, "-13"},
		{"string", "red", "red"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.arg); got != tt.want {
				t.Errorf("Format() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestA(t *testing.T) {
	as := A("cx", 10, "fill", "red")
	if len(as) != 2 {
		t.Fatal(len(as))
	}
	if v, have := as.Get("fill"); !have || v != "red" {
		t.Fatal(v)
	}

	bs := as.With("r", 4).With("cx", 11)
	if len(bs) != 3 {
		t.Fatal(len(bs))
	}
	if v, _ := bs.Get("cx"); v != 11 {
		t.Fatal(v)
	}
	if v, _ := as.Get("cx"); v != 10 {
		t.Fatal("With changed the original")
	}
}

func TestAOdd(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	A("cx")
}

func TestHTMLHost(t *testing.T) {
	var h Host[*html.Node] = NewSVG()

	label := h.Element("text", A("x", 1.5, "y", 2), []*html.Node{h.Text("a<b")})
	root := h.Element("svg", A("width", 100, "height", 50), []*html.Node{
		h.Element("circle", A("r", 3), nil),
		label,
	})

	got, err := String(root)
	if err != nil {
		t.Fatal(err)
	}

	want := `<svg width="100" height="50"><circle r="3"></circle><text x="1.5" y="2">a&lt;b</text></svg>`
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}

	if n := len(Find(root, "circle")); n != 1 {
		t.Fatal(n)
	}
	if v, have := Attribute(label, "x"); !have || v != "1.5" {
		t.Fatal(v)
	}
}
