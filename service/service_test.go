package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	. "github.com/Comcast/kmpviz/util/testutil"

	"github.com/gorilla/websocket"
)

func newTestService() *Service {
	return New(DefaultConfig())
}

func get(t *testing.T, s *Service, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	w := get(t, newTestService(), "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"status":"ok"}` {
		t.Fatal(got)
	}
}

func TestPage(t *testing.T) {
	w := get(t, newTestService(), "/?pattern=xyz")
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	if !strings.Contains(w.Body.String(), `value="xyz"`) {
		t.Fatal(w.Body.String())
	}
}

func TestSVG(t *testing.T) {
	s := newTestService()

	w := get(t, s, "/svg?pattern=abacaba&input=ab&width=800")
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatal(ct)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, `<svg width="800"`) {
		t.Fatal(body)
	}
	// States 0 and 2.
	if n := strings.Count(body, `fill="red"`); n != 2 {
		t.Fatal(n)
	}

	if w = get(t, s, "/svg?pattern=a&width=wide"); w.Code != http.StatusBadRequest {
		t.Fatal(w.Code)
	}
	if w = get(t, s, "/svg?pattern=a&width=-3"); w.Code != http.StatusBadRequest {
		t.Fatal(w.Code)
	}
}

func TestWalk(t *testing.T) {
	w := get(t, newTestService(), "/walk?pattern=aaa&input=aaa")
	var strides []struct {
		To       []int `json:"to"`
		Accepted bool  `json:"accepted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &strides); err != nil {
		t.Fatal(err)
	}
	if len(strides) != 3 {
		t.Fatal(len(strides))
	}
	if JS(strides[2].To) != "[0,1,2,3]" || !strides[2].Accepted {
		t.Fatal(JS(strides))
	}

	want := Dwimjs(`[{"from":[0],"to":[0,1],"consumed":"a"},
                         {"from":[0,1],"to":[0,1,2],"consumed":"a"},
                         {"from":[0,1,2],"to":[0,1,2,3],"consumed":"a","accepted":true}]`)
	if got := Dwimjs(w.Body.Bytes()); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s", JS(got))
	}
}

func TestExports(t *testing.T) {
	s := newTestService()
	if body := get(t, s, "/dot?pattern=ab&input=a").Body.String(); !strings.Contains(body, `s1 [shape="circle", style="filled", fillcolor="red"`) {
		t.Fatal(body)
	}
	if body := get(t, s, "/mermaid?pattern=ab").Body.String(); !strings.HasPrefix(body, "graph LR") {
		t.Fatal(body)
	}
}

func TestCORS(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowAllOrigins = true
	s := New(cfg)

	req := httptest.NewRequest("OPTIONS", "/svg", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestWebsockets(t *testing.T) {
	ts := httptest.NewServer(newTestService().Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/api"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	c.SetReadDeadline(time.Now().Add(5 * time.Second))

	do := func(op string) *Reply {
		if err := c.WriteMessage(websocket.TextMessage, []byte(op)); err != nil {
			t.Fatal(err)
		}
		var r Reply
		if err := c.ReadJSON(&r); err != nil {
			t.Fatal(err)
		}
		return &r
	}

	// Starts with the configured pattern.
	r := do(`{"get":true}`)
	if r.Pattern != "abacaba" || JS(r.Alive) != "[0]" || r.SVG == "" {
		t.Fatal(JS(r))
	}

	r = do(`{"pattern":"aaa","width":400}`)
	if r.Pattern != "aaa" || JS(r.Alive) != "[0]" {
		t.Fatal(JS(r))
	}
	if !strings.HasPrefix(r.SVG, `<svg width="400"`) {
		t.Fatal(r.SVG)
	}

	for i, want := range []string{"[0,1]", "[0,1,2]", "[0,1,2,3]"} {
		r = do(`{"input":"a"}`)
		if JS(r.Alive) != want {
			t.Fatalf("step %d: %s", i, JS(r.Alive))
		}
	}
	if !r.Accepted {
		t.Fatal("should have accepted")
	}

	// Garbage doesn't close the connection.
	if r = do(`{"input":`); r.Err == "" {
		t.Fatal(JS(r))
	}
	if r = do(`{}`); r.Err != NoOp.Error() {
		t.Fatal(JS(r))
	}

	// Still the same Tracker.
	if r = do(`{"get":true}`); JS(r.Alive) != "[0,1,2,3]" {
		t.Fatal(JS(r))
	}
}

func TestControllerTracker(t *testing.T) {
	ctl := NewController("ab")
	ctl.Input("a")

	tr := ctl.Tracker()
	if tr.String() != `"ab"/{0,1}` {
		t.Fatal(tr)
	}

	// Changing the copy doesn't change the Controller.
	tr.Advance("b")
	r, err := ctl.Reply(0)
	if err != nil {
		t.Fatal(err)
	}
	if JS(r.Alive) != "[0,1]" || r.Accepted {
		t.Fatal(JS(r))
	}

	ctl.SetPattern("x")
	if tr = ctl.Tracker(); tr.String() != `"x"/{0}` {
		t.Fatal(tr)
	}
}

func TestOpDo(t *testing.T) {
	ctl := NewController("ab")
	ctx, cancel := context.WithCancel(context.Background())

	in := "a"
	r, err := (&Op{Input: &in}).Do(ctx, ctl, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.SVG != "" {
		t.Fatal("no width, no svg")
	}
	if JS(r.Alive) != "[0,1]" {
		t.Fatal(JS(r.Alive))
	}

	cancel()
	if _, err = (&Op{Get: true}).Do(ctx, ctl, 0); !errors.Is(err, context.Canceled) {
		t.Fatal(err)
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		w, want float64
	}{
		{0, 800},
		{-1, 800},
		{math.NaN(), 800},
		{math.Inf(1), 800},
		{640, 640},
		{1e9, MaxWidth},
	}
	for _, tt := range tests {
		if got := Width(tt.w, 800); got != tt.want {
			t.Errorf("Width(%v) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "kmpd.yaml")
	if err := os.WriteFile(filename, []byte("addr: \":9999\"\npattern: aaa\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("KMPD_WIDTH", "640")

	cfg, err := LoadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9999" || cfg.Pattern != "aaa" || cfg.Width != 640 {
		t.Fatalf("%#v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected an error")
	}

	cfg.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error")
	}
}
