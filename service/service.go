// Package service serves the automaton page, the websocket API that
// drives it, and a few stateless HTTP endpoints.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/diagram"
	"github.com/Comcast/kmpviz/tools"
	"github.com/Comcast/kmpviz/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// BadParam occurs when a query parameter can't be used.
type BadParam struct {
	Name  string
	Value string
}

func (e *BadParam) Error() string {
	return `bad parameter "` + e.Name + `": "` + e.Value + `"`
}

// Service is the HTTP service.
type Service struct {
	cfg    *Config
	router chi.Router
}

// New makes a Service with all of its routes.
func New(cfg *Config) *Service {
	s := &Service{
		cfg: cfg,
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the handler for the whole service.
func (s *Service) Router() chi.Router { return s.router }

func (s *Service) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if s.cfg.Verbose {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	if s.cfg.AllowAllOrigins {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.page)
	r.Get("/svg", s.svg)
	r.Get("/walk", s.walk)
	r.Get("/dot", s.dot)
	r.Get("/mermaid", s.mermaid)
	r.Get("/ws/api", s.ws)

	return r
}

// Start listens until the context is done, and then shuts down.
func (s *Service) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("Service listening on %s", s.cfg.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Printf("Service shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// puntf reports an error to the client as JSON.
func puntf(w http.ResponseWriter, status int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	util.Logf("punt %d %s", status, msg)

	js, err := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	if err != nil {
		js = []byte(msg)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, "%s\n", js)
}

// walked makes a Tracker for the "pattern" parameter and feeds it
// each character of the "input" parameter.
func walked(r *http.Request) (*core.Tracker, []*core.Stride) {
	t := core.NewTracker(r.FormValue("pattern"))
	return t, t.Walk(core.Chars(r.FormValue("input")))
}

// width parses the "width" parameter.
func (s *Service) width(r *http.Request) (float64, error) {
	v := r.FormValue("width")
	if v == "" {
		return s.cfg.Width, nil
	}
	w, err := strconv.ParseFloat(v, 64)
	if err != nil || w <= 0 {
		return 0, &BadParam{Name: "width", Value: v}
	}
	return Width(w, s.cfg.Width), nil
}

func (s *Service) page(w http.ResponseWriter, r *http.Request) {
	pattern := s.cfg.Pattern
	if p, have := r.URL.Query()["pattern"]; have && 0 < len(p) {
		pattern = p[0]
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := tools.RenderPage(w, &tools.PageOpts{
		Pattern: pattern,
		Width:   s.cfg.Width,
	})
	if err != nil {
		util.Warnf("page error %v", err)
	}
}

func (s *Service) svg(w http.ResponseWriter, r *http.Request) {
	width, err := s.width(r)
	if err != nil {
		puntf(w, http.StatusBadRequest, "%v", err)
		return
	}
	t, _ := walked(r)
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := diagram.SVG(w, t, width); err != nil {
		util.Warnf("svg error %v", err)
	}
}

func (s *Service) walk(w http.ResponseWriter, r *http.Request) {
	_, strides := walked(r)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(strides); err != nil {
		util.Warnf("walk error %v", err)
	}
}

func (s *Service) dot(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, func(t *core.Tracker, out io.Writer) error {
		return tools.Dot(core.Machine(t.Pattern), t.Alive, out)
	})
}

func (s *Service) mermaid(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, func(t *core.Tracker, out io.Writer) error {
		return tools.Mermaid(core.Machine(t.Pattern), t.Alive, out, nil)
	})
}

func (s *Service) export(w http.ResponseWriter, r *http.Request, f func(*core.Tracker, io.Writer) error) {
	t, _ := walked(r)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := f(t, w); err != nil {
		util.Warnf("export error %v", err)
	}
}
