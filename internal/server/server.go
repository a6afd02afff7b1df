// Package server serves a live HTML preview of the resume and cover
// letter. Each request re-reads the store, and connected browsers learn
// about edits made elsewhere through a server-sent event stream.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-studio/internal/defaults"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/layout"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port      int
	Store     store.Store
	Namespace string
}

// Server represents the HTTP preview server.
type Server struct {
	httpServer *http.Server
	store      store.Store
	namespace  string
}

// New creates a new server instance.
func New(cfg Config) *Server {
	s := &Server{
		store:     cfg.Store,
		namespace: cfg.Namespace,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handlePreview)
	mux.HandleFunc("GET /letter", s.handleLetter)
	mux.HandleFunc("GET /resume.json", s.handleResumeJSON)
	mux.HandleFunc("GET /resume.txt", s.handleResumeText)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // event stream stays open indefinitely
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Preview server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// load pulls the current resume, layout, and skin out of the store.
func (s *Server) load() (*schema.Resume, schema.Layout, schema.Template, error) {
	resume, err := store.Load(s.store, s.namespace, store.KeyResumeData, defaults.Resume())
	if err != nil {
		return nil, schema.Layout{}, "", err
	}
	lay, err := store.Load(s.store, s.namespace, store.KeyResumeLayout, defaults.Layout())
	if err != nil {
		return nil, schema.Layout{}, "", err
	}
	name, err := store.Load(s.store, s.namespace, store.KeySelectedTemplate, string(schema.TemplateClassic))
	if err != nil {
		return nil, schema.Layout{}, "", err
	}
	tmpl, err := schema.ParseTemplate(name)
	if err != nil {
		tmpl = schema.TemplateClassic
	}
	schema.NormalizeResume(&resume)
	return &resume, lay, tmpl, nil
}

// handlePreview renders the resume in the selected skin.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	resume, lay, tmpl, err := s.load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	skin, err := render.ForTemplate(tmpl)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	html, err := skin.Render(resume, layout.EnabledOrderedKeys(lay))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, withReloadScript(html))
}

// handleLetter renders the cover letter in its selected skin.
func (s *Server) handleLetter(w http.ResponseWriter, _ *http.Request) {
	resume, _, _, err := s.load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	letter, err := store.Load(s.store, s.namespace, store.KeyCoverLetterData, defaults.CoverLetter())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	schema.NormalizeCoverLetter(&letter)

	name, err := store.Load(s.store, s.namespace, store.KeyCoverLetterTemplate, string(schema.TemplateClassic))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	tmpl, err := schema.ParseTemplate(name)
	if err != nil {
		tmpl = schema.TemplateClassic
	}

	skin, err := render.LetterForTemplate(tmpl)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	html, err := skin.RenderLetter(&letter, resume.Basics)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, withReloadScript(html))
}

// handleResumeJSON returns the raw resume document.
func (s *Server) handleResumeJSON(w http.ResponseWriter, _ *http.Request) {
	resume, _, _, err := s.load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleResumeText returns the flattened plain text export.
func (s *Server) handleResumeText(w http.ResponseWriter, _ *http.Request) {
	resume, _, _, err := s.load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, export.Text(resume))
}

// handleEvents streams a change event whenever a stored value changes.
// Stores without change notification get an immediate close.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	notifier, ok := s.store.(store.Notifier)
	if !ok {
		s.errorResponse(w, http.StatusNotImplemented, "store does not support change events")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	changes := notifier.Subscribe()
	for {
		select {
		case <-r.Context().Done():
			return
		case key, open := <-changes:
			if !open {
				return
			}
			if err := sse.WriteEvent("change", map[string]string{"key": key}); err != nil {
				return
			}
		}
	}
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// withReloadScript appends a snippet that reloads the page whenever the
// event stream reports a change.
func withReloadScript(html string) string {
	const script = `<script>
new EventSource("/events").addEventListener("change", function() { location.reload(); });
</script>`
	return html + script
}
