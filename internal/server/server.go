// Package server provides the browser-facing HTTP shell of the CV builder:
// it owns the editing session and exposes the edit, preview and export
// operations as REST endpoints.
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

	"github.com/jonathan/cv-builder/internal/printing"
	"github.com/jonathan/cv-builder/internal/session"
	"github.com/jonathan/cv-builder/internal/templates"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	session    *session.Session
}

// Config holds server configuration.
type Config struct {
	Port            int
	ChromePath      string
	ExportTimeout   time.Duration
	DefaultTemplate string
}

// New creates a server with a fresh session seeded from the sample document.
func New(cfg Config) *Server {
	registry := templates.Builtin()
	generator := printing.NewGenerator(
		printing.WithExecPath(cfg.ChromePath),
		printing.WithTimeout(cfg.ExportTimeout),
	)

	sess := session.New(registry, generator)
	if cfg.DefaultTemplate != "" {
		sess.SelectTemplate(cfg.DefaultTemplate)
	}

	return newWithSession(sess, cfg.Port)
}

// newWithSession wires the routes around an existing session. Split out so
// tests can inject a session with a fake PDF engine.
func newWithSession(sess *session.Session, port int) *Server {
	s := &Server{session: sess}

	mux := http.NewServeMux()

	// Document state
	mux.HandleFunc("GET /document", s.handleGetDocument)
	mux.HandleFunc("PUT /document", s.handleImportDocument)

	// Edit projection
	mux.HandleFunc("POST /document/basics", s.handleSetBasicsField)
	mux.HandleFunc("POST /document/{section}", s.handleAppendEntry)
	mux.HandleFunc("PUT /document/{section}/{index}", s.handleUpdateEntryField)
	mux.HandleFunc("DELETE /document/{section}/{index}", s.handleRemoveEntry)

	// Template selection
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("PUT /template", s.handleSelectTemplate)

	// Rendering and export
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /export/json", s.handleExportJSON)
	mux.HandleFunc("GET /export/pdf", s.handleExportPDF)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export runs within a request
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Session exposes the server's session. Used by tests and the CLI.
func (s *Server) Session() *session.Session {
	return s.session
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
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
	return nil
}

// withCORS allows the browser editor to call the API from any origin.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging middleware.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
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
