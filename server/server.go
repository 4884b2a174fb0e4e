// Package server exposes outline inference over HTTP.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsawler/titulus/outline"
)

// DefaultMaxUploadBytes bounds uploaded document size (50 MB).
const DefaultMaxUploadBytes int64 = 50 << 20

// Config holds the server's tunables.
type Config struct {
	// MaxUploadBytes caps the size of an uploaded document.
	MaxUploadBytes int64

	// Engine tunes the inference engine shared by all requests.
	Engine outline.Config
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() Config {
	return Config{
		MaxUploadBytes: DefaultMaxUploadBytes,
		Engine:         outline.DefaultConfig(),
	}
}

// Server is the HTTP API server for outline inference.
type Server struct {
	router chi.Router
	log    *slog.Logger
	cfg    Config
}

// NewServer creates and configures the HTTP server.
func NewServer(log *slog.Logger, cfg Config) *Server {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	s := &Server{
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/api/outline", s.handleOutline)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
