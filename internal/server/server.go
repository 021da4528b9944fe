// Package server serves a generated site with a small JSON API and live
// reload for development.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nkuebler/portfolio/internal/content"
	"github.com/nkuebler/portfolio/internal/gallery"
	"github.com/nkuebler/portfolio/internal/reload"
	"github.com/nkuebler/portfolio/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the generated site
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the static site, the gallery API and the reload socket.
type Server struct {
	cfg        Config
	hub        *reload.Hub
	logger     *log.Logger
	stage      gallery.StageOptions
	router     chi.Router
	httpServer *http.Server

	mu   sync.RWMutex
	site *content.Site
}

// New creates a server. A nil hub disables /ws/reload.
func New(cfg Config, s *content.Site, hub *reload.Hub, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	srv := &Server{
		cfg:    cfg,
		hub:    hub,
		logger: logger,
		stage:  gallery.DefaultStageOptions(),
		site:   s,
	}
	srv.router = srv.buildRouter()
	return srv
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The reload socket outlives the request timeout.
	if s.hub != nil {
		r.Get("/ws/reload", s.hub.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Route("/api", func(r chi.Router) {
			r.Get("/gallery", s.handleGallery)
			r.Get("/stage", s.handleStage)
		})

		r.NotFound(s.handleStatic)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// SetSite swaps the content served by /api/gallery after a rebuild.
func (s *Server) SetSite(c *content.Site) {
	s.mu.Lock()
	s.site = c
	s.mu.Unlock()
}

// Addr is the listen address.
func (s *Server) Addr() string { return fmt.Sprintf(":%d", s.cfg.Port) }

// URL is the local address pages are served at.
func (s *Server) URL() string { return fmt.Sprintf("http://localhost:%d", s.cfg.Port) }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("serving site", "url", s.URL(), "dir", s.cfg.SiteDir)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	c := s.site
	s.mu.RUnlock()
	if c == nil {
		http.Error(w, "no site loaded", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, site.BuildManifest(c))
}

// stageResponse is the lightbox destination for a viewport.
type stageResponse struct {
	Device string       `json:"device"`
	Rect   gallery.Rect `json:"rect"`
}

func (s *Server) handleStage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	vw, err := strconv.ParseFloat(q.Get("vw"), 64)
	if err != nil {
		http.Error(w, "vw must be a number", http.StatusBadRequest)
		return
	}
	vh, err := strconv.ParseFloat(q.Get("vh"), 64)
	if err != nil {
		http.Error(w, "vh must be a number", http.StatusBadRequest)
		return
	}
	var grid float64
	if v := q.Get("grid"); v != "" {
		grid, err = strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "grid must be a number", http.StatusBadRequest)
			return
		}
	}

	rect, ok := gallery.StageRect(gallery.Viewport{Width: vw, Height: vh}, grid, s.stage)
	if !ok {
		http.Error(w, "viewport must have a positive width and height", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, stageResponse{Device: gallery.ClassFor(vw).String(), Rect: rect})
}

// handleStatic serves the generated files with clean URLs: /about serves
// about.html and /work/ serves work/index.html.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	p := path.Clean("/" + r.URL.Path)
	candidates := []string{p}
	if p == "/" {
		candidates = []string{"/index.html"}
	} else if path.Ext(p) == "" {
		candidates = append(candidates, p+".html", p+"/index.html")
	}

	dir := http.Dir(s.cfg.SiteDir)
	for _, c := range candidates {
		f, err := dir.Open(c)
		if err != nil {
			continue
		}
		info, err := f.Stat()
		if err != nil || info.IsDir() {
			f.Close()
			continue
		}
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
		f.Close()
		return
	}

	s.notFound(w, r)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	page, err := os.ReadFile(filepath.Join(s.cfg.SiteDir, "404.html"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(page)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
