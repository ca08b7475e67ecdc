// Package server serves the topic comparison page and a small JSON API.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/on-the-issues/internal/router"
	"github.com/ziadkadry99/on-the-issues/internal/site"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
	"github.com/ziadkadry99/on-the-issues/internal/view"
)

// Config holds server configuration.
type Config struct {
	Port       int
	AllowAll   bool // allow all CORS origins
	LiveReload bool // inject the live-reload client and serve /livereload
}

// Server renders pages from the current topic store on every request.
type Server struct {
	cfg        Config
	store      atomic.Pointer[topic.Store]
	buildID    atomic.Value
	logger     *zap.Logger
	reloader   *Reloader
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for the given store.
func New(cfg Config, store *topic.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		reloader: NewReloader(logger),
	}
	s.store.Store(store)
	s.buildID.Store(newBuildID())
	s.router = s.buildRouter()
	return s
}

func newBuildID() string { return uuid.NewString()[:8] }

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Long-lived websocket connections stay outside the request timeout.
	if s.cfg.LiveReload {
		r.Get("/livereload", s.reloader.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/", s.handleIndex)
		r.Get("/topics/{id}", s.handleTopicPage)
		r.Get("/style.css", s.handleAsset("text/css; charset=utf-8", site.Stylesheet()))
		r.Get("/script.js", s.handleAsset("application/javascript; charset=utf-8", site.Script()))

		r.Route("/api", func(r chi.Router) {
			r.Get("/topics", s.handleListTopics)
			r.Get("/topics/{id}", s.handleGetTopic)
			r.Get("/resolve", s.handleResolve)
		})
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Store returns the store currently being served.
func (s *Server) Store() *topic.Store { return s.store.Load() }

// SetStore swaps the served store and tells connected pages to reload.
func (s *Server) SetStore(store *topic.Store) {
	if store == nil {
		return
	}
	s.store.Store(store)
	s.buildID.Store(newBuildID())
	s.reloader.Broadcast()
}

// Reloader returns the live-reload hub.
func (s *Server) Reloader() *Reloader { return s.reloader }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("server listening", zap.String("addr", addr), zap.Bool("live_reload", s.cfg.LiveReload))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.reloader.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) pageOptions() view.Options {
	return view.Options{
		AssetPrefix: "/",
		BuildID:     s.buildID.Load().(string),
		LiveReload:  s.cfg.LiveReload,
	}
}

// handleIndex serves the fragment-driven page with every topic rendered.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	opts := s.pageOptions()
	opts.Static = true
	s.renderPage(w, r, router.Selection{}, opts, http.StatusOK)
}

// handleTopicPage renders only the topic named in the path. Unknown topics get
// the navigation alone with a 404 status.
func (s *Server) handleTopicPage(w http.ResponseWriter, r *http.Request) {
	sel := router.Resolve(s.Store(), chi.URLParam(r, "id"))
	opts := s.pageOptions()
	opts.LinkPrefix = "/topics/"
	status := http.StatusOK
	if !sel.Found {
		status = http.StatusNotFound
	}
	s.renderPage(w, r, sel, opts, status)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, sel router.Selection, opts view.Options, status int) {
	page, err := view.BuildPage(s.Store(), sel, opts)
	if err != nil {
		s.logger.Error("building page", zap.Error(err), zap.String("request_id", middleware.GetReqID(r.Context())))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := view.Render(w, page); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
	}
}

func (s *Server) handleAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write([]byte(body))
	}
}

// topicSummary is one entry in the /api/topics response.
type topicSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Href string `json:"href"`
}

func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	records := s.Store().Records()
	out := make([]topicSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, topicSummary{ID: rec.ID(), Name: rec.Name, Href: "/#" + rec.ID()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTopic(w http.ResponseWriter, r *http.Request) {
	store := s.Store()
	sel := router.Resolve(store, chi.URLParam(r, "id"))
	if !sel.Found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("topic %q not found", sel.ID))
		return
	}
	writeJSON(w, http.StatusOK, view.BuildDetail(store, sel.Record))
}

// resolveResponse is the JSON response for /api/resolve.
type resolveResponse struct {
	Fragment string `json:"fragment"`
	ID       string `json:"id"`
	Found    bool   `json:"found"`
	Name     string `json:"name,omitempty"`
}

// handleResolve reports how a URL fragment resolves against the dataset. A
// miss is a normal answer, not an error.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("fragment")
	sel := router.Resolve(s.Store(), fragment)
	resp := resolveResponse{Fragment: fragment, ID: sel.ID, Found: sel.Found}
	if sel.Found {
		resp.Name = sel.Record.Name
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
