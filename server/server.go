package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/warit/newsgen/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/pipeline.go -pkg mocks -skip-ensure -fmt goimports . Pipeline
//go:generate moq -out mocks/news_store.go -pkg mocks -skip-ensure -fmt goimports . NewsStore
//go:generate moq -out mocks/settings_store.go -pkg mocks -skip-ensure -fmt goimports . SettingsStore

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	pipeline Pipeline
	news     NewsStore
	settings SettingsStore
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Pipeline runs the extraction and generation flows
type Pipeline interface {
	ExtractFromImage(ctx context.Context, image []byte, mimeType string) (*domain.EventData, error)
	ExtractFromText(ctx context.Context, text string) (*domain.EventData, error)
	GenerateNews(ctx context.Context, data any) (string, error)
}

// NewsStore persists generated articles
type NewsStore interface {
	Create(ctx context.Context, item *domain.NewsItem) error
	List(ctx context.Context, limit int) ([]domain.NewsItem, error)
	Update(ctx context.Context, id int64, title, content, summary string) (*domain.NewsItem, error)
	Delete(ctx context.Context, id int64) error
}

// SettingsStore reads and replaces the configuration singleton
type SettingsStore interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, upd domain.SettingsUpdate) (*domain.Settings, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, pipeline Pipeline, news NewsStore, settings SettingsStore, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		pipeline: pipeline,
		news:     news,
		settings: settings,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsgen", "warit", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(10 * 1024 * 1024)) // 10MB, scanned documents are large
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /status", s.statusHandler)

	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("POST /extract", s.extractImageHandler)
		r.HandleFunc("POST /extract-text", s.extractTextHandler)
		r.HandleFunc("POST /generate", s.generateHandler)

		r.HandleFunc("GET /news", s.listNewsHandler)
		r.HandleFunc("POST /save-news", s.saveNewsHandler)
		r.HandleFunc("POST /update-news", s.updateNewsHandler)
		r.HandleFunc("POST /delete-news", s.deleteNewsHandler)

		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("POST /settings", s.updateSettingsHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
