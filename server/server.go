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

	"github.com/umputun/eduflow/pkg/assistant"
	"github.com/umputun/eduflow/pkg/caption"
	"github.com/umputun/eduflow/pkg/domain"
	"github.com/umputun/eduflow/pkg/feed"
	"github.com/umputun/eduflow/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	engine  Engine
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Engine is the feed facade served over HTTP
type Engine interface {
	Items() []domain.FeedItem
	State() feed.State
	Activate(index int) bool
	Next() bool
	Prev() bool
	Gesture(g feed.Gesture) (feed.Intent, bool)
	Playback(id string) (service.PlaybackState, error)
	CycleRate(id string) (float64, error)
	Replay(id string) error
	Captions(id string) (caption.Track, error)
	Interaction(ctx context.Context, id string) (domain.InteractionRecord, error)
	ToggleLike(ctx context.Context, id string) (domain.InteractionRecord, error)
	ToggleSave(ctx context.Context, id string) (domain.InteractionRecord, error)
	Notifications() []string
	Theme(ctx context.Context) (domain.Theme, error)
	ToggleTheme(ctx context.Context) (domain.Theme, error)
	OpenChat(id string) (*assistant.Session, error)
	Chat(sessionID string) (*assistant.Session, error)
	CloseChat(sessionID string) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, engine Engine, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		engine:  engine,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
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
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("eduflow", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		// feed navigation
		r.HandleFunc("GET /feed", s.feedHandler)
		r.HandleFunc("GET /feed/state", s.feedStateHandler)
		r.HandleFunc("POST /feed/activate/{index}", s.activateHandler)
		r.HandleFunc("POST /feed/next", s.nextHandler)
		r.HandleFunc("POST /feed/prev", s.prevHandler)
		r.HandleFunc("POST /feed/gesture", s.gestureHandler)

		// per-item state
		r.HandleFunc("GET /items/{id}/interaction", s.interactionHandler)
		r.HandleFunc("POST /items/{id}/like", s.likeHandler)
		r.HandleFunc("POST /items/{id}/save", s.saveHandler)
		r.HandleFunc("GET /items/{id}/captions", s.captionsHandler)
		r.HandleFunc("POST /items/{id}/rate", s.rateHandler)
		r.HandleFunc("POST /items/{id}/replay", s.replayHandler)

		// theme
		r.HandleFunc("GET /theme", s.themeHandler)
		r.HandleFunc("POST /theme/toggle", s.toggleThemeHandler)

		// tutor chat
		r.HandleFunc("POST /items/{id}/chat", s.openChatHandler)
		r.HandleFunc("GET /chat/{sid}", s.getChatHandler)
		r.HandleFunc("POST /chat/{sid}/messages", s.sendMessageHandler)
		r.HandleFunc("DELETE /chat/{sid}", s.closeChatHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := rest.JSON{
		"status":  "ok",
		"version": s.version,
		"items":   len(s.engine.Items()),
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, rest.JSON{"error": errMsg})
}
