// Package web serves the browser demo: a small JSON API over the parser.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/nycgeo/nycaddr/internal/web/handlers"
	"github.com/nycgeo/nycaddr/internal/web/middleware"
)

// Server represents the demo web server.
type Server struct {
	config     *Config
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server instance.
func NewServer(config *Config) *Server {
	server := &Server{config: config}
	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	parseHandler := &handlers.ParseHandler{Debug: s.config.Debug}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/parse", parseHandler.ParseAddress).Methods("GET")
	api.HandleFunc("/parse", parseHandler.ParseBatch).Methods("POST")
	api.HandleFunc("/health", handlers.Health).Methods("GET")

	// Static demo page, when present.
	if _, err := os.Stat(s.config.StaticDir); err == nil {
		s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.config.StaticDir + "/")))
	}

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging())
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting server on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	fmt.Println("Server stopped")
	return nil
}
