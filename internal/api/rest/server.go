package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/Vicentealoise3/strike-latino-2a/internal/service"
)

// Server represents the REST API server.
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server.
func NewServer(port string, store PayloadStore, svc *service.Service) *Server {
	handler := NewHandler(store, svc)

	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Cached full payload, the page's single fetch
	router.HandleFunc("/api/full", handler.GetFull).Methods("GET")

	// Compute-on-request variants
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/standings", handler.GetStandings).Methods("GET")
	api.HandleFunc("/games/today", handler.GetGamesToday).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
