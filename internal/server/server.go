// Package server exposes the cost engine over HTTP for interactive frontends.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Server serves estimates for a machine project directory. The spec file is
// re-read on every request so edits are picked up without a restart.
type Server struct {
	projectPath string
	port        int
	log         *logrus.Logger
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &Server{
		projectPath: projectPath,
		port:        port,
		log:         log,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)

	s.log.WithFields(logrus.Fields{
		"addr":    addr,
		"project": s.projectPath,
	}).Info("machinecost server starting")

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.ListenAndServe()
}

// Handler builds the routed handler with CORS for browser frontends.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/spec", s.handleSpec).Methods(http.MethodGet)
	r.HandleFunc("/api/validation", s.handleValidation).Methods(http.MethodGet)
	r.HandleFunc("/api/usage", s.handleUsage).Methods(http.MethodGet)
	r.HandleFunc("/api/cost", s.handleCost).Methods(http.MethodGet)
	r.HandleFunc("/api/estimate", s.handleEstimate).Methods(http.MethodPost)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(r)
}
