// Package server provides the HTTP API for the pledge system.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/ledger"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/pipeline"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/server/ratelimit"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// PledgeSubmitter runs one pledge submission end to end.
type PledgeSubmitter interface {
	Submit(ctx context.Context, req types.SubmitPledgeRequest) (*types.SubmitPledgeResponse, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	submitter   PledgeSubmitter
	ledger      ledger.Ledger
	rateLimiter *ratelimit.Limiter
	log         *logrus.Logger

	pruneStop chan struct{}
}

// New creates a server on the given port with wired pipeline components.
func New(port string, submitter PledgeSubmitter, led ledger.Ledger, logger *logrus.Logger) *Server {
	s := &Server{
		submitter:   submitter,
		ledger:      led,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		log:         logger,
		pruneStop:   make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /pledge", s.handleSubmitPledge)
	mux.HandleFunc("GET /pledges/{id}", s.handleGetPledge)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start listens for requests until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go s.pruneLoop()

	go func() {
		s.log.WithField("addr", s.httpServer.Addr).Info("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Fatal("server error")
		}
	}()

	<-stop
	s.log.Info("shutting down server")
	close(s.pruneStop)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}

// pruneLoop periodically drops idle rate limiter buckets.
func (s *Server) pruneLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.rateLimiter.Prune(15 * time.Minute)
		case <-s.pruneStop:
			return
		}
	}
}

// withCORS adds CORS headers for the campaign front end.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed the per-IP token bucket.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(clientIP(r)) {
			s.errorResponse(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"remote":   r.RemoteAddr,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

// clientIP extracts the client address from RemoteAddr.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.WithError(err).Error("failed to encode JSON response")
	}
}

// errorResponse writes a failure JSON body with a human-readable message.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

var _ PledgeSubmitter = (*pipeline.Submitter)(nil)
