// Package web serves the jobdeck dashboard: server-rendered pages over the
// backend API. Pages fetch on request, render, and redirect after mutations;
// all state lives in the backend and the session store.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/jobdeck/internal/api"
	"github.com/jonathan/jobdeck/internal/session"
)

// Server is the dashboard HTTP server.
type Server struct {
	httpServer *http.Server
	api        *api.Client
	sessions   *session.Store
	templates  *templateSet
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a dashboard server over the given API client and session store.
func New(cfg Config, client *api.Client, sessions *session.Store) (*Server, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	s := &Server{
		api:       client,
		sessions:  sessions,
		templates: templates,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /register", s.handleRegisterPage)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /logout", s.handleLogout)

	mux.HandleFunc("GET /dashboard", s.requireAuth(s.handleDashboard))

	mux.HandleFunc("GET /jobs", s.requireAuth(s.handleJobList))
	mux.HandleFunc("GET /jobs/new", s.requireAuth(s.handleJobNewPage))
	mux.HandleFunc("POST /jobs/new", s.requireAuth(s.handleJobCreate))
	mux.HandleFunc("POST /jobs/import", s.requireAuth(s.handleJobImport))
	mux.HandleFunc("GET /jobs/search", s.requireAuth(s.handleSearchPage))
	mux.HandleFunc("POST /jobs/search", s.requireAuth(s.handleSearch))
	mux.HandleFunc("GET /jobs/{id}", s.requireAuth(s.handleJobDetail))
	mux.HandleFunc("POST /jobs/{id}/status", s.requireAuth(s.handleJobStatusUpdate))
	mux.HandleFunc("POST /jobs/{id}/generate", s.requireAuth(s.handleGenerateEmail))

	mux.HandleFunc("GET /emails", s.requireAuth(s.handleEmailList))
	mux.HandleFunc("POST /emails/{id}/send", s.requireAuth(s.handleEmailSend))
	mux.HandleFunc("POST /emails/{id}/schedule", s.requireAuth(s.handleEmailSchedule))
	mux.HandleFunc("POST /emails/{id}/delete", s.requireAuth(s.handleEmailDelete))
	mux.HandleFunc("POST /emails/batch-send", s.requireAuth(s.handleEmailBatchSend))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // free-source searches fan out to several boards
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[web] dashboard listening on %s (backend %s)", s.httpServer.Addr, s.api.BaseURL())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[web] server error: %v", err)
		}
	}()

	<-stop
	log.Println("[web] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("[web] stopped")
	return nil
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[web] %s %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// requireAuth redirects to the login page when no session is present.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.sessions.IsAuthenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// fail renders the error page, or redirects to login when the backend says
// the token is no longer valid. Every page funnels request errors here; no
// retries, the user re-triggers the action.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if api.IsUnauthorized(err) {
		// The stale session would bounce every page; drop it first.
		if logoutErr := s.sessions.Logout(); logoutErr != nil {
			log.Printf("[web] failed to clear session: %v", logoutErr)
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	log.Printf("[web] %s %s failed: %v", r.Method, r.URL.Path, err)
	s.render(w, http.StatusBadGateway, "error.html", s.pageData(r, map[string]any{
		"Message": err.Error(),
	}))
}
