// Package server exposes the project listing query builder over HTTP.
//
// # Routes
//
//	GET /healthz      liveness probe, {"status":"ok"}
//	GET /v1/query     render a listing query without calling GitLab
//	GET /v1/projects  list projects through the GitLab client
//
// Both /v1 routes accept the filter parameters archived, visibility,
// order_by, sort, search, simple and scope. /v1/projects also accepts
// refresh. Unset parameters leave the filter unset.
//
// # Errors
//
// Failures are written as {"code": "...", "message": "..."} with the HTTP
// status derived from the error code (see [apperr.HTTPStatus]).
//
// [apperr.HTTPStatus]: github.com/matzehuels/lablist/pkg/errors.HTTPStatus
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/lablist/pkg/integrations/gitlab"
	"github.com/matzehuels/lablist/pkg/integrations/gitlab/projects"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// ProjectLister fetches projects for a listing. [*gitlab.Client] implements it.
type ProjectLister interface {
	ListProjects(ctx context.Context, scope projects.Scope, l *projects.Listing, refresh bool) ([]gitlab.Project, error)
}

// Server serves the query API.
type Server struct {
	lister ProjectLister
	logger *log.Logger
}

// New creates a Server. A nil lister disables /v1/projects (501);
// a nil logger logs to log.Default().
func New(lister ProjectLister, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{lister: lister, logger: logger}
}

// Handler returns the router with all middleware and routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(AccessLog(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/query", s.handleQuery)
		r.Get("/projects", s.handleProjects)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
