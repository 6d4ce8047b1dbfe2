package server

import (
	"encoding/json"
	"net/http"

	apperr "github.com/matzehuels/lablist/pkg/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type queryResponse struct {
	Query   string `json:"query"`
	Escaped string `json:"escaped"`
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleQuery handles GET /v1/query.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	l, scope, err := ParseListing(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, queryResponse{
		Query:   l.BuildScopedQuery(scope),
		Escaped: l.EscapedScopedQuery(scope),
	})
}

// handleProjects handles GET /v1/projects.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	if s.lister == nil {
		s.writeError(w, r, apperr.New(apperr.ErrCodeUnsupported, "project listing is not configured"))
		return
	}

	q := r.URL.Query()
	l, scope, err := ParseListing(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	refresh := false
	if v := q.Get("refresh"); v != "" {
		if refresh, err = parseBool("refresh", v); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	list, err := s.lister.ListProjects(r.Context(), scope, l, refresh)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// writeError renders err with the status mapped from its code.
// Uncoded errors are reported as INTERNAL_ERROR without their detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.GetCode(err)
	msg := apperr.UserMessage(err)
	if code == "" {
		code = apperr.ErrCodeInternal
		msg = "internal error"
	}
	status := apperr.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestIDFromContext(r.Context()))
	}
	writeJSON(w, status, errorBody{Code: string(code), Message: msg})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
