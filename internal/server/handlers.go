package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/certificate"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/directory"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/pipeline"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// handleSubmitPledge processes POST /pledge.
func (s *Server) handleSubmitPledge(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitPledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := s.submitter.Submit(r.Context(), req)
	if err != nil {
		s.pledgeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// pledgeError maps pipeline errors onto HTTP status codes. Internal details
// never reach the caller beyond a short description.
func (s *Server) pledgeError(w http.ResponseWriter, err error) {
	var (
		validationErr *pipeline.ValidationError
		notFoundErr   *directory.NotFoundError
		retrievalErr  *directory.RetrievalError
		renderErr     *certificate.RenderError
	)

	switch {
	case errors.As(err, &validationErr):
		s.errorResponse(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("Employee %s not found", notFoundErr.EmployeeID))
	case errors.As(err, &retrievalErr):
		s.log.WithError(err).Error("employee directory load failed")
		s.errorResponse(w, http.StatusInternalServerError, "Employee directory is unavailable")
	case errors.As(err, &renderErr):
		s.log.WithError(err).Error("certificate rendering failed")
		s.errorResponse(w, http.StatusInternalServerError, "Certificate generation failed")
	default:
		s.log.WithError(err).Error("pledge submission failed")
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

// handleGetPledge returns a ledger record by pledge id.
func (s *Server) handleGetPledge(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Pledge ID is required")
		return
	}

	rec, err := s.ledger.Get(r.Context(), id)
	if err != nil {
		s.log.WithError(err).Error("pledge lookup failed")
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("Pledge %s not found", id))
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
