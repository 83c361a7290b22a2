package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/analytics"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/db"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/export"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// listFilters reads the optional role/status query filters shared by the
// listing and export endpoints. Unknown values are rejected rather than
// silently matching nothing.
func listFilters(r *http.Request) (*types.Role, *types.ApplicationStatus, error) {
	var role *types.Role
	if v := r.URL.Query().Get("role"); v != "" {
		candidate := types.Role(v)
		if !candidate.IsValid() {
			return nil, nil, &ErrValidation{Field: "role", Message: "unknown role"}
		}
		role = &candidate
	}

	var status *types.ApplicationStatus
	if v := r.URL.Query().Get("status"); v != "" {
		candidate := types.ApplicationStatus(v)
		if !candidate.IsValid() {
			return nil, nil, &ErrValidation{Field: "status", Message: "unknown status"}
		}
		status = &candidate
	}
	return role, status, nil
}

// handleListApplications serves a filtered, paginated page of applications.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	role, status, err := listFilters(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	opts := db.ListApplicationsOptions{Role: role, Status: status}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			verr := &ErrValidation{Field: "limit", Message: "must be an integer"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return
		}
		opts.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			verr := &ErrValidation{Field: "offset", Message: "must be an integer"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return
		}
		opts.Offset = n
	}

	apps, total, err := s.store.ListApplications(r.Context(), opts)
	if err != nil {
		log.Printf("[admin] list applications failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	if apps == nil {
		apps = []types.StoredApplication{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": apps,
		"total":        total,
	})
}

// handleAnalytics serves the aggregate dashboard view.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	apps, err := s.store.ListAllApplications(r.Context(), nil, nil)
	if err != nil {
		log.Printf("[admin] analytics load failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute analytics")
		return
	}
	s.jsonResponse(w, http.StatusOK, analytics.Overview(apps))
}

// handleQuestionAnalytics serves per-question response statistics, optionally
// restricted to a single role.
func (s *Server) handleQuestionAnalytics(w http.ResponseWriter, r *http.Request) {
	role, _, err := listFilters(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	apps, err := s.store.ListAllApplications(r.Context(), role, nil)
	if err != nil {
		log.Printf("[admin] question analytics load failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute question analytics")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": analytics.Questions(apps),
	})
}

// handleScoreApplication runs the AI assessment for one application and
// persists the overall score.
func (s *Server) handleScoreApplication(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		verr := &ErrValidation{Field: "id", Message: "must be a UUID"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	app, err := s.store.GetApplication(r.Context(), id)
	if err != nil {
		log.Printf("[admin] load application %s failed: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load application")
		return
	}
	if app == nil {
		nferr := &ErrApplicationNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	score, err := s.scorer.Score(r.Context(), app)
	if err != nil {
		log.Printf("[admin] score application %s failed: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to score application")
		return
	}

	if _, err := s.store.UpdateScore(r.Context(), id, score.OverallScore); err != nil {
		log.Printf("[admin] persist score for %s failed: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save score")
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// handleUpdateStatus moves an application through the review pipeline.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		verr := &ErrValidation{Field: "id", Message: "must be a UUID"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	var req types.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.Status.IsValid() {
		verr := &ErrValidation{Field: "status", Message: "unknown status"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	ok, err := s.store.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		log.Printf("[admin] update status for %s failed: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update status")
		return
	}
	if !ok {
		nferr := &ErrApplicationNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"status":  req.Status,
	})
}

// handleExport streams all matching applications as a downloadable file.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		verr := &ErrValidation{Field: "format", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	role, status, err := listFilters(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	apps, err := s.store.ListAllApplications(r.Context(), role, status)
	if err != nil {
		log.Printf("[admin] export load failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applications")
		return
	}

	now := time.Now()
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename(now)+`"`)

	switch format {
	case export.FormatXLSX:
		err = export.WriteXLSX(w, apps)
	case export.FormatReport:
		err = export.WriteReport(w, apps, now)
	default:
		err = export.WriteCSV(w, apps)
	}
	if err != nil {
		// Headers are already out; the truncated body is all we can signal.
		log.Printf("[admin] export write failed: %v", err)
	}
}
