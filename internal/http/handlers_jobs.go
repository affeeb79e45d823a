// Package httpx provides the JSON API surface for the GoldenGigs marketplace.
package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/goldengigs/goldengigs/internal/domain/model"
	"github.com/goldengigs/goldengigs/internal/ports"
)

var errNotFound = errors.New("job not found")

// JobHandlers provides HTTP handlers for job listing operations.
type JobHandlers struct {
	Jobs ports.JobStore
}

// Create posts a new listing owned by the calling employer.
// POST /api/jobs.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteAppError(w, err)
		return
	}

	job, err := h.Jobs.Create(r.Context(), PrincipalIDFromContext(r.Context()), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, job)
}

// Get returns a single listing.
// GET /api/jobs/{id}.
func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.Jobs.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// List returns listings matching the query filters.
// GET /api/jobs?q=&schedule_type=&remote=&employer_id=&status=&limit=&offset=.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts := parseJobsListQuery(r)

	jobs, err := h.Jobs.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// Mine returns the calling employer's own listings regardless of status.
// GET /api/employer/jobs.
func (h *JobHandlers) Mine(w http.ResponseWriter, r *http.Request) {
	opts := parseJobsListQuery(r)
	employerID := PrincipalIDFromContext(r.Context())
	opts.EmployerID = &employerID

	jobs, err := h.Jobs.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// Update edits a listing owned by the calling employer.
// PATCH /api/jobs/{id}.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteAppError(w, err)
		return
	}

	job, err := h.Jobs.Update(r.Context(), r.PathValue("id"), PrincipalIDFromContext(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

type jobStatusRequest struct {
	Status model.JobStatus `json:"status" validate:"required,oneof=active closed expired"`
}

// UpdateStatus transitions a listing's lifecycle state.
// POST /api/jobs/{id}/status.
func (h *JobHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req jobStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}

	job, err := h.Jobs.UpdateStatus(r.Context(), r.PathValue("id"), PrincipalIDFromContext(r.Context()), req.Status)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Delete removes a listing owned by the calling employer.
// DELETE /api/jobs/{id}.
func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Jobs.Delete(r.Context(), r.PathValue("id"), PrincipalIDFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errNotFound,
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseJobsListQuery(r *http.Request) model.JobsListOptions {
	q := r.URL.Query()
	var opts model.JobsListOptions

	if v := strings.TrimSpace(q.Get("q")); v != "" {
		opts.Q = &v
	}
	if v := strings.TrimSpace(q.Get("schedule_type")); v != "" {
		opts.ScheduleType = &v
	}
	if v := q.Get("remote"); v != "" {
		if remote, err := strconv.ParseBool(v); err == nil {
			opts.IsRemote = &remote
		}
	}
	if v := strings.TrimSpace(q.Get("employer_id")); v != "" {
		opts.EmployerID = &v
	}
	if v := model.JobStatus(q.Get("status")); v.Valid() {
		opts.Status = &v
	}
	opts.Limit = parseIntQuery(r, "limit", 0)
	opts.Offset = parseIntQuery(r, "offset", 0)

	return opts
}

func parseIntQuery(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return fallback
	}
	return i
}
