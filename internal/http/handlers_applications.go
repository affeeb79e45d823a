package httpx

import (
	"net/http"

	"github.com/goldengigs/goldengigs/internal/domain/model"
	"github.com/goldengigs/goldengigs/internal/ports"
)

// ApplicationHandlers provides HTTP handlers for application operations.
type ApplicationHandlers struct {
	Applications ports.ApplicationStore
}

// Submit applies the calling job seeker to a listing. Duplicate submissions
// and closed listings surface as conflicts.
// POST /api/jobs/{id}/apply.
func (h *ApplicationHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Applications.Submit(r.Context(), r.PathValue("id"), PrincipalIDFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, summary)
}

// Withdraw retracts one of the caller's applications.
// POST /api/applications/{id}/withdraw.
func (h *ApplicationHandlers) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req model.WithdrawApplicationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}

	app, err := h.Applications.Withdraw(r.Context(), r.PathValue("id"), PrincipalIDFromContext(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, app)
}

// ListMine returns the calling job seeker's applications with listing context.
// GET /api/applications.
func (h *ApplicationHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Applications.ListForUser(r.Context(), PrincipalIDFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// ListForEmployer returns applications against the calling employer's listings.
// GET /api/employer/applications.
func (h *ApplicationHandlers) ListForEmployer(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Applications.ListForEmployer(r.Context(), PrincipalIDFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"applications": apps})
}
