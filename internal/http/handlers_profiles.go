package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/domain/model"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/ports"
)

// ProfileHandlers provides HTTP handlers for role-profile operations.
type ProfileHandlers struct {
	Profiles ports.ProfileStore
	Blobs    ports.BlobStore
}

// Get returns the caller's role profile. Job seekers who have not created one
// yet get a 404 with a distinct code so clients can offer the creation flow.
// GET /api/profile.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	st := StateFromContext(r.Context())
	if st.RoleProfile == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "profile_not_created",
			Err:     errors.New("no profile exists yet"),
		})
		return
	}
	WriteJSON(w, http.StatusOK, st.RoleProfile)
}

// CreateJobSeeker performs the deferred job-seeker profile creation and
// refreshes the session state so the new profile is immediately visible.
// POST /api/profile/jobseeker.
func (h *ProfileHandlers) CreateJobSeeker(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := ControllerFromContext(r.Context())
	if !ok {
		WriteAppError(w, apperrors.NotAuthenticated("no active session"))
		return
	}

	var req model.CreateJobSeekerProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}

	if err := ctrl.CreateRoleProfile(r.Context(), &req); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, ctrl.State().RoleProfile)
}

// UpdateJobSeeker edits the caller's job-seeker profile.
// PATCH /api/profile/jobseeker.
func (h *ProfileHandlers) UpdateJobSeeker(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateJobSeekerProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}

	profile, err := h.Profiles.UpdateJobSeeker(r.Context(), PrincipalIDFromContext(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.refreshState(r)
	WriteJSON(w, http.StatusOK, profile)
}

// UpdateEmployer edits the caller's employer profile.
// PATCH /api/profile/employer.
func (h *ProfileHandlers) UpdateEmployer(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateEmployerProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}

	profile, err := h.Profiles.UpdateEmployer(r.Context(), PrincipalIDFromContext(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.refreshState(r)
	WriteJSON(w, http.StatusOK, profile)
}

type resumeUploadRequest struct {
	Filename string `json:"filename" validate:"required,max=255"`
}

type resumeUploadResponse struct {
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
}

// PresignResumeUpload issues a time-limited PUT URL for a resume file. The
// client uploads directly to object storage and records the returned key on
// its profile.
// POST /api/profile/resume/upload-url.
func (h *ProfileHandlers) PresignResumeUpload(w http.ResponseWriter, r *http.Request) {
	if h.Blobs == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotImplemented,
			ErrCode: "storage_unavailable",
			Err:     errors.New("object storage is not configured"),
		})
		return
	}

	var req resumeUploadRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}

	uploadURL, objectKey, err := h.Blobs.PresignResumeUpload(r.Context(), PrincipalIDFromContext(r.Context()), req.Filename)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resumeUploadResponse{UploadURL: uploadURL, ObjectKey: objectKey})
}

// PresignResumeDownload issues a time-limited GET URL for the caller's stored
// resume.
// GET /api/profile/resume/download-url.
func (h *ProfileHandlers) PresignResumeDownload(w http.ResponseWriter, r *http.Request) {
	if h.Blobs == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotImplemented,
			ErrCode: "storage_unavailable",
			Err:     errors.New("object storage is not configured"),
		})
		return
	}

	st := StateFromContext(r.Context())
	if st.RoleProfile == nil || st.RoleProfile.Type != domainauth.RoleJobSeeker ||
		st.RoleProfile.JobSeeker == nil || st.RoleProfile.JobSeeker.ResumeURL == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "no_resume",
			Err:     errors.New("no resume on file"),
		})
		return
	}

	downloadURL, err := h.Blobs.PresignResumeDownload(r.Context(), *st.RoleProfile.JobSeeker.ResumeURL)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"download_url": downloadURL})
}

// refreshState re-fetches profile data after a direct store write so the
// session snapshot does not serve stale data. Failures degrade to stale reads
// until the next refresh.
func (h *ProfileHandlers) refreshState(r *http.Request) {
	if ctrl, ok := ControllerFromContext(r.Context()); ok {
		_ = ctrl.RefreshProfile(r.Context())
	}
}
