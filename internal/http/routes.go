package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/ports"
	"github.com/goldengigs/goldengigs/internal/session"
)

// RouterServices holds the services needed by the HTTP router.
type RouterServices struct {
	Sessions     *session.Manager
	Tokens       SessionTokens
	Profiles     ports.ProfileStore
	Jobs         ports.JobStore
	Applications ports.ApplicationStore
	Blobs        ports.BlobStore
	CookieDomain string
	Logger       *slog.Logger
}

// SessionTokens is the codec for session cookie values.
type SessionTokens interface {
	TokenMinter
	TokenParser
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Sessions:     services.Sessions,
		Tokens:       services.Tokens,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}
	profileHandlers := &ProfileHandlers{Profiles: services.Profiles, Blobs: services.Blobs}
	jobHandlers := &JobHandlers{Jobs: services.Jobs}
	applicationHandlers := &ApplicationHandlers{Applications: services.Applications}

	registerAuthRoutes(mux, authHandlers)
	registerProfileRoutes(mux, profileHandlers)
	registerJobRoutes(mux, jobHandlers)
	registerApplicationRoutes(mux, applicationHandlers)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	handler := AttachSession(services.Sessions, services.Tokens, logger)(mux)
	handler = Logging(logger)(handler)
	return Recover(logger)(handler)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("POST /api/auth/signup", http.HandlerFunc(h.SignUp))
	mux.Handle("POST /api/auth/signin", http.HandlerFunc(h.SignIn))
	mux.Handle("POST /api/auth/signout", http.HandlerFunc(h.SignOut))
	mux.Handle("GET /api/auth/me", http.HandlerFunc(h.Me))
	mux.Handle("POST /api/auth/refresh", RequireAuth()(http.HandlerFunc(h.RefreshProfile)))
}

func registerProfileRoutes(mux *http.ServeMux, h *ProfileHandlers) {
	anyAuth := RequireAuth()
	jobseeker := RequireRole(domainauth.RoleJobSeeker)
	employer := RequireRole(domainauth.RoleEmployer)

	mux.Handle("GET /api/profile", anyAuth(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/profile/jobseeker", jobseeker(http.HandlerFunc(h.CreateJobSeeker)))
	mux.Handle("PATCH /api/profile/jobseeker", jobseeker(http.HandlerFunc(h.UpdateJobSeeker)))
	mux.Handle("PATCH /api/profile/employer", employer(http.HandlerFunc(h.UpdateEmployer)))
	mux.Handle("POST /api/profile/resume/upload-url", jobseeker(http.HandlerFunc(h.PresignResumeUpload)))
	mux.Handle("GET /api/profile/resume/download-url", jobseeker(http.HandlerFunc(h.PresignResumeDownload)))
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers) {
	employer := RequireRole(domainauth.RoleEmployer)

	// Browsing listings is public; mutation is employer-only.
	mux.Handle("GET /api/jobs", http.HandlerFunc(h.List))
	mux.Handle("GET /api/jobs/{id}", http.HandlerFunc(h.Get))
	mux.Handle("POST /api/jobs", employer(http.HandlerFunc(h.Create)))
	mux.Handle("PATCH /api/jobs/{id}", employer(http.HandlerFunc(h.Update)))
	mux.Handle("POST /api/jobs/{id}/status", employer(http.HandlerFunc(h.UpdateStatus)))
	mux.Handle("DELETE /api/jobs/{id}", employer(http.HandlerFunc(h.Delete)))
	mux.Handle("GET /api/employer/jobs", employer(http.HandlerFunc(h.Mine)))
}

func registerApplicationRoutes(mux *http.ServeMux, h *ApplicationHandlers) {
	jobseeker := RequireRole(domainauth.RoleJobSeeker)
	employer := RequireRole(domainauth.RoleEmployer)

	mux.Handle("POST /api/jobs/{id}/apply", jobseeker(http.HandlerFunc(h.Submit)))
	mux.Handle("POST /api/applications/{id}/withdraw", jobseeker(http.HandlerFunc(h.Withdraw)))
	mux.Handle("GET /api/applications", jobseeker(http.HandlerFunc(h.ListMine)))
	mux.Handle("GET /api/employer/applications", employer(http.HandlerFunc(h.ListForEmployer)))
}
