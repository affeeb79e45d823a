package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/domain/model"
)

func jobSeekerState() State {
	return State{
		Principal:  &domainauth.Principal{ID: "u1", Email: "alice@example.com"},
		UserRecord: &model.UserRecord{ID: "u1", UserType: domainauth.RoleJobSeeker},
		RoleProfile: model.NewJobSeekerRoleProfile(&model.JobSeekerProfile{
			ID: "u1",
		}),
	}
}

func TestEvaluateGuard_LoadingNeverRedirects(t *testing.T) {
	tests := []struct {
		name string
		st   State
		role domainauth.Role
	}{
		{"initial", State{Loading: true}, ""},
		{"initial with role", State{Loading: true}, domainauth.RoleEmployer},
		{"principal resolving", State{Loading: true, Principal: &domainauth.Principal{ID: "u1"}}, domainauth.RoleJobSeeker},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := EvaluateGuard(tt.st, tt.role, "/jobseeker/dashboard")
			assert.Equal(t, DecisionPending, out.Decision)
			assert.Empty(t, out.RedirectTo)
			assert.False(t, out.Denied())
		})
	}
}

func TestEvaluateGuard_UnauthenticatedRedirectsWithOrigin(t *testing.T) {
	out := EvaluateGuard(State{}, "", "/employer/jobs")
	assert.Equal(t, DecisionDeniedUnauthenticated, out.Decision)
	assert.Equal(t, "/auth/login?redirect_uri=%2Femployer%2Fjobs", out.RedirectTo)
	assert.True(t, out.Denied())
}

func TestEvaluateGuard_UnauthenticatedPreservesQuery(t *testing.T) {
	out := EvaluateGuard(State{}, domainauth.RoleEmployer, "/employer/jobs?status=active")
	assert.Equal(t, DecisionDeniedUnauthenticated, out.Decision)
	assert.Equal(t, "/auth/login?redirect_uri=%2Femployer%2Fjobs%3Fstatus%3Dactive", out.RedirectTo)
}

func TestEvaluateGuard_AdmitsMatchingRole(t *testing.T) {
	out := EvaluateGuard(jobSeekerState(), domainauth.RoleJobSeeker, "/jobseeker/dashboard")
	assert.Equal(t, DecisionAdmitted, out.Decision)
	assert.Empty(t, out.RedirectTo)
}

func TestEvaluateGuard_AdmitsAnyAuthenticatedWithoutRole(t *testing.T) {
	out := EvaluateGuard(jobSeekerState(), "", "/account")
	assert.Equal(t, DecisionAdmitted, out.Decision)
}

func TestEvaluateGuard_WrongRoleRedirectsHome(t *testing.T) {
	out := EvaluateGuard(jobSeekerState(), domainauth.RoleEmployer, "/employer/jobs")
	assert.Equal(t, DecisionDeniedWrongRole, out.Decision)
	assert.Equal(t, HomePath, out.RedirectTo)
	assert.True(t, out.Denied())
}

func TestEvaluateGuard_DegradedDeniesRoleRestricted(t *testing.T) {
	degraded := State{Principal: &domainauth.Principal{ID: "u1"}}

	out := EvaluateGuard(degraded, domainauth.RoleEmployer, "/employer/jobs")
	assert.Equal(t, DecisionDeniedDegraded, out.Decision)
	assert.Equal(t, HomePath, out.RedirectTo)

	// Role-agnostic locations remain reachable.
	out = EvaluateGuard(degraded, "", "/account")
	assert.Equal(t, DecisionAdmitted, out.Decision)
}

func TestEvaluateGuard_MissingRoleProfileStillAdmits(t *testing.T) {
	// A missing role profile row is valid; only the user record drives the
	// role check.
	st := jobSeekerState()
	st.RoleProfile = nil
	out := EvaluateGuard(st, domainauth.RoleJobSeeker, "/jobseeker/dashboard")
	assert.Equal(t, DecisionAdmitted, out.Decision)
}

func TestSignInRedirect(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{"empty location", "", "/auth/login"},
		{"login itself", "/auth/login", "/auth/login"},
		{"plain path", "/jobs", "/auth/login?redirect_uri=%2Fjobs"},
		{"path with query", "/jobs?page=2", "/auth/login?redirect_uri=%2Fjobs%3Fpage%3D2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SignInRedirect(tt.location))
		})
	}
}
