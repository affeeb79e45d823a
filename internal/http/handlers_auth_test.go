package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
)

func TestSignUpEmployer(t *testing.T) {
	s := newTestServer(t)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/auth/signup",
		body: map[string]string{
			"email":    "boss@acme.test",
			"password": "hunter2hunter2",
			"role":     "employer",
		},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotNil(t, sessionCookie(t, w))

	body := decodeBody(t, w)
	assert.Equal(t, true, body["authenticated"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "user record should be populated before the response returns")
	assert.Equal(t, "employer", user["user_type"])
	// Employers get a shell profile at sign-up.
	assert.NotNil(t, body["profile"])
}

func TestSignUpJobSeekerHasNoProfileYet(t *testing.T) {
	s := newTestServer(t)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/auth/signup",
		body: map[string]string{
			"email":    "seeker@example.test",
			"password": "hunter2hunter2",
			"role":     "jobseeker",
		},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, true, body["authenticated"])
	assert.Nil(t, body["profile"], "jobseeker profile creation is deferred")
}

func TestSignUpValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		body  map[string]string
		field string
	}{
		{
			name:  "bad email",
			body:  map[string]string{"email": "nope", "password": "hunter2hunter2", "role": "employer"},
			field: "email",
		},
		{
			name:  "short password",
			body:  map[string]string{"email": "a@b.test", "password": "short", "role": "employer"},
			field: "password",
		},
		{
			name:  "unknown role",
			body:  map[string]string{"email": "a@b.test", "password": "hunter2hunter2", "role": "admin"},
			field: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(request{method: http.MethodPost, path: "/api/auth/signup", body: tt.body})
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			body := decodeBody(t, w)
			assert.Equal(t, "validation", body["error"])
			assert.Equal(t, tt.field, body["field"])
		})
	}
}

func TestSignUpDuplicate(t *testing.T) {
	s := newTestServer(t)
	s.signUp("dup@example.test", domainauth.RoleEmployer)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/auth/signup",
		body: map[string]string{
			"email":    "dup@example.test",
			"password": "hunter2hunter2",
			"role":     "jobseeker",
		},
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "duplicate_account", decodeBody(t, w)["error"])
}

func TestSignIn(t *testing.T) {
	s := newTestServer(t)
	s.signUp("signin@example.test", domainauth.RoleEmployer)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/auth/signin",
		body:   map[string]string{"email": "signin@example.test", "password": "hunter2hunter2"},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, sessionCookie(t, w))
	body := decodeBody(t, w)
	assert.Equal(t, true, body["authenticated"])
}

func TestSignInBadCredentials(t *testing.T) {
	s := newTestServer(t)
	s.signUp("victim@example.test", domainauth.RoleEmployer)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/auth/signin",
		body:   map[string]string{"email": "victim@example.test", "password": "wrong-password"},
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authentication", decodeBody(t, w)["error"])
	assert.Nil(t, sessionCookie(t, w))
}

func TestSignInEchoesRedirect(t *testing.T) {
	s := newTestServer(t)
	s.signUp("redirect@example.test", domainauth.RoleEmployer)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/auth/signin?redirect_uri=%2Femployer%2Fjobs",
		body:   map[string]string{"email": "redirect@example.test", "password": "hunter2hunter2"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/employer/jobs", decodeBody(t, w)["redirect_to"])
}

func TestSignInRejectsAbsoluteRedirect(t *testing.T) {
	s := newTestServer(t)
	s.signUp("redirect2@example.test", domainauth.RoleEmployer)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/auth/signin?redirect_uri=https%3A%2F%2Fevil.test%2F",
		body:   map[string]string{"email": "redirect2@example.test", "password": "hunter2hunter2"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/", decodeBody(t, w)["redirect_to"])
}

func TestMe(t *testing.T) {
	s := newTestServer(t)

	w := s.do(request{method: http.MethodGet, path: "/api/auth/me"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["authenticated"])

	cookie := s.signUp("me@example.test", domainauth.RoleJobSeeker)
	w = s.do(request{method: http.MethodGet, path: "/api/auth/me", cookie: cookie})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["authenticated"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "me@example.test", user["email"])
}

func TestMeWithTamperedCookie(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("tamper@example.test", domainauth.RoleJobSeeker)
	cookie.Value += "x"

	w := s.do(request{method: http.MethodGet, path: "/api/auth/me", cookie: cookie})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["authenticated"])
}

func TestSignOut(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("bye@example.test", domainauth.RoleEmployer)

	w := s.do(request{method: http.MethodPost, path: "/api/auth/signout", cookie: cookie})
	require.Equal(t, http.StatusOK, w.Code)

	cleared := sessionCookie(t, w)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// The remote session is gone: the old cookie no longer authenticates.
	w = s.do(request{method: http.MethodGet, path: "/api/auth/me", cookie: cookie})
	assert.Equal(t, false, decodeBody(t, w)["authenticated"])
}

func TestSignOutWithoutSession(t *testing.T) {
	s := newTestServer(t)

	w := s.do(request{method: http.MethodPost, path: "/api/auth/signout"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "signed_out", decodeBody(t, w)["status"])

	cleared := sessionCookie(t, w)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestRefreshProfile(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("fresh@example.test", domainauth.RoleEmployer)

	w := s.do(request{method: http.MethodPost, path: "/api/auth/refresh", cookie: cookie})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decodeBody(t, w)["authenticated"])
}

func TestRefreshProfileRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(request{method: http.MethodPost, path: "/api/auth/refresh"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	w := s.do(request{method: http.MethodGet, path: "/healthz"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
