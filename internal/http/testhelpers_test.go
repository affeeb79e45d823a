package httpx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/goldengigs/goldengigs/internal/adapters/pgauth"
	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	mockbackend "github.com/goldengigs/goldengigs/internal/mocks/backend"
	mockstores "github.com/goldengigs/goldengigs/internal/mocks/stores"
	"github.com/goldengigs/goldengigs/internal/session"
)

// testServer wires a real session manager over in-memory auth infrastructure
// and gomock stores for the marketplace data.
type testServer struct {
	t        *testing.T
	router   http.Handler
	backend  *mockbackend.MemoryAuthBackend
	users    *mockbackend.MemoryUserStore
	profiles *mockbackend.MemoryProfileStore
	bus      *mockbackend.MemoryEventBus
	manager  *session.Manager
	jobs     *mockstores.MockJobStore
	apps     *mockstores.MockApplicationStore
	blobs    *mockstores.MockBlobStore
	codec    *pgauth.TokenCodec
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	bus := mockbackend.NewMemoryEventBus()
	backend := mockbackend.NewMemoryAuthBackend()
	backend.Bus = bus
	users := mockbackend.NewMemoryUserStore()
	profiles := mockbackend.NewMemoryProfileStore()
	logger := slog.New(slog.DiscardHandler)

	manager := session.NewManager(session.ManagerOptions{
		Backend:  backend,
		Users:    users,
		Profiles: profiles,
		Bus:      bus,
		Logger:   logger,
	})

	s := &testServer{
		t:        t,
		backend:  backend,
		users:    users,
		profiles: profiles,
		bus:      bus,
		manager:  manager,
		jobs:     mockstores.NewMockJobStore(ctrl),
		apps:     mockstores.NewMockApplicationStore(ctrl),
		blobs:    mockstores.NewMockBlobStore(ctrl),
		codec:    pgauth.NewTokenCodec([]byte("test-secret"), time.Hour),
	}

	s.router = NewRouter(RouterServices{
		Sessions:     manager,
		Tokens:       s.codec,
		Profiles:     profiles,
		Jobs:         s.jobs,
		Applications: s.apps,
		Blobs:        s.blobs,
		Logger:       logger,
	})

	return s
}

type request struct {
	method string
	path   string
	body   any
	cookie *http.Cookie
}

func (s *testServer) do(req request) *httptest.ResponseRecorder {
	s.t.Helper()

	var body *bytes.Buffer
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		require.NoError(s.t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	r := httptest.NewRequest(req.method, req.path, body)
	if req.body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if req.cookie != nil {
		r.AddCookie(req.cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, r)
	return w
}

// signUp creates an account over the API and returns the session cookie.
func (s *testServer) signUp(email string, role domainauth.Role) *http.Cookie {
	s.t.Helper()

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/auth/signup",
		body: map[string]string{
			"email":    email,
			"password": "hunter2hunter2",
			"role":     string(role),
		},
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	cookie := sessionCookie(s.t, w)
	require.NotNil(s.t, cookie, "sign-up should set the session cookie")
	return cookie
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

// sessionIDFromCookie unwraps the signed cookie back to the raw session id.
func sessionIDFromCookie(t *testing.T, s *testServer, cookie *http.Cookie) string {
	t.Helper()
	id, err := s.codec.Parse(cookie.Value)
	require.NoError(t, err)
	return id
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
