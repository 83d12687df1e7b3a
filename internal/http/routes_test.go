package httpx

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
	mockauth "github.com/bluemoon-pm/bluemoon-ui/internal/mocks/auth"
	"github.com/bluemoon-pm/bluemoon-ui/internal/service"
)

// testEnv wires a full router against an httptest backend and a set of
// pre-seeded sessions, one per role.
type testEnv struct {
	Router        http.Handler
	Auth          *service.AuthService
	Authenticator *mockauth.MockAuthenticator
	Sessions      *mockauth.MemorySessionStore
}

// newTestEnv builds the router. A nil backendHandler points the client at an
// unreachable origin, which exercises the 502 path.
func newTestEnv(t *testing.T, backendHandler http.Handler) *testEnv {
	t.Helper()

	baseURL := "http://127.0.0.1:1"
	if backendHandler != nil {
		srv := httptest.NewServer(backendHandler)
		t.Cleanup(srv.Close)
		baseURL = srv.URL
	}
	client := backend.NewClient(backend.Config{BaseURL: baseURL, Timeout: 2 * time.Second})

	authenticator := mockauth.NewMockAuthenticator()
	sessions := mockauth.NewMemorySessionStore()
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Authenticator: authenticator,
		Sessions:      sessions,
	})

	seedSession(t, sessions, "sess-resident", "rita", domainauth.RoleResident)
	seedSession(t, sessions, "sess-accountant", "ahmed", domainauth.RoleAccountant)
	seedSession(t, sessions, "sess-manager", "mara", domainauth.RoleManager)
	seedSession(t, sessions, "sess-admin", "root", domainauth.RoleAdmin)

	// A role the gateway does not recognize. It keeps a session but never
	// gains any grants.
	require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
		ID:        "sess-auditor",
		Username:  "ivy",
		Role:      domainauth.RoleUnknown,
		RoleName:  "Auditor",
		Token:     "tok-sess-auditor",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(RouterServices{
		Auth:    authSvc,
		Backend: client,
		Summaries: service.NewDashboardService(service.DashboardServiceOptions{
			Backend: client,
			Logger:  logger,
		}),
		Logger: logger,
	})

	return &testEnv{
		Router:        router,
		Auth:          authSvc,
		Authenticator: authenticator,
		Sessions:      sessions,
	}
}

func seedSession(t *testing.T, store *mockauth.MemorySessionStore, id, username string, role domainauth.Role) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), domainauth.Session{
		ID:        id,
		Username:  username,
		Role:      role,
		RoleName:  string(role),
		Token:     "tok-" + id,
		ExpiresAt: time.Now().Add(time.Hour),
	}))
}

// do sends a request through the router. An empty sessionID omits the cookie.
func (e *testEnv) do(method, path, sessionID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, path, reader)
	if sessionID != "" {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	}
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, r)
	return w
}

func (e *testEnv) get(path, sessionID string) *httptest.ResponseRecorder {
	return e.do(http.MethodGet, path, sessionID, "")
}

// errCode extracts the "error" field of the JSON error envelope.
func errCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func TestRouter_Healthz(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = env.do(http.MethodHead, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRouter_NotFoundIsJSON(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/api/no-such-thing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errCode(t, w))
}

func TestRouter_WrongMethodIsNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	// ServeMux answers 405 for a known path with the wrong method; that
	// passes through the capture writer untouched.
	w := env.do(http.MethodDelete, "/api/dashboard", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
