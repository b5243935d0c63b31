package app

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/service"
	"barkwise/pet-api/internal/testutil"
	"barkwise/pet-api/pkg/security"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t      *testing.T
	deps   *internal.Deps
	router *gin.Engine
	clock  *testutil.Clock
	mailer *testutil.Mailer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := testutil.NewClock()
	mailer := &testutil.Mailer{}

	tokens, err := security.NewTokenIssuer("test-secret", security.DefaultTokenTTL)
	require.NoError(t, err)
	tokens.WithClock(clock.Now)

	d := &internal.Deps{
		DB:     testutil.NewDB(t),
		Hasher: testutil.Hasher(),
		Tokens: tokens,
		Mailer: mailer,
		Now:    clock.Now,
	}

	d.Resets, err = service.NewResetLedger(service.ResetLedgerOpts{
		DB:       d.DB,
		Hasher:   d.Hasher,
		Mailer:   d.Mailer,
		ResetURL: "http://localhost:8080/reset-password",
		Now:      clock.Now,
	})
	require.NoError(t, err)

	router, stop := NewRouter(d, RouterOpts{})
	t.Cleanup(stop)

	return &harness{t: t, deps: d, router: router, clock: clock, mailer: mailer}
}

// do sends a JSON request and decodes the JSON answer into a map
func (h *harness) do(method, path, token string, body any) (int, map[string]any) {
	h.t.Helper()

	rec := h.raw(method, path, token, body)

	out := map[string]any{}
	if rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}

	return rec.Code, out
}

func (h *harness) raw(method, path, token string, body any) *httptest.ResponseRecorder {
	h.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	return rec
}

// list sends a request whose answer is a JSON array
func (h *harness) list(path, token string) (int, []map[string]any) {
	h.t.Helper()

	rec := h.raw(http.MethodGet, path, token, nil)

	var out []map[string]any
	if rec.Code == http.StatusOK {
		require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}

	return rec.Code, out
}

func (h *harness) register(name, email, password string) string {
	h.t.Helper()

	code, body := h.do(http.MethodPost, "/register", "", map[string]any{
		"name":            name,
		"email":           email,
		"password":        password,
		"confirmPassword": password,
	})
	require.Equal(h.t, http.StatusCreated, code, body)

	return body["user"].(map[string]any)["id"].(string)
}

func (h *harness) login(email, password string) string {
	h.t.Helper()

	code, body := h.do(http.MethodPost, "/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(h.t, http.StatusOK, code, body)

	return body["user"].(map[string]any)["token"].(string)
}

// account registers a user and returns a token for them
func (h *harness) account(name, email string) string {
	h.t.Helper()

	h.register(name, email, "p1")
	return h.login(email, "p1")
}

func testutilToken(t *testing.T, m testutil.Mail) string {
	t.Helper()
	return testutil.TokenFromMail(t, m)
}
