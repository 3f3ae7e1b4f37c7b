package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/config"
	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/domain"
	"github.com/spec-kit/autoassess-client/internal/observability"
)

func newTestApp(backendURL string, store credstore.Store) *fiber.App {
	api := config.APIConfig{BaseURL: backendURL, Prefix: "/api"}
	auth := config.AuthConfig{StudentActions: []string{"/run", "/submit"}, AmbiguousFallback: true}

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics())
	RegisterRoutes(app, api.Prefix, NewProxy(api, auth, store, zap.NewNop()))
	return app
}

func TestProxyInjectsTeacherToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/api/teacher/packages", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]string{})
	}))
	defer backend.Close()

	store := credstore.NewMemoryStore()
	store.Set(context.Background(), domain.RoleTeacher, "T1")

	app := newTestApp(backend.URL, store)

	req := httptest.NewRequest(http.MethodGet, "/api/teacher/packages", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer T1", gotAuth)
}

func TestProxyCopiesBackendErrorVerbatim(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer backend.Close()

	app := newTestApp(backend.URL, credstore.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/student/assignments", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, string(body))
}

func TestProxyBackendUnreachable(t *testing.T) {
	app := newTestApp("http://127.0.0.1:1", credstore.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/teacher/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":"backend unreachable"}`, string(body))
}

func TestProxyForwardsPostBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"roll":101,"assignment_id":3,"code":"x"}`, string(body))
		assert.Equal(t, fiber.MIMEApplicationJSON, r.Header.Get("Content-Type"))
		_ = json.NewEncoder(w).Encode(map[string]string{"overall_output": ""})
	}))
	defer backend.Close()

	app := newTestApp(backend.URL, credstore.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/run",
		strings.NewReader(`{"roll":101,"assignment_id":3,"code":"x"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
