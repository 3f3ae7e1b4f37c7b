package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/config"
	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/domain"
	"github.com/spec-kit/autoassess-client/internal/observability"
	apperrors "github.com/spec-kit/autoassess-client/pkg/util/errorutil"
)

func newTestClient(t *testing.T, backend *httptest.Server, store credstore.Store) *Client {
	t.Helper()
	api := config.APIConfig{BaseURL: backend.URL, Prefix: "/api"}
	auth := config.AuthConfig{
		StudentActions:    []string{"/run", "/submit"},
		AmbiguousFallback: true,
	}
	return New(api, auth, Deps{
		Credentials: store,
		Metrics:     observability.NewMetrics(),
		Logger:      zap.NewNop(),
	})
}

func TestLoginTeacher(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/teacher/login", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "alice", payload["username"])
		require.Equal(t, "s3cret", payload["password"])

		_ = json.NewEncoder(w).Encode(domain.TokenResponse{AccessToken: "T1", TokenType: "bearer"})
	}))
	defer backend.Close()

	client := newTestClient(t, backend, credstore.NewMemoryStore())

	token, err := client.LoginTeacher(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "T1", token.AccessToken)
}

func TestWrapperAttachesStoredToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]domain.Package{{ID: 1, Title: "Loops"}})
	}))
	defer backend.Close()

	ctx := context.Background()
	store := credstore.NewMemoryStore()
	store.Set(ctx, domain.RoleTeacher, "T1")
	client := newTestClient(t, backend, store)

	packages, err := client.Packages(ctx)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "Loops", packages[0].Title)
	assert.Equal(t, "Bearer T1", gotAuth)
}

func TestBackendErrorPropagatesDetail(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
	}))
	defer backend.Close()

	client := newTestClient(t, backend, credstore.NewMemoryStore())

	_, err := client.LoginTeacher(context.Background(), "alice", "wrong")
	require.Error(t, err)

	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Incorrect username or password", apiErr.Detail)
}

func TestReleaseResultsSendsWeights(t *testing.T) {
	var got domain.ReleaseWeights
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/teacher/assignments/4/release", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	client := newTestClient(t, backend, credstore.NewMemoryStore())

	weights := domain.ReleaseWeights{Alpha: 0.6, Beta: 0.4, Gamma: 10}
	require.NoError(t, client.ReleaseResults(context.Background(), 4, weights))
	assert.Equal(t, weights, got)
}

func TestStudentResultFiltersByRoll(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/teacher/results/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domain.SubmissionResult{
			{ID: 1, Roll: 101, FinalScore: 55},
			{ID: 2, Roll: 102, FinalScore: 88},
		})
	}))
	defer backend.Close()

	client := newTestClient(t, backend, credstore.NewMemoryStore())

	result, err := client.StudentResult(context.Background(), 7, "102")
	require.NoError(t, err)
	assert.Equal(t, 102, result.Roll)
	assert.Equal(t, 88.0, result.FinalScore)
}

func TestStudentResultNotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.SubmissionResult{
			{ID: 1, Roll: 101},
			{ID: 2, Roll: 102},
		})
	}))
	defer backend.Close()

	client := newTestClient(t, backend, credstore.NewMemoryStore())

	_, err := client.StudentResult(context.Background(), 7, "999")
	require.Error(t, err)
	assert.True(t, apperrors.IsResultNotFound(err))
}

func TestRunCodePayload(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/run", r.URL.Path)

		var payload struct {
			Roll         int    `json:"roll"`
			AssignmentID int    `json:"assignment_id"`
			Code         string `json:"code"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, 101, payload.Roll)
		require.Equal(t, 3, payload.AssignmentID)
		require.Equal(t, "print(1)", payload.Code)

		_ = json.NewEncoder(w).Encode(domain.RunResponse{OverallOutput: "1\n"})
	}))
	defer backend.Close()

	client := newTestClient(t, backend, credstore.NewMemoryStore())

	run, err := client.RunCode(context.Background(), 101, 3, "print(1)")
	require.NoError(t, err)
	assert.Equal(t, "1\n", run.OverallOutput)
}

func TestCallCounterRecordsOutcome(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Assignment{})
	}))
	defer backend.Close()

	metrics := observability.NewMetrics()
	api := config.APIConfig{BaseURL: backend.URL, Prefix: "/api"}
	auth := config.AuthConfig{StudentActions: []string{"/run", "/submit"}, AmbiguousFallback: true}
	client := New(api, auth, Deps{
		Credentials: credstore.NewMemoryStore(),
		Metrics:     metrics,
		Logger:      zap.NewNop(),
	})

	_, err := client.Assignments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), metrics.CallCount("/api/teacher/assignments", http.MethodGet, http.StatusOK))
}
