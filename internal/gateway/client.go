package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/config"
	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/observability"
	"github.com/spec-kit/autoassess-client/internal/routing"
	apperrors "github.com/spec-kit/autoassess-client/pkg/util/errorutil"
)

// Client is the request gateway: typed wrappers over the backend HTTP
// surface, each performing exactly one call through the authenticating
// transport. The gateway never retries and never hides a backend error;
// callers decide how to surface failures.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
	metrics *observability.Metrics
	logger  *zap.Logger
}

// Deps bundles the gateway's collaborators.
type Deps struct {
	Credentials credstore.Store
	Metrics     *observability.Metrics
	Logger      *zap.Logger
	// Transport overrides the base dispatch, mainly for tests.
	Transport http.RoundTripper
}

// New wires a gateway client from configuration.
func New(api config.APIConfig, auth config.AuthConfig, deps Deps) *Client {
	classifier := routing.NewClassifier(api.Prefix, auth.StudentActions)
	transport := &AuthTransport{
		Base:        deps.Transport,
		Classifier:  classifier,
		Credentials: deps.Credentials,
		Fallback:    auth.AmbiguousFallback,
		Logger:      deps.Logger,
	}

	return &Client{
		baseURL: strings.TrimSuffix(api.BaseURL, "/"),
		prefix:  strings.TrimSuffix(api.Prefix, "/"),
		http: &http.Client{
			Transport: transport,
			// No client-side timeout unless configured; a hung request
			// only blocks its own caller.
			Timeout: api.Timeout(),
		},
		metrics: deps.Metrics,
		logger:  deps.Logger,
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + c.prefix + path
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path, contentType string, form io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), form)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordError(req.URL.Path, req.Method, "TRANSPORT")
		return fmt.Errorf("dispatch %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordError(req.URL.Path, req.Method, "READ_BODY")
		return fmt.Errorf("read response for %s: %w", req.URL.Path, err)
	}

	c.metrics.RecordCall(req.URL.Path, req.Method, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := apperrors.NewAPIError(resp.StatusCode, body)
		if c.logger != nil {
			c.logger.Debug("backend call failed",
				zap.String("path", req.URL.Path),
				zap.Int("status", resp.StatusCode),
				zap.String("detail", apiErr.Detail),
			)
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response for %s: %w", req.URL.Path, err)
	}
	return nil
}
