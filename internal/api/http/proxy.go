package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/config"
	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/gateway"
	"github.com/spec-kit/autoassess-client/internal/routing"
)

// Proxy forwards API requests to the backend through the authenticating
// transport, so browser-side tooling behind it never handles tokens.
// The equivalent of the SPA dev server's /api proxy with the credential
// interceptor folded in.
type Proxy struct {
	base   string
	client *http.Client
	logger *zap.Logger
}

// NewProxy wires a proxy against the configured backend.
func NewProxy(api config.APIConfig, auth config.AuthConfig, store credstore.Store, logger *zap.Logger) *Proxy {
	transport := &gateway.AuthTransport{
		Classifier:  routing.NewClassifier(api.Prefix, auth.StudentActions),
		Credentials: store,
		Fallback:    auth.AmbiguousFallback,
		Logger:      logger,
	}

	return &Proxy{
		base: strings.TrimSuffix(api.BaseURL, "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   api.Timeout(),
		},
		logger: logger,
	}
}

// RegisterRoutes mounts the proxy under the API prefix.
func RegisterRoutes(app *fiber.App, prefix string, proxy *Proxy) {
	app.All(prefix+"/*", proxy.Forward)
}

// Forward relays one request to the backend and copies the response
// back verbatim, status and error payload included.
func (p *Proxy) Forward(c *fiber.Ctx) error {
	target := p.base + c.OriginalURL()

	req, err := http.NewRequestWithContext(c.UserContext(), c.Method(), target, bytes.NewReader(c.Body()))
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	if contentType := c.Get(fiber.HeaderContentType); contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("backend unreachable", zap.String("target", target), zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{
			"detail": "backend unreachable",
		})
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}

	if contentType := resp.Header.Get(fiber.HeaderContentType); contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	return c.Status(resp.StatusCode).Send(body)
}
