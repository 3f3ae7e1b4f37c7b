package gateway

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/domain"
	"github.com/spec-kit/autoassess-client/internal/routing"
)

// AuthTransport is the single outgoing pipeline: every request is
// classified by target path and the matching credential, if any, is
// attached as a bearer token before dispatch. Failures from the base
// transport propagate unchanged.
type AuthTransport struct {
	Base        http.RoundTripper
	Classifier  *routing.Classifier
	Credentials credstore.Store
	// Fallback controls whether ambiguous paths borrow a credential,
	// preferring teacher over student. A heuristic for shared
	// endpoints, not a security boundary.
	Fallback bool
	Logger   *zap.Logger
}

// RoundTrip attaches at most one Authorization header and dispatches.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req == nil {
		return nil, errors.New("request is nil")
	}

	out := req.Clone(req.Context())
	if token, ok := t.resolveToken(req); ok {
		out.Header.Set("Authorization", "Bearer "+token)
	}
	if out.Header.Get("X-Request-ID") == "" {
		out.Header.Set("X-Request-ID", uuid.NewString())
	}
	return base.RoundTrip(out)
}

func (t *AuthTransport) resolveToken(req *http.Request) (string, bool) {
	ctx := req.Context()
	role := t.Classifier.Classify(req.URL.Path)

	switch role {
	case domain.RoleStudent:
		return t.Credentials.Get(ctx, domain.RoleStudent)
	case domain.RoleTeacher:
		return t.Credentials.Get(ctx, domain.RoleTeacher)
	default:
		if !t.Fallback {
			return "", false
		}
		if token, ok := t.Credentials.Get(ctx, domain.RoleTeacher); ok {
			return token, true
		}
		if token, ok := t.Credentials.Get(ctx, domain.RoleStudent); ok {
			if t.Logger != nil {
				t.Logger.Debug("ambiguous path authenticated with student credential",
					zap.String("path", req.URL.Path))
			}
			return token, true
		}
		return "", false
	}
}
