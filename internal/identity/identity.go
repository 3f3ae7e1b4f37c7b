package identity

import (
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/autoassess-client/internal/domain"
	apperrors "github.com/spec-kit/autoassess-client/pkg/util/errorutil"
)

var errNoSubject = errors.New("token has no subject claim")

// Decode recovers the subject identity from a bearer token's payload.
// The signature is not verified; the token itself doubles as the
// identity record and only the backend can vouch for it. Callers that
// merely want "who, if anyone" should treat an error as no identity.
func Decode(token string) (domain.Identity, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return domain.Identity{}, apperrors.NewDecodeError(err)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return domain.Identity{}, apperrors.NewDecodeError(err)
	}
	if subject == "" {
		return domain.Identity{}, apperrors.NewDecodeError(errNoSubject)
	}
	return domain.Identity{Subject: subject}, nil
}
