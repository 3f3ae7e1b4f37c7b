package credstore

import (
	"context"

	"github.com/spec-kit/autoassess-client/internal/domain"
)

// Storage keys, one per role. Absence of a key means "logged out" for
// that role.
const (
	teacherKey = "authToken"
	studentKey = "studentAuthToken"
)

// Store persists at most one bearer token per role. Reads never fail:
// any storage access error reads as "token absent". Writes are
// best-effort; implementations log failures instead of returning them.
type Store interface {
	// Get returns the live token for the role, if any.
	Get(ctx context.Context, role domain.Role) (string, bool)
	// Set persists the token immediately, overwriting any prior one.
	Set(ctx context.Context, role domain.Role, token string)
	// Clear removes the persisted token for the role.
	Clear(ctx context.Context, role domain.Role)
}

func storageKey(role domain.Role) (string, bool) {
	switch role {
	case domain.RoleTeacher:
		return teacherKey, true
	case domain.RoleStudent:
		return studentKey, true
	default:
		return "", false
	}
}
