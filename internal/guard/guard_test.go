package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/session"
)

func TestGuardLockedRedirects(t *testing.T) {
	ctx := context.Background()
	sess := session.New(ctx, credstore.NewMemoryStore(), zap.NewNop())
	g := New(sess, "/teacher/login")

	decision := g.Admit()
	assert.Equal(t, Locked, decision.State)
	assert.Equal(t, "/teacher/login", decision.RedirectTo)
	assert.Error(t, g.Require())
}

func TestGuardUnlocksOnLogin(t *testing.T) {
	ctx := context.Background()
	sess := session.New(ctx, credstore.NewMemoryStore(), zap.NewNop())
	g := New(sess, "/teacher/login")

	sess.Login(ctx, "T1")

	decision := g.Admit()
	assert.Equal(t, Unlocked, decision.State)
	assert.Empty(t, decision.RedirectTo)
	assert.NoError(t, g.Require())

	sess.Logout(ctx)
	assert.Equal(t, Locked, g.Admit().State, "guard re-resolves at each check")
}
