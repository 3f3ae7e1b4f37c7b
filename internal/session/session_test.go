package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/domain"
)

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	store := credstore.NewMemoryStore()
	sess := New(ctx, store, zap.NewNop())

	assert.False(t, sess.IsAuthenticated())

	sess.Login(ctx, "T1")
	assert.True(t, sess.IsAuthenticated())
	token, ok := store.Get(ctx, domain.RoleTeacher)
	require.True(t, ok)
	assert.Equal(t, "T1", token)

	sess.Logout(ctx)
	assert.False(t, sess.IsAuthenticated())
	_, ok = store.Get(ctx, domain.RoleTeacher)
	assert.False(t, ok, "logout clears the stored credential")
}

func TestStateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := credstore.NewMemoryStore()

	New(ctx, store, zap.NewNop()).Login(ctx, "T1")

	// A fresh session over the same store still reports logged in.
	reloaded := New(ctx, store, zap.NewNop())
	assert.True(t, reloaded.IsAuthenticated())
}

func TestReloadTracksExternalMutation(t *testing.T) {
	ctx := context.Background()
	store := credstore.NewMemoryStore()
	sess := New(ctx, store, zap.NewNop())

	store.Set(ctx, domain.RoleTeacher, "T1")
	assert.False(t, sess.IsAuthenticated(), "state derives from init-time read")

	sess.Reload(ctx)
	assert.True(t, sess.IsAuthenticated())
}

func TestSubscribers(t *testing.T) {
	ctx := context.Background()
	sess := New(ctx, credstore.NewMemoryStore(), zap.NewNop())

	var seen []bool
	cancel := sess.Subscribe(func(authenticated bool) {
		seen = append(seen, authenticated)
	})

	sess.Login(ctx, "T1")
	sess.Login(ctx, "T2") // no flip, no notification
	sess.Logout(ctx)
	assert.Equal(t, []bool{true, false}, seen)

	cancel()
	sess.Login(ctx, "T3")
	assert.Equal(t, []bool{true, false}, seen, "cancelled subscriber stays silent")
}

func TestStudentCredentialDoesNotAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := credstore.NewMemoryStore()
	store.Set(ctx, domain.RoleStudent, "S1")

	sess := New(ctx, store, zap.NewNop())
	assert.False(t, sess.IsAuthenticated())
}
