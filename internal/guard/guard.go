package guard

import (
	"github.com/spec-kit/autoassess-client/internal/session"
	apperrors "github.com/spec-kit/autoassess-client/pkg/util/errorutil"
)

// State is the guard's view of a protected surface.
type State int

const (
	// Locked means render nothing but a redirect to the login target.
	Locked State = iota
	// Unlocked means render the protected content.
	Unlocked
)

// Decision is the guard's verdict at render time. RedirectTo is set
// only when the state is Locked.
type Decision struct {
	State      State
	RedirectTo string
}

// Guard wraps protected teacher surfaces. It consults the session
// synchronously; there is no waiting state because credential presence
// resolves without I/O. This is a UX nicety, not a security control:
// the backend independently rejects unauthorized calls.
type Guard struct {
	session     *session.Session
	loginTarget string
}

// New builds a guard redirecting locked-out visitors to loginTarget.
func New(sess *session.Session, loginTarget string) *Guard {
	return &Guard{session: sess, loginTarget: loginTarget}
}

// Admit resolves the guard's state at this instant.
func (g *Guard) Admit() Decision {
	if g.session.IsAuthenticated() {
		return Decision{State: Unlocked}
	}
	return Decision{State: Locked, RedirectTo: g.loginTarget}
}

// Require returns an error naming the login target when locked, for
// call sites that surface the redirect as a failure instead of a
// navigation.
func (g *Guard) Require() error {
	if d := g.Admit(); d.State == Locked {
		return apperrors.NewNotAuthenticated(d.RedirectTo)
	}
	return nil
}
