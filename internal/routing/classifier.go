package routing

import (
	"strings"

	"github.com/spec-kit/autoassess-client/internal/domain"
)

// Classifier maps an outgoing request path to the role whose credential
// should authenticate it. Some endpoints are bare verbs with no role
// prefix and must be allowlisted explicitly; the generic rules would
// otherwise classify them as ambiguous.
type Classifier struct {
	prefix  string
	actions map[string]struct{}
}

// NewClassifier builds a classifier. prefix is the API base path
// stripped before matching bare actions; actions is the set of
// student-only bare paths (e.g. /run, /submit).
func NewClassifier(prefix string, actions []string) *Classifier {
	set := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		set[a] = struct{}{}
	}
	return &Classifier{prefix: strings.TrimSuffix(prefix, "/"), actions: set}
}

// Classify resolves the role bucket for a path. Rules are priority
// ordered, first match wins:
//  1. contains /student/ or is an allowlisted bare student action
//  2. contains /teacher/
//  3. ambiguous
func (c *Classifier) Classify(path string) domain.Role {
	if strings.Contains(path, "/student/") || c.isStudentAction(path) {
		return domain.RoleStudent
	}
	if strings.Contains(path, "/teacher/") {
		return domain.RoleTeacher
	}
	return domain.RoleAmbiguous
}

func (c *Classifier) isStudentAction(path string) bool {
	trimmed := path
	if c.prefix != "" && strings.HasPrefix(path, c.prefix) {
		trimmed = strings.TrimPrefix(path, c.prefix)
	}
	_, ok := c.actions[trimmed]
	return ok
}
