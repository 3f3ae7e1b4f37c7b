package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/autoassess-client/internal/domain"
)

func TestClassify(t *testing.T) {
	classifier := NewClassifier("/api", []string{"/run", "/submit"})

	tests := []struct {
		path string
		want domain.Role
	}{
		{"/api/student/assignments", domain.RoleStudent},
		{"/api/student/login", domain.RoleStudent},
		{"/api/student/analyze/3/101", domain.RoleStudent},
		{"/api/run", domain.RoleStudent},
		{"/api/submit", domain.RoleStudent},
		{"/api/teacher/packages", domain.RoleTeacher},
		{"/api/teacher/login", domain.RoleTeacher},
		{"/api/teacher/assignments/4/release", domain.RoleTeacher},
		{"/api/health", domain.RoleAmbiguous},
		{"/api/runway", domain.RoleAmbiguous},
		{"/api", domain.RoleAmbiguous},
		{"", domain.RoleAmbiguous},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifier.Classify(tt.path), "path %q", tt.path)
	}
}

func TestClassifyStudentRuleWinsOverTeacher(t *testing.T) {
	classifier := NewClassifier("/api", []string{"/run", "/submit"})

	// First match wins: a path carrying both segments lands in the
	// student bucket.
	assert.Equal(t, domain.RoleStudent, classifier.Classify("/api/teacher/x/student/y"))
}

func TestClassifyBareActionsNeedExactMatch(t *testing.T) {
	classifier := NewClassifier("/api", []string{"/run", "/submit"})

	assert.Equal(t, domain.RoleAmbiguous, classifier.Classify("/api/run/extra"))
	assert.Equal(t, domain.RoleStudent, classifier.Classify("/run"))
}

func TestClassifyConfigurableActions(t *testing.T) {
	classifier := NewClassifier("/v2", []string{"/run", "/submit", "/retest"})

	assert.Equal(t, domain.RoleStudent, classifier.Classify("/v2/retest"))
	assert.Equal(t, domain.RoleAmbiguous, classifier.Classify("/api/retest/x"))
}
