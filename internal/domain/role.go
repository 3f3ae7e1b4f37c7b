package domain

// Role differentiates the two independent identity classes the client
// manages, plus the ambiguous bucket for paths owned by neither.
type Role string

const (
	RoleTeacher   Role = "TEACHER"
	RoleStudent   Role = "STUDENT"
	RoleAmbiguous Role = "AMBIGUOUS"
)

// Credential is a live bearer token for one role. At most one exists per
// role at any time; setting a new one overwrites, never appends.
type Credential struct {
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

// TokenResponse is the payload returned by both login endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
