package domain

// StudentProfile is the student's own account view.
type StudentProfile struct {
	Roll int    `json:"roll"`
	Name string `json:"name"`
	DOB  string `json:"dob"`
}

// Identity is what the client can recover about the logged-in subject by
// decoding the subject claim out of a bearer token.
type Identity struct {
	Subject string
}
