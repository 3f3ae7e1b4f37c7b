package domain

// TestCase is a single test attached to a generated question.
type TestCase struct {
	ID       *int   `json:"id,omitempty"`
	Type     string `json:"type"`
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Points   int    `json:"points"`
}

// Package is a generated coding question bundle (prompt plus test cases).
type Package struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Prompt     string     `json:"prompt"`
	Difficulty string     `json:"difficulty"`
	TestCases  []TestCase `json:"testcases,omitempty"`
}
