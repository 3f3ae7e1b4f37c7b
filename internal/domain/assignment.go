package domain

// Assignment is a named collection of packages distributed to students.
type Assignment struct {
	ID             int    `json:"id"`
	AssignmentName string `json:"assignment_name"`
	Released       bool   `json:"released"`
}

// StudentAssignment is one row of the student's assignment list, carrying
// submission status and the score once results are released.
type StudentAssignment struct {
	AssignmentID    int      `json:"assignment_id"`
	AssignmentName  string   `json:"assignment_name"`
	PackageTitle    string   `json:"package_title"`
	HasSubmitted    bool     `json:"has_submitted"`
	ResultsReleased bool     `json:"results_released"`
	FinalScore      *float64 `json:"final_score,omitempty"`
}

// AssignmentDetail is the full view of one assignment for one student.
type AssignmentDetail struct {
	AssignmentName  string     `json:"assignment_name"`
	PackageTitle    string     `json:"package_title"`
	PackagePrompt   string     `json:"package_prompt"`
	SampleTestCases []TestCase `json:"sample_testcases"`
	HasSubmitted    bool       `json:"has_submitted"`
	ResultsReleased bool       `json:"results_released"`
}
