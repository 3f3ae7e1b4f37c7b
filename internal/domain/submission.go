package domain

import "time"

// RunResult is the outcome of one test case during an ad-hoc run.
type RunResult struct {
	Stdout       string  `json:"stdout"`
	Stderr       string  `json:"stderr"`
	Runtime      float64 `json:"runtime"`
	TimedOut     bool    `json:"timed_out"`
	Passed       bool    `json:"passed"`
	TestCaseType string  `json:"testcase_type"`
}

// RunResponse aggregates the results of a run request.
type RunResponse struct {
	OverallOutput string      `json:"overall_output"`
	Results       []RunResult `json:"results"`
}

// SubmissionResult is a graded submission as reported to teachers.
type SubmissionResult struct {
	ID                  int              `json:"id"`
	StudentAssignmentID int              `json:"student_assignment_id"`
	Roll                int              `json:"roll"`
	FinalScore          float64          `json:"final_score"`
	RawTestScore        float64          `json:"raw_test_score"`
	QualityScore        int              `json:"quality_score"`
	ErrorPenalty        float64          `json:"error_penalty"`
	QualityComments     []string         `json:"quality_comments"`
	ErrorCounts         map[string]any   `json:"error_counts"`
	TestResults         []map[string]any `json:"test_results"`
	Code                string           `json:"code"`
	SubmittedAt         time.Time        `json:"submitted_at"`
}

// ReleaseWeights are the scoring weights sent when releasing results.
type ReleaseWeights struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}
