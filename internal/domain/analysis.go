package domain

// CodeAnalysis is the AI review of a submission, computed server-side.
type CodeAnalysis struct {
	StrongPoints []string `json:"strong_points"`
	WeakPoints   []string `json:"weak_points"`
	Suggestions  []string `json:"suggestions"`
}

// TeacherCodes is the one-time code listing for teacher-mediated resets.
type TeacherCodes struct {
	Codes []string `json:"codes"`
	Mode  string   `json:"mode"`
}

// TeacherStats is the dashboard summary for the teacher console.
type TeacherStats struct {
	TotalStudents    int     `json:"total_students"`
	TotalAssignments int     `json:"total_assignments"`
	TotalSubmissions int     `json:"total_submissions"`
	AverageScore     float64 `json:"average_score"`
}
