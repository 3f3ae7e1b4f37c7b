package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/spec-kit/autoassess-client/internal/domain"
)

// LoginTeacher exchanges teacher credentials for a bearer token. The
// caller decides whether to persist it (see session.Session.Login).
func (c *Client) LoginTeacher(ctx context.Context, username, password string) (domain.TokenResponse, error) {
	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}

	var token domain.TokenResponse
	err := c.postJSON(ctx, "/teacher/login", payload, &token)
	return token, err
}

// GenerateQuestions asks the backend to produce question packages on a topic.
func (c *Client) GenerateQuestions(ctx context.Context, topic, difficulty string, n int) ([]domain.Package, error) {
	payload := struct {
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
		NQuestions int    `json:"n_questions"`
	}{topic, difficulty, n}

	var packages []domain.Package
	err := c.postJSON(ctx, "/teacher/generate_questions", payload, &packages)
	return packages, err
}

// GenerateFromText produces question packages from pasted source material.
func (c *Client) GenerateFromText(ctx context.Context, text, difficulty string, n int) ([]domain.Package, error) {
	payload := struct {
		Text       string `json:"text"`
		Difficulty string `json:"difficulty"`
		NQuestions int    `json:"n_questions"`
	}{text, difficulty, n}

	var packages []domain.Package
	err := c.postJSON(ctx, "/teacher/generate_from_text", payload, &packages)
	return packages, err
}

// GenerateFromFile uploads a document and produces question packages
// from its contents.
func (c *Client) GenerateFromFile(ctx context.Context, filename string, file io.Reader, n int, difficulty string) ([]domain.Package, error) {
	var form bytes.Buffer
	writer := multipart.NewWriter(&form)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read upload %s: %w", filename, err)
	}
	if err := writer.WriteField("n_questions", strconv.Itoa(n)); err != nil {
		return nil, err
	}
	if err := writer.WriteField("difficulty", difficulty); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var packages []domain.Package
	err = c.postForm(ctx, "/teacher/generate_from_file", writer.FormDataContentType(), &form, &packages)
	return packages, err
}

// Packages lists the teacher's generated question packages.
func (c *Client) Packages(ctx context.Context) ([]domain.Package, error) {
	var packages []domain.Package
	err := c.getJSON(ctx, "/teacher/packages", &packages)
	return packages, err
}

// Assignments lists the teacher's assignments.
func (c *Client) Assignments(ctx context.Context) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := c.getJSON(ctx, "/teacher/assignments", &assignments)
	return assignments, err
}

// CreateAssignment builds an assignment from the given packages.
func (c *Client) CreateAssignment(ctx context.Context, name string, packageIDs []int) (domain.Assignment, error) {
	payload := struct {
		AssignmentName string `json:"assignment_name"`
		PackageIDs     []int  `json:"package_ids"`
	}{name, packageIDs}

	var assignment domain.Assignment
	err := c.postJSON(ctx, "/teacher/create_assignment", payload, &assignment)
	return assignment, err
}

// Results fetches every graded submission for an assignment.
func (c *Client) Results(ctx context.Context, assignmentID int) ([]domain.SubmissionResult, error) {
	var results []domain.SubmissionResult
	err := c.getJSON(ctx, fmt.Sprintf("/teacher/results/%d", assignmentID), &results)
	return results, err
}

// Codes fetches the one-time reset codes.
func (c *Client) Codes(ctx context.Context) (domain.TeacherCodes, error) {
	var codes domain.TeacherCodes
	err := c.getJSON(ctx, "/teacher/codes", &codes)
	return codes, err
}

// ReleaseResults makes an assignment's graded results visible to
// students, scored with the given weights.
func (c *Client) ReleaseResults(ctx context.Context, assignmentID int, weights domain.ReleaseWeights) error {
	return c.postJSON(ctx, fmt.Sprintf("/teacher/assignments/%d/release", assignmentID), weights, nil)
}

// CodeAnalysis fetches the AI review of one submission.
func (c *Client) CodeAnalysis(ctx context.Context, submissionID int) (domain.CodeAnalysis, error) {
	var analysis domain.CodeAnalysis
	err := c.getJSON(ctx, fmt.Sprintf("/teacher/analyze/%d", submissionID), &analysis)
	return analysis, err
}

// Stats fetches the teacher dashboard summary.
func (c *Client) Stats(ctx context.Context) (domain.TeacherStats, error) {
	var stats domain.TeacherStats
	err := c.getJSON(ctx, "/teacher/stats", &stats)
	return stats, err
}
