package gateway

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spec-kit/autoassess-client/internal/domain"
	apperrors "github.com/spec-kit/autoassess-client/pkg/util/errorutil"
)

// LoginStudent exchanges a roll number and date of birth for a bearer token.
func (c *Client) LoginStudent(ctx context.Context, roll int, dob string) (domain.TokenResponse, error) {
	payload := struct {
		Roll int    `json:"roll"`
		DOB  string `json:"dob"`
	}{roll, dob}

	var token domain.TokenResponse
	err := c.postJSON(ctx, "/student/login", payload, &token)
	return token, err
}

// StudentAssignments lists the student's assignments with status.
func (c *Client) StudentAssignments(ctx context.Context) ([]domain.StudentAssignment, error) {
	var assignments []domain.StudentAssignment
	err := c.getJSON(ctx, "/student/assignments", &assignments)
	return assignments, err
}

// StudentAssignment fetches one assignment's detail for a student.
func (c *Client) StudentAssignment(ctx context.Context, assignmentID int, roll string) (domain.AssignmentDetail, error) {
	var detail domain.AssignmentDetail
	err := c.getJSON(ctx, fmt.Sprintf("/student/assignment/%d/%s", assignmentID, roll), &detail)
	return detail, err
}

// RunCode executes code against the sample test cases without submitting.
func (c *Client) RunCode(ctx context.Context, roll, assignmentID int, code string) (domain.RunResponse, error) {
	payload := struct {
		Roll         int    `json:"roll"`
		AssignmentID int    `json:"assignment_id"`
		Code         string `json:"code"`
	}{roll, assignmentID, code}

	var run domain.RunResponse
	err := c.postJSON(ctx, "/run", payload, &run)
	return run, err
}

// SubmitSolution submits code for grading.
func (c *Client) SubmitSolution(ctx context.Context, roll, assignmentID int, code string) (domain.SubmissionResult, error) {
	payload := struct {
		Roll         int    `json:"roll"`
		AssignmentID int    `json:"assignment_id"`
		Code         string `json:"code"`
	}{roll, assignmentID, code}

	var result domain.SubmissionResult
	err := c.postJSON(ctx, "/submit", payload, &result)
	return result, err
}

// StudentAnalysis fetches the AI review of the student's submission.
func (c *Client) StudentAnalysis(ctx context.Context, assignmentID int, roll string) (domain.CodeAnalysis, error) {
	var analysis domain.CodeAnalysis
	err := c.getJSON(ctx, fmt.Sprintf("/student/analyze/%d/%s", assignmentID, roll), &analysis)
	return analysis, err
}

// ChangeDOB resets a student's date of birth with a one-time code. No
// credential is required; the code is the proof.
func (c *Client) ChangeDOB(ctx context.Context, roll int, newDOB, code string) error {
	payload := struct {
		Roll   int    `json:"roll"`
		NewDOB string `json:"new_dob"`
		Code   string `json:"code"`
	}{roll, newDOB, code}

	return c.postJSON(ctx, "/student/change_dob", payload, nil)
}

// StudentProfile fetches the logged-in student's profile.
func (c *Client) StudentProfile(ctx context.Context) (domain.StudentProfile, error) {
	var profile domain.StudentProfile
	err := c.getJSON(ctx, "/student/profile", &profile)
	return profile, err
}

// UpdateStudentProfile updates the student's profile fields.
func (c *Client) UpdateStudentProfile(ctx context.Context, name, newDOB, code string) error {
	payload := struct {
		Name   string `json:"name"`
		NewDOB string `json:"new_dob"`
		Code   string `json:"code"`
	}{name, newDOB, code}

	return c.postJSON(ctx, "/student/profile", payload, nil)
}

// StudentResult fetches the student's own record for an assignment. No
// single-record endpoint exists, so this fetches the full result list
// and filters by roll client-side.
func (c *Client) StudentResult(ctx context.Context, assignmentID int, roll string) (domain.SubmissionResult, error) {
	results, err := c.Results(ctx, assignmentID)
	if err != nil {
		return domain.SubmissionResult{}, err
	}

	wanted, err := strconv.Atoi(roll)
	if err != nil {
		return domain.SubmissionResult{}, apperrors.NewResultNotFound(roll)
	}
	for _, result := range results {
		if result.Roll == wanted {
			return result, nil
		}
	}
	return domain.SubmissionResult{}, apperrors.NewResultNotFound(roll)
}
