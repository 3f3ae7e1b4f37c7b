package errorutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a backend failure surfaced verbatim to the caller. Detail
// carries the backend's error detail field when present.
type APIError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *APIError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("backend returned %d: %s: %v", e.StatusCode, detail, e.Err)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, detail)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError constructs an APIError from a response status and body.
// The backend reports failures as {"detail": "..."}; anything else falls
// back to the generic status text.
func NewAPIError(status int, body []byte) *APIError {
	var payload struct {
		Detail string `json:"detail"`
	}
	detail := ""
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil {
			detail = payload.Detail
		}
	}
	return &APIError{StatusCode: status, Detail: detail}
}

// ClientError is a logical error raised by this layer itself, never by
// the backend.
type ClientError struct {
	Code    string
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewResultNotFound reports that a roll number has no record in an
// assignment's result list.
func NewResultNotFound(roll string) error {
	return &ClientError{Code: "RESULT_NOT_FOUND", Message: fmt.Sprintf("result not found for roll %s", roll)}
}

// NewNotAuthenticated reports a guarded action attempted without a session.
func NewNotAuthenticated(loginTarget string) error {
	return &ClientError{Code: "NOT_AUTHENTICATED", Message: fmt.Sprintf("not logged in; authenticate via %s", loginTarget)}
}

// NewDecodeError reports a malformed credential payload.
func NewDecodeError(err error) error {
	return &ClientError{Code: "DECODE_FAILED", Message: "unable to decode token payload", Err: err}
}

// IsResultNotFound reports whether err is the composed wrapper's miss case.
func IsResultNotFound(err error) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr) && clientErr.Code == "RESULT_NOT_FOUND"
}

// AsAPIError unwraps err to an APIError when the backend produced it.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
