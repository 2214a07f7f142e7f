package api

import "fmt"

// AuthError indicates a failed credential exchange, a missing session, or a
// token the server no longer accepts. The remedy is always to log in again.
type AuthError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AuthError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("authentication failed: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("authentication failed: %s", msg)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// UploadError indicates a single document upload that did not complete: a
// rejected file, a network failure mid-transfer, or a non-2xx response.
type UploadError struct {
	Filename   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *UploadError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("upload failed for %s: %s: %v", e.Filename, msg, e.Cause)
	}
	return fmt.Sprintf("upload failed for %s: %s", e.Filename, msg)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

// RequestError is the generic failure for read operations: a network error
// or a non-2xx response that carries no more specific meaning.
type RequestError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *RequestError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("request failed: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("request failed: %s", msg)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates the server has no record matching the query.
type NotFoundError struct {
	Filename string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: no portfolios match %q", e.Filename)
}
