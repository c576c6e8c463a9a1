package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the service.
type ErrorCode string

// Pipeline error codes. These form the error taxonomy of a question
// answering turn: every failure a caller can observe maps to one of them.
const (
	// ErrRetrievalUnavailable means the vector index is unreachable or the
	// collection does not exist.
	ErrRetrievalUnavailable ErrorCode = "RETRIEVAL_UNAVAILABLE"

	// ErrModelCallFailed means an upstream generation or classification
	// call errored or timed out.
	ErrModelCallFailed ErrorCode = "MODEL_CALL_FAILED"

	// ErrMalformedModelOutput means the model returned output outside its
	// contract (grader verdict not yes/no, empty rewrite or answer).
	// It is reported upward as MODEL_CALL_FAILED after aborting the attempt.
	ErrMalformedModelOutput ErrorCode = "MALFORMED_MODEL_OUTPUT"

	// ErrLoopBudgetExceeded means the rewrite cap was reached without a
	// relevant grade. Recovered locally with a best-effort answer; only
	// surfaces when no context exists to answer from.
	ErrLoopBudgetExceeded ErrorCode = "LOOP_BUDGET_EXCEEDED"
)

// Transport error codes used by the API layer.
const (
	ErrInvalidRequest     ErrorCode = "INVALID_REQUEST"
	ErrUpstreamTimeout    ErrorCode = "UPSTREAM_TIMEOUT"
	ErrInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// Error represents a structured error with code, message, and metadata.
type Error struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"http_status,omitempty"`
	Retryable  bool      `json:"retryable"`
	Cause      error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithHTTPStatus sets the HTTP status code.
func (e *Error) WithHTTPStatus(status int) *Error {
	e.HTTPStatus = status
	return e
}

// WithRetryable marks the error as retryable.
func (e *Error) WithRetryable(retryable bool) *Error {
	e.Retryable = retryable
	return e
}

// GetErrorCode extracts the error code from an error, unwrapping as needed.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}
