package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := NewError(ErrModelCallFailed, "completion failed")
	assert.Equal(t, "[MODEL_CALL_FAILED] completion failed", err.Error())

	withCause := NewError(ErrRetrievalUnavailable, "qdrant unreachable").
		WithCause(errors.New("connection refused"))
	assert.Contains(t, withCause.Error(), "RETRIEVAL_UNAVAILABLE")
	assert.Contains(t, withCause.Error(), "connection refused")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewError(ErrInternalError, "wrapper").WithCause(cause)

	require.ErrorIs(t, err, cause)
}

func TestGetErrorCode(t *testing.T) {
	err := NewError(ErrMalformedModelOutput, "grader returned maybe")
	assert.Equal(t, ErrMalformedModelOutput, GetErrorCode(err))

	// Wrapped errors still expose their code.
	wrapped := fmt.Errorf("turn aborted: %w", err)
	assert.Equal(t, ErrMalformedModelOutput, GetErrorCode(wrapped))

	assert.Equal(t, ErrorCode(""), GetErrorCode(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), GetErrorCode(nil))
}

func TestIsCode(t *testing.T) {
	err := NewError(ErrLoopBudgetExceeded, "rewrite cap reached")
	assert.True(t, IsCode(err, ErrLoopBudgetExceeded))
	assert.False(t, IsCode(err, ErrModelCallFailed))
}

func TestError_Builders(t *testing.T) {
	err := NewError(ErrInvalidRequest, "question is required").
		WithHTTPStatus(400).
		WithRetryable(false)

	assert.Equal(t, 400, err.HTTPStatus)
	assert.False(t, err.Retryable)
}
