package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(ErrCodeStorageUnavailable, "document store not connected")
	wrapped := Wrap(ErrCodeSubmissionFailed, "failed to save inquiry", sentinel)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.True(t, IsSubmissionFailed(wrapped))
	assert.True(t, IsStorageUnavailable(wrapped))
	assert.False(t, IsStorageWriteFailed(wrapped))
}

func TestAppErrorUnwrapReachesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(ErrCodeStorageWriteFailed, "insert failed", fmt.Errorf("mongo: %w", cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "STORAGE_WRITE_FAILED: insert failed (mongo: connection reset)", err.Error())
}

func TestCodeOf(t *testing.T) {
	code, ok := CodeOf(fmt.Errorf("outer: %w", New(ErrCodeValidation, "bad")))
	assert.True(t, ok)
	assert.Equal(t, ErrCodeValidation, code)

	_, ok = CodeOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde...", Truncate("abcdefghij", 5))
	assert.Equal(t, "héllo...", Truncate("héllo wörld", 5))
}
