package errors

import (
	"io"
	"net/http"
	"testing"

	"agrox/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrListingNotFound.WithDetails("listing 42")

	assert.True(t, errors.Is(err, ErrListingNotFound))
	assert.False(t, errors.Is(err, ErrRequestNotFound))
	assert.Equal(t, "listing 42", err.Details())
	assert.Nil(t, ErrListingNotFound.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrForbidden.WrapMessage("not the owner")

	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Contains(t, err.Error(), "not the owner")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestValidationMessages(t *testing.T) {
	err := errors.Wrap(NewValidationError([]string{"Product title is required", "Unit is required"}), "submit listing")

	messages, ok := ValidationMessages(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Product title is required", "Unit is required"}, messages)

	_, ok = ValidationMessages(ErrForbidden)
	assert.False(t, ok)
}

func TestStorageExecuteError(t *testing.T) {
	err := NewStorageExecuteError(io.ErrUnexpectedEOF, "get", "listings")

	assert.True(t, errors.Is(err, ErrStorageUnavailable))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "STORAGE_UNAVAILABLE", err.ErrorCode())
	assert.Equal(t, "get listings", err.Details())
	assert.Contains(t, err.Error(), `storage get "listings" failed`)
}
