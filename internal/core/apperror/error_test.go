package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories_StatusAndCode(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", NewValidation("bad"), CodeValidation, http.StatusBadRequest},
		{"not found", NewNotFound("sale", int64(7)), CodeNotFound, http.StatusNotFound},
		{"duplicate", NewDuplicate("category", "display_name", "Tools"), CodeDuplicate, http.StatusConflict},
		{"reference", NewInvalidReference("article", "category", int64(3)), CodeInvalidReference, http.StatusUnprocessableEntity},
		{"protected", NewProtectedReference("user", int64(1)), CodeProtectedReference, http.StatusConflict},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("nope"), CodeForbidden, http.StatusForbidden},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.status, GetHTTPStatus(tt.err))
		})
	}
}

func TestAsAppError_ThroughWrapping(t *testing.T) {
	inner := NewDuplicate("article", "code", "ABC123")
	wrapped := fmt.Errorf("create article: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, appErr)
	assert.True(t, HasCode(wrapped, CodeDuplicate))
	assert.False(t, IsNotFound(wrapped))
}

func TestWithCause_Unwrap(t *testing.T) {
	cause := errors.New("pg down")
	err := NewInternal(nil).WithCause(cause).WithDetail("entity", "sale")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "sale", err.Details["entity"])
	assert.Contains(t, err.Error(), "pg down")
}

func TestGetHTTPStatus_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}
