package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "validation", err: apperrors.NewValidationError("bad code"), want: http.StatusBadRequest},
		{name: "invalid argument", err: apperrors.NewInvalidArgumentError("too many"), want: http.StatusBadRequest},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", apperrors.NewNotFoundError("Country not found")), want: http.StatusNotFound},
		{name: "duplicate", err: apperrors.NewConflictError("exists"), want: http.StatusConflict},
		{name: "external", err: apperrors.NewExternalError("rate provider", errors.New("boom")), want: http.StatusBadGateway},
		{name: "unknown", err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Country not found", apperrors.Message(fmt.Errorf("calc: %w", apperrors.NewNotFoundError("Country not found"))))
	assert.Equal(t, "internal server error", apperrors.Message(errors.New("connection refused")))
	assert.Equal(t, "validation error", apperrors.Message(apperrors.ErrValidation))
}

func TestExternalErrorKeepsCause(t *testing.T) {
	cause := errors.New("status 500")
	err := apperrors.NewExternalError("failed to fetch live rate", cause)

	assert.ErrorIs(t, err, apperrors.ErrExternalDependency)
	assert.ErrorIs(t, err, cause)
}
