package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrValidation}

	for i, s1 := range sentinels {
		for j, s2 := range sentinels {
			if i == j {
				assert.ErrorIs(t, s1, s2)
			} else {
				assert.NotErrorIs(t, s1, s2)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with id",
			entity:      "unit",
			id:          "widgets",
			expectedMsg: `unit with id "widgets" not found`,
		},
		{
			name:        "without id",
			entity:      "context",
			expectedMsg: "context not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestNotFoundError_Unwrap(t *testing.T) {
	err := NewNotFoundError("unit", "widgets")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, ErrNotFound, notFound.Unwrap())
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "value",
			message:     "no magnitude supplied",
			expectedMsg: "validation failed for value: no magnitude supplied",
		},
		{
			name:        "without field",
			field:       "",
			message:     "general validation error",
			expectedMsg: "validation failed: general validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.Equal(t, tt.message, validation.Message)
		})
	}
}

func TestValidationError_WithValue(t *testing.T) {
	err := NewValidationErrorWithValue("value", "not a valid resistance unit", "10V")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "10V", validation.Value)
}

func TestValidationError_Unwrap(t *testing.T) {
	err := NewValidationError("field", "message")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, ErrValidation, validation.Unwrap())
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		{"IsNotFound with NotFoundError", NewNotFoundError("unit", "widgets"), IsNotFound, true},
		{"IsNotFound with sentinel", ErrNotFound, IsNotFound, true},
		{"IsNotFound with wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound with other error", ErrValidation, IsNotFound, false},
		{"IsNotFound with nil", nil, IsNotFound, false},

		{"IsValidation with ValidationError", NewValidationError("value", "invalid"), IsValidation, true},
		{"IsValidation with sentinel", ErrValidation, IsValidation, true},
		{"IsValidation with wrapped", fmt.Errorf("wrapped: %w", ErrValidation), IsValidation, true},
		{"IsValidation with other error", ErrNotFound, IsValidation, false},
		{"IsValidation with nil", nil, IsValidation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	t.Run("deeply wrapped NotFoundError", func(t *testing.T) {
		original := NewNotFoundError("unit", "widgets")
		wrapped1 := fmt.Errorf("layer1: %w", original)
		wrapped2 := fmt.Errorf("layer2: %w", wrapped1)
		wrapped3 := fmt.Errorf("layer3: %w", wrapped2)

		assert.True(t, IsNotFound(wrapped3))

		var notFound *NotFoundError
		require.ErrorAs(t, wrapped3, &notFound)
		assert.Equal(t, "widgets", notFound.ID)
		assert.Equal(t, "unit", notFound.Entity)
	})

	t.Run("deeply wrapped ValidationError", func(t *testing.T) {
		original := NewValidationError("value", "invalid")
		wrapped := fmt.Errorf("validation: %w", original)

		assert.True(t, IsValidation(wrapped))

		var validation *ValidationError
		require.ErrorAs(t, wrapped, &validation)
		assert.Equal(t, "value", validation.Field)
	})
}
