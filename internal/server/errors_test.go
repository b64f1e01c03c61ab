package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/mbti-compat/internal/compatibility"
	"github.com/jonathan/mbti-compat/internal/mbti"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "mbtiOne", Message: "required"}
	assert.Equal(t, "validation error: mbtiOne - required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "body", Message: "bad"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "MissingInputError",
			err:      &compatibility.MissingInputError{Fields: []string{"mbtiTwo"}},
			expected: http.StatusBadRequest,
		},
		{
			name:     "UnknownTypeError",
			err:      &mbti.UnknownTypeError{Code: "ABCD"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped UnknownTypeError",
			err:      fmt.Errorf("score: %w", &mbti.UnknownTypeError{Code: "ABCD"}),
			expected: http.StatusBadRequest,
		},
		{
			name:     "UpstreamError",
			err:      &compatibility.UpstreamError{Cause: errors.New("timeout")},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
