package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/mbti-compat/internal/compatibility"
	"github.com/jonathan/mbti-compat/internal/mbti"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		missingErr    *compatibility.MissingInputError
		unknownErr    *mbti.UnknownTypeError
		upstreamErr   *compatibility.UpstreamError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validationErr), errors.As(err, &missingErr), errors.As(err, &unknownErr):
		return http.StatusBadRequest
	case errors.As(err, &upstreamErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
