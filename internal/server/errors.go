package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	var genErr *llm.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusInternalServerError
	}

	var renderErr *rendering.RenderError
	if errors.As(err, &renderErr) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
