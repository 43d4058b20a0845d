// Package types defines the shared request and response types for the
// resume builder API.
package types

import "github.com/go-playground/validator/v10"

// ResumeRequest is the JSON body accepted by /generate and /generate-pdf.
// All fields are free text; only Name and Email are required.
type ResumeRequest struct {
	Name       string `json:"name" validate:"required,min=1"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
	Skills     string `json:"skills,omitempty"`
}

// Validate validates the ResumeRequest using the validator.
func (r *ResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerateResponse is the success body for /generate.
type GenerateResponse struct {
	Resume  string `json:"resume"`
	Success bool   `json:"success"`
}

// TestResponse is the success body for /test.
type TestResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
