// Package types provides type definitions for the structured resume documents
// handled throughout the resume-schema system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ValidateResumeRequest represents the request body for the validate endpoint.
type ValidateResumeRequest struct {
	Resume *Resume `json:"resume" validate:"required"`
}

// TransformResumeRequest represents the request body for the transform
// endpoint. Locale, when set, overrides layout.localeLanguage.
type TransformResumeRequest struct {
	Resume *Resume `json:"resume" validate:"required"`
	Locale string  `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
}

// ValidationReport is the response body for the validate endpoint.
type ValidationReport struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// Validate validates the ValidateResumeRequest envelope using the validator.
func (r *ValidateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TransformResumeRequest envelope using the validator.
func (r *TransformResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
