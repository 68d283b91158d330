package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/resume-schema/internal/schemas"
	"github.com/jonathan/resume-schema/internal/sections"
	"github.com/jonathan/resume-schema/internal/transform"
	"github.com/jonathan/resume-schema/internal/types"
)

// TransformResponse represents the response for /v1/resume/transform
type TransformResponse struct {
	Resume *types.Resume `json:"resume"`
	Locale string        `json:"locale"`
}

// SchemaCheckResponse represents the response for /v1/resume/schema-check
type SchemaCheckResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// handleValidate validates a resume document and reports every violation.
// Validation failure is an expected outcome, so the response is 200 either
// way; only malformed requests are errors.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeValidateRequest(w, r)
	if !ok {
		return
	}

	violations := sections.ValidateResume(req.Resume)
	s.jsonResponse(w, http.StatusOK, types.ValidationReport{
		Valid:      violations.OK(),
		Violations: violations.Violations,
	})
}

// handleTransform validates a document and, when valid, populates its
// computed fields. Invalid documents get 422 with the violation list.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req types.TransformResumeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	violations := sections.ValidateResume(req.Resume)
	if !violations.OK() {
		s.jsonResponse(w, http.StatusUnprocessableEntity, types.ValidationReport{
			Valid:      false,
			Violations: violations.Violations,
		})
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = s.locale
	}
	transform.Populate(req.Resume, locale)

	s.jsonResponse(w, http.StatusOK, TransformResponse{
		Resume: req.Resume,
		Locale: transform.ResolveLocale(localeOrLayout(req.Resume, locale)),
	})
}

// handleSchemaCheck validates the raw document against the configured JSON
// Schema file. Available only when the server was started with a schema path.
func (s *Server) handleSchemaCheck(w http.ResponseWriter, r *http.Request) {
	if s.schemaPath == "" {
		s.errorResponse(w, http.StatusNotImplemented, "no JSON Schema configured")
		return
	}

	var doc interface{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	err := schemas.ValidateDocument(s.schemaPath, doc)
	if err == nil {
		s.jsonResponse(w, http.StatusOK, SchemaCheckResponse{Valid: true})
		return
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		msgs := make([]string, 0, len(validationErr.Errors))
		for _, fe := range validationErr.Errors {
			msgs = append(msgs, fe.Field+": "+fe.Message)
		}
		s.jsonResponse(w, http.StatusOK, SchemaCheckResponse{Valid: false, Errors: msgs})
		return
	}

	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) decodeValidateRequest(w http.ResponseWriter, r *http.Request) (*types.ValidateResumeRequest, bool) {
	var req types.ValidateResumeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}

// localeOrLayout mirrors the transform's locale source order so the response
// reports the locale that was actually applied.
func localeOrLayout(r *types.Resume, locale string) string {
	if locale != "" {
		return locale
	}
	if r.Layout != nil {
		return r.Layout.LocaleLanguage
	}
	return ""
}
