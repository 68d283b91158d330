package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-schema/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{Port: 8080, Locale: "en"})
	require.NoError(t, err)
	return s
}

const validDoc = `{
	"content": {
		"basics": {"name": "Jane Doe", "email": "jane@example.com"},
		"location": {"city": "Berlin", "country": "DE"},
		"education": [{"institution": "Example University", "startDate": "2015-09"}]
	}
}`

const invalidDoc = `{
	"content": {
		"basics": {"name": "Jane Doe", "email": "jane@example.com"},
		"location": {"address": "123"},
		"education": [{"institution": "Example University", "startDate": "2015-09"}]
	}
}`

func TestNew_InvalidPort(t *testing.T) {
	_, err := New(Config{Port: 0})
	assert.Error(t, err)

	_, err = New(Config{Port: 70000})
	assert.Error(t, err)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleValidate_ValidDocument(t *testing.T) {
	s := newTestServer(t)
	body := `{"resume": ` + validDoc + `}`
	req := httptest.NewRequest(http.MethodPost, "/v1/resume/validate", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleValidate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var report types.ValidationReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.Valid)
	assert.Empty(t, report.Violations)
}

func TestHandleValidate_InvalidDocument(t *testing.T) {
	s := newTestServer(t)
	body := `{"resume": ` + invalidDoc + `}`
	req := httptest.NewRequest(http.MethodPost, "/v1/resume/validate", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleValidate(w, req)

	// Validation failure is still a 200; the report carries the violations.
	assert.Equal(t, http.StatusOK, w.Code)

	var report types.ValidationReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.False(t, report.Valid)
	require.Len(t, report.Violations, 2)

	paths := []string{report.Violations[0].Path, report.Violations[1].Path}
	assert.Contains(t, paths, "location.city")
	assert.Contains(t, paths, "location.address")
}

func TestHandleValidate_MalformedBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/resume/validate", strings.NewReader("{broken"))
	w := httptest.NewRecorder()

	s.handleValidate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleValidate_MissingResume(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/resume/validate", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	s.handleValidate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleTransform_ValidDocument(t *testing.T) {
	s := newTestServer(t)
	body := `{"resume": ` + validDoc + `, "locale": "de"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/resume/transform", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleTransform(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp TransformResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "de", resp.Locale)
	require.NotNil(t, resp.Resume.Content.Location.Computed)
	assert.Equal(t, "Germany", resp.Resume.Content.Location.Computed.CountryName)
	require.Len(t, resp.Resume.Content.Education, 1)
	require.NotNil(t, resp.Resume.Content.Education[0].Computed)
	assert.Contains(t, resp.Resume.Content.Education[0].Computed.DateRange, "September 2015")
}

func TestHandleTransform_InvalidDocument(t *testing.T) {
	s := newTestServer(t)
	body := `{"resume": ` + invalidDoc + `}`
	req := httptest.NewRequest(http.MethodPost, "/v1/resume/transform", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleTransform(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var report types.ValidationReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.False(t, report.Valid)
	assert.NotEmpty(t, report.Violations)
}

func TestHandleTransform_BadLocaleTag(t *testing.T) {
	s := newTestServer(t)
	body := `{"resume": ` + validDoc + `, "locale": "not a tag"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/resume/transform", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleTransform(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleTransform_DefaultLocale(t *testing.T) {
	s := newTestServer(t)
	body := `{"resume": ` + validDoc + `}`
	req := httptest.NewRequest(http.MethodPost, "/v1/resume/transform", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleTransform(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp TransformResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp.Locale)
}

func TestHandleSchemaCheck_NotConfigured(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/resume/schema-check", strings.NewReader(validDoc))
	w := httptest.NewRecorder()

	s.handleSchemaCheck(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestWithCORS(t *testing.T) {
	s := newTestServer(t)
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/resume/validate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
