// Package ingestion loads candidate resume documents from disk. Editors and
// importers hand the system JSON or YAML files; ingestion only decodes them,
// validation is the sections package's job.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-schema/internal/types"
)

// UnsupportedFormatError indicates a file extension ingestion cannot decode.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format: %s (want .json, .yaml or .yml)", e.Path)
}

// LoadResume reads and decodes a resume document from a JSON or YAML file.
// The format is chosen by file extension.
func LoadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}
}

// DecodeJSON decodes a JSON resume document. Unknown fields are ignored,
// matching the schema contract for extra fields.
func DecodeJSON(data []byte) (*types.Resume, error) {
	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &r, nil
}

// DecodeYAML decodes a YAML resume document. YAML input is converted through
// JSON so the document model's JSON tags stay the single naming source.
func DecodeYAML(data []byte) (*types.Resume, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse resume YAML: %w", err)
	}

	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML resume: %w", err)
	}
	return DecodeJSON(jsonData)
}

// normalizeYAML rewrites map[interface{}]interface{} trees into
// map[string]interface{} so they marshal as JSON objects.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return m
	case map[string]interface{}:
		for k, item := range val {
			val[k] = normalizeYAML(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = normalizeYAML(item)
		}
		return val
	default:
		return v
	}
}
