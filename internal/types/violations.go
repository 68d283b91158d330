// Package types provides type definitions for the structured resume documents
// handled throughout the resume-schema system.
package types

import (
	"fmt"
	"strings"
)

// ViolationKind classifies a single validation failure.
type ViolationKind string

// Violation kinds reported by section validation.
const (
	KindLengthViolation      ViolationKind = "length_violation"
	KindInvalidChoice        ViolationKind = "invalid_choice"
	KindMissingRequiredField ViolationKind = "missing_required_field"
	KindInvalidFormat        ViolationKind = "invalid_format"
)

// Violation represents a single field-scoped validation failure.
type Violation struct {
	Path       string        `json:"path"`
	Kind       ViolationKind `json:"kind"`
	Constraint string        `json:"constraint"`
	Message    string        `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Path, v.Message, v.Kind)
}

// Violations represents the aggregate outcome of validating a document.
// Validation never short-circuits: every field violation is collected.
type Violations struct {
	Violations []Violation `json:"violations"`
}

// OK reports whether the document passed validation.
func (vs *Violations) OK() bool {
	return vs == nil || len(vs.Violations) == 0
}

// Error renders the aggregate as a multi-line message, one violation per
// line. Violations satisfies the error interface so callers can return it
// directly; an empty aggregate should never be returned as an error.
func (vs *Violations) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, v := range vs.Violations {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, v.String()))
	}
	return sb.String()
}

// Add appends a violation, ignoring nils so rule results can be appended
// unconditionally.
func (vs *Violations) Add(v *Violation) {
	if v != nil {
		vs.Violations = append(vs.Violations, *v)
	}
}

// Merge appends all violations from another collection.
func (vs *Violations) Merge(other []Violation) {
	vs.Violations = append(vs.Violations, other...)
}
