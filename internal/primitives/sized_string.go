// Package primitives provides the shared field validators that the section
// schemas are built from: bounded-length strings, enumerated option sets,
// and format checks. All checks are pure and return nil on success.
package primitives

import (
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/resume-schema/internal/types"
)

// StringRule bounds the character (rune) count of a single string field.
type StringRule struct {
	Name string
	Min  int
	Max  int
}

// SizedString returns a rule accepting strings whose character count falls
// within [min, max], both ends inclusive.
func SizedString(name string, min, max int) StringRule {
	return StringRule{Name: name, Min: min, Max: max}
}

// Check validates value at the given field path. Returns nil when the value
// satisfies the rule.
func (r StringRule) Check(path, value string) *types.Violation {
	n := utf8.RuneCountInString(value)
	if n < r.Min || n > r.Max {
		return &types.Violation{
			Path:       path,
			Kind:       types.KindLengthViolation,
			Constraint: fmt.Sprintf("%d-%d characters", r.Min, r.Max),
			Message:    fmt.Sprintf("%s must be between %d and %d characters, got %d", r.Name, r.Min, r.Max, n),
		}
	}
	return nil
}

// CheckOptional is Check for optional fields: an empty string is absent and
// therefore valid.
func (r StringRule) CheckOptional(path, value string) *types.Violation {
	if value == "" {
		return nil
	}
	return r.Check(path, value)
}

// RequiredString reports a missing-required-field violation when value is
// empty. Callers pair it with a StringRule check on the non-empty case.
func RequiredString(path, name, value string) *types.Violation {
	if value != "" {
		return nil
	}
	return &types.Violation{
		Path:       path,
		Kind:       types.KindMissingRequiredField,
		Constraint: "required",
		Message:    fmt.Sprintf("%s is required", name),
	}
}
