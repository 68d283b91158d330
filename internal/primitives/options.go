// Package primitives provides the shared field validators that the section
// schemas are built from.
package primitives

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-schema/internal/types"
)

// OptionRule constrains a field to a fixed, closed option set.
type OptionRule struct {
	Name    string
	Options []string

	members map[string]struct{}
}

// Option returns a rule accepting exactly the given option values.
func Option(name string, options []string) OptionRule {
	members := make(map[string]struct{}, len(options))
	for _, o := range options {
		members[o] = struct{}{}
	}
	return OptionRule{Name: name, Options: options, members: members}
}

// Check validates value at the given field path. Returns nil when the value
// is a member of the option set.
func (r OptionRule) Check(path, value string) *types.Violation {
	if _, ok := r.members[value]; ok {
		return nil
	}
	constraint := fmt.Sprintf("one of: %s", strings.Join(r.Options, ", "))
	if len(r.Options) > 12 {
		constraint = fmt.Sprintf("one of %d %s options", len(r.Options), r.Name)
	}
	return &types.Violation{
		Path:       path,
		Kind:       types.KindInvalidChoice,
		Constraint: constraint,
		Message:    fmt.Sprintf("%q is not a valid %s", value, r.Name),
	}
}

// CheckOptional is Check for optional fields: an empty string is absent and
// therefore valid.
func (r OptionRule) CheckOptional(path, value string) *types.Violation {
	if value == "" {
		return nil
	}
	return r.Check(path, value)
}
