// Package sections implements the per-section validation rule-sets for
// resume content. Each section validator is pure: it inspects one candidate
// section value and returns every field-scoped violation found, without
// short-circuiting.
package sections

import (
	"fmt"

	"github.com/jonathan/resume-schema/internal/primitives"
	"github.com/jonathan/resume-schema/internal/types"
)

// checkRequired enforces presence and, when present, the sized-string rule.
// A missing value reports only the missing-required-field violation.
func checkRequired(vs *types.Violations, rule primitives.StringRule, path, value string) {
	if v := primitives.RequiredString(path, rule.Name, value); v != nil {
		vs.Add(v)
		return
	}
	vs.Add(rule.Check(path, value))
}

// itemPath builds the path for one entry of a section array,
// e.g. "work[2]".
func itemPath(section string, index int) string {
	return fmt.Sprintf("%s[%d]", section, index)
}
