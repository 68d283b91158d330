// Package sections implements the per-section validation rule-sets for
// resume content.
package sections

import (
	"fmt"

	"github.com/jonathan/resume-schema/internal/primitives"
	"github.com/jonathan/resume-schema/internal/types"
)

var fontFamilyRule = primitives.SizedString("font family", 2, 64)

// Inclusive legal range for explicit page margins.
const (
	marginMinMM = 0.0
	marginMaxMM = 100.0
)

// ValidateLayout validates the optional layout configuration. A nil layout
// is valid.
func ValidateLayout(l *types.ResumeLayout) []types.Violation {
	if l == nil {
		return nil
	}
	var vs types.Violations
	vs.Add(primitives.TemplateOption.CheckOptional("layout.template", l.Template))
	vs.Add(primitives.LocaleLanguageOption.CheckOptional("layout.localeLanguage", l.LocaleLanguage))
	if l.Margins != nil {
		vs.Add(checkMargin("layout.margins.top", l.Margins.Top))
		vs.Add(checkMargin("layout.margins.bottom", l.Margins.Bottom))
		vs.Add(checkMargin("layout.margins.left", l.Margins.Left))
		vs.Add(checkMargin("layout.margins.right", l.Margins.Right))
	}
	if l.Typography != nil {
		vs.Add(primitives.FontSizeOption.CheckOptional("layout.typography.fontSize", l.Typography.FontSize))
		vs.Add(fontFamilyRule.CheckOptional("layout.typography.fontFamily", l.Typography.FontFamily))
	}
	if l.LaTeX != nil {
		vs.Add(primitives.FontspecNumbersOption.CheckOptional("layout.latex.fontspecNumbers", l.LaTeX.FontspecNumbers))
	}
	vs.Merge(checkSectionOrder(l.SectionOrder))
	return vs.Violations
}

func checkMargin(path string, value *float64) *types.Violation {
	if value == nil {
		return nil
	}
	if *value < marginMinMM || *value > marginMaxMM {
		return &types.Violation{
			Path:       path,
			Kind:       types.KindInvalidFormat,
			Constraint: fmt.Sprintf("%.0f-%.0f mm", marginMinMM, marginMaxMM),
			Message:    fmt.Sprintf("margin %.1fmm is outside the %.0f-%.0fmm range", *value, marginMinMM, marginMaxMM),
		}
	}
	return nil
}

// checkSectionOrder validates each entry against the section-id option set
// and rejects duplicate entries.
func checkSectionOrder(order []string) []types.Violation {
	var vs types.Violations
	seen := make(map[string]bool, len(order))
	for i, id := range order {
		path := itemPath("layout.sectionOrder", i)
		vs.Add(primitives.SectionIDOption.Check(path, id))
		if seen[id] {
			vs.Add(&types.Violation{
				Path:       path,
				Kind:       types.KindInvalidChoice,
				Constraint: "unique section ids",
				Message:    fmt.Sprintf("section %q listed more than once", id),
			})
		}
		seen[id] = true
	}
	return vs.Violations
}
