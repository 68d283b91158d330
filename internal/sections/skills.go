// Package sections implements the per-section validation rule-sets for
// resume content.
package sections

import (
	"github.com/jonathan/resume-schema/internal/primitives"
	"github.com/jonathan/resume-schema/internal/types"
)

var skillNameRule = primitives.SizedString("name", 2, 64)

// ValidateSkills validates the optional skills section.
func ValidateSkills(items []types.SkillItem) []types.Violation {
	var vs types.Violations
	for i, s := range items {
		base := itemPath("skills", i)
		vs.Add(primitives.ItemID(base+".id", s.ID))
		checkRequired(&vs, skillNameRule, base+".name", s.Name)
		vs.Add(primitives.LevelOption.CheckOptional(base+".level", s.Level))
		for j, k := range s.Keywords {
			vs.Add(keywordRule.Check(itemPath(base+".keywords", j), k))
		}
	}
	return vs.Violations
}

// ValidateLanguages validates the optional languages section. Both fields
// are required and enum-constrained.
func ValidateLanguages(items []types.LanguageItem) []types.Violation {
	var vs types.Violations
	for i, l := range items {
		base := itemPath("languages", i)
		vs.Add(primitives.ItemID(base+".id", l.ID))
		if v := primitives.RequiredString(base+".language", "language", l.Language); v != nil {
			vs.Add(v)
		} else {
			vs.Add(primitives.LanguageOption.Check(base+".language", l.Language))
		}
		if v := primitives.RequiredString(base+".fluency", "fluency", l.Fluency); v != nil {
			vs.Add(v)
		} else {
			vs.Add(primitives.FluencyOption.Check(base+".fluency", l.Fluency))
		}
	}
	return vs.Violations
}

// ValidateInterests validates the optional interests section.
func ValidateInterests(items []types.InterestItem) []types.Violation {
	var vs types.Violations
	for i, it := range items {
		base := itemPath("interests", i)
		vs.Add(primitives.ItemID(base+".id", it.ID))
		checkRequired(&vs, skillNameRule, base+".name", it.Name)
		for j, k := range it.Keywords {
			vs.Add(keywordRule.Check(itemPath(base+".keywords", j), k))
		}
	}
	return vs.Violations
}
