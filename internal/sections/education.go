// Package sections implements the per-section validation rule-sets for
// resume content.
package sections

import (
	"github.com/jonathan/resume-schema/internal/primitives"
	"github.com/jonathan/resume-schema/internal/types"
)

var (
	institutionRule = primitives.SizedString("institution", 2, 128)
	areaRule        = primitives.SizedString("area", 2, 128)
	scoreRule       = primitives.SizedString("score", 1, 32)
	courseRule      = primitives.SizedString("course", 2, 128)
)

// ValidateEducation validates the mandatory education section. The section
// must contain at least one item; absence is reported by ValidateResume.
func ValidateEducation(items []types.EducationItem) []types.Violation {
	var vs types.Violations
	for i, e := range items {
		base := itemPath("education", i)
		vs.Add(primitives.ItemID(base+".id", e.ID))
		checkRequired(&vs, institutionRule, base+".institution", e.Institution)
		vs.Add(areaRule.CheckOptional(base+".area", e.Area))
		vs.Add(primitives.DegreeOption.CheckOptional(base+".degree", e.Degree))
		vs.Add(scoreRule.CheckOptional(base+".score", e.Score))
		vs.Add(primitives.RequiredString(base+".startDate", "start date", e.StartDate))
		vs.Add(primitives.Date(base+".startDate", "start date", e.StartDate))
		vs.Add(primitives.Date(base+".endDate", "end date", e.EndDate))
		for j, course := range e.Courses {
			vs.Add(courseRule.Check(itemPath(base+".courses", j), course))
		}
		vs.Add(urlRule.CheckOptional(base+".url", e.URL))
		vs.Add(primitives.URL(base+".url", "url", e.URL))
		vs.Add(summaryRule.CheckOptional(base+".summary", e.Summary))
	}
	return vs.Violations
}
