// Package sections implements the per-section validation rule-sets for
// resume content.
package sections

import (
	"github.com/jonathan/resume-schema/internal/primitives"
	"github.com/jonathan/resume-schema/internal/types"
)

var (
	organizationRule = primitives.SizedString("organization", 2, 128)
	companyRule      = primitives.SizedString("name", 2, 128)
	positionRule     = primitives.SizedString("position", 2, 128)
	workSummaryRule  = primitives.SizedString("summary", 4, 2048)
	highlightRule    = primitives.SizedString("highlight", 4, 256)
	projectNameRule  = primitives.SizedString("name", 2, 64)
	descriptionRule  = primitives.SizedString("description", 4, 1024)
	keywordRule      = primitives.SizedString("keyword", 1, 32)
)

// ValidateWork validates the optional work section.
func ValidateWork(items []types.WorkItem) []types.Violation {
	var vs types.Violations
	for i, w := range items {
		base := itemPath("work", i)
		vs.Add(primitives.ItemID(base+".id", w.ID))
		checkRequired(&vs, companyRule, base+".name", w.Name)
		checkRequired(&vs, positionRule, base+".position", w.Position)
		vs.Add(urlRule.CheckOptional(base+".url", w.URL))
		vs.Add(primitives.URL(base+".url", "url", w.URL))
		vs.Add(primitives.RequiredString(base+".startDate", "start date", w.StartDate))
		vs.Add(primitives.Date(base+".startDate", "start date", w.StartDate))
		vs.Add(primitives.Date(base+".endDate", "end date", w.EndDate))
		vs.Add(workSummaryRule.CheckOptional(base+".summary", w.Summary))
		for j, h := range w.Highlights {
			vs.Add(highlightRule.Check(itemPath(base+".highlights", j), h))
		}
	}
	return vs.Violations
}

// ValidateVolunteer validates the optional volunteer section.
func ValidateVolunteer(items []types.VolunteerItem) []types.Violation {
	var vs types.Violations
	for i, v := range items {
		base := itemPath("volunteer", i)
		vs.Add(primitives.ItemID(base+".id", v.ID))
		checkRequired(&vs, organizationRule, base+".organization", v.Organization)
		checkRequired(&vs, positionRule, base+".position", v.Position)
		vs.Add(urlRule.CheckOptional(base+".url", v.URL))
		vs.Add(primitives.URL(base+".url", "url", v.URL))
		vs.Add(primitives.RequiredString(base+".startDate", "start date", v.StartDate))
		vs.Add(primitives.Date(base+".startDate", "start date", v.StartDate))
		vs.Add(primitives.Date(base+".endDate", "end date", v.EndDate))
		vs.Add(summaryRule.CheckOptional(base+".summary", v.Summary))
		for j, h := range v.Highlights {
			vs.Add(highlightRule.Check(itemPath(base+".highlights", j), h))
		}
	}
	return vs.Violations
}

// ValidateProjects validates the optional projects section.
func ValidateProjects(items []types.ProjectItem) []types.Violation {
	var vs types.Violations
	for i, p := range items {
		base := itemPath("projects", i)
		vs.Add(primitives.ItemID(base+".id", p.ID))
		checkRequired(&vs, projectNameRule, base+".name", p.Name)
		checkRequired(&vs, descriptionRule, base+".description", p.Description)
		vs.Add(urlRule.CheckOptional(base+".url", p.URL))
		vs.Add(primitives.URL(base+".url", "url", p.URL))
		vs.Add(primitives.Date(base+".startDate", "start date", p.StartDate))
		vs.Add(primitives.Date(base+".endDate", "end date", p.EndDate))
		for j, k := range p.Keywords {
			vs.Add(keywordRule.Check(itemPath(base+".keywords", j), k))
		}
	}
	return vs.Violations
}
