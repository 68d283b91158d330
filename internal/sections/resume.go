// Package sections implements the per-section validation rule-sets for
// resume content.
package sections

import (
	"github.com/jonathan/resume-schema/internal/types"
)

// ValidateResume validates a complete resume document and returns every
// field violation found. Validation is pure: the document is never mutated,
// and re-validating an already valid document succeeds identically.
// Computed sub-objects are outputs of the transform stage and are never
// constrained beyond their type.
func ValidateResume(r *types.Resume) *types.Violations {
	vs := &types.Violations{}
	if r == nil {
		vs.Add(&types.Violation{
			Path:       "content",
			Kind:       types.KindMissingRequiredField,
			Constraint: "required",
			Message:    "resume content is required",
		})
		return vs
	}

	vs.Merge(ValidateBasics(&r.Content.Basics))
	vs.Merge(ValidateLocation(r.Content.Location))
	vs.Merge(ValidateProfiles(r.Content.Profiles))

	if len(r.Content.Education) == 0 {
		vs.Add(&types.Violation{
			Path:       "education",
			Kind:       types.KindMissingRequiredField,
			Constraint: "at least one item",
			Message:    "education section is required",
		})
	} else {
		vs.Merge(ValidateEducation(r.Content.Education))
	}

	vs.Merge(ValidateWork(r.Content.Work))
	vs.Merge(ValidateProjects(r.Content.Projects))
	vs.Merge(ValidateSkills(r.Content.Skills))
	vs.Merge(ValidateLanguages(r.Content.Languages))
	vs.Merge(ValidateInterests(r.Content.Interests))
	vs.Merge(ValidateAwards(r.Content.Awards))
	vs.Merge(ValidateCertificates(r.Content.Certificates))
	vs.Merge(ValidatePublications(r.Content.Publications))
	vs.Merge(ValidateVolunteer(r.Content.Volunteer))
	vs.Merge(ValidateReferences(r.Content.References))
	vs.Merge(ValidateLayout(r.Layout))

	return vs
}
