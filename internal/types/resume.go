// Package types provides type definitions for the structured resume documents
// handled throughout the resume-schema system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the top-level document: validated content plus optional
// presentation configuration.
type Resume struct {
	Content ResumeContent `json:"content"`
	Layout  *ResumeLayout `json:"layout,omitempty"`
}

// ResumeContent holds the named sections of a resume. Basics and education
// are mandatory; every other section is optional. Section slices preserve
// insertion order, which is rendering-significant.
type ResumeContent struct {
	Basics       Basics            `json:"basics"`
	Location     *Location         `json:"location,omitempty"`
	Profiles     []ProfileItem     `json:"profiles,omitempty"`
	Education    []EducationItem   `json:"education"`
	Work         []WorkItem        `json:"work,omitempty"`
	Projects     []ProjectItem     `json:"projects,omitempty"`
	Skills       []SkillItem       `json:"skills,omitempty"`
	Languages    []LanguageItem    `json:"languages,omitempty"`
	Interests    []InterestItem    `json:"interests,omitempty"`
	Awards       []AwardItem       `json:"awards,omitempty"`
	Certificates []CertificateItem `json:"certificates,omitempty"`
	Publications []PublicationItem `json:"publications,omitempty"`
	Volunteer    []VolunteerItem   `json:"volunteer,omitempty"`
	References   []ReferenceItem   `json:"references,omitempty"`

	// Computed holds content-level derived values. It is populated by the
	// transform stage and is never required for validation.
	Computed *ContentComputed `json:"computed,omitempty"`
}

// ContentComputed holds document-wide derived values. Output only: the
// validator types it but never constrains it.
type ContentComputed struct {
	SectionNames []string `json:"sectionNames,omitempty"`
	URLs         []string `json:"urls,omitempty"`
}
