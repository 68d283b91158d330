// Package types provides type definitions for the structured resume documents
// handled throughout the resume-schema system.
package types

// EducationItem is one entry in the mandatory education section.
type EducationItem struct {
	ID          string   `json:"id,omitempty"`
	Institution string   `json:"institution"`
	Area        string   `json:"area,omitempty"`
	Degree      string   `json:"degree,omitempty"`
	Score       string   `json:"score,omitempty"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Courses     []string `json:"courses,omitempty"`
	URL         string   `json:"url,omitempty"`
	Summary     string   `json:"summary,omitempty"`

	Computed *EducationItemComputed `json:"computed,omitempty"`
}

// EducationItemComputed holds presentation-ready values derived from an
// education item.
type EducationItemComputed struct {
	DateRange   string `json:"dateRange,omitempty"`
	DegreeLabel string `json:"degreeLabel,omitempty"`
	CoursesText string `json:"coursesText,omitempty"`
}
