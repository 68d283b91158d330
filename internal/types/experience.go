// Package types provides type definitions for the structured resume documents
// handled throughout the resume-schema system.
package types

// WorkItem is one entry in the work history section.
type WorkItem struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`

	Computed *WorkItemComputed `json:"computed,omitempty"`
}

// WorkItemComputed holds presentation-ready values derived from a work item.
type WorkItemComputed struct {
	DateRange string `json:"dateRange,omitempty"`
}

// VolunteerItem is one entry in the volunteer section.
type VolunteerItem struct {
	ID           string   `json:"id,omitempty"`
	Organization string   `json:"organization"`
	Position     string   `json:"position"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`

	Computed *VolunteerItemComputed `json:"computed,omitempty"`
}

// VolunteerItemComputed holds presentation-ready values derived from a
// volunteer item.
type VolunteerItemComputed struct {
	DateRange string `json:"dateRange,omitempty"`
}

// ProjectItem is one entry in the projects section.
type ProjectItem struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`

	Computed *ProjectItemComputed `json:"computed,omitempty"`
}

// ProjectItemComputed holds presentation-ready values derived from a project.
type ProjectItemComputed struct {
	DateRange    string `json:"dateRange,omitempty"`
	KeywordsText string `json:"keywordsText,omitempty"`
}
