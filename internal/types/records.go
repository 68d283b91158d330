// Package types provides type definitions for the structured resume documents
// handled throughout the resume-schema system.
package types

// AwardItem is one entry in the awards section.
type AwardItem struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Date    string `json:"date,omitempty"`
	Awarder string `json:"awarder,omitempty"`
	Summary string `json:"summary,omitempty"`

	Computed *AwardItemComputed `json:"computed,omitempty"`
}

// AwardItemComputed holds presentation-ready values derived from an award.
type AwardItemComputed struct {
	DateLabel string `json:"dateLabel,omitempty"`
}

// CertificateItem is one entry in the certificates section.
type CertificateItem struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`

	Computed *CertificateItemComputed `json:"computed,omitempty"`
}

// CertificateItemComputed holds presentation-ready values derived from a
// certificate.
type CertificateItemComputed struct {
	DateLabel string `json:"dateLabel,omitempty"`
}

// PublicationItem is one entry in the publications section.
type PublicationItem struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary,omitempty"`

	Computed *PublicationItemComputed `json:"computed,omitempty"`
}

// PublicationItemComputed holds presentation-ready values derived from a
// publication.
type PublicationItemComputed struct {
	DateLabel string `json:"dateLabel,omitempty"`
}

// ReferenceItem is one entry in the references section.
type ReferenceItem struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Reference string `json:"reference"`

	Computed *ReferenceItemComputed `json:"computed,omitempty"`
}

// ReferenceItemComputed holds presentation-ready values derived from a
// reference.
type ReferenceItemComputed struct {
	Attribution string `json:"attribution,omitempty"`
}
