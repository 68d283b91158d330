// Package types provides type definitions for the structured resume documents
// handled throughout the resume-schema system.
package types

// Basics is the single mandatory identity section of a resume.
type Basics struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Label   string `json:"label,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	URL     string `json:"url,omitempty"`
	Summary string `json:"summary,omitempty"`

	Computed *BasicsComputed `json:"computed,omitempty"`
}

// BasicsComputed holds presentation-ready values derived from Basics.
type BasicsComputed struct {
	ContactLine string `json:"contactLine,omitempty"`
}

// Location is the optional single-item address section. City is the only
// required field when the section is present.
type Location struct {
	City       string `json:"city"`
	Address    string `json:"address,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Region     string `json:"region,omitempty"`

	Computed *LocationComputed `json:"computed,omitempty"`
}

// LocationComputed holds presentation-ready values derived from Location.
type LocationComputed struct {
	CountryName string `json:"countryName,omitempty"`
	FullAddress string `json:"fullAddress,omitempty"`
}

// ProfileItem is one social or professional network profile.
type ProfileItem struct {
	ID       string `json:"id,omitempty"`
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url,omitempty"`

	Computed *ProfileItemComputed `json:"computed,omitempty"`
}

// ProfileItemComputed holds presentation-ready values derived from a profile.
type ProfileItemComputed struct {
	NetworkLabel string `json:"networkLabel,omitempty"`
}
