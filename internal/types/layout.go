// Package types provides type definitions for the structured resume documents
// handled throughout the resume-schema system.
package types

// ResumeLayout is the optional presentation configuration for a resume.
// Defaults for absent fields are the responsibility of the consumer.
type ResumeLayout struct {
	Template        string        `json:"template,omitempty"`
	Margins         *PageMargins  `json:"margins,omitempty"`
	Typography      *Typography   `json:"typography,omitempty"`
	LaTeX           *LaTeXOptions `json:"latex,omitempty"`
	LocaleLanguage  string        `json:"localeLanguage,omitempty"`
	ShowPageNumbers bool          `json:"showPageNumbers,omitempty"`
	SectionOrder    []string      `json:"sectionOrder,omitempty"`
}

// PageMargins holds page margins in millimetres. Nil pointers mean
// "use the template default"; zero is a legal explicit value.
type PageMargins struct {
	Top    *float64 `json:"top,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty"`
	Right  *float64 `json:"right,omitempty"`
}

// Typography holds font configuration.
type Typography struct {
	FontSize   string `json:"fontSize,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
}

// LaTeXOptions holds options specific to LaTeX-based templates.
type LaTeXOptions struct {
	FontspecNumbers string `json:"fontspecNumbers,omitempty"`
}
