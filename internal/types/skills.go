// Package types provides type definitions for the structured resume documents
// handled throughout the resume-schema system.
package types

// SkillItem is one entry in the skills section.
type SkillItem struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`

	Computed *SkillItemComputed `json:"computed,omitempty"`
}

// SkillItemComputed holds presentation-ready values derived from a skill.
type SkillItemComputed struct {
	LevelLabel   string `json:"levelLabel,omitempty"`
	KeywordsText string `json:"keywordsText,omitempty"`
}

// LanguageItem is one entry in the languages section.
type LanguageItem struct {
	ID       string `json:"id,omitempty"`
	Language string `json:"language"`
	Fluency  string `json:"fluency"`

	Computed *LanguageItemComputed `json:"computed,omitempty"`
}

// LanguageItemComputed holds presentation-ready values derived from a
// language item.
type LanguageItemComputed struct {
	FluencyLabel string `json:"fluencyLabel,omitempty"`
}

// InterestItem is one entry in the interests section.
type InterestItem struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`

	Computed *InterestItemComputed `json:"computed,omitempty"`
}

// InterestItemComputed holds presentation-ready values derived from an
// interest item.
type InterestItemComputed struct {
	KeywordsText string `json:"keywordsText,omitempty"`
}
