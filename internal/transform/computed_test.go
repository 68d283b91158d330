package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-schema/internal/types"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		Content: types.ResumeContent{
			Basics: types.Basics{
				Name:  "Jane Doe",
				Email: "jane@example.com",
				Phone: "+49 30 1234567",
				URL:   "https://janedoe.dev",
			},
			Location: &types.Location{
				City:       "Berlin",
				Country:    "DE",
				PostalCode: "10119",
			},
			Education: []types.EducationItem{
				{
					Institution: "Example University",
					Degree:      "master",
					StartDate:   "2015-09",
					EndDate:     "2017-06",
					Courses:     []string{"Distributed Systems", "Compilers"},
				},
			},
			Work: []types.WorkItem{
				{Name: "Acme", Position: "Engineer", StartDate: "2020-01"},
			},
			Skills: []types.SkillItem{
				{Name: "Backend", Level: "expert", Keywords: []string{"Go", "Postgres"}},
			},
			Languages: []types.LanguageItem{
				{Language: "German", Fluency: "native"},
			},
		},
	}
}

func TestPopulate_DateRanges(t *testing.T) {
	r := sampleResume()
	Populate(r, "en")

	require.NotNil(t, r.Content.Education[0].Computed)
	assert.Equal(t, "September 2015 – June 2017", r.Content.Education[0].Computed.DateRange)

	// Open range ends in the locale's present label
	require.NotNil(t, r.Content.Work[0].Computed)
	assert.Equal(t, "January 2020 – Present", r.Content.Work[0].Computed.DateRange)
}

func TestPopulate_LocalizedDates(t *testing.T) {
	r := sampleResume()
	Populate(r, "de")

	assert.Equal(t, "September 2015 – Juni 2017", r.Content.Education[0].Computed.DateRange)
	assert.Equal(t, "Januar 2020 – Heute", r.Content.Work[0].Computed.DateRange)
}

func TestPopulate_LayoutLocaleFallback(t *testing.T) {
	r := sampleResume()
	r.Layout = &types.ResumeLayout{LocaleLanguage: "fr"}
	Populate(r, "")

	assert.Equal(t, "janvier 2020 – Aujourd'hui", r.Content.Work[0].Computed.DateRange)
}

func TestPopulate_OptionLabels(t *testing.T) {
	r := sampleResume()
	Populate(r, "en")

	assert.Equal(t, "Master's Degree", r.Content.Education[0].Computed.DegreeLabel)
	assert.Equal(t, "Expert", r.Content.Skills[0].Computed.LevelLabel)
	assert.Equal(t, "Native or bilingual proficiency", r.Content.Languages[0].Computed.FluencyLabel)
}

func TestPopulate_JoinedLists(t *testing.T) {
	r := sampleResume()
	Populate(r, "en")

	assert.Equal(t, "Distributed Systems, Compilers", r.Content.Education[0].Computed.CoursesText)
	assert.Equal(t, "Go, Postgres", r.Content.Skills[0].Computed.KeywordsText)
}

func TestPopulate_Location(t *testing.T) {
	r := sampleResume()
	Populate(r, "en")

	require.NotNil(t, r.Content.Location.Computed)
	assert.Equal(t, "Germany", r.Content.Location.Computed.CountryName)
	assert.Equal(t, "10119 Berlin, Germany", r.Content.Location.Computed.FullAddress)
}

func TestPopulate_ContactLine(t *testing.T) {
	r := sampleResume()
	Populate(r, "en")

	require.NotNil(t, r.Content.Basics.Computed)
	assert.Equal(t, "jane@example.com · +49 30 1234567 · https://janedoe.dev", r.Content.Basics.Computed.ContactLine)
}

func TestPopulate_SectionNames(t *testing.T) {
	r := sampleResume()
	Populate(r, "en")

	assert.Equal(t,
		[]string{"basics", "location", "education", "work", "skills", "languages"},
		r.Content.Computed.SectionNames)
}

func TestPopulate_SectionNamesHonorLayoutOrder(t *testing.T) {
	r := sampleResume()
	r.Layout = &types.ResumeLayout{
		SectionOrder: []string{"work", "skills", "education"},
	}
	Populate(r, "en")

	// Ordered sections first, remaining present sections in canonical order.
	assert.Equal(t,
		[]string{"work", "skills", "education", "basics", "location", "languages"},
		r.Content.Computed.SectionNames)
	// The layout itself is left untouched.
	assert.Equal(t, []string{"work", "skills", "education"}, r.Layout.SectionOrder)
}

func TestPopulate_URLs(t *testing.T) {
	r := sampleResume()
	r.Content.Work[0].URL = "https://acme.example"
	Populate(r, "en")

	assert.Equal(t, []string{"https://janedoe.dev", "https://acme.example"}, r.Content.Computed.URLs)
}

func TestPopulate_OverwritesComputedOnly(t *testing.T) {
	r := sampleResume()
	Populate(r, "en")
	first := r.Content.Work[0]

	// Re-running the transform is safe and deterministic.
	Populate(r, "en")
	assert.Equal(t, first, r.Content.Work[0])
	assert.Equal(t, "Acme", r.Content.Work[0].Name)
	assert.Equal(t, "2020-01", r.Content.Work[0].StartDate)
}

func TestPopulate_NilResume(t *testing.T) {
	assert.NotPanics(t, func() { Populate(nil, "en") })
}
