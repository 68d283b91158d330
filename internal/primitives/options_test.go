package primitives

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-schema/internal/types"
)

func TestOption_Membership(t *testing.T) {
	rule := Option("fluency", FluencyOptions)

	for _, member := range FluencyOptions {
		assert.Nil(t, rule.Check("languages[0].fluency", member))
	}

	v := rule.Check("languages[0].fluency", "conversational")
	require.NotNil(t, v)
	assert.Equal(t, types.KindInvalidChoice, v.Kind)
	assert.Equal(t, "languages[0].fluency", v.Path)
	assert.Contains(t, v.Constraint, "native")
}

func TestOption_LargeSetConstraintIsSummarized(t *testing.T) {
	v := CountryOption.Check("location.country", "XX")
	require.NotNil(t, v)
	assert.Equal(t, types.KindInvalidChoice, v.Kind)
	assert.Contains(t, v.Constraint, "country options")
}

func TestOption_CheckOptional(t *testing.T) {
	assert.Nil(t, CountryOption.CheckOptional("location.country", ""))
	assert.Nil(t, CountryOption.CheckOptional("location.country", "DE"))
	assert.NotNil(t, CountryOption.CheckOptional("location.country", "Germany"))
}

func TestCountryOptions_WellFormed(t *testing.T) {
	assert.True(t, sort.StringsAreSorted(CountryOptions))
	assert.Greater(t, len(CountryOptions), 190)

	for _, code := range []string{"DE", "US", "JP", "BR", "ZA"} {
		assert.Contains(t, CountryOptions, code)
	}
	for _, code := range CountryOptions {
		assert.Len(t, code, 2)
	}
}

func TestOptionLabels(t *testing.T) {
	assert.Equal(t, "Germany", CountryName("DE"))
	assert.Equal(t, "XX", CountryName("XX"))
	assert.Equal(t, "Master's Degree", DegreeLabel("master"))
	assert.Equal(t, "Native or bilingual proficiency", FluencyLabel("native"))
	assert.Equal(t, "Expert", LevelLabel("expert"))
	assert.Equal(t, "GitHub", NetworkLabel("github"))
	// Unknown ids pass through
	assert.Equal(t, "something", DegreeLabel("something"))
}

func TestSectionIDOptions_CoverEverySection(t *testing.T) {
	expected := []string{
		"basics", "location", "profiles", "education", "work", "projects",
		"skills", "languages", "interests", "awards", "certificates",
		"publications", "volunteer", "references",
	}
	assert.Equal(t, expected, SectionIDOptions)
}
