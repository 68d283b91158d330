package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-schema/internal/types"
)

func TestValidateLocation_AbsentIsValid(t *testing.T) {
	assert.Empty(t, ValidateLocation(nil))
}

func TestValidateLocation_CityAndCountry(t *testing.T) {
	loc := &types.Location{City: "Berlin", Country: "DE"}
	assert.Empty(t, ValidateLocation(loc))
}

func TestValidateLocation_CityBelowMinimum(t *testing.T) {
	vs := ValidateLocation(&types.Location{City: "B"})
	require.Len(t, vs, 1)
	assert.Equal(t, "location.city", vs[0].Path)
	assert.Equal(t, types.KindLengthViolation, vs[0].Kind)
}

func TestValidateLocation_MissingCityAndShortAddress(t *testing.T) {
	vs := ValidateLocation(&types.Location{Address: "123"})
	require.Len(t, vs, 2)

	byPath := map[string]types.ViolationKind{}
	for _, v := range vs {
		byPath[v.Path] = v.Kind
	}
	assert.Equal(t, types.KindMissingRequiredField, byPath["location.city"])
	assert.Equal(t, types.KindLengthViolation, byPath["location.address"])
}

func TestValidateLocation_InvalidCountry(t *testing.T) {
	vs := ValidateLocation(&types.Location{City: "Berlin", Country: "Germany"})
	require.Len(t, vs, 1)
	assert.Equal(t, "location.country", vs[0].Path)
	assert.Equal(t, types.KindInvalidChoice, vs[0].Kind)
}

func TestValidateLocation_AllFields(t *testing.T) {
	loc := &types.Location{
		City:       "Berlin",
		Address:    "Torstraße 99",
		Country:    "DE",
		PostalCode: "10119",
		Region:     "Berlin",
	}
	assert.Empty(t, ValidateLocation(loc))
}

func TestValidateLocation_PostalCodeBounds(t *testing.T) {
	vs := ValidateLocation(&types.Location{City: "Berlin", PostalCode: "1"})
	require.Len(t, vs, 1)
	assert.Equal(t, "location.postalCode", vs[0].Path)
	assert.Equal(t, types.KindLengthViolation, vs[0].Kind)
	assert.Equal(t, "2-16 characters", vs[0].Constraint)
}

func TestValidateLocation_Idempotent(t *testing.T) {
	loc := &types.Location{City: "Berlin", Country: "DE"}
	first := ValidateLocation(loc)
	second := ValidateLocation(loc)
	assert.Equal(t, first, second)
}
