// Package sections implements the per-section validation rule-sets for
// resume content.
package sections

import (
	"github.com/jonathan/resume-schema/internal/primitives"
	"github.com/jonathan/resume-schema/internal/types"
)

var (
	cityRule       = primitives.SizedString("city", 2, 64)
	addressRule    = primitives.SizedString("address", 4, 256)
	postalCodeRule = primitives.SizedString("postal code", 2, 16)
	regionRule     = primitives.SizedString("region", 2, 64)
)

// ValidateLocation validates the optional location section. A nil location
// is valid; when present, city is the only required field.
func ValidateLocation(loc *types.Location) []types.Violation {
	if loc == nil {
		return nil
	}
	var vs types.Violations
	checkRequired(&vs, cityRule, "location.city", loc.City)
	vs.Add(addressRule.CheckOptional("location.address", loc.Address))
	vs.Add(primitives.CountryOption.CheckOptional("location.country", loc.Country))
	vs.Add(postalCodeRule.CheckOptional("location.postalCode", loc.PostalCode))
	vs.Add(regionRule.CheckOptional("location.region", loc.Region))
	return vs.Violations
}
