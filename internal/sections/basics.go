// Package sections implements the per-section validation rule-sets for
// resume content.
package sections

import (
	"github.com/jonathan/resume-schema/internal/primitives"
	"github.com/jonathan/resume-schema/internal/types"
)

var (
	nameRule     = primitives.SizedString("name", 2, 64)
	labelRule    = primitives.SizedString("label", 2, 128)
	emailRule    = primitives.SizedString("email", 6, 254)
	phoneRule    = primitives.SizedString("phone", 7, 32)
	urlRule      = primitives.SizedString("url", 4, 256)
	summaryRule  = primitives.SizedString("summary", 4, 1024)
	usernameRule = primitives.SizedString("username", 1, 64)
)

// ValidateBasics validates the mandatory basics section. Name and email are
// required; everything else is optional.
func ValidateBasics(b *types.Basics) []types.Violation {
	var vs types.Violations
	vs.Add(primitives.ItemID("basics.id", b.ID))
	checkRequired(&vs, nameRule, "basics.name", b.Name)
	checkRequired(&vs, emailRule, "basics.email", b.Email)
	if b.Email != "" {
		vs.Add(primitives.Email("basics.email", "email", b.Email))
	}
	vs.Add(labelRule.CheckOptional("basics.label", b.Label))
	vs.Add(phoneRule.CheckOptional("basics.phone", b.Phone))
	vs.Add(urlRule.CheckOptional("basics.url", b.URL))
	vs.Add(primitives.URL("basics.url", "url", b.URL))
	vs.Add(summaryRule.CheckOptional("basics.summary", b.Summary))
	return vs.Violations
}

// ValidateProfiles validates the optional profiles section.
func ValidateProfiles(items []types.ProfileItem) []types.Violation {
	var vs types.Violations
	for i, p := range items {
		base := itemPath("profiles", i)
		vs.Add(primitives.ItemID(base+".id", p.ID))
		if v := primitives.RequiredString(base+".network", "network", p.Network); v != nil {
			vs.Add(v)
		} else {
			vs.Add(primitives.NetworkOption.Check(base+".network", p.Network))
		}
		checkRequired(&vs, usernameRule, base+".username", p.Username)
		vs.Add(urlRule.CheckOptional(base+".url", p.URL))
		vs.Add(primitives.URL(base+".url", "url", p.URL))
	}
	return vs.Violations
}
