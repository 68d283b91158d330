// Package sections implements the per-section validation rule-sets for
// resume content.
package sections

import (
	"github.com/jonathan/resume-schema/internal/primitives"
	"github.com/jonathan/resume-schema/internal/types"
)

var (
	titleRule     = primitives.SizedString("title", 2, 128)
	awarderRule   = primitives.SizedString("awarder", 2, 128)
	certNameRule  = primitives.SizedString("name", 2, 128)
	issuerRule    = primitives.SizedString("issuer", 2, 128)
	publisherRule = primitives.SizedString("publisher", 2, 128)
	refNameRule   = primitives.SizedString("name", 2, 64)
	referenceRule = primitives.SizedString("reference", 4, 1024)
)

// ValidateAwards validates the optional awards section.
func ValidateAwards(items []types.AwardItem) []types.Violation {
	var vs types.Violations
	for i, a := range items {
		base := itemPath("awards", i)
		vs.Add(primitives.ItemID(base+".id", a.ID))
		checkRequired(&vs, titleRule, base+".title", a.Title)
		vs.Add(primitives.Date(base+".date", "date", a.Date))
		vs.Add(awarderRule.CheckOptional(base+".awarder", a.Awarder))
		vs.Add(summaryRule.CheckOptional(base+".summary", a.Summary))
	}
	return vs.Violations
}

// ValidateCertificates validates the optional certificates section.
func ValidateCertificates(items []types.CertificateItem) []types.Violation {
	var vs types.Violations
	for i, c := range items {
		base := itemPath("certificates", i)
		vs.Add(primitives.ItemID(base+".id", c.ID))
		checkRequired(&vs, certNameRule, base+".name", c.Name)
		vs.Add(issuerRule.CheckOptional(base+".issuer", c.Issuer))
		vs.Add(primitives.Date(base+".date", "date", c.Date))
		vs.Add(urlRule.CheckOptional(base+".url", c.URL))
		vs.Add(primitives.URL(base+".url", "url", c.URL))
	}
	return vs.Violations
}

// ValidatePublications validates the optional publications section.
func ValidatePublications(items []types.PublicationItem) []types.Violation {
	var vs types.Violations
	for i, p := range items {
		base := itemPath("publications", i)
		vs.Add(primitives.ItemID(base+".id", p.ID))
		checkRequired(&vs, certNameRule, base+".name", p.Name)
		vs.Add(publisherRule.CheckOptional(base+".publisher", p.Publisher))
		vs.Add(primitives.Date(base+".releaseDate", "release date", p.ReleaseDate))
		vs.Add(urlRule.CheckOptional(base+".url", p.URL))
		vs.Add(primitives.URL(base+".url", "url", p.URL))
		vs.Add(summaryRule.CheckOptional(base+".summary", p.Summary))
	}
	return vs.Violations
}

// ValidateReferences validates the optional references section.
func ValidateReferences(items []types.ReferenceItem) []types.Violation {
	var vs types.Violations
	for i, r := range items {
		base := itemPath("references", i)
		vs.Add(primitives.ItemID(base+".id", r.ID))
		checkRequired(&vs, refNameRule, base+".name", r.Name)
		checkRequired(&vs, referenceRule, base+".reference", r.Reference)
	}
	return vs.Violations
}
