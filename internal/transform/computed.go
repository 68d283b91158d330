package transform

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-schema/internal/primitives"
	"github.com/jonathan/resume-schema/internal/types"
)

// Populate attaches (or overwrites) every computed sub-object in the
// document. Base content fields are never touched, so running the transform
// repeatedly is safe. The locale argument overrides layout.localeLanguage
// when non-empty.
func Populate(r *types.Resume, locale string) {
	if r == nil {
		return
	}
	if locale == "" && r.Layout != nil {
		locale = r.Layout.LocaleLanguage
	}
	locale = ResolveLocale(locale)

	c := &r.Content

	c.Basics.Computed = &types.BasicsComputed{
		ContactLine: joinNonEmpty(" · ", c.Basics.Email, c.Basics.Phone, c.Basics.URL),
	}

	if c.Location != nil {
		countryName := ""
		if c.Location.Country != "" {
			countryName = primitives.CountryName(c.Location.Country)
		}
		c.Location.Computed = &types.LocationComputed{
			CountryName: countryName,
			FullAddress: joinNonEmpty(", ",
				c.Location.Address,
				joinNonEmpty(" ", c.Location.PostalCode, c.Location.City),
				c.Location.Region,
				countryName),
		}
	}

	for i := range c.Profiles {
		c.Profiles[i].Computed = &types.ProfileItemComputed{
			NetworkLabel: primitives.NetworkLabel(c.Profiles[i].Network),
		}
	}

	for i := range c.Education {
		e := &c.Education[i]
		computed := &types.EducationItemComputed{
			DateRange:   dateRange(locale, e.StartDate, e.EndDate),
			CoursesText: strings.Join(e.Courses, ", "),
		}
		if e.Degree != "" {
			computed.DegreeLabel = primitives.DegreeLabel(e.Degree)
		}
		e.Computed = computed
	}

	for i := range c.Work {
		w := &c.Work[i]
		w.Computed = &types.WorkItemComputed{
			DateRange: dateRange(locale, w.StartDate, w.EndDate),
		}
	}

	for i := range c.Volunteer {
		v := &c.Volunteer[i]
		v.Computed = &types.VolunteerItemComputed{
			DateRange: dateRange(locale, v.StartDate, v.EndDate),
		}
	}

	for i := range c.Projects {
		p := &c.Projects[i]
		computed := &types.ProjectItemComputed{
			KeywordsText: strings.Join(p.Keywords, ", "),
		}
		if p.StartDate != "" {
			computed.DateRange = dateRange(locale, p.StartDate, p.EndDate)
		}
		p.Computed = computed
	}

	for i := range c.Skills {
		s := &c.Skills[i]
		computed := &types.SkillItemComputed{
			KeywordsText: strings.Join(s.Keywords, ", "),
		}
		if s.Level != "" {
			computed.LevelLabel = primitives.LevelLabel(s.Level)
		}
		s.Computed = computed
	}

	for i := range c.Languages {
		c.Languages[i].Computed = &types.LanguageItemComputed{
			FluencyLabel: primitives.FluencyLabel(c.Languages[i].Fluency),
		}
	}

	for i := range c.Interests {
		c.Interests[i].Computed = &types.InterestItemComputed{
			KeywordsText: strings.Join(c.Interests[i].Keywords, ", "),
		}
	}

	for i := range c.Awards {
		c.Awards[i].Computed = &types.AwardItemComputed{
			DateLabel: dateLabel(locale, c.Awards[i].Date),
		}
	}

	for i := range c.Certificates {
		c.Certificates[i].Computed = &types.CertificateItemComputed{
			DateLabel: dateLabel(locale, c.Certificates[i].Date),
		}
	}

	for i := range c.Publications {
		c.Publications[i].Computed = &types.PublicationItemComputed{
			DateLabel: dateLabel(locale, c.Publications[i].ReleaseDate),
		}
	}

	for i := range c.References {
		c.References[i].Computed = &types.ReferenceItemComputed{
			Attribution: "– " + c.References[i].Name,
		}
	}

	c.Computed = &types.ContentComputed{
		SectionNames: sectionNames(r),
		URLs:         collectURLs(c),
	}
}

// dateRange formats "January 2020 – March 2022"; an open range ends in the
// locale's present label.
func dateRange(locale, start, end string) string {
	from := dateLabel(locale, start)
	to := presentLabel(locale)
	if end != "" {
		to = dateLabel(locale, end)
	}
	if from == "" {
		return to
	}
	return from + " – " + to
}

// dateLabel formats a single YYYY-MM or YYYY-MM-DD value as "Month YYYY".
// Values that do not parse are passed through unchanged so the transform
// never loses information on unvalidated input.
func dateLabel(locale, value string) string {
	if value == "" {
		return ""
	}
	t, err := primitives.ParseDate(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%s %d", monthName(locale, int(t.Month())), t.Year())
}

// sectionNames lists the populated sections, honoring layout.sectionOrder
// when given and falling back to the canonical section order otherwise.
// Ordered sections absent from sectionOrder are appended in canonical order.
func sectionNames(r *types.Resume) []string {
	order := primitives.SectionIDOptions
	if r.Layout != nil && len(r.Layout.SectionOrder) > 0 {
		order = append([]string(nil), r.Layout.SectionOrder...)
		listed := make(map[string]bool, len(order))
		for _, id := range order {
			listed[id] = true
		}
		for _, id := range primitives.SectionIDOptions {
			if !listed[id] {
				order = append(order, id)
			}
		}
	}

	var names []string
	for _, id := range order {
		if sectionPresent(&r.Content, id) {
			names = append(names, id)
		}
	}
	return names
}

func sectionPresent(c *types.ResumeContent, id string) bool {
	switch id {
	case "basics":
		return true
	case "location":
		return c.Location != nil
	case "profiles":
		return len(c.Profiles) > 0
	case "education":
		return len(c.Education) > 0
	case "work":
		return len(c.Work) > 0
	case "projects":
		return len(c.Projects) > 0
	case "skills":
		return len(c.Skills) > 0
	case "languages":
		return len(c.Languages) > 0
	case "interests":
		return len(c.Interests) > 0
	case "awards":
		return len(c.Awards) > 0
	case "certificates":
		return len(c.Certificates) > 0
	case "publications":
		return len(c.Publications) > 0
	case "volunteer":
		return len(c.Volunteer) > 0
	case "references":
		return len(c.References) > 0
	default:
		return false
	}
}

// collectURLs gathers every URL in canonical section order.
func collectURLs(c *types.ResumeContent) []string {
	var urls []string
	add := func(u string) {
		if u != "" {
			urls = append(urls, u)
		}
	}
	add(c.Basics.URL)
	for _, p := range c.Profiles {
		add(p.URL)
	}
	for _, e := range c.Education {
		add(e.URL)
	}
	for _, w := range c.Work {
		add(w.URL)
	}
	for _, p := range c.Projects {
		add(p.URL)
	}
	for _, cert := range c.Certificates {
		add(cert.URL)
	}
	for _, p := range c.Publications {
		add(p.URL)
	}
	for _, v := range c.Volunteer {
		add(v.URL)
	}
	return urls
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
