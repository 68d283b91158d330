// Package transform populates the computed sub-objects of a validated
// resume: formatted date ranges, joined keyword lists, and display labels
// for option values. The transform runs after validation and before
// rendering; it only ever writes computed fields, never base content.
package transform

import (
	"golang.org/x/text/language"
)

// defaultLocale is used when no locale is configured or the requested tag
// cannot be matched.
const defaultLocale = "en"

// supportedLocales lists the rendering locales, default first so the
// matcher falls back to it.
var supportedLocales = []string{"en", "de", "es", "fr", "it", "nl", "pt", "tr"}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = language.MustParse(l)
	}
	return language.NewMatcher(tags)
}()

// ResolveLocale picks the best supported rendering locale for a BCP 47 tag.
// Unknown or empty tags resolve to English.
func ResolveLocale(tag string) string {
	if tag == "" {
		return defaultLocale
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return defaultLocale
	}
	_, index, conf := localeMatcher.Match(parsed)
	if conf == language.No {
		return defaultLocale
	}
	return supportedLocales[index]
}

// monthNames holds month display names per supported locale.
var monthNames = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	"fr": {"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	"it": {"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
	"nl": {"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
	"pt": {"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
	"tr": {"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
}

// presentLabels holds the open-range end label per supported locale.
var presentLabels = map[string]string{
	"en": "Present",
	"de": "Heute",
	"es": "Actualidad",
	"fr": "Aujourd'hui",
	"it": "Presente",
	"nl": "Heden",
	"pt": "Atualmente",
	"tr": "Halen",
}

func monthName(locale string, month int) string {
	names, ok := monthNames[locale]
	if !ok {
		names = monthNames[defaultLocale]
	}
	return names[month-1]
}

func presentLabel(locale string) string {
	if label, ok := presentLabels[locale]; ok {
		return label
	}
	return presentLabels[defaultLocale]
}
