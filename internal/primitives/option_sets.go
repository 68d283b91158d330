// Package primitives provides the shared field validators that the section
// schemas are built from.
package primitives

import "sort"

// countryNames maps ISO 3166-1 alpha-2 codes to their English short names.
// The key set doubles as the country option set.
var countryNames = map[string]string{
	"AD": "Andorra",
	"AE": "United Arab Emirates",
	"AF": "Afghanistan",
	"AG": "Antigua and Barbuda",
	"AI": "Anguilla",
	"AL": "Albania",
	"AM": "Armenia",
	"AO": "Angola",
	"AR": "Argentina",
	"AS": "American Samoa",
	"AT": "Austria",
	"AU": "Australia",
	"AW": "Aruba",
	"AZ": "Azerbaijan",
	"BA": "Bosnia and Herzegovina",
	"BB": "Barbados",
	"BD": "Bangladesh",
	"BE": "Belgium",
	"BF": "Burkina Faso",
	"BG": "Bulgaria",
	"BH": "Bahrain",
	"BI": "Burundi",
	"BJ": "Benin",
	"BM": "Bermuda",
	"BN": "Brunei Darussalam",
	"BO": "Bolivia",
	"BR": "Brazil",
	"BS": "Bahamas",
	"BT": "Bhutan",
	"BW": "Botswana",
	"BY": "Belarus",
	"BZ": "Belize",
	"CA": "Canada",
	"CD": "Congo, Democratic Republic of the",
	"CF": "Central African Republic",
	"CG": "Congo",
	"CH": "Switzerland",
	"CI": "Côte d'Ivoire",
	"CL": "Chile",
	"CM": "Cameroon",
	"CN": "China",
	"CO": "Colombia",
	"CR": "Costa Rica",
	"CU": "Cuba",
	"CV": "Cabo Verde",
	"CY": "Cyprus",
	"CZ": "Czechia",
	"DE": "Germany",
	"DJ": "Djibouti",
	"DK": "Denmark",
	"DM": "Dominica",
	"DO": "Dominican Republic",
	"DZ": "Algeria",
	"EC": "Ecuador",
	"EE": "Estonia",
	"EG": "Egypt",
	"ER": "Eritrea",
	"ES": "Spain",
	"ET": "Ethiopia",
	"FI": "Finland",
	"FJ": "Fiji",
	"FM": "Micronesia",
	"FO": "Faroe Islands",
	"FR": "France",
	"GA": "Gabon",
	"GB": "United Kingdom",
	"GD": "Grenada",
	"GE": "Georgia",
	"GH": "Ghana",
	"GI": "Gibraltar",
	"GL": "Greenland",
	"GM": "Gambia",
	"GN": "Guinea",
	"GQ": "Equatorial Guinea",
	"GR": "Greece",
	"GT": "Guatemala",
	"GU": "Guam",
	"GW": "Guinea-Bissau",
	"GY": "Guyana",
	"HK": "Hong Kong",
	"HN": "Honduras",
	"HR": "Croatia",
	"HT": "Haiti",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IN": "India",
	"IQ": "Iraq",
	"IR": "Iran",
	"IS": "Iceland",
	"IT": "Italy",
	"JM": "Jamaica",
	"JO": "Jordan",
	"JP": "Japan",
	"KE": "Kenya",
	"KG": "Kyrgyzstan",
	"KH": "Cambodia",
	"KI": "Kiribati",
	"KM": "Comoros",
	"KN": "Saint Kitts and Nevis",
	"KP": "Korea, Democratic People's Republic of",
	"KR": "Korea, Republic of",
	"KW": "Kuwait",
	"KY": "Cayman Islands",
	"KZ": "Kazakhstan",
	"LA": "Lao People's Democratic Republic",
	"LB": "Lebanon",
	"LC": "Saint Lucia",
	"LI": "Liechtenstein",
	"LK": "Sri Lanka",
	"LR": "Liberia",
	"LS": "Lesotho",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"LY": "Libya",
	"MA": "Morocco",
	"MC": "Monaco",
	"MD": "Moldova",
	"ME": "Montenegro",
	"MG": "Madagascar",
	"MH": "Marshall Islands",
	"MK": "North Macedonia",
	"ML": "Mali",
	"MM": "Myanmar",
	"MN": "Mongolia",
	"MO": "Macao",
	"MR": "Mauritania",
	"MT": "Malta",
	"MU": "Mauritius",
	"MV": "Maldives",
	"MW": "Malawi",
	"MX": "Mexico",
	"MY": "Malaysia",
	"MZ": "Mozambique",
	"NA": "Namibia",
	"NE": "Niger",
	"NG": "Nigeria",
	"NI": "Nicaragua",
	"NL": "Netherlands",
	"NO": "Norway",
	"NP": "Nepal",
	"NR": "Nauru",
	"NZ": "New Zealand",
	"OM": "Oman",
	"PA": "Panama",
	"PE": "Peru",
	"PG": "Papua New Guinea",
	"PH": "Philippines",
	"PK": "Pakistan",
	"PL": "Poland",
	"PR": "Puerto Rico",
	"PS": "Palestine, State of",
	"PT": "Portugal",
	"PW": "Palau",
	"PY": "Paraguay",
	"QA": "Qatar",
	"RO": "Romania",
	"RS": "Serbia",
	"RU": "Russian Federation",
	"RW": "Rwanda",
	"SA": "Saudi Arabia",
	"SB": "Solomon Islands",
	"SC": "Seychelles",
	"SD": "Sudan",
	"SE": "Sweden",
	"SG": "Singapore",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"SL": "Sierra Leone",
	"SM": "San Marino",
	"SN": "Senegal",
	"SO": "Somalia",
	"SR": "Suriname",
	"SS": "South Sudan",
	"ST": "Sao Tome and Principe",
	"SV": "El Salvador",
	"SY": "Syrian Arab Republic",
	"SZ": "Eswatini",
	"TD": "Chad",
	"TG": "Togo",
	"TH": "Thailand",
	"TJ": "Tajikistan",
	"TL": "Timor-Leste",
	"TM": "Turkmenistan",
	"TN": "Tunisia",
	"TO": "Tonga",
	"TR": "Türkiye",
	"TT": "Trinidad and Tobago",
	"TV": "Tuvalu",
	"TW": "Taiwan",
	"TZ": "Tanzania",
	"UA": "Ukraine",
	"UG": "Uganda",
	"US": "United States",
	"UY": "Uruguay",
	"UZ": "Uzbekistan",
	"VA": "Holy See",
	"VC": "Saint Vincent and the Grenadines",
	"VE": "Venezuela",
	"VN": "Viet Nam",
	"VU": "Vanuatu",
	"WS": "Samoa",
	"YE": "Yemen",
	"ZA": "South Africa",
	"ZM": "Zambia",
	"ZW": "Zimbabwe",
}

// degreeLabels maps degree option ids to display labels.
var degreeLabels = map[string]string{
	"high-school": "High School Diploma",
	"associate":   "Associate Degree",
	"bachelor":    "Bachelor's Degree",
	"master":      "Master's Degree",
	"mba":         "MBA",
	"phd":         "PhD",
	"diploma":     "Diploma",
	"certificate": "Certificate",
}

// fluencyLabels maps fluency option ids to display labels.
var fluencyLabels = map[string]string{
	"elementary":   "Elementary proficiency",
	"limited":      "Limited working proficiency",
	"professional": "Professional working proficiency",
	"fluent":       "Full professional proficiency",
	"native":       "Native or bilingual proficiency",
}

// levelLabels maps skill level option ids to display labels.
var levelLabels = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
	"expert":       "Expert",
	"master":       "Master",
}

// networkLabels maps profile network option ids to display labels.
var networkLabels = map[string]string{
	"behance":       "Behance",
	"devto":         "DEV",
	"dribbble":      "Dribbble",
	"github":        "GitHub",
	"gitlab":        "GitLab",
	"linkedin":      "LinkedIn",
	"mastodon":      "Mastodon",
	"medium":        "Medium",
	"stackoverflow": "Stack Overflow",
	"twitter":       "Twitter",
	"website":       "Website",
	"xing":          "Xing",
}

// LanguageOptions is the closed set of languages accepted in the languages
// section.
var LanguageOptions = []string{
	"Arabic", "Bengali", "Chinese", "Czech", "Danish", "Dutch", "English",
	"Finnish", "French", "German", "Greek", "Hebrew", "Hindi", "Hungarian",
	"Indonesian", "Italian", "Japanese", "Korean", "Norwegian", "Polish",
	"Portuguese", "Romanian", "Russian", "Spanish", "Swedish", "Thai",
	"Turkish", "Ukrainian", "Vietnamese",
}

// LocaleLanguageOptions is the closed set of rendering locales.
var LocaleLanguageOptions = []string{
	"de", "en", "es", "fr", "it", "nl", "pt", "tr",
}

// FontSizeOptions is the closed set of base font sizes.
var FontSizeOptions = []string{"8pt", "9pt", "10pt", "11pt", "12pt"}

// FontspecNumbersOptions is the closed set of fontspec number styles.
var FontspecNumbersOptions = []string{"lining", "old-style"}

// SectionIDOptions is the closed set of section identifiers usable in
// layout.sectionOrder.
var SectionIDOptions = []string{
	"basics", "location", "profiles", "education", "work", "projects",
	"skills", "languages", "interests", "awards", "certificates",
	"publications", "volunteer", "references",
}

// TemplateOptions is the closed set of render templates.
var TemplateOptions = []string{"classic", "compact", "elegant", "minimal", "modern"}

// Option sets derived from the label tables above, sorted for stable
// constraint messages.
var (
	CountryOptions = sortedKeys(countryNames)
	DegreeOptions  = sortedKeys(degreeLabels)
	FluencyOptions = sortedKeys(fluencyLabels)
	LevelOptions   = sortedKeys(levelLabels)
	NetworkOptions = sortedKeys(networkLabels)
)

// Option rules, one per enum-constrained field.
var (
	CountryOption         = Option("country", CountryOptions)
	DegreeOption          = Option("degree", DegreeOptions)
	FluencyOption         = Option("fluency", FluencyOptions)
	LanguageOption        = Option("language", LanguageOptions)
	LevelOption           = Option("level", LevelOptions)
	NetworkOption         = Option("network", NetworkOptions)
	LocaleLanguageOption  = Option("locale language", LocaleLanguageOptions)
	FontSizeOption        = Option("font size", FontSizeOptions)
	FontspecNumbersOption = Option("fontspec numbers", FontspecNumbersOptions)
	SectionIDOption       = Option("section id", SectionIDOptions)
	TemplateOption        = Option("template", TemplateOptions)
)

// CountryName returns the English short name for an ISO 3166-1 alpha-2 code,
// or the code itself when unknown.
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}

// DegreeLabel returns the display label for a degree option id.
func DegreeLabel(id string) string { return optionLabel(degreeLabels, id) }

// FluencyLabel returns the display label for a fluency option id.
func FluencyLabel(id string) string { return optionLabel(fluencyLabels, id) }

// LevelLabel returns the display label for a skill level option id.
func LevelLabel(id string) string { return optionLabel(levelLabels, id) }

// NetworkLabel returns the display label for a network option id.
func NetworkLabel(id string) string { return optionLabel(networkLabels, id) }

func optionLabel(labels map[string]string, id string) string {
	if label, ok := labels[id]; ok {
		return label
	}
	return id
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
