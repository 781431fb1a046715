package extract

import "regexp"

// Compiled patterns shared by the extractors and the validation package.
var (
	// EmailPattern matches a standard email address.
	EmailPattern = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// PhoneUSPattern matches US phone formats like (555) 123-4567 or 555.123.4567.
	PhoneUSPattern = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	// PhoneIntlPattern is the looser international fallback.
	PhoneIntlPattern = regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`)
	// LinkedInPattern matches a LinkedIn profile URL fragment.
	LinkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	// DateRangePattern matches "Month Year - Month Year|present|current".
	DateRangePattern = regexp.MustCompile(`(?i)(\w+\.?\s*\d{4})\s*(?:-|–|to)\s*(\w+\.?\s*\d{4}|present|current)`)
	// YearPattern matches a 4-digit year in the 1900s or 2000s.
	YearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	// locationPattern matches "City, ST" optionally followed by a ZIP code.
	locationPattern = regexp.MustCompile(`([A-Z][a-zA-Z\s]+),\s*([A-Z]{2})(?:\s+\d{5})?`)
	// addressPattern matches "Address: ..., City, ST" lines.
	addressPattern = regexp.MustCompile(`Address:\s*[^,]+,\s*([A-Z][a-zA-Z\s]+),\s*([A-Z]{2})`)
)

// Section header synonym lists. Matching is case-insensitive substring based;
// the section locator prefers longer phrases over generic ones.
var (
	EducationHeaders = []string{"education", "academic background", "academic", "qualifications"}

	ExperienceHeaders = []string{
		"work experience", "professional experience", "employment history",
		"employment", "work history", "career history", "experience",
	}

	SkillsHeaders = []string{"technical skills", "skills", "technologies"}

	SummaryHeaders = []string{
		"professional summary", "summary", "objective", "career objective",
		"profile", "about me", "overview", "executive summary",
	}

	ProjectsHeaders = []string{"projects", "portfolio", "personal projects", "key projects"}

	CertificationHeaders = []string{"certifications", "certificates", "licenses", "credentials"}

	// ExcludeFromExperience lists phrasings that contain the word "experience"
	// in passing and must never anchor the experience section.
	ExcludeFromExperience = []string{"professional summary", "summary", "objective", "profile"}
)

// degreeGroup maps a canonical degree category to its keyword variants.
// Order matters: the first category with a whole-word match wins.
type degreeGroup struct {
	category string
	keywords []string
}

var degreeGroups = []degreeGroup{
	{"Bachelor", []string{"bachelor", "b.s.", "b.a.", "bs", "ba", "b.sc", "bsc", "b.e.", "be"}},
	{"Master", []string{"master", "m.s.", "m.a.", "ms", "ma", "m.sc", "msc", "mba", "m.e.", "me"}},
	{"Doctorate", []string{"ph.d", "phd", "doctorate", "doctor of", "d.phil"}},
	{"Associate", []string{"associate", "a.s.", "a.a.", "as", "aa"}},
}

// degreePatterns holds the compiled whole-word regexps per category, built
// once at init. Whole-word matching keeps "be" from firing inside "Berkeley".
var degreePatterns = func() []struct {
	category string
	patterns []*regexp.Regexp
} {
	out := make([]struct {
		category string
		patterns []*regexp.Regexp
	}, 0, len(degreeGroups))
	for _, g := range degreeGroups {
		patterns := make([]*regexp.Regexp, 0, len(g.keywords))
		for _, kw := range g.keywords {
			patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		out = append(out, struct {
			category string
			patterns []*regexp.Regexp
		}{g.category, patterns})
	}
	return out
}()

// usStates is the set of valid US state abbreviations used to validate
// "City, ST" location candidates.
var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}
