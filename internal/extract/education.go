package extract

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-parser/internal/types"
)

// institutionKeywords mark lines that name a school.
var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy",
	"polytechnic", "conservatory",
}

// Field-of-study patterns, ordered most to least specific. The case-sensitive
// capture group anchors on a capitalized field name.
var (
	fieldOfSciencePattern = regexp.MustCompile(`(?i)(?:bachelor|master)(?:'?s?)?\s+of\s+(?:science|arts)\s+in\s+([A-Z][a-zA-Z\s&]+?)(?:\s*\(|\s*\||,|\s+from|\s+at|$)`)
	fieldOfPattern        = regexp.MustCompile(`(?i)(?:bachelor|master|doctor)(?:'?s?)?\s+of\s+([A-Z][a-zA-Z\s&]+?)(?:\s*\(|\s*\||,|\s+from|\s+at|$)`)
	fieldAbbrevPattern    = regexp.MustCompile(`(?:B\.?S\.?|B\.?A\.?|M\.?S\.?|M\.?A\.?|MBA|Ph\.?D\.?)\s+(?:in\s+)?([A-Z][a-zA-Z\s&]+?)(?:\s*\||,|$)`)
	fieldInPattern        = regexp.MustCompile(`\bin\s+([A-Z][a-zA-Z\s&]+?)(?:\s*\||,|\s+from|\s+at|\s+University|\s+College|$)`)
	fieldSuffixPattern    = regexp.MustCompile(`(?i)\s*(?:degree|program|studies)$`)
)

// Institution-name cleanup patterns.
var (
	pipedDatePattern = regexp.MustCompile(`\|\s*\w+\.?\s*\d{4}`)
	pipedYearPattern = regexp.MustCompile(`\|\s*\d{4}`)
	pipedGPAPattern  = regexp.MustCompile(`(?i)\|\s*GPA.*$`)
	trailingYearPart = regexp.MustCompile(`[,\s]*\b(?:19|20)\d{2}\s*$`)
)

// educationBuilder accumulates one in-progress education entry across lines.
// An entry may only be emitted once a degree keyword has matched.
type educationBuilder struct {
	degree      string
	field       string
	institution string
	year        string
}

// complete reports whether the entry satisfies its required field.
func (b *educationBuilder) complete() bool {
	return b != nil && b.degree != ""
}

func (b *educationBuilder) build() types.Education {
	return types.Education{
		Degree:         b.degree,
		FieldOfStudy:   b.field,
		Institution:    b.institution,
		GraduationYear: b.year,
	}
}

// EducationExtractor recovers degree/field/institution/year entries from the
// education section of resume text.
type EducationExtractor struct{}

// NewEducationExtractor creates an education extractor.
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// Extract returns the education entries found in the text. A missing section
// yields an empty list.
func (e *EducationExtractor) Extract(text string) []types.Education {
	section := findSection(splitLines(text), sectionVocabulary{
		headers: EducationHeaders,
		terminators: joinVocab(
			ExperienceHeaders, SkillsHeaders, ProjectsHeaders, CertificationHeaders,
		),
	}, sectionOptions{matchAnywhere: true})
	if section == nil {
		log.Warn().Msg("no education section found")
		return []types.Education{}
	}

	entries := e.parseEntries(section)
	log.Debug().Int("count", len(entries)).Msg("extracted education entries")
	return entries
}

// parseEntries walks the section lines, opening a new entry on each degree
// line and opportunistically filling institution/field/year from the lines
// that follow.
func (e *EducationExtractor) parseEntries(lines []string) []types.Education {
	entries := []types.Education{}
	var current *educationBuilder

	flush := func() {
		if current.complete() {
			entries = append(entries, current.build())
		}
		current = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if containsAny(strings.ToLower(line), EducationHeaders) {
			continue
		}

		degree := extractDegree(line)
		isInstitution := looksLikeInstitution(line)

		// Merged case: one line carries both a degree and an institution,
		// usually a multi-column layout flattened by text extraction. The
		// institution and year belong to the previous entry when it is still
		// missing them; the degree opens a fresh entry.
		if degree != "" && isInstitution {
			if current.complete() && current.institution == "" {
				if inst := extractInstitution(line); inst != "" {
					current.institution = inst
				}
				if year := YearPattern.FindString(line); year != "" {
					current.year = year
				}
			}
			flush()
			current = &educationBuilder{degree: degree, field: extractFieldOfStudy(line)}
			continue
		}

		if degree != "" {
			flush()
			current = &educationBuilder{
				degree: degree,
				field:  extractFieldOfStudy(line),
				year:   YearPattern.FindString(line),
			}
			continue
		}

		if isInstitution && current != nil {
			if current.institution == "" {
				current.institution = extractInstitution(line)
			}
			if current.year == "" {
				current.year = YearPattern.FindString(line)
			}
			continue
		}

		// Any other line while an entry is open: mine for missing fields.
		if current != nil {
			if current.year == "" {
				current.year = YearPattern.FindString(line)
			}
		}
	}

	flush()
	return entries
}

// extractDegree returns the canonical degree category matched by the line, or
// empty. Keywords match as whole words only.
func extractDegree(line string) string {
	for _, group := range degreePatterns {
		for _, p := range group.patterns {
			if p.MatchString(line) {
				return group.category
			}
		}
	}
	return ""
}

func looksLikeInstitution(line string) bool {
	return containsAny(strings.ToLower(line), institutionKeywords)
}

// extractInstitution returns the cleaned institution name from a line that
// contains an institution keyword.
func extractInstitution(line string) string {
	if !looksLikeInstitution(line) {
		return ""
	}
	return cleanInstitutionName(line)
}

// cleanInstitutionName strips dates, GPA notes and pipe-delimited extras.
func cleanInstitutionName(line string) string {
	clean := pipedDatePattern.ReplaceAllString(line, "")
	clean = pipedYearPattern.ReplaceAllString(clean, "")
	clean = pipedGPAPattern.ReplaceAllString(clean, "")
	if idx := strings.Index(clean, "|"); idx >= 0 {
		clean = clean[:idx]
	}
	clean = trailingYearPart.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// extractFieldOfStudy tries four patterns of decreasing specificity. The
// least specific ones reject generic placeholders like "Science" or "Arts"
// that are part of the degree name itself.
func extractFieldOfStudy(line string) string {
	if strings.Contains(strings.ToLower(line), "business administration") {
		return "Business Administration"
	}

	if m := fieldOfSciencePattern.FindStringSubmatch(line); m != nil {
		field := fieldSuffixPattern.ReplaceAllString(strings.TrimSpace(m[1]), "")
		if len(field) > 2 {
			return field
		}
	}

	if m := fieldOfPattern.FindStringSubmatch(line); m != nil {
		field := fieldSuffixPattern.ReplaceAllString(strings.TrimSpace(m[1]), "")
		lower := strings.ToLower(field)
		if lower != "science" && lower != "arts" && len(field) > 2 {
			return field
		}
	}

	if m := fieldAbbrevPattern.FindStringSubmatch(line); m != nil {
		if field := strings.TrimSpace(m[1]); len(field) > 2 {
			return field
		}
	}

	if m := fieldInPattern.FindStringSubmatch(line); m != nil {
		field := strings.TrimSpace(m[1])
		switch strings.ToLower(field) {
		case "science", "arts", "business", "engineering":
		default:
			if len(field) > 2 {
				return field
			}
		}
	}

	return ""
}

// joinVocab concatenates synonym lists into one terminator list.
func joinVocab(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
