package extract

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-parser/internal/types"
)

// jobTitleKeywords strongly indicate a job title line.
var jobTitleKeywords = []string{
	"engineer", "developer", "manager", "director", "analyst",
	"designer", "architect", "lead", "senior", "junior", "intern",
	"specialist", "coordinator", "administrator", "consultant",
	"executive", "officer", "associate", "assistant", "supervisor",
	"technician", "representative", "strategist",
}

// companyIndicators mark company/location lines.
var companyIndicators = []string{
	"inc", "llc", "ltd", "corp", "corporation", "company", "co.",
	"solutions", "technologies", "services", "group", "partners",
}

// descriptionStarters are verbs that open description sentences, not titles.
var descriptionStarters = []string{
	"led ", "managed ", "developed ", "created ", "built ", "designed ",
	"implemented ", "responsible for", "worked with", "collaborated",
}

const bulletGlyphs = "•-*·–►▪ "

var (
	pipeTailPattern      = regexp.MustCompile(`\|.*$`)
	stateSuffixPattern   = regexp.MustCompile(`,\s*[A-Z]{2}\b`)
	locationTailPattern  = regexp.MustCompile(`,\s*([^,]+),\s*([A-Z]{2})\s*$`)
	shortTitleKeywords   = []string{"engineer", "developer", "manager", "director", "analyst", "designer", "architect", "lead", "senior", "junior"}
	maxJobTitleLineChars = 80
	minDescriptionChars  = 20
)

// experienceBuilder accumulates one in-progress work experience entry. An
// entry may only be emitted once both the title and the company are known.
type experienceBuilder struct {
	jobTitle    string
	company     string
	startDate   string
	endDate     string
	description []string
}

func (b *experienceBuilder) complete() bool {
	return b != nil && b.jobTitle != "" && b.company != ""
}

func (b *experienceBuilder) build() types.WorkExperience {
	desc := b.description
	if desc == nil {
		desc = []string{}
	}
	return types.WorkExperience{
		JobTitle:    b.jobTitle,
		Company:     b.company,
		StartDate:   b.startDate,
		EndDate:     b.endDate,
		Description: desc,
	}
}

// ExperienceExtractor recovers job title/company/date-range/description
// entries from the experience section of resume text.
type ExperienceExtractor struct{}

// NewExperienceExtractor creates an experience extractor.
func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{}
}

// Extract returns the work experience entries found in the text. A missing
// section yields an empty list.
func (e *ExperienceExtractor) Extract(text string) []types.WorkExperience {
	section := findSection(splitLines(text), sectionVocabulary{
		headers: ExperienceHeaders,
		terminators: joinVocab(
			EducationHeaders, SkillsHeaders, ProjectsHeaders, CertificationHeaders,
		),
		exclusions: ExcludeFromExperience,
	}, sectionOptions{matchAnywhere: true})
	if section == nil {
		log.Warn().Msg("no experience section found")
		return []types.WorkExperience{}
	}

	entries := e.parseEntries(section)
	log.Debug().Int("count", len(entries)).Msg("extracted work experience entries")
	return entries
}

// parseEntries walks the section lines as a state machine. Layouts vary most
// here (title-first vs company-first, inline vs stacked dates), so company
// and date attachment is deferred to the next classified line rather than
// assuming a fixed order.
func (e *ExperienceExtractor) parseEntries(lines []string) []types.WorkExperience {
	entries := []types.WorkExperience{}
	var current *experienceBuilder
	awaitingCompanyDate := false

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
		if containsAny(strings.ToLower(line), ExperienceHeaders) {
			continue
		}

		// Bullets are never headers; they extend the open entry's description.
		if isBulletPoint(line) {
			if current != nil {
				if desc := strings.TrimSpace(strings.TrimLeft(line, bulletGlyphs)); desc != "" {
					current.description = append(current.description, desc)
				}
			}
			continue
		}

		dateMatch := DateRangePattern.FindStringSubmatch(line)
		isTitle := isJobTitleLine(line)

		switch {
		case dateMatch != nil:
			start, end := dateMatch[1], dateMatch[2]

			if awaitingCompanyDate && current != nil && current.jobTitle != "" {
				// The pending title gets its company and dates from this line.
				if company := extractCompanyFromDateLine(line); company != "" {
					current.company = company
				}
				current.startDate, current.endDate = start, end
				awaitingCompanyDate = false
			} else if isTitle {
				// Title and dates on one line open a new entry directly.
				flush()
				current = parseJobHeader(line)
				current.startDate, current.endDate = start, end
				awaitingCompanyDate = false
			} else if current != nil && current.jobTitle != "" && current.company == "" {
				if company := extractCompanyFromDateLine(line); company != "" {
					current.company = company
					current.startDate, current.endDate = start, end
					awaitingCompanyDate = false
				}
			}

		case isTitle:
			flush()
			current = &experienceBuilder{jobTitle: cleanJobTitle(line)}
			awaitingCompanyDate = true

		case looksLikeCompanyLine(line) && current != nil && awaitingCompanyDate:
			if current.company == "" {
				if company := extractCompanyName(line); company != "" {
					current.company = company
				}
			}

		case current != nil && current.jobTitle != "" && len(line) > minDescriptionChars:
			// Long unclassified line: an unbulleted description, as long as
			// we are not still waiting for the company/date pair.
			if !awaitingCompanyDate {
				current.description = append(current.description, line)
			}
		}
	}

	flush()
	return entries
}

func isBulletPoint(line string) bool {
	for _, prefix := range []string{"•", "-", "*", "·", "–", "►", "▪"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// isJobTitleLine reports whether the line has job-title shape: short, carries
// a title keyword, and does not read like a description sentence.
func isJobTitleLine(line string) bool {
	if isBulletPoint(line) || len(line) > maxJobTitleLineChars {
		return false
	}

	lower := strings.ToLower(line)
	if !containsAny(lower, jobTitleKeywords) {
		return false
	}

	for _, starter := range descriptionStarters {
		if strings.HasPrefix(lower, starter) {
			return false
		}
	}
	return true
}

func looksLikeCompanyLine(line string) bool {
	if containsAny(strings.ToLower(line), companyIndicators) {
		return true
	}
	return stateSuffixPattern.MatchString(line)
}

// parseJobHeader parses a line that carries the title and dates together.
func parseJobHeader(line string) *experienceBuilder {
	b := &experienceBuilder{}

	titlePart := line
	if loc := DateRangePattern.FindStringIndex(line); loc != nil {
		titlePart = line[:loc[0]]
	}
	titlePart = pipeTailPattern.ReplaceAllString(titlePart, "")
	b.jobTitle = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(titlePart), ","))
	return b
}

// cleanJobTitle strips dates and pipe-delimited extras from a title line.
func cleanJobTitle(line string) string {
	clean := DateRangePattern.ReplaceAllString(line, "")
	clean = pipeTailPattern.ReplaceAllString(clean, "")
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(clean), ","))
}

// extractCompanyFromDateLine recovers the company name from a line that also
// carries the date range, rejecting candidates that look like job titles.
func extractCompanyFromDateLine(line string) string {
	clean := DateRangePattern.ReplaceAllString(line, "")
	clean = strings.TrimSpace(strings.ReplaceAll(clean, "|", " "))
	if loc := locationTailPattern.FindStringIndex(clean); loc != nil {
		clean = strings.TrimSpace(clean[:loc[0]])
	}
	clean = strings.TrimSpace(strings.TrimRight(clean, ","))

	if clean == "" || containsAny(strings.ToLower(clean), shortTitleKeywords) {
		return ""
	}
	return clean
}

// extractCompanyName recovers the company name from a standalone company line.
func extractCompanyName(line string) string {
	clean := strings.TrimSpace(line)
	if loc := locationTailPattern.FindStringIndex(clean); loc != nil {
		clean = strings.TrimSpace(clean[:loc[0]])
	}
	if idx := strings.Index(clean, "|"); idx >= 0 {
		clean = strings.TrimSpace(clean[:idx])
	}
	return clean
}
