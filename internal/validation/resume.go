// Package validation decides whether a piece of text is worth parsing as a
// resume, both before extraction (is this a resume at all) and after (did the
// visible sections actually yield data).
package validation

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// minTextLength is the shortest text that can plausibly be a resume.
	minTextLength = 100
	// minKeywordMatches is how many distinct section keywords the text must
	// contain.
	minKeywordMatches = 2
)

// Validator applies cheap heuristic checks ahead of the extraction pipeline.
type Validator struct {
	keywords []string
}

// NewValidator creates a validator with the combined section vocabulary.
func NewValidator() *Validator {
	return &Validator{
		keywords: combineKeywords(
			extract.EducationHeaders,
			extract.ExperienceHeaders,
			extract.SkillsHeaders,
			extract.SummaryHeaders,
			extract.ProjectsHeaders,
			extract.CertificationHeaders,
		),
	}
}

// Validate reports whether the text looks like a resume. When it does not,
// the returned reason names the first failed check: length, then section
// keywords, then contact information.
func (v *Validator) Validate(text string) (bool, string) {
	trimmed := strings.TrimSpace(text)

	if len(trimmed) < minTextLength {
		return false, fmt.Sprintf("text too short to be a resume (%d chars, minimum %d)", len(trimmed), minTextLength)
	}

	lower := strings.ToLower(trimmed)
	matches := 0
	for _, kw := range v.keywords {
		if strings.Contains(lower, kw) {
			matches++
			if matches >= minKeywordMatches {
				break
			}
		}
	}
	if matches < minKeywordMatches {
		return false, "text does not contain resume sections (education, experience, skills)"
	}

	if extract.EmailPattern.FindString(trimmed) == "" && extract.PhoneUSPattern.FindString(trimmed) == "" {
		// A LinkedIn URL alone does not count as reachable contact info.
		return false, "text does not contain contact information (email or phone)"
	}

	log.Debug().Int("length", len(trimmed)).Msg("text passed resume validation")
	return true, ""
}

// HasSectionsButNoData reports whether extraction came back empty despite the
// text advertising sections. Two or more advertised-but-empty sections means
// the document layout defeated the extractors, which callers should surface
// rather than return a hollow result.
func (v *Validator) HasSectionsButNoData(text string, resume *types.ExtractedResume) (bool, string) {
	lower := strings.ToLower(text)

	var failed []string
	if containsAny(lower, extract.EducationHeaders) && len(resume.Education) == 0 {
		failed = append(failed, "Education")
	}
	if containsAny(lower, extract.ExperienceHeaders) && len(resume.WorkExperience) == 0 {
		failed = append(failed, "Work Experience")
	}
	if containsAny(lower, extract.SkillsHeaders) && len(resume.Skills) == 0 {
		failed = append(failed, "Skills")
	}

	if len(failed) >= 2 {
		reason := fmt.Sprintf("document contains %s sections but no data could be extracted from them", strings.Join(failed, ", "))
		log.Warn().Strs("sections", failed).Msg("sections present but extraction empty")
		return true, reason
	}
	return false, ""
}

func combineKeywords(lists ...[]string) []string {
	var out []string
	seen := map[string]bool{}
	for _, l := range lists {
		for _, kw := range l {
			if !seen[kw] {
				seen[kw] = true
				out = append(out, kw)
			}
		}
	}
	return out
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
