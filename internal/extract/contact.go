package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-parser/internal/types"
)

// nameLineLimit is how many non-empty lines from the top of the document are
// considered when looking for the candidate's name.
const nameLineLimit = 5

// headerKeywords are phrasings that disqualify a line from being a name.
var headerKeywords = []string{
	"resume", "curriculum vitae", "cv", "contact", "summary",
	"experience", "education", "skills", "objective",
}

var nonWordChars = regexp.MustCompile(`[^\w]`)

// ContactExtractor recovers name, email, phone and city/state from resume
// text. Fields that cannot be found are left empty; extraction never fails.
type ContactExtractor struct{}

// NewContactExtractor creates a contact extractor.
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{}
}

// Extract returns the contact information found in the text.
func (e *ContactExtractor) Extract(text string) types.ContactInfo {
	lines := splitLines(strings.TrimSpace(text))

	contact := types.ContactInfo{}
	contact.FirstName, contact.LastName = e.extractName(lines)
	contact.Email = e.extractEmail(text)
	contact.Phone = e.extractPhone(text)
	contact.City, contact.State = e.extractLocation(text)

	log.Debug().
		Str("first_name", contact.FirstName).
		Str("email", contact.Email).
		Msg("extracted contact info")
	return contact
}

// extractName scans the first few non-empty lines for 2-4 leading capitalized
// alphabetic tokens. Names sit at the very top of a resume; header lines and
// lines carrying an email or phone are skipped.
func (e *ContactExtractor) extractName(lines []string) (string, string) {
	seen := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > nameLineLimit {
			break
		}

		if e.isLikelyHeader(line) {
			continue
		}
		if strings.Contains(line, "@") || PhoneUSPattern.MatchString(line) {
			continue
		}

		var nameWords []string
		for _, word := range strings.Fields(line) {
			clean := nonWordChars.ReplaceAllString(word, "")
			if clean == "" || !isCapitalizedAlpha(clean) {
				break
			}
			nameWords = append(nameWords, clean)
		}

		if len(nameWords) >= 2 && len(nameWords) <= 4 {
			return nameWords[0], nameWords[len(nameWords)-1]
		}
	}
	return "", ""
}

func (e *ContactExtractor) isLikelyHeader(line string) bool {
	return containsAny(strings.ToLower(line), headerKeywords)
}

func (e *ContactExtractor) extractEmail(text string) string {
	return EmailPattern.FindString(text)
}

// extractPhone tries the US pattern first and falls back to the looser
// international one.
func (e *ContactExtractor) extractPhone(text string) string {
	if phone := PhoneUSPattern.FindString(text); phone != "" {
		return phone
	}
	return PhoneIntlPattern.FindString(text)
}

// extractLocation looks for a "City, ST" pattern validated against the US
// state set, then an "Address: ..., City, ST" fallback.
func (e *ContactExtractor) extractLocation(text string) (string, string) {
	if m := locationPattern.FindStringSubmatch(text); m != nil {
		city, state := strings.TrimSpace(m[1]), m[2]
		if usStates[state] {
			return city, state
		}
	}

	if m := addressPattern.FindStringSubmatch(text); m != nil {
		city, state := strings.TrimSpace(m[1]), m[2]
		if usStates[state] {
			return city, state
		}
	}

	return "", ""
}

// isCapitalizedAlpha reports whether the token starts with an uppercase
// letter and contains only letters.
func isCapitalizedAlpha(s string) bool {
	for i, r := range s {
		if i == 0 && !unicode.IsUpper(r) {
			return false
		}
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
