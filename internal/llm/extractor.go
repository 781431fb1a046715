package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	bareJSONPattern   = regexp.MustCompile(`(?s)\{.*\}`)
)

const extractionSystemPrompt = `You are an expert resume parser. Extract ALL information from the resume and return ONLY valid JSON. Do not include any explanatory text.`

// Extractor runs model-backed resume extraction. Unlike the heuristic
// pipeline it handles arbitrary layouts, at the cost of a network call.
type Extractor struct {
	client Client
}

// NewExtractor creates an extractor on top of a client.
func NewExtractor(client Client) *Extractor {
	return &Extractor{client: client}
}

// Extract asks the model for the structured resume and validates the reply
// against the extraction schema. A malformed or non-conforming reply degrades
// to an empty result rather than an error, matching the heuristic pipeline's
// never-fail contract.
func (e *Extractor) Extract(ctx context.Context, text string) (*types.ExtractedResume, error) {
	prompt := buildExtractionPrompt(text)

	response, err := e.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("llm extraction: %w", err)
	}

	jsonStr := extractJSON(response)
	if err := schemas.ValidateExtractedResume(jsonStr); err != nil {
		log.Error().Err(err).Msg("llm response failed schema validation")
		return types.NewExtractedResume(text), nil
	}

	resume := types.NewExtractedResume(text)
	if err := json.Unmarshal([]byte(jsonStr), resume); err != nil {
		log.Error().Err(err).Msg("failed to parse llm response")
		return types.NewExtractedResume(text), nil
	}
	if resume.Education == nil {
		resume.Education = []types.Education{}
	}
	if resume.WorkExperience == nil {
		resume.WorkExperience = []types.WorkExperience{}
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
	resume.RawText = text

	log.Info().
		Int("education", len(resume.Education)).
		Int("experience", len(resume.WorkExperience)).
		Int("skills", len(resume.Skills)).
		Msg("llm extraction complete")
	return resume, nil
}

// buildExtractionPrompt constructs the extraction prompt. The rules are
// explicit about completeness because smaller models tend to stop after the
// first work experience entry.
func buildExtractionPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString(extractionSystemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(`Extract ALL possible resume information from the text below and return ONLY a JSON object in the exact format shown.

You MUST follow ALL of these rules:

1. WORK EXPERIENCE
   - Extract EVERY job under the work experience (or equivalent) section, including earlier and junior roles.
   - For each role extract job_title, company, start_date (YYYY-MM), end_date (YYYY-MM), and description.
   - description MUST be an array of strings, one per bullet point.
   - If dates or bullets are missing, still create the entry and use "" or [] for the missing fields.

2. EDUCATION
   - Extract ALL education entries as separate objects.
   - For each entry extract degree, field_of_study, institution, graduation_year.
   - If any field is missing, use "".

3. CONTACT INFORMATION
   - Fill first_name, last_name, email, phone, city, state.
   - If the address line has a full address, extract city and state from it.
   - If any field is not present, use "".

4. SKILLS
   - Extract ALL technical skills: languages, frameworks, databases, tools, platforms, cloud technologies, certifications.
   - Flatten the list so each skill is a separate string, with duplicates removed.
   - If no skills are found, return [].

5. OUTPUT FORMAT
   - Return ONLY valid JSON matching exactly this structure, with no explanation or extra text:

{
  "contact": {"first_name": "", "last_name": "", "email": "", "phone": "", "city": "", "state": ""},
  "education": [{"degree": "", "field_of_study": "", "institution": "", "graduation_year": ""}],
  "work_experience": [{"job_title": "", "company": "", "start_date": "", "end_date": "", "description": []}],
  "skills": []
}

Resume text:
`)
	sb.WriteString(text)
	sb.WriteString("\n\nJSON:")
	return sb.String()
}

// extractJSON pulls the JSON object out of a model reply that may carry
// markdown fences or prose, and scrubs control characters that break
// decoding.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)

	jsonStr := text
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		jsonStr = m[1]
	} else if m := bareJSONPattern.FindString(text); m != "" {
		jsonStr = m
	}

	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, jsonStr)
}
