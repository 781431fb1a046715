package extract

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-parser/internal/types"
)

// Pipeline runs the four field extractors over one text input and assembles
// the result. Extractor failures are isolated: a panic in one extractor
// leaves its field at the zero value and surfaces as a warning, and the
// remaining extractors still run.
type Pipeline struct {
	contact    *ContactExtractor
	education  *EducationExtractor
	experience *ExperienceExtractor
	skills     *SkillsExtractor
}

// NewPipeline creates a pipeline with all four extractors.
func NewPipeline() *Pipeline {
	return &Pipeline{
		contact:    NewContactExtractor(),
		education:  NewEducationExtractor(),
		experience: NewExperienceExtractor(),
		skills:     NewSkillsExtractor(),
	}
}

// Extract runs every extractor over the text and returns the assembled
// resume plus warnings for any extractor that failed. The call itself never
// fails, and running it twice on the same text yields the same result.
func (p *Pipeline) Extract(text string) (*types.ExtractedResume, []string) {
	resume := types.NewExtractedResume(text)
	var warnings []string

	resume.Contact = runIsolated("contact", &warnings, func() types.ContactInfo {
		return p.contact.Extract(text)
	})
	resume.Education = runIsolated("education", &warnings, func() []types.Education {
		return p.education.Extract(text)
	})
	resume.WorkExperience = runIsolated("experience", &warnings, func() []types.WorkExperience {
		return p.experience.Extract(text)
	})
	resume.Skills = runIsolated("skills", &warnings, func() []string {
		return p.skills.Extract(text)
	})

	// Slice fields stay non-nil even when their extractor failed.
	if resume.Education == nil {
		resume.Education = []types.Education{}
	}
	if resume.WorkExperience == nil {
		resume.WorkExperience = []types.WorkExperience{}
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}

	return resume, warnings
}

// ExtractJSON runs Extract and serializes the result, excluding the raw text.
func (p *Pipeline) ExtractJSON(text string) ([]byte, []string, error) {
	resume, warnings := p.Extract(text)
	data, err := json.Marshal(resume)
	if err != nil {
		return nil, warnings, fmt.Errorf("marshaling extracted resume: %w", err)
	}
	return data, warnings, nil
}

// runIsolated invokes fn, converting a panic into a warning and the zero
// value of T.
func runIsolated[T any](name string, warnings *[]string, fn func() T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("extractor", name).Interface("panic", r).Msg("extractor failed")
			*warnings = append(*warnings, fmt.Sprintf("%s extraction failed: %v", name, r))
		}
	}()
	return fn()
}
