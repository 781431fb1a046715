package extract

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// skillCategoryLabels are grouping labels resumes use to organize a skills
// list. They are structure, not skills, and get dropped from the output.
var skillCategoryLabels = []string{
	"languages", "frameworks", "databases", "tools", "technologies",
	"cloud", "devops", "frontend", "backend", "analytics", "marketing",
	"digital", "soft skills", "programming", "technical", "professional",
}

// discardSkills are values that survive splitting but are category labels or
// filler rather than skills.
var discardSkills = map[string]bool{
	"languages": true, "frameworks": true, "databases": true, "tools": true,
	"technologies": true, "cloud": true, "devops": true, "frontend": true,
	"backend": true, "other": true, "analytics": true, "marketing": true,
	"digital marketing": true, "analytics & tools": true, "soft skills": true,
	"programming": true, "technical": true, "professional": true,
}

var (
	skillSplitPattern  = regexp.MustCompile(`[,;|•·]|\s{2,}`)
	parentheticalPart  = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	trailingDigitsPart = regexp.MustCompile(`\s+\d+$`)
)

// SkillsExtractor recovers a flat, deduplicated skill list from the skills
// section of resume text.
type SkillsExtractor struct{}

// NewSkillsExtractor creates a skills extractor.
func NewSkillsExtractor() *SkillsExtractor {
	return &SkillsExtractor{}
}

// Extract returns the skills found in the text, in first-seen order. A
// missing section yields an empty list.
func (e *SkillsExtractor) Extract(text string) []string {
	section := findSection(splitLines(text), sectionVocabulary{
		headers: SkillsHeaders,
		terminators: joinVocab(
			EducationHeaders, ExperienceHeaders, ProjectsHeaders, SummaryHeaders,
		),
	}, sectionOptions{splitMergedStart: true, skipColonContent: true})
	if section == nil {
		log.Warn().Msg("no skills section found")
		return []string{}
	}

	skills := e.parseSkills(section)
	log.Debug().Int("count", len(skills)).Msg("extracted skills")
	return skills
}

// parseSkills flattens the section lines into individual skills. Category
// labels, whether inline ("Languages: Python, Go") or on their own line above
// a comma-separated list, are stripped.
func (e *SkillsExtractor) parseSkills(lines []string) []string {
	skills := []string{}
	seen := map[string]bool{}

	add := func(raw string) {
		skill := cleanSkill(raw)
		if len(skill) < 2 {
			return
		}
		lower := strings.ToLower(skill)
		if discardSkills[lower] || seen[lower] {
			return
		}
		seen[lower] = true
		skills = append(skills, skill)
	}

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if containsAny(strings.ToLower(line), SkillsHeaders) && len(strings.Fields(line)) <= 3 {
			continue
		}

		// "Category: item, item" keeps only the right-hand side.
		if idx := strings.Index(line, ":"); idx >= 0 {
			line = strings.TrimSpace(line[idx+1:])
			if line == "" {
				continue
			}
		}

		if isCategoryHeaderLine(line, lines, i) {
			continue
		}

		line = strings.TrimLeft(line, "•-*· ")

		for _, part := range skillSplitPattern.Split(line, -1) {
			add(part)
		}
	}

	return skills
}

// isCategoryHeaderLine reports whether the line is a bare category label
// sitting above its comma-separated skill list.
func isCategoryHeaderLine(line string, lines []string, i int) bool {
	if strings.Contains(line, ",") || len(strings.Fields(line)) > 4 {
		return false
	}
	if !containsAny(strings.ToLower(line), skillCategoryLabels) {
		return false
	}

	// Only a header when the next non-empty line reads like a skill list.
	for j := i + 1; j < len(lines); j++ {
		next := strings.TrimSpace(lines[j])
		if next == "" {
			continue
		}
		return strings.Count(next, ",") >= 1
	}
	return false
}

// cleanSkill normalizes one raw skill token.
func cleanSkill(raw string) string {
	skill := strings.Trim(strings.TrimSpace(raw), ".,;:-•·")
	skill = parentheticalPart.ReplaceAllString(skill, " ")
	skill = trailingDigitsPart.ReplaceAllString(skill, "")
	return strings.TrimSpace(skill)
}
