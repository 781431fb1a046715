package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillsExtractor_SimpleList(t *testing.T) {
	text := "SKILLS\nPython, Go, SQL\n\nEDUCATION\nState University"

	skills := NewSkillsExtractor().Extract(text)

	assert.Equal(t, []string{"Python", "Go", "SQL"}, skills)
}

func TestSkillsExtractor_InlineCategories(t *testing.T) {
	text := "TECHNICAL SKILLS\nLanguages: Python, JavaScript\nFrameworks: React, Django\nEXPERIENCE"

	skills := NewSkillsExtractor().Extract(text)

	assert.Equal(t, []string{"Python", "JavaScript", "React", "Django"}, skills)
}

func TestSkillsExtractor_CategoryHeaderLines(t *testing.T) {
	text := "SKILLS\nLanguages\nPython, Ruby\nTools\nDocker, Git\n"

	skills := NewSkillsExtractor().Extract(text)

	assert.Equal(t, []string{"Python", "Ruby", "Docker", "Git"}, skills)
}

func TestSkillsExtractor_DedupAndCleanup(t *testing.T) {
	text := "SKILLS\n• Python (3 years); Docker, python\nAWS 2\n"

	skills := NewSkillsExtractor().Extract(text)

	assert.Equal(t, []string{"Python", "Docker", "AWS"}, skills)
}

func TestSkillsExtractor_MergedHeaderLine(t *testing.T) {
	text := "Deans List GPA: 3.7 SKILLS\nGo, Rust\nEDUCATION"

	skills := NewSkillsExtractor().Extract(text)

	assert.Equal(t, []string{"Go", "Rust"}, skills)
}

func TestSkillsExtractor_NoSection(t *testing.T) {
	skills := NewSkillsExtractor().Extract("Nothing here worth extracting")

	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestCleanSkill(t *testing.T) {
	assert.Equal(t, "Python", cleanSkill("  Python (3 years)  "))
	assert.Equal(t, "AWS", cleanSkill("AWS 2"))
	assert.Equal(t, "Kubernetes", cleanSkill("Kubernetes."))
	assert.Equal(t, "", cleanSkill("•"))
}

func TestIsCategoryHeaderLine(t *testing.T) {
	lines := []string{"Languages", "Python, Ruby"}
	assert.True(t, isCategoryHeaderLine("Languages", lines, 0))

	noList := []string{"Languages", "Python"}
	assert.False(t, isCategoryHeaderLine("Languages", noList, 0))
}
