package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "John Smith\n" +
	"john.smith@email.com | (555) 123-4567\n" +
	"San Francisco, CA\n\n" +
	"EDUCATION\n" +
	"Bachelor of Science in Computer Science\n" +
	"State University, 2020\n\n" +
	"EXPERIENCE\n" +
	"Software Engineer\n" +
	"Acme Corp | Jan 2020 - Dec 2022\n" +
	"• Built things\n\n" +
	"SKILLS\n" +
	"Python, Go, SQL"

func TestPipeline_FullResume(t *testing.T) {
	resume, warnings := NewPipeline().Extract(sampleResume)

	assert.Empty(t, warnings)
	assert.Equal(t, "John", resume.Contact.FirstName)
	assert.Equal(t, "Smith", resume.Contact.LastName)
	assert.Equal(t, "john.smith@email.com", resume.Contact.Email)
	assert.Equal(t, "(555) 123-4567", resume.Contact.Phone)
	assert.Equal(t, "San Francisco", resume.Contact.City)
	assert.Equal(t, "CA", resume.Contact.State)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "Bachelor", resume.Education[0].Degree)
	assert.Equal(t, "State University", resume.Education[0].Institution)

	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, "Software Engineer", resume.WorkExperience[0].JobTitle)
	assert.Equal(t, "Acme Corp", resume.WorkExperience[0].Company)

	assert.Equal(t, []string{"Python", "Go", "SQL"}, resume.Skills)
	assert.Equal(t, sampleResume, resume.RawText)
}

func TestPipeline_MixedCaseHeaders(t *testing.T) {
	text := "John Smith\njohn.smith@email.com\n(555) 123-4567\n" +
		"Education\nBachelor of Science in Computer Science\nState University, 2020\n" +
		"Experience\nSoftware Engineer\nAcme Corp | Jan 2020 - Dec 2022\n• Built things\n" +
		"Skills\nPython, Go, SQL"

	resume, warnings := NewPipeline().Extract(text)

	assert.Empty(t, warnings)
	assert.Equal(t, "John", resume.Contact.FirstName)
	require.Len(t, resume.Education, 1)
	assert.Equal(t, "Bachelor", resume.Education[0].Degree)
	assert.Equal(t, "2020", resume.Education[0].GraduationYear)
	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, []string{"Built things"}, resume.WorkExperience[0].Description)
	assert.Equal(t, []string{"Python", "Go", "SQL"}, resume.Skills)
}

func TestPipeline_ContactOnlyDocument(t *testing.T) {
	resume, warnings := NewPipeline().Extract("John Smith\njohn.smith@email.com")

	assert.Empty(t, warnings)
	assert.Equal(t, "John", resume.Contact.FirstName)
	assert.Equal(t, "Smith", resume.Contact.LastName)
	assert.Equal(t, "john.smith@email.com", resume.Contact.Email)
	assert.Empty(t, resume.Education)
	assert.Empty(t, resume.WorkExperience)
	assert.Empty(t, resume.Skills)
}

func TestPipeline_Deterministic(t *testing.T) {
	p := NewPipeline()

	first, _ := p.Extract(sampleResume)
	second, _ := p.Extract(sampleResume)

	assert.Equal(t, first, second)
}

func TestPipeline_EmptyText(t *testing.T) {
	resume, warnings := NewPipeline().Extract("")

	assert.Empty(t, warnings)
	assert.Equal(t, "", resume.Contact.FirstName)
	assert.NotNil(t, resume.Education)
	assert.Empty(t, resume.Education)
	assert.NotNil(t, resume.WorkExperience)
	assert.Empty(t, resume.WorkExperience)
	assert.NotNil(t, resume.Skills)
	assert.Empty(t, resume.Skills)
}

func TestPipeline_ExtractJSONExcludesRawText(t *testing.T) {
	data, warnings, err := NewPipeline().ExtractJSON(sampleResume)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Contains(t, string(data), `"first_name":"John"`)
	assert.NotContains(t, string(data), "raw_text")
}

func TestRunIsolated_RecoversPanic(t *testing.T) {
	var warnings []string

	v := runIsolated("demo", &warnings, func() int {
		panic("boom")
	})

	assert.Zero(t, v)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "demo extraction failed")
}

func TestRunIsolated_PassesThroughResult(t *testing.T) {
	var warnings []string

	v := runIsolated("demo", &warnings, func() []string {
		return []string{"ok"}
	})

	assert.Equal(t, []string{"ok"}, v)
	assert.Empty(t, warnings)
}
