package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

const validResumeText = "John Smith\n" +
	"john.smith@email.com | (555) 123-4567\n\n" +
	"EDUCATION\n" +
	"Bachelor of Science in Computer Science\n" +
	"State University, 2020\n\n" +
	"EXPERIENCE\n" +
	"Software Engineer\n" +
	"Acme Corp | Jan 2020 - Dec 2022\n\n" +
	"SKILLS\n" +
	"Python, Go, SQL"

func TestValidate_ValidResume(t *testing.T) {
	valid, reason := NewValidator().Validate(validResumeText)

	assert.True(t, valid)
	assert.Empty(t, reason)
}

func TestValidate_TooShort(t *testing.T) {
	valid, reason := NewValidator().Validate("too short")

	assert.False(t, valid)
	assert.Contains(t, reason, "too short")
}

func TestValidate_MissingSectionKeywords(t *testing.T) {
	// Long enough and has an email, but reads like a letter, not a resume.
	text := "This document is a letter to a friend describing a pleasant holiday " +
		"at the seaside with plenty of sunshine and good food. contact@example.com"

	valid, reason := NewValidator().Validate(text)

	assert.False(t, valid)
	assert.Contains(t, reason, "resume sections")
}

func TestValidate_MissingContactInfo(t *testing.T) {
	text := "EDUCATION\n" +
		"Bachelor of Science at State University finishing in the year twenty twenty\n" +
		"EXPERIENCE\n" +
		"Software Engineer at Acme for several years building many things"

	valid, reason := NewValidator().Validate(text)

	assert.False(t, valid)
	assert.Contains(t, reason, "contact information")
}

func TestValidate_LinkedInAloneIsNotContact(t *testing.T) {
	text := "EDUCATION\n" +
		"Bachelor of Science at State University finishing in the year twenty twenty\n" +
		"EXPERIENCE\n" +
		"Software Engineer at Acme for several years\n" +
		"linkedin.com/in/john-smith"

	valid, reason := NewValidator().Validate(text)

	assert.False(t, valid)
	assert.Contains(t, reason, "contact information")
}

func TestHasSectionsButNoData_AllSectionsEmpty(t *testing.T) {
	text := "EDUCATION\nEXPERIENCE\nSKILLS"
	resume := types.NewExtractedResume(text)

	failed, reason := NewValidator().HasSectionsButNoData(text, resume)

	assert.True(t, failed)
	assert.Contains(t, reason, "Education")
	assert.Contains(t, reason, "Work Experience")
	assert.Contains(t, reason, "Skills")
}

func TestHasSectionsButNoData_TwoEmptySectionsSuffice(t *testing.T) {
	text := "EDUCATION\nEXPERIENCE\nSKILLS"
	resume := types.NewExtractedResume(text)
	resume.Skills = []string{"Go"}

	failed, reason := NewValidator().HasSectionsButNoData(text, resume)

	assert.True(t, failed)
	assert.Contains(t, reason, "Education")
	assert.NotContains(t, reason, "Skills")
}

func TestHasSectionsButNoData_OneEmptySectionPasses(t *testing.T) {
	text := "EDUCATION\nEXPERIENCE\nSKILLS"
	resume := types.NewExtractedResume(text)
	resume.Education = []types.Education{{Degree: "Bachelor"}}
	resume.Skills = []string{"Go"}

	failed, reason := NewValidator().HasSectionsButNoData(text, resume)

	assert.False(t, failed)
	assert.Empty(t, reason)
}

func TestHasSectionsButNoData_NoSectionsAdvertised(t *testing.T) {
	text := "Just a short note"
	resume := types.NewExtractedResume(text)

	failed, _ := NewValidator().HasSectionsButNoData(text, resume)

	assert.False(t, failed)
}
