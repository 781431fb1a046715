package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestEducationExtractor_DegreeThenInstitution(t *testing.T) {
	text := "EDUCATION\nBachelor of Science in Computer Science\nState University, 2020\n\nSKILLS\nPython"

	entries := NewEducationExtractor().Extract(text)

	require.Len(t, entries, 1)
	assert.Equal(t, types.Education{
		Degree:         "Bachelor",
		FieldOfStudy:   "Computer Science",
		Institution:    "State University",
		GraduationYear: "2020",
	}, entries[0])
}

func TestEducationExtractor_MultipleEntries(t *testing.T) {
	text := "EDUCATION\n" +
		"Master of Science in Data Science\n" +
		"Tech Institute, 2022\n" +
		"Bachelor of Arts in Psychology\n" +
		"City College, 2018\n\n" +
		"EXPERIENCE"

	entries := NewEducationExtractor().Extract(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "Master", entries[0].Degree)
	assert.Equal(t, "Data Science", entries[0].FieldOfStudy)
	assert.Equal(t, "Tech Institute", entries[0].Institution)
	assert.Equal(t, "2022", entries[0].GraduationYear)
	assert.Equal(t, "Bachelor", entries[1].Degree)
	assert.Equal(t, "Psychology", entries[1].FieldOfStudy)
	assert.Equal(t, "City College", entries[1].Institution)
	assert.Equal(t, "2018", entries[1].GraduationYear)
}

func TestEducationExtractor_MergedLineFillsPreviousEntry(t *testing.T) {
	// A flattened two-column layout: the institution and year on the merged
	// line belong to the entry above it, the degree opens a new one.
	text := "EDUCATION\n" +
		"Master of Science in Analytics\n" +
		"Georgia Institute of Technology | 2021 | Bachelor of Science in Industrial Engineering"

	entries := NewEducationExtractor().Extract(text)

	require.Len(t, entries, 2)
	assert.Equal(t, types.Education{
		Degree:         "Master",
		FieldOfStudy:   "Analytics",
		Institution:    "Georgia Institute of Technology",
		GraduationYear: "2021",
	}, entries[0])
	assert.Equal(t, types.Education{
		Degree:       "Bachelor",
		FieldOfStudy: "Industrial Engineering",
	}, entries[1])
}

func TestEducationExtractor_MBA(t *testing.T) {
	text := "EDUCATION\nMBA\nHarvard Business School, 2018"

	entries := NewEducationExtractor().Extract(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Master", entries[0].Degree)
	assert.Equal(t, "Harvard Business School", entries[0].Institution)
	assert.Equal(t, "2018", entries[0].GraduationYear)
}

func TestEducationExtractor_DegreeKeywordsMatchWholeWordsOnly(t *testing.T) {
	// "Berkeley" contains "be" but must not match the B.E. abbreviation.
	text := "EDUCATION\nAttended Berkeley"

	entries := NewEducationExtractor().Extract(text)

	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestEducationExtractor_NoSection(t *testing.T) {
	entries := NewEducationExtractor().Extract("Just some text about nothing in particular")

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractFieldOfStudy(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"Bachelor of Science in Computer Science", "Computer Science"},
		{"Master of Business Administration", "Business Administration"},
		{"B.S. Computer Science | 2019", "Computer Science"},
		{"Doctor of Philosophy", "Philosophy"},
		{"Bachelor of Science", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, extractFieldOfStudy(tc.line), "line: %s", tc.line)
	}
}

func TestCleanInstitutionName(t *testing.T) {
	assert.Equal(t, "State University", cleanInstitutionName("State University, 2020"))
	assert.Equal(t, "Tech Institute", cleanInstitutionName("Tech Institute | GPA: 3.8"))
	assert.Equal(t, "City College", cleanInstitutionName("City College | May 2019"))
}
