package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conformingDocument = `{
	"contact": {"first_name": "John", "last_name": "Smith", "email": "", "phone": "", "city": "", "state": ""},
	"education": [{"degree": "Bachelor", "field_of_study": "", "institution": "", "graduation_year": ""}],
	"work_experience": [{"job_title": "Engineer", "company": "Acme", "start_date": "", "end_date": "", "description": []}],
	"skills": ["Go"]
}`

func TestValidateExtractedResume_Conforming(t *testing.T) {
	assert.NoError(t, ValidateExtractedResume(conformingDocument))
}

func TestValidateExtractedResume_MissingRequiredKey(t *testing.T) {
	err := ValidateExtractedResume(`{"contact": {}, "education": [], "work_experience": []}`)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "skills")
}

func TestValidateExtractedResume_WrongType(t *testing.T) {
	doc := `{
		"contact": {},
		"education": [],
		"work_experience": [],
		"skills": "Go, Python"
	}`

	err := ValidateExtractedResume(doc)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "skills", ve.Errors[0].Field)
}

func TestValidateExtractedResume_UnknownField(t *testing.T) {
	doc := `{
		"contact": {"nickname": "JJ"},
		"education": [],
		"work_experience": [],
		"skills": []
	}`

	err := ValidateExtractedResume(doc)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateExtractedResume_InvalidJSON(t *testing.T) {
	err := ValidateExtractedResume("not json at all")

	var sle *SchemaLoadError
	require.ErrorAs(t, err, &sle)
}
