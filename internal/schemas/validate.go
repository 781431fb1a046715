// Package schemas validates structured extraction output against the resume
// JSON Schema. The schema guards the LLM extraction path, whose output shape
// is not enforced by the type system the way the heuristic pipeline's is.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ExtractedResumeSchema is the JSON Schema for extraction output. Every field
// is optional except the top-level structure: extraction degrades to empty
// values, never to missing keys.
const ExtractedResumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "contact": {
      "type": "object",
      "properties": {
        "first_name": {"type": "string"},
        "last_name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "city": {"type": "string"},
        "state": {"type": "string"}
      },
      "additionalProperties": false
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": "string"},
          "field_of_study": {"type": "string"},
          "institution": {"type": "string"},
          "graduation_year": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "work_experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "job_title": {"type": "string"},
          "company": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"},
          "description": {"type": "array", "items": {"type": "string"}}
        },
        "additionalProperties": false
      }
    },
    "skills": {
      "type": "array",
      "items": {"type": "string"}
    }
  },
  "required": ["contact", "education", "work_experience", "skills"],
  "additionalProperties": false
}`

// ValidationError reports schema violations with their field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at one field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports a failure to parse the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateExtractedResume validates a JSON document against the extracted
// resume schema. A nil return means the document conforms.
func ValidateExtractedResume(jsonStr string) error {
	schemaLoader := gojsonschema.NewStringLoader(ExtractedResumeSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonStr)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "schema validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
