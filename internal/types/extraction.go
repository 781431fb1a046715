// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds extracted contact/profile information.
// Absent fields are empty strings, never reported as errors.
type ContactInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	State     string `json:"state"`
}

// Education represents a single education entry. Degree is one of the
// canonical categories (Bachelor, Master, Doctorate, Associate) or empty.
type Education struct {
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"field_of_study"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduation_year"`
}

// WorkExperience represents a single work experience entry. Dates are
// free-form tokens as they appeared in the document, not normalized.
type WorkExperience struct {
	JobTitle    string   `json:"job_title"`
	Company     string   `json:"company"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description []string `json:"description"`
}

// ExtractedResume is the complete extracted resume data. RawText is carried
// through for diagnostics and is never included in serialized responses.
type ExtractedResume struct {
	Contact        ContactInfo      `json:"contact"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Skills         []string         `json:"skills"`
	RawText        string           `json:"-"`
}

// NewExtractedResume returns a resume with all list fields initialized to
// empty slices so they serialize as [] rather than null.
func NewExtractedResume(rawText string) *ExtractedResume {
	return &ExtractedResume{
		Education:      []Education{},
		WorkExperience: []WorkExperience{},
		Skills:         []string{},
		RawText:        rawText,
	}
}
