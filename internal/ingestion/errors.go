package ingestion

import "fmt"

// ExtractionError reports a failure to read or extract text from a file.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extracting %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extracting %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
