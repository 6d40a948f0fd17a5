// Package docx reads and writes DOCX (WordProcessingML) archives with run-level access.
package docx

import "fmt"

// UnresolvableTemplateError represents a template file that cannot be parsed
// as a valid DOCX document. It is fatal; missing placeholder values never
// produce this error.
type UnresolvableTemplateError struct {
	Message string
	Cause   error
}

func (e *UnresolvableTemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unresolvable template: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("unresolvable template: %s", e.Message)
}

func (e *UnresolvableTemplateError) Unwrap() error {
	return e.Cause
}
