// Package record provides functionality to load and shape-check resume record files.
package record

import "fmt"

// MalformedRecordError represents a resume record whose top-level shape is
// invalid: not a mapping, or a known section with the wrong kind. It is fatal;
// no output is produced for a malformed record.
type MalformedRecordError struct {
	Message string
	Cause   error
}

func (e *MalformedRecordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed record: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed record: %s", e.Message)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Cause
}
