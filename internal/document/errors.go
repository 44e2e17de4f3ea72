// Package document provides the CVDocument factory, sample data, and the
// JSON codec used for import and export.
package document

import "fmt"

// MalformedDocumentError represents an import payload that fails the
// structural shape check. The current document is never replaced when
// decoding fails.
type MalformedDocumentError struct {
	Message string
	Cause   error
}

func (e *MalformedDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed document: %s", e.Message)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Cause
}
