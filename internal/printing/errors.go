// Package printing provides the print projection of a CVDocument: an A4
// print document and its PDF rendering through a headless browser engine.
package printing

import "fmt"

// RenderFailureError represents a failure of the underlying PDF engine. The
// caller's document state is untouched and the export can be retried.
type RenderFailureError struct {
	Message string
	Cause   error
}

func (e *RenderFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failure: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render failure: %s", e.Message)
}

func (e *RenderFailureError) Unwrap() error {
	return e.Cause
}
