// Package editing provides the pure mutation operations that map an edit
// event onto a new CVDocument value.
package editing

import "fmt"

// IndexOutOfRangeError represents an edit operation that targets a list
// position which no longer exists. The document is left unchanged; the stale
// operation is simply rejected.
type IndexOutOfRangeError struct {
	Section string
	Index   int
	Length  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: section %q has %d entries, got index %d", e.Section, e.Length, e.Index)
}

// UnknownSectionError represents an operation that names a section the
// document schema does not have.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section: %q", e.Section)
}

// EntryTypeError represents an append whose entry value does not have the
// concrete type the named section stores.
type EntryTypeError struct {
	Section string
	Entry   any
}

func (e *EntryTypeError) Error() string {
	return fmt.Sprintf("entry type %T does not match section %q", e.Entry, e.Section)
}

// UnknownFieldError represents an operation that names a field the targeted
// entry does not have.
type UnknownFieldError struct {
	Section string
	Field   string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q in section %q", e.Field, e.Section)
}
