package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathan/cv-builder/internal/types"
)

// sectionKinds maps each known top-level key to the JSON container type it
// must hold when present. basics is an object; every section list is an array.
var sectionKinds = map[string]byte{
	"basics":         '{',
	"work":           '[',
	"education":      '[',
	"certifications": '[',
	"skills":         '[',
	"languages":      '[',
	"projects":       '[',
	"publications":   '[',
	"awards":         '[',
	"volunteer":      '[',
}

// Decode parses an imported JSON payload into a CVDocument.
//
// The payload must be a JSON object. A known top-level key that is present
// but holds the wrong container type fails with MalformedDocumentError.
// Missing keys and missing leaf strings are legal and coerce to empty values;
// every list field of the result is non-nil.
func Decode(data []byte) (*types.CVDocument, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedDocumentError{
			Message: "payload is not a JSON object",
			Cause:   err,
		}
	}
	if raw == nil {
		return nil, &MalformedDocumentError{Message: "payload is not a JSON object"}
	}

	for key, kind := range sectionKinds {
		msg, ok := raw[key]
		if !ok {
			continue
		}
		if err := checkContainer(key, kind, msg); err != nil {
			return nil, err
		}
	}

	var doc types.CVDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{
			Message: "payload does not match the document shape",
			Cause:   err,
		}
	}

	Normalize(&doc)
	return &doc, nil
}

// checkContainer verifies that a raw top-level value starts with the expected
// container delimiter. null is treated as absent.
func checkContainer(key string, kind byte, msg json.RawMessage) error {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] != kind {
		want := "an array"
		if kind == '{' {
			want = "an object"
		}
		return &MalformedDocumentError{
			Message: fmt.Sprintf("field %q must be %s", key, want),
		}
	}
	return nil
}

// Encode serializes a document to indented JSON. Encode is the structural
// inverse of Decode: Decode(Encode(d)) yields a document equal to d,
// including empty lists staying empty lists.
func Encode(doc *types.CVDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
