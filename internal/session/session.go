// Package session holds the in-memory state of one editing session: the
// current document and the selected template id. All other components are
// pure; this is the only stateful piece.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/editing"
	"github.com/jonathan/cv-builder/internal/printing"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/templates"
	"github.com/jonathan/cv-builder/internal/types"
)

// JSONFilename is the suggested filename for JSON exports.
const JSONFilename = "cv.json"

// PDFGenerator produces PDF bytes from a document and a template id.
// Satisfied by printing.Generator; tests substitute their own.
type PDFGenerator interface {
	Generate(ctx context.Context, doc *types.CVDocument, templateID string, registry *templates.Registry) ([]byte, error)
}

// ExportResult is the completion signal of a PDF export.
type ExportResult struct {
	ID       uuid.UUID
	Filename string
	Data     []byte
	Duration time.Duration
	Err      error
}

// Session owns the (document, selected template id) pair for the lifetime of
// the process. Edits swap the document atomically: a renderer invoked after a
// replacement sees only the new value, never a partially-updated one.
type Session struct {
	mu         sync.RWMutex
	doc        *types.CVDocument
	templateID string

	registry  *templates.Registry
	generator PDFGenerator
	exports   singleflight.Group
}

// New creates a session seeded with the built-in sample document and the
// first registered template selected.
func New(registry *templates.Registry, generator PDFGenerator) *Session {
	return &Session{
		doc:        document.Sample(),
		templateID: registry.List()[0].ID,
		registry:   registry,
		generator:  generator,
	}
}

// Document returns the current document snapshot. Snapshots are immutable;
// callers may read them without coordination.
func (s *Session) Document() *types.CVDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Replace swaps in an imported document wholesale.
func (s *Session) Replace(doc *types.CVDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}

// Import decodes a JSON payload and, only on success, replaces the current
// document. A malformed payload leaves the session unchanged.
func (s *Session) Import(data []byte) error {
	doc, err := document.Decode(data)
	if err != nil {
		return err
	}
	s.Replace(doc)
	return nil
}

// TemplateID returns the currently selected template id.
func (s *Session) TemplateID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templateID
}

// SelectTemplate selects a template by id. An unknown id resolves to the
// registry default, so selection never fails.
func (s *Session) SelectTemplate(id string) {
	resolved := s.registry.Resolve(id).ID
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templateID = resolved
}

// Templates lists the registry entries for selection UIs.
func (s *Session) Templates() []templates.Template {
	return s.registry.List()
}

// SetBasicsField applies a basics edit to the current document.
func (s *Session) SetBasicsField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := editing.SetBasicsField(s.doc, field, value)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// AppendEntry appends an entry to a section of the current document. A nil
// entry appends the blank shape.
func (s *Session) AppendEntry(section string, entry any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := editing.AppendEntry(s.doc, section, entry)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// UpdateEntryField applies a single-field entry edit to the current document.
// A stale index is rejected and the document is left unchanged.
func (s *Session) UpdateEntryField(section string, index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := editing.UpdateEntryField(s.doc, section, index, field, value)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// RemoveEntry removes an entry from a section of the current document.
func (s *Session) RemoveEntry(section string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := editing.RemoveEntry(s.doc, section, index)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// Preview renders the on-screen HTML projection of the current state.
func (s *Session) Preview() ([]byte, error) {
	doc, templateID := s.snapshot()
	return rendering.RenderHTML(doc, templateID, s.registry)
}

// ExportJSON serializes the current document, returning the bytes and the
// suggested filename.
func (s *Session) ExportJSON() ([]byte, string, error) {
	doc, _ := s.snapshot()
	data, err := document.Encode(doc)
	if err != nil {
		return nil, "", err
	}
	return data, JSONFilename, nil
}

// ExportPDF renders the current state to PDF. Concurrent exports of the same
// (document, template) snapshot share a single engine run; a second request
// for a different snapshot runs independently.
func (s *Session) ExportPDF(ctx context.Context) (ExportResult, error) {
	doc, templateID := s.snapshot()

	key := fmt.Sprintf("%p/%s", doc, templateID)
	started := time.Now()
	v, err, _ := s.exports.Do(key, func() (any, error) {
		return s.generator.Generate(ctx, doc, templateID, s.registry)
	})
	if err != nil {
		return ExportResult{}, err
	}

	return ExportResult{
		ID:       uuid.New(),
		Filename: printing.DefaultFilename(doc.Basics.Name),
		Data:     v.([]byte),
		Duration: time.Since(started),
	}, nil
}

// ExportPDFAsync starts a PDF export and reports completion or failure on the
// returned channel. The export runs to completion regardless of the caller;
// cancellation is not supported once started.
func (s *Session) ExportPDFAsync(ctx context.Context) (uuid.UUID, <-chan ExportResult) {
	id := uuid.New()
	done := make(chan ExportResult, 1)

	go func() {
		result, err := s.ExportPDF(ctx)
		if err != nil {
			done <- ExportResult{ID: id, Err: err}
			return
		}
		result.ID = id
		done <- result
	}()

	return id, done
}

// snapshot reads the (document, template id) pair atomically.
func (s *Session) snapshot() (*types.CVDocument, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, s.templateID
}
