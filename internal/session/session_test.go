package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/editing"
	"github.com/jonathan/cv-builder/internal/printing"
	"github.com/jonathan/cv-builder/internal/templates"
	"github.com/jonathan/cv-builder/internal/types"
)

// fakeGenerator counts engine runs and returns canned bytes without a
// browser.
type fakeGenerator struct {
	calls int32
	delay time.Duration
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, _ *types.CVDocument, _ string, _ *templates.Registry) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func newTestSession(gen *fakeGenerator) *Session {
	return New(templates.Builtin(), gen)
}

func TestNew_SeedsSampleAndFirstTemplate(t *testing.T) {
	s := newTestSession(&fakeGenerator{})

	assert.Equal(t, "John Doe", s.Document().Basics.Name)
	assert.Equal(t, "modern", s.TemplateID())
}

func TestSelectTemplate_UnknownFallsBack(t *testing.T) {
	s := newTestSession(&fakeGenerator{})

	s.SelectTemplate("classic")
	assert.Equal(t, "classic", s.TemplateID())

	s.SelectTemplate("nonexistent-id")
	assert.Equal(t, "modern", s.TemplateID())
}

func TestEdits_SwapDocumentAtomically(t *testing.T) {
	s := newTestSession(&fakeGenerator{})
	before := s.Document()

	require.NoError(t, s.SetBasicsField("name", "Jane Doe"))

	after := s.Document()
	assert.NotSame(t, before, after)
	assert.Equal(t, "John Doe", before.Basics.Name)
	assert.Equal(t, "Jane Doe", after.Basics.Name)
}

func TestFailedEdit_LeavesDocumentUnchanged(t *testing.T) {
	s := newTestSession(&fakeGenerator{})
	before := s.Document()

	err := s.UpdateEntryField("work", 99, "company", "Ghost Corp")
	require.Error(t, err)

	var outOfRange *editing.IndexOutOfRangeError
	assert.True(t, errors.As(err, &outOfRange))
	assert.Same(t, before, s.Document())
}

func TestImport_MalformedLeavesStateIntact(t *testing.T) {
	s := newTestSession(&fakeGenerator{})
	before := s.Document()

	err := s.Import([]byte(`{"work": "not-a-list"}`))
	require.Error(t, err)

	var malformed *document.MalformedDocumentError
	assert.True(t, errors.As(err, &malformed))
	assert.Same(t, before, s.Document())
}

func TestImport_ReplacesDocument(t *testing.T) {
	s := newTestSession(&fakeGenerator{})

	require.NoError(t, s.Import([]byte(`{"basics":{"name":"Jane Doe"}}`)))
	assert.Equal(t, "Jane Doe", s.Document().Basics.Name)
	assert.Empty(t, s.Document().Work)
}

func TestExportJSON_RoundTrips(t *testing.T) {
	s := newTestSession(&fakeGenerator{})

	data, filename, err := s.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, JSONFilename, filename)

	decoded, err := document.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, s.Document(), decoded)
}

func TestExportPDF_Result(t *testing.T) {
	gen := &fakeGenerator{}
	s := newTestSession(gen)

	result, err := s.ExportPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "John_Doe_cv.pdf", result.Filename)
	assert.Equal(t, []byte("%PDF-fake"), result.Data)
	assert.Equal(t, int32(1), atomic.LoadInt32(&gen.calls))
}

func TestExportPDF_EngineFailureSurfaces(t *testing.T) {
	gen := &fakeGenerator{err: &printing.RenderFailureError{Message: "engine down"}}
	s := newTestSession(gen)
	before := s.Document()

	_, err := s.ExportPDF(context.Background())
	require.Error(t, err)

	var failure *printing.RenderFailureError
	assert.True(t, errors.As(err, &failure))
	assert.Same(t, before, s.Document())
}

func TestExportPDF_ConcurrentIdenticalRequestsShareOneRun(t *testing.T) {
	gen := &fakeGenerator{delay: 50 * time.Millisecond}
	s := newTestSession(gen)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ExportPDF(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&gen.calls))
}

func TestExportPDFAsync_ReportsCompletion(t *testing.T) {
	s := newTestSession(&fakeGenerator{})

	id, done := s.ExportPDFAsync(context.Background())

	select {
	case result := <-done:
		require.NoError(t, result.Err)
		assert.Equal(t, id, result.ID)
		assert.Equal(t, []byte("%PDF-fake"), result.Data)
	case <-time.After(time.Second):
		t.Fatal("export did not complete")
	}
}

func TestPreview_ReflectsEdits(t *testing.T) {
	s := newTestSession(&fakeGenerator{})
	require.NoError(t, s.SetBasicsField("name", "Jane Doe"))

	out, err := s.Preview()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Jane Doe")
	assert.NotContains(t, string(out), "John Doe")
}
