package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/editing"
)

// maxImportSize bounds the import payload to keep a stray upload from
// exhausting memory.
const maxImportSize = 4 << 20

// fieldEdit is the request body shape for single-field mutations.
type fieldEdit struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// handleGetDocument returns the current document as export-format JSON.
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	data, _, err := s.session.ExportJSON()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to serialize document")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleImportDocument replaces the session document with an imported JSON
// payload. A malformed payload is rejected and the current document is kept.
func (s *Server) handleImportDocument(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := s.session.Import(data); err != nil {
		var malformed *document.MalformedDocumentError
		if errors.As(err, &malformed) {
			s.errorResponse(w, http.StatusBadRequest, malformed.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "import failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "imported"})
}

// handleSetBasicsField replaces one scalar field under basics.
func (s *Server) handleSetBasicsField(w http.ResponseWriter, r *http.Request) {
	var edit fieldEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.session.SetBasicsField(edit.Field, edit.Value); err != nil {
		s.editErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleAppendEntry appends a blank entry to the named section.
func (s *Server) handleAppendEntry(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")

	if err := s.session.AppendEntry(section, nil); err != nil {
		s.editErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "appended"})
}

// handleUpdateEntryField replaces one scalar field of the entry at the given
// index. A stale index returns 409 and leaves the document unchanged.
func (s *Server) handleUpdateEntryField(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	var edit fieldEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.session.UpdateEntryField(section, index, edit.Field, edit.Value); err != nil {
		s.editErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleRemoveEntry removes the entry at the given index.
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	if err := s.session.RemoveEntry(section, index); err != nil {
		s.editErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "removed"})
}

// handleListTemplates returns the registry entries in declaration order,
// with the currently selected id.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	type templateInfo struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Preview     string `json:"preview"`
		Description string `json:"description"`
	}

	list := s.session.Templates()
	infos := make([]templateInfo, 0, len(list))
	for _, t := range list {
		infos = append(infos, templateInfo{
			ID:          t.ID,
			Name:        t.Name,
			Preview:     t.Preview,
			Description: t.Description,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": infos,
		"selected":  s.session.TemplateID(),
	})
}

// handleSelectTemplate selects a template. Unknown ids resolve to the
// default; selection never fails.
func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.session.SelectTemplate(body.ID)
	s.jsonResponse(w, http.StatusOK, map[string]string{"selected": s.session.TemplateID()})
}

// editErrorResponse maps edit projection errors to HTTP statuses. Stale
// indexes are a conflict with the current list state, not a bad request.
func (s *Server) editErrorResponse(w http.ResponseWriter, err error) {
	var outOfRange *editing.IndexOutOfRangeError
	if errors.As(err, &outOfRange) {
		s.errorResponse(w, http.StatusConflict, outOfRange.Error())
		return
	}

	var unknownSection *editing.UnknownSectionError
	var unknownField *editing.UnknownFieldError
	var entryType *editing.EntryTypeError
	if errors.As(err, &unknownSection) || errors.As(err, &unknownField) || errors.As(err, &entryType) {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.errorResponse(w, http.StatusInternalServerError, "edit failed")
}
