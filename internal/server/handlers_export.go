package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-builder/internal/printing"
)

// handlePreview renders the on-screen HTML projection of the current state.
func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	out, err := s.session.Preview()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "preview render failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// handleExportJSON streams the current document as a JSON download.
func (s *Server) handleExportJSON(w http.ResponseWriter, _ *http.Request) {
	data, filename, err := s.session.ExportJSON()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to serialize document")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleExportPDF renders the current state to PDF and streams the download.
// An engine failure surfaces as a failed export; the document state is
// preserved for retry.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	result, err := s.session.ExportPDF(r.Context())
	if err != nil {
		var failure *printing.RenderFailureError
		if errors.As(err, &failure) {
			s.errorResponse(w, http.StatusBadGateway, failure.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}
