package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/signature-studio/internal/export"
	"github.com/jonathan/signature-studio/internal/importing"
	"github.com/jonathan/signature-studio/internal/rendering"
	"github.com/jonathan/signature-studio/internal/types"
)

// RenderRequest represents the request body for /render
type RenderRequest struct {
	Record  types.ContactRecord `json:"record"`
	Options types.DesignOptions `json:"options"`
}

// RenderResponse represents the response for /render
type RenderResponse struct {
	HTML string `json:"html"`
}

// ImportRequest represents the request body for the /import endpoints
type ImportRequest struct {
	Text string `json:"text" validate:"required"`
}

// ImportResponse represents the response for the /import endpoints
type ImportResponse struct {
	Records []types.ContactRecord `json:"records"`
	Headers []string              `json:"headers,omitempty"`
	Count   int                   `json:"count"`
}

// BatchRequest represents the request body for the /batch endpoints
type BatchRequest struct {
	Records []types.ContactRecord `json:"records" validate:"required,min=1"`
	Options types.DesignOptions   `json:"options"`
}

// TemplateValidateResponse represents the response for /templates/validate
type TemplateValidateResponse struct {
	Valid        bool   `json:"valid"`
	Type         string `json:"type,omitempty"`
	TemplateName string `json:"template_name,omitempty"`
}

// handleRender renders one signature
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if !req.Record.HasName() {
		s.errorResponse(w, http.StatusBadRequest, "Record requires a name")
		return
	}

	s.jsonResponse(w, http.StatusOK, RenderResponse{
		HTML: rendering.Render(req.Record, req.Options),
	})
}

// handleImportCSV parses uploaded CSV text into records
func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	s.handleImport(w, r, importing.ParseCSV)
}

// handleImportTSV parses pasted spreadsheet data into records
func (s *Server) handleImportTSV(w http.ResponseWriter, r *http.Request) {
	s.handleImport(w, r, importing.ParseTSV)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request, parse func(string) (*types.ParseResult, error)) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	result, err := parse(req.Text)
	if err != nil {
		// Import error messages are user-facing; surface them verbatim.
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ImportResponse{
		Records: result.Records,
		Headers: result.Headers,
		Count:   len(result.Records),
	})
}

// handleImportVCard parses a vCard payload into records
func (s *Server) handleImportVCard(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	result, err := importing.ParseVCards(bytes.NewReader(body))
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ImportResponse{
		Records: result.Records,
		Count:   len(result.Records),
	})
}

// handleBatchArchive renders a batch and streams it back as a ZIP download
func (s *Server) handleBatchArchive(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBatch(w, r)
	if !ok {
		return
	}

	archive, err := export.BuildArchive(r.Context(), req.Records, req.Options)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build archive: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.ArchiveName(time.Now())))
	w.Header().Set("X-Batch-ID", uuid.NewString())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(archive); err != nil {
		// Client went away mid-download; nothing to recover.
		return
	}
}

// handleBatchPreview renders a batch into a standalone preview page
func (s *Server) handleBatchPreview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBatch(w, r)
	if !ok {
		return
	}

	page, err := export.PreviewPage(r.Context(), req.Records, req.Options)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build preview: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Batch-ID", uuid.NewString())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// decodeBatch decodes and validates a batch request, dropping nameless records.
func (s *Server) decodeBatch(w http.ResponseWriter, r *http.Request) (*BatchRequest, bool) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "At least one record is required")
		return nil, false
	}

	named := make([]types.ContactRecord, 0, len(req.Records))
	for _, record := range req.Records {
		if record.HasName() {
			named = append(named, record)
		}
	}
	if len(named) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Every record is missing a name")
		return nil, false
	}

	req.Records = named
	return &req, true
}

// handleTemplateValidate checks an uploaded company template
func (s *Server) handleTemplateValidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	tpl, err := types.ParseCompanyTemplate(body)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Invalid template")
		return
	}

	s.jsonResponse(w, http.StatusOK, TemplateValidateResponse{
		Valid:        true,
		Type:         tpl.Type,
		TemplateName: tpl.TemplateName,
	})
}

// handleTemplateCSV serves the CSV starter template
func (s *Server) handleTemplateCSV(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.CSVTemplateFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.CSVTemplate()))
}
