package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/export"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/extract"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/observability"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/transcript"
)

// uploadField is the multipart form field carrying the transcript file.
const uploadField = "file"

// ExtractHandler handles transcript uploads.
type ExtractHandler struct {
	logger  *observability.Logger
	service *extract.Service
	opts    Options
}

// NewExtractHandler creates a new extract handler.
func NewExtractHandler(logger *observability.Logger, service *extract.Service, opts Options) *ExtractHandler {
	return &ExtractHandler{
		logger:  logger,
		service: service,
		opts:    opts,
	}
}

// ExtractResponseDTO is the JSON body returned by POST /api/v1/extract.
type ExtractResponseDTO struct {
	RunID   string                 `json:"run_id"`
	Count   int                    `json:"count"`
	Stats   domain.ProcessingStats `json:"stats"`
	Records []domain.Record        `json:"records"`
	Warning string                 `json:"warning,omitempty"`
}

// Extract handles POST /api/v1/extract.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	result, ok := h.run(w, r)
	if !ok {
		return
	}

	resp := ExtractResponseDTO{
		RunID:   result.RunID,
		Count:   len(result.Records),
		Stats:   result.Stats,
		Records: result.Records,
	}
	if result.Empty() {
		resp.Warning = domain.NoRecordsMessage
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Download handles POST /api/v1/extract/xlsx.
func (h *ExtractHandler) Download(w http.ResponseWriter, r *http.Request) {
	result, ok := h.run(w, r)
	if !ok {
		return
	}

	if result.Empty() {
		h.writeError(w, http.StatusUnprocessableEntity, domain.NoRecordsMessage, "")
		return
	}

	sink := export.NewXLSXWriter(h.opts.SheetName)
	var buf bytes.Buffer
	if err := sink.Write(&buf, result.Records); err != nil {
		h.logger.Error().Err(err).Str("run_id", result.RunID).Msg("Failed to build workbook")
		h.writeError(w, http.StatusInternalServerError, "export failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", sink.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": h.opts.FileName}))
	w.Header().Set("X-Run-ID", result.RunID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// run reads the uploaded transcript and extracts it. On failure the error
// response has already been written and ok is false.
func (h *ExtractHandler) run(w http.ResponseWriter, r *http.Request) (*extract.Result, bool) {
	body, err := h.openTranscript(w, r)
	if err != nil {
		h.writeUploadError(w, err)
		return nil, false
	}
	defer body.Close()

	lines, err := transcript.Read(body)
	if err != nil {
		h.writeUploadError(w, err)
		return nil, false
	}

	result, err := h.service.ProcessLines(r.Context(), lines)
	if err != nil {
		h.writeError(w, http.StatusServiceUnavailable, "extraction aborted", err.Error())
		return nil, false
	}
	return result, true
}

// openTranscript returns the transcript stream: the "file" part of a
// multipart upload, or the raw request body otherwise.
func (h *ExtractHandler) openTranscript(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, nil
	}

	if err := r.ParseMultipartForm(h.opts.MaxUploadBytes); err != nil {
		return nil, err
	}
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, domain.ValidationError(fmt.Sprintf("missing %q upload field", uploadField), err)
	}
	if err := transcript.ValidateName(header.Filename); err != nil {
		file.Close()
		return nil, err
	}
	return file, nil
}

func (h *ExtractHandler) writeUploadError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		h.writeError(w, http.StatusRequestEntityTooLarge, "transcript too large",
			fmt.Sprintf("limit is %d bytes", tooLarge.Limit))
	case domain.IsType(err, domain.ErrorTypeValidation):
		h.writeError(w, http.StatusBadRequest, "invalid upload", err.Error())
	default:
		h.logger.Error().Err(err).Msg("Failed to read transcript")
		h.writeError(w, http.StatusBadRequest, "failed to read transcript", err.Error())
	}
}

func (h *ExtractHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *ExtractHandler) writeError(w http.ResponseWriter, status int, message, detail string) {
	resp := map[string]string{
		"error":   message,
		"message": message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	h.writeJSON(w, status, resp)
}
