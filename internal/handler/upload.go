package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/cardboxapp/cardbox/internal/imagehost"
	"github.com/cardboxapp/cardbox/internal/service"
)

type UploadHandler struct {
	host           imagehost.Host
	importService  *service.ImportService
	maxUploadSize  int64
	maxArchiveSize int64
}

func NewUploadHandler(host imagehost.Host, importService *service.ImportService, maxUploadSize, maxArchiveSize int64) *UploadHandler {
	return &UploadHandler{
		host:           host,
		importService:  importService,
		maxUploadSize:  maxUploadSize,
		maxArchiveSize: maxArchiveSize,
	}
}

// UploadImage forwards a single image to the hosting service and returns its
// public URL. Content validation is left to the host.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	err := r.ParseMultipartForm(h.maxUploadSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart request", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		respondServiceError(w, err, "read uploaded file")
		return
	}

	result, err := h.host.Upload(r.Context(), data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respondServiceError(w, err, "upload image")
		return
	}

	metadata := map[string]any{
		"name": header.Filename,
		"size": header.Size,
		"type": header.Header.Get("Content-Type"),
	}
	if result.Width > 0 {
		metadata["width"] = result.Width
	}
	if result.Height > 0 {
		metadata["height"] = result.Height
	}

	body := map[string]any{
		"success":  true,
		"imageUrl": result.URL,
		"metadata": metadata,
	}
	if result.ThumbURL != "" {
		body["thumbUrl"] = result.ThumbURL
	}

	respondJSON(w, http.StatusOK, body)
}

// UploadZip runs the archive import pipeline: each image in the zip becomes
// one flashcard, per-file failures are reported alongside the successes.
func (h *UploadHandler) UploadZip(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxArchiveSize)

	err := r.ParseMultipartForm(h.maxArchiveSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart request", err.Error())
		return
	}

	file, _, err := r.FormFile("zip")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No ZIP file provided")
		return
	}
	defer func() { _ = file.Close() }()

	archive, err := io.ReadAll(file)
	if err != nil {
		respondServiceError(w, err, "read uploaded archive")
		return
	}

	var folderID *int64
	folderParam := r.FormValue("folderId")
	if folderParam != "" && folderParam != "null" {
		parsed, err := strconv.ParseInt(folderParam, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid folderId")
			return
		}
		folderID = &parsed
	}

	summary, err := h.importService.ImportArchive(r.Context(), archive, folderID)
	if err != nil {
		respondServiceError(w, err, "process archive")
		return
	}

	body := map[string]any{
		"success":    true,
		"created":    summary.Created,
		"flashcards": summary.Flashcards,
	}
	if len(summary.Errors) > 0 {
		body["errors"] = summary.Errors
	}

	respondJSON(w, http.StatusCreated, body)
}
