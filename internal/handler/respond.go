package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cardboxapp/cardbox/internal/imagehost"
	"github.com/cardboxapp/cardbox/internal/repository"
	"github.com/cardboxapp/cardbox/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, details ...string) {
	body := map[string]any{"error": message}
	if len(details) > 0 && details[0] != "" {
		body["details"] = details[0]
	}
	respondJSON(w, status, body)
}

// respondServiceError translates service and repository errors into the HTTP
// error taxonomy: validation 400, unknown id 404, hosting failure 502,
// anything unexpected a generic 500 carrying the underlying message (never a
// stack trace).
func respondServiceError(w http.ResponseWriter, err error, action string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	var noImagesErr *service.NoImagesFoundError
	if errors.As(err, &noImagesErr) {
		respondError(w, http.StatusBadRequest, "No image files found in archive", noImagesErr.Details())
		return
	}

	if errors.Is(err, repository.ErrFolderNotFound) {
		respondError(w, http.StatusNotFound, "Folder not found")
		return
	}

	if errors.Is(err, repository.ErrFlashcardNotFound) {
		respondError(w, http.StatusNotFound, "Flashcard not found")
		return
	}

	if errors.Is(err, imagehost.ErrUpload) {
		slog.Error("image host upload failed", "error", err)
		respondError(w, http.StatusBadGateway, "Failed to upload image to hosting service", err.Error())
		return
	}

	slog.Error(action, "error", err)
	respondError(w, http.StatusInternalServerError, "Failed to "+action, err.Error())
}
