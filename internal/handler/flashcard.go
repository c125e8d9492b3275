package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cardboxapp/cardbox/internal/repository"
	"github.com/cardboxapp/cardbox/internal/service"
)

type FlashcardHandler struct {
	cardService *service.FlashcardService
}

func NewFlashcardHandler(cardService *service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{
		cardService: cardService,
	}
}

// parseFilter builds the listing filter from query parameters. Empty and
// "null" folderId values mean "no folder filter", matching the review UI
// which sends either a real id or nothing.
func parseFilter(r *http.Request) (repository.Filter, error) {
	filter := repository.Filter{}
	query := r.URL.Query()

	folderID := query.Get("folderId")
	if folderID != "" && folderID != "null" {
		id, err := strconv.ParseInt(folderID, 10, 64)
		if err != nil {
			return filter, service.NewValidationError("Invalid folderId filter")
		}
		filter.FolderID = &id
	}

	filter.Starred = query.Get("starred") == "true"

	date := query.Get("date")
	if date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return filter, service.NewValidationError("Invalid date filter, expected YYYY-MM-DD")
		}
		filter.VisitedOn = &day
	}

	return filter, nil
}

func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		respondServiceError(w, err, "fetch flashcards")
		return
	}

	cards, err := h.cardService.Flashcards(filter)
	if err != nil {
		respondServiceError(w, err, "fetch flashcards")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "flashcards": cards})
}

func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ImageURL string  `json:"imageUrl"`
		Notes    string  `json:"notes"`
		FolderID *int64  `json:"folderId"`
		ThumbURL *string `json:"thumbUrl"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.ImageURL == "" {
		respondError(w, http.StatusBadRequest, "imageUrl is required")
		return
	}

	card, err := h.cardService.Create(body.ImageURL, body.Notes, body.FolderID, body.ThumbURL)
	if err != nil {
		respondServiceError(w, err, "create flashcard")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "flashcard": card})
}

func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flashcard ID")
		return
	}

	card, err := h.cardService.ByID(id)
	if err != nil {
		respondServiceError(w, err, "fetch flashcard")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "flashcard": card})
}

var jsonNull = []byte("null")

func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flashcard ID")
		return
	}

	// folderId is tri-state: absent (leave alone), null (unfile the card),
	// or a folder id. RawMessage keeps the three cases apart.
	var body struct {
		Notes    *string         `json:"notes"`
		FolderID json.RawMessage `json:"folderId"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var folderID **int64
	if body.FolderID != nil {
		if bytes.Equal(bytes.TrimSpace(body.FolderID), jsonNull) {
			var cleared *int64
			folderID = &cleared
		} else {
			parsed, err := strconv.ParseInt(string(bytes.TrimSpace(body.FolderID)), 10, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid folderId")
				return
			}
			target := &parsed
			folderID = &target
		}
	}

	card, err := h.cardService.UpdateNotesAndFolder(id, body.Notes, folderID)
	if err != nil {
		respondServiceError(w, err, "update flashcard")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "flashcard": card})
}

func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flashcard ID")
		return
	}

	err := h.cardService.Delete(id)
	if err != nil {
		respondServiceError(w, err, "delete flashcard")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *FlashcardHandler) ToggleStar(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flashcard ID")
		return
	}

	card, err := h.cardService.ToggleStar(id)
	if err != nil {
		respondServiceError(w, err, "toggle star")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "flashcard": card})
}

func (h *FlashcardHandler) Visit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flashcard ID")
		return
	}

	card, err := h.cardService.Visit(id)
	if err != nil {
		respondServiceError(w, err, "update visit timestamp")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "flashcard": card})
}

func (h *FlashcardHandler) VisitedDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.cardService.VisitedDates()
	if err != nil {
		respondServiceError(w, err, "fetch visited dates")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "dates": dates})
}
