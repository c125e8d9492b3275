package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCard(t *testing.T, h http.Handler, payload map[string]any) map[string]any {
	t.Helper()

	status, body := doJSON(t, h, http.MethodPost, "/flashcards", payload)
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	return body["flashcard"].(map[string]any)
}

func TestFlashcardCreateDefaultsOverHTTP(t *testing.T) {
	h, _ := newTestHandler(t)

	card := createCard(t, h, map[string]any{"imageUrl": "https://x/y.png"})
	assert.Equal(t, "https://x/y.png", card["imageUrl"])
	assert.Equal(t, "", card["notes"])
	assert.Nil(t, card["folderId"])
	assert.Equal(t, false, card["starred"])
	assert.Nil(t, card["lastVisited"])
	assert.NotZero(t, card["createdAt"])
}

func TestFlashcardCreateMissingImageURL(t *testing.T) {
	h, _ := newTestHandler(t)

	status, body := doJSON(t, h, http.MethodPost, "/flashcards", map[string]any{"notes": "no image"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "imageUrl is required", body["error"])
}

func TestFlashcardCreateUnknownFolder(t *testing.T) {
	h, _ := newTestHandler(t)

	status, body := doJSON(t, h, http.MethodPost, "/flashcards", map[string]any{
		"imageUrl": "https://x/y.png",
		"folderId": 42,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Folder not found", body["error"])
}

func TestFlashcardListFilters(t *testing.T) {
	h, _ := newTestHandler(t)
	folderID := createFolder(t, h, "art")

	filed := createCard(t, h, map[string]any{"imageUrl": "https://x/filed.png", "folderId": folderID})
	loose := createCard(t, h, map[string]any{"imageUrl": "https://x/loose.png"})

	status, _ := doJSON(t, h, http.MethodPost, fmt.Sprintf("/flashcards/%.0f/star", loose["id"].(float64)), nil)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, h, http.MethodGet, fmt.Sprintf("/flashcards?folderId=%.0f", folderID), nil)
	require.Equal(t, http.StatusOK, status)
	cards := body["flashcards"].([]any)
	require.Len(t, cards, 1)
	assert.Equal(t, filed["id"], cards[0].(map[string]any)["id"])

	status, body = doJSON(t, h, http.MethodGet, "/flashcards?starred=true", nil)
	require.Equal(t, http.StatusOK, status)
	cards = body["flashcards"].([]any)
	require.Len(t, cards, 1)
	assert.Equal(t, loose["id"], cards[0].(map[string]any)["id"])

	// "null" means no folder filter, not folderless-only.
	status, body = doJSON(t, h, http.MethodGet, "/flashcards?folderId=null", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["flashcards"].([]any), 2)

	status, body = doJSON(t, h, http.MethodGet, "/flashcards?folderId=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid folderId filter", body["error"])

	status, body = doJSON(t, h, http.MethodGet, "/flashcards?date=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])
}

func TestFlashcardPatchTriState(t *testing.T) {
	h, _ := newTestHandler(t)
	folderID := createFolder(t, h, "art")

	card := createCard(t, h, map[string]any{"imageUrl": "https://x/y.png", "folderId": folderID})
	path := fmt.Sprintf("/flashcards/%.0f", card["id"].(float64))

	// Omitted folderId leaves the folder untouched.
	status, body := doRaw(t, h, http.MethodPatch, path, `{"notes": "updated"}`)
	require.Equal(t, http.StatusOK, status)
	patched := body["flashcard"].(map[string]any)
	assert.Equal(t, "updated", patched["notes"])
	assert.Equal(t, folderID, patched["folderId"])

	// Explicit null unfiles the card; notes stay.
	status, body = doRaw(t, h, http.MethodPatch, path, `{"folderId": null}`)
	require.Equal(t, http.StatusOK, status)
	patched = body["flashcard"].(map[string]any)
	assert.Nil(t, patched["folderId"])
	assert.Equal(t, "updated", patched["notes"])

	// A real id files it again.
	status, body = doRaw(t, h, http.MethodPatch, path, fmt.Sprintf(`{"folderId": %.0f}`, folderID))
	require.Equal(t, http.StatusOK, status)
	patched = body["flashcard"].(map[string]any)
	assert.Equal(t, folderID, patched["folderId"])

	status, body = doRaw(t, h, http.MethodPatch, path, `{"folderId": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid folderId", body["error"])
}

func TestFlashcardStarToggle(t *testing.T) {
	h, _ := newTestHandler(t)
	card := createCard(t, h, map[string]any{"imageUrl": "https://x/y.png"})
	path := fmt.Sprintf("/flashcards/%.0f/star", card["id"].(float64))

	status, body := doJSON(t, h, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["flashcard"].(map[string]any)["starred"])

	status, body = doJSON(t, h, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["flashcard"].(map[string]any)["starred"])
}

func TestFlashcardStarNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	status, body := doJSON(t, h, http.MethodPost, "/flashcards/42/star", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Flashcard not found", body["error"])
}

func TestFlashcardVisitAndVisitedDates(t *testing.T) {
	h, _ := newTestHandler(t)
	card := createCard(t, h, map[string]any{"imageUrl": "https://x/y.png"})

	status, body := doJSON(t, h, http.MethodPost, fmt.Sprintf("/flashcards/%.0f/visit", card["id"].(float64)), nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, body["flashcard"].(map[string]any)["lastVisited"])

	// The static route must win over /flashcards/{id}.
	status, body = doJSON(t, h, http.MethodGet, "/flashcards/visited-dates", nil)
	require.Equal(t, http.StatusOK, status)
	dates := body["dates"].([]any)
	require.Len(t, dates, 1)
}

func TestFlashcardDelete(t *testing.T) {
	h, _ := newTestHandler(t)
	card := createCard(t, h, map[string]any{"imageUrl": "https://x/y.png"})
	path := fmt.Sprintf("/flashcards/%.0f", card["id"].(float64))

	status, body := doJSON(t, h, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = doJSON(t, h, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Flashcard not found", body["error"])
}

func TestFlashcardInvalidID(t *testing.T) {
	h, _ := newTestHandler(t)

	status, body := doJSON(t, h, http.MethodGet, "/flashcards/zero", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid flashcard ID", body["error"])
}
