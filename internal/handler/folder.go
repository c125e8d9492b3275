package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cardboxapp/cardbox/internal/service"
)

type FolderHandler struct {
	folderService *service.FolderService
}

func NewFolderHandler(folderService *service.FolderService) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
	}
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folderService.Folders()
	if err != nil {
		respondServiceError(w, err, "fetch folders")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "folders": folders})
}

func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.folderService.Create(body.Name)
	if err != nil {
		respondServiceError(w, err, "create folder")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "folder": folder})
}

func (h *FolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid folder ID")
		return
	}

	folder, err := h.folderService.ByID(id)
	if err != nil {
		respondServiceError(w, err, "fetch folder")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "folder": folder})
}

func (h *FolderHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid folder ID")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.folderService.Rename(id, body.Name)
	if err != nil {
		respondServiceError(w, err, "update folder")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "folder": folder})
}

func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid folder ID")
		return
	}

	err := h.folderService.Delete(id)
	if err != nil {
		respondServiceError(w, err, "delete folder")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
