package routes

import (
	"net/http"

	"github.com/cardboxapp/cardbox/internal/app"
	"github.com/cardboxapp/cardbox/internal/handler"
	"github.com/cardboxapp/cardbox/internal/middleware"
	"github.com/rs/cors"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler()
	folder := handler.NewFolderHandler(app.FolderService)
	flashcard := handler.NewFlashcardHandler(app.FlashcardService)
	upload := handler.NewUploadHandler(app.ImageHost, app.ImportService, app.Cfg.MaxUploadSize, app.Cfg.MaxArchiveSize)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /health", health.Health)

	// Flashcards
	mux.HandleFunc("GET /flashcards", flashcard.List)
	mux.HandleFunc("POST /flashcards", flashcard.Create)
	mux.HandleFunc("GET /flashcards/visited-dates", flashcard.VisitedDates)
	mux.HandleFunc("GET /flashcards/{id}", flashcard.Get)
	mux.HandleFunc("PATCH /flashcards/{id}", flashcard.Update)
	mux.HandleFunc("DELETE /flashcards/{id}", flashcard.Delete)
	mux.HandleFunc("POST /flashcards/{id}/star", flashcard.ToggleStar)
	mux.HandleFunc("POST /flashcards/{id}/visit", flashcard.Visit)

	// Folders
	mux.HandleFunc("GET /folders", folder.List)
	mux.HandleFunc("POST /folders", folder.Create)
	mux.HandleFunc("GET /folders/{id}", folder.Get)
	mux.HandleFunc("PATCH /folders/{id}", folder.Rename)
	mux.HandleFunc("DELETE /folders/{id}", folder.Delete)

	// Uploads
	mux.HandleFunc("POST /upload-image", upload.UploadImage)
	mux.HandleFunc("POST /upload-zip", upload.UploadZip)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Recover,
		middleware.RequestLogging,
	)

	// CORS for the browser review client
	return cors.New(cors.Options{
		AllowedOrigins: app.Cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:         86400,
	}).Handler(h)
}
