package app

import (
	"fmt"

	"github.com/cardboxapp/cardbox/internal/config"
	"github.com/cardboxapp/cardbox/internal/db"
	"github.com/cardboxapp/cardbox/internal/imagehost"
	"github.com/cardboxapp/cardbox/internal/repository"
	"github.com/cardboxapp/cardbox/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	ImageHost        imagehost.Host
	FolderService    *service.FolderService
	FlashcardService *service.FlashcardService
	ImportService    *service.ImportService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	folderRepository := repository.NewFolderRepository(database)
	flashcardRepository := repository.NewFlashcardRepository(database)

	// Image host
	host, err := imagehost.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image host: %v", err)
	}

	// Services
	folderService := service.NewFolderService(folderRepository)
	flashcardService := service.NewFlashcardService(flashcardRepository, folderRepository)
	importService := service.NewImportService(flashcardService, host)

	return &App{
		Cfg:              cfg,
		DB:               database,
		ImageHost:        host,
		FolderService:    folderService,
		FlashcardService: flashcardService,
		ImportService:    importService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
