package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/cardboxapp/cardbox/internal/imagehost"
	"github.com/cardboxapp/cardbox/internal/model"
	"github.com/cardboxapp/cardbox/internal/validation"
)

// ErrEmptyFile marks an archive entry with zero bytes of data.
var ErrEmptyFile = errors.New("empty file data")

// ImportError records why one archive entry failed. Per-file errors never
// abort the batch.
type ImportError struct {
	Filename string `json:"filename"`
	Message  string `json:"error"`
}

// ImportSummary is the outcome of a bulk import: what was created and what
// failed, per file.
type ImportSummary struct {
	Created    int                `json:"created"`
	Errors     []ImportError      `json:"errors,omitempty"`
	Flashcards []*model.Flashcard `json:"flashcards"`
}

// ImportService turns a zip archive of images into flashcards: each
// recognized image is uploaded to the image host and recorded as one card.
type ImportService struct {
	cards *FlashcardService
	host  imagehost.Host
}

func NewImportService(cards *FlashcardService, host imagehost.Host) *ImportService {
	return &ImportService{
		cards: cards,
		host:  host,
	}
}

// ImportArchive processes every image entry in the archive independently:
// one corrupt or rejected image must not abort an otherwise valid batch.
// It fails as a whole only when the archive is unreadable, the target folder
// is missing, or no entry matches the image allow-list.
func (s *ImportService) ImportArchive(ctx context.Context, archive []byte, folderID *int64) (*ImportSummary, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, NewValidationError("invalid zip archive: " + err.Error())
	}

	err = s.cards.checkFolder(folderID)
	if err != nil {
		return nil, err
	}

	var images []*zip.File
	var nonImages []string
	fileEntries := 0

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		fileEntries++
		if validation.IsImageFilename(entry.Name) {
			images = append(images, entry)
		} else {
			nonImages = append(nonImages, entry.Name)
		}
	}

	if len(images) == 0 {
		return nil, &NoImagesFoundError{
			TotalEntries: len(reader.File),
			FileEntries:  fileEntries,
			Files:        nonImages,
		}
	}

	summary := &ImportSummary{
		Flashcards: []*model.Flashcard{},
	}

	for _, entry := range images {
		card, err := s.importEntry(ctx, entry, folderID)
		if err != nil {
			slog.Warn("archive entry import failed", "filename", entry.Name, "error", err)
			summary.Errors = append(summary.Errors, ImportError{
				Filename: entry.Name,
				Message:  err.Error(),
			})
			continue
		}
		summary.Created++
		summary.Flashcards = append(summary.Flashcards, card)
	}

	return summary, nil
}

func (s *ImportService) importEntry(ctx context.Context, entry *zip.File, folderID *int64) (*model.Flashcard, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	result, err := s.host.Upload(ctx, data, entry.Name, validation.ImageMimeType(entry.Name))
	if err != nil {
		return nil, err
	}

	var thumbURL *string
	if result.ThumbURL != "" {
		thumbURL = &result.ThumbURL
	}

	return s.cards.Create(result.URL, "", folderID, thumbURL)
}
