package service

import (
	"strings"
	"time"

	"github.com/cardboxapp/cardbox/internal/model"
	"github.com/cardboxapp/cardbox/internal/repository"
)

type FlashcardService struct {
	cardRepo   repository.FlashcardRepository
	folderRepo repository.FolderRepository
}

func NewFlashcardService(cardRepo repository.FlashcardRepository, folderRepo repository.FolderRepository) *FlashcardService {
	return &FlashcardService{
		cardRepo:   cardRepo,
		folderRepo: folderRepo,
	}
}

// checkFolder verifies the target folder exists. Best effort: a folder
// deleted concurrently after this check simply leaves the card unfiled later,
// because folder deletion clears references instead of cascading.
func (s *FlashcardService) checkFolder(folderID *int64) error {
	if folderID == nil {
		return nil
	}
	_, err := s.folderRepo.ByID(*folderID)
	return err
}

func (s *FlashcardService) Create(imageURL, notes string, folderID *int64, thumbURL *string) (*model.Flashcard, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, NewValidationError("imageUrl is required")
	}

	err := s.checkFolder(folderID)
	if err != nil {
		return nil, err
	}

	return s.cardRepo.Create(imageURL, notes, folderID, thumbURL)
}

func (s *FlashcardService) ByID(id int64) (*model.Flashcard, error) {
	return s.cardRepo.ByID(id)
}

func (s *FlashcardService) Flashcards(filter repository.Filter) ([]*model.Flashcard, error) {
	return s.cardRepo.Flashcards(filter)
}

// UpdateNotesAndFolder applies the PATCH semantics: only provided fields
// change. A non-nil folder target must exist at write time.
func (s *FlashcardService) UpdateNotesAndFolder(id int64, notes *string, folderID **int64) (*model.Flashcard, error) {
	if folderID != nil {
		err := s.checkFolder(*folderID)
		if err != nil {
			return nil, err
		}
	}

	err := s.cardRepo.Update(id, repository.Update{Notes: notes, FolderID: folderID})
	if err != nil {
		return nil, err
	}

	return s.cardRepo.ByID(id)
}

func (s *FlashcardService) ToggleStar(id int64) (*model.Flashcard, error) {
	return s.cardRepo.ToggleStar(id)
}

// Visit records that the card was just displayed in the viewer.
func (s *FlashcardService) Visit(id int64) (*model.Flashcard, error) {
	now := time.Now().Unix()
	visited := &now

	err := s.cardRepo.Update(id, repository.Update{LastVisited: &visited})
	if err != nil {
		return nil, err
	}

	return s.cardRepo.ByID(id)
}

func (s *FlashcardService) Delete(id int64) error {
	return s.cardRepo.Delete(id)
}

func (s *FlashcardService) VisitedDates() ([]string, error) {
	return s.cardRepo.VisitedDates()
}

func (s *FlashcardService) Count(folderID *int64) (int, error) {
	return s.cardRepo.Count(folderID)
}
