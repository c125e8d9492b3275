package service

import (
	"github.com/cardboxapp/cardbox/internal/model"
	"github.com/cardboxapp/cardbox/internal/repository"
	"github.com/cardboxapp/cardbox/internal/validation"
)

type FolderService struct {
	folderRepo repository.FolderRepository
}

func NewFolderService(folderRepo repository.FolderRepository) *FolderService {
	return &FolderService{
		folderRepo: folderRepo,
	}
}

func (s *FolderService) Create(name string) (*model.Folder, error) {
	trimmed, err := validation.FolderName(name)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	return s.folderRepo.Create(trimmed)
}

func (s *FolderService) Folders() ([]*model.Folder, error) {
	return s.folderRepo.Folders()
}

func (s *FolderService) ByID(id int64) (*model.Folder, error) {
	return s.folderRepo.ByID(id)
}

func (s *FolderService) Rename(id int64, name string) (*model.Folder, error) {
	trimmed, err := validation.FolderName(name)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	err = s.folderRepo.Rename(id, trimmed)
	if err != nil {
		return nil, err
	}

	return s.folderRepo.ByID(id)
}

// Delete removes the folder. Flashcards filed under it become unfiled; they
// are never deleted alongside the folder.
func (s *FolderService) Delete(id int64) error {
	return s.folderRepo.Delete(id)
}
