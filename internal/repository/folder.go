package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/cardboxapp/cardbox/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrFolderNotFound = errors.New("folder not found")
)

type FolderRepository interface {
	Create(name string) (*model.Folder, error)
	ByID(id int64) (*model.Folder, error)
	Folders() ([]*model.Folder, error)
	Rename(id int64, name string) error
	Delete(id int64) error
}

type folderRepository struct {
	db *sqlx.DB
}

func NewFolderRepository(db *sqlx.DB) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Create(name string) (*model.Folder, error) {
	folder := &model.Folder{
		Name:      name,
		CreatedAt: time.Now().Unix(),
	}

	query := `INSERT INTO folders (name, created_at) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRow(query, folder.Name, folder.CreatedAt).Scan(&folder.ID)
	if err != nil {
		return nil, err
	}

	return folder, nil
}

func (r *folderRepository) ByID(id int64) (*model.Folder, error) {
	folder := &model.Folder{}
	query := `SELECT * FROM folders WHERE id = $1`

	err := r.db.Get(folder, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrFolderNotFound
	}

	return folder, err
}

func (r *folderRepository) Folders() ([]*model.Folder, error) {
	folders := []*model.Folder{}
	query := `SELECT * FROM folders ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&folders, query)
	if err != nil {
		return nil, err
	}

	return folders, nil
}

func (r *folderRepository) Rename(id int64, name string) error {
	query := `UPDATE folders SET name = $1 WHERE id = $2`

	result, err := r.db.Exec(query, name, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrFolderNotFound
	}

	return nil
}

// Delete removes the folder and unfiles every flashcard that referenced it.
// Both statements run in one transaction so a card can never point at a
// folder that no longer exists.
func (r *folderRepository) Delete(id int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`UPDATE flashcards SET folder_id = NULL WHERE folder_id = $1`, id)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM folders WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrFolderNotFound
	}

	return tx.Commit()
}
