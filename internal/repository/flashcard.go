package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cardboxapp/cardbox/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrFlashcardNotFound = errors.New("flashcard not found")
)

// Filter narrows a flashcard listing. Nil fields are ignored; set fields
// combine additively (AND).
type Filter struct {
	FolderID  *int64
	Starred   bool
	VisitedOn *time.Time // matched against the card's last_visited UTC day
}

// Update carries a partial flashcard update. Nil fields are left untouched.
// FolderID and LastVisited are double pointers so callers can distinguish
// "don't change" (nil) from "set to null" (pointer to nil).
type Update struct {
	Notes       *string
	FolderID    **int64
	Starred     *bool
	LastVisited **int64
}

type FlashcardRepository interface {
	Create(imageURL, notes string, folderID *int64, thumbURL *string) (*model.Flashcard, error)
	ByID(id int64) (*model.Flashcard, error)
	Flashcards(filter Filter) ([]*model.Flashcard, error)
	Update(id int64, update Update) error
	ToggleStar(id int64) (*model.Flashcard, error)
	Delete(id int64) error
	VisitedDates() ([]string, error)
	Count(folderID *int64) (int, error)
}

type flashcardRepository struct {
	db *sqlx.DB
}

func NewFlashcardRepository(db *sqlx.DB) FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Create(imageURL, notes string, folderID *int64, thumbURL *string) (*model.Flashcard, error) {
	card := &model.Flashcard{
		ImageURL:  imageURL,
		ThumbURL:  thumbURL,
		Notes:     notes,
		FolderID:  folderID,
		Starred:   false,
		CreatedAt: time.Now().Unix(),
	}

	query := `INSERT INTO flashcards (image_url, thumb_url, notes, folder_id, starred, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := r.db.QueryRow(query,
		card.ImageURL,
		card.ThumbURL,
		card.Notes,
		card.FolderID,
		card.Starred,
		card.CreatedAt,
	).Scan(&card.ID)
	if err != nil {
		return nil, err
	}

	return card, nil
}

func (r *flashcardRepository) ByID(id int64) (*model.Flashcard, error) {
	card := &model.Flashcard{}
	query := `SELECT * FROM flashcards WHERE id = $1`

	err := r.db.Get(card, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrFlashcardNotFound
	}

	return card, err
}

func (r *flashcardRepository) Flashcards(filter Filter) ([]*model.Flashcard, error) {
	query := `SELECT * FROM flashcards WHERE 1=1`
	args := []any{}

	if filter.FolderID != nil {
		args = append(args, *filter.FolderID)
		query += fmt.Sprintf(" AND folder_id = $%d", len(args))
	}

	if filter.Starred {
		query += " AND starred = TRUE"
	}

	if filter.VisitedOn != nil {
		// Inclusive UTC-day window [00:00:00, 23:59:59] of the given date.
		day := filter.VisitedOn.UTC().Truncate(24 * time.Hour)
		args = append(args, day.Unix())
		query += fmt.Sprintf(" AND last_visited >= $%d", len(args))
		args = append(args, day.Add(24*time.Hour).Unix()-1)
		query += fmt.Sprintf(" AND last_visited <= $%d", len(args))
	}

	query += " ORDER BY created_at DESC, id DESC"

	cards := []*model.Flashcard{}
	err := r.db.Select(&cards, query, args...)
	if err != nil {
		return nil, err
	}

	return cards, nil
}

func (r *flashcardRepository) Update(id int64, update Update) error {
	sets := []string{}
	args := []any{}

	if update.Notes != nil {
		args = append(args, *update.Notes)
		sets = append(sets, fmt.Sprintf("notes = $%d", len(args)))
	}
	if update.FolderID != nil {
		args = append(args, *update.FolderID)
		sets = append(sets, fmt.Sprintf("folder_id = $%d", len(args)))
	}
	if update.Starred != nil {
		args = append(args, *update.Starred)
		sets = append(sets, fmt.Sprintf("starred = $%d", len(args)))
	}
	if update.LastVisited != nil {
		args = append(args, *update.LastVisited)
		sets = append(sets, fmt.Sprintf("last_visited = $%d", len(args)))
	}

	if len(sets) == 0 {
		// Nothing to change, but the id must still exist.
		_, err := r.ByID(id)
		return err
	}

	args = append(args, id)
	query := "UPDATE flashcards SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrFlashcardNotFound
	}

	return nil
}

// ToggleStar flips the starred flag in a single UPDATE so concurrent toggles
// for the same id cannot lose each other's writes.
func (r *flashcardRepository) ToggleStar(id int64) (*model.Flashcard, error) {
	query := `UPDATE flashcards SET starred = NOT starred WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, ErrFlashcardNotFound
	}

	return r.ByID(id)
}

func (r *flashcardRepository) Delete(id int64) error {
	query := `DELETE FROM flashcards WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrFlashcardNotFound
	}

	return nil
}

// VisitedDates returns the distinct UTC calendar dates ("2006-01-02") with at
// least one visit, newest first. Day bucketing happens in Go so the query
// stays portable across SQLite and Postgres.
func (r *flashcardRepository) VisitedDates() ([]string, error) {
	var visits []int64
	query := `SELECT last_visited FROM flashcards WHERE last_visited IS NOT NULL`

	err := r.db.Select(&visits, query)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	dates := []string{}
	for _, ts := range visits {
		date := time.Unix(ts, 0).UTC().Format("2006-01-02")
		if !seen[date] {
			seen[date] = true
			dates = append(dates, date)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

func (r *flashcardRepository) Count(folderID *int64) (int, error) {
	var count int
	if folderID == nil {
		err := r.db.QueryRow(`SELECT COUNT(*) FROM flashcards`).Scan(&count)
		return count, err
	}

	err := r.db.QueryRow(`SELECT COUNT(*) FROM flashcards WHERE folder_id = $1`, *folderID).Scan(&count)
	return count, err
}
