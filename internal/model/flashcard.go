package model

// Flashcard is one image-plus-notes unit. FolderID is a weak reference:
// deleting the folder clears it instead of deleting the card.
type Flashcard struct {
	ID          int64   `db:"id" json:"id"`
	ImageURL    string  `db:"image_url" json:"imageUrl"`
	ThumbURL    *string `db:"thumb_url" json:"thumbUrl"`
	Notes       string  `db:"notes" json:"notes"`
	FolderID    *int64  `db:"folder_id" json:"folderId"`
	Starred     bool    `db:"starred" json:"starred"`
	LastVisited *int64  `db:"last_visited" json:"lastVisited"`
	CreatedAt   int64   `db:"created_at" json:"createdAt"`
}
