package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderCreateAndGet(t *testing.T) {
	database := newTestDB(t)
	repo := NewFolderRepository(database)

	folder, err := repo.Create("Kanji")
	require.NoError(t, err)
	assert.Equal(t, "Kanji", folder.Name)
	assert.NotZero(t, folder.ID)
	assert.NotZero(t, folder.CreatedAt)

	got, err := repo.ByID(folder.ID)
	require.NoError(t, err)
	assert.Equal(t, folder.ID, got.ID)
	assert.Equal(t, "Kanji", got.Name)
}

func TestFolderByIDNotFound(t *testing.T) {
	database := newTestDB(t)
	repo := NewFolderRepository(database)

	_, err := repo.ByID(42)
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestFoldersNewestFirst(t *testing.T) {
	database := newTestDB(t)
	repo := NewFolderRepository(database)

	first, err := repo.Create("first")
	require.NoError(t, err)
	second, err := repo.Create("second")
	require.NoError(t, err)

	folders, err := repo.Folders()
	require.NoError(t, err)
	require.Len(t, folders, 2)
	// Same created_at second is possible, so order falls back to id.
	assert.Equal(t, second.ID, folders[0].ID)
	assert.Equal(t, first.ID, folders[1].ID)
}

func TestFolderRename(t *testing.T) {
	database := newTestDB(t)
	repo := NewFolderRepository(database)

	folder, err := repo.Create("old name")
	require.NoError(t, err)

	err = repo.Rename(folder.ID, "new name")
	require.NoError(t, err)

	got, err := repo.ByID(folder.ID)
	require.NoError(t, err)
	assert.Equal(t, "new name", got.Name)
}

func TestFolderRenameNotFound(t *testing.T) {
	database := newTestDB(t)
	repo := NewFolderRepository(database)

	err := repo.Rename(42, "anything")
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestFolderDeleteUnfilesFlashcards(t *testing.T) {
	database := newTestDB(t)
	folders := NewFolderRepository(database)
	cards := NewFlashcardRepository(database)

	folder, err := folders.Create("doomed")
	require.NoError(t, err)
	keep, err := folders.Create("kept")
	require.NoError(t, err)

	filed, err := cards.Create("https://img.example/a.png", "", &folder.ID, nil)
	require.NoError(t, err)
	elsewhere, err := cards.Create("https://img.example/b.png", "", &keep.ID, nil)
	require.NoError(t, err)

	err = folders.Delete(folder.ID)
	require.NoError(t, err)

	_, err = folders.ByID(folder.ID)
	assert.ErrorIs(t, err, ErrFolderNotFound)

	// The filed card survives, unfiled.
	got, err := cards.ByID(filed.ID)
	require.NoError(t, err)
	assert.Nil(t, got.FolderID)

	// Cards in other folders are untouched.
	other, err := cards.ByID(elsewhere.ID)
	require.NoError(t, err)
	require.NotNil(t, other.FolderID)
	assert.Equal(t, keep.ID, *other.FolderID)
}

func TestFolderDeleteNotFound(t *testing.T) {
	database := newTestDB(t)
	repo := NewFolderRepository(database)

	err := repo.Delete(42)
	assert.ErrorIs(t, err, ErrFolderNotFound)
}
