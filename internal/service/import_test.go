package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportArchiveCreatesCardPerImage(t *testing.T) {
	folders, cards := newTestServices(t)
	host := &fakeHost{}
	importer := NewImportService(cards, host)

	folder, err := folders.Create("imports")
	require.NoError(t, err)

	archive := buildZip(t, map[string][]byte{
		"one.jpg":       []byte("jpeg"),
		"two.PNG":       []byte("png"),
		"nested/gif.gif": []byte("gif"),
		"readme.txt":    []byte("not an image"),
		"empty-dir/":    nil,
	})

	summary, err := importer.ImportArchive(context.Background(), archive, &folder.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Created)
	assert.Empty(t, summary.Errors)
	require.Len(t, summary.Flashcards, 3)

	for _, card := range summary.Flashcards {
		require.NotNil(t, card.FolderID)
		assert.Equal(t, folder.ID, *card.FolderID)
		assert.NotNil(t, card.ThumbURL)
	}

	count, err := cards.Count(&folder.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestImportArchiveNoImages(t *testing.T) {
	_, cards := newTestServices(t)
	importer := NewImportService(cards, &fakeHost{})

	archive := buildZip(t, map[string][]byte{
		"readme.txt": []byte("text"),
		"docs/":      nil,
	})

	_, err := importer.ImportArchive(context.Background(), archive, nil)
	var noImages *NoImagesFoundError
	require.ErrorAs(t, err, &noImages)
	assert.Equal(t, 2, noImages.TotalEntries)
	assert.Equal(t, 1, noImages.FileEntries)
	assert.Equal(t, []string{"readme.txt"}, noImages.Files)
}

func TestImportArchiveInvalidZip(t *testing.T) {
	_, cards := newTestServices(t)
	importer := NewImportService(cards, &fakeHost{})

	_, err := importer.ImportArchive(context.Background(), []byte("not a zip"), nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestImportArchivePerFileFailureDoesNotAbort(t *testing.T) {
	_, cards := newTestServices(t)
	host := &fakeHost{fail: map[string]error{
		"bad.png": errors.New("upstream rejected"),
	}}
	importer := NewImportService(cards, host)

	archive := buildZip(t, map[string][]byte{
		"good.jpg": []byte("jpeg"),
		"bad.png":  []byte("png"),
		"also.gif": []byte("gif"),
	})

	summary, err := importer.ImportArchive(context.Background(), archive, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, "bad.png", summary.Errors[0].Filename)
	assert.Equal(t, "upstream rejected", summary.Errors[0].Message)
}

func TestImportArchiveEmptyEntryRecorded(t *testing.T) {
	_, cards := newTestServices(t)
	host := &fakeHost{}
	importer := NewImportService(cards, host)

	archive := buildZip(t, map[string][]byte{
		"good.jpg":  []byte("jpeg"),
		"empty.png": {},
	})

	summary, err := importer.ImportArchive(context.Background(), archive, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, "empty.png", summary.Errors[0].Filename)
	assert.Equal(t, ErrEmptyFile.Error(), summary.Errors[0].Message)
	assert.Equal(t, []string{"good.jpg"}, host.uploads)
}

func TestImportArchiveMissingFolder(t *testing.T) {
	_, cards := newTestServices(t)
	importer := NewImportService(cards, &fakeHost{})

	archive := buildZip(t, map[string][]byte{"one.jpg": []byte("jpeg")})

	missing := int64(42)
	_, err := importer.ImportArchive(context.Background(), archive, &missing)
	require.Error(t, err)
}
