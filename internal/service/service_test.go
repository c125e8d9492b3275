package service

import (
	"archive/zip"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cardboxapp/cardbox/internal/db"
	"github.com/cardboxapp/cardbox/internal/imagehost"
	"github.com/cardboxapp/cardbox/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*FolderService, *FlashcardService) {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "cardbox_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(database) })

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	folderRepo := repository.NewFolderRepository(database)
	cardRepo := repository.NewFlashcardRepository(database)

	return NewFolderService(folderRepo), NewFlashcardService(cardRepo, folderRepo)
}

// fakeHost records uploads and can be told to fail specific filenames.
type fakeHost struct {
	uploads []string
	fail    map[string]error
}

func (h *fakeHost) Upload(_ context.Context, _ []byte, filename, _ string) (*imagehost.Result, error) {
	if err, ok := h.fail[filename]; ok {
		return nil, err
	}
	h.uploads = append(h.uploads, filename)
	return &imagehost.Result{
		URL:      "https://img.test/" + filename,
		ThumbURL: "https://img.test/th/" + filename,
	}, nil
}

func (h *fakeHost) Name() string {
	return "fake"
}

var _ imagehost.Host = (*fakeHost)(nil)

// buildZip assembles an archive in memory. Entry names ending in "/" become
// directory entries.
func buildZip(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range entries {
		if strings.HasSuffix(name, "/") {
			_, err := w.Create(name)
			require.NoError(t, err)
			continue
		}
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}
