package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderName(t *testing.T) {
	name, err := FolderName("  art history  ")
	require.NoError(t, err)
	assert.Equal(t, "art history", name)

	_, err = FolderName("")
	assert.Error(t, err)

	_, err = FolderName("   ")
	assert.Error(t, err)

	_, err = FolderName(strings.Repeat("a", 201))
	assert.Error(t, err)

	name, err = FolderName(strings.Repeat("a", 200))
	require.NoError(t, err)
	assert.Len(t, name, 200)
}

func TestIsImageFilename(t *testing.T) {
	assert.True(t, IsImageFilename("cat.jpg"))
	assert.True(t, IsImageFilename("CAT.JPEG"))
	assert.True(t, IsImageFilename("nested/dir/pic.PNG"))
	assert.True(t, IsImageFilename("anim.gif"))
	assert.True(t, IsImageFilename("modern.webp"))
	assert.True(t, IsImageFilename("old.bmp"))

	assert.False(t, IsImageFilename("readme.txt"))
	assert.False(t, IsImageFilename("archive.zip"))
	assert.False(t, IsImageFilename("noextension"))
	assert.False(t, IsImageFilename("vector.svg"))
}

func TestImageMimeType(t *testing.T) {
	assert.Equal(t, "image/png", ImageMimeType("cat.png"))
	assert.Equal(t, "image/jpeg", ImageMimeType("cat.JPG"))
	assert.Equal(t, "image/bmp", ImageMimeType("old.bmp"))
	assert.Equal(t, "application/octet-stream", ImageMimeType("noextension"))
}
