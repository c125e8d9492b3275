package validation

import (
	"mime"
	"path/filepath"
	"strings"
)

// imageExtensions is the allow-list for bulk import. Classification is by
// extension only; the hosting service enforces actual content rules.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// IsImageFilename reports whether the filename carries a recognized image
// extension (case-insensitive).
func IsImageFilename(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ImageMimeType guesses a MIME type from the filename extension, falling
// back to application/octet-stream.
func ImageMimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	if ext == ".bmp" {
		return "image/bmp"
	}
	return "application/octet-stream"
}
