package service

import (
	"fmt"
	"strings"
)

// ValidationError reports bad caller input. Handlers answer it with 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// NoImagesFoundError fails a whole archive import when nothing in the
// archive matched the image allow-list. It carries the entry inventory so
// users can see what the archive actually contained.
type NoImagesFoundError struct {
	TotalEntries int      // all entries, including directories
	FileEntries  int      // file entries only
	Files        []string // non-image filenames found
}

func (e *NoImagesFoundError) Error() string {
	return "no image files found in archive"
}

// Details returns the human-readable inventory for the error response.
func (e *NoImagesFoundError) Details() string {
	names := "none"
	if len(e.Files) > 0 {
		names = strings.Join(e.Files, ", ")
	}
	return fmt.Sprintf("Found %d total entries, %d files. Files: %s", e.TotalEntries, e.FileEntries, names)
}
