package validation

import (
	"errors"
	"strings"
)

// FolderName validates a folder name and returns the trimmed value.
func FolderName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return "", errors.New("folder name is required")
	}

	if len(trimmed) > 200 {
		return "", errors.New("folder name is too long (max 200 characters)")
	}

	return trimmed, nil
}
