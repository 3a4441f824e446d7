// Package upload holds the stateless helpers that vet and name incoming
// product image files before they are written to storage.
package upload

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"go-shop-api/internal/apperr"
)

// FileInfo describes an incoming multipart file as seen by the filter and
// namer: original filename, declared content type, and payload size.
type FileInfo struct {
	Filename string
	MimeType string
	Size     int64
}

var allowedMimeTypes = []string{"image/jpeg", "image/png"}

// gif stays in the extension list even though no gif content type is
// accepted, so a .gif only passes when declared as jpeg/png.
var validExtensions = []string{"jpg", "jpeg", "png", "gif"}

// CheckFile rejects empty files first, then files whose declared MIME type
// or filename extension is not on the whitelist.
func CheckFile(file FileInfo) error {
	if file.Size <= 0 {
		return apperr.ErrEmptyFile
	}

	if !contains(allowedMimeTypes, file.MimeType) {
		return apperr.ErrUnsupportedMimeType
	}

	ext := Extension(file.Filename)
	if ext == "" || !contains(validExtensions, ext) {
		return apperr.ErrUnsupportedExtension
	}

	return nil
}

// RandomName produces a collision-resistant filename for an accepted file:
// a random 128-bit token plus the original lowercased extension.
func RandomName(file FileInfo) (string, error) {
	if file.Size <= 0 {
		return "", apperr.ErrEmptyFile
	}
	return uuid.NewString() + "." + Extension(file.Filename), nil
}

// Extension returns the lowercased filename suffix without the dot, or an
// empty string when the name has none.
func Extension(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	return strings.ToLower(ext)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
