package upload

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shop-api/internal/apperr"
)

func TestCheckFileAccepts(t *testing.T) {
	cases := []FileInfo{
		{Filename: "photo.png", MimeType: "image/png", Size: 100},
		{Filename: "photo.jpg", MimeType: "image/jpeg", Size: 100},
		{Filename: "PHOTO.JPEG", MimeType: "image/jpeg", Size: 1},
		// gif extension passes only with a jpeg/png declared content type
		{Filename: "anim.gif", MimeType: "image/png", Size: 100},
	}

	for _, tc := range cases {
		assert.NoError(t, CheckFile(tc), "%+v", tc)
	}
}

func TestCheckFileRejects(t *testing.T) {
	cases := []struct {
		file FileInfo
		want error
	}{
		{FileInfo{Filename: "photo.png", MimeType: "image/png", Size: 0}, apperr.ErrEmptyFile},
		// empty check runs before everything else
		{FileInfo{Filename: "doc.txt", MimeType: "text/plain", Size: 0}, apperr.ErrEmptyFile},
		{FileInfo{Filename: "photo.png", MimeType: "text/plain", Size: 10}, apperr.ErrUnsupportedMimeType},
		// gif content type is not on the MIME whitelist
		{FileInfo{Filename: "anim.gif", MimeType: "image/gif", Size: 10}, apperr.ErrUnsupportedMimeType},
		{FileInfo{Filename: "photo.bmp", MimeType: "image/png", Size: 10}, apperr.ErrUnsupportedExtension},
		{FileInfo{Filename: "noextension", MimeType: "image/png", Size: 10}, apperr.ErrUnsupportedExtension},
	}

	for _, tc := range cases {
		assert.ErrorIs(t, CheckFile(tc.file), tc.want, "%+v", tc.file)
	}
}

func TestRandomName(t *testing.T) {
	name, err := RandomName(FileInfo{Filename: "photo.PNG", MimeType: "image/png", Size: 10})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".png"), "got %q", name)

	token := strings.TrimSuffix(name, ".png")
	_, err = uuid.Parse(token)
	assert.NoError(t, err, "token %q must be a UUID", token)
}

func TestRandomNameUnique(t *testing.T) {
	file := FileInfo{Filename: "photo.png", MimeType: "image/png", Size: 10}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name, err := RandomName(file)
		require.NoError(t, err)
		assert.False(t, seen[name], "collision on %q", name)
		seen[name] = true
	}
}

func TestRandomNameEmptyFile(t *testing.T) {
	_, err := RandomName(FileInfo{Filename: "photo.png"})
	assert.ErrorIs(t, err, apperr.ErrEmptyFile)
}

func TestRandomNameNoExtension(t *testing.T) {
	name, err := RandomName(FileInfo{Filename: "noext", Size: 5})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "."), "extension is empty, got %q", name)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "png", Extension("a.PNG"))
	assert.Equal(t, "jpeg", Extension("archive.tar.JPEG"))
	assert.Equal(t, "", Extension("noext"))
}
