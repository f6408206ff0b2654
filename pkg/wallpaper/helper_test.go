package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFilenameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain", "https://example.com/images/photo.jpg", "photo.jpg"},
		{"query stripped", "https://example.com/photo.png?token=abc", "photo.png"},
		{"fragment stripped", "https://example.com/photo.webp#top", "photo.webp"},
		{"trailing slash", "https://example.com/images/", ""},
		{"no slash", "photo.jpg", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractFilenameFromURL(tt.url))
		})
	}
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, isImageFile("a.jpg"))
	assert.True(t, isImageFile("a.JPEG"))
	assert.True(t, isImageFile("dir/b.png"))
	assert.True(t, isImageFile("c.webp"))
	assert.False(t, isImageFile("c.txt"))
	assert.False(t, isImageFile("noext"))
}

func TestExtForContentType(t *testing.T) {
	assert.Equal(t, ".png", extForContentType("image/png"))
	assert.Equal(t, ".gif", extForContentType("image/gif"))
	assert.Equal(t, ".webp", extForContentType("image/webp"))
	assert.Equal(t, ".jpg", extForContentType("image/jpeg"))
	assert.Equal(t, ".jpg", extForContentType(""))
}
