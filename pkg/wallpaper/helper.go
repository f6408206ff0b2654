package wallpaper

import (
	"path/filepath"
	"strings"
)

// extractFilenameFromURL extracts the filename from a URL.
func extractFilenameFromURL(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	lastSlashIndex := strings.LastIndex(url, "/")
	if lastSlashIndex == -1 || lastSlashIndex == len(url)-1 {
		return "" // Handle cases where there's no slash or it's at the end
	}
	return url[lastSlashIndex+1:]
}

// isImageFile checks if a file has a common image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".gif" || ext == ".webp"
}

// extForContentType maps a content type to a file extension, defaulting to
// jpg for anything unrecognized.
func extForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
