package photo

import "strings"

// MaxFileSize is the hard cap on a single uploaded photo.
const MaxFileSize = int64(5 << 20) // 5 MB

// IsImage reports whether mimeType names an image type.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
}

// IsAcceptableImage is the upload gate, evaluated before any storage I/O.
func IsAcceptableImage(mimeType string, size int64) bool {
	return IsImage(mimeType) && size >= 0 && size <= MaxFileSize
}
