package photo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAcceptableImage(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		size     int64
		want     bool
	}{
		{"jpeg", "image/jpeg", 1024, true},
		{"png at cap", "image/png", MaxFileSize, true},
		{"upper case", "IMAGE/GIF", 10, true},
		{"empty file", "image/webp", 0, true},
		{"over cap", "image/png", MaxFileSize + 1, false},
		{"pdf", "application/pdf", 10, false},
		{"no type", "", 10, false},
		{"image-ish", "imagex/png", 10, false},
		{"negative size", "image/png", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAcceptableImage(tt.mimeType, tt.size))
		})
	}
}

func TestMaxFileSize(t *testing.T) {
	assert.Equal(t, int64(5*1024*1024), MaxFileSize)
}
