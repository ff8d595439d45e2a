package photo

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filenamePattern = regexp.MustCompile(`^[0-9a-f]{8}_[0-9a-f]{16}_[0-9]+\.[^.]+$`)

func TestGenerateFilename_Deterministic(t *testing.T) {
	now := time.UnixMilli(1718000000123)
	entropy := bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03})

	got, err := generateFilename("holiday.png", now, entropy)
	require.NoError(t, err)

	sum := md5.Sum([]byte("holiday.png1718000000123"))
	want := hex.EncodeToString(sum[:])[:8] + "_deadbeef00010203_1718000000123.png"
	assert.Equal(t, want, got)
}

func TestGenerateFilename_Pattern(t *testing.T) {
	names := []string{"cat.jpg", "IMG_0001.JPEG", "archive.tar.gz", "noext", "", "trailing.", ".hidden", "weird name.png"}
	for _, name := range names {
		got := GenerateFilename(name)
		assert.Regexp(t, filenamePattern, got, "original name %q", name)
	}
}

func TestGenerateFilename_Unique(t *testing.T) {
	const trials = 10000
	seen := make(map[string]struct{}, trials)
	for i := 0; i < trials; i++ {
		name := GenerateFilename("photo.jpg")
		_, dup := seen[name]
		require.False(t, dup, "duplicate filename %s after %d trials", name, i)
		seen[name] = struct{}{}
	}
}

func TestGenerateFilename_EntropyFailure(t *testing.T) {
	_, err := generateFilename("a.jpg", time.Now(), bytes.NewReader([]byte{1, 2, 3}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"cat.jpg", "jpg"},
		{"cat.PNG", "PNG"},
		{"archive.tar.gz", "gz"},
		{"noext", DefaultExtension},
		{"", DefaultExtension},
		{"trailing.", DefaultExtension},
		{".hidden", "hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileExtension(tt.name))
		})
	}
}
