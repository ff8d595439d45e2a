package photo

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// DefaultExtension is used when the original name carries no extension.
const DefaultExtension = "jpg"

// GenerateFilename returns "<hash>_<random>_<millis>.<ext>" for originalName.
// The millisecond clock plus 64 random bits make collisions negligible, so callers
// never check for them.
func GenerateFilename(originalName string) string {
	name, err := generateFilename(originalName, time.Now(), rand.Reader)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(err)
	}
	return name
}

func generateFilename(originalName string, now time.Time, entropy io.Reader) (string, error) {
	timestamp := strconv.FormatInt(now.UnixMilli(), 10)

	random := make([]byte, 8)
	if _, err := io.ReadFull(entropy, random); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	sum := md5.Sum([]byte(originalName + timestamp))
	hash := hex.EncodeToString(sum[:])[:8]

	return hash + "_" + hex.EncodeToString(random) + "_" + timestamp + "." + FileExtension(originalName), nil
}

// FileExtension returns what follows the last '.' in name, or DefaultExtension
// when there is none.
func FileExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return DefaultExtension
	}
	return name[i+1:]
}
