// Package storage implements image persistence on the local filesystem.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"echofinds/config"
	"echofinds/internal/domain/service"
	"echofinds/internal/errors"
)

// localImageStore keeps uploads in a flat directory. Stored names are
// `{ownerID}_{unixTimestamp}_{sanitizedOriginal}` so concurrent uploads by
// the same user cannot collide within a second and names stay portable.
type localImageStore struct {
	dir string
	now func() time.Time
}

// NewLocalImageStore creates the uploads directory if needed and returns
// the store.
func NewLocalImageStore(cfg *config.Config) (service.ImageStore, error) {
	dir := cfg.Uploads.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create uploads directory")
	}

	return &localImageStore{dir: dir, now: time.Now}, nil
}

// Save writes the upload and returns the stored filename.
func (s *localImageStore) Save(ownerID uint, originalName string, content io.Reader) (string, error) {
	name := strconv.FormatUint(uint64(ownerID), 10) +
		"_" + strconv.FormatInt(s.now().Unix(), 10) +
		"_" + SanitizeFilename(originalName)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create image file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", errors.Wrap(err, "failed to write image file")
	}

	return name, nil
}

// Remove deletes a stored image. A missing file is not an error.
func (s *localImageStore) Remove(storedName string) error {
	if storedName == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, SanitizeFilename(storedName)))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove image file")
	}

	return nil
}

// SanitizeFilename strips path components and reduces the name to a safe
// character set, so a hostile filename cannot escape the uploads directory.
func SanitizeFilename(name string) string {
	// Drop any directory part, whichever separator the client used.
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII, unicode.IsDigit(r) && r < unicode.MaxASCII:
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		cleaned = "upload"
	}

	return cleaned
}
