package service

import "io"

// ImageStore persists uploaded product and profile images.
type ImageStore interface {
	// Save writes the upload under a collision-free name derived from the
	// owner id, the current unix time, and the sanitized original filename,
	// and returns the stored name.
	Save(ownerID uint, originalName string, content io.Reader) (string, error)

	// Remove deletes a stored image. Removing a missing file is not an
	// error; callers treat any failure as non-fatal.
	Remove(storedName string) error
}
