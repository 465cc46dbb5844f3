// Package blob abstracts persistence of uploaded product images so the
// backing store (local disk, object storage) is swappable without touching
// the catalog.
package blob

import (
	"context"
	"io"
)

// Store persists uploaded blobs under generated collision-resistant names.
type Store interface {
	// Save writes the blob and returns the path under which it is servable.
	// The stored name preserves the extension of filename.
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	// Remove deletes the blob at path. Removing an already absent blob is
	// not an error.
	Remove(ctx context.Context, path string) error
	// Owns reports whether path points into this store.
	Owns(path string) bool
}
