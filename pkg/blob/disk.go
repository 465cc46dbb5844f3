package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore keeps blobs in a local directory, servable under urlPath.
type DiskStore struct {
	dir     string
	urlPath string // e.g. "/uploads"
}

func NewDiskStore(dir, urlPath string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, urlPath: strings.TrimSuffix(urlPath, "/")}, nil
}

// Dir returns the backing directory, for static file serving.
func (s *DiskStore) Dir() string { return s.dir }

func (s *DiskStore) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return s.urlPath + "/" + name, nil
}

func (s *DiskStore) Remove(ctx context.Context, path string) error {
	if !s.Owns(path) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(path, s.urlPath+"/"))
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *DiskStore) Owns(path string) bool {
	return strings.HasPrefix(path, s.urlPath+"/")
}

var _ Store = (*DiskStore)(nil)
