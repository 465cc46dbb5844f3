package blob

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// GCSStore keeps blobs in a Google Cloud Storage bucket under a fixed
// object prefix. Objects are addressed by their public URL.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket, prefix: "products"}
}

func (s *GCSStore) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	objectPath := s.prefix + "/" + name

	wc := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return s.publicURL(objectPath), nil
}

func (s *GCSStore) Remove(ctx context.Context, path string) error {
	if !s.Owns(path) {
		return nil
	}
	objectPath := strings.TrimPrefix(path, s.urlBase())
	err := s.client.Bucket(s.bucket).Object(objectPath).Delete(ctx)
	if err == storage.ErrObjectNotExist {
		return nil
	}
	return err
}

func (s *GCSStore) Owns(path string) bool {
	return strings.HasPrefix(path, s.urlBase())
}

func (s *GCSStore) urlBase() string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucket)
}

func (s *GCSStore) publicURL(objectPath string) string {
	return s.urlBase() + objectPath
}

var _ Store = (*GCSStore)(nil)
