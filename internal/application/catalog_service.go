package application

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/agrofix/storefront-api/internal/domain/entity"
	"github.com/agrofix/storefront-api/internal/domain/repository"
	"github.com/agrofix/storefront-api/pkg/blob"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrUploadTooLarge    = errors.New("uploaded file exceeds the size limit")
	ErrUnsupportedUpload = errors.New("only image files are allowed")
)

// ImageUpload carries an uploaded image payload into the catalog. Size and
// ContentType are checked before any store write happens.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// CatalogService owns product records and their associated image blobs.
type CatalogService struct {
	Repo          repository.ProductRepository
	Blobs         blob.Store
	MaxUploadSize int64
	Logger        *logrus.Logger
}

func NewCatalogService(repo repository.ProductRepository, blobs blob.Store, maxUploadSize int64, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Repo: repo, Blobs: blobs, MaxUploadSize: maxUploadSize, Logger: logger}
}

// Create persists a new product. When img is non-nil its bytes are stored
// under a freshly generated name and the product references the path the
// blob is servable at; otherwise the image reference stays null.
func (s *CatalogService) Create(ctx context.Context, name string, price float64, img *ImageUpload) (*entity.Product, error) {
	p := &entity.Product{Name: name, Price: price}

	if img != nil {
		if s.MaxUploadSize > 0 && img.Size > s.MaxUploadSize {
			return nil, ErrUploadTooLarge
		}
		if !strings.HasPrefix(img.ContentType, "image/") {
			return nil, ErrUnsupportedUpload
		}
		url, err := s.Blobs.Save(ctx, img.Filename, img.ContentType, img.Reader)
		if err != nil {
			return nil, err
		}
		p.ImageURL = &url
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns every product, unfiltered.
func (s *CatalogService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.List(ctx)
}

// Delete removes a product and, best-effort, its image blob. A blob removal
// failure is logged and swallowed; the catalog record deletion is the
// authoritative outcome.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if p.ImageURL != nil && s.Blobs.Owns(*p.ImageURL) {
		if err := s.Blobs.Remove(ctx, *p.ImageURL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"product_id": p.ID,
				"image_url":  *p.ImageURL,
			}).Warn("image blob removal failed")
		}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}
