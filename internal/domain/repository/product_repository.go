package repository

import (
	"context"

	"github.com/agrofix/storefront-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog record access.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
