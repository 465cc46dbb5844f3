package repository

import (
	"context"

	"github.com/agrofix/storefront-api/internal/domain/entity"
)

// OrderRepository defines the interface for order record access.
// UpdateStatus replaces the status field only and returns the updated row.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Order, error)
}
