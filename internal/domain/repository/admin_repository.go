package repository

import (
	"context"

	"github.com/agrofix/storefront-api/internal/domain/entity"
)

// AdminRepository defines the interface for administrator record access.
type AdminRepository interface {
	Create(ctx context.Context, a *entity.Admin) error
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	Count(ctx context.Context) (int64, error)
}
