package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrofix/storefront-api/internal/domain/entity"
	"github.com/agrofix/storefront-api/internal/domain/repository"
)

// OrderRepository stores orders with their line items embedded as a jsonb
// document, mirroring the snapshot semantics of the domain model.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO orders (buyer_name, buyer_contact, delivery_address, items, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, o.BuyerName, o.BuyerContact, o.DeliveryAddress, items, string(o.Status))

	return row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, buyer_name, buyer_contact, delivery_address, items, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, buyer_name, buyer_contact, delivery_address, items, status, created_at, updated_at
		FROM orders
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateStatus replaces the status field only; updated_at is refreshed by
// the statement, no other column is touched.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Order, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, buyer_name, buyer_contact, delivery_address, items, status, created_at, updated_at
	`, string(status), id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	o := &entity.Order{}
	var items []byte
	var status string
	if err := row.Scan(&o.ID, &o.BuyerName, &o.BuyerContact, &o.DeliveryAddress, &items,
		&status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	o.Status = entity.Status(status)
	return o, nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
