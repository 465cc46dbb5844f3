package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrofix/storefront-api/internal/domain/entity"
	"github.com/agrofix/storefront-api/internal/domain/repository"
)

// -------- test fakes --------

type fakeOrderRepo struct {
	orders      map[string]*entity.Order
	nextID      int
	createErr   error
	updateCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	o.ID = fmt.Sprintf("order-%d", f.nextID)
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Order, error) {
	f.updateCalls++
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

// -------- tests --------

func placeTestOrder(t *testing.T, svc *OrderService) string {
	t.Helper()
	id, err := svc.Place(context.Background(), PlaceOrderInput{
		BuyerName:       "Asha",
		BuyerContact:    "+911234567890",
		DeliveryAddress: "12 Market Road",
		Items: []entity.OrderItem{
			{ProductID: "p1", Name: "Tomato", Price: 25, Quantity: 2},
		},
	})
	require.NoError(t, err)
	return id
}

func TestOrderService_PlaceStartsPending(t *testing.T) {
	t.Parallel()

	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, false, nil)

	id := placeTestOrder(t, svc)
	require.NotEmpty(t, id)

	o, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.Len(t, o.Items, 1)
	assert.Equal(t, "Tomato", o.Items[0].Name)
}

func TestOrderService_PlaceNilItemsBecomesEmptyList(t *testing.T) {
	t.Parallel()

	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, false, nil)

	id, err := svc.Place(context.Background(), PlaceOrderInput{
		BuyerName:       "B",
		BuyerContact:    "C",
		DeliveryAddress: "D",
	})
	require.NoError(t, err)

	o, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, o.Items)
	assert.Empty(t, o.Items)
}

func TestOrderService_GetUnknown(t *testing.T) {
	t.Parallel()

	svc := NewOrderService(newFakeOrderRepo(), false, nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, false, nil)
	id := placeTestOrder(t, svc)

	before, err := svc.Get(context.Background(), id)
	require.NoError(t, err)

	o, err := svc.UpdateStatus(context.Background(), id, "Shipped")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusShipped, o.Status)
	assert.False(t, o.UpdatedAt.Before(before.UpdatedAt))

	// permissive mode: any-to-any, including backwards
	o, err = svc.UpdateStatus(context.Background(), id, "Pending")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.Status)
}

func TestOrderService_UpdateStatusInvalidLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, false, nil)
	id := placeTestOrder(t, svc)

	for _, bad := range []string{"Delivered-ish", "shipped", ""} {
		_, err := svc.UpdateStatus(context.Background(), id, bad)
		var invalid *entity.InvalidStatusError
		require.True(t, errors.As(err, &invalid), "%q should be rejected", bad)
	}

	assert.Zero(t, repo.updateCalls, "invalid values must never reach the store")
	o, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.Status)
}

func TestOrderService_UpdateStatusUnknownOrder(t *testing.T) {
	t.Parallel()

	svc := NewOrderService(newFakeOrderRepo(), false, nil)

	_, err := svc.UpdateStatus(context.Background(), "missing", "Shipped")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_StrictFlow(t *testing.T) {
	t.Parallel()

	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, true, nil)
	id := placeTestOrder(t, svc)

	// skipping ahead is rejected
	_, err := svc.UpdateStatus(context.Background(), id, "Delivered")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// forward steps pass
	for _, next := range []string{"Processing", "Shipped", "Delivered"} {
		o, err := svc.UpdateStatus(context.Background(), id, next)
		require.NoError(t, err)
		assert.Equal(t, entity.Status(next), o.Status)
	}

	// terminal orders stay put
	_, err = svc.UpdateStatus(context.Background(), id, "Cancelled")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// re-applying the current value is a no-op, not a violation
	o, err := svc.UpdateStatus(context.Background(), id, "Delivered")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, o.Status)
}

func TestOrderService_StrictFlowCancellation(t *testing.T) {
	t.Parallel()

	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, true, nil)
	id := placeTestOrder(t, svc)

	o, err := svc.UpdateStatus(context.Background(), id, "Cancelled")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, o.Status)

	_, err = svc.UpdateStatus(context.Background(), id, "Pending")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
