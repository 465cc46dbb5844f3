package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/agrofix/storefront-api/internal/domain/entity"
	"github.com/agrofix/storefront-api/internal/domain/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// PlaceOrderInput carries a new order; any caller-supplied status is
// ignored, every order starts at Pending.
type PlaceOrderInput struct {
	BuyerName       string
	BuyerContact    string
	DeliveryAddress string
	Items           []entity.OrderItem
}

// OrderService owns order records and their status lifecycle. With
// StrictFlow unset (the default) any valid status may replace any other;
// when set, only forward transitions and cancellation of non-terminal
// orders pass.
type OrderService struct {
	Repo       repository.OrderRepository
	StrictFlow bool
	Logger     *logrus.Logger
}

func NewOrderService(repo repository.OrderRepository, strictFlow bool, logger *logrus.Logger) *OrderService {
	return &OrderService{Repo: repo, StrictFlow: strictFlow, Logger: logger}
}

// Place persists a new Pending order and returns its generated id.
func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (string, error) {
	items := in.Items
	if items == nil {
		items = []entity.OrderItem{}
	}
	o := &entity.Order{
		BuyerName:       in.BuyerName,
		BuyerContact:    in.BuyerContact,
		DeliveryAddress: in.DeliveryAddress,
		Items:           items,
		Status:          entity.StatusPending,
	}
	if err := s.Repo.Create(ctx, o); err != nil {
		return "", err
	}
	return o.ID, nil
}

// Get returns the full order record.
func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	o, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// List returns every order, unfiltered.
func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	return s.Repo.List(ctx)
}

// UpdateStatus validates raw against the status enumeration and replaces
// the order's status field. No other field is mutated; an invalid value
// leaves the stored status untouched.
func (s *OrderService) UpdateStatus(ctx context.Context, id, raw string) (*entity.Order, error) {
	st, err := entity.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	if s.StrictFlow {
		cur, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}
		// setting the current value again is a no-op, not a violation
		if cur.Status != st && !cur.Status.CanTransition(st) {
			return nil, ErrInvalidTransition
		}
	}

	o, err := s.Repo.UpdateStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"order_id": o.ID, "status": o.Status}).Info("order status updated")
	}
	return o, nil
}
