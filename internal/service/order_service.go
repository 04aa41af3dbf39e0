package service

import (
	"context"
	"time"

	"marketplace/ecommerce/internal/model"
)

type OrderStore interface {
	Save(ctx context.Context, o model.Order) (model.Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}

type OrderService struct {
	store OrderStore
	now   func() time.Time
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

// PlaceOrder stores o as given apart from a fresh id and orderDate. Neither
// the user nor the product names are checked.
func (s *OrderService) PlaceOrder(ctx context.Context, o model.Order) (model.Order, error) {
	o.ID = 0
	o.OrderDate = s.now().UTC()
	return s.store.Save(ctx, o)
}

func (s *OrderService) ListOrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.store.FindByUserID(ctx, userID)
}
