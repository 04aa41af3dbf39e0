package repository

import (
	"context"
	"fmt"

	"marketplace/ecommerce/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save inserts a new order
func (r *OrderRepository) Save(ctx context.Context, o model.Order) (model.Order, error) {
	err := getExecutor(ctx, r.db).QueryRow(ctx,
		"INSERT INTO orders (user_id, product_names, total_price, order_date) VALUES ($1, $2, $3, $4) RETURNING id",
		o.UserID, o.ProductNames, o.TotalPrice, o.OrderDate,
	).Scan(&o.ID)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return o, nil
}

// FindByUserID returns the user's orders ordered by id
func (r *OrderRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	rows, err := getExecutor(ctx, r.db).Query(ctx,
		"SELECT id, user_id, product_names, total_price, order_date FROM orders WHERE user_id = $1 ORDER BY id", userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Order, error) {
		var o model.Order
		err := row.Scan(&o.ID, &o.UserID, &o.ProductNames, &o.TotalPrice, &o.OrderDate)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}
	return orders, nil
}
