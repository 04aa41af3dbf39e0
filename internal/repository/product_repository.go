package repository

import (
	"context"
	"fmt"

	"marketplace/ecommerce/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAll returns every product ordered by id
func (r *ProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	rows, err := getExecutor(ctx, r.db).Query(ctx, "SELECT id, name, description, price, stock, image_url FROM products ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Product, error) {
		var p model.Product
		err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

// Save inserts the product and returns it with its generated id. Any id
// already set on p is ignored.
func (r *ProductRepository) Save(ctx context.Context, p model.Product) (model.Product, error) {
	err := getExecutor(ctx, r.db).QueryRow(ctx,
		"INSERT INTO products (name, description, price, stock, image_url) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		p.Name, p.Description, p.Price, p.Stock, p.ImageURL,
	).Scan(&p.ID)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return p, nil
}

// DeleteByID removes the product if present. A missing id is not an error.
func (r *ProductRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := getExecutor(ctx, r.db).Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// ReplaceAll deletes every product and inserts products in one transaction.
func (r *ProductRepository) ReplaceAll(ctx context.Context, products []model.Product) ([]model.Product, error) {
	saved := make([]model.Product, 0, len(products))
	err := RunAtomic(ctx, r.db, func(ctx context.Context) error {
		if _, err := getExecutor(ctx, r.db).Exec(ctx, "DELETE FROM products"); err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}
		for _, p := range products {
			created, err := r.Save(ctx, p)
			if err != nil {
				return err
			}
			saved = append(saved, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
