package service

import (
	"context"
	"fmt"

	"marketplace/ecommerce/internal/model"

	"github.com/sirupsen/logrus"
)

// SeedCatalog is what the product table holds after every start.
var SeedCatalog = []model.Product{
	{
		Name:        "Gaming Laptop",
		Description: "High performance",
		Price:       1200.0,
		Stock:       10,
		ImageURL:    "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=500",
	},
	{
		Name:        "Wireless Mouse",
		Description: "Ergonomic mouse",
		Price:       25.0,
		Stock:       50,
		ImageURL:    "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=500",
	},
	{
		Name:        "Mechanical Keyboard",
		Description: "RGB keys",
		Price:       89.0,
		Stock:       20,
		ImageURL:    "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?w=500",
	},
}

// SeedProducts wipes the product table and inserts SeedCatalog. Products
// added at runtime do not survive it.
func SeedProducts(ctx context.Context, store ProductStore, log logrus.FieldLogger) error {
	saved, err := store.ReplaceAll(ctx, SeedCatalog)
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	log.WithField("products", len(saved)).Info("product catalog refreshed")
	return nil
}
