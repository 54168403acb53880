package seed

import (
	"context"
	"fmt"

	"storefront-api/internal/models"
)

// Store is the subset of storage operations seeding needs.
type Store interface {
	CountProducts(ctx context.Context) (int64, error)
	InsertCategory(ctx context.Context, category *models.Category) error
	InsertProduct(ctx context.Context, product *models.Product) error
}

// Result reports what a seeding run did.
type Result struct {
	AlreadySeeded bool
	Products      int
	Categories    int
}

// Run populates the demo fixtures. It no-ops when any product already
// exists, so calling it repeatedly is safe.
func Run(ctx context.Context, store Store) (*Result, error) {
	existing, err := store.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing products: %w", err)
	}
	if existing > 0 {
		return &Result{AlreadySeeded: true}, nil
	}

	categories := Categories()
	for i := range categories {
		if err := store.InsertCategory(ctx, &categories[i]); err != nil {
			return nil, fmt.Errorf("failed to seed category %s: %w", categories[i].ID, err)
		}
	}

	products := Products()
	for i := range products {
		if err := store.InsertProduct(ctx, &products[i]); err != nil {
			return nil, fmt.Errorf("failed to seed product %s: %w", products[i].ID, err)
		}
	}

	return &Result{
		Products:   len(products),
		Categories: len(categories),
	}, nil
}
