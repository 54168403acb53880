package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/internal/models"
	"storefront-api/internal/util"
)

const categoryListLimit = 50

// ListCategories returns up to 50 categories in storage order.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	ctx, span := util.StartSpan(ctx, "Store.ListCategories")
	defer span.End()

	cursor, err := s.categories().Find(ctx, bson.M{}, options.Find().SetLimit(categoryListLimit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]models.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// InsertCategory persists a new category. Slug uniqueness is left to the
// collection's own indexes.
func (s *Store) InsertCategory(ctx context.Context, category *models.Category) error {
	ctx, span := util.StartSpan(ctx, "Store.InsertCategory")
	defer span.End()

	_, err := s.categories().InsertOne(ctx, category)
	return err
}
