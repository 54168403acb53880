package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/internal/models"
	"storefront-api/internal/util"
)

const productListLimit = 100

// ListProducts returns up to 100 products, optionally filtered by exact
// category and a case-insensitive search over name and description.
func (s *Store) ListProducts(ctx context.Context, category, search string) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "Store.ListProducts")
	defer span.End()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	cursor, err := s.products().Find(ctx, filter, options.Find().SetLimit(productListLimit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a product by its application-assigned id.
func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "Store.GetProduct")
	defer span.End()

	var product models.Product
	err := s.products().FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// InsertProduct persists a new product.
func (s *Store) InsertProduct(ctx context.Context, product *models.Product) error {
	ctx, span := util.StartSpan(ctx, "Store.InsertProduct")
	defer span.End()

	_, err := s.products().InsertOne(ctx, product)
	return err
}

// FeaturedProducts returns up to limit products ordered by rating descending.
func (s *Store) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "Store.FeaturedProducts")
	defer span.End()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.products().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CountProducts returns the total number of products.
func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	return s.products().CountDocuments(ctx, bson.M{})
}
