package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/internal/models"
	"storefront-api/internal/util"
)

const (
	orderListLimit = 100
	revenueScanCap = 1000
)

// InsertOrder persists a new order.
func (s *Store) InsertOrder(ctx context.Context, order *models.Order) error {
	ctx, span := util.StartSpan(ctx, "Store.InsertOrder")
	defer span.End()

	_, err := s.orders().InsertOne(ctx, order)
	return err
}

// ListOrders returns up to 100 orders newest first, optionally filtered by
// exact buyer email.
func (s *Store) ListOrders(ctx context.Context, userEmail string) ([]models.Order, error) {
	ctx, span := util.StartSpan(ctx, "Store.ListOrders")
	defer span.End()

	filter := bson.M{}
	if userEmail != "" {
		filter["user_email"] = userEmail
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(orderListLimit)

	cursor, err := s.orders().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder retrieves an order by id.
func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "Store.GetOrder")
	defer span.End()

	var order models.Order
	err := s.orders().FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets the status and refreshes updated_at. Existence is
// decided by MatchedCount so re-applying the current status is not mistaken
// for a missing order.
func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) error {
	ctx, span := util.StartSpan(ctx, "Store.UpdateOrderStatus")
	defer span.End()

	result, err := s.orders().UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountOrders counts orders, optionally restricted to one status.
func (s *Store) CountOrders(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return s.orders().CountDocuments(ctx, filter)
}

// OrderTotals returns the total field of up to 1000 orders. Summing happens
// in the caller.
func (s *Store) OrderTotals(ctx context.Context) ([]float64, error) {
	ctx, span := util.StartSpan(ctx, "Store.OrderTotals")
	defer span.End()

	opts := options.Find().
		SetProjection(bson.M{"total": 1}).
		SetLimit(revenueScanCap)

	cursor, err := s.orders().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	totals := make([]float64, 0, len(docs))
	for _, d := range docs {
		totals = append(totals, d.Total)
	}
	return totals, nil
}
