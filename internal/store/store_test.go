package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/models"
)

// newTestStore connects to the database named by MONGO_TEST_URL, or skips.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URL")
	if uri == "" {
		t.Skip("MONGO_TEST_URL not set, skipping integration test")
	}

	st, err := NewStore(uri, "storefront_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = st.db.Drop(ctx)
		_ = st.Close(ctx)
	})
	return st
}

func TestProductRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	product := &models.Product{
		ID:        "it-prod1",
		Name:      "Gold Watch",
		Price:     299.99,
		Category:  "Accessories",
		Images:    []string{},
		Tags:      []string{"watch"},
		Rating:    5.0,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, st.InsertProduct(ctx, product))

	got, err := st.GetProduct(ctx, "it-prod1")
	require.NoError(t, err)
	assert.Equal(t, product.Name, got.Name)
	assert.Equal(t, product.Price, got.Price)

	_, err = st.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProductsFilters(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	fixtures := []models.Product{
		{ID: "it-p1", Name: "Gold Watch", Description: "A luxury timepiece", Category: "Accessories"},
		{ID: "it-p2", Name: "Silk Scarf", Description: "Hand-rolled silk", Category: "Accessories"},
		{ID: "it-p3", Name: "Face Serum", Description: "Vitamin C serum", Category: "Beauty"},
	}
	for i := range fixtures {
		require.NoError(t, st.InsertProduct(ctx, &fixtures[i]))
	}

	byCategory, err := st.ListProducts(ctx, "Beauty", "")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "it-p3", byCategory[0].ID)

	// Search is case-insensitive and matches name or description.
	bySearch, err := st.ListProducts(ctx, "", "silk")
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "it-p2", bySearch[0].ID)

	both, err := st.ListProducts(ctx, "Accessories", "WATCH")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "it-p1", both[0].ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	order := &models.Order{
		ID:        "it-order1",
		UserEmail: "jo@example.com",
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.InsertOrder(ctx, order))

	require.NoError(t, st.UpdateOrderStatus(ctx, "it-order1", models.OrderStatusShipped))

	got, err := st.GetOrder(ctx, "it-order1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	err = st.UpdateOrderStatus(ctx, "missing", models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountOrdersAndTotals(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	orders := []models.Order{
		{ID: "it-o1", Status: models.OrderStatusPending, Total: 10.5},
		{ID: "it-o2", Status: models.OrderStatusPending, Total: 20.0},
		{ID: "it-o3", Status: models.OrderStatusDelivered, Total: 69.5},
	}
	for i := range orders {
		require.NoError(t, st.InsertOrder(ctx, &orders[i]))
	}

	total, err := st.CountOrders(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	pending, err := st.CountOrders(ctx, models.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	totals, err := st.OrderTotals(ctx)
	require.NoError(t, err)
	var sum float64
	for _, v := range totals {
		sum += v
	}
	assert.Equal(t, 100.0, sum)
}
