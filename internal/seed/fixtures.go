package seed

import (
	"time"

	"storefront-api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

// Categories returns the demo category fixtures.
func Categories() []models.Category {
	return []models.Category{
		{ID: "cat1", Name: "Women's Fashion", Slug: "womens-fashion", Image: "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=400", ProductCount: 12},
		{ID: "cat2", Name: "Men's Fashion", Slug: "mens-fashion", Image: "https://images.unsplash.com/photo-1617127365659-c47fa864d8bc?w=400", ProductCount: 8},
		{ID: "cat3", Name: "Accessories", Slug: "accessories", Image: "https://images.unsplash.com/photo-1523293182086-7651a899d37f?w=400", ProductCount: 15},
		{ID: "cat4", Name: "Beauty", Slug: "beauty", Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400", ProductCount: 10},
		{ID: "cat5", Name: "Electronics", Slug: "electronics", Image: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400", ProductCount: 6},
		{ID: "cat6", Name: "Home & Decor", Slug: "home-decor", Image: "https://images.unsplash.com/photo-1513694203232-719a280e022f?w=400", ProductCount: 9},
	}
}

// Products returns the demo product fixtures.
func Products() []models.Product {
	now := time.Now().UTC()
	return []models.Product{
		{
			ID:            "prod1",
			Name:          "Luxury Gold Edition Watch",
			Description:   "Elegant wristwatch with a gold finish, perfect for special occasions. Sophisticated and timeless design.",
			Price:         89.99,
			OriginalPrice: floatPtr(149.99),
			Category:      "Accessories",
			Images: []string{
				"https://images.unsplash.com/photo-1523170335258-f5ed11844a49?w=600",
				"https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=600",
			},
			Stock:        50,
			Supplier:     "aliexpress",
			Tags:         []string{"watch", "luxury", "gold", "elegant"},
			Rating:       4.8,
			ReviewsCount: 127,
			CreatedAt:    now,
		},
		{
			ID:            "prod2",
			Name:          "Premium Leather Handbag",
			Description:   "Genuine leather handbag with a modern, spacious design. Ideal for stylish everyday use.",
			Price:         119.99,
			OriginalPrice: floatPtr(199.99),
			Category:      "Women's Fashion",
			Images: []string{
				"https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=600",
				"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=600",
			},
			Stock:        30,
			Supplier:     "shein",
			Tags:         []string{"handbag", "leather", "women", "elegant"},
			Rating:       4.9,
			ReviewsCount: 203,
			CreatedAt:    now,
		},
		{
			ID:            "prod3",
			Name:          "Aviator Sunglasses",
			Description:   "Aviator-style sunglasses with UV400 protection. A classic design that never goes out of fashion.",
			Price:         39.99,
			OriginalPrice: floatPtr(79.99),
			Category:      "Accessories",
			Images: []string{
				"https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=600",
				"https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=600",
			},
			Stock:        100,
			Supplier:     "temu",
			Tags:         []string{"sunglasses", "aviator", "uv", "classic"},
			Rating:       4.6,
			ReviewsCount: 89,
			CreatedAt:    now,
		},
		{
			ID:            "prod4",
			Name:          "Elegant Evening Dress",
			Description:   "Long elegant dress ideal for formal events. Premium fabric with a perfect fit.",
			Price:         149.99,
			OriginalPrice: floatPtr(249.99),
			Category:      "Women's Fashion",
			Images: []string{
				"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=600",
				"https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=600",
			},
			Stock:        25,
			Supplier:     "shein",
			Tags:         []string{"dress", "elegant", "evening", "party"},
			Rating:       4.9,
			ReviewsCount: 156,
			CreatedAt:    now,
		},
		{
			ID:            "prod5",
			Name:          "Unisex Luxury Perfume 100ml",
			Description:   "Sophisticated, long-lasting fragrance. Notes of spices and noble woods.",
			Price:         69.99,
			OriginalPrice: floatPtr(129.99),
			Category:      "Beauty",
			Images: []string{
				"https://images.unsplash.com/photo-1541643600914-78b084683601?w=600",
				"https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=600",
			},
			Stock:        60,
			Supplier:     "aliexpress",
			Tags:         []string{"perfume", "fragrance", "luxury", "unisex"},
			Rating:       4.7,
			ReviewsCount: 234,
			CreatedAt:    now,
		},
		{
			ID:            "prod6",
			Name:          "Elite Pro Smartwatch",
			Description:   "Smartwatch with health monitoring, GPS, and water resistance. Perfect for athletes.",
			Price:         199.99,
			OriginalPrice: floatPtr(349.99),
			Category:      "Electronics",
			Images: []string{
				"https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=600",
				"https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?w=600",
			},
			Stock:        40,
			Supplier:     "temu",
			Tags:         []string{"smartwatch", "tech", "fitness", "health"},
			Rating:       4.8,
			ReviewsCount: 412,
			CreatedAt:    now,
		},
		{
			ID:            "prod7",
			Name:          "Premium Faux Fur Coat",
			Description:   "Luxurious coat in high-quality faux fur. Warm and elegant for the winter.",
			Price:         179.99,
			OriginalPrice: floatPtr(299.99),
			Category:      "Men's Fashion",
			Images: []string{
				"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=600",
				"https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=600",
			},
			Stock:        20,
			Supplier:     "shein",
			Tags:         []string{"coat", "winter", "fur", "men"},
			Rating:       4.7,
			ReviewsCount: 98,
			CreatedAt:    now,
		},
		{
			ID:            "prod8",
			Name:          "Luxury Scented Candle Set",
			Description:   "Set of 3 premium scented candles with relaxing fragrances. Perfect for setting the mood.",
			Price:         45.99,
			OriginalPrice: floatPtr(89.99),
			Category:      "Home & Decor",
			Images: []string{
				"https://images.unsplash.com/photo-1602874801006-94c29bcc5eb0?w=600",
				"https://images.unsplash.com/photo-1603006905003-be475563bc59?w=600",
			},
			Stock:        75,
			Supplier:     "aliexpress",
			Tags:         []string{"candles", "scented", "decor", "home"},
			Rating:       4.9,
			ReviewsCount: 267,
			CreatedAt:    now,
		},
	}
}
