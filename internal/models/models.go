package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog item. IDs are application-assigned so the
// Mongo _id never leaks into API responses.
type Product struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price" bson:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty" bson:"original_price,omitempty"`
	Category      string    `json:"category" bson:"category"`
	Images        []string  `json:"images" bson:"images"`
	Stock         int       `json:"stock" bson:"stock"`
	Supplier      string    `json:"supplier" bson:"supplier"`
	Tags          []string  `json:"tags" bson:"tags"`
	Rating        float64   `json:"rating" bson:"rating"`
	ReviewsCount  int       `json:"reviews_count" bson:"reviews_count"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// ProductCreate is the accepted creation payload. Price and Stock are
// pointers so a missing field is distinguishable from a zero value.
type ProductCreate struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	OriginalPrice *float64 `json:"original_price" binding:"omitempty,gte=0"`
	Category      string   `json:"category" binding:"required"`
	Images        []string `json:"images" binding:"required"`
	Stock         *int     `json:"stock" binding:"required,gte=0"`
	Supplier      string   `json:"supplier" binding:"required"`
	Tags          []string `json:"tags"`
}

// NewProduct fills system-assigned fields and defaults.
func (in *ProductCreate) NewProduct() *Product {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         *in.Price,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		Images:        in.Images,
		Stock:         *in.Stock,
		Supplier:      in.Supplier,
		Tags:          tags,
		Rating:        5.0,
		ReviewsCount:  0,
		CreatedAt:     time.Now().UTC(),
	}
}

type Category struct {
	ID           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name"`
	Slug         string `json:"slug" bson:"slug"`
	Image        string `json:"image" bson:"image"`
	ProductCount int    `json:"product_count" bson:"product_count"`
}

// CategoryCreate accepts a caller-supplied id so fixtures can pin stable
// identifiers; a missing id is generated.
type CategoryCreate struct {
	ID           string `json:"id"`
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug" binding:"required"`
	Image        string `json:"image" binding:"required"`
	ProductCount int    `json:"product_count" binding:"gte=0"`
}

func (in *CategoryCreate) NewCategory() *Category {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	return &Category{
		ID:           id,
		Name:         in.Name,
		Slug:         in.Slug,
		Image:        in.Image,
		ProductCount: in.ProductCount,
	}
}

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Order represents a customer order. Items and ShippingAddress stay
// schemaless and round-trip unchanged.
type Order struct {
	ID              string                   `json:"id" bson:"id"`
	UserEmail       string                   `json:"user_email" bson:"user_email"`
	UserName        string                   `json:"user_name" bson:"user_name"`
	Items           []map[string]interface{} `json:"items" bson:"items"`
	Total           float64                  `json:"total" bson:"total"`
	Status          string                   `json:"status" bson:"status"`
	PaymentMethod   string                   `json:"payment_method" bson:"payment_method"`
	ShippingAddress map[string]interface{}   `json:"shipping_address" bson:"shipping_address"`
	CreatedAt       time.Time                `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at" bson:"updated_at"`
}

type OrderCreate struct {
	UserEmail       string                   `json:"user_email" binding:"required"`
	UserName        string                   `json:"user_name" binding:"required"`
	Items           []map[string]interface{} `json:"items" binding:"required,min=1"`
	Total           *float64                 `json:"total" binding:"required,gte=0"`
	PaymentMethod   string                   `json:"payment_method" binding:"required"`
	ShippingAddress map[string]interface{}   `json:"shipping_address" binding:"required"`
}

// NewOrder assigns id and timestamps and starts the order as pending.
func (in *OrderCreate) NewOrder() *Order {
	now := time.Now().UTC()
	return &Order{
		ID:              uuid.New().String(),
		UserEmail:       in.UserEmail,
		UserName:        in.UserName,
		Items:           in.Items,
		Total:           *in.Total,
		Status:          OrderStatusPending,
		PaymentMethod:   in.PaymentMethod,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ChatMessage is an append-only record of one chatbot exchange.
type ChatMessage struct {
	ID        string    `json:"id" bson:"id"`
	SessionID string    `json:"session_id" bson:"session_id"`
	Message   string    `json:"message" bson:"message"`
	Response  string    `json:"response" bson:"response"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func NewChatMessage(sessionID, message, response string) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Message:   message,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
}
