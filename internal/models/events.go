package models

import "time"

// Event types
const (
	EventTypeOrderCreated = "ORDER_CREATED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderCreatedEvent mirrors the order-created notification onto the event
// stream when a broker is configured.
type OrderCreatedEvent struct {
	BaseEvent
	OrderID   string  `json:"order_id"`
	UserEmail string  `json:"user_email"`
	UserName  string  `json:"user_name"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
}
