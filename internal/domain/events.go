package domain

import "time"

// OrderPlacedEvent is published to the notification queue once an order has
// been validated and archived. Delivery of the resulting emails is
// best-effort and never blocks the order's success path.
type OrderPlacedEvent struct {
	EventType string    `json:"event_type"`
	OrderID   string    `json:"order_id"`
	Order     Order     `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced = "order.placed"
)
