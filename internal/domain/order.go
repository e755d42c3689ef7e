package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodDelivery || m == DeliveryMethodPickup
}

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodCard
}

// OrderItem is a flattened line-item snapshot taken at submission time.
type OrderItem struct {
	Name           string          `json:"name" bson:"name"`
	Quantity       int             `json:"quantity" bson:"quantity"`
	BasePrice      decimal.Decimal `json:"base_price" bson:"base_price"`
	TotalPrice     decimal.Decimal `json:"total_price" bson:"total_price"`
	Extras         []Extra         `json:"extras,omitempty" bson:"extras,omitempty"`
	RequiredOption *SelectedOption `json:"required_option,omitempty" bson:"required_option,omitempty"`
}

type Pricing struct {
	Subtotal decimal.Decimal `json:"subtotal" bson:"subtotal"`
	Delivery decimal.Decimal `json:"delivery" bson:"delivery"`
	Total    decimal.Decimal `json:"total" bson:"total"`
}

// DeliveryDetails carries the contact and address data of an order. Street
// and City stay empty for pickup orders.
type DeliveryDetails struct {
	FullName string `json:"full_name" bson:"full_name"`
	Street   string `json:"street,omitempty" bson:"street,omitempty"`
	City     string `json:"city,omitempty" bson:"city,omitempty"`
	Phone    string `json:"phone" bson:"phone"`
	Email    string `json:"email" bson:"email"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order is the immutable submission snapshot handed to persistence and the
// notification path. It is never mutated after creation.
type Order struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderNumber    string             `json:"order_number" bson:"order_number"`
	Items          []OrderItem        `json:"items" bson:"items"`
	Pricing        Pricing            `json:"pricing" bson:"pricing"`
	DeliveryMethod DeliveryMethod     `json:"delivery_method" bson:"delivery_method"`
	Delivery       DeliveryDetails    `json:"delivery" bson:"delivery"`
	PaymentMethod  PaymentMethod      `json:"payment_method" bson:"payment_method"`
	Timestamp      time.Time          `json:"timestamp" bson:"timestamp"`
}
