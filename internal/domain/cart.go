package domain

import (
	"github.com/shopspring/decimal"
)

// SelectedOption is the resolved required-option choice stored on a line item.
type SelectedOption struct {
	Name          string `json:"name" bson:"name"`
	SelectedValue string `json:"selected_value" bson:"selected_value"`
}

// LineItem is one row of a cart: a catalog item with quantity, chosen extras
// and an optional required-option selection. TotalPrice is derived and kept
// at full precision; rounding happens only at display boundaries.
type LineItem struct {
	Item           CatalogItem     `json:"item" bson:"item"`
	Quantity       int             `json:"quantity" bson:"quantity"`
	Extras         []Extra         `json:"extras,omitempty" bson:"extras,omitempty"`
	RequiredOption *SelectedOption `json:"required_option,omitempty" bson:"required_option,omitempty"`
	TotalPrice     decimal.Decimal `json:"total_price" bson:"total_price"`
}

// ExtrasPrice is the per-unit surcharge of all chosen extras.
func (li *LineItem) ExtrasPrice() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range li.Extras {
		sum = sum.Add(e.Price)
	}
	return sum
}

// RecomputeTotal re-derives TotalPrice from the line's own base price,
// extras and quantity.
func (li *LineItem) RecomputeTotal() {
	li.TotalPrice = li.Item.BasePrice.Add(li.ExtrasPrice()).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an ordered sequence of line items owned by one client session.
type Cart struct {
	SessionID string     `json:"session_id" bson:"session_id"`
	Items     []LineItem `json:"items" bson:"items"`
}

// Subtotal sums all line totals at full precision.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for i := range c.Items {
		sum = sum.Add(c.Items[i].TotalPrice)
	}
	return sum
}

// ItemCount sums the quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}
