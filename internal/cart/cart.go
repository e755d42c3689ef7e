// Package cart implements the cart aggregate: an ordered sequence of line
// items with derived totals. All operations are synchronous, in-memory
// mutations; persistence is the caller's concern.
package cart

import (
	"errors"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrQuantityTooLow        = errors.New("quantity must be at least 1")
	ErrRequiredOptionMissing = errors.New("item requires an option selection")
	ErrOptionNotAllowed      = errors.New("item does not take an option selection")
	ErrIndexOutOfRange       = errors.New("line item index out of range")
)

// AddItem appends a new line item. Repeated adds of the same item and extras
// intentionally produce separate lines instead of merging quantities: the UI
// removes lines by position, so merging would make undo ambiguous.
//
// A selection must be present exactly when the catalog entry defines a
// required option: a missing selection and a spurious one both leave the cart
// untouched.
func AddItem(c *domain.Cart, item *domain.CatalogItem, quantity int, extras []domain.Extra, option *domain.SelectedOption) (*domain.LineItem, error) {
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}
	if item.RequiredOption != nil && option == nil {
		return nil, ErrRequiredOptionMissing
	}
	if item.RequiredOption == nil && option != nil {
		return nil, ErrOptionNotAllowed
	}

	line := domain.LineItem{
		Item:           *item,
		Quantity:       quantity,
		Extras:         dedupeExtras(extras),
		RequiredOption: option,
	}
	line.RecomputeTotal()

	c.Items = append(c.Items, line)
	return &c.Items[len(c.Items)-1], nil
}

// RemoveItem removes the line at index; later lines shift down. An index out
// of range returns ErrIndexOutOfRange and leaves the cart unchanged.
func RemoveItem(c *domain.Cart, index int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrIndexOutOfRange
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// UpdateQuantity sets the quantity of the line at index and re-derives its
// total from the line's own base price and extras. A quantity of zero or
// less behaves exactly like RemoveItem.
func UpdateQuantity(c *domain.Cart, index, quantity int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrIndexOutOfRange
	}
	if quantity <= 0 {
		return RemoveItem(c, index)
	}

	line := &c.Items[index]
	line.Quantity = quantity
	line.RecomputeTotal()
	return nil
}

// Clear empties the cart.
func Clear(c *domain.Cart) {
	c.Items = nil
}

// Subtotal sums line totals at full precision.
func Subtotal(c *domain.Cart) decimal.Decimal {
	return c.Subtotal()
}

// dedupeExtras keeps the first occurrence of each extra id, preserving order.
func dedupeExtras(extras []domain.Extra) []domain.Extra {
	if len(extras) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(extras))
	out := make([]domain.Extra, 0, len(extras))
	for _, e := range extras {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
