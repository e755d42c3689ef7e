package catalog

import (
	"fmt"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
)

// Catalog is the static, immutable set of purchasable items plus the
// per-type extra lists. Loaded once at startup, read-only afterwards.
type Catalog struct {
	items  []domain.CatalogItem
	byID   map[string]*domain.CatalogItem
	extras map[domain.ProductType][]domain.Extra
}

func New() *Catalog {
	c := &Catalog{
		items:  menuItems,
		byID:   make(map[string]*domain.CatalogItem, len(menuItems)),
		extras: extrasByType,
	}
	for i := range c.items {
		c.byID[c.items[i].ID] = &c.items[i]
	}
	return c
}

// Items returns the full catalog in menu order.
func (c *Catalog) Items() []domain.CatalogItem {
	return c.items
}

// ByID looks up a single item.
func (c *Catalog) ByID(id string) (*domain.CatalogItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("catalog item %q not found", id)
	}
	return item, nil
}

// ByType returns all items of one product type, preserving menu order.
func (c *Catalog) ByType(t domain.ProductType) []domain.CatalogItem {
	var out []domain.CatalogItem
	for _, item := range c.items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

// ExtrasFor returns the optional add-ons available for a product type.
// Types without extras (drinks, snacks, sides) return an empty list.
func (c *Catalog) ExtrasFor(t domain.ProductType) []domain.Extra {
	return c.extras[t]
}

// ExtraFor resolves one extra id within a product type's extra list.
func (c *Catalog) ExtraFor(t domain.ProductType, extraID string) (*domain.Extra, error) {
	for _, e := range c.extras[t] {
		if e.ID == extraID {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("extra %q not available for type %q", extraID, t)
}
