package domain

import (
	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypePizza  ProductType = "pizza"
	ProductTypeBurger ProductType = "burger"
	ProductTypeLangos ProductType = "langos"
	ProductTypeSides  ProductType = "sides"
	ProductTypeDrink  ProductType = "drink"
	ProductTypeSnack  ProductType = "snack"
)

func (t ProductType) Valid() bool {
	switch t {
	case ProductTypePizza, ProductTypeBurger, ProductTypeLangos, ProductTypeSides, ProductTypeDrink, ProductTypeSnack:
		return true
	}
	return false
}

type CatalogItem struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description,omitempty"`
	BasePrice      decimal.Decimal     `json:"base_price"`
	Type           ProductType         `json:"type"`
	Ingredients    []string            `json:"ingredients,omitempty"`
	Allergens      []string            `json:"allergens,omitempty"`
	Badge          string              `json:"badge,omitempty"`
	Weight         string              `json:"weight,omitempty"`
	Spicy          bool                `json:"spicy,omitempty"`
	RequiredOption *RequiredOptionSpec `json:"required_option,omitempty"`
}

type Extra struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// RequiredOptionSpec describes a mandatory single-choice attribute on a
// catalog item (e.g. sauce choice). A line item for such an item must carry
// exactly one selected option before checkout.
type RequiredOptionSpec struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Label   string               `json:"label"`
	Options []RequiredOptionItem `json:"options"`
}

type RequiredOptionItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// HasOption reports whether id is one of the spec's choices.
func (s *RequiredOptionSpec) HasOption(id string) bool {
	for _, opt := range s.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// OptionLabel resolves an option id to its display label.
func (s *RequiredOptionSpec) OptionLabel(id string) string {
	for _, opt := range s.Options {
		if opt.ID == id {
			return opt.Label
		}
	}
	return ""
}
