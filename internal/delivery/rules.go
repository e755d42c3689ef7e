// Package delivery maps city names to minimum-order and delivery-fee rules.
package delivery

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Rule struct {
	MinOrder    decimal.Decimal `json:"min_order"`
	Fee         decimal.Decimal `json:"fee"`
	DisplayName string          `json:"display_name"`
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// rules is keyed by both diacritic and plain spellings of each served city.
// This is an explicit alias table, not general diacritic folding: an
// unlisted misspelling falls through to DefaultRule.
var rules = map[string]Rule{
	"Skalité":    {MinOrder: amount("8.00"), Fee: decimal.Zero, DisplayName: "Skalité"},
	"Skalite":    {MinOrder: amount("8.00"), Fee: decimal.Zero, DisplayName: "Skalité"},
	"Čierne":     {MinOrder: amount("8.00"), Fee: decimal.Zero, DisplayName: "Čierne"},
	"Cierne":     {MinOrder: amount("8.00"), Fee: decimal.Zero, DisplayName: "Čierne"},
	"Oščadnica":  {MinOrder: amount("30.00"), Fee: decimal.Zero, DisplayName: "Oščadnica"},
	"Oscadnica":  {MinOrder: amount("30.00"), Fee: decimal.Zero, DisplayName: "Oščadnica"},
	"Svrčinovec": {MinOrder: amount("30.00"), Fee: decimal.Zero, DisplayName: "Svrčinovec"},
	"Svrcinovec": {MinOrder: amount("30.00"), Fee: decimal.Zero, DisplayName: "Svrčinovec"},
}

// DefaultRule applies to unknown or empty cities: no minimum, no fee.
var DefaultRule = Rule{
	MinOrder:    decimal.Zero,
	Fee:         decimal.Zero,
	DisplayName: "Iné mesto",
}

// Resolve returns the delivery rule for a city, falling back to DefaultRule
// for anything not in the alias table.
func Resolve(city string) Rule {
	if rule, ok := rules[strings.TrimSpace(city)]; ok {
		return rule
	}
	return DefaultRule
}

// IsMinimumMet reports whether subtotal satisfies the city's minimum order.
func IsMinimumMet(city string, subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(Resolve(city).MinOrder)
}

// MinimumOrderMessage returns the Slovak shortfall message, or "" when the
// city has no minimum or the minimum is already met.
func MinimumOrderMessage(city string, subtotal decimal.Decimal) string {
	rule := Resolve(city)

	if rule.MinOrder.IsZero() {
		return ""
	}

	remaining := rule.MinOrder.Sub(subtotal)
	if remaining.IsPositive() {
		return fmt.Sprintf(
			"Minimálna suma objednávky pre %s je %s€. Do minimálnej sumy chýba ešte %s€.",
			rule.DisplayName, rule.MinOrder.StringFixed(2), remaining.StringFixed(2),
		)
	}

	return ""
}
