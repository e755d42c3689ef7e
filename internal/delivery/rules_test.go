package delivery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amountOf(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolveKnownCities(t *testing.T) {
	tests := []struct {
		city        string
		minOrder    string
		displayName string
	}{
		{city: "Skalité", minOrder: "8.00", displayName: "Skalité"},
		{city: "Skalite", minOrder: "8.00", displayName: "Skalité"},
		{city: "Čierne", minOrder: "8.00", displayName: "Čierne"},
		{city: "Cierne", minOrder: "8.00", displayName: "Čierne"},
		{city: "Oščadnica", minOrder: "30.00", displayName: "Oščadnica"},
		{city: "Oscadnica", minOrder: "30.00", displayName: "Oščadnica"},
		{city: "Svrčinovec", minOrder: "30.00", displayName: "Svrčinovec"},
		{city: "Svrcinovec", minOrder: "30.00", displayName: "Svrčinovec"},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			rule := Resolve(tt.city)

			assert.True(t, rule.MinOrder.Equal(amountOf(tt.minOrder)))
			assert.True(t, rule.Fee.IsZero())
			assert.Equal(t, tt.displayName, rule.DisplayName)
		})
	}
}

func TestResolveTrimsWhitespace(t *testing.T) {
	rule := Resolve("  Skalité  ")

	assert.Equal(t, "Skalité", rule.DisplayName)
}

func TestResolveUnknownCityFallsBack(t *testing.T) {
	for _, city := range []string{"Nonexistent Town", "", "skalité"} {
		rule := Resolve(city)

		assert.True(t, rule.MinOrder.IsZero(), "city=%q", city)
		assert.True(t, rule.Fee.IsZero(), "city=%q", city)
		assert.Equal(t, "Iné mesto", rule.DisplayName, "city=%q", city)
	}
}

func TestIsMinimumMet(t *testing.T) {
	assert.False(t, IsMinimumMet("Skalité", amountOf("5.00")))
	assert.True(t, IsMinimumMet("Skalité", amountOf("8.00")))
	assert.True(t, IsMinimumMet("Skalité", amountOf("12.50")))

	// unknown city has no minimum
	assert.True(t, IsMinimumMet("Nonexistent Town", amountOf("0.50")))
}

func TestMinimumOrderMessage(t *testing.T) {
	msg := MinimumOrderMessage("Skalité", amountOf("5.00"))
	assert.Contains(t, msg, "Skalité")
	assert.Contains(t, msg, "8.00€")
	assert.Contains(t, msg, "3.00€")

	assert.Empty(t, MinimumOrderMessage("Skalité", amountOf("8.00")))
	assert.Empty(t, MinimumOrderMessage("Nonexistent Town", amountOf("1.00")))
}

func TestMinimumOrderMessageStatesShortfall(t *testing.T) {
	msg := MinimumOrderMessage("Oščadnica", amountOf("20.00"))

	assert.Contains(t, msg, "Oščadnica")
	assert.Contains(t, msg, "30.00€")
	assert.Contains(t, msg, "10.00€")
}
