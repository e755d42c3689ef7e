package checkout

import (
	"testing"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/Skyedown/pohoda-skalite/internal/ordering"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func openStatus() ordering.StatusInfo {
	return ordering.StatusInfo{Status: ordering.StatusOpen, CanOrder: true}
}

func TestEvaluateGateAllowsOpenDeliveryAboveMinimum(t *testing.T) {
	result := EvaluateGate(domain.DeliveryMethodDelivery, "Skalité", decimal.RequireFromString("12.00"), openStatus())

	assert.True(t, result.Allowed)
	assert.Empty(t, result.Message)
}

func TestEvaluateGateBlocksWhenOrderingClosed(t *testing.T) {
	status := ordering.StatusInfo{
		Status:   ordering.StatusClosed,
		CanOrder: false,
		Message:  "Máme zatvorené. Objednávky prijímame od 10:00.",
	}

	result := EvaluateGate(domain.DeliveryMethodDelivery, "Skalité", decimal.RequireFromString("50.00"), status)

	assert.False(t, result.Allowed)
	assert.Equal(t, status.Message, result.Message)
}

func TestEvaluateGateBlocksDeliveryBelowMinimum(t *testing.T) {
	result := EvaluateGate(domain.DeliveryMethodDelivery, "Oščadnica", decimal.RequireFromString("20.00"), openStatus())

	assert.False(t, result.Allowed)
	assert.Contains(t, result.Message, "30.00€")
	assert.Contains(t, result.Message, "10.00€")
}

func TestEvaluateGatePickupIgnoresCityMinimum(t *testing.T) {
	// pickup has no delivery city, so no minimum applies regardless of subtotal
	result := EvaluateGate(domain.DeliveryMethodPickup, "", decimal.RequireFromString("3.50"), openStatus())

	assert.True(t, result.Allowed)
}

func TestEvaluateGateOrderingWindowWinsOverMinimum(t *testing.T) {
	status := ordering.StatusInfo{
		Status:   ordering.StatusOrdersClosed,
		CanOrder: false,
		Message:  "Objednávky sú už uzavreté.",
	}

	result := EvaluateGate(domain.DeliveryMethodDelivery, "Oščadnica", decimal.RequireFromString("5.00"), status)

	assert.False(t, result.Allowed)
	assert.Equal(t, status.Message, result.Message)
}
