package checkout

import (
	"github.com/Skyedown/pohoda-skalite/internal/delivery"
	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/Skyedown/pohoda-skalite/internal/ordering"
	"github.com/shopspring/decimal"
)

// GateResult is the outcome of the business-rule gates that sit beside field
// validation. A blocked gate is policy, not an error: it carries the banner
// message shown to the customer.
type GateResult struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
}

// EvaluateGate applies the ordering-window gate and, for delivery orders,
// the city minimum-order gate. Pickup orders skip the minimum entirely.
func EvaluateGate(method domain.DeliveryMethod, city string, subtotal decimal.Decimal, status ordering.StatusInfo) GateResult {
	if !status.CanOrder {
		return GateResult{Allowed: false, Message: status.Message}
	}

	if method == domain.DeliveryMethodDelivery && !delivery.IsMinimumMet(city, subtotal) {
		return GateResult{Allowed: false, Message: delivery.MinimumOrderMessage(city, subtotal)}
	}

	return GateResult{Allowed: true}
}
