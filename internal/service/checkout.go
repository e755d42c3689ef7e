package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Skyedown/pohoda-skalite/internal/checkout"
	"github.com/Skyedown/pohoda-skalite/internal/delivery"
	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/Skyedown/pohoda-skalite/internal/ordering"
	"github.com/Skyedown/pohoda-skalite/internal/queue"
	"github.com/Skyedown/pohoda-skalite/internal/repo"
	"github.com/Skyedown/pohoda-skalite/internal/sanitize"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError carries the per-field error map of a rejected form.
type ValidationError struct {
	Fields checkout.ValidationErrors
}

func (e *ValidationError) Error() string {
	return "order form validation failed"
}

// GateBlockedError is a policy block (ordering window closed, minimum order
// not met, admin pause), not a system failure. Message is customer-facing.
type GateBlockedError struct {
	Message string
}

func (e *GateBlockedError) Error() string {
	return e.Message
}

// CheckoutService turns a valid cart plus form into an immutable order
// snapshot: archive it, queue the notification, clear the cart. Only field
// validation and the business gates can stop an order; archive and
// notification failures are logged and swallowed.
type CheckoutService struct {
	carts    *CartService
	orders   repo.OrderRepository
	broker   queue.Broker
	poller   *ordering.Poller
	location *time.Location
	logger   *zap.SugaredLogger
}

func NewCheckoutService(
	carts *CartService,
	orders repo.OrderRepository,
	broker queue.Broker,
	poller *ordering.Poller,
	location *time.Location,
	logger *zap.SugaredLogger,
) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		orders:   orders,
		broker:   broker,
		poller:   poller,
		location: location,
		logger:   logger,
	}
}

// PlaceOrder validates the form, applies the availability and minimum-order
// gates, and on success returns the order snapshot with the cart cleared.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, req checkout.Request, payment domain.PaymentMethod) (*domain.Order, error) {
	c := s.carts.Get(ctx, sessionID)
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if !payment.Valid() {
		return nil, &ValidationError{Fields: checkout.ValidationErrors{"paymentMethod": "Neplatný spôsob platby"}}
	}

	if errs := checkout.Validate(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	subtotal := c.Subtotal()
	city := orderCity(req)

	// evaluate fresh, not from the last poll tick
	status := s.poller.Refresh(ctx)

	if gate := checkout.EvaluateGate(req.Method(), city, subtotal, status); !gate.Allowed {
		return nil, &GateBlockedError{Message: gate.Message}
	}

	order := s.buildOrder(c, req, payment, subtotal)

	if err := s.orders.Create(ctx, order); err != nil {
		// archiving is best-effort: the order is placed once validated
		s.logger.Errorw("failed to archive order", "order_number", order.OrderNumber, "error", err)
	}

	s.publishNotification(ctx, order)

	s.carts.Clear(ctx, sessionID)

	s.logger.Infow("order placed",
		"order_number", order.OrderNumber,
		"delivery_method", order.DeliveryMethod,
		"total", order.Pricing.Total.StringFixed(2),
		"items", len(order.Items),
	)

	return order, nil
}

func (s *CheckoutService) buildOrder(c *domain.Cart, req checkout.Request, payment domain.PaymentMethod, subtotal decimal.Decimal) *domain.Order {
	now := time.Now().In(s.location)

	items := make([]domain.OrderItem, 0, len(c.Items))
	for i := range c.Items {
		line := &c.Items[i]
		items = append(items, domain.OrderItem{
			Name:           line.Item.Name,
			Quantity:       line.Quantity,
			BasePrice:      line.Item.BasePrice,
			TotalPrice:     line.TotalPrice,
			Extras:         line.Extras,
			RequiredOption: line.RequiredOption,
		})
	}

	deliveryFee := decimal.Zero
	details := domain.DeliveryDetails{
		FullName: req.ContactInfo().FullName,
		Phone:    req.ContactInfo().Phone,
		Email:    req.ContactInfo().Email,
	}

	switch r := req.(type) {
	case checkout.DeliveryRequest:
		deliveryFee = delivery.Resolve(r.City).Fee
		details.Street = r.Street
		details.City = r.City
		details.Notes = r.Notes
	case checkout.PickupRequest:
		details.Notes = r.Notes
	}

	return &domain.Order{
		OrderNumber:    now.Format("20060102150405"),
		Items:          items,
		Pricing:        domain.Pricing{Subtotal: subtotal, Delivery: deliveryFee, Total: subtotal.Add(deliveryFee)},
		DeliveryMethod: req.Method(),
		Delivery:       details,
		PaymentMethod:  payment,
		Timestamp:      now,
	}
}

// publishNotification queues the sanitized order for email dispatch. A
// publish failure never fails the order.
func (s *CheckoutService) publishNotification(ctx context.Context, order *domain.Order) {
	event := domain.OrderPlacedEvent{
		EventType: domain.EventOrderPlaced,
		OrderID:   order.OrderNumber,
		Order:     sanitize.Order(*order),
		Timestamp: order.Timestamp,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "order_number", order.OrderNumber, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderNotifications, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order notification", "order_number", order.OrderNumber, "error", err)
	}
}

func orderCity(req checkout.Request) string {
	if r, ok := req.(checkout.DeliveryRequest); ok {
		return r.City
	}
	return ""
}
