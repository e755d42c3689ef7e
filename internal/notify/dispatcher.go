// Package notify delivers order confirmation emails through an external
// relay. Delivery is best-effort end to end: callers log failures and move
// on, the customer-visible success path never depends on it.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
)

// Dispatcher sends the customer and restaurant emails for a placed order.
type Dispatcher interface {
	SendOrderEmails(ctx context.Context, order domain.Order) error
}

type Config struct {
	EndpointURL     string
	RestaurantEmail string
	RestaurantPhone string
	Timeout         time.Duration
}

// HTTPDispatcher posts the order payload to the email relay, which renders
// the templates and talks to the mail provider.
type HTTPDispatcher struct {
	config Config
	client *http.Client
}

func NewHTTPDispatcher(cfg Config) *HTTPDispatcher {
	return &HTTPDispatcher{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type orderEmailPayload struct {
	Order      domain.Order `json:"order"`
	Restaurant restaurant   `json:"restaurant"`
}

type restaurant struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (d *HTTPDispatcher) SendOrderEmails(ctx context.Context, order domain.Order) error {
	payload := orderEmailPayload{
		Order: order,
		Restaurant: restaurant{
			Email: d.config.RestaurantEmail,
			Phone: d.config.RestaurantPhone,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.EndpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach email relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email relay responded with status %d", resp.StatusCode)
	}

	return nil
}
