package repo

import (
	"context"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
)

// CartStore is the scoped key/value persistence for carts. Callers treat
// every failure as non-fatal: the in-memory cart stays authoritative.
type CartStore interface {
	Save(ctx context.Context, cart *domain.Cart) error
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}
