package service

import (
	"context"
	"fmt"

	"github.com/Skyedown/pohoda-skalite/internal/cart"
	"github.com/Skyedown/pohoda-skalite/internal/catalog"
	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/Skyedown/pohoda-skalite/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService owns cart sessions. Mutations run synchronously in memory and
// then persist the full cart state fire-and-forget: a failing store is
// logged and the in-memory result still returned to the caller.
type CartService struct {
	catalog *catalog.Catalog
	store   repo.CartStore
	logger  *zap.SugaredLogger
}

func NewCartService(catalog *catalog.Catalog, store repo.CartStore, logger *zap.SugaredLogger) *CartService {
	return &CartService{
		catalog: catalog,
		store:   store,
		logger:  logger,
	}
}

// Create starts a new cart session.
func (s *CartService) Create(ctx context.Context) *domain.Cart {
	c := &domain.Cart{SessionID: uuid.NewString()}
	s.persist(ctx, c)
	return c
}

// Get loads a session's cart. A storage failure degrades to an empty cart
// rather than surfacing an error.
func (s *CartService) Get(ctx context.Context, sessionID string) *domain.Cart {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.logger.Errorw("failed to load cart, starting empty", "session_id", sessionID, "error", err)
		return &domain.Cart{SessionID: sessionID}
	}
	return c
}

// AddItem resolves the catalog references and appends a new line item.
func (s *CartService) AddItem(ctx context.Context, sessionID, itemID string, quantity int, extraIDs []string, optionID string) (*domain.Cart, error) {
	item, err := s.catalog.ByID(itemID)
	if err != nil {
		return nil, err
	}

	extras := make([]domain.Extra, 0, len(extraIDs))
	for _, extraID := range extraIDs {
		extra, err := s.catalog.ExtraFor(item.Type, extraID)
		if err != nil {
			return nil, err
		}
		extras = append(extras, *extra)
	}

	var option *domain.SelectedOption
	if item.RequiredOption != nil {
		if optionID == "" {
			return nil, cart.ErrRequiredOptionMissing
		}
		if !item.RequiredOption.HasOption(optionID) {
			return nil, fmt.Errorf("option %q is not a valid choice for %q", optionID, item.Name)
		}
		option = &domain.SelectedOption{
			Name:          item.RequiredOption.Name,
			SelectedValue: item.RequiredOption.OptionLabel(optionID),
		}
	}

	c := s.Get(ctx, sessionID)
	if _, err := cart.AddItem(c, item, quantity, extras, option); err != nil {
		return nil, err
	}

	s.persist(ctx, c)
	return c, nil
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*domain.Cart, error) {
	c := s.Get(ctx, sessionID)
	if err := cart.UpdateQuantity(c, index, quantity); err != nil {
		return nil, err
	}

	s.persist(ctx, c)
	return c, nil
}

// RemoveItem removes a line by position.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, index int) (*domain.Cart, error) {
	c := s.Get(ctx, sessionID)
	if err := cart.RemoveItem(c, index); err != nil {
		return nil, err
	}

	s.persist(ctx, c)
	return c, nil
}

// Clear empties the cart and purges the stored state.
func (s *CartService) Clear(ctx context.Context, sessionID string) *domain.Cart {
	c := &domain.Cart{SessionID: sessionID}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		s.logger.Errorw("failed to clear stored cart", "session_id", sessionID, "error", err)
	}

	return c
}

func (s *CartService) persist(ctx context.Context, c *domain.Cart) {
	if err := s.store.Save(ctx, c); err != nil {
		s.logger.Errorw("failed to persist cart", "session_id", c.SessionID, "error", err)
	}
}
