package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Skyedown/pohoda-skalite/internal/cart"
	"github.com/Skyedown/pohoda-skalite/internal/catalog"
	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCartStore keeps carts in memory and can be switched to fail every call.
type fakeCartStore struct {
	carts map[string]*domain.Cart
	fail  bool
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCartStore) Save(_ context.Context, c *domain.Cart) error {
	if f.fail {
		return errors.New("store unavailable")
	}
	copied := *c
	copied.Items = append([]domain.LineItem(nil), c.Items...)
	f.carts[c.SessionID] = &copied
	return nil
}

func (f *fakeCartStore) Load(_ context.Context, sessionID string) (*domain.Cart, error) {
	if f.fail {
		return nil, errors.New("store unavailable")
	}
	if c, ok := f.carts[sessionID]; ok {
		copied := *c
		copied.Items = append([]domain.LineItem(nil), c.Items...)
		return &copied, nil
	}
	return &domain.Cart{SessionID: sessionID}, nil
}

func (f *fakeCartStore) Clear(_ context.Context, sessionID string) error {
	if f.fail {
		return errors.New("store unavailable")
	}
	delete(f.carts, sessionID)
	return nil
}

func newCartServiceForTest(store *fakeCartStore) *CartService {
	return NewCartService(catalog.New(), store, zap.NewNop().Sugar())
}

func TestCartServiceCreateAssignsSessionID(t *testing.T) {
	svc := newCartServiceForTest(newFakeCartStore())

	c := svc.Create(context.Background())

	assert.NotEmpty(t, c.SessionID)
	assert.Empty(t, c.Items)
}

func TestCartServiceAddItemResolvesCatalog(t *testing.T) {
	store := newFakeCartStore()
	svc := newCartServiceForTest(store)

	c := svc.Create(context.Background())

	updated, err := svc.AddItem(context.Background(), c.SessionID, "p1", 2, []string{"sunka", "mozzarella"}, "")
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	line := updated.Items[0]
	assert.Equal(t, "Margherita", line.Item.Name)
	assert.Len(t, line.Extras, 2)
	assert.True(t, line.TotalPrice.Equal(decimal.RequireFromString("17.6")))

	// mutation reached the store
	stored, err := store.Load(context.Background(), c.SessionID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
}

func TestCartServiceAddItemUnknownItem(t *testing.T) {
	svc := newCartServiceForTest(newFakeCartStore())

	_, err := svc.AddItem(context.Background(), "session", "no-such-item", 1, nil, "")
	assert.Error(t, err)
}

func TestCartServiceAddItemUnknownExtra(t *testing.T) {
	svc := newCartServiceForTest(newFakeCartStore())

	// bacon belongs to burgers, not pizzas
	_, err := svc.AddItem(context.Background(), "session", "p1", 1, []string{"bacon"}, "")
	assert.Error(t, err)
}

func TestCartServiceAddItemRequiredOption(t *testing.T) {
	svc := newCartServiceForTest(newFakeCartStore())

	_, err := svc.AddItem(context.Background(), "session", "langos-3", 1, nil, "")
	assert.ErrorIs(t, err, cart.ErrRequiredOptionMissing)

	_, err = svc.AddItem(context.Background(), "session", "langos-3", 1, nil, "mustard")
	assert.Error(t, err)

	c, err := svc.AddItem(context.Background(), "session", "langos-3", 1, nil, "ketchup")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	require.NotNil(t, c.Items[0].RequiredOption)
	assert.Equal(t, "Výber omáčky", c.Items[0].RequiredOption.Name)
	assert.Equal(t, "Kečup", c.Items[0].RequiredOption.SelectedValue)
}

func TestCartServiceMutationsSurviveStoreFailure(t *testing.T) {
	store := newFakeCartStore()
	store.fail = true
	svc := newCartServiceForTest(store)

	c, err := svc.AddItem(context.Background(), "session", "p1", 1, nil, "")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)

	cleared := svc.Clear(context.Background(), "session")
	assert.Empty(t, cleared.Items)
}

func TestCartServiceGetFallsBackToEmptyCart(t *testing.T) {
	store := newFakeCartStore()
	store.fail = true
	svc := newCartServiceForTest(store)

	c := svc.Get(context.Background(), "session")

	assert.Equal(t, "session", c.SessionID)
	assert.Empty(t, c.Items)
}

func TestCartServiceUpdateAndRemove(t *testing.T) {
	svc := newCartServiceForTest(newFakeCartStore())

	c := svc.Create(context.Background())
	_, err := svc.AddItem(context.Background(), c.SessionID, "p1", 1, nil, "")
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), c.SessionID, "drink-1", 1, nil, "")
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(context.Background(), c.SessionID, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Items[0].Quantity)

	updated, err = svc.RemoveItem(context.Background(), c.SessionID, 0)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "drink-1", updated.Items[0].Item.ID)

	_, err = svc.RemoveItem(context.Background(), c.SessionID, 10)
	assert.ErrorIs(t, err, cart.ErrIndexOutOfRange)
}
