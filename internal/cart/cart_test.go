package cart

import (
	"testing"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id, price string) *domain.CatalogItem {
	return &domain.CatalogItem{
		ID:        id,
		Name:      id,
		BasePrice: decimal.RequireFromString(price),
		Type:      domain.ProductTypePizza,
	}
}

func testExtra(id, price string) domain.Extra {
	return domain.Extra{ID: id, Name: id, Price: decimal.RequireFromString(price)}
}

func TestAddItemComputesLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		extras   []domain.Extra
		quantity int
		want     string
	}{
		{name: "no extras single", base: "6.50", quantity: 1, want: "6.5"},
		{name: "no extras multiple", base: "7.50", quantity: 3, want: "22.5"},
		{
			name:     "two extras quantity two",
			base:     "6.50",
			extras:   []domain.Extra{testExtra("mozzarella", "0.80"), testExtra("sunka", "1.50")},
			quantity: 2,
			want:     "17.6",
		},
		{
			name:     "one extra",
			base:     "4.50",
			extras:   []domain.Extra{testExtra("extra-cheese", "0.80")},
			quantity: 1,
			want:     "5.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &domain.Cart{}

			line, err := AddItem(c, testItem("p1", tt.base), tt.quantity, tt.extras, nil)
			require.NoError(t, err)

			assert.True(t, line.TotalPrice.Equal(decimal.RequireFromString(tt.want)),
				"total = %s, want %s", line.TotalPrice, tt.want)
		})
	}
}

func TestAddItemNeverMergesLines(t *testing.T) {
	c := &domain.Cart{}
	item := testItem("p1", "6.50")

	_, err := AddItem(c, item, 1, nil, nil)
	require.NoError(t, err)
	_, err = AddItem(c, item, 1, nil, nil)
	require.NoError(t, err)

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.ItemCount())
}

func TestAddItemRejectsMissingRequiredOption(t *testing.T) {
	item := testItem("langos-3", "4.50")
	item.RequiredOption = &domain.RequiredOptionSpec{
		ID:   "sauce-choice",
		Name: "Výber omáčky",
		Options: []domain.RequiredOptionItem{
			{ID: "ketchup", Label: "Kečup"},
		},
	}

	c := &domain.Cart{}

	_, err := AddItem(c, item, 1, nil, nil)
	assert.ErrorIs(t, err, ErrRequiredOptionMissing)
	assert.Empty(t, c.Items)

	option := &domain.SelectedOption{Name: "Výber omáčky", SelectedValue: "Kečup"}
	line, err := AddItem(c, item, 1, nil, option)
	require.NoError(t, err)
	require.NotNil(t, line.RequiredOption)
	assert.Equal(t, "Kečup", line.RequiredOption.SelectedValue)
}

func TestAddItemRejectsSpuriousOption(t *testing.T) {
	c := &domain.Cart{}
	option := &domain.SelectedOption{Name: "Výber omáčky", SelectedValue: "Kečup"}

	_, err := AddItem(c, testItem("p1", "6.50"), 1, nil, option)
	assert.ErrorIs(t, err, ErrOptionNotAllowed)
	assert.Empty(t, c.Items)
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	c := &domain.Cart{}

	_, err := AddItem(c, testItem("p1", "6.50"), 0, nil, nil)
	assert.ErrorIs(t, err, ErrQuantityTooLow)
}

func TestAddItemDedupesExtras(t *testing.T) {
	c := &domain.Cart{}
	extras := []domain.Extra{
		testExtra("sunka", "1.50"),
		testExtra("sunka", "1.50"),
		testExtra("mozzarella", "0.80"),
	}

	line, err := AddItem(c, testItem("p1", "6.50"), 1, extras, nil)
	require.NoError(t, err)

	assert.Len(t, line.Extras, 2)
	assert.True(t, line.TotalPrice.Equal(decimal.RequireFromString("8.8")))
}

func TestUpdateQuantityRecomputesTotal(t *testing.T) {
	c := &domain.Cart{}
	extras := []domain.Extra{testExtra("mozzarella", "0.80")}

	_, err := AddItem(c, testItem("p1", "6.50"), 1, extras, nil)
	require.NoError(t, err)

	require.NoError(t, UpdateQuantity(c, 0, 4))

	assert.Equal(t, 4, c.Items[0].Quantity)
	assert.True(t, c.Items[0].TotalPrice.Equal(decimal.RequireFromString("29.2")))
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		c := &domain.Cart{}

		_, err := AddItem(c, testItem("p1", "6.50"), 2, nil, nil)
		require.NoError(t, err)
		_, err = AddItem(c, testItem("p2", "7.50"), 1, nil, nil)
		require.NoError(t, err)

		require.NoError(t, UpdateQuantity(c, 0, quantity))

		require.Len(t, c.Items, 1)
		assert.Equal(t, "p2", c.Items[0].Item.ID)
	}
}

func TestRemoveItemShiftsLaterLines(t *testing.T) {
	c := &domain.Cart{}

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := AddItem(c, testItem(id, "6.50"), 1, nil, nil)
		require.NoError(t, err)
	}

	require.NoError(t, RemoveItem(c, 1))

	require.Len(t, c.Items, 2)
	assert.Equal(t, "p1", c.Items[0].Item.ID)
	assert.Equal(t, "p3", c.Items[1].Item.ID)
}

func TestRemoveItemOutOfRangeIsNoOp(t *testing.T) {
	c := &domain.Cart{}

	_, err := AddItem(c, testItem("p1", "6.50"), 1, nil, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, RemoveItem(c, 5), ErrIndexOutOfRange)
	assert.ErrorIs(t, RemoveItem(c, -1), ErrIndexOutOfRange)
	assert.Len(t, c.Items, 1)
}

func TestSubtotalAndItemCount(t *testing.T) {
	c := &domain.Cart{}

	_, err := AddItem(c, testItem("p1", "6.50"), 2, nil, nil)
	require.NoError(t, err)
	_, err = AddItem(c, testItem("drink-1", "1.75"), 3, nil, nil)
	require.NoError(t, err)

	assert.True(t, Subtotal(c).Equal(decimal.RequireFromString("18.25")))
	assert.Equal(t, 5, c.ItemCount())

	Clear(c)
	assert.Empty(t, c.Items)
	assert.True(t, Subtotal(c).IsZero())
}
