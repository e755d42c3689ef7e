package catalog

import (
	"testing"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	c := New()

	item, err := c.ByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Margherita", item.Name)
	assert.Equal(t, domain.ProductTypePizza, item.Type)

	_, err = c.ByID("missing")
	assert.Error(t, err)
}

func TestByTypePreservesMenuOrder(t *testing.T) {
	c := New()

	pizzas := c.ByType(domain.ProductTypePizza)

	require.Len(t, pizzas, 6)
	assert.Equal(t, "p1", pizzas[0].ID)
	assert.Equal(t, "p6", pizzas[5].ID)
	for _, p := range pizzas {
		assert.Equal(t, domain.ProductTypePizza, p.Type)
	}
}

func TestExtrasFor(t *testing.T) {
	c := New()

	assert.NotEmpty(t, c.ExtrasFor(domain.ProductTypePizza))
	assert.NotEmpty(t, c.ExtrasFor(domain.ProductTypeLangos))
	assert.NotEmpty(t, c.ExtrasFor(domain.ProductTypeBurger))

	// drinks and snacks carry no add-ons
	assert.Empty(t, c.ExtrasFor(domain.ProductTypeDrink))
	assert.Empty(t, c.ExtrasFor(domain.ProductTypeSnack))
}

func TestExtraFor(t *testing.T) {
	c := New()

	extra, err := c.ExtraFor(domain.ProductTypePizza, "sunka")
	require.NoError(t, err)
	assert.Equal(t, "Šunka", extra.Name)
	assert.Equal(t, "1.5", extra.Price.String())

	_, err = c.ExtraFor(domain.ProductTypeDrink, "sunka")
	assert.Error(t, err)
}

func TestFormatAllergens(t *testing.T) {
	assert.Equal(t, "1, 7", FormatAllergens([]string{"1", "7"}, false))
	assert.Equal(t,
		"Obilniny obsahujúce lepok, Mlieko a výrobky z neho",
		FormatAllergens([]string{"1", "7"}, true),
	)
	assert.Equal(t, "Alergén 99", FormatAllergens([]string{"99"}, true))
	assert.Empty(t, FormatAllergens(nil, true))
}

func TestRequiredOptionOnLangosKlasik(t *testing.T) {
	c := New()

	item, err := c.ByID("langos-3")
	require.NoError(t, err)
	require.NotNil(t, item.RequiredOption)
	assert.True(t, item.RequiredOption.HasOption("ketchup"))
	assert.True(t, item.RequiredOption.HasOption("tartarska"))
	assert.False(t, item.RequiredOption.HasOption("mustard"))
	assert.Equal(t, "Kečup", item.RequiredOption.OptionLabel("ketchup"))
}
