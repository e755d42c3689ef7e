package catalog

import (
	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sauceChoice is the mandatory single-choice option on Lángoš Klasik.
var sauceChoice = domain.RequiredOptionSpec{
	ID:    "sauce-choice",
	Name:  "Výber omáčky",
	Label: "Vyberte omáčku",
	Options: []domain.RequiredOptionItem{
		{ID: "ketchup", Label: "Kečup"},
		{ID: "tartarska", Label: "Tatarská"},
	},
}

var menuItems = []domain.CatalogItem{
	// Pizza
	{
		ID:          "p1",
		Name:        "Margherita",
		Description: "Klasická napoletánska pizza s paradajkovou omáčkou a mozzarellou",
		BasePrice:   price("6.50"),
		Type:        domain.ProductTypePizza,
		Ingredients: []string{"Paradajková omáčka", "Mozzarella", "Bazalka", "Olivový olej"},
		Allergens:   []string{"1", "7"},
		Badge:       "classic",
		Weight:      "850g",
	},
	{
		ID:          "p2",
		Name:        "Prosciutto",
		Description: "Pizza so šunkou a syrom",
		BasePrice:   price("7.50"),
		Type:        domain.ProductTypePizza,
		Ingredients: []string{"Paradajková omáčka", "Mozzarella", "Šunka"},
		Allergens:   []string{"1", "7"},
		Badge:       "classic",
		Weight:      "850g",
	},
	{
		ID:          "p3",
		Name:        "Salami",
		Description: "Pikantná pizza so salámou",
		BasePrice:   price("7.50"),
		Type:        domain.ProductTypePizza,
		Ingredients: []string{"Paradajková omáčka", "Mozzarella", "Saláma"},
		Allergens:   []string{"1", "7"},
		Badge:       "classic",
		Weight:      "850g",
	},
	{
		ID:          "p4",
		Name:        "Quattro Formaggi",
		Description: "Pizza so štyrmi druhmi syrov",
		BasePrice:   price("8.50"),
		Type:        domain.ProductTypePizza,
		Ingredients: []string{"Mozzarella", "Gorgonzola", "Parmazán", "Ementál"},
		Allergens:   []string{"1", "7"},
		Badge:       "premium",
		Weight:      "850g",
	},
	{
		ID:          "p5",
		Name:        "Diavola",
		Description: "Ostrá pizza s pikantnou salámou",
		BasePrice:   price("8.00"),
		Type:        domain.ProductTypePizza,
		Ingredients: []string{"Paradajková omáčka", "Mozzarella", "Pikantná saláma", "Chilli"},
		Allergens:   []string{"1", "7"},
		Badge:       "premium",
		Weight:      "850g",
		Spicy:       true,
	},
	{
		ID:          "p6",
		Name:        "Vegetariana",
		Description: "Pizza so zeleninou",
		BasePrice:   price("7.50"),
		Type:        domain.ProductTypePizza,
		Ingredients: []string{"Paradajková omáčka", "Mozzarella", "Paprika", "Kukurica", "Olivy", "Šampiňóny"},
		Allergens:   []string{"1", "7"},
		Badge:       "classic",
		Weight:      "850g",
	},

	// Burgre
	{
		ID:          "burger-1",
		Name:        "Burger",
		Description: "Šťavnatý burger s čerstvými ingredienciami",
		BasePrice:   price("5.50"),
		Type:        domain.ProductTypeBurger,
		Ingredients: []string{"Hovädzí burger", "Syr", "Rajčina", "Šalát", "Cibuľa"},
		Allergens:   []string{"1", "3", "7"},
		Badge:       "classic",
	},
	{
		ID:          "burger-2",
		Name:        "Cheese Burger",
		Description: "Burger s extra syrom",
		BasePrice:   price("6.00"),
		Type:        domain.ProductTypeBurger,
		Ingredients: []string{"Hovädzí burger", "Dvojitý syr", "Rajčina", "Šalát"},
		Allergens:   []string{"1", "3", "7"},
		Badge:       "classic",
	},
	{
		ID:          "burger-3",
		Name:        "Bacon Burger",
		Description: "Burger so slaninou",
		BasePrice:   price("6.50"),
		Type:        domain.ProductTypeBurger,
		Ingredients: []string{"Hovädzí burger", "Slanina", "Syr", "Rajčina", "Šalát"},
		Allergens:   []string{"1", "3", "7"},
		Badge:       "premium",
	},

	// Lángoše
	{
		ID:          "langos-1",
		Name:        "Cesnakový Langoš",
		Description: "Tradičný langoš s cesnakom",
		BasePrice:   price("3.00"),
		Type:        domain.ProductTypeLangos,
		Ingredients: []string{"Cesnak"},
		Allergens:   []string{"1", "7"},
		Badge:       "classic",
	},
	{
		ID:          "langos-2",
		Name:        "Smotanový Lángoš",
		Description: "Tradičný langoš s cesnakom, kyslou smotanou a syrom a jarnou cibuľkou alebo pažítkou podľa sezóny",
		BasePrice:   price("4.50"),
		Type:        domain.ProductTypeLangos,
		Ingredients: []string{"Kyslá smotana", "cesnak", "syr", "Pažítka alebo jarná cibuľka (sezónne)"},
		Allergens:   []string{"1", "7"},
		Badge:       "classic",
	},
	{
		ID:             "langos-3",
		Name:           "Lángoš Klasik",
		Description:    "Lángoš s tatarskou alebo kečupom podľa výberu a syr",
		BasePrice:      price("4.50"),
		Type:           domain.ProductTypeLangos,
		Ingredients:    []string{"Kečup alebo Tatarka", "Syr"},
		Allergens:      []string{"1", "3", "7"},
		Badge:          "classic",
		RequiredOption: &sauceChoice,
	},
	{
		ID:          "langos-4",
		Name:        "Nutella Dream",
		Description: "Sladký langoš s Nutellou a čerstvým banánom",
		BasePrice:   price("4.50"),
		Type:        domain.ProductTypeLangos,
		Ingredients: []string{"Nutella", "Banán", "Práškový cukor"},
		Allergens:   []string{"1", "7", "8"},
	},

	// Prílohy
	{
		ID:          "prilohy-1",
		Name:        "Klasické hranolky",
		Description: "Chrumkavé zlatisté hranolky",
		BasePrice:   price("2.50"),
		Type:        domain.ProductTypeSides,
		Ingredients: []string{"Zemiaky", "Soľ"},
	},

	// Nápoje a snacky
	{
		ID:          "drink-1",
		Name:        "Coca Cola",
		Description: "Osviežujúci nápoj 330ml",
		BasePrice:   price("1.75"),
		Type:        domain.ProductTypeDrink,
	},
	{
		ID:          "drink-2",
		Name:        "Fanta",
		Description: "Pomarančový nápoj 330ml",
		BasePrice:   price("1.75"),
		Type:        domain.ProductTypeDrink,
	},
	{
		ID:          "drink-3",
		Name:        "Natura neperlivá",
		Description: "Minerálka 500ml",
		BasePrice:   price("1.50"),
		Type:        domain.ProductTypeDrink,
	},
	{
		ID:          "drink-4",
		Name:        "Rajec neperlivá",
		Description: "Minerálka 500ml",
		BasePrice:   price("1.50"),
		Type:        domain.ProductTypeDrink,
	},
	{
		ID:          "drink-5",
		Name:        "Sprite",
		Description: "Citrónový nápoj 330ml",
		BasePrice:   price("1.75"),
		Type:        domain.ProductTypeDrink,
	},
	{
		ID:          "drink-6",
		Name:        "Kofola",
		Description: "Tradičný nápoj 330ml",
		BasePrice:   price("1.50"),
		Type:        domain.ProductTypeDrink,
	},
	{
		ID:          "drink-7",
		Name:        "Tonic",
		Description: "Tonic water 250ml",
		BasePrice:   price("1.50"),
		Type:        domain.ProductTypeDrink,
	},
	{
		ID:          "snack-1",
		Name:        "Tyčinky Dru",
		Description: "Slané tyčinky 220g",
		BasePrice:   price("2.25"),
		Type:        domain.ProductTypeSnack,
		Allergens:   []string{"1"},
	},
}

var extrasByType = map[domain.ProductType][]domain.Extra{
	domain.ProductTypePizza: {
		// mäsové - 1.50 EUR
		{ID: "sunka", Name: "Šunka", Price: price("1.50")},
		{ID: "slanina", Name: "Slanina", Price: price("1.50")},
		{ID: "salama", Name: "Saláma", Price: price("1.50")},
		{ID: "klobasa", Name: "Klobása", Price: price("1.50")},
		// ostatné - 0.80 EUR
		{ID: "mozzarella", Name: "Extra mozzarella", Price: price("0.80")},
		{ID: "sampiony", Name: "Šampióny", Price: price("0.80")},
		{ID: "cierne-olivy", Name: "Čierne olivy", Price: price("0.80")},
		{ID: "rukola", Name: "Rukola", Price: price("0.80")},
		{ID: "chilli", Name: "Chilli papričky", Price: price("0.80")},
		{ID: "cervena-cibula", Name: "Červená cibuľa", Price: price("0.80")},
		{ID: "kukurica", Name: "Kukurica", Price: price("0.80")},
		{ID: "ananas", Name: "Ananás", Price: price("0.80")},
		{ID: "cherry-paradajky", Name: "Cherry paradajky", Price: price("0.80")},
	},
	domain.ProductTypeLangos: {
		{ID: "extra-cheese", Name: "Extra syr", Price: price("0.80")},
		{ID: "sour-cream", Name: "Kyslá smotana", Price: price("0.80")},
		{ID: "garlic", Name: "Cesnak", Price: price("0.80")},
		{ID: "nutella", Name: "Nutella", Price: price("0.80")},
		{ID: "banana", Name: "Banán", Price: price("0.80")},
	},
	domain.ProductTypeBurger: {
		{ID: "bacon", Name: "Slanina", Price: price("1.50")},
		{ID: "cheese", Name: "Syr", Price: price("0.80")},
	},
}
