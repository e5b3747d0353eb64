package loot

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"studycards/internal/models"
)

func testCatalog() *models.Catalog {
	return &models.Catalog{
		Categories: []*models.ItemCategory{
			{
				CategoryID:            "pencil",
				Name:                  "Pencil",
				DefaultWeightRange:    models.StatRange{1, 20},
				DefaultPriceRange:     models.StatRange{1, 5},
				DefaultAestheticRange: models.StatRange{1, 100},
			},
		},
		Models: []*models.ItemModel{
			{ModelID: "pencil_basic", CategoryID: "pencil", Name: "Basic Pencil", Rarity: "common", ColorOptions: []string{"yellow", "green"}},
			{ModelID: "pencil_dixon", CategoryID: "pencil", Name: "Dixon Pencil", Rarity: "common"},
			{ModelID: "pencil_fancy", CategoryID: "pencil", Name: "Fancy Pencil", Rarity: "uncommon"},
			{ModelID: "pencil_gold", CategoryID: "pencil", Name: "Gold Pencil", Rarity: "mythic", PriceRange: models.StatRange{100, 200}},
		},
	}
}

func TestDropChoicesShape(t *testing.T) {
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	rarities := map[string]bool{}
	for _, tier := range DefaultConfig().Rarities {
		rarities[tier.Name] = true
	}

	rng := rand.New(rand.NewSource(99))
	catalog := testCatalog()

	for round := 0; round < 50; round++ {
		cards, err := g.DropChoices(rng, catalog)
		require.NoError(t, err)
		require.Len(t, cards, DropChoiceCount)

		for _, card := range cards {
			require.True(t, rarities[card.Rarity], "unknown rarity %q", card.Rarity)
			require.NotEmpty(t, card.ModelID)
			require.NotEmpty(t, card.Version)
			require.NotEmpty(t, card.Condition)

			// price to 2 decimals, weight to 1 decimal
			require.InDelta(t, math.Round(card.Price*100), card.Price*100, 1e-9)
			require.InDelta(t, math.Round(card.Weight*10), card.Weight*10, 1e-9)
			require.GreaterOrEqual(t, card.AestheticScore, 1)
			require.LessOrEqual(t, card.AestheticScore, 100)
		}
	}
}

func TestDropChoicesRangeFallbackPerField(t *testing.T) {
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	catalog := &models.Catalog{
		Categories: []*models.ItemCategory{
			{
				CategoryID:            "eraser",
				DefaultWeightRange:    models.StatRange{2, 2},
				DefaultPriceRange:     models.StatRange{1, 5},
				DefaultAestheticRange: models.StatRange{10, 10},
			},
		},
		Models: []*models.ItemModel{
			{
				ModelID:    "eraser_plain",
				CategoryID: "eraser",
				Rarity:     "common",
				// empty override must fall back to [1,5]
				PriceRange: models.StatRange{},
				// malformed override (min > max) must fall back too
				WeightRange: models.StatRange{9, 1},
				// valid override wins over the default
				AestheticRange: models.StatRange{50, 50},
			},
		},
	}

	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 20; round++ {
		cards, err := g.DropChoices(rng, catalog)
		require.NoError(t, err)

		for _, card := range cards {
			require.GreaterOrEqual(t, card.Price, 1.0)
			require.LessOrEqual(t, card.Price, 5.0)
			require.Equal(t, 2.0, card.Weight)
			require.Equal(t, 50, card.AestheticScore)
		}
	}
}

func TestDropChoicesResamplesEmptyTiers(t *testing.T) {
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	catalog := testCatalog()
	// only mythic models left
	catalog.Models = catalog.Models[3:]

	rng := rand.New(rand.NewSource(11))
	cards, err := g.DropChoices(rng, catalog)
	require.NoError(t, err)
	require.Len(t, cards, DropChoiceCount)
	for _, card := range cards {
		require.Equal(t, "mythic", card.Rarity)
		require.Equal(t, "pencil_gold", card.ModelID)
	}
}

func TestDropChoicesEmptyCatalog(t *testing.T) {
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	catalog := &models.Catalog{
		Categories: testCatalog().Categories,
	}

	_, err = g.DropChoices(rand.New(rand.NewSource(1)), catalog)
	require.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestDropChoicesColorComesFromModelOptions(t *testing.T) {
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	catalog := testCatalog()
	rng := rand.New(rand.NewSource(23))

	for round := 0; round < 30; round++ {
		cards, err := g.DropChoices(rng, catalog)
		require.NoError(t, err)

		for _, card := range cards {
			switch card.ModelID {
			case "pencil_basic":
				require.NotNil(t, card.Color)
				require.Contains(t, []string{"yellow", "green"}, *card.Color)
			case "pencil_dixon":
				require.Nil(t, card.Color)
			}
		}
	}
}

func TestDropChoicesDeterministicForSeed(t *testing.T) {
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	catalog := testCatalog()
	first, err := g.DropChoices(rand.New(rand.NewSource(77)), catalog)
	require.NoError(t, err)
	second, err := g.DropChoices(rand.New(rand.NewSource(77)), catalog)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCollectorValue(t *testing.T) {
	tests := []struct {
		name          string
		rarityValue   int
		aesthetic     int
		versionMult   float64
		conditionMult float64
		price         float64
		want          int
	}{
		{name: "baseline", rarityValue: 1, aesthetic: 50, versionMult: 1.0, conditionMult: 1.0, price: 2.5, want: 63},
		{name: "gold pristine mythic", rarityValue: 6, aesthetic: 100, versionMult: 3.0, conditionMult: 1.25, price: 10, want: 610},
		{name: "worn common", rarityValue: 1, aesthetic: 1, versionMult: 1.0, conditionMult: 0.85, price: 1.05, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectorValue(tt.rarityValue, tt.aesthetic, tt.versionMult, tt.conditionMult, tt.price)
			require.Equal(t, tt.want, got)
		})
	}
}
