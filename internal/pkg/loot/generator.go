package loot

import (
	"fmt"
	"math"
	"math/rand"

	"studycards/internal/models"
)

type Generator struct {
	cfg Config
}

func NewGenerator(cfg Config) (*Generator, error) {
	if len(cfg.Rarities) == 0 || len(cfg.Versions) == 0 || len(cfg.Conditions) == 0 {
		return nil, ErrInvalidCatalog
	}

	return &Generator{cfg}, nil
}

// DropChoices samples exactly DropChoiceCount candidate cards from the
// catalog. It either returns a full set or an error, never a partial one.
func (g *Generator) DropChoices(rng *rand.Rand, catalog *models.Catalog) ([]models.GeneratedCard, error) {
	cards := make([]models.GeneratedCard, 0, DropChoiceCount)
	for i := 0; i < DropChoiceCount; i++ {
		card, err := g.generateCard(rng, catalog)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, nil
}

func (g *Generator) generateCard(rng *rand.Rand, catalog *models.Catalog) (models.GeneratedCard, error) {
	model, rarity, err := g.pickModel(rng, catalog)
	if err != nil {
		return models.GeneratedCard{}, err
	}

	category := catalog.CategoryByID(model.CategoryID)
	if category == nil {
		return models.GeneratedCard{}, fmt.Errorf("%w: model %q references unknown category %q", ErrInvalidCatalog, model.ModelID, model.CategoryID)
	}

	weightRange := resolveRange(model.WeightRange, category.DefaultWeightRange)
	priceRange := resolveRange(model.PriceRange, category.DefaultPriceRange)
	aestheticRange := resolveRange(model.AestheticRange, category.DefaultAestheticRange)
	if !weightRange.Valid() || !priceRange.Valid() || !aestheticRange.Valid() {
		return models.GeneratedCard{}, fmt.Errorf("%w: category %q has no usable stat ranges", ErrInvalidCatalog, category.CategoryID)
	}

	version, err := SelectWeighted(rng, versionTable(g.cfg.Versions))
	if err != nil {
		return models.GeneratedCard{}, err
	}
	condition := g.cfg.Conditions[rng.Intn(len(g.cfg.Conditions))]

	aesthetic := int(math.Round(uniformIn(rng, aestheticRange)))
	price := math.Round(uniformIn(rng, priceRange)*100) / 100
	weight := math.Round(uniformIn(rng, weightRange)*10) / 10

	var color *string
	if len(model.ColorOptions) > 0 {
		picked := model.ColorOptions[rng.Intn(len(model.ColorOptions))]
		color = &picked
	}

	rarityValue, _ := g.cfg.rarityValue(rarity)
	versionMult, _ := g.cfg.versionMultiplier(version)

	return models.GeneratedCard{
		ModelID:        model.ModelID,
		ModelName:      model.Name,
		CategoryID:     model.CategoryID,
		Rarity:         rarity,
		Version:        version,
		Condition:      condition.Name,
		AestheticScore: aesthetic,
		Weight:         weight,
		Price:          price,
		Color:          color,
		CollectorValue: CollectorValue(rarityValue, aesthetic, versionMult, condition.Multiplier, price),
	}, nil
}

// pickModel draws a rarity tier, then a uniform model inside it. Tiers with no
// models are removed from the table and the rarity is redrawn, so a thin
// catalog still fills the slot instead of degrading to an empty card.
func (g *Generator) pickModel(rng *rand.Rand, catalog *models.Catalog) (*models.ItemModel, string, error) {
	table := rarityTable(g.cfg.Rarities)
	for len(table) > 0 {
		rarity, err := SelectWeighted(rng, table)
		if err != nil {
			return nil, "", err
		}

		pool := catalog.ModelsByRarity(rarity)
		if len(pool) > 0 {
			return pool[rng.Intn(len(pool))], rarity, nil
		}

		table = withoutKey(table, rarity)
	}

	return nil, "", ErrEmptyCatalog
}

// CollectorValue is the pricing formula claimed items are frozen with;
// changing it would reprice nothing retroactively but skew new claims.
func CollectorValue(rarityValue, aestheticScore int, versionMult, conditionMult, price float64) int {
	base := float64(rarityValue*10 + aestheticScore)
	return int(math.Round(base*versionMult*conditionMult + price))
}

// resolveRange prefers the model override when it is well-formed and falls
// back to the category default per field, not all-or-nothing.
func resolveRange(override, fallback models.StatRange) models.StatRange {
	if override.Valid() {
		return override
	}
	return fallback
}

func uniformIn(rng *rand.Rand, r models.StatRange) float64 {
	return r.Min() + rng.Float64()*(r.Max()-r.Min())
}

func rarityTable(tiers []RarityTier) []WeightedChoice {
	table := make([]WeightedChoice, len(tiers))
	for i, tier := range tiers {
		table[i] = WeightedChoice{Key: tier.Name, Weight: tier.Weight}
	}
	return table
}

func versionTable(tiers []VersionTier) []WeightedChoice {
	table := make([]WeightedChoice, len(tiers))
	for i, tier := range tiers {
		table[i] = WeightedChoice{Key: tier.Name, Weight: tier.Weight}
	}
	return table
}

func withoutKey(table []WeightedChoice, key string) []WeightedChoice {
	out := make([]WeightedChoice, 0, len(table))
	for _, choice := range table {
		if choice.Key != key {
			out = append(out, choice)
		}
	}
	return out
}
