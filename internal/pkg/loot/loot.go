// Package loot holds the drop-credit accumulator and the weighted card
// generator. Everything here is pure computation over an injected rand source,
// storage and transport stay in the services layer.
package loot

import (
	"errors"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCatalog = errors.New("invalid catalog")
var ErrEmptyCatalog = errors.New("empty catalog")

// DropQuantumSeconds is the study time that earns one drop credit.
const DropQuantumSeconds = 1200

// DropChoiceCount is how many candidate cards a single drop offers.
const DropChoiceCount = 3

type RarityTier struct {
	Name   string
	Weight int
	Value  int
}

type VersionTier struct {
	Name       string
	Weight     int
	Multiplier float64
}

type ConditionTier struct {
	Name       string
	Multiplier float64
}

// Config carries the generation policy tables. It is passed into NewGenerator
// as a value and never mutated afterwards; table order is the declared
// selection order.
type Config struct {
	Rarities   []RarityTier
	Versions   []VersionTier
	Conditions []ConditionTier
}

// DefaultConfig returns the production policy tables. The collector-value
// inputs here are load-bearing: changing them re-prices every card the
// generator emits from then on.
func DefaultConfig() Config {
	return Config{
		Rarities: []RarityTier{
			{Name: "common", Weight: 100, Value: 1},
			{Name: "uncommon", Weight: 60, Value: 2},
			{Name: "rare", Weight: 30, Value: 3},
			{Name: "epic", Weight: 12, Value: 4},
			{Name: "legendary", Weight: 5, Value: 5},
			{Name: "mythic", Weight: 1, Value: 6},
		},
		Versions: []VersionTier{
			{Name: "normal", Weight: 80, Multiplier: 1.0},
			{Name: "shiny", Weight: 12, Multiplier: 1.5},
			{Name: "inverted", Weight: 6, Multiplier: 2.0},
			{Name: "gold", Weight: 2, Multiplier: 3.0},
		},
		Conditions: []ConditionTier{
			{Name: "worn", Multiplier: 0.85},
			{Name: "good", Multiplier: 1.0},
			{Name: "excellent", Multiplier: 1.1},
			{Name: "pristine", Multiplier: 1.25},
		},
	}
}

func (c Config) rarityValue(name string) (int, bool) {
	for _, tier := range c.Rarities {
		if tier.Name == name {
			return tier.Value, true
		}
	}
	return 0, false
}

func (c Config) versionMultiplier(name string) (float64, bool) {
	for _, tier := range c.Versions {
		if tier.Name == name {
			return tier.Multiplier, true
		}
	}
	return 0, false
}
