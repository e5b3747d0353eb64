package loot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectWeightedAlwaysPicksOnlyPositiveWeight(t *testing.T) {
	table := []WeightedChoice{
		{Key: "a", Weight: 1},
		{Key: "b", Weight: 0},
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		key, err := SelectWeighted(rng, table)
		require.NoError(t, err)
		require.Equal(t, "a", key)
	}
}

func TestSelectWeightedZeroTotal(t *testing.T) {
	table := []WeightedChoice{
		{Key: "a", Weight: 0},
		{Key: "b", Weight: 0},
	}

	_, err := SelectWeighted(rand.New(rand.NewSource(1)), table)
	require.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = SelectWeighted(rand.New(rand.NewSource(1)), nil)
	require.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestSelectWeightedDeterministicForSeed(t *testing.T) {
	table := []WeightedChoice{
		{Key: "common", Weight: 100},
		{Key: "rare", Weight: 10},
		{Key: "mythic", Weight: 1},
	}

	first := drawSequence(t, rand.New(rand.NewSource(42)), table, 50)
	second := drawSequence(t, rand.New(rand.NewSource(42)), table, 50)
	require.Equal(t, first, second)
}

func TestSelectWeightedCoversAllKeys(t *testing.T) {
	table := []WeightedChoice{
		{Key: "x", Weight: 1},
		{Key: "y", Weight: 1},
		{Key: "z", Weight: 1},
	}

	seen := map[string]int{}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 600; i++ {
		key, err := SelectWeighted(rng, table)
		require.NoError(t, err)
		seen[key]++
	}

	require.Len(t, seen, 3)
	for key, count := range seen {
		require.Greater(t, count, 100, "key %s drawn too rarely", key)
	}
}

func drawSequence(t *testing.T, rng *rand.Rand, table []WeightedChoice, n int) []string {
	t.Helper()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		key, err := SelectWeighted(rng, table)
		require.NoError(t, err)
		out = append(out, key)
	}
	return out
}
