package loot

import (
	"math/rand"
)

type WeightedChoice struct {
	Key    string
	Weight int
}

// SelectWeighted picks a key with probability weight/total using a single
// uniform draw and a cumulative scan in the table's declared order, so a
// seeded rng reproduces the same picks. A table with no positive weight is a
// catalog bug, not a valid degenerate case.
func SelectWeighted(rng *rand.Rand, table []WeightedChoice) (string, error) {
	total := 0
	for _, choice := range table {
		if choice.Weight > 0 {
			total += choice.Weight
		}
	}
	if total <= 0 {
		return "", ErrInvalidCatalog
	}

	draw := rng.Intn(total)
	for _, choice := range table {
		if choice.Weight <= 0 {
			continue
		}
		draw -= choice.Weight
		if draw < 0 {
			return choice.Key, nil
		}
	}

	// unreachable while the scan covers the full total
	return table[len(table)-1].Key, nil
}
