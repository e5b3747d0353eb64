package services

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studycards/internal/models"
)

func TestEnsureClaimable(t *testing.T) {
	tests := []struct {
		name    string
		drops   int
		wantErr error
	}{
		{"zero credits rejected", 0, ErrNoDropsAvailable},
		{"negative rejected", -1, ErrNoDropsAvailable},
		{"one credit passes", 1, nil},
		{"many credits pass", 7, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureClaimable(&models.StudyUser{UnclaimedDrops: tt.drops})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSerialForMint(t *testing.T) {
	t.Run("numbered while edition lasts", func(t *testing.T) {
		serial, err := serialForMint(42, nil, 500)
		require.NoError(t, err)
		require.NotNil(t, serial)
		assert.Equal(t, "42/500", *serial)
	})

	t.Run("exhausted edition gets the sentinel", func(t *testing.T) {
		serial, err := serialForMint(0, sql.ErrNoRows, 500)
		require.NoError(t, err)
		require.NotNil(t, serial)
		assert.Equal(t, models.SerialSoldOut, *serial)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("connection reset")
		_, err := serialForMint(0, boom, 500)
		assert.ErrorIs(t, err, boom)
	})
}

func TestCollectedItemFromCardFreezesStats(t *testing.T) {
	color := "yellow"
	serial := "3/100"
	card := &models.GeneratedCard{
		ID:             "5f1c2b9e-0000-0000-0000-000000000000",
		ModelID:        "pencil_gold",
		ModelName:      "Gold Pencil",
		CategoryID:     "pencil",
		Rarity:         "mythic",
		Version:        "gold",
		Condition:      "pristine",
		AestheticScore: 97,
		Weight:         12.5,
		Price:          149.99,
		Color:          &color,
		CollectorValue: 610,
	}

	item := collectedItemFromCard(9, card, &serial)

	assert.Equal(t, int64(9), item.OwnerID)
	assert.Equal(t, card.ModelID, item.ModelID)
	assert.Equal(t, card.Rarity, item.Rarity)
	assert.Equal(t, card.Version, item.Version)
	assert.Equal(t, card.Condition, item.Condition)
	assert.Equal(t, card.AestheticScore, item.AestheticScore)
	assert.Equal(t, card.Weight, item.Weight)
	assert.Equal(t, card.Price, item.Price)
	assert.Equal(t, card.Color, item.Color)
	assert.Equal(t, card.CollectorValue, item.CollectorValue)
	require.NotNil(t, item.SerialNumber)
	assert.Equal(t, serial, *item.SerialNumber)
}

func TestFormatSerial(t *testing.T) {
	assert.Equal(t, "1/500", formatSerial(1, 500))
	assert.Equal(t, "500/500", formatSerial(500, 500))
}
