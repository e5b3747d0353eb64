package loot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccumulate(t *testing.T) {
	tests := []struct {
		name            string
		accumulated     int64
		studied         int64
		wantAccumulated int64
		wantDrops       int
	}{
		{name: "no drop", accumulated: 0, studied: 600, wantAccumulated: 600, wantDrops: 0},
		{name: "exact quantum", accumulated: 0, studied: 1200, wantAccumulated: 0, wantDrops: 1},
		{name: "carries remainder", accumulated: 1000, studied: 300, wantAccumulated: 100, wantDrops: 1},
		{name: "multiple drops", accumulated: 100, studied: 3700, wantAccumulated: 200, wantDrops: 3},
		{name: "zero studied", accumulated: 1199, studied: 0, wantAccumulated: 1199, wantDrops: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accumulated, drops, err := Accumulate(tt.accumulated, tt.studied)
			require.NoError(t, err)
			require.Equal(t, tt.wantAccumulated, accumulated)
			require.Equal(t, tt.wantDrops, drops)
		})
	}
}

func TestAccumulateRejectsNegative(t *testing.T) {
	_, _, err := Accumulate(100, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAccumulateTotalsAreOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	var sessions []int64
	var sum int64
	for i := 0; i < 200; i++ {
		s := int64(rng.Intn(4000))
		sessions = append(sessions, s)
		sum += s
	}

	var accumulated int64
	totalDrops := 0
	for _, s := range sessions {
		var drops int
		var err error
		accumulated, drops, err = Accumulate(accumulated, s)
		require.NoError(t, err)
		require.GreaterOrEqual(t, accumulated, int64(0))
		require.Less(t, accumulated, int64(DropQuantumSeconds))
		totalDrops += drops
	}

	require.Equal(t, int(sum/DropQuantumSeconds), totalDrops)
	require.Equal(t, sum%DropQuantumSeconds, accumulated)
}
