package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEarnedPoints(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int
	}{
		{name: "full tens", amount: 1000, want: 100},
		{name: "rounds down", amount: 95, want: 9},
		{name: "below one ten clamps to one", amount: 5, want: 1},
		{name: "zero clamps to one", amount: 0, want: 1},
		{name: "negative clamps to one", amount: -50, want: 1},
		{name: "fractional", amount: 109.99, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EarnedPoints(tt.amount))
		})
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		points int
		want   Tier
	}{
		{points: 0, want: TierBronze},
		{points: 59, want: TierBronze},
		{points: 60, want: TierSilver},
		{points: 119, want: TierSilver},
		{points: 120, want: TierGold},
		{points: 199, want: TierGold},
		{points: 200, want: TierPlatinum},
		{points: 1000, want: TierPlatinum},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.points), "points=%d", tt.points)
	}
}
