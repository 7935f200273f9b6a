package entity

import "math"

// Tier is the loyalty classification derived from cumulative points.
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// Tier thresholds on cumulative points.
const (
	silverThreshold   = 60
	goldThreshold     = 120
	platinumThreshold = 200
)

// pointsPerDollar: one point is earned per full ten currency units spent.
const pointsDivisor = 10

// Reward is the loyalty ledger entry for a customer, one record per email.
// Points only ever increase through this workflow.
//
// A freshly created record keeps TierBronze even when its initial points
// would clear a higher threshold; thresholds apply from the second
// transaction on. This mirrors the historical ledger behavior that existing
// data was built on, so it is kept rather than fixed silently.
type Reward struct {
	ID     string `json:"id,omitempty"`
	Email  string `json:"email"`
	Points int    `json:"points"`
	Tier   Tier   `json:"tier"`
}

// EarnedPoints computes the points a single transaction yields:
// floor(amount/10), clamped to a minimum of one point. The clamp applies
// regardless of sign, so zero and negative amounts still earn one point.
func EarnedPoints(amount float64) int {
	pts := int(math.Floor(amount / pointsDivisor))
	if pts < 1 {
		return 1
	}

	return pts
}

// TierFor derives the loyalty tier from a cumulative point total.
func TierFor(points int) Tier {
	switch {
	case points >= platinumThreshold:
		return TierPlatinum
	case points >= goldThreshold:
		return TierGold
	case points >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}
