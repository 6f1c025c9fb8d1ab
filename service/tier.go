package service

import (
	"sort"

	"partner-revenue/domain"
)

// defaultTiers is ordered by MinConverted and starts at zero, so every
// non-negative cumulative count maps to exactly one tier.
var defaultTiers = []domain.Tier{
	{Name: "Affiliate", MinConverted: 0, SharePercent: 30},
	{Name: "Partner", MinConverted: 1000, SharePercent: 60},
	{Name: "Gold Partner", MinConverted: 2000, SharePercent: 65},
	{Name: "Owner", MinConverted: 3000, SharePercent: 70},
}

// Tiers returns a copy of the revenue-share schedule.
func Tiers() []domain.Tier {
	out := make([]domain.Tier, len(defaultTiers))
	copy(out, defaultTiers)
	return out
}

// TierFor returns the tier name and share percent for a cumulative converted
// user count. Lower bounds are inclusive: exactly 1000 is Partner.
// Negative counts are a caller error and resolve to the first tier.
func TierFor(cumulativeConverted float64) (string, float64) {
	t := lookupTier(defaultTiers, cumulativeConverted)
	return t.Name, t.SharePercent
}

func lookupTier(tiers []domain.Tier, cumulativeConverted float64) domain.Tier {
	// first tier whose lower bound is above the count, minus one
	i := sort.Search(len(tiers), func(i int) bool {
		return tiers[i].MinConverted > cumulativeConverted
	})
	if i == 0 {
		return tiers[0]
	}
	return tiers[i-1]
}
