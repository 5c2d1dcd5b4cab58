package shop

import "sort"

// Tier pays Coins for a final score of at least MinScore.
type Tier struct {
	MinScore int `yaml:"min_score"`
	Coins    int `yaml:"coins"`
}

// Reward returns the coins for score under tiers: the payout of the
// highest tier whose MinScore the score reaches, or 0. Tiers may be given
// in any order; the result never decreases as score grows when payouts
// grow with thresholds.
func Reward(tiers []Tier, score int) int {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinScore > sorted[j].MinScore })

	for _, t := range sorted {
		if score >= t.MinScore {
			return max(0, t.Coins)
		}
	}
	return 0
}
