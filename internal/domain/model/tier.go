package model

// Tier is a solved.ac difficulty tier.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

// Tiers lists every tier from lowest to highest difficulty.
var Tiers = []Tier{TierBronze, TierSilver, TierGold, TierPlatinum, TierDiamond}

type tierStyle struct {
	color   string
	caption string
	label   string
}

var tierStyles = map[Tier]tierStyle{
	TierBronze:   {color: "#CD7F32", caption: "Bronze", label: "🥉 브론즈"},
	TierSilver:   {color: "#C0C0C0", caption: "Silver", label: "🥈 실버"},
	TierGold:     {color: "#FFD700", caption: "Gold", label: "🥇 골드"},
	TierPlatinum: {color: "#E5E4E2", caption: "Platinum", label: "💎 플래티넘"},
	TierDiamond:  {color: "#B9F2FF", caption: "Diamond", label: "💫 다이아몬드"},
}

// Color is the chart fill colour of the tier.
func (t Tier) Color() string { return tierStyles[t].color }

// Caption is the legend caption of the tier.
func (t Tier) Caption() string { return tierStyles[t].caption }

// Label is the decorated heading used in the README.
func (t Tier) Label() string { return tierStyles[t].label }

// Index returns the canonical position of t, or -1 for an unknown tier.
func (t Tier) Index() int {
	for i, tier := range Tiers {
		if tier == t {
			return i
		}
	}
	return -1
}

// TierCounts maps a tier to the number of problem files solved in it.
type TierCounts map[Tier]int

// Total sums the counts over all tiers.
func (c TierCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
