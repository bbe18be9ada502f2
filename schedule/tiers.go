// tiers.go - Multi-Resolution Tier-Aufloesung
//
// Dieses Modul enthaelt:
// - Tier: (Resolution, λ, δ, Label)
// - TierTable: geordnete Tier-Tabelle mit Schrittzahl
// - NewTierTable: Konstruktion der 2-Tier-Konfiguration
// - Resolve: Aufloesung → Koeffizienten-Paar
// - ScaleList: Metadaten-Expansion ueber alle Schritte
//
// Das 2-Tier-System haelt die grobe Struktur bei niedriger Aufloesung stabil
// und steuert Edits bei hoher Aufloesung.
package schedule

import (
	"cmp"
	"fmt"
	"slices"
)

// Tier binds a feature-map resolution to one coefficient pair.
type Tier struct {
	Resolution uint32  `json:"resolution"`
	Lambda     float64 `json:"lambda"`
	Delta      float64 `json:"delta"`
	Label      string  `json:"label"`
}

// Pair returns the tier's coefficient pair.
func (t Tier) Pair() CoefficientPair {
	return CoefficientPair{Lambda: t.Lambda, Delta: t.Delta}
}

// TierTable is an ordered-by-resolution tier sequence. The supported
// configuration has exactly two tiers: a low-resolution structure tier and a
// high-resolution detail tier. NumSteps is only used by ScaleList.
type TierTable struct {
	Enabled  bool   `json:"enabled"`
	Tiers    []Tier `json:"tiers"`
	NumSteps int    `json:"num_steps"`
}

// NewTierTable builds the two-tier configuration. Construction is purely
// structural; parameter ranges are checked by the boundary validator, not
// here.
func NewTierTable(tier1Resolution uint32, tier1Lambda, tier1Delta float64, tier2Resolution uint32, tier2Lambda, tier2Delta float64, numSteps int) TierTable {
	return TierTable{
		Enabled: true,
		Tiers: []Tier{
			{
				Resolution: tier1Resolution,
				Lambda:     tier1Lambda,
				Delta:      tier1Delta,
				Label:      fmt.Sprintf("Tier 1: %dx%d (structure)", tier1Resolution, tier1Resolution),
			},
			{
				Resolution: tier2Resolution,
				Lambda:     tier2Lambda,
				Delta:      tier2Delta,
				Label:      fmt.Sprintf("Tier 2: %dx%d (detail)", tier2Resolution, tier2Resolution),
			},
		},
		NumSteps: numSteps,
	}
}

// Resolve maps a feature-map resolution to a coefficient pair. At or below
// the lowest tier the lowest tier wins, at or above the highest tier the
// highest tier wins. Strictly between two tiers the numerically closest tier
// is chosen, ties breaking toward the earlier tier in ascending order - a
// deliberate approximation, no interpolation is performed.
//
// A disabled table unconditionally returns the second tier's pair (the
// default editing parameters) without any lookup.
func (tt TierTable) Resolve(resolution uint32) CoefficientPair {
	if !tt.Enabled {
		return tt.Tiers[1].Pair()
	}

	sorted := tt.sortedTiers()

	if resolution <= sorted[0].Resolution {
		return sorted[0].Pair()
	}
	if resolution >= sorted[len(sorted)-1].Resolution {
		return sorted[len(sorted)-1].Pair()
	}

	best := sorted[0]
	bestDist := distance(resolution, sorted[0].Resolution)
	for _, tier := range sorted[1:] {
		if d := distance(resolution, tier.Resolution); d < bestDist {
			best, bestDist = tier, d
		}
	}
	return best.Pair()
}

// ScaleList expands the table into the per-step metadata format: the tier
// tuple repeated NumSteps times, or an empty list when disabled. The
// transform never consumes this; it exists for conditioning metadata.
func (tt TierTable) ScaleList() [][]Tier {
	if !tt.Enabled {
		return nil
	}

	steps := make([][]Tier, tt.NumSteps)
	for i := range steps {
		steps[i] = tt.Tiers
	}
	return steps
}

func (tt TierTable) sortedTiers() []Tier {
	sorted := slices.Clone(tt.Tiers)
	slices.SortStableFunc(sorted, func(a, b Tier) int {
		return cmp.Compare(a.Resolution, b.Resolution)
	})
	return sorted
}

func distance(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
