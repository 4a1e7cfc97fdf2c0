package inventory

import "github.com/ecotracks/ecotracks/internal/greenops"

// Consolidated literals. TotalFootprint is kept as its own literal rather than
// recomputed from the regions; RegionalSum agrees with it to the cent.
const (
	TotalFootprint  = 148.47
	ReductionTarget = 141.05
)

// GeneralIndicators are the consolidated figures for the whole contract.
type GeneralIndicators struct {
	TotalFootprint      float64                `json:"total_footprint"`
	ReductionTarget     float64                `json:"reduction_target"`
	ScopePercentages    map[greenops.Scope]int `json:"scope_percentages"`
	TreeEquivalentTotal int64                  `json:"tree_equivalent_total"`
}

// General returns the consolidated indicators.
func General() GeneralIndicators {
	return GeneralIndicators{
		TotalFootprint:  TotalFootprint,
		ReductionTarget: ReductionTarget,
		ScopePercentages: map[greenops.Scope]int{
			greenops.Scope1: 75,
			greenops.Scope2: 15,
			greenops.Scope3: 10,
		},
		TreeEquivalentTotal: greenops.TreeEquivalent(TotalFootprint),
	}
}

// ScopePercentageSequence returns the percentages in scope order.
func (g GeneralIndicators) ScopePercentageSequence() []int {
	scopes := greenops.Scopes()
	out := make([]int, len(scopes))
	for i, s := range scopes {
		out[i] = g.ScopePercentages[s]
	}
	return out
}
