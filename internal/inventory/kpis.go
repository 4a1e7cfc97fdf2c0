package inventory

import (
	"strconv"

	"github.com/ecotracks/ecotracks/internal/greenops"
)

// KPI is a headline figure on the control panel.
type KPI struct {
	Label string
	Value string
	Delta string
	// Warn marks a KPI whose delta calls for attention.
	Warn bool
}

// Control panel literals.
const (
	ActiveFactors     = 1240
	TotalTransactions = 295
	DataQualityPct    = 87.5
	BaselineProgress  = 95
)

// ControlPanelKPIs returns the four headline figures in display order.
func ControlPanelKPIs() []KPI {
	g := General()
	return []KPI{
		{Label: "Active factors", Value: greenops.FormatNumber(ActiveFactors), Delta: "Database"},
		{Label: "Total transactions", Value: strconv.Itoa(TotalTransactions), Delta: "2025 records"},
		{
			Label: "Tree equivalence",
			Value: greenops.FormatNumber(g.TreeEquivalentTotal) + " trees",
			Delta: "Offset required",
		},
		{
			Label: "Data quality",
			Value: greenops.FormatFloat(DataQualityPct, 1) + "%",
			Delta: "Needs review",
			Warn:  true,
		},
	}
}
