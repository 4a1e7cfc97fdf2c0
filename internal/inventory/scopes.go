package inventory

import "github.com/ecotracks/ecotracks/internal/greenops"

// ChartKind selects how a scope report's sources are drawn.
type ChartKind int

const (
	// ChartNone draws no source chart.
	ChartNone ChartKind = iota
	// ChartBar draws one bar per source.
	ChartBar
	// ChartShare draws sources as shares of the whole.
	ChartShare
)

// SourceValue is one emission source in a scope report, in tCO2e.
type SourceValue struct {
	Name  string  `json:"name"  yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// ScopeReportEntry is the literal ISO 14064 report figure for one scope.
// The totals are independent literals and are not reconciled against the
// regional table.
type ScopeReportEntry struct {
	Scope      greenops.Scope `json:"scope"       yaml:"scope"`
	Total      float64        `json:"total"       yaml:"total"`
	ShareLabel string         `json:"share_label" yaml:"share_label"`
	Note       string         `json:"note"        yaml:"note"`
	Sources    []SourceValue  `json:"sources"     yaml:"sources"`
	Chart      ChartKind      `json:"chart"       yaml:"chart"`
	// GridShare is the percentage of energy from the grid, shown for scope 2.
	GridShare int `json:"grid_share,omitempty" yaml:"grid_share,omitempty"`
}

// ReportYear is the reporting period of the scope reports.
const ReportYear = 2025

// ScopeReports returns the per-scope report entries in scope order.
func ScopeReports() []ScopeReportEntry {
	return []ScopeReportEntry{
		{
			Scope:      greenops.Scope1,
			Total:      111.35,
			ShareLabel: "75% of total",
			Note:       "Main source: diesel consumption.",
			Sources: []SourceValue{
				{Name: "Diésel", Value: 90.5},
				{Name: "Gasolina", Value: 20.1},
				{Name: "Gas Natural", Value: 0.75},
			},
			Chart: ChartBar,
		},
		{
			Scope:      greenops.Scope2,
			Total:      22.27,
			ShareLabel: "15% of total",
			Note:       "Source: electricity from the national grid (SIN).",
			Chart:      ChartNone,
			GridShare:  100,
		},
		{
			Scope:      greenops.Scope3,
			Total:      14.85,
			ShareLabel: "10% of total",
			Sources: []SourceValue{
				{Name: "Transporte", Value: 10.2},
				{Name: "Residuos", Value: 3.5},
				{Name: "Papel", Value: 1.0},
				{Name: "Viajes", Value: 0.15},
			},
			Chart: ChartShare,
		},
	}
}
