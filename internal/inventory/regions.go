// Package inventory holds the fixed emissions tables shown by the dashboard
// and the pure functions that derive display metrics from them.
//
// All tables are returned as fresh copies; callers may sort or slice them
// without affecting other readers.
package inventory

import "github.com/ecotracks/ecotracks/internal/greenops"

// RegionRecord is the total emissions of one operating region, in tCO2e.
type RegionRecord struct {
	Code  string  `json:"region" yaml:"region"`
	Total float64 `json:"total"  yaml:"total"`
}

// Scopes splits the total across scopes using the fixed display ratios.
func (r RegionRecord) Scopes() greenops.ScopeSplit {
	return greenops.SplitScopes(r.Total)
}

// TreeEquivalent is floor(Total × 40).
func (r RegionRecord) TreeEquivalent() int64 {
	return greenops.TreeEquivalent(r.Total)
}

//nolint:gochecknoglobals // Read-only literal table.
var regions = [...]RegionRecord{
	{Code: "GRB", Total: 0.50},
	{Code: "CATENARE", Total: 14.25},
	{Code: "VRC", Total: 46.46},
	{Code: "GGS", Total: 28.34},
	{Code: "VRO", Total: 36.31},
	{Code: "GOR", Total: 13.16},
	{Code: "VAO", Total: 9.07},
	{Code: "CEDI", Total: 0.38},
}

// Regions returns the eight operating regions in their source order.
func Regions() []RegionRecord {
	out := make([]RegionRecord, len(regions))
	copy(out, regions[:])
	return out
}

// RegionDetail is a region with its derived display fields.
type RegionDetail struct {
	RegionRecord `yaml:",inline"`

	Scope1         float64 `json:"scope1"          yaml:"scope1"`
	Scope2         float64 `json:"scope2"          yaml:"scope2"`
	Scope3         float64 `json:"scope3"          yaml:"scope3"`
	TreeEquivalent int64   `json:"tree_equivalent" yaml:"tree_equivalent"`
}

// Detail derives the scope split and tree equivalent for r.
func Detail(r RegionRecord) RegionDetail {
	split := r.Scopes()
	return RegionDetail{
		RegionRecord:   r,
		Scope1:         split.Scope1,
		Scope2:         split.Scope2,
		Scope3:         split.Scope3,
		TreeEquivalent: r.TreeEquivalent(),
	}
}

// Details derives RegionDetail for every record, preserving order.
func Details(records []RegionRecord) []RegionDetail {
	out := make([]RegionDetail, len(records))
	for i, r := range records {
		out[i] = Detail(r)
	}
	return out
}
