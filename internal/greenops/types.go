// Package greenops holds the fixed carbon ratios used by the dashboard:
// the scope 1/2/3 split applied to regional totals and the tree-equivalent
// conversion, plus unit normalisation and number formatting helpers.
package greenops

import "fmt"

// Scope is a GHG Protocol emissions scope.
type Scope int

const (
	// Scope1 covers direct emissions from owned or controlled sources.
	Scope1 Scope = iota + 1
	// Scope2 covers indirect emissions from purchased energy.
	Scope2
	// Scope3 covers all other indirect emissions.
	Scope3
)

// Scopes lists the scopes in display order.
func Scopes() []Scope {
	return []Scope{Scope1, Scope2, Scope3}
}

// String returns "Scope N".
func (s Scope) String() string {
	switch s {
	case Scope1, Scope2, Scope3:
		return fmt.Sprintf("Scope %d", int(s))
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Description returns the short description shown next to the scope name.
func (s Scope) Description() string {
	switch s {
	case Scope1:
		return "Direct"
	case Scope2:
		return "Energy"
	case Scope3:
		return "Indirect"
	default:
		return ""
	}
}

// Ratio returns the display share of a regional total assigned to s.
func (s Scope) Ratio() float64 {
	switch s {
	case Scope1:
		return Scope1Ratio
	case Scope2:
		return Scope2Ratio
	case Scope3:
		return Scope3Ratio
	default:
		return 0
	}
}

// ScopeSplit is a total broken down by scope, in tCO2e.
type ScopeSplit struct {
	Scope1 float64 `json:"scope1" yaml:"scope1"`
	Scope2 float64 `json:"scope2" yaml:"scope2"`
	Scope3 float64 `json:"scope3" yaml:"scope3"`
}

// Get returns the value for s.
func (s ScopeSplit) Get(scope Scope) float64 {
	switch scope {
	case Scope1:
		return s.Scope1
	case Scope2:
		return s.Scope2
	case Scope3:
		return s.Scope3
	default:
		return 0
	}
}

// CarbonInput is a carbon quantity in an arbitrary recognised unit.
type CarbonInput struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// EquivalencyOutput is the tree-equivalent of a CarbonInput.
type EquivalencyOutput struct {
	// InputTonnes is the input normalised to tCO2e.
	InputTonnes float64 `json:"input_tonnes"`

	// Trees is floor(InputTonnes × TreesPerTonne).
	Trees int64 `json:"trees"`

	// FormattedTrees is Trees with thousands separators or large-number scaling.
	FormattedTrees string `json:"formatted_trees"`

	// DisplayText is the prose form, e.g. "Equivalent to ~5,938 trees".
	DisplayText string `json:"display_text"`

	// IsEmpty is true when the input is too small to amount to one tree.
	IsEmpty bool `json:"is_empty"`
}
