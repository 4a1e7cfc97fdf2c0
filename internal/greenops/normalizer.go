package greenops

import (
	"math"
	"strings"
)

// getUnitFactor returns the conversion factor to metric tons for unit and
// whether the unit is recognised. Matching is case-insensitive.
func getUnitFactor(unit string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g", "gco2e":
		return GramsToTonnes, true
	case "kg", "kgco2e", "kgco2":
		return KgToTonnes, true
	case "t", "tco2e", "":
		return TonnesToTonnes, true
	case "lb", "lbco2e":
		return PoundsToTonnes, true
	default:
		return 0, false
	}
}

// NormalizeToTonnes converts a carbon value to tCO2e. An empty unit means
// tonnes. Returns ErrNegativeValue, ErrInvalidUnit or ErrCalculationOverflow.
func NormalizeToTonnes(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := getUnitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	result := value * factor
	if math.IsInf(result, 0) {
		return 0, ErrCalculationOverflow
	}
	return result, nil
}

// IsRecognizedUnit reports whether unit is a supported carbon unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := getUnitFactor(unit)
	return ok
}
