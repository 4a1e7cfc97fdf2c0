package greenops

import (
	"fmt"
	"math"
)

// SplitScopes applies the fixed scope ratios to a total in tCO2e.
func SplitScopes(totalTonnes float64) ScopeSplit {
	return ScopeSplit{
		Scope1: totalTonnes * Scope1.Ratio(),
		Scope2: totalTonnes * Scope2.Ratio(),
		Scope3: totalTonnes * Scope3.Ratio(),
	}
}

// TreeEquivalent returns floor(totalTonnes × TreesPerTonne).
func TreeEquivalent(totalTonnes float64) int64 {
	return int64(math.Floor(totalTonnes * TreesPerTonne))
}

// Calculate normalises input to tCO2e and computes its tree equivalent.
//
// Inputs below MinEquivalencyThresholdTonnes produce an empty output with no
// error. Normalisation errors are returned with an empty output.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	tonnes, err := NormalizeToTonnes(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if tonnes < MinEquivalencyThresholdTonnes {
		return EquivalencyOutput{InputTonnes: tonnes, IsEmpty: true}, nil
	}

	raw := tonnes * TreesPerTonne
	if math.IsInf(raw, 0) || raw >= math.MaxInt64 {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	trees := TreeEquivalent(tonnes)
	formatted := formatEquivalencyValue(float64(trees))

	return EquivalencyOutput{
		InputTonnes:    tonnes,
		Trees:          trees,
		FormattedTrees: formatted,
		DisplayText:    fmt.Sprintf("Equivalent to ~%s trees", formatted),
	}, nil
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
