package greenops

// Fixed ratios used by the dashboard.
const (
	// TreesPerTonne is the number of notional trees needed to offset one tCO2e.
	TreesPerTonne = 40.0

	// Scope1Ratio, Scope2Ratio and Scope3Ratio split a regional total across
	// the GHG Protocol scopes for display. They sum to 1.
	Scope1Ratio = 0.75
	Scope2Ratio = 0.15
	Scope3Ratio = 0.10
)

// Unit conversion constants for normalizing carbon values to metric tons.
const (
	GramsToTonnes  = 0.000001
	KgToTonnes     = 0.001
	TonnesToTonnes = 1.0
	PoundsToTonnes = 0.000453592
)

// Display thresholds.
const (
	// MinEquivalencyThresholdTonnes is the smallest quantity that yields at
	// least one tree. Below it no equivalency is shown.
	MinEquivalencyThresholdTonnes = 1 / TreesPerTonne

	// LargeNumberThreshold switches FormatLarge to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
