package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToTonnes(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		unit       string
		wantTonnes float64
		wantErr    error
	}{
		{name: "grams", value: 1_000_000, unit: "g", wantTonnes: 1},
		{name: "kilograms", value: 1500, unit: "kg", wantTonnes: 1.5},
		{name: "tonnes", value: 2, unit: "t", wantTonnes: 2},
		{name: "pounds", value: 1000, unit: "lb", wantTonnes: 0.453592},
		{name: "tCO2e", value: 148.47, unit: "tCO2e", wantTonnes: 148.47},
		{name: "kgCO2e upper", value: 500, unit: "KGCO2E", wantTonnes: 0.5},
		{name: "kgCO2 factor unit", value: 1000, unit: "kgCO2", wantTonnes: 1},
		{name: "padded unit", value: 3, unit: " t ", wantTonnes: 3},
		{name: "empty unit", value: 4, unit: "", wantTonnes: 4},
		{name: "zero", value: 0, unit: "kg", wantTonnes: 0},
		{name: "negative", value: -1, unit: "kg", wantErr: ErrNegativeValue},
		{name: "unknown unit", value: 1, unit: "oz", wantErr: ErrInvalidUnit},
		{name: "NaN", value: math.NaN(), unit: "kg", wantErr: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToTonnes(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantTonnes, got, 1e-9)
		})
	}
}

func TestIsRecognizedUnit(t *testing.T) {
	for _, u := range []string{"g", "kg", "t", "lb", "gCO2e", "kgCO2e", "tCO2e", "lbCO2e"} {
		assert.True(t, IsRecognizedUnit(u), u)
	}
	for _, u := range []string{"oz", "kWh", "gal"} {
		assert.False(t, IsRecognizedUnit(u), u)
	}
}
