package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitScopes(t *testing.T) {
	totals := []float64{0.50, 14.25, 46.46, 28.34, 36.31, 13.16, 9.07, 0.38, 0}

	for _, total := range totals {
		split := SplitScopes(total)

		assert.InDelta(t, total, split.Scope1+split.Scope2+split.Scope3, 1e-6, "scopes must add back to the total")
		assert.InDelta(t, total*0.75, split.Scope1, 1e-12)
		assert.InDelta(t, total*0.15, split.Scope2, 1e-12)
		assert.InDelta(t, total*0.10, split.Scope3, 1e-12)
		if total > 0 {
			assert.InDelta(t, Scope1Ratio, split.Scope1/total, 1e-12)
			assert.InDelta(t, Scope2Ratio, split.Scope2/total, 1e-12)
			assert.InDelta(t, Scope3Ratio, split.Scope3/total, 1e-12)
		}
	}
}

func TestScopeRatiosSumToOne(t *testing.T) {
	sum := 0.0
	for _, s := range Scopes() {
		sum += s.Ratio()
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestTreeEquivalent(t *testing.T) {
	tests := []struct {
		total float64
		want  int64
	}{
		{46.46, 1858},
		{148.47, 5938},
		{0.50, 20},
		{14.25, 570},
		{28.34, 1133},
		{36.31, 1452},
		{13.16, 526},
		{9.07, 362},
		{0.38, 15},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TreeEquivalent(tt.total), "total=%v", tt.total)
		assert.Equal(t, int64(math.Floor(tt.total*40)), TreeEquivalent(tt.total))
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		input       CarbonInput
		wantTrees   int64
		wantEmpty   bool
		wantErr     error
		wantDisplay string
	}{
		{
			name:        "tonnes",
			input:       CarbonInput{Value: 148.47, Unit: "tCO2e"},
			wantTrees:   5938,
			wantDisplay: "Equivalent to ~5,938 trees",
		},
		{
			name:      "empty unit means tonnes",
			input:     CarbonInput{Value: 1, Unit: ""},
			wantTrees: 40,
		},
		{
			name:      "kilograms",
			input:     CarbonInput{Value: 1000, Unit: "kg"},
			wantTrees: 40,
		},
		{
			name:      "below one tree",
			input:     CarbonInput{Value: 10, Unit: "kg"},
			wantEmpty: true,
		},
		{
			name:      "one tree",
			input:     CarbonInput{Value: 30, Unit: "kg"},
			wantTrees: 1,
		},
		{
			name:    "negative",
			input:   CarbonInput{Value: -1, Unit: "t"},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "unknown unit",
			input:   CarbonInput{Value: 1, Unit: "stone"},
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "infinite",
			input:   CarbonInput{Value: math.Inf(1), Unit: "t"},
			wantErr: ErrCalculationOverflow,
		},
		{
			name:    "too large for int64",
			input:   CarbonInput{Value: math.MaxFloat64 / 100, Unit: "t"},
			wantErr: ErrCalculationOverflow,
		},
		{
			name:    "exactly 2^63 trees",
			input:   CarbonInput{Value: math.Ldexp(1, 63) / TreesPerTonne, Unit: "t"},
			wantErr: ErrCalculationOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty)
				return
			}
			require.NoError(t, err)
			if tt.wantEmpty {
				assert.True(t, got.IsEmpty)
				assert.Zero(t, got.Trees)
				return
			}
			assert.False(t, got.IsEmpty)
			assert.Equal(t, tt.wantTrees, got.Trees)
			if tt.wantDisplay != "" {
				assert.Equal(t, tt.wantDisplay, got.DisplayText)
			}
		})
	}
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "Scope 1", Scope1.String())
	assert.Equal(t, "Scope 3", Scope3.String())
	assert.Equal(t, "Scope(7)", Scope(7).String())
	assert.Equal(t, "Direct", Scope1.Description())
	assert.Equal(t, "Energy", Scope2.Description())
	assert.Equal(t, "Indirect", Scope3.Description())
	assert.Zero(t, Scope(0).Ratio())
}

func TestScopeSplitGet(t *testing.T) {
	split := ScopeSplit{Scope1: 1, Scope2: 2, Scope3: 3}
	assert.InDelta(t, 1.0, split.Get(Scope1), 0)
	assert.InDelta(t, 2.0, split.Get(Scope2), 0)
	assert.InDelta(t, 3.0, split.Get(Scope3), 0)
	assert.Zero(t, split.Get(Scope(9)))
}

func TestCalculate_LargestTreeCountStaysPositive(t *testing.T) {
	got, err := Calculate(CarbonInput{Value: math.Ldexp(1, 62) / TreesPerTonne, Unit: "t"})
	require.NoError(t, err)
	assert.Positive(t, got.Trees)
	assert.NotContains(t, got.DisplayText, "-")
}
