package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotracks/ecotracks/internal/inventory"
)

func TestFactors(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "all factors",
			args:     []string{"factors"},
			contains: []string{"F-001", "F-005", "R-417B", "3235", "UPME 2023"},
		},
		{
			name:     "accent-insensitive filter",
			args:     []string{"factors", "--filter", "diesel"},
			contains: []string{"Diésel (ACPM)"},
			excludes: []string{"Gasolina"},
		},
		{
			name:     "no match",
			args:     []string{"factors", "--filter", "hydrogen"},
			contains: []string{`No factors match "hydrogen".`},
			excludes: []string{"F-001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustExecute(t, tt.args...)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFactors_JSON(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "factors", "--filter", "GASOLINA", "--output", "json")

	var got []inventory.EmissionFactor
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "F-002", got[0].ID)
	assert.InDelta(t, 8.15, got[0].Factor, 0)
}
