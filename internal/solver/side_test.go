package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/pitagoras/internal/apperr"
	"github.com/lmoreno/pitagoras/internal/solver"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		in   string
		want solver.Side
	}{
		{"a", solver.SideOpposite},
		{"A", solver.SideOpposite},
		{"opposite", solver.SideOpposite},
		{"opposite-leg", solver.SideOpposite},
		{"b", solver.SideAdjacent},
		{"adjacent", solver.SideAdjacent},
		{"c", solver.SideHypotenuse},
		{"hyp", solver.SideHypotenuse},
		{"Hypotenuse", solver.SideHypotenuse},
		{"  c  ", solver.SideHypotenuse},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := solver.ParseSide(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSideUnknown(t *testing.T) {
	_, err := solver.ParseSide("diagonal")
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidInput))
}

func TestSideStrings(t *testing.T) {
	assert.Equal(t, "opposite leg", solver.SideOpposite.String())
	assert.Equal(t, "adjacent leg", solver.SideAdjacent.String())
	assert.Equal(t, "hypotenuse", solver.SideHypotenuse.String())
	assert.Equal(t, "a", solver.SideOpposite.Symbol())
	assert.Equal(t, "b", solver.SideAdjacent.Symbol())
	assert.Equal(t, "c", solver.SideHypotenuse.Symbol())
}

func TestFormatSteps(t *testing.T) {
	steps := []solver.Step{
		{Description: "State the known legs", Expression: "a = 3, b = 4"},
		{Description: "No expression here"},
	}

	got := solver.FormatSteps(steps)
	assert.Equal(t, "1. State the known legs: a = 3, b = 4\n2. No expression here\n", got)
}
