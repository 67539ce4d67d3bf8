package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/pitagoras/internal/apperr"
	"github.com/lmoreno/pitagoras/internal/solver"
)

// TestSolveTrig_HypotenuseKnown is the 30°-hypotenuse reference scenario.
func TestSolveTrig_HypotenuseKnown(t *testing.T) {
	res, err := solver.SolveTrig(30, solver.SideHypotenuse, 10)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.InDelta(t, 5.0, res.A, 1e-9)
	assert.InDelta(t, 8.6603, res.B, 1e-4)
	assert.InDelta(t, 10.0, res.C, 1e-12)

	assert.InDelta(t, 0.5, res.Sin, 1e-9)
	assert.InDelta(t, 0.8660, res.Cos, 1e-4)
	assert.InDelta(t, 0.5774, res.Tan, 1e-4)

	require.Len(t, res.Steps, 3)
	assert.Equal(t, "c = 10, θ = 30°", res.Steps[0].Expression)
	assert.Equal(t, "a = c × sin(θ) = 10 × sin(30°) = 5.0000", res.Steps[1].Expression)
	assert.Equal(t, "b = c × cos(θ) = 10 × cos(30°) = 8.6603", res.Steps[2].Expression)
}

// TestSolveTrig_OppositeKnown is the 45° reference scenario.
func TestSolveTrig_OppositeKnown(t *testing.T) {
	res, err := solver.SolveTrig(45, solver.SideOpposite, 1)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.InDelta(t, 1.4142, res.C, 1e-4)
	assert.InDelta(t, 1.0, res.B, 1e-9)
	assert.InDelta(t, 1.0, res.A, 1e-12)

	require.Len(t, res.Steps, 3)
	assert.Equal(t, "a = 1, θ = 45°", res.Steps[0].Expression)
	assert.Contains(t, res.Steps[1].Expression, "= 1.4142")
	assert.Contains(t, res.Steps[2].Expression, "= 1.0000")
}

// TestSolveTrig_AdjacentKnown exercises the third branch.
func TestSolveTrig_AdjacentKnown(t *testing.T) {
	res, err := solver.SolveTrig(60, solver.SideAdjacent, 2)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.InDelta(t, 4.0, res.C, 1e-9)
	assert.InDelta(t, 2*math.Sqrt(3), res.A, 1e-9)
	assert.InDelta(t, 2.0, res.B, 1e-12)
}

// TestSolveTrig_InvalidAngle rejects the closed boundary and anything
// outside it.
func TestSolveTrig_InvalidAngle(t *testing.T) {
	angles := []float64{0, 90, -10, 90.0001, 180}

	for _, angle := range angles {
		res, err := solver.SolveTrig(angle, solver.SideHypotenuse, 5)
		assert.Nil(t, res, "angle %g", angle)
		require.Error(t, err, "angle %g", angle)
		assert.True(t, apperr.HasCode(err, apperr.CodeInvalidAngle))
		assert.Equal(t, "angle must be strictly between 0° and 90°", apperr.UserMessage(err))
	}
}

// TestSolveTrig_InvalidValue rejects non-positive side lengths.
func TestSolveTrig_InvalidValue(t *testing.T) {
	for _, v := range []float64{0, -1} {
		res, err := solver.SolveTrig(30, solver.SideHypotenuse, v)
		assert.Nil(t, res)
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeInvalidGeometry))
	}
}

// TestSolveTrig_Pending treats NaN and infinite inputs as not-yet-entered.
func TestSolveTrig_Pending(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		value float64
	}{
		{"NaN angle", math.NaN(), 5},
		{"NaN value", 30, math.NaN()},
		{"Inf angle", math.Inf(1), 5},
		{"Inf value", 30, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := solver.SolveTrig(tt.angle, solver.SideHypotenuse, tt.value)
			assert.Nil(t, res)
			assert.NoError(t, err)
		})
	}
}

// TestSolveTrig_UnrepresentableResult rejects solves where dividing by a
// near-degenerate ratio pushes a side past the float64 range; results never
// carry infinities.
func TestSolveTrig_UnrepresentableResult(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		side  solver.Side
		value float64
	}{
		{"tiny angle, opposite known", 1e-300, solver.SideOpposite, 1e10},
		{"near-right angle, adjacent known", 90 - 1e-13, solver.SideAdjacent, 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := solver.SolveTrig(tt.angle, tt.side, tt.value)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeInvalidInput))
		})
	}
}

// TestSolveTrig_HugeHypotenuseStaysFinite: multiplying down from a large
// hypotenuse cannot overflow and must succeed.
func TestSolveTrig_HugeHypotenuseStaysFinite(t *testing.T) {
	res, err := solver.SolveTrig(30, solver.SideHypotenuse, 1e308)
	require.NoError(t, err)
	require.NotNil(t, res)
	for _, v := range []float64{res.A, res.B, res.C} {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
}

// TestSolveTrig_AngleRoundTrip re-derives the angle from the computed sides
// via arcsine across the whole open interval.
func TestSolveTrig_AngleRoundTrip(t *testing.T) {
	for angle := 1.0; angle < 90; angle += 4.5 {
		res, err := solver.SolveTrig(angle, solver.SideHypotenuse, 10)
		require.NoError(t, err)
		require.NotNil(t, res)

		recovered := math.Asin(res.A/res.C) * 180 / math.Pi
		assert.InDelta(t, angle, recovered, 1e-6, "angle %g", angle)
	}
}

// TestSolveTrig_Invariants checks the result-wide guarantees: the hypotenuse
// dominates both legs, every field is finite, and the sides are derived from
// the very same ratio values the result reports.
func TestSolveTrig_Invariants(t *testing.T) {
	sides := []solver.Side{solver.SideOpposite, solver.SideAdjacent, solver.SideHypotenuse}

	for _, side := range sides {
		for _, angle := range []float64{5, 30, 45, 60, 89} {
			res, err := solver.SolveTrig(angle, side, 7.5)
			require.NoError(t, err)
			require.NotNil(t, res)

			assert.Greater(t, res.C, res.A)
			assert.Greater(t, res.C, res.B)
			for _, v := range []float64{res.A, res.B, res.C, res.Sin, res.Cos, res.Tan} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			}

			// The ratios in the summary are the ones the sides were built
			// from, so sides and ratios agree to machine precision.
			assert.InEpsilon(t, res.A, res.C*res.Sin, 1e-12)
			assert.InEpsilon(t, res.B, res.C*res.Cos, 1e-12)
			assert.NotEmpty(t, res.Steps)
		}
	}
}
