package solver

import (
	"fmt"
	"math"

	"github.com/lmoreno/pitagoras/internal/apperr"
)

// TrigResult is the outcome of a trigonometric solve: all three sides, the
// three ratios of the given angle, and the derivation. The ratios are
// computed once from the angle and reused for both the derivation text and
// the summary fields, so displayed sides and displayed ratios always agree.
type TrigResult struct {
	Angle float64 // degrees
	A     float64 // opposite leg
	B     float64 // adjacent leg
	C     float64 // hypotenuse

	Sin float64
	Cos float64
	Tan float64

	Steps []Step
}

// SolveTrig determines the remaining two sides of a right triangle from one
// acute angle (in degrees) and one known side. A NaN or infinite angle or
// value means the caller has not finished typing: the call returns
// (nil, nil) and nothing changes.
//
// The angle must lie strictly between 0° and 90°; the boundary values
// degenerate (tangent and its reciprocal blow up) and fail with
// CodeInvalidAngle. The known side must be positive. A derived side beyond
// the float64 range fails with CodeInvalidInput; results never carry
// infinities.
func SolveTrig(angleDeg float64, known Side, value float64) (*TrigResult, error) {
	if math.IsNaN(angleDeg) || math.IsInf(angleDeg, 0) ||
		math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, nil
	}
	if angleDeg <= 0 || angleDeg >= 90 {
		return nil, apperr.New(apperr.CodeInvalidAngle, "angle must be strictly between 0° and 90°")
	}
	if value <= 0 {
		return nil, apperr.New(apperr.CodeInvalidGeometry, "side length must be positive")
	}

	theta := angleDeg * math.Pi / 180
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	tan := math.Tan(theta)

	res := &TrigResult{Angle: angleDeg, Sin: sin, Cos: cos, Tan: tan}
	angle := formatNum(angleDeg)
	val := formatNum(value)

	known1 := Step{
		"State the known side and angle",
		fmt.Sprintf("%s = %s, θ = %s°", known.Symbol(), val, angle),
	}

	switch known {
	case SideHypotenuse:
		res.C = value
		res.A = value * sin
		res.B = value * cos
		res.Steps = []Step{
			known1,
			{"Solve the opposite leg", fmt.Sprintf("a = c × sin(θ) = %s × sin(%s°) = %s", val, angle, formatFinal(res.A))},
			{"Solve the adjacent leg", fmt.Sprintf("b = c × cos(θ) = %s × cos(%s°) = %s", val, angle, formatFinal(res.B))},
		}
	case SideOpposite:
		res.A = value
		res.C = value / sin
		res.B = value / tan
		res.Steps = []Step{
			known1,
			{"Solve the hypotenuse", fmt.Sprintf("c = a / sin(θ) = %s / sin(%s°) = %s", val, angle, formatFinal(res.C))},
			{"Solve the adjacent leg", fmt.Sprintf("b = a / tan(θ) = %s / tan(%s°) = %s", val, angle, formatFinal(res.B))},
		}
	case SideAdjacent:
		res.B = value
		res.C = value / cos
		res.A = value * tan
		res.Steps = []Step{
			known1,
			{"Solve the hypotenuse", fmt.Sprintf("c = b / cos(θ) = %s / cos(%s°) = %s", val, angle, formatFinal(res.C))},
			{"Solve the opposite leg", fmt.Sprintf("a = b × tan(θ) = %s × tan(%s°) = %s", val, angle, formatFinal(res.A))},
		}
	default:
		return nil, apperr.Newf(apperr.CodeInvalidInput, "unknown side %v", known)
	}

	// Dividing by the sine or cosine of a near-degenerate angle can push a
	// side past the float64 range; such a result never leaves the solver.
	for _, side := range []float64{res.A, res.B, res.C} {
		if math.IsInf(side, 0) {
			return nil, apperr.New(apperr.CodeInvalidInput, "computed side is too large to represent")
		}
	}

	return res, nil
}
