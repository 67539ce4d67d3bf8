package solver

import (
	"fmt"
	"math"

	"github.com/lmoreno/pitagoras/internal/apperr"
)

// TriangleResult is the outcome of a Pythagorean solve: which side was
// computed, its raw value, and the derivation that produced it.
type TriangleResult struct {
	Solved Side
	Value  float64
	Steps  []Step
}

// SolveSides computes the missing side of a right triangle from the other
// two. A nil pointer marks an absent value; NaN and infinities count as
// absent too, so callers may pass parse results straight through.
//
// Exactly two sides must be present. With fewer or more the input is
// incomplete and SolveSides returns (nil, nil): not an error, just nothing
// to show yet. A present hypotenuse must exceed the present leg, otherwise
// the call fails with CodeInvalidGeometry. An answer beyond the float64
// range fails with CodeInvalidInput; results never carry infinities.
func SolveSides(a, b, c *float64) (*TriangleResult, error) {
	av, aOK := presentValue(a)
	bv, bOK := presentValue(b)
	cv, cOK := presentValue(c)

	n := 0
	for _, ok := range []bool{aOK, bOK, cOK} {
		if ok {
			n++
		}
	}
	if n != 2 {
		return nil, nil
	}

	for _, v := range []struct {
		ok  bool
		val float64
	}{{aOK, av}, {bOK, bv}, {cOK, cv}} {
		if v.ok && v.val < 0 {
			return nil, apperr.New(apperr.CodeInvalidGeometry, "side lengths must be non-negative")
		}
	}

	var res *TriangleResult
	var err error
	switch {
	case aOK && bOK:
		res = solveHypotenuse(av, bv)
	case aOK && cOK:
		res, err = solveLeg(av, cv, SideOpposite, SideAdjacent)
	default:
		res, err = solveLeg(bv, cv, SideAdjacent, SideOpposite)
	}
	if err != nil {
		return nil, err
	}

	// Every field of a result is finite. The only way to violate that here
	// is a true answer beyond the float64 range.
	if math.IsInf(res.Value, 0) || math.IsNaN(res.Value) {
		return nil, apperr.New(apperr.CodeInvalidInput, "computed side is too large to represent")
	}
	return res, nil
}

// solveHypotenuse derives c from the two legs. Valid for any non-negative
// pair, so it cannot fail.
func solveHypotenuse(a, b float64) *TriangleResult {
	aSq := a * a
	bSq := b * b
	sum := aSq + bSq
	// Hypot stays finite even where a*a + b*b overflows; the squared terms
	// are only computed for the derivation display.
	c := math.Hypot(a, b)

	steps := []Step{
		{"State the known legs", fmt.Sprintf("a = %s, b = %s", formatNum(a), formatNum(b))},
		{"Apply the Pythagorean theorem", "c = √(a² + b²)"},
		{"Substitute the known values", fmt.Sprintf("c = √(%s² + %s²)", formatNum(a), formatNum(b))},
		{"Square each leg", fmt.Sprintf("c = √(%s + %s)", formatIntermediate(aSq), formatIntermediate(bSq))},
		{"Add the squares", fmt.Sprintf("c = √(%s)", formatIntermediate(sum))},
		{"Take the square root", fmt.Sprintf("c = %s", formatFinal(c))},
	}

	return &TriangleResult{Solved: SideHypotenuse, Value: c, Steps: steps}
}

// solveLeg derives the missing leg from the known leg and the hypotenuse.
// The hypotenuse is the longest side of a right triangle, so hyp > leg is
// required.
func solveLeg(leg, hyp float64, known, solved Side) (*TriangleResult, error) {
	if hyp <= leg {
		return nil, apperr.New(apperr.CodeInvalidGeometry, "hypotenuse must exceed the leg")
	}

	hypSq := hyp * hyp
	legSq := leg * leg
	// Factored form: hyp·√((1-r)(1+r)) with r = leg/hyp never overflows
	// (the missing leg is shorter than the hypotenuse), where the naive
	// difference of squares goes infinite for large sides. The squares are
	// only computed for the derivation display.
	ratio := leg / hyp
	value := hyp * math.Sqrt((1-ratio)*(1+ratio))

	k := known.Symbol()
	s := solved.Symbol()
	steps := []Step{
		{"State the known sides", fmt.Sprintf("%s = %s, c = %s", k, formatNum(leg), formatNum(hyp))},
		{"Rearrange the Pythagorean theorem", fmt.Sprintf("%s = √(c² - %s²)", s, k)},
		{"Substitute and square", fmt.Sprintf("%s = √(%s - %s)", s, formatIntermediate(hypSq), formatIntermediate(legSq))},
		{"Take the square root", fmt.Sprintf("%s = %s", s, formatFinal(value))},
	}

	return &TriangleResult{Solved: solved, Value: value, Steps: steps}, nil
}

// presentValue reports whether p holds a usable finite number.
func presentValue(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	v := *p
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
