package solver

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is one line of a worked solution: a short description and,
// optionally, the formatted expression it refers to.
type Step struct {
	Description string
	Expression  string
}

// String renders the step as a single plain-text line.
func (s Step) String() string {
	if s.Expression == "" {
		return s.Description
	}
	return fmt.Sprintf("%s: %s", s.Description, s.Expression)
}

// FormatSteps renders a derivation as numbered plain-text lines, one step
// per line, for clipboard export and the one-shot CLI.
func FormatSteps(steps []Step) string {
	var b strings.Builder
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step.String())
	}
	return b.String()
}

// formatNum renders a caller-supplied value the way it was entered: no
// trailing zeros, no forced precision.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Display precision is fixed so that derivations are reproducible: final
// answers use 4 decimal places, intermediate squared terms use 2.
const (
	finalPlaces        = 4
	intermediatePlaces = 2
)

// formatFinal renders a final answer with 4 decimal places.
func formatFinal(v float64) string {
	return strconv.FormatFloat(v, 'f', finalPlaces, 64)
}

// formatIntermediate renders an intermediate term with 2 decimal places.
func formatIntermediate(v float64) string {
	return strconv.FormatFloat(v, 'f', intermediatePlaces, 64)
}
