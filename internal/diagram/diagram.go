// ============================================================================
// Pitagoras - Right-Triangle Trainer
// ============================================================================
//
// Package:     diagram
// Description: To-scale character diagram of a right triangle, right angle
//              at the bottom left
// License:     MIT
// ============================================================================

package diagram

import (
	"math"
	"strings"
)

// Options controls the rendered size and character set
type Options struct {
	MaxWidth  int  // columns available for the horizontal leg
	MaxHeight int  // rows available for the vertical leg
	ASCII     bool // use plain ASCII instead of box-drawing characters
}

const (
	defaultMaxWidth  = 40
	defaultMaxHeight = 12
)

// Render draws the triangle with vertical leg a and horizontal leg b, scaled
// to fit the option bounds while keeping the aspect ratio. The sides carry
// their conventional labels a, b and c. Non-positive or non-finite legs
// yield an empty string: there is nothing to draw yet.
func Render(a, b float64, opts Options) string {
	if !(a > 0) || !(b > 0) ||
		math.IsInf(a, 0) || math.IsInf(b, 0) {
		return ""
	}

	maxW := opts.MaxWidth
	if maxW < 4 {
		maxW = defaultMaxWidth
	}
	maxH := opts.MaxHeight
	if maxH < 2 {
		maxH = defaultMaxHeight
	}

	// Terminal cells are roughly twice as tall as wide, so the horizontal
	// leg gets two columns per unit to keep the drawn shape to scale.
	scale := math.Min(float64(maxH)/a, float64(maxW)/(2*b))
	h := clamp(int(math.Round(a*scale)), 2, maxH)
	w := clamp(int(math.Round(2*b*scale)), 4, maxW)

	vert, hyp, base := '│', '╲', '─'
	if opts.ASCII {
		vert, hyp, base = '|', '\\', '_'
	}

	// Two columns of left margin for the "a" label, a few to the right of
	// the hypotenuse for "c".
	const margin = 2
	rowLen := margin + w + 4

	var lines []string
	for i := 0; i < h; i++ {
		row := blankRow(rowLen)
		row[margin] = vert

		hx := margin + int(math.Round(float64(i+1)/float64(h)*float64(w)))
		if hx <= margin {
			hx = margin + 1
		}
		row[hx] = hyp

		if i == h/2 {
			row[0] = 'a'
			if hx+2 < rowLen {
				row[hx+2] = 'c'
			}
		}
		lines = append(lines, strings.TrimRight(string(row), " "))
	}

	// Base row closes the right angle.
	baseRow := blankRow(rowLen)
	baseRow[margin] = vert
	for x := margin + 1; x <= margin+w; x++ {
		baseRow[x] = base
	}
	lines = append(lines, strings.TrimRight(string(baseRow), " "))

	label := strings.Repeat(" ", margin+w/2) + "b"
	lines = append(lines, label)

	return strings.Join(lines, "\n")
}

func blankRow(n int) []rune {
	row := make([]rune, n)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
