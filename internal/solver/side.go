package solver

import (
	"strings"

	"github.com/lmoreno/pitagoras/internal/apperr"
)

// Side names one side of the right triangle relative to the acute angle
// under consideration: a is the opposite leg, b the adjacent leg, c the
// hypotenuse.
type Side int

const (
	SideOpposite Side = iota
	SideAdjacent
	SideHypotenuse
)

// String returns the human-readable side name.
func (s Side) String() string {
	switch s {
	case SideOpposite:
		return "opposite leg"
	case SideAdjacent:
		return "adjacent leg"
	case SideHypotenuse:
		return "hypotenuse"
	default:
		return "unknown"
	}
}

// Symbol returns the conventional single-letter label for the side.
func (s Side) Symbol() string {
	switch s {
	case SideOpposite:
		return "a"
	case SideAdjacent:
		return "b"
	case SideHypotenuse:
		return "c"
	default:
		return "?"
	}
}

// ParseSide maps a user-entered side name to a Side. It accepts the letter
// labels and the common English names, case-insensitively.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "opposite", "opposite-leg":
		return SideOpposite, nil
	case "b", "adjacent", "adjacent-leg":
		return SideAdjacent, nil
	case "c", "hyp", "hypotenuse":
		return SideHypotenuse, nil
	default:
		return 0, apperr.Newf(apperr.CodeInvalidInput, "unknown side %q (use a, b or c)", s)
	}
}
