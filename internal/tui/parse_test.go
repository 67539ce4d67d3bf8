package tui

import (
	"math"
	"testing"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"integer", "3", ptr(3)},
		{"decimal", "2.5", ptr(2.5)},
		{"decimal comma", "2,5", ptr(2.5)},
		{"padded", "  4 ", ptr(4)},
		{"negative", "-1", ptr(-1)},
		{"blank", "", nil},
		{"spaces only", "   ", nil},
		{"letters", "abc", nil},
		{"mixed", "3x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseField(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseField(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got != nil && math.Abs(*got-*tt.want) > 1e-12 {
				t.Errorf("parseField(%q) = %g, want %g", tt.in, *got, *tt.want)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
