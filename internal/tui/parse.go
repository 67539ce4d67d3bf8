package tui

import (
	"strconv"
	"strings"
)

// parseField turns a raw form field into an optional number. Blank or
// unparseable text means the field is absent; the solvers treat absence as
// "wait for more input", never as an error. A decimal comma is accepted
// alongside the decimal point.
func parseField(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
