package version

import (
	"strings"
	"testing"
)

func TestBanner(t *testing.T) {
	b := Banner()
	if !strings.HasPrefix(b, App+" v") {
		t.Errorf("Banner() = %q, want prefix %q", b, App+" v")
	}
	if !strings.Contains(b, Version) {
		t.Errorf("Banner() = %q, missing version %q", b, Version)
	}
}
