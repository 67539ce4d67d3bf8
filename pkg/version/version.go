// ============================================================================
// Pitagoras - Right-Triangle Trainer
// ============================================================================
//
// Package:     version
// Description: Central version information
// License:     MIT
// ============================================================================

package version

import "fmt"

const (
	// App is the binary name
	App = "pitagoras"

	// Version is the release version
	Version = "1.0.0"
)

// Banner returns the one-line identification string
func Banner() string {
	return fmt.Sprintf("%s v%s", App, Version)
}
