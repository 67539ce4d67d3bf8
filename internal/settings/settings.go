// ============================================================================
// Pitagoras - Right-Triangle Trainer
// ============================================================================
//
// Package:     settings
// Description: Persistence for ephemeral UI preferences. Calculation results
//              are never written to disk.
// License:     MIT
// ============================================================================

package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// maxRecentInputs caps the stored input history
const maxRecentInputs = 50

// Settings holds persistent UI preferences
type Settings struct {
	LastTab      string   `json:"last_tab,omitempty"`
	DarkMode     bool     `json:"dark_mode"`
	RecentInputs []string `json:"recent_inputs,omitempty"`
}

// Dir is the settings directory; overridable in tests.
var Dir = defaultDir

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pitagoras"
	}
	return filepath.Join(home, ".pitagoras")
}

func settingsFile() string {
	return filepath.Join(Dir(), "settings.json")
}

// Load loads settings from disk. Missing or unreadable files yield fresh
// defaults rather than an error: preferences are never worth failing over.
func Load() *Settings {
	data, err := os.ReadFile(settingsFile())
	if err != nil {
		return defaultSettings()
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return defaultSettings()
	}
	return &s
}

func defaultSettings() *Settings {
	return &Settings{DarkMode: true}
}

// Save writes settings to disk
func Save(s *Settings) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	if len(s.RecentInputs) > maxRecentInputs {
		s.RecentInputs = s.RecentInputs[len(s.RecentInputs)-maxRecentInputs:]
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(settingsFile(), data, 0644)
}

// RememberInput appends an input summary, dropping consecutive duplicates
func (s *Settings) RememberInput(input string) {
	if input == "" {
		return
	}
	if n := len(s.RecentInputs); n > 0 && s.RecentInputs[n-1] == input {
		return
	}
	s.RecentInputs = append(s.RecentInputs, input)
}
