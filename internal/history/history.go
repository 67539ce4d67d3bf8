// ============================================================================
// Pitagoras - Right-Triangle Trainer
// ============================================================================
//
// Package:     history
// Description: In-session ring of solved problems for the History tab.
//              Entries live in memory only and die with the process.
// License:     MIT
// ============================================================================

package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmoreno/pitagoras/internal/solver"
)

// Kind tags which engine produced an entry
type Kind int

const (
	KindPythagoras Kind = iota
	KindTrig
)

// String returns the label shown in the History tab
func (k Kind) String() string {
	switch k {
	case KindPythagoras:
		return "pythagoras"
	case KindTrig:
		return "trig"
	default:
		return "unknown"
	}
}

// Entry is one solved problem
type Entry struct {
	ID      string
	Kind    Kind
	Summary string
	Steps   []solver.Step
	At      time.Time
}

// Ring keeps the most recent entries, newest first
type Ring struct {
	max     int
	entries []Entry
}

// NewRing creates a ring holding at most max entries
func NewRing(max int) *Ring {
	if max < 1 {
		max = 1
	}
	return &Ring{max: max}
}

// Add records a solve and returns the stored entry
func (r *Ring) Add(kind Kind, summary string, steps []solver.Step) Entry {
	e := Entry{
		ID:      uuid.NewString(),
		Kind:    kind,
		Summary: summary,
		Steps:   steps,
		At:      time.Now(),
	}

	r.entries = append([]Entry{e}, r.entries...)
	if len(r.entries) > r.max {
		r.entries = r.entries[:r.max]
	}
	return e
}

// Entries returns a copy, newest first
func (r *Ring) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of stored entries
func (r *Ring) Len() int {
	return len(r.entries)
}

// Clear drops all entries
func (r *Ring) Clear() {
	r.entries = nil
}
