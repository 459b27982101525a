// Package models defines the core domain entities for the lottoscope application.
// These models represent lottery draws and the statistics derived from them.
// Records carry built-in validation so that malformed API payloads are rejected
// as a whole rather than partially loaded.
//
// Terminology (matching the draw operator's own naming):
//   - Main numbers: the primary set of 5 numbers drawn per event, range 1–50.
//   - Bonus numbers: additional numbers drawn separately from the main set.
package models

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// MainNumbersPerDraw is the number of main numbers in a single draw.
const MainNumbersPerDraw = 5

// MaxNumber is the upper bound of the number universe (inclusive).
const MaxNumber = 50

// Origin describes where a batch of draw records came from.
type Origin string

const (
	// OriginFetched means the records were retrieved from the remote draws API.
	OriginFetched Origin = "fetched"
	// OriginFallback means the built-in sample records were used instead.
	OriginFallback Origin = "fallback"
)

// DrawRecord represents one completed lottery draw. Records are immutable
// once loaded; analysis works on sorted copies of Numbers, never in place.
type DrawRecord struct {
	DrawID   int       `json:"draw_id"`
	Numbers  []int     `json:"numbers"` // 5 main numbers, stored as fetched
	Bonus    []int     `json:"bonus"`   // 0+ bonus numbers
	DrawTime time.Time `json:"draw_time"`
}

// Validate checks that the record holds a complete, in-range draw.
func (d *DrawRecord) Validate() error {
	if d.DrawID <= 0 {
		return errors.New("draw ID must be positive")
	}
	if len(d.Numbers) != MainNumbersPerDraw {
		return fmt.Errorf("draw must have exactly %d main numbers, got %d", MainNumbersPerDraw, len(d.Numbers))
	}
	for _, n := range d.Numbers {
		if n < 1 || n > MaxNumber {
			return fmt.Errorf("main number %d out of range [1,%d]", n, MaxNumber)
		}
	}
	for _, b := range d.Bonus {
		if b < 1 || b > MaxNumber {
			return fmt.Errorf("bonus number %d out of range [1,%d]", b, MaxNumber)
		}
	}
	return nil
}

// SortedNumbers returns the main numbers sorted ascending. The receiver is
// not modified.
func (d *DrawRecord) SortedNumbers() []int {
	sorted := make([]int, len(d.Numbers))
	copy(sorted, d.Numbers)
	sort.Ints(sorted)
	return sorted
}
