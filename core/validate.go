package core

import (
	"fmt"
	"math"
)

// Validate checks a knapsack instance before any solver allocates state.
//
// Contract:
//   - capacity must be >= 0 (zero is valid: only zero-weight items fit).
//   - every Weight must be >= 0.
//   - every Value must be finite and >= 0.
//   - non-empty IDs must be unique; empty IDs are allowed and never collide.
//   - an empty item list is valid.
//
// All failures wrap ErrInvalidInput and name the offending index.
//
// Complexity: O(n) time, O(n) extra space for the ID set.
func Validate(items []Item, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: capacity %d is negative", ErrInvalidInput, capacity)
	}

	seen := make(map[string]int, len(items))
	for i, it := range items {
		if it.Weight < 0 {
			return fmt.Errorf("%w: item %d (%q) has negative weight %d", ErrInvalidInput, i, it.Name, it.Weight)
		}
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
			return fmt.Errorf("%w: item %d (%q) has non-finite value", ErrInvalidInput, i, it.Name)
		}
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d (%q) has negative value %g", ErrInvalidInput, i, it.Name, it.Value)
		}
		if it.ID == "" {
			continue
		}
		if j, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: items %d and %d share ID %q", ErrInvalidInput, j, i, it.ID)
		}
		seen[it.ID] = i
	}

	return nil
}
