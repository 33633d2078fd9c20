package dp

import "fmt"

// Replay rebuilds the DP table from a complete trace.
//
// Each step's Decision is re-applied against the partially rebuilt table
// (Exclude copies the cell above, Include adds ItemValue to the cell
// ItemWeight columns to the left in the row above), so a trace produced by
// Solve reconstructs Result.Table exactly.
//
// Errors:
//   - ErrBadTrace if n or capacity is negative or too large to index,
//     the trace length is not n·(capacity+1), or any step is
//     out of row-major order, or an Include step does not fit its budget.
//
// Complexity: O(n·capacity) time and memory.
func Replay(trace []Step, n, capacity int) ([][]float64, error) {
	cells, ok := cellCount(n, capacity)
	if !ok {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrBadTrace, n, capacity)
	}
	if want := cells - (capacity + 1); len(trace) != want {
		return nil, fmt.Errorf("%w: %d steps, want %d", ErrBadTrace, len(trace), want)
	}
	return ReplayPrefix(trace, n, capacity, len(trace))
}

// ReplayPrefix applies the first k steps of trace to a fresh
// (n+1)x(capacity+1) table and returns it. Cells not yet reached stay 0,
// which is the state an animated replay shows after k ticks.
func ReplayPrefix(trace []Step, n, capacity, k int) ([][]float64, error) {
	cells, ok := cellCount(n, capacity)
	if !ok {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrBadTrace, n, capacity)
	}
	if k < 0 || k > len(trace) || k > cells-(capacity+1) {
		return nil, fmt.Errorf("%w: prefix %d out of range", ErrBadTrace, k)
	}

	table := make([][]float64, n+1)
	for i := range table {
		table[i] = make([]float64, capacity+1)
	}

	for idx := 0; idx < k; idx++ {
		s := trace[idx]
		wantI, wantW := idx/(capacity+1)+1, idx%(capacity+1)
		if s.I != wantI || s.W != wantW {
			return nil, fmt.Errorf("%w: step %d at (%d,%d), want (%d,%d)", ErrBadTrace, idx, s.I, s.W, wantI, wantW)
		}
		switch s.Decision {
		case Exclude:
			table[s.I][s.W] = table[s.I-1][s.W]
		case Include:
			if s.ItemWeight < 0 || s.ItemWeight > s.W {
				return nil, fmt.Errorf("%w: step %d includes weight %d into budget %d", ErrBadTrace, idx, s.ItemWeight, s.W)
			}
			table[s.I][s.W] = table[s.I-1][s.W-s.ItemWeight] + s.ItemValue
		default:
			return nil, fmt.Errorf("%w: step %d has unknown decision %d", ErrBadTrace, idx, s.Decision)
		}
	}

	return table, nil
}
