package dp

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/knapsack/core"
)

// Solve — exact 0/1 knapsack by dynamic programming.
//
// Algorithm Outline:
//  1. Let n = len(items). Allocate (n+1)x(capacity+1) table D, D[0][*] = 0.
//  2. For i = 1..n, for w = 0..capacity:
//     exclude = D[i-1][w]
//     if weight(i) <= w: include = D[i-1][w-weight(i)] + value(i)
//     D[i][w] = include if include > exclude, else exclude
//     (equal values resolve to exclude)
//  3. Record one Step per cell in that exact order when tracing.
//  4. Backtrack from (n, capacity): D[i][w] != D[i-1][w] means item i-1
//     was taken; subtract its weight. Reverse to ascending item order.
//
// Complexity:
//
//	Time   = O(n·capacity)
//	Memory = O(n·capacity) for the table, same again for the trace
//
// Errors:
//   - core.ErrInvalidInput — negative capacity, weight or value.
//   - ErrOptionViolation   — invalid Option.
//   - ErrTableTooLarge     — instance exceeds WithMaxCells, or its table
//     size does not fit in an int.
func Solve(items []core.Item, capacity int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := core.Validate(items, capacity); err != nil {
		return nil, err
	}

	n := len(items)
	cells, ok := cellCount(n, capacity)
	if !ok {
		return nil, fmt.Errorf("%w: %d rows x capacity %d overflows int", ErrTableTooLarge, n+1, capacity)
	}
	if cfg.MaxCells > 0 && int64(cells) > cfg.MaxCells {
		return nil, fmt.Errorf("%w: %d cells > %d", ErrTableTooLarge, cells, cfg.MaxCells)
	}

	start := time.Now()

	table := make([][]float64, n+1)
	for i := range table {
		table[i] = make([]float64, capacity+1)
	}

	var trace []Step
	if cfg.Trace {
		trace = make([]Step, 0, n*(capacity+1))
	}

	// Fill
	for i := 1; i <= n; i++ {
		it := items[i-1]
		prev, curr := table[i-1], table[i]
		for w := 0; w <= capacity; w++ {
			exclude := prev[w]
			step := Step{
				I:            i,
				W:            w,
				Decision:     Exclude,
				ExcludeValue: exclude,
				ItemWeight:   it.Weight,
				ItemValue:    it.Value,
			}
			curr[w] = exclude
			if it.Weight <= w {
				include := prev[w-it.Weight] + it.Value
				step.CanInclude = true
				step.IncludeValue = include
				if include > exclude {
					curr[w] = include
					step.Decision = Include
				}
			}
			if cfg.Trace {
				step.Value = curr[w]
				trace = append(trace, step)
			}
		}
	}

	selected := backtrack(table, items, capacity)

	res := &Result{
		Solution: core.Solution{
			SelectedItems: selected,
			TotalValue:    table[n][capacity],
			TotalWeight:   core.SumWeight(selected),
			Capacity:      capacity,
			Method:        core.MethodDP,
		},
		Table: table,
		Trace: trace,
	}
	res.ExecutionTime = time.Since(start)

	return res, nil
}

// backtrack walks the filled table from (n, capacity) down to row 0 and
// returns the selected items in ascending original index order.
func backtrack(table [][]float64, items []core.Item, capacity int) []core.Item {
	selected := make([]core.Item, 0)
	w := capacity
	for i := len(items); i > 0; i-- {
		if table[i][w] != table[i-1][w] {
			selected = append(selected, items[i-1])
			w -= items[i-1].Weight
		}
	}
	// reverse in-place
	for l, r := 0, len(selected)-1; l < r; l, r = l+1, r-1 {
		selected[l], selected[r] = selected[r], selected[l]
	}
	return selected
}

// cellCount returns (n+1)*(capacity+1). ok is false for negative dimensions
// or when the product does not fit in an int.
func cellCount(n, capacity int) (cells int, ok bool) {
	if n < 0 || capacity < 0 || capacity == math.MaxInt || n == math.MaxInt {
		return 0, false
	}
	rows, cols := n+1, capacity+1
	if rows > math.MaxInt/cols {
		return 0, false
	}
	return rows * cols, true
}
