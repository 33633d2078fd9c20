// Package greedy packs a knapsack with single-pass ranking heuristics.
//
// Both heuristics sort the items once and admit each item that still fits,
// skipping it for good otherwise. No backtracking, no partial items. The
// result is an approximation; dp.Solve is the exact reference.
//
// Ties in the ranking key keep input order, so results are reproducible.
//
// Complexity: O(n log n) for the sort, O(n) for the pass.
package greedy

import (
	"sort"

	"github.com/katalvlaran/knapsack/core"
)

// SolveDensity ranks items by descending value/weight ratio and packs greedily.
//
// Weightless items with value rank first (infinite density).
//
// Errors:
//   - core.ErrInvalidInput — negative capacity, weight or value.
func SolveDensity(items []core.Item, capacity int) (core.Solution, error) {
	return solve(items, capacity, core.MethodGreedyDensity, core.Density)
}

// SolveValue ranks items by descending absolute value and packs greedily.
//
// Errors:
//   - core.ErrInvalidInput — negative capacity, weight or value.
func SolveValue(items []core.Item, capacity int) (core.Solution, error) {
	return solve(items, capacity, core.MethodGreedyValue, func(it core.Item) float64 { return it.Value })
}

// solve sorts a copy of items by key (descending, stable) and admits every
// item whose weight still fits the remaining budget.
func solve(items []core.Item, capacity int, method core.Method, key func(core.Item) float64) (core.Solution, error) {
	if err := core.Validate(items, capacity); err != nil {
		return core.Solution{}, err
	}

	ranked := append([]core.Item(nil), items...)
	sort.SliceStable(ranked, func(a, b int) bool {
		return key(ranked[a]) > key(ranked[b])
	})

	selected := make([]core.Item, 0, len(ranked))
	used := 0
	for _, it := range ranked {
		if used+it.Weight <= capacity {
			selected = append(selected, it)
			used += it.Weight
		}
	}

	return core.NewSolution(selected, capacity, method), nil
}
