// Package dp solves the 0/1 knapsack problem exactly by dynamic programming
// and records a replayable trace of every table cell it computes.
//
// 🚀 What does it compute?
//
//	dp[i][w] = best value using the first i items within budget w.
//	The table is filled row by row; the optimal subset is recovered by
//	walking back from dp[n][capacity].
//
// ✨ Key features:
//   - exact optimum, deterministic item selection (ties exclude)
//   - full (n+1)x(capacity+1) table returned for display
//   - row-major Step trace, one entry per cell, ready for animation
//   - Replay / ReplayPrefix to rebuild the table from the trace
//   - optional cell limit (WithMaxCells) for untrusted capacities
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapsack/dp"
//
//	res, err := dp.Solve(items, 50)
//	if err != nil {
//	  // handle core.ErrInvalidInput or dp.ErrTableTooLarge
//	}
//	fmt.Println(res.TotalValue, res.SelectedItems)
//
// Performance:
//
//   - Time:   O(n·capacity)
//   - Memory: O(n·capacity)
//
// Capacity is pseudo-polynomial: a huge budget means a huge table. Callers
// bound it, or let WithMaxCells do it for them.
package dp
