// Package knapsack is a playground for the 0/1 knapsack problem: define
// items, set a capacity, run solvers and watch how the optimal packing is
// built.
//
// 🚀 What is inside?
//
//	• Exact solver: dynamic programming with a replayable cell-by-cell trace
//	• Heuristics: greedy by value density, greedy by absolute value
//	• Learning: a tabular Q-learning agent you can train and inspect
//	• Scenarios: YAML / JSON instance files
//	• Reports: HTML charts of solutions and training curves
//
// ✨ Why?
//
//   - Teaching-first – every solver returns the same Solution shape
//   - Deterministic – DP ties exclude, greedy ties keep input order,
//     agents are seeded
//   - Pure algorithms – core, dp, greedy and qlearn do no I/O and no logging
//
// Packages:
//
//	core/     — Item, Solution, Method, validation
//	dp/       — exact solver, table, trace, replay
//	greedy/   — density and value heuristics
//	qlearn/   — Q-table, agent, training loop
//	scenario/ — scenario files
//	report/   — go-echarts charts
//	cmd/knapsack — CLI: solve, train, scenario init
//
// Quick ASCII example (capacity 10):
//
//	item   w   v        dp picks    greedy picks
//	Gold   5  10           ·             ·
//	Silver 4  40           ✓             ✓
//	Bronze 6  30           ✓             ✓
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
package knapsack
