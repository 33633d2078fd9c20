// Package core defines the shared data model of the knapsack solvers:
// Item, Solution and the Method tag, together with input validation and
// the sentinel errors every solver package reports through.
//
// The model carries no behavior beyond small helpers:
//
//   - Item is an immutable value. Solvers read items, never mutate them.
//   - Solution is what every solver returns. Its invariants are
//     TotalWeight == SumWeight(SelectedItems) <= Capacity and
//     TotalValue == SumValue(SelectedItems).
//   - Validate checks an instance (items + capacity) before any table is
//     allocated, so a bad weight never corrupts a DP table.
//
// Field names of the JSON/YAML encodings are fixed:
//
//	Item:     id, name, weight, value
//	Solution: selectedItems, totalValue, totalWeight, capacity, method
//
// Errors:
//
//	ErrInvalidInput - negative capacity, negative weight or value,
//	                  non-finite value, duplicate item ID.
package core
