package core

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// Sentinel errors for instance validation.
var (
	// ErrInvalidInput indicates a malformed knapsack instance
	// (negative capacity, negative weight or value, duplicate ID, ...).
	ErrInvalidInput = errors.New("core: invalid input")
)

// Method identifies the algorithm that produced a Solution.
type Method string

const (
	// MethodDP tags solutions of the exact dynamic-programming solver.
	MethodDP Method = "Dynamic Programming"

	// MethodGreedyDensity tags solutions of the value/weight heuristic.
	MethodGreedyDensity Method = "Greedy (Value Density)"

	// MethodGreedyValue tags solutions of the absolute-value heuristic.
	MethodGreedyValue Method = "Greedy (Absolute Value)"

	// MethodQLearning tags greedy rollouts of a trained Q-learning agent.
	MethodQLearning Method = "Q-Learning"
)

// Item is a single candidate for the knapsack.
//
// Weight is an integer budget unit; Value is any finite, non-negative number.
// Items are passed by value and never modified by a solver.
type Item struct {
	// ID uniquely identifies the item within one instance.
	ID string `json:"id" yaml:"id"`

	// Name is a human-readable label.
	Name string `json:"name" yaml:"name"`

	// Weight is the capacity consumed when the item is taken.
	Weight int `json:"weight" yaml:"weight"`

	// Value is the reward collected when the item is taken.
	Value float64 `json:"value" yaml:"value"`
}

// NewItem returns an Item with a freshly generated UUID as its ID.
func NewItem(name string, weight int, value float64) Item {
	return Item{
		ID:     uuid.NewString(),
		Name:   name,
		Weight: weight,
		Value:  value,
	}
}

// Density returns the value-per-weight ratio of it.
//
// A zero-weight item has infinite density when it carries value, and zero
// density otherwise, so it never produces NaN when used as a sort key.
func Density(it Item) float64 {
	if it.Weight == 0 {
		if it.Value > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return it.Value / float64(it.Weight)
}

// Solution is the result of one solve call.
type Solution struct {
	// SelectedItems is the chosen subset, without duplicates.
	SelectedItems []Item `json:"selectedItems" yaml:"selectedItems"`

	// TotalValue is the sum of SelectedItems values.
	TotalValue float64 `json:"totalValue" yaml:"totalValue"`

	// TotalWeight is the sum of SelectedItems weights; never exceeds Capacity.
	TotalWeight int `json:"totalWeight" yaml:"totalWeight"`

	// Capacity is the budget the solution was computed for.
	Capacity int `json:"capacity" yaml:"capacity"`

	// Method names the algorithm that produced the solution.
	Method Method `json:"method" yaml:"method"`
}

// Contains reports whether the item with the given ID was selected.
func (s Solution) Contains(id string) bool {
	for _, it := range s.SelectedItems {
		if it.ID == id {
			return true
		}
	}
	return false
}

// SumWeight returns the total weight of items.
func SumWeight(items []Item) int {
	var total int
	for _, it := range items {
		total += it.Weight
	}
	return total
}

// SumValue returns the total value of items.
func SumValue(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Value
	}
	return total
}

// NewSolution assembles a Solution from an already feasible selection,
// deriving both totals from the items themselves.
func NewSolution(selected []Item, capacity int, method Method) Solution {
	if selected == nil {
		selected = []Item{}
	}
	return Solution{
		SelectedItems: selected,
		TotalValue:    SumValue(selected),
		TotalWeight:   SumWeight(selected),
		Capacity:      capacity,
		Method:        method,
	}
}
