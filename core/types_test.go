package core_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
)

// TestNewItem_AssignsUUID verifies that NewItem generates a parseable, unique ID.
func TestNewItem_AssignsUUID(t *testing.T) {
	a := core.NewItem("Laptop", 3, 10)
	b := core.NewItem("Laptop", 3, 10)

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err, "ID must be a UUID")
	assert.NotEqual(t, a.ID, b.ID, "two items must not share an ID")
	assert.Equal(t, "Laptop", a.Name)
	assert.Equal(t, 3, a.Weight)
	assert.Equal(t, 10.0, a.Value)
}

// TestDensity covers the regular ratio and both zero-weight cases.
func TestDensity(t *testing.T) {
	assert.Equal(t, 10.0, core.Density(core.Item{Weight: 4, Value: 40}))
	assert.True(t, math.IsInf(core.Density(core.Item{Weight: 0, Value: 5}), 1), "valuable weightless item is +Inf")
	assert.Equal(t, 0.0, core.Density(core.Item{Weight: 0, Value: 0}), "empty weightless item must not be NaN")
}

// TestNewSolution_Totals checks that totals are derived from the selection.
func TestNewSolution_Totals(t *testing.T) {
	sel := []core.Item{
		{ID: "a", Weight: 4, Value: 40},
		{ID: "b", Weight: 6, Value: 30},
	}
	sol := core.NewSolution(sel, 10, core.MethodGreedyDensity)

	assert.Equal(t, 70.0, sol.TotalValue)
	assert.Equal(t, 10, sol.TotalWeight)
	assert.Equal(t, 10, sol.Capacity)
	assert.Equal(t, core.MethodGreedyDensity, sol.Method)
	assert.True(t, sol.Contains("a"))
	assert.False(t, sol.Contains("z"))
}

// TestNewSolution_EmptySelection ensures an empty selection is a non-nil slice.
func TestNewSolution_EmptySelection(t *testing.T) {
	sol := core.NewSolution(nil, 0, core.MethodDP)

	require.NotNil(t, sol.SelectedItems)
	assert.Empty(t, sol.SelectedItems)
	assert.Zero(t, sol.TotalValue)
	assert.Zero(t, sol.TotalWeight)
}
