package greedy_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/greedy"
)

// TestSolveDensity_AgreesWithDP covers an instance where density order is optimal.
func TestSolveDensity_AgreesWithDP(t *testing.T) {
	in := []core.Item{
		{ID: "1", Weight: 5, Value: 10},
		{ID: "2", Weight: 4, Value: 40},
		{ID: "3", Weight: 6, Value: 30},
	}

	sol, err := greedy.SolveDensity(in, 10)
	require.NoError(t, err)

	assert.Equal(t, []core.Item{in[1], in[2]}, sol.SelectedItems, "density order: 2 (10/kg), 3 (5/kg)")
	assert.Equal(t, 70.0, sol.TotalValue)
	assert.Equal(t, 10, sol.TotalWeight)
	assert.Equal(t, core.MethodGreedyDensity, sol.Method)

	exact, err := dp.Solve(in, 10)
	require.NoError(t, err)
	assert.Equal(t, exact.TotalValue, sol.TotalValue)
}

// TestSolveDensity_Suboptimal shows the heuristic missing the optimum.
func TestSolveDensity_Suboptimal(t *testing.T) {
	in := []core.Item{
		{ID: "small", Weight: 1, Value: 2},
		{ID: "big", Weight: 10, Value: 10},
	}

	sol, err := greedy.SolveDensity(in, 10)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sol.TotalValue, "density picks the small item, then big no longer fits")

	exact, err := dp.Solve(in, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, exact.TotalValue)
}

// TestSolveValue ranks by absolute value.
func TestSolveValue(t *testing.T) {
	in := []core.Item{
		{ID: "a", Weight: 1, Value: 5},
		{ID: "b", Weight: 9, Value: 20},
		{ID: "c", Weight: 2, Value: 8},
	}

	sol, err := greedy.SolveValue(in, 10)
	require.NoError(t, err)

	assert.Equal(t, []core.Item{in[1], in[0]}, sol.SelectedItems)
	assert.Equal(t, 25.0, sol.TotalValue)
	assert.Equal(t, core.MethodGreedyValue, sol.Method)
}

// TestSolveDensity_StableTies keeps input order among equal densities.
func TestSolveDensity_StableTies(t *testing.T) {
	in := []core.Item{
		{ID: "x", Weight: 2, Value: 4},
		{ID: "y", Weight: 1, Value: 2},
		{ID: "z", Weight: 3, Value: 6},
	}

	sol, err := greedy.SolveDensity(in, 3)
	require.NoError(t, err)
	assert.Equal(t, []core.Item{in[0], in[1]}, sol.SelectedItems)
}

// TestSolve_EdgeCases covers zero capacity, empty input and invalid input.
func TestSolve_EdgeCases(t *testing.T) {
	in := []core.Item{{ID: "a", Weight: 1, Value: 1}}

	for _, solve := range []func([]core.Item, int) (core.Solution, error){greedy.SolveDensity, greedy.SolveValue} {
		sol, err := solve(in, 0)
		require.NoError(t, err)
		assert.Empty(t, sol.SelectedItems)
		assert.Zero(t, sol.TotalValue)

		sol, err = solve(nil, 10)
		require.NoError(t, err)
		assert.Empty(t, sol.SelectedItems)

		_, err = solve(in, -3)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
	}
}

// TestSolveDensity_DoesNotMutateInput verifies the caller's slice order survives.
func TestSolveDensity_DoesNotMutateInput(t *testing.T) {
	in := []core.Item{
		{ID: "1", Weight: 5, Value: 1},
		{ID: "2", Weight: 1, Value: 9},
	}
	orig := append([]core.Item(nil), in...)

	_, err := greedy.SolveDensity(in, 6)
	require.NoError(t, err)
	assert.Equal(t, orig, in)
}

// TestSolve_NeverBeatsDP checks feasibility and DP dominance on random instances.
func TestSolve_NeverBeatsDP(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 100; round++ {
		n := rng.Intn(12)
		in := make([]core.Item, n)
		for i := range in {
			in[i] = core.Item{ID: string(rune('a' + i)), Weight: rng.Intn(12), Value: float64(rng.Intn(40))}
		}
		capacity := rng.Intn(40)

		exact, err := dp.Solve(in, capacity, dp.WithTrace(false))
		require.NoError(t, err)

		for _, solve := range []func([]core.Item, int) (core.Solution, error){greedy.SolveDensity, greedy.SolveValue} {
			sol, err := solve(in, capacity)
			require.NoError(t, err)

			assert.LessOrEqual(t, sol.TotalWeight, capacity, "round %d", round)
			assert.Equal(t, core.SumWeight(sol.SelectedItems), sol.TotalWeight, "round %d", round)
			assert.Equal(t, core.SumValue(sol.SelectedItems), sol.TotalValue, "round %d", round)
			assert.GreaterOrEqual(t, exact.TotalValue+1e-9, sol.TotalValue, "round %d", round)
		}
	}
}
