package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/qlearn"
	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/scenario"
)

// TestRender_SolutionAndTraining renders a page with every chart type.
func TestRender_SolutionAndTraining(t *testing.T) {
	sc := scenario.Default()
	res, err := dp.Solve(sc.Items, sc.Capacity)
	require.NoError(t, err)

	points := []qlearn.Point{
		{Episode: 1, Reward: 10, AverageReward: 10, Epsilon: 1},
		{Episode: 2, Reward: 30, AverageReward: 20, Epsilon: 0.9},
	}

	var buf bytes.Buffer
	err = report.Render(&buf,
		report.SolutionChart(sc.Items, res.Solution),
		report.TrainingChart(points),
		report.EpsilonChart(points),
	)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Training reward")
	assert.Contains(t, html, "Exploration rate")
	assert.Contains(t, html, "Laptop")
}
