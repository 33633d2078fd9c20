// Package report renders solver and training results as standalone HTML
// charts (go-echarts). It is the thin presentation edge of the module:
// nothing in core, dp, greedy or qlearn depends on it.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/qlearn"
)

const (
	theme         = "shine"
	colorSelected = "#4f46e5"
	colorSkipped  = "#cbd5e1"
)

// SolutionChart plots the value of every item, highlighting the ones sol selected.
func SolutionChart(items []core.Item, sol core.Solution) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: theme}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s result", sol.Method),
			Subtitle: fmt.Sprintf("value %g, weight %d/%d", sol.TotalValue, sol.TotalWeight, sol.Capacity),
		}),
	)

	names := make([]string, 0, len(items))
	values := make([]opts.BarData, 0, len(items))
	for _, it := range items {
		color := colorSkipped
		if sol.Contains(it.ID) {
			color = colorSelected
		}
		names = append(names, it.Name)
		values = append(values, opts.BarData{
			Name:      it.Name,
			Value:     it.Value,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}

	bar.SetXAxis(names).AddSeries("value", values)
	return bar
}

// TrainingChart plots per-episode reward and its rolling average.
func TrainingChart(points []qlearn.Point) *charts.Line {
	line := newEpisodeLine("Training reward", points)

	rewards := make([]opts.LineData, 0, len(points))
	averages := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		rewards = append(rewards, opts.LineData{Value: p.Reward})
		averages = append(averages, opts.LineData{Value: p.AverageReward})
	}

	line.AddSeries("reward", rewards).AddSeries("average reward", averages)
	return line
}

// EpsilonChart plots the exploration rate used for every episode.
func EpsilonChart(points []qlearn.Point) *charts.Line {
	line := newEpisodeLine("Exploration rate", points)

	eps := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		eps = append(eps, opts.LineData{Value: p.Epsilon})
	}

	line.AddSeries("epsilon", eps)
	return line
}

func newEpisodeLine(title string, points []qlearn.Point) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: theme}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	episodes := make([]string, 0, len(points))
	for _, p := range points {
		episodes = append(episodes, fmt.Sprintf("%d", p.Episode))
	}
	line.SetXAxis(episodes)
	return line
}

// Render writes all charts onto a single HTML page.
func Render(w io.Writer, cs ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(cs...)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}
	return nil
}
