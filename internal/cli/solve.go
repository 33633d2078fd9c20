package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"
	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/report"
)

type solveFlags struct {
	scenario string
	capacity int
	override bool
	method   string
	trace    bool
	asJSON   bool
	chart    string
}

func newSolveCommand(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a scenario with the exact and/or greedy solvers",
		Example: `  knapsack solve
  knapsack solve --scenario heist.yaml --method all --chart result.html
  knapsack solve --method dp --trace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.override = cmd.Flags().Changed("capacity")
			return a.runSolve(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&f.scenario, "scenario", "s", "", "scenario file (.yaml, .yml or .json); default is the demo backpack")
	cmd.Flags().IntVar(&f.capacity, "capacity", 0, "override the scenario capacity")
	cmd.Flags().StringVarP(&f.method, "method", "m", "all", "dp, greedy, greedy-value or all")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "print the DP trace step by step")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "emit JSON instead of text")
	cmd.Flags().StringVar(&f.chart, "chart", "", "write an HTML chart of the solutions to this file")
	return cmd
}

// solved is one solver outcome; DP results also carry table and trace.
type solved struct {
	sol core.Solution
	dp  *dp.Result
}

func (a *app) runSolve(out io.Writer, f solveFlags) error {
	sc, err := a.loadScenario(f.scenario)
	if err != nil {
		return err
	}
	if f.override {
		sc.Capacity = f.capacity
	}

	methods, err := parseMethods(f.method)
	if err != nil {
		return err
	}

	results := make([]solved, 0, len(methods))
	for _, m := range methods {
		var r solved
		switch m {
		case core.MethodDP:
			res, err := dp.Solve(sc.Items, sc.Capacity, append(a.cfg.DPOptions(), dp.WithTrace(f.trace || f.asJSON))...)
			if err != nil {
				return err
			}
			r = solved{sol: res.Solution, dp: res}
			a.logger.Info("dp solved",
				zap.Float64("value", res.TotalValue),
				zap.Int("cells", len(res.Table)*(sc.Capacity+1)),
				zap.Duration("elapsed", res.ExecutionTime))
		case core.MethodGreedyDensity:
			sol, err := greedy.SolveDensity(sc.Items, sc.Capacity)
			if err != nil {
				return err
			}
			r = solved{sol: sol}
		case core.MethodGreedyValue:
			sol, err := greedy.SolveValue(sc.Items, sc.Capacity)
			if err != nil {
				return err
			}
			r = solved{sol: sol}
		}
		results = append(results, r)
	}

	if f.chart != "" {
		if err := writeSolutionChart(f.chart, sc.Items, results); err != nil {
			return err
		}
		a.logger.Info("chart written", zap.String("path", f.chart))
	}

	if f.asJSON {
		payload := make([]any, 0, len(results))
		for _, r := range results {
			if r.dp != nil {
				payload = append(payload, r.dp)
				continue
			}
			payload = append(payload, r.sol)
		}
		b, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	for _, r := range results {
		printSolution(out, r.sol)
		if r.dp != nil && f.trace {
			printTrace(out, r.dp.Trace)
		}
	}
	return nil
}

func parseMethods(s string) ([]core.Method, error) {
	switch strings.ToLower(s) {
	case "dp":
		return []core.Method{core.MethodDP}, nil
	case "greedy", "greedy-density":
		return []core.Method{core.MethodGreedyDensity}, nil
	case "greedy-value":
		return []core.Method{core.MethodGreedyValue}, nil
	case "all":
		return []core.Method{core.MethodDP, core.MethodGreedyDensity, core.MethodGreedyValue}, nil
	}
	return nil, fmt.Errorf("unknown method %q (want dp, greedy, greedy-value or all)", s)
}

func printSolution(out io.Writer, sol core.Solution) {
	fmt.Fprintf(out, "%s: value=%g weight=%d/%d\n", sol.Method, sol.TotalValue, sol.TotalWeight, sol.Capacity)
	for _, it := range sol.SelectedItems {
		fmt.Fprintf(out, "  - %s (w=%d, v=%g)\n", it.Name, it.Weight, it.Value)
	}
}

func printTrace(out io.Writer, trace []dp.Step) {
	for _, s := range trace {
		incl := "impossible"
		if s.CanInclude {
			incl = fmt.Sprintf("%g", s.IncludeValue)
		}
		fmt.Fprintf(out, "    dp[%d][%d] = %g  %-7s exclude=%g include=%s\n", s.I, s.W, s.Value, s.Decision, s.ExcludeValue, incl)
	}
}

func writeSolutionChart(path string, items []core.Item, results []solved) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	cs := make([]components.Charter, 0, len(results))
	for _, r := range results {
		cs = append(cs, report.SolutionChart(items, r.sol))
	}
	if err := report.Render(fh, cs...); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
