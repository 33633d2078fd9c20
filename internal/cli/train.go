package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/qlearn"
	"github.com/katalvlaran/knapsack/report"
)

type trainFlags struct {
	scenario string
	episodes int
	seed     int64
	chart    string
	inspect  bool
	asJSON   bool
}

func newTrainCommand(a *app) *cobra.Command {
	var f trainFlags

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Q-learning agent on a scenario and compare it with the DP optimum",
		Example: `  knapsack train --episodes 2000 --chart training.html
  knapsack train --scenario heist.yaml --inspect`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.runTrain(ctx, cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&f.scenario, "scenario", "s", "", "scenario file (.yaml, .yml or .json); default is the demo backpack")
	cmd.Flags().IntVarP(&f.episodes, "episodes", "n", 0, "number of episodes (overrides training.episodes)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "RNG seed (overrides agent.seed)")
	cmd.Flags().StringVar(&f.chart, "chart", "", "write an HTML training chart to this file")
	cmd.Flags().BoolVar(&f.inspect, "inspect", false, "print the learned action values of every visited state")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "emit the training history as JSON")
	return cmd
}

func (a *app) runTrain(ctx context.Context, out io.Writer, f trainFlags) error {
	sc, err := a.loadScenario(f.scenario)
	if err != nil {
		return err
	}

	opts := a.cfg.AgentOptions()
	if f.seed != 0 {
		opts = append(opts, qlearn.WithSeed(f.seed))
	}
	agent, err := qlearn.NewAgent(opts...)
	if err != nil {
		return err
	}

	sched := a.cfg.Schedule()
	if f.episodes > 0 {
		sched.Episodes = f.episodes
	}

	a.logger.Info("training started",
		zap.Int("episodes", sched.Episodes),
		zap.Float64("alpha", agent.Alpha()),
		zap.Float64("gamma", agent.Gamma()))

	points, err := qlearn.Train(ctx, agent, sc.Items, sc.Capacity, sched)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		a.logger.Warn("training interrupted", zap.Int("completed", len(points)))
	}

	exact, err := dp.Solve(sc.Items, sc.Capacity, append(a.cfg.DPOptions(), dp.WithTrace(false))...)
	if err != nil {
		return err
	}
	policy := agent.Policy(sc.Items, sc.Capacity)
	a.logger.Info("training finished",
		zap.Int("states", agent.Table().Len()),
		zap.Float64("policy_value", policy.TotalValue),
		zap.Float64("optimal_value", exact.TotalValue))

	if f.chart != "" {
		if err := writeTrainingChart(f.chart, points); err != nil {
			return err
		}
		a.logger.Info("chart written", zap.String("path", f.chart))
	}

	if f.asJSON {
		b, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	if n := len(points); n > 0 {
		last := points[n-1]
		fmt.Fprintf(out, "episodes=%d last reward=%g average=%g epsilon=%.4f\n", last.Episode, last.Reward, last.AverageReward, last.Epsilon)
	}
	printSolution(out, policy)
	fmt.Fprintf(out, "optimal (DP) value=%g\n", exact.TotalValue)

	if f.inspect {
		for _, s := range agent.Table().States() {
			d := agent.DecisionDetails(s.Item, s.Remaining)
			fmt.Fprintf(out, "  item=%d remaining=%d Q(skip)=%.3f Q(take)=%.3f best=%s\n", s.Item, s.Remaining, d.QSkip, d.QTake, d.BestAction)
		}
	}
	return nil
}

func writeTrainingChart(path string, points []qlearn.Point) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Render(fh, report.TrainingChart(points), report.EpsilonChart(points)); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
