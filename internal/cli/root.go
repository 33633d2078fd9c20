// Package cli wires the knapsack solvers into a cobra command tree.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/internal/observability"
	"github.com/katalvlaran/knapsack/scenario"
)

// Version is the application version.
// Set at build time: go build -ldflags "-X github.com/katalvlaran/knapsack/internal/cli.Version=1.2.0"
var Version = "dev"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCommand builds the full command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "knapsack",
		Short:         "Explore the 0/1 knapsack problem: exact DP, greedy heuristics and Q-learning.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./knapsack.yaml)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(newSolveCommand(a), newTrainCommand(a), newScenarioCommand(a))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initialize reads configuration and builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	config.SetDefaults(a.v)
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("knapsack")
	}
	a.v.SetEnvPrefix("KNAPSACK")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = observability.NewLogger(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))
	a.logger.Debug("configuration loaded", zap.String("version", Version), zap.String("file", a.v.ConfigFileUsed()))
	return nil
}

// loadScenario reads path, or returns the built-in demo scenario when path is empty.
func (a *app) loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("scenario loaded", zap.String("path", path), zap.Int("items", len(sc.Items)), zap.Int("capacity", sc.Capacity))
	return sc, nil
}
