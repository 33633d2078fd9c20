// Package config holds the typed configuration of the knapsack CLI.
//
// Values come from viper: defaults set here, an optional knapsack.yaml, and
// KNAPSACK_* environment variables (dots become underscores).
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/qlearn"
)

// Config is the root configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Agent    AgentConfig    `mapstructure:"agent" yaml:"agent"`
	Training TrainingConfig `mapstructure:"training" yaml:"training"`
	DP       DPConfig       `mapstructure:"dp" yaml:"dp"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// AgentConfig holds the Q-learning constants.
type AgentConfig struct {
	Alpha float64 `mapstructure:"alpha" yaml:"alpha"`
	Gamma float64 `mapstructure:"gamma" yaml:"gamma"`
	Seed  int64   `mapstructure:"seed" yaml:"seed"`
}

// TrainingConfig mirrors qlearn.Schedule.
type TrainingConfig struct {
	Episodes     int     `mapstructure:"episodes" yaml:"episodes"`
	EpsilonStart float64 `mapstructure:"epsilon_start" yaml:"epsilon_start"`
	EpsilonMin   float64 `mapstructure:"epsilon_min" yaml:"epsilon_min"`
	EpsilonDecay float64 `mapstructure:"epsilon_decay" yaml:"epsilon_decay"`
	Window       int     `mapstructure:"window" yaml:"window"`
}

// DPConfig bounds the exact solver.
type DPConfig struct {
	MaxCells int64 `mapstructure:"max_cells" yaml:"max_cells"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "knapsack")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// Agent
	v.SetDefault("agent.alpha", qlearn.DefaultAlpha)
	v.SetDefault("agent.gamma", qlearn.DefaultGamma)
	v.SetDefault("agent.seed", 0)

	// Training
	sched := qlearn.DefaultSchedule()
	v.SetDefault("training.episodes", sched.Episodes)
	v.SetDefault("training.epsilon_start", sched.EpsilonStart)
	v.SetDefault("training.epsilon_min", sched.EpsilonMin)
	v.SetDefault("training.epsilon_decay", sched.EpsilonDecay)
	v.SetDefault("training.window", sched.Window)

	// DP: 50M cells is ~400MB of table alone.
	v.SetDefault("dp.max_cells", 50_000_000)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the agent constants and the training schedule.
func (c *Config) Validate() error {
	if _, err := qlearn.NewAgent(c.AgentOptions()...); err != nil {
		return fmt.Errorf("config: agent: %w", err)
	}
	if err := c.Schedule().Validate(); err != nil {
		return fmt.Errorf("config: training: %w", err)
	}
	if c.DP.MaxCells < 0 {
		return fmt.Errorf("config: dp.max_cells must be >= 0, got %d", c.DP.MaxCells)
	}
	return nil
}

// AgentOptions converts the agent section into qlearn options.
func (c *Config) AgentOptions() []qlearn.Option {
	return []qlearn.Option{
		qlearn.WithAlpha(c.Agent.Alpha),
		qlearn.WithGamma(c.Agent.Gamma),
		qlearn.WithSeed(c.Agent.Seed),
	}
}

// Schedule converts the training section into a qlearn.Schedule.
func (c *Config) Schedule() qlearn.Schedule {
	return qlearn.Schedule{
		Episodes:     c.Training.Episodes,
		EpsilonStart: c.Training.EpsilonStart,
		EpsilonMin:   c.Training.EpsilonMin,
		EpsilonDecay: c.Training.EpsilonDecay,
		Window:       c.Training.Window,
	}
}

// DPOptions converts the dp section into solver options.
func (c *Config) DPOptions() []dp.Option {
	return []dp.Option{dp.WithMaxCells(c.DP.MaxCells)}
}
