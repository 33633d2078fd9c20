package dp

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/knapsack/core"
)

// Sentinel errors for the exact solver and trace replay.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dp: invalid option supplied")

	// ErrTableTooLarge indicates (n+1)·(capacity+1) exceeds the MaxCells limit.
	ErrTableTooLarge = errors.New("dp: table exceeds cell limit")

	// ErrBadTrace indicates a trace that cannot be replayed onto an
	// (n+1)x(capacity+1) table in row-major order.
	ErrBadTrace = errors.New("dp: malformed trace")
)

// Decision is the outcome recorded for a single DP cell.
type Decision int

const (
	// Exclude keeps dp[i-1][w]. Ties resolve to Exclude.
	Exclude Decision = iota

	// Include takes item i-1: dp[i-1][w-weight] + value.
	Include
)

// String returns "exclude" or "include".
func (d Decision) String() string {
	if d == Include {
		return "include"
	}
	return "exclude"
}

// MarshalText encodes the decision as its lowercase name.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts "exclude" or "include".
func (d *Decision) UnmarshalText(b []byte) error {
	switch string(b) {
	case "exclude":
		*d = Exclude
	case "include":
		*d = Include
	default:
		return fmt.Errorf("dp: unknown decision %q", string(b))
	}
	return nil
}

// Step records the computation of one cell dp[I][W].
//
// Steps are emitted in row-major order (I = 1..n, W = 0..capacity), so
// applying them in sequence rebuilds the table cell by cell.
type Step struct {
	I            int      `json:"i"`
	W            int      `json:"w"`
	Value        float64  `json:"val"`
	Decision     Decision `json:"action"`
	ExcludeValue float64  `json:"prevExcludeVal"`

	// IncludeValue is dp[I-1][W-ItemWeight] + ItemValue; meaningful only
	// when CanInclude is true.
	IncludeValue float64 `json:"prevIncludeVal"`

	// CanInclude is false when the item is heavier than the budget W.
	CanInclude bool `json:"canInclude"`

	ItemWeight int     `json:"itemWeight"`
	ItemValue  float64 `json:"itemValue"`
}

// Result is the output of Solve.
type Result struct {
	core.Solution

	// Table is the full (n+1)x(capacity+1) DP table.
	Table [][]float64 `json:"dpTable"`

	// Trace is the row-major log of cell computations; nil when tracing is off.
	Trace []Step `json:"trace,omitempty"`

	// ExecutionTime is informational wall-clock time of the solve.
	ExecutionTime time.Duration `json:"executionTime"`
}

// Option configures Solve via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of Solve.
type Options struct {
	// Trace enables recording of the per-cell Step log.
	Trace bool

	// MaxCells bounds (n+1)·(capacity+1). Zero disables the check.
	MaxCells int64

	err error
}

// DefaultOptions returns tracing enabled and no cell limit.
func DefaultOptions() Options {
	return Options{Trace: true}
}

// WithTrace toggles trace recording.
func WithTrace(on bool) Option {
	return func(o *Options) { o.Trace = on }
}

// WithMaxCells limits the table size.
//
//	n > 0:  reject larger instances with ErrTableTooLarge
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxCells(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCells cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}
