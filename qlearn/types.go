package qlearn

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for agent construction and training.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("qlearn: invalid option supplied")

	// ErrBadSchedule indicates an inconsistent training Schedule.
	ErrBadSchedule = errors.New("qlearn: invalid training schedule")
)

// Action is the binary choice made for the current item.
type Action int

const (
	// Skip leaves the item behind; reward 0.
	Skip Action = 0

	// Take packs the item; reward = item value. Legal only if it fits.
	Take Action = 1
)

// String returns "skip" or "take".
func (a Action) String() string {
	if a == Take {
		return "take"
	}
	return "skip"
}

// State is the composite key of the Q-table.
type State struct {
	// Item is the index of the item about to be decided.
	Item int
	// Remaining is the capacity left before deciding it.
	Remaining int
}

// Values holds the action values of one state, indexed by Action.
type Values [2]float64

// Best returns Take only when its value is strictly greater than Skip's.
func (v Values) Best() Action {
	if v[Take] > v[Skip] {
		return Take
	}
	return Skip
}

// Max returns the larger of the two action values.
func (v Values) Max() float64 {
	if v[Take] > v[Skip] {
		return v[Take]
	}
	return v[Skip]
}

// Decision is the inspection view of one state.
type Decision struct {
	QSkip      float64 `json:"qSkip"`
	QTake      float64 `json:"qTake"`
	BestAction Action  `json:"bestAction"`
}

// Default hyper-parameters.
const (
	DefaultAlpha = 0.1
	DefaultGamma = 0.9
)

// Option configures NewAgent via functional arguments.
type Option func(*Options)

// Options holds the agent constants and its randomness source.
type Options struct {
	// Alpha is the learning rate, in (0, 1].
	Alpha float64
	// Gamma is the discount factor, in [0, 1].
	Gamma float64
	// Seed feeds the RNG when Rand is nil; 0 selects the default seed.
	Seed int64
	// Rand overrides Seed with a caller-owned source.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns alpha 0.1, gamma 0.9 and the default seed.
func DefaultOptions() Options {
	return Options{Alpha: DefaultAlpha, Gamma: DefaultGamma}
}

// WithAlpha sets the learning rate; values outside (0, 1] → ErrOptionViolation.
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		if !(alpha > 0 && alpha <= 1) {
			o.err = fmt.Errorf("%w: alpha must be in (0,1], got %g", ErrOptionViolation, alpha)
			return
		}
		o.Alpha = alpha
	}
}

// WithGamma sets the discount; values outside [0, 1] → ErrOptionViolation.
func WithGamma(gamma float64) Option {
	return func(o *Options) {
		if !(gamma >= 0 && gamma <= 1) {
			o.err = fmt.Errorf("%w: gamma must be in [0,1], got %g", ErrOptionViolation, gamma)
			return
		}
		o.Gamma = gamma
	}
}

// WithSeed selects a deterministic RNG stream. Seed 0 means the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand hands the agent a caller-owned RNG. It must not be shared with
// another goroutine.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
