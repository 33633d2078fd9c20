package qlearn

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knapsack/core"
)

// Schedule drives Train: how many episodes and how epsilon decays.
type Schedule struct {
	// Episodes is the number of RunEpisode calls, >= 1.
	Episodes int
	// EpsilonStart is the exploration rate of the first episode.
	EpsilonStart float64
	// EpsilonMin is the floor epsilon decays to.
	EpsilonMin float64
	// EpsilonDecay multiplies epsilon after every episode, in (0, 1].
	EpsilonDecay float64
	// Window is the length of the rolling reward average, >= 1.
	Window int
}

// DefaultSchedule returns 500 episodes decaying epsilon from 1.0 by 0.99 per
// episode down to 0.01, averaged over the last 50 episodes.
func DefaultSchedule() Schedule {
	return Schedule{
		Episodes:     500,
		EpsilonStart: 1.0,
		EpsilonMin:   0.01,
		EpsilonDecay: 0.99,
		Window:       50,
	}
}

// Point is one row of the training history.
type Point struct {
	Episode       int     `json:"episode"`
	Reward        float64 `json:"reward"`
	AverageReward float64 `json:"averageReward"`
	Epsilon       float64 `json:"epsilon"`
}

// Validate checks the schedule for consistency.
func (s Schedule) Validate() error {
	switch {
	case s.Episodes < 1:
		return fmt.Errorf("%w: episodes must be >= 1, got %d", ErrBadSchedule, s.Episodes)
	case s.Window < 1:
		return fmt.Errorf("%w: window must be >= 1, got %d", ErrBadSchedule, s.Window)
	case !(s.EpsilonMin >= 0 && s.EpsilonMin <= s.EpsilonStart && s.EpsilonStart <= 1):
		return fmt.Errorf("%w: need 0 <= min (%g) <= start (%g) <= 1", ErrBadSchedule, s.EpsilonMin, s.EpsilonStart)
	case !(s.EpsilonDecay > 0 && s.EpsilonDecay <= 1):
		return fmt.Errorf("%w: decay must be in (0,1], got %g", ErrBadSchedule, s.EpsilonDecay)
	}
	return nil
}

// Train runs sched.Episodes episodes on agent and returns one Point per
// completed episode.
//
// The context is checked before each episode. On cancellation the points of
// the episodes already played are returned together with ctx.Err(); the
// table holds exactly those episodes.
//
// Errors:
//   - core.ErrInvalidInput — malformed instance.
//   - ErrBadSchedule       — inconsistent schedule.
//   - ctx.Err()            — cancelled between episodes.
func Train(ctx context.Context, agent *Agent, items []core.Item, capacity int, sched Schedule) ([]Point, error) {
	if err := core.Validate(items, capacity); err != nil {
		return nil, err
	}
	if err := sched.Validate(); err != nil {
		return nil, err
	}

	points := make([]Point, 0, sched.Episodes)
	window := make([]float64, sched.Window) // ring buffer of recent rewards
	var sum float64
	eps := sched.EpsilonStart

	for ep := 0; ep < sched.Episodes; ep++ {
		if err := ctx.Err(); err != nil {
			return points, err
		}

		reward := agent.RunEpisode(items, capacity, eps)

		slot := ep % sched.Window
		sum += reward - window[slot]
		window[slot] = reward
		filled := ep + 1
		if filled > sched.Window {
			filled = sched.Window
		}

		points = append(points, Point{
			Episode:       ep + 1,
			Reward:        reward,
			AverageReward: sum / float64(filled),
			Epsilon:       eps,
		})

		eps *= sched.EpsilonDecay
		if eps < sched.EpsilonMin {
			eps = sched.EpsilonMin
		}
	}

	return points, nil
}
