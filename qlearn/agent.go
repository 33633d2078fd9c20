package qlearn

import (
	"math/rand"

	"github.com/katalvlaran/knapsack/core"
)

// Agent is a tabular Q-learning agent for the knapsack decision process.
//
// The table persists across episodes; build a new Agent to start over.
type Agent struct {
	alpha float64
	gamma float64
	rng   *rand.Rand
	q     *QTable
}

// NewAgent builds an agent with an empty table.
//
// Errors:
//   - ErrOptionViolation — alpha outside (0,1] or gamma outside [0,1].
func NewAgent(opts ...Option) (*Agent, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	return &Agent{
		alpha: cfg.Alpha,
		gamma: cfg.Gamma,
		rng:   rng,
		q:     NewQTable(),
	}, nil
}

// Alpha returns the learning rate.
func (a *Agent) Alpha() float64 { return a.alpha }

// Gamma returns the discount factor.
func (a *Agent) Gamma() float64 { return a.gamma }

// Table exposes the agent's Q-table for inspection.
func (a *Agent) Table() *QTable { return a.q }

// RunEpisode plays one pass over items and learns from it.
//
// For each item i with remaining capacity c:
//  1. With probability epsilon pick uniformly among feasible actions,
//     otherwise pick the greedy one (Take only if it fits and
//     Q(take) > Q(skip)).
//  2. reward = value if taken, else 0.
//  3. Q(s,a) ← (1−α)·Q(s,a) + α·(reward + γ·max Q(s')), where
//     s' = (i+1, c') and max Q(s') = 0 after the last item.
//
// epsilon is clamped to [0,1]. The return value is the total value packed.
// Every update is written before RunEpisode returns.
//
// Complexity: O(n) time, at most n new table entries.
func (a *Agent) RunEpisode(items []core.Item, capacity int, epsilon float64) float64 {
	eps := clamp01(epsilon)
	remaining := capacity
	var total float64

	for i, it := range items {
		s := State{Item: i, Remaining: remaining}
		q := a.q.Get(s)
		canTake := it.Weight <= remaining

		action := Skip
		if a.rng.Float64() < eps {
			if canTake && a.rng.Intn(2) == 1 {
				action = Take
			}
		} else if canTake {
			action = q.Best()
		}

		var reward float64
		next := remaining
		if action == Take {
			reward = it.Value
			next -= it.Weight
		}

		var future float64
		if i < len(items)-1 {
			future = a.q.Peek(State{Item: i + 1, Remaining: next}).Max()
		}
		q[action] = (1-a.alpha)*q[action] + a.alpha*(reward+a.gamma*future)

		total += reward
		remaining = next
	}

	return total
}

// DecisionDetails reports the learned values of (item, remaining) and the
// action the table prefers. Ties report Skip. The state is materialised if
// needed; no learning happens.
func (a *Agent) DecisionDetails(item, remaining int) Decision {
	q := a.q.Get(State{Item: item, Remaining: remaining})
	return Decision{
		QSkip:      q[Skip],
		QTake:      q[Take],
		BestAction: q.Best(),
	}
}

// Policy rolls out the learned greedy policy without exploring or learning
// and returns the packing as a Solution tagged core.MethodQLearning.
// Unseen states read as [0,0] and are not materialised.
func (a *Agent) Policy(items []core.Item, capacity int) core.Solution {
	selected := make([]core.Item, 0, len(items))
	remaining := capacity
	for i, it := range items {
		if it.Weight > remaining {
			continue
		}
		if a.q.Peek(State{Item: i, Remaining: remaining}).Best() == Take {
			selected = append(selected, it)
			remaining -= it.Weight
		}
	}
	return core.NewSolution(selected, capacity, core.MethodQLearning)
}

func clamp01(x float64) float64 {
	switch {
	case x < 0 || x != x:
		return 0
	case x > 1:
		return 1
	}
	return x
}
