// Package qlearn learns the 0/1 knapsack decision sequence with tabular
// Q-learning.
//
// 🚀 The decision process
//
//	Items are visited in the caller's order. At step i the state is
//	(i, remaining capacity) and the agent either skips (0) or takes (1)
//	the item. Taking yields the item's value; skipping yields nothing.
//	A take that does not fit is never chosen; the policy masks it.
//
// ✨ Key features:
//   - explicit QTable with lazy [0,0] materialisation (Get) and pure reads (Peek)
//   - epsilon-greedy episodes with a deterministic, seedable RNG
//   - DecisionDetails to inspect the learned policy without training
//   - Train: decaying-epsilon loop with rolling average reward
//   - Policy: greedy rollout of the learned table as a core.Solution
//
// ⚙️ Usage:
//
//	agent, _ := qlearn.NewAgent(qlearn.WithSeed(42))
//	points, err := qlearn.Train(ctx, agent, items, capacity, qlearn.DefaultSchedule())
//	d := agent.DecisionDetails(0, capacity)
//	fmt.Println(d.QSkip, d.QTake, d.BestAction)
//
// Concurrency:
//
//	An Agent owns its table and RNG and is not safe for concurrent use.
//	Separate agents share nothing and can be trained in parallel.
package qlearn
