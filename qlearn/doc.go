// Package qlearn trains a tabular Q-learning agent on a grid.Map and
// extracts a route by following the learned greedy policy.
//
// What
//
//   - Trainer runs Episodes simulated walks from start. Each step picks an
//     action ε-greedily, scores the move with a shaped reward and applies
//     the temporal-difference update
//
//     Q(s,a) ← (1−α)·Q(s,a) + α·(r + γ·max_a' Q(s',a'))
//
//   - After training, GreedyPath follows argmax Q from start until it
//     reaches goal, revisits a cell, or would step into a wall.
//   - Search bundles both into a search.Trace.
//
// Reward shaping (additive where noted)
//
//	wall or edge (agent stays)    −20
//	goal                          +100, plus 100·R·C / (steps+1)
//	cell new this episode         +2
//	cell already seen (loop)      −20
//	closer to goal                +3 (added)
//	farther from goal             −3 (added)
//	dead end                      −30 (added)
//	oscillation                   −30 (added; state seen >2× in last 6)
//
// Exploration
//
//	ε starts at Epsilon (1.0), is multiplied by EpsilonDecay (0.99) after
//	every episode and never drops below MinEpsilon (0.05).
//
// Progress
//
//	OnProgress, if set, is called with no arguments after episode e when
//	e > 0 and e % ProgressEvery == 0. It observes only; the table, ε and the
//	random stream are unaffected by it.
//
// Concurrency
//
//	A Trainer is single-goroutine. The grid.Map may be shared.
package qlearn
