package qlearn

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Reward shaping constants.
const (
	wallPenalty        = -20.0
	goalReward         = 100.0
	newCellReward      = 2.0
	loopPenalty        = -20.0
	closerReward       = 3.0
	fartherPenalty     = -3.0
	deadEndPenalty     = -30.0
	oscillationWindow  = 6
	oscillationLimit   = 2
	oscillationPenalty = -30.0
	shortPathBonus     = 100.0
)

// Trainer learns a QTable for one (map, start, goal) triple.
type Trainer struct {
	g     *grid.Map
	start grid.Cell
	goal  grid.Cell
	cfg   Config
	rng   *rand.Rand
	log   *slog.Logger

	q       map[grid.Cell]*Values
	epsilon float64
	steps   []grid.Cell
}

// episode is the per-episode memory consulted by the reward.
type episode struct {
	visited map[grid.Cell]bool
	recent  []grid.Cell
}

// NewTrainer prepares a Trainer. Invalid options panic with ErrBadConfig.
func NewTrainer(g *grid.Map, start, goal grid.Cell, opts ...Option) *Trainer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = search.RandFromSeed(cfg.Seed)
	}

	return &Trainer{
		g:     g,
		start: start,
		goal:  goal,
		cfg:   cfg,
		rng:   rng,
		log:   cfg.Logger.With(slog.String("component", "qlearn")),
	}
}

// Config returns the effective configuration.
func (t *Trainer) Config() Config { return t.cfg }

// Epsilon returns the current exploration rate.
func (t *Trainer) Epsilon() float64 { return t.epsilon }

// Train resets the table to zero and runs every episode. It returns the
// exploration trace: start, then the state after every step of every
// episode. A start that is not open yields an empty trace.
func (t *Trainer) Train() []grid.Cell {
	t.reset()
	if !t.g.IsOpen(t.start) {
		return t.steps
	}
	t.steps = append(t.steps, t.start)

	for ep := 0; ep < t.cfg.Episodes; ep++ {
		t.runEpisode()
		if t.epsilon > t.cfg.MinEpsilon {
			t.epsilon = max(t.cfg.MinEpsilon, t.epsilon*t.cfg.EpsilonDecay)
		}
		if ep > 0 && ep%t.cfg.ProgressEvery == 0 {
			t.log.Debug("training progress",
				slog.Int("episode", ep),
				slog.Float64("epsilon", t.epsilon),
				slog.Int("steps", len(t.steps)))
			if t.cfg.OnProgress != nil {
				t.cfg.OnProgress()
			}
		}
	}

	t.log.Info("training complete",
		slog.Int("episodes", t.cfg.Episodes),
		slog.Int("steps", len(t.steps)),
		slog.Float64("epsilon", t.epsilon))
	return t.steps
}

func (t *Trainer) reset() {
	t.q = make(map[grid.Cell]*Values, t.g.Size())
	for r := 0; r < t.g.Rows(); r++ {
		for c := 0; c < t.g.Cols(); c++ {
			if cell := grid.At(r, c); t.g.IsOpen(cell) {
				t.q[cell] = new(Values)
			}
		}
	}
	t.epsilon = t.cfg.Epsilon
	t.steps = nil
}

// runEpisode walks from start until goal or MaxStepsPerEpisode.
func (t *Trainer) runEpisode() {
	state := t.start
	ep := &episode{
		visited: map[grid.Cell]bool{state: true},
		recent:  make([]grid.Cell, 0, oscillationWindow+1),
	}
	for step := 0; step < t.cfg.MaxStepsPerEpisode; step++ {
		a := t.selectAction(state)
		next, reward := t.transition(state, a, ep, step)

		q := t.q[state]
		q[a] = (1-t.cfg.LearningRate)*q[a] +
			t.cfg.LearningRate*(reward+t.cfg.Discount*t.q[next].Max())

		state = next
		t.steps = append(t.steps, state)
		ep.visited[state] = true
		if state == t.goal {
			break
		}
	}
}

// selectAction is ε-greedy over the current table.
func (t *Trainer) selectAction(state grid.Cell) Action {
	if t.rng.Float64() < t.epsilon {
		return Action(t.rng.Intn(NumActions))
	}
	return t.q[state].Best()
}

// transition applies a at state and returns the resulting state and its
// shaped reward. step is the zero-based index within the episode.
func (t *Trainer) transition(state grid.Cell, a Action, ep *episode, step int) (grid.Cell, float64) {
	next := state.Add(a.Delta())
	var reward float64
	switch {
	case !t.g.IsOpen(next):
		reward = wallPenalty
		next = state
	case next == t.goal:
		reward = goalReward
	case !ep.visited[next]:
		reward = newCellReward
	default:
		reward = loopPenalty
	}

	prevDist, newDist := grid.Manhattan(state, t.goal), grid.Manhattan(next, t.goal)
	switch {
	case newDist < prevDist:
		reward += closerReward
	case newDist > prevDist:
		reward += fartherPenalty
	}

	if next != t.goal && t.isDeadEnd(next, state) {
		reward += deadEndPenalty
	}

	ep.recent = append(ep.recent, state)
	if len(ep.recent) > oscillationWindow {
		ep.recent = ep.recent[1:]
	}
	if count(ep.recent, state) > oscillationLimit {
		reward += oscillationPenalty
	}

	if next == t.goal {
		reward += shortPathBonus * float64(t.g.Size()) / float64(step+1)
	}
	return next, reward
}

// isDeadEnd reports whether cell has no open neighbor other than from.
func (t *Trainer) isDeadEnd(cell, from grid.Cell) bool {
	for n := range t.g.OpenNeighbors(cell) {
		if n != from {
			return false
		}
	}
	return true
}

func count(cells []grid.Cell, c grid.Cell) int {
	n := 0
	for _, x := range cells {
		if x == c {
			n++
		}
	}
	return n
}

// GreedyPath follows the best action from start for at most R×C moves,
// stopping on a revisit, a wall or the grid edge. It returns nil unless the
// walk ends on goal. Call after Train.
func (t *Trainer) GreedyPath() []grid.Cell {
	if t.q == nil || !t.g.IsOpen(t.start) {
		return nil
	}
	cur := t.start
	path := []grid.Cell{cur}
	visited := map[grid.Cell]bool{cur: true}
	for i := 0; i < t.g.Size() && cur != t.goal; i++ {
		next := cur.Add(t.q[cur].Best().Delta())
		if !t.g.IsOpen(next) || visited[next] {
			break
		}
		cur = next
		path = append(path, cur)
		visited[cur] = true
	}
	if cur != t.goal {
		return nil
	}
	return path
}

// Table returns a copy of the learned values, one entry per open cell.
func (t *Trainer) Table() QTable {
	out := make(QTable, len(t.q))
	for c, v := range t.q {
		out[c] = *v
	}
	return out
}

// Search trains a fresh Trainer and packs its exploration trace and greedy
// path into a search.Trace.
func Search(g *grid.Map, start, goal grid.Cell, opts ...Option) search.Trace {
	t := NewTrainer(g, start, goal, opts...)
	steps := t.Train()
	return search.Trace{Steps: steps, Path: t.GreedyPath()}
}
