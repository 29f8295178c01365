package search

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors.
var (
	// ErrOptionViolation is wrapped by the panic value of an invalid Option argument.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrPathEndpoints indicates a path that does not run from start to goal.
	ErrPathEndpoints = errors.New("search: path does not connect start to goal")

	// ErrPathDiscontinuous indicates two consecutive path cells are not neighbors.
	ErrPathDiscontinuous = errors.New("search: path cells are not adjacent")

	// ErrPathBlocked indicates a path cell that is blocked or out of bounds.
	ErrPathBlocked = errors.New("search: path crosses a blocked cell")
)

// Trace is the outcome of one strategy invocation.
//   - Steps: cells in exploration order.
//   - Path:  start→goal inclusive, or nil when no path was found.
type Trace struct {
	Steps []grid.Cell
	Path  []grid.Cell
}

// Found reports whether the trace carries a path.
func (t Trace) Found() bool { return len(t.Path) > 0 }

// NodesVisited is the number of recorded exploration steps.
func (t Trace) NodesVisited() int { return len(t.Steps) }

// PathLength is the number of cells on the path, 0 when absent.
func (t Trace) PathLength() int { return len(t.Path) }

// Stats summarizes a trace the way a results panel shows it.
type Stats struct {
	NodesVisited int
	PathLength   int
	Found        bool
}

// Stats returns the aggregate statistics of t.
func (t Trace) Stats() Stats {
	return Stats{NodesVisited: t.NodesVisited(), PathLength: t.PathLength(), Found: t.Found()}
}

// String renders "nodes_visited=N path_length=M", with M = N/A when no path.
func (s Stats) String() string {
	pl := "N/A"
	if s.Found {
		pl = strconv.Itoa(s.PathLength)
	}
	return fmt.Sprintf("nodes_visited=%d path_length=%s", s.NodesVisited, pl)
}

// Validate checks the path invariant: Path[0]==start, Path[last]==goal,
// every cell open, consecutive cells orthogonally adjacent.
// A trace without a path is valid.
func (t Trace) Validate(g *grid.Map, start, goal grid.Cell) error {
	if len(t.Path) == 0 {
		return nil
	}
	if t.Path[0] != start || t.Path[len(t.Path)-1] != goal {
		return fmt.Errorf("%w: got %v→%v, want %v→%v",
			ErrPathEndpoints, t.Path[0], t.Path[len(t.Path)-1], start, goal)
	}
	for i, c := range t.Path {
		if !g.IsOpen(c) {
			return fmt.Errorf("%w: %v at index %d", ErrPathBlocked, c, i)
		}
		if i > 0 && !grid.Adjacent(t.Path[i-1], c) {
			return fmt.Errorf("%w: %v→%v at index %d", ErrPathDiscontinuous, t.Path[i-1], c, i)
		}
	}
	return nil
}

// Option configures strategy behavior via functional arguments.
type Option func(*Options)

// Options holds the strategy-specific parameters. Each strategy reads only
// the fields it understands.
type Options struct {
	// BeamWidth is the number of frontier cells kept per layer by Beam.
	BeamWidth int

	// DepthLimit bounds DepthLimited recursion.
	DepthLimit int

	// MaxSteps bounds RandomWalk moves.
	MaxSteps int

	// Rand drives RandomWalk; nil means a stream seeded with defaultSeed.
	Rand *rand.Rand

	// ReconstructPath asks trace-only strategies to rebuild a path from
	// their parent links.
	ReconstructPath bool
}

// Default parameter values.
const (
	DefaultBeamWidth  = 3
	DefaultDepthLimit = 20
	DefaultMaxSteps   = 1000
)

// DefaultOptions returns Options with BeamWidth=3, DepthLimit=20,
// MaxSteps=1000, no explicit RNG and no path reconstruction.
func DefaultOptions() Options {
	return Options{
		BeamWidth:  DefaultBeamWidth,
		DepthLimit: DefaultDepthLimit,
		MaxSteps:   DefaultMaxSteps,
	}
}

// WithBeamWidth sets the beam width; w must be ≥ 1.
func WithBeamWidth(w int) Option {
	return func(o *Options) {
		if w < 1 {
			panic(fmt.Errorf("%w: beam width must be positive (%d)", ErrOptionViolation, w))
		}
		o.BeamWidth = w
	}
}

// WithDepthLimit sets the depth-limited DFS bound; limit must be ≥ 0.
func WithDepthLimit(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, limit))
		}
		o.DepthLimit = limit
	}
}

// WithMaxSteps sets the random walk step budget; n must be ≥ 0.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(fmt.Errorf("%w: max steps cannot be negative (%d)", ErrOptionViolation, n))
		}
		o.MaxSteps = n
	}
}

// WithRand supplies the random source for RandomWalk. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))), with seed==0
// mapped to the package default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = RandFromSeed(seed)
	}
}

// WithPath enables path reconstruction for strategies that otherwise
// return only their exploration trace.
func WithPath() Option {
	return func(o *Options) {
		o.ReconstructPath = true
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
