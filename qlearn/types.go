package qlearn

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrBadConfig is wrapped by the panic value of an invalid Option argument.
var ErrBadConfig = errors.New("qlearn: invalid configuration")

// Action is one of the four unit moves.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight

	// NumActions is the size of the action space.
	NumActions = 4
)

var actionNames = [NumActions]string{"up", "down", "left", "right"}

// String returns the lower-case action name.
func (a Action) String() string {
	if a < 0 || int(a) >= NumActions {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Delta returns the cell offset of a, matching grid.Offsets order.
func (a Action) Delta() grid.Cell {
	return grid.Offsets()[a]
}

// Values holds one estimate per action, indexed by Action.
type Values [NumActions]float64

// Best returns the action with the highest value; ties go to the lowest
// Action (up before down before left before right).
func (v Values) Best() Action {
	best := ActionUp
	for a := ActionDown; a < NumActions; a++ {
		if v[a] > v[best] {
			best = a
		}
	}
	return best
}

// Max returns the highest action value.
func (v Values) Max() float64 {
	return v[v.Best()]
}

// QTable maps every open cell to its action values.
type QTable map[grid.Cell]Values

// Config holds the trainer hyperparameters.
type Config struct {
	Episodes           int     // training episodes
	LearningRate       float64 // α in (0,1]
	Discount           float64 // γ in [0,1]
	Epsilon            float64 // initial exploration rate in [0,1]
	MinEpsilon         float64 // exploration floor in [0,1]
	EpsilonDecay       float64 // per-episode multiplier in (0,1]
	MaxStepsPerEpisode int     // step cap per episode
	ProgressEvery      int     // OnProgress interval in episodes (≥1)

	// Seed feeds the default random source; 0 means a fixed default seed.
	Seed int64
	// Rand overrides Seed when non-nil. Not goroutine-safe.
	Rand *rand.Rand

	// OnProgress is the advisory progress observer; nil disables it.
	OnProgress func()
	// Logger receives Debug progress records and an Info summary.
	Logger *slog.Logger
}

// Option configures a Trainer.
type Option func(*Config)

// DefaultConfig returns the stock hyperparameters:
// 5000 episodes, α=0.1, γ=0.95, ε=1.0 decaying by 0.99 to 0.05,
// 400 steps per episode, progress every 1000 episodes, silent logger.
func DefaultConfig() Config {
	return Config{
		Episodes:           5000,
		LearningRate:       0.1,
		Discount:           0.95,
		Epsilon:            1.0,
		MinEpsilon:         0.05,
		EpsilonDecay:       0.99,
		MaxStepsPerEpisode: 400,
		ProgressEvery:      1000,
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func badConfig(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrBadConfig, fmt.Sprintf(format, args...)))
}

// WithEpisodes sets the number of training episodes (n ≥ 0).
func WithEpisodes(n int) Option {
	return func(c *Config) {
		if n < 0 {
			badConfig("episodes cannot be negative (%d)", n)
		}
		c.Episodes = n
	}
}

// WithLearningRate sets α (0 < alpha ≤ 1).
func WithLearningRate(alpha float64) Option {
	return func(c *Config) {
		if alpha <= 0 || alpha > 1 {
			badConfig("learning rate must be in (0,1] (%g)", alpha)
		}
		c.LearningRate = alpha
	}
}

// WithDiscount sets γ (0 ≤ gamma ≤ 1).
func WithDiscount(gamma float64) Option {
	return func(c *Config) {
		if gamma < 0 || gamma > 1 {
			badConfig("discount must be in [0,1] (%g)", gamma)
		}
		c.Discount = gamma
	}
}

// WithEpsilon sets the initial exploration rate (0 ≤ eps ≤ 1).
func WithEpsilon(eps float64) Option {
	return func(c *Config) {
		if eps < 0 || eps > 1 {
			badConfig("epsilon must be in [0,1] (%g)", eps)
		}
		c.Epsilon = eps
	}
}

// WithMinEpsilon sets the exploration floor (0 ≤ eps ≤ 1).
func WithMinEpsilon(eps float64) Option {
	return func(c *Config) {
		if eps < 0 || eps > 1 {
			badConfig("min epsilon must be in [0,1] (%g)", eps)
		}
		c.MinEpsilon = eps
	}
}

// WithEpsilonDecay sets the per-episode decay factor (0 < d ≤ 1).
func WithEpsilonDecay(d float64) Option {
	return func(c *Config) {
		if d <= 0 || d > 1 {
			badConfig("epsilon decay must be in (0,1] (%g)", d)
		}
		c.EpsilonDecay = d
	}
}

// WithMaxStepsPerEpisode caps the steps of one episode (n ≥ 0).
func WithMaxStepsPerEpisode(n int) Option {
	return func(c *Config) {
		if n < 0 {
			badConfig("max steps per episode cannot be negative (%d)", n)
		}
		c.MaxStepsPerEpisode = n
	}
}

// WithSeed seeds the default random source (0 ⇒ fixed default).
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithRand supplies the random source directly. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(c *Config) {
		if rng != nil {
			c.Rand = rng
		}
	}
}

// WithProgress installs fn as the progress observer, called every
// ProgressEvery episodes.
func WithProgress(fn func()) Option {
	return func(c *Config) {
		c.OnProgress = fn
	}
}

// WithProgressEvery changes the progress interval (n ≥ 1).
func WithProgressEvery(n int) Option {
	return func(c *Config) {
		if n < 1 {
			badConfig("progress interval must be positive (%d)", n)
		}
		c.ProgressEvery = n
	}
}

// WithLogger routes trainer logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
