// SPDX-License-Identifier: MIT

package rootfinder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/realroots/interval"
)

// Strategy tags a queue item with the splitting procedure applied to it.
type Strategy int

const (
	// Generic bisects at the midpoint.
	Generic Strategy = iota

	// BinarySample bisects at a simple rational in the middle half of the interval.
	BinarySample

	// BinaryNewton splits at a float Newton step from the midpoint.
	BinaryNewton

	// Grid cuts the interval into GridCells equal cells.
	Grid

	// EigenValue seeds intervals around eigenvalues of the companion matrix.
	EigenValue

	// Aberth seeds intervals around Aberth–Ehrlich approximations.
	Aberth

	numStrategies
)

// Default is the strategy used for the initial queue item.
const Default = EigenValue

var strategyNames = [numStrategies]string{
	Generic:      "generic",
	BinarySample: "binary-sample",
	BinaryNewton: "binary-newton",
	Grid:         "grid",
	EigenValue:   "eigenvalue",
	Aberth:       "aberth",
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool { return s >= 0 && s < numStrategies }

// String returns the lower-case name used by ParseStrategy.
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	out := make([]Strategy, numStrategies)
	for i := range out {
		out[i] = Strategy(i)
	}

	return out
}

// ParseStrategy maps a name ("grid", "Binary-Newton", "default") to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "default" {
		return Default, nil
	}
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// State is the lifecycle stage of a Finder.
//
// Seeded    – constructed, Next not called yet.
// Draining  – work has started and roots or queue items remain.
// Exhausted – the last root has been returned and the queue is empty; Next returns Done.
type State int

const (
	Seeded State = iota
	Draining
	Exhausted
)

func (s State) String() string {
	switch s {
	case Seeded:
		return "seeded"
	case Draining:
		return "draining"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Default tuning values.
const (
	DefaultStepBudget = 1 << 16
	DefaultGridCells  = 8
)

// Options configures a Finder.
//
// Interval      – search region; unbounded sides are resolved with the Cauchy bound.
// Strategy      – strategy of the initial queue item.
// TrivialSolver – solve degree ≤ 2 analytically instead of queueing.
// Deflation     – divide the working polynomial by (x - r) for each exact root r.
// StepBudget    – maximum queue items processed per Next call. Must be > 0.
// GridCells     – number of cells used by the Grid strategy. Must be ≥ 2.
// Logger        – debug logger; nil means zap.NewNop().
type Options struct {
	Interval      interval.Interval
	Strategy      Strategy
	TrivialSolver bool
	Deflation     bool
	StepBudget    int
	GridCells     int
	Logger        *zap.Logger
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// WithInterval restricts the search to iv.
func WithInterval(iv interval.Interval) Option {
	return func(o *Options) {
		o.Interval = iv
	}
}

// WithStrategy selects the strategy of the initial queue item.
// Panics on a value outside the enumeration.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.Valid() {
			panic(ErrUnknownStrategy.Error())
		}
		o.Strategy = s
	}
}

// WithTrivialSolver toggles the closed-form solver for degree ≤ 2.
func WithTrivialSolver(on bool) Option {
	return func(o *Options) {
		o.TrivialSolver = on
	}
}

// WithDeflation toggles division of the working polynomial by exact roots.
func WithDeflation(on bool) Option {
	return func(o *Options) {
		o.Deflation = on
	}
}

// WithStepBudget caps the queue items processed per Next call.
// Panics if n <= 0.
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("rootfinder: StepBudget must be positive")
		}
		o.StepBudget = n
	}
}

// WithGridCells sets the cell count of the Grid strategy.
// Panics if n < 2.
func WithGridCells(n int) Option {
	return func(o *Options) {
		if n < 2 {
			panic("rootfinder: GridCells must be at least 2")
		}
		o.GridCells = n
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults:
//   - Interval:      (-inf, +inf)
//   - Strategy:      Default
//   - TrivialSolver: true
//   - Deflation:     true
//   - StepBudget:    DefaultStepBudget
//   - GridCells:     DefaultGridCells
//   - Logger:        no-op
func DefaultOptions() Options {
	return Options{
		Interval:      interval.Unbounded(),
		Strategy:      Default,
		TrivialSolver: true,
		Deflation:     true,
		StepBudget:    DefaultStepBudget,
		GridCells:     DefaultGridCells,
		Logger:        zap.NewNop(),
	}
}

// Stats counts the work a Finder has done so far.
type Stats struct {
	Processed  int // queue items popped
	Certified  int // intervals certified as isolating
	Exact      int // exact rational roots found
	Deflations int // divisions of the working polynomial
	Fallbacks  int // numerical seeds rejected in favour of bisection
}
