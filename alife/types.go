// Package alife — configuration, defaults and sentinel errors of the
// expansion-budgeted simulator.
package alife

import (
	"errors"
	"time"

	"github.com/katalvlaran/heursearch/heuristic"
)

// Sentinel errors for simulator and tracker construction.
var (
	// ErrNilMap indicates a nil *grid.Map.
	ErrNilMap = errors.New("alife: map is nil")

	// ErrNilCycle indicates a nil problem cycle.
	ErrNilCycle = errors.New("alife: problem cycle is nil")

	// ErrNilHeuristic indicates a nil heuristic for a tracker.
	ErrNilHeuristic = errors.New("alife: heuristic is nil")

	// ErrEmptyResults indicates a tracker built from zero problem
	// results.
	ErrEmptyResults = errors.New("alife: tracker needs at least one problem result")

	// ErrBadTimeLimit indicates a non-positive time limit.
	ErrBadTimeLimit = errors.New("alife: time limit must be positive")

	// ErrBadPopulation indicates a non-positive initial population.
	ErrBadPopulation = errors.New("alife: initial population must be positive")

	// ErrBadMutationInterval indicates a non-positive mutation interval.
	ErrBadMutationInterval = errors.New("alife: mutation interval must be positive")

	// ErrBaselineUnsolved indicates the Manhattan baseline failed on
	// the cycle — impossible on a trimmed map, so a corrupted input.
	ErrBaselineUnsolved = errors.New("alife: baseline could not solve the cycle")
)

// Defaults and budget policy.
const (
	// DefaultInitialPopulation is the organism count seeded at start.
	DefaultInitialPopulation = 25

	// DefaultMutationInterval is the number of cycle problems between
	// mutation opportunities for any one organism.
	DefaultMutationInterval = 5

	// ExpansionBoundMultiplier scales the Manhattan baseline's total
	// cycle expansions into the default per-organism budget.
	ExpansionBoundMultiplier = 5
)

// Options configures a simulation run. Build with DefaultOptions and
// the With* functional options.
type Options struct {
	// Seed drives the run's RNG stream; 0 selects the fixed default
	// seed (see heuristic.RNGFromSeed).
	Seed int64

	// TimeLimit is the wall-clock budget of the whole run.
	TimeLimit time.Duration

	// ExpansionBound is the per-organism lifetime budget; 0 derives
	// ExpansionBoundMultiplier× the baseline's total expansions.
	ExpansionBound int

	// InitialPopulation is the number of random organisms at start.
	InitialPopulation int

	// MutationInterval is the number of cycle problems between
	// mutation opportunities.
	MutationInterval int

	// Probs biases random generation and mutation; nil means uniform.
	Probs *heuristic.TermProbabilities

	// OnStep, if set, is invoked after each simulation step with the
	// step index and the number of organisms still alive.
	OnStep func(step uint64, alive int)
}

// Option is a functional option for Options.
type Option func(*Options)

// WithSeed fixes the RNG seed for a reproducible run.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTimeLimit sets the wall-clock budget.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithExpansionBound overrides the derived per-organism budget.
func WithExpansionBound(bound int) Option {
	return func(o *Options) { o.ExpansionBound = bound }
}

// WithInitialPopulation sets the number of seed organisms.
func WithInitialPopulation(n int) Option {
	return func(o *Options) { o.InitialPopulation = n }
}

// WithMutationInterval sets the problems-per-mutation pace.
func WithMutationInterval(n int) Option {
	return func(o *Options) { o.MutationInterval = n }
}

// WithTermProbabilities biases generation and mutation.
func WithTermProbabilities(tp *heuristic.TermProbabilities) Option {
	return func(o *Options) { o.Probs = tp }
}

// WithStepHook registers a per-step progress callback.
func WithStepHook(fn func(step uint64, alive int)) Option {
	return func(o *Options) { o.OnStep = fn }
}

// DefaultOptions returns the baseline configuration: default seed, a
// 30s budget, derived expansion bound and default population pacing.
func DefaultOptions() Options {
	return Options{
		Seed:              0,
		TimeLimit:         30 * time.Second,
		InitialPopulation: DefaultInitialPopulation,
		MutationInterval:  DefaultMutationInterval,
	}
}
