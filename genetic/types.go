// Package genetic — configuration options, limits and result types of
// the generational evolution loop.
package genetic

import (
	"errors"
	"time"

	"github.com/katalvlaran/heursearch/heuristic"
)

// Sentinel errors for algorithm construction.
var (
	// ErrNilMap indicates a nil *grid.Map.
	ErrNilMap = errors.New("genetic: map is nil")

	// ErrNilCycle indicates a nil problem cycle.
	ErrNilCycle = errors.New("genetic: problem cycle is nil")

	// ErrBadPopulationSize indicates a population size outside
	// [2, MaxPopulationSize].
	ErrBadPopulationSize = errors.New("genetic: population size out of range")

	// ErrBadTimeLimit indicates a non-positive time limit.
	ErrBadTimeLimit = errors.New("genetic: time limit must be positive")

	// ErrBaselineUnsolved indicates the Manhattan baseline failed on
	// the cycle — impossible on a trimmed map, so a corrupted input.
	ErrBaselineUnsolved = errors.New("genetic: baseline could not solve the cycle")
)

// Population and archive limits.
const (
	// MaxPopulationSize caps the per-generation population.
	MaxPopulationSize = 40

	// MaxBestIndividuals caps the best-of-run archive.
	MaxBestIndividuals = 10

	// sizePenaltyOffset is the additive constant of the tree-size
	// fitness factor: (sizePenaltyOffset + size).
	sizePenaltyOffset = 200

	// maxInitialSize bounds the node count of generation-zero trees;
	// seeding with small trees leaves room for mutation to grow them.
	maxInitialSize = 7
)

// GenerationEntry is one individual's snapshot in the run history.
type GenerationEntry struct {
	// Heuristic is the canonical printed expression.
	Heuristic string

	// Fitness is the individual's score (smaller is better).
	Fitness float64

	// ElapsedMillis is the wall-clock run time when the generation was
	// recorded.
	ElapsedMillis uint64
}

// Result is the outcome of one evolution run.
type Result struct {
	// BestHeuristics holds the archive expressions, fitness ascending.
	BestHeuristics []string

	// BestFitnesses holds the matching scores.
	BestFitnesses []float64

	// History[g][i] is the i-th individual of generation g.
	History [][]GenerationEntry
}

// Options configures a run. Build with DefaultOptions and the With*
// functional options.
type Options struct {
	// Seed drives the run's RNG stream; 0 selects the fixed default
	// seed (see heuristic.RNGFromSeed).
	Seed int64

	// TimeLimit is the wall-clock budget; the loop stops at the first
	// generation boundary past it.
	TimeLimit time.Duration

	// PopulationSize is the fixed per-generation population.
	PopulationSize int

	// MaxGenerations, if > 0, additionally caps the generation count —
	// the knob that makes two runs bit-identical regardless of machine
	// speed. 0 leaves the wall clock as the only terminator.
	MaxGenerations int

	// Probs biases random generation and mutation; nil means uniform.
	Probs *heuristic.TermProbabilities

	// OnGeneration, if set, is invoked after each generation with its
	// index and the best fitness seen so far.
	OnGeneration func(generation int, bestFitness float64)
}

// Option is a functional option for Options.
type Option func(*Options)

// WithSeed fixes the RNG seed for a reproducible run.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTimeLimit sets the wall-clock budget. Must be positive;
// violations surface as ErrBadTimeLimit at construction.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithPopulationSize sets the per-generation population size, capped
// by MaxPopulationSize.
func WithPopulationSize(p int) Option {
	return func(o *Options) { o.PopulationSize = p }
}

// WithMaxGenerations caps the generation count in addition to the
// time limit; 0 disables the cap.
func WithMaxGenerations(n int) Option {
	return func(o *Options) { o.MaxGenerations = n }
}

// WithTermProbabilities biases generation and mutation.
func WithTermProbabilities(tp *heuristic.TermProbabilities) Option {
	return func(o *Options) { o.Probs = tp }
}

// WithGenerationHook registers a per-generation progress callback.
func WithGenerationHook(fn func(generation int, bestFitness float64)) Option {
	return func(o *Options) { o.OnGeneration = fn }
}

// DefaultOptions returns the baseline configuration: default seed, a
// 30s budget and a full-size population with uniform operator
// probabilities.
func DefaultOptions() Options {
	return Options{
		Seed:           0,
		TimeLimit:      30 * time.Second,
		PopulationSize: MaxPopulationSize,
	}
}
