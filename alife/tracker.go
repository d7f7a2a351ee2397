package alife

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/heursearch/heuristic"
	"github.com/katalvlaran/heursearch/search"
)

// ExpansionTracker is one organism's ledger: a snapshot of its solved
// cycle plus the budget arithmetic that paces it through simulated
// time.
//
// Invariants maintained across operations:
//
//   - TotalExpansions only grows, by exactly the amounts passed to
//     Reduce;
//   - CurrentProblemExpansions ∈ [0, expansions[problemIndex]];
//   - smaller CurrentProblemExpansions means higher queue priority.
type ExpansionTracker struct {
	expansions []int // per-problem expansion counts, len L
	traversals []int
	pathLens   []int

	problemIndex             int
	currentProblemExpansions int
	totalExpansions          int
	bound                    int
	mutationInterval         int
	canMutate                bool

	heur *heuristic.Heuristic
	id   int // assigned by the simulator; breaks priority ties
}

// NewTracker snapshots a fully solved cycle for one organism.
// results must cover the whole cycle in problem order.
func NewTracker(results []search.ProblemResult, bound, mutationInterval int, h *heuristic.Heuristic) (*ExpansionTracker, error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if len(results) == 0 {
		return nil, ErrEmptyResults
	}
	if mutationInterval <= 0 {
		return nil, ErrBadMutationInterval
	}

	t := &ExpansionTracker{
		expansions:       make([]int, len(results)),
		traversals:       make([]int, len(results)),
		pathLens:         make([]int, len(results)),
		bound:            bound,
		mutationInterval: mutationInterval,
		heur:             h,
	}
	for i := range results {
		t.expansions[i] = len(results[i].Expansions)
		t.traversals[i] = results[i].NumTraversals
		t.pathLens[i] = len(results[i].SolutionPath)
	}
	t.currentProblemExpansions = t.expansions[0]

	return t, nil
}

// CurrentProblemExpansions returns the expansions left in the current
// problem — the queue priority (smaller is sooner).
func (t *ExpansionTracker) CurrentProblemExpansions() int {
	return t.currentProblemExpansions
}

// Reduce spends k expansions of the organism's budget against its
// current problem.
func (t *ExpansionTracker) Reduce(k int) {
	t.currentProblemExpansions -= k
	t.totalExpansions += k
}

// NextProblem advances to the next cycle problem (wrapping at the
// end) and re-arms the mutation gate every mutationInterval problems.
func (t *ExpansionTracker) NextProblem() {
	t.problemIndex = (t.problemIndex + 1) % len(t.expansions)
	if t.problemIndex%t.mutationInterval == 0 {
		t.canMutate = true
	}
	t.currentProblemExpansions = t.expansions[t.problemIndex]
}

// ConsumeMutation returns whether a mutation is due and clears the
// gate, so each opportunity is spent at most once.
func (t *ExpansionTracker) ConsumeMutation() bool {
	if t.canMutate {
		t.canMutate = false

		return true
	}

	return false
}

// Expired reports whether the organism has spent its lifetime budget.
func (t *ExpansionTracker) Expired() bool {
	return t.totalExpansions >= t.bound
}

// TotalExpansions returns the budget spent so far.
func (t *ExpansionTracker) TotalExpansions() int { return t.totalExpansions }

// Heuristic returns the organism's expression.
func (t *ExpansionTracker) Heuristic() *heuristic.Heuristic { return t.heur }

// Score is the organism's quality: mean expansions per cycle problem,
// smaller is better.
func (t *ExpansionTracker) Score() float64 {
	total := 0
	for _, e := range t.expansions {
		total += e
	}

	return float64(total) / float64(len(t.expansions))
}

// Result freezes the organism into its immutable record.
func (t *ExpansionTracker) Result() HeuristicResult {
	return HeuristicResult{
		Heuristic:        t.heur.String(),
		Expansions:       joinCounts(t.expansions),
		Traversals:       joinCounts(t.traversals),
		SolutionPathLens: joinCounts(t.pathLens),
		Creation:         uint64(t.heur.CreatedAt().UnixMilli()),
		Score:            t.Score(),
	}
}

// joinCounts renders per-problem counts as a comma-joined list.
func joinCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}

	return strings.Join(parts, ",")
}
