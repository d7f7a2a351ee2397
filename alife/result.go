package alife

// HeuristicResult is the immutable record of one simulated organism.
type HeuristicResult struct {
	// Heuristic is the canonical printed expression.
	Heuristic string

	// Expansions, Traversals and SolutionPathLens are comma-joined
	// per-problem counts over the cycle, in problem order.
	Expansions       string
	Traversals       string
	SolutionPathLens string

	// Creation is the expression's construction time, ms since epoch.
	Creation uint64

	// Score is the mean expansions per cycle problem; smaller is
	// better.
	Score float64
}

// WorseThan reports whether hr scored strictly worse than other.
// Equal scores are not worse — the earlier record keeps its rank.
func (hr HeuristicResult) WorseThan(other HeuristicResult) bool {
	return hr.Score > other.Score
}

// SimulationResult is the outcome of one simulation run.
type SimulationResult struct {
	// Heuristics records every organism ever simulated, in creation
	// order.
	Heuristics []HeuristicResult

	// Best is the record with the smallest score; first-seen wins ties.
	Best HeuristicResult
}
