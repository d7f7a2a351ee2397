// Package search implements the inner loop of heuristic evolution:
// best-first search (A*) over a 4-connected uniform-cost grid.
//
// The solver is a lazy A* without decrease-key: improved paths push a
// duplicate open-list entry, and a popped entry whose g no longer
// matches the recorded distance is stale and skipped. This is the same
// "push duplicates, skip on pop" pattern the Dijkstra literature uses
// to avoid heap surgery; the g-mismatch check is the correctness guard.
//
// Heuristic values come from an executor callback and may be negative
// or inadmissible — the search still terminates because edge costs are
// positive and the closed-set check prevents re-expansion. NaN values
// never reach the open list (the executor returns +Inf instead).
//
// Ordering is total: open entries compare by f, then g, then cell
// index, so min-extraction is deterministic under ties.
//
// A ProblemResult reports everything the evolutionary layers score:
// the chronological expansion sequence (goal pop included), the count
// of improving edge relaxations, and the goal→start solution path.
//
// Complexity: O((V + E) log V) time, O(V + E) memory per problem.
package search
