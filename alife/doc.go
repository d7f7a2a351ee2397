// Package alife evolves heuristic expressions with an artificial-life
// simulation budgeted in A* node expansions rather than generations.
//
// Intuition: every candidate heuristic is an organism whose lifetime
// is measured in node expansions. Each organism carries an
// ExpansionTracker — a snapshot of how many expansions it needs per
// cycle problem — and all organisms pace their problem-solving in
// lock-step across simulated time:
//
//  1. the tracker closest to finishing its current problem (smallest
//     remaining expansions, k) is popped and advanced to its next
//     problem;
//  2. every other tracker spends k expansions of its own budget; any
//     that simultaneously reach zero advance in the same step;
//  3. every MutationInterval cycle problems an organism earns one
//     mutation: its heuristic is mutated, the child solves the full
//     cycle and joins the simulation as a new organism;
//  4. organisms whose cumulative expansions reach their budget die at
//     their next turn.
//
// The expansion budget couples fitness cost to wall-clock cost:
// expensive heuristics burn their budget early and die young even if
// they score well, while cheap heuristics earn more mutation chances.
//
// The budget defaults to ExpansionBoundMultiplier× the Manhattan
// baseline's total cycle expansions. Every organism ever simulated is
// recorded as a HeuristicResult; Best tracks the smallest score
// (mean expansions per cycle problem), first-seen winning ties.
//
// The priority queue is rebuilt after each bulk budget update — with
// at most a few hundred organisms alive, O(n) per step beats the
// bookkeeping of an indexed decrease-key heap.
package alife
