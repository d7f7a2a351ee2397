// Package heuristic implements the symbolic expression language whose
// trees serve as candidate A* heuristics.
//
// Grammar (s-expression, case-sensitive, whitespace-separated):
//
//	heuristic := terminal | number
//	           | "(" unary heuristic ")"
//	           | "(" binary heuristic heuristic ")"
//	terminal  := x1 | y1 | x2 | y2 | deltaX | deltaY
//	number    := 1..9
//	unary     := neg | abs | sqrt | sqr
//	binary    := + | - | * | / | max | min
//
// A tree's pretty-printed form — e.g. "(+ deltaX deltaY)" — is the
// canonical string used for hashing, deduplication and history output;
// Parse(n.String()) reproduces n for every well-formed tree.
//
// Beyond representation, the package provides the stochastic machinery
// of the evolutionary outer loops:
//
//   - Random — size-bounded random tree generation;
//   - Mutate — subtree mutation with a 1/size replacement probability
//     per node, budgeted so results never exceed MaxTreeSize;
//   - TermProbabilities — per-operator-class probability vectors that
//     bias generation and mutation, with crossover and mutation
//     operators of their own;
//   - RNGFromSeed / DeriveRNG — deterministic RNG streams; parallel
//     workers must use derived substreams, never a shared Rand.
//
// Determinism: every randomized function takes an explicit *rand.Rand.
// Same seed ⇒ identical trees across platforms.
package heuristic
