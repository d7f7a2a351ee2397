// Package cycle builds and evaluates problem cycles: fixed, ordered
// batches of start/goal problems forming a closed loop over a map.
//
// A cycle of length L satisfies, by construction:
//
//   - problem[i].Goal == problem[i+1].Start for every i;
//   - problem[L-1].Goal == problem[0].Start;
//   - every endpoint is passable and no problem is trivial
//     (Start != Goal).
//
// Because maps are trimmed to one connected component (see grid), every
// generated problem is solvable.
//
// The cycle is the benchmark suite of the evolutionary layers: one
// candidate heuristic is scored by solving every problem of the cycle
// and aggregating expansions and path lengths against the Manhattan
// baseline. Solver evaluates the whole batch concurrently — problems
// are independent, each worker owns its A* buffers, and the shared
// compiled heuristic is immutable — with results delivered in problem
// order. An unsolved problem poisons both aggregates with math.MaxInt,
// which the fitness layer treats as +Inf.
package cycle
