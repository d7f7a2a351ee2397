// Package genetic evolves heuristic expressions with a generational
// genetic algorithm.
//
// Each generation:
//
//  1. every population member is scored on the full problem cycle
//     (the parallel batch solver of package cycle);
//  2. a snapshot (expression, fitness, elapsed ms) of the whole
//     generation is appended to the run history;
//  3. the best-of-run archive absorbs the generation, is sorted by
//     fitness ascending and truncated to MaxBestIndividuals — ties
//     keep the first-seen individual;
//  4. the next generation is drawn by weighted sampling with
//     replacement (weights proportional to the fitness vector after
//     normalization; non-finite fitness contributes no weight) and
//     every sampled parent is mutated.
//
// Fitness is smaller-is-better:
//
//	fitness = (pathLen/basePathLen)² · (expansions/baseExpansions) · (200 + size)
//
// with the Manhattan baseline supplying the denominators and unsolved
// cycles scoring +Inf. The run stops when the wall-clock time limit is
// reached, or earlier at the optional generation cap (WithMaxGenerations).
// Every random draw comes from the run's seeded stream (parallel
// mutation uses pre-derived substreams), so a fixed seed together with
// a generation cap reproduces the run exactly; with the time limit as
// the only terminator the generation count depends on machine speed.
package genetic
