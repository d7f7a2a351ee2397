// Package heursearch evolves symbolic heuristic functions for grid
// pathfinding.
//
// 🚀 What is heursearch?
//
//	A library that searches the space of small arithmetic expression
//	trees over {x1, y1, x2, y2, deltaX, deltaY} for functions that make
//	A* expand fewer nodes than the Manhattan baseline on a fixed
//	benchmark cycle of start/goal problems.
//
// The pipeline, package by package:
//
//	grid/               — tile maps: 4-connected adjacency, trimming to the
//	                      largest connected component, the ASCII map format
//	heuristic/          — the expression language: s-expression parser,
//	                      random generation, size-bounded mutation,
//	                      per-operator probability vectors
//	heuristic/executor/ — two evaluators with identical semantics: a
//	                      tree-walking interpreter and a compiled
//	                      postfix program for the hot path
//	search/             — the inner loop: lazy A* reporting expansions,
//	                      traversals and the solution path
//	cycle/              — a closed cycle of problems solved in parallel,
//	                      with expansion/path-length aggregates
//	genetic/            — generational evolution with fitness-weighted
//	                      sampling and an elite archive
//	alife/              — expansion-budgeted artificial-life evolution:
//	                      heuristics are organisms whose lifetime is
//	                      measured in A* node expansions
//	store/              — optional SQLite persistence of run results
//
// Random draws are reproducible under a fixed seed: parallel sections
// use RNG substreams derived with heuristic.DeriveRNG, never a shared
// Rand. The outer loops also stop on a wall-clock limit, so a run is
// reproducible only when it is bounded by something other than time
// (e.g. genetic.WithMaxGenerations).
//
//	go get github.com/katalvlaran/heursearch
package heursearch
