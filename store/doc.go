// Package store persists evolution results to SQLite, so long runs can
// be inspected and compared after the fact with plain SQL.
//
// Three tables:
//
//	heuristic_results — one row per simulated organism (alife), with
//	                    comma-joined per-problem counts and its score;
//	ga_generations    — one row per (generation, individual) of a GA
//	                    run's history;
//	ga_best           — the GA archive, ranked by fitness ascending.
//
// The schema is created on Open if missing. Saves are transactional:
// a failed save leaves the database unchanged. Nothing else in the
// module writes to disk (grid.ParseMapFile only reads map files) — the
// store is strictly opt-in for callers that want durable output.
package store
