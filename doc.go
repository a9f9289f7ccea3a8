// Package profilereduce reduces the profile (bandedness) of an undirected
// sparse graph by searching for a vertex relabeling that minimizes it.
//
// The profile of a labeling ℓ is Σᵢ (ℓ(i) − min(ℓ(i), min_{j∈N(i)} ℓ(j))),
// the classical measure that drives fill and cost in envelope solvers for
// sparse symmetric linear systems. Minimizing it is NP-hard; this module
// implements a family of well-known heuristics rather than an exact solver:
//
//	graph/      — CSR adjacency store, profile evaluation, BFS scratch
//	pqueue/     — indexed mutable-key max-heap (int and float64 priorities)
//	peripheral/ — Sloan and MGPS pseudo-peripheral endpoint search
//	sloan/      — Sloan-MGPS priority labeler, its enhanced and randomized variants
//	mpg/        — MPG dual-queue labeler
//	multilevel/ — MIS coarsening and recursive profile refinement
//	rkey/       — random-key encoder/decoder bridging permutations and BRKGA
//	brkga/      — biased random-key genetic algorithm composing the above
//	rng/        — seedable process-wide RNG facade
//	mtxio/      — Matrix Market (.mtx) loader
//	cmd/profilereduce/ — CLI entry point
//
// Every algorithm here is single-threaded and cooperative: no engine
// package spawns a goroutine (only the CLI's SIGTERM handler runs in one),
// and cancellation is a wall-clock deadline checked
// between BRKGA generations, never a context cancellation mid-heuristic.
package profilereduce
