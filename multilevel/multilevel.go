// Package multilevel implements the MSH(2001) multilevel refinement:
// maximal-independent-set coarsening, coarse-graph construction bounded by
// two soft work guards, priority prolongation from a coarse solution back
// to the fine graph, and a recursive W-cycle that alternates coarsening and
// Sloan-MGPS refinement.
//
// The recursion depth is threaded explicitly through every call rather than
// kept in a package-level or thread-local variable: the reference
// implementation uses a thread_local level counter, which is a latent
// hazard the moment two refinements run concurrently. Since this module is
// single-threaded cooperative throughout, an explicit parameter costs
// nothing and removes the hazard outright.
package multilevel

import (
	"github.com/sloanpr/profilereduce/graph"
	"github.com/sloanpr/profilereduce/mpg"
	"github.com/sloanpr/profilereduce/pqueue"
	"github.com/sloanpr/profilereduce/rng"
	"github.com/sloanpr/profilereduce/sloan"
)

// Soft work guards bounding the coarse-graph BFS on slow, high-degree
// matrices: once either running product would exceed these, the BFS from
// the current MIS vertex is abandoned early rather than exhaustively
// explored.
const (
	MaxAccNeighbors1 = 19_000_000
	MaxAccNeighbors2 = 47_000_000
)

// MaxRatio is the largest coarse-to-fine vertex-count ratio a coarsening
// step may keep: if the coarse graph has more than this fraction of the
// fine graph's vertices, coarsening has stalled and the base case runs
// directly on the current level instead.
const MaxRatio = 0.8

// MaxLevel bounds the W-cycle recursion depth.
const MaxLevel = 1

// BaseAlgorithm selects which labeler the W-cycle's base case (and its
// fallback when coarsening stalls) runs.
type BaseAlgorithm int

const (
	BaseSloanMGPS BaseAlgorithm = iota
	BaseMPG
)

// MaximalIndependentSet selects a maximal independent set by repeatedly
// extracting the highest-remaining-degree uncolored vertex from a gain-keyed
// max-heap, forbidding its neighbors, and bumping the gain of each
// forbidden neighbor's still-uncolored neighbors by one.
//
// Complexity: O((V+E) log V).
func MaximalIndependentSet(g *graph.Graph) []int {
	uncolored := make([]bool, g.N)
	for i := range uncolored {
		uncolored[i] = true
	}

	gain := pqueue.New[int](g.N)
	for i := 0; i < g.N; i++ {
		gain.Insert(i, g.Degree[i])
	}

	var colored []int
	for gain.Len() > 0 {
		iMax, _, _ := gain.ExtractMax()
		uncolored[iMax] = false
		colored = append(colored, iMax)

		for _, j := range g.Neighbors(iMax) {
			if !uncolored[j] {
				continue
			}
			_ = gain.Remove(j)
			uncolored[j] = false

			for _, k := range g.Neighbors(j) {
				if uncolored[k] {
					p, _ := gain.PriorityOf(k)
					_ = gain.ChangePriority(k, p+1)
				}
			}
		}
	}

	return colored
}

// CoarseGraph builds the coarse graph induced by mis: for every MIS vertex,
// a depth-<=2 BFS in the fine graph discovers other MIS vertices reachable
// through at most one non-MIS intermediary, which become its coarse
// neighbors. The soft work guards abandon a vertex's BFS early once its
// accumulated fan-out crosses either threshold, trading coarse-graph
// completeness for bounded work on dense/slow inputs.
func CoarseGraph(g *graph.Graph, mis []int) *graph.Graph {
	coarseM := len(mis)
	const unmapped = -1

	fineToCoarse := make([]int, g.N)
	for i := range fineToCoarse {
		fineToCoarse[i] = unmapped
	}
	for i, v := range mis {
		fineToCoarse[v] = i
	}

	coarseNeighbors := make([]map[int]struct{}, coarseM)
	for i := range coarseNeighbors {
		coarseNeighbors[i] = make(map[int]struct{})
	}

	visited := make([]int, g.N)
	currentTime := 0
	nnz := 0

	type frontierItem struct{ v, dist int }

	for i := 0; i < coarseM; i++ {
		startFine := mis[i]
		connected := len(coarseNeighbors[i]) > 0
		currentTime++
		visited[startFine] = currentTime

		queue := []frontierItem{{startFine, 0}}
		for len(queue) > 0 {
			item := queue[0]
			queue = queue[1:]
			v, dist := item.v, item.dist

			if connected {
				nNeighbor := g.Degree[v]
				total1 := nNeighbor * len(queue)
				total2 := nNeighbor * coarseM
				if total1 >= MaxAccNeighbors1 || total2 >= MaxAccNeighbors2 {
					queue = nil
					break
				}
			}

			newDist := dist + 1
			for _, neighbor := range g.Neighbors(v) {
				if visited[neighbor] == currentTime {
					continue
				}
				visited[neighbor] = currentTime
				if newDist < 2 {
					queue = append(queue, frontierItem{neighbor, newDist})
				}

				if coarseU := fineToCoarse[neighbor]; coarseU != unmapped && neighbor != startFine {
					if _, ok := coarseNeighbors[i][coarseU]; !ok {
						coarseNeighbors[i][coarseU] = struct{}{}
						nnz++
						connected = true
					}
					coarseNeighbors[coarseU][i] = struct{}{}
				}
			}
		}
	}

	rowPtr := make([]int, coarseM+1)
	colIdx := make([]int, 0, nnz)
	for i := 0; i < coarseM; i++ {
		neighbors := make([]int, 0, len(coarseNeighbors[i]))
		for n := range coarseNeighbors[i] {
			neighbors = append(neighbors, n)
		}
		sortInts(neighbors)
		colIdx = append(colIdx, neighbors...)
		rowPtr[i+1] = rowPtr[i] + len(neighbors)
	}

	return graph.New(coarseM, rowPtr, colIdx)
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Prolong computes a per-fine-vertex priority vector from a labeled coarse
// graph: each MIS vertex's priority is its coarse label (1-based), and every
// other fine vertex's priority is the average priority of its MIS-member
// neighbors.
func Prolong(g *graph.Graph, coarse *graph.Graph, mis []int) []float64 {
	priority := make([]float64, g.N)
	inMIS := make([]bool, g.N)
	for i, v := range mis {
		priority[v] = float64(coarse.Labels[i] + 1)
		inMIS[v] = true
	}

	for i := 0; i < g.N; i++ {
		if inMIS[i] {
			continue
		}
		var acc float64
		var count int
		for _, j := range g.Neighbors(i) {
			if inMIS[j] {
				acc += priority[j]
				count++
			}
		}
		if count > 0 {
			priority[i] = acc / float64(count)
		}
	}

	return priority
}

// refineBase runs the W-cycle base case: enhanced Sloan-MGPS when priority
// is supplied or base==BaseSloanMGPS, MPG otherwise.
func refineBase(g *graph.Graph, priority []float64, base BaseAlgorithm, r *rng.Source) {
	if len(priority) == 0 {
		if base == BaseSloanMGPS {
			sloan.EnhancedPriorityVector(g, nil, r)
		} else {
			mpg.Label(g, r)
		}
		return
	}
	sloan.EnhancedPriorityVector(g, priority, r)
}

// MsW runs the multilevel Sloan-MGPS/MPG W-cycle refinement on g, writing
// the best labeling found into g.Labels. level is the current recursion
// depth (callers pass 0); priority is the externally supplied global
// priority vector, or nil to use distance-from-e.
func MsW(g *graph.Graph, priority []float64, base BaseAlgorithm, level int, r *rng.Source) {
	if level >= MaxLevel || g.N <= 2 {
		refineBase(g, priority, base, r)
		return
	}

	mis := MaximalIndependentSet(g)
	coarse := CoarseGraph(g, mis)

	ratio := float64(coarse.N) / float64(g.N)
	if ratio > MaxRatio {
		refineBase(g, priority, base, r)
		return
	}

	MsW(coarse, priority, base, level+1, r)

	priority1 := Prolong(g, coarse, mis)
	sloan.EnhancedPriorityVector(g, priority1, r)

	pri := make([]float64, g.N)
	for i, l := range g.Labels {
		pri[i] = float64(l)
	}
	MsW(coarse, pri, base, level+1, r)

	priority2 := Prolong(g, coarse, mis)
	sloan.EnhancedPriorityVector(g, priority2, r)
}

// MsWConstructive is the population-search analogue of MsW: the base case
// and both refinement steps use the no-natural-labeling-preserved
// Sloan-MGPS variants (constructive-N at the base, EnhancedPriorityVector2
// for the prolongation steps), matching BRKGA's need to avoid biasing the
// search toward whatever labeling g happened to carry in.
func MsWConstructive(g *graph.Graph, priority []float64, level int, r *rng.Source) {
	if level >= MaxLevel || g.N <= 2 {
		if len(priority) == 0 {
			sloan.ConstructiveN(g, r.UniformInclusive(), r)
		} else {
			sloan.EnhancedPriorityVector2(g, priority, r)
		}
		return
	}

	mis := MaximalIndependentSet(g)
	coarse := CoarseGraph(g, mis)

	ratio := float64(coarse.N) / float64(g.N)
	if ratio > MaxRatio {
		if len(priority) == 0 {
			sloan.ConstructiveN(g, r.UniformInclusive(), r)
		} else {
			sloan.EnhancedPriorityVector2(g, priority, r)
		}
		return
	}

	MsWConstructive(coarse, priority, level+1, r)

	priority1 := Prolong(g, coarse, mis)
	sloan.EnhancedPriorityVector2(g, priority1, r)

	pri := make([]float64, g.N)
	for i, l := range g.Labels {
		pri[i] = float64(l)
	}
	MsWConstructive(coarse, pri, level+1, r)

	priority2 := Prolong(g, coarse, mis)
	sloan.EnhancedPriorityVector2(g, priority2, r)
}
