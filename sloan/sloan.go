// Package sloan implements the Sloan-MGPS family of greedy profile-reduction
// labelers: a priority-queue-driven vertex relabeling pass over a 4-state
// vertex state machine (Inactive, Preactive, Active, Postactive), seeded
// from an MGPS pseudo-peripheral pair.
//
// The entry points are Label (the baseline weighted form, optionally
// degree/diameter-normalized), LabelWithPriority (a global-priority form
// that accepts an externally supplied per-vertex priority vector, used to
// prolong coarse solutions), ConstructiveN (a randomized variant for BRKGA),
// and the "enhanced" wrappers EnhancedPriority, EnhancedPriorityVector and
// EnhancedPriorityVector2, which try two canonical weight pairs and keep the
// better result.
package sloan

import (
	"math"

	"github.com/sloanpr/profilereduce/graph"
	"github.com/sloanpr/profilereduce/peripheral"
	"github.com/sloanpr/profilereduce/pqueue"
	"github.com/sloanpr/profilereduce/rng"
)

// vertexStatus is the 4-state FSM each vertex passes through during a pass.
type vertexStatus int

const (
	inactive vertexStatus = iota
	preactive
	active
	postactive
)

// Weights holds the two Sloan priority coefficients: w1 weighs the
// current-degree term, w2 weighs the distance-from-e term.
type Weights struct {
	W1, W2 float64
}

// Canonical weight pairs used by EnhancedPriority, EnhancedPriorityVector
// and EnhancedPriorityVector2.
var (
	weightsClassic = Weights{W1: 2, W2: 1}
	weightsWide    = Weights{W1: 16, W2: 1}
)

type vertexData struct {
	priority  float64
	curDegree int
	status    vertexStatus
}

// Label runs one Sloan-MGPS pass, finding its own pseudo-peripheral pair
// and writing the resulting permutation into g.Labels. When normalized is
// true, w1 is scaled by max(1, pseudo-diameter/max_degree) per Reid & Scott
// (1999) / Hu & Scott (2001).
func Label(g *graph.Graph, w Weights, normalized bool, r *rng.Source) {
	s, e := peripheral.MGPS(g, r)
	labelFrom(g, w, normalized, s, e)
}

// LabelWithPriority runs a Sloan-MGPS pass using the global priority
// function (4) of Reid & Scott (1999): an externally supplied per-vertex
// priority vector (e.g. prolonged from a coarser level) replaces the
// distance-from-e term. If priority is nil, each vertex's distance from e
// stands in for its priority entry in the same global formula.
func LabelWithPriority(g *graph.Graph, w Weights, priority []float64, r *rng.Source) {
	s, e := peripheral.MGPS(g, r)
	labelFromGlobal(g, w, priority, s, e)
}

func labelFrom(g *graph.Graph, w Weights, normalized bool, s, e int) {
	g.BFS(e)

	w1 := w.W1
	if normalized {
		maxD := float64(g.Distance(s))
		norm := maxD / float64(g.MaxDegree)
		if norm < 1.0 {
			norm = 1.0
		}
		w1 *= norm
	}

	vertices := make([]vertexData, g.N)
	for i := 0; i < g.N; i++ {
		vertices[i] = vertexData{
			priority:  -w1*float64(g.Degree[i]+1) + w.W2*float64(g.Distance(i)),
			curDegree: g.Degree[i],
			status:    inactive,
		}
	}

	runPass(g, vertices, w1, s)
}

func labelFromGlobal(g *graph.Graph, w Weights, priority []float64, s, e int) {
	g.BFS(e)
	h := float64(g.Distance(s))
	nu := w.W2 * (h / float64(g.N))

	vertices := make([]vertexData, g.N)
	for i := 0; i < g.N; i++ {
		var p float64
		if priority != nil {
			p = priority[i]
		} else {
			p = float64(g.Distance(i))
		}
		vertices[i] = vertexData{
			priority:  -w.W1*float64(g.Degree[i]+1) - nu*p,
			curDegree: g.Degree[i],
			status:    inactive,
		}
	}

	runPass(g, vertices, w.W1, s)
}

// runPass is the shared Sloan-MGPS labeling loop (steps 4-9): a single
// priority-ordered sweep that promotes preactive neighbors to active,
// postactive vertices once labeled, and keeps a max-heap of eligible
// vertices ordered by vertices[i].priority.
func runPass(g *graph.Graph, vertices []vertexData, w1 float64, s int) {
	q := pqueue.New[float64](g.N)
	currentLabel := 0
	maxFloat := math.MaxFloat64

	bump := func(j int) {
		vertices[j].curDegree--
		if vertices[j].curDegree > 0 {
			vertices[j].priority += w1
		} else {
			vertices[j].priority = maxFloat
		}
	}

	q.Insert(s, vertices[s].priority)
	vertices[s].status = preactive

	for q.Len() > 0 {
		i, _, _ := q.ExtractMax()

		if vertices[i].status == preactive {
			for _, j := range g.Neighbors(i) {
				bump(j)
				switch vertices[j].status {
				case inactive:
					vertices[j].status = preactive
					q.Insert(j, vertices[j].priority)
				case active, preactive:
					_ = q.ChangePriority(j, vertices[j].priority)
				}
			}
		}

		g.Labels[i] = currentLabel
		currentLabel++
		vertices[i].status = postactive

		for _, j := range g.Neighbors(i) {
			if vertices[j].status != preactive {
				continue
			}
			vertices[j].status = active
			bump(j)
			_ = q.ChangePriority(j, vertices[j].priority)

			for _, k := range g.Neighbors(j) {
				if vertices[k].status == postactive {
					continue
				}
				bump(k)
				if vertices[k].status == inactive {
					vertices[k].status = preactive
					q.Insert(k, vertices[k].priority)
				} else {
					_ = q.ChangePriority(k, vertices[k].priority)
				}
			}
		}
	}
}

// EnhancedPriority runs Label twice, with weight pairs (2,1) and (16,1),
// keeping natural labeling as a third candidate, and leaves g.Labels set to
// whichever of the three minimizes profile.
func EnhancedPriority(g *graph.Graph, r *rng.Source) {
	bestLabels := append([]int(nil), g.Labels...)
	bestProfile := g.EvaluateProfile()

	Label(g, weightsClassic, false, r)
	if p := g.EvaluateProfile(); p < bestProfile {
		bestProfile = p
		bestLabels = append(bestLabels[:0], g.Labels...)
	}

	Label(g, weightsWide, false, r)
	if p := g.EvaluateProfile(); p > bestProfile {
		g.Labels = bestLabels
		g.EvaluateProfile()
	}
}

// EnhancedPriorityVector is the priority-vector analogue of EnhancedPriority,
// used to prolong a coarse-level solution: the classic and wide weight
// pairs are each tried with LabelWithPriority, keeping the better of the two
// plus the incoming natural labeling as the third candidate.
func EnhancedPriorityVector(g *graph.Graph, priority []float64, r *rng.Source) {
	bestLabels := append([]int(nil), g.Labels...)
	bestProfile := g.EvaluateProfile()

	LabelWithPriority(g, weightsClassic, priority, r)
	if p := g.EvaluateProfile(); p < bestProfile {
		bestProfile = p
		bestLabels = append(bestLabels[:0], g.Labels...)
	}

	LabelWithPriority(g, weightsWide, priority, r)
	if p := g.EvaluateProfile(); p > bestProfile {
		g.Labels = bestLabels
		g.EvaluateProfile()
	}
}

// ConstructiveN runs the randomized constructive variant used to seed
// BRKGA's mutant population: priority mixes distance-from-e and
// (negated) degree with weights (alpha, norm*(1-alpha)), where norm
// compensates for a pseudo-diameter smaller than the max degree. Unlike
// Label, neighbor priority bumps add w2 rather than w1; as in Label, a
// vertex whose remaining degree reaches 0 saturates to max float.
func ConstructiveN(g *graph.Graph, alpha float64, r *rng.Source) {
	s, e := peripheral.MGPS(g, r)
	g.BFS(e)

	maxD := float64(g.Distance(s))
	norm := maxD / float64(g.MaxDegree)
	if norm < 1.0 {
		norm = 1.0
	}
	w1 := alpha
	w2 := norm * (1.0 - w1)

	vertices := make([]vertexData, g.N)
	for i := 0; i < g.N; i++ {
		vertices[i] = vertexData{
			priority:  w1*float64(g.Distance(i)) - w2*float64(g.Degree[i]+1),
			curDegree: g.Degree[i],
			status:    inactive,
		}
	}

	runPassConstructive(g, vertices, w2, s)
}

func runPassConstructive(g *graph.Graph, vertices []vertexData, w2 float64, s int) {
	q := pqueue.New[float64](g.N)
	currentLabel := 0

	bump := func(j int) {
		vertices[j].curDegree--
		if vertices[j].curDegree > 0 {
			vertices[j].priority += w2
		} else {
			vertices[j].priority = math.MaxFloat64
		}
	}

	q.Insert(s, vertices[s].priority)
	vertices[s].status = preactive

	for q.Len() > 0 {
		i, _, _ := q.ExtractMax()

		if vertices[i].status == preactive {
			for _, j := range g.Neighbors(i) {
				bump(j)
				switch vertices[j].status {
				case inactive:
					vertices[j].status = preactive
					q.Insert(j, vertices[j].priority)
				case active, preactive:
					_ = q.ChangePriority(j, vertices[j].priority)
				}
			}
		}

		g.Labels[i] = currentLabel
		currentLabel++
		vertices[i].status = postactive

		for _, j := range g.Neighbors(i) {
			if vertices[j].status != preactive {
				continue
			}
			vertices[j].status = active
			bump(j)
			_ = q.ChangePriority(j, vertices[j].priority)

			for _, k := range g.Neighbors(j) {
				if vertices[k].status == postactive {
					continue
				}
				bump(k)
				if vertices[k].status == inactive {
					vertices[k].status = preactive
					q.Insert(k, vertices[k].priority)
				} else {
					_ = q.ChangePriority(k, vertices[k].priority)
				}
			}
		}
	}
}

// EnhancedPriorityVector2 is the population-search variant of
// EnhancedPriorityVector: it does not preserve the incoming labeling as a
// candidate (BRKGA relabels from scratch every generation, so there is no
// "natural" labeling worth defending), only comparing the classic and wide
// weight pairs against each other.
func EnhancedPriorityVector2(g *graph.Graph, priority []float64, r *rng.Source) {
	LabelWithPriority(g, weightsClassic, priority, r)
	bestProfile := g.EvaluateProfile()
	bestLabels := append([]int(nil), g.Labels...)

	LabelWithPriority(g, weightsWide, priority, r)
	if p := g.EvaluateProfile(); p > bestProfile {
		g.Labels = bestLabels
		g.EvaluateProfile()
	}
}
