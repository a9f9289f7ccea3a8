// Package mpg implements the MPG(1993) profile-reduction labeler: a
// dual-priority-queue greedy construction seeded from a Sloan
// pseudo-peripheral pair, distinct from the Sloan-MGPS state-machine
// labeler in package sloan.
//
// MPG tracks, for every unlabeled vertex, a current degree d (neighbors not
// yet labeled and not already queued) and a priority p = d_e - 2*d, where
// d_e is distance from the pseudo-peripheral endpoint e. Two max-heaps
// drive the construction: Q holds vertices eligible for a future label, T
// holds vertices within one unlabeled neighbor of being labelable.
package mpg

import (
	"math"

	"github.com/sloanpr/profilereduce/graph"
	"github.com/sloanpr/profilereduce/peripheral"
	"github.com/sloanpr/profilereduce/pqueue"
	"github.com/sloanpr/profilereduce/rng"
)

const unlabeled = -1

// Label runs the MPG labeling pass and writes the resulting permutation
// into g.Labels.
func Label(g *graph.Graph, r *rng.Source) {
	n := g.N
	for i := range g.Labels {
		g.Labels[i] = unlabeled
	}

	s, e := peripheral.Sloan(g, r)
	g.BFS(e)
	dE := make([]int, n)
	for i := 0; i < n; i++ {
		dE[i] = g.Distance(i)
	}

	d := make([]int, n)
	copy(d, g.Degree)
	p := make([]int, n)
	for i := 0; i < n; i++ {
		p[i] = dE[i] - 2*d[i]
	}
	a := make([]int, n) // connections to Q

	Q := pqueue.New[int](n)
	T := pqueue.New[int](n)

	currentLabel := 0
	N := s

	for currentLabel < n {
		// Step 4: pick the highest-priority neighbor of T not yet in Y=L∪Q.
		if Q.Len() == 0 {
			N = s
		} else {
			piMax := math.MinInt64
			found := false
			for _, u := range tMembers(T) {
				for _, v := range g.Neighbors(u) {
					if g.Labels[v] != unlabeled || Q.Contains(v) {
						continue
					}
					pMax := math.MinInt64
					for _, adjV := range g.Neighbors(v) {
						if pv, ok := T.PriorityOf(adjV); ok && pv > pMax {
							pMax = pv
						}
					}
					if pMax == math.MinInt64 {
						pMax = 0
					}
					pi := 2*p[v] + 2*pMax + 3*a[v]
					if !found || pi > piMax {
						piMax = pi
						N = v
						found = true
					}
				}
			}
		}

		// Step 5/6: insert N into Q, update neighbors' d/a/p, and promote
		// neighbors with d==1 into T.
		if g.Labels[N] == unlabeled && !Q.Contains(N) {
			Q.Insert(N, p[N])

			for _, j := range g.Neighbors(N) {
				d[j]--
				a[j]++
				p[j] = dE[j] - 2*d[j]
				if Q.Contains(j) {
					_ = Q.ChangePriority(j, p[j])
				}
				if T.Contains(j) {
					_ = T.ChangePriority(j, p[j])
				} else if Q.Contains(j) && d[j] == 1 {
					T.Insert(j, p[j])
				}
			}
		}

		// Step 7: label every vertex in T with d==0, draining T by
		// repeated max-extraction; re-insert survivors with d<=1.
		var survivors []struct{ key, pri int }
		for T.Len() > 0 {
			i, pi, _ := T.ExtractMax()
			if d[i] == 0 {
				g.Labels[i] = currentLabel
				currentLabel++
				if Q.Contains(i) {
					_ = Q.Remove(i)
					for _, j := range g.Neighbors(i) {
						a[j]--
					}
				}
			} else if d[i] <= 1 {
				survivors = append(survivors, struct{ key, pri int }{i, pi})
			}
		}
		for _, surv := range survivors {
			T.Insert(surv.key, surv.pri)
		}

		// Step 8: if T emptied, rebuild it from Q's top band.
		if T.Len() == 0 && Q.Len() > 0 {
			_, topPri, ok := Q.Peek()
			if ok {
				threshold := topPri - 1
				for _, m := range qMembers(Q) {
					if pri, _ := Q.PriorityOf(m); pri >= threshold {
						T.Insert(m, pri)
					}
				}
			}
		}
	}
}

// qMembers and tMembers expose a heap's current key set for the scans
// MPG's construction needs: steps 4 and 8 examine the whole queue, not
// just its max.
func qMembers(h *pqueue.Heap[int]) []int { return h.Keys() }
func tMembers(h *pqueue.Heap[int]) []int { return h.Keys() }
