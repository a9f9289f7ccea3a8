// Package peripheral finds pseudo-peripheral vertex pairs: endpoints that
// approximate a sparse graph's diameter, used to seed the Sloan-family and
// MPG labelers with a meaningful start/end orientation.
//
// Two variants are provided, mirroring the two heuristics that consume
// them: Sloan (used by MPG) and MGPS (used by the Sloan-MGPS labeler and
// the multilevel engine). Both share the same iterative-refinement
// skeleton and differ only in how they prune the candidate list drawn from
// the last BFS level.
package peripheral

import (
	"sort"

	"github.com/sloanpr/profilereduce/graph"
	"github.com/sloanpr/profilereduce/rng"
)

// pickMinDegreeRoot returns a uniformly random vertex among those of
// minimum degree, breaking ties via r.
func pickMinDegreeRoot(g *graph.Graph, r *rng.Source) int {
	var candidates []int
	for i := 0; i < g.N; i++ {
		if g.Degree[i] == g.MinDegree {
			candidates = append(candidates, i)
		}
	}
	return candidates[r.IntRange(0, len(candidates)-1)]
}

// Sloan returns a pseudo-peripheral pair (s,e) using Sloan's (1986)
// original algorithm: the last-level candidate list is pruned to one
// representative per distinct degree.
func Sloan(g *graph.Graph, r *rng.Source) (s, e int) {
	s = pickMinDegreeRoot(g, r)
	e = 0

	for {
		lastLevel, eccS := g.LastLevelAndEccentricity(s)

		type candidate struct{ v, deg int }
		cands := make([]candidate, len(lastLevel))
		for i, v := range lastLevel {
			cands[i] = candidate{v, g.Degree[v]}
		}
		sort.Slice(cands, func(i, j int) bool { return cands[i].deg < cands[j].deg })

		// Keep one representative per distinct degree (stable uniqueness).
		pruned := cands[:0:0]
		var lastDeg = -1
		for _, c := range cands {
			if c.deg != lastDeg {
				pruned = append(pruned, c)
				lastDeg = c.deg
			}
		}

		widthE := int(^uint(0) >> 1) // max int, "infinity"
		restarted := false
		for _, c := range pruned {
			eccI, widthI := g.EccentricityAndWidth(c.v)
			if eccI > eccS && widthI < widthE {
				s = c.v
				restarted = true
				break
			} else if widthI < widthE {
				e = c.v
				widthE = widthI
			}
		}
		if !restarted {
			return s, e
		}
	}
}

// MGPS returns a pseudo-peripheral pair (s,e) using the MGPS (1999)
// refinement of Sloan's algorithm: the last-level candidate list is pruned
// by greedily excluding vertices whose neighborhood intersects the
// cumulative "considered" set, keeping at most five survivors, and the
// pair is finally oriented toward the deeper (or, tied, narrower) side.
func MGPS(g *graph.Graph, r *rng.Source) (s, e int) {
	s = pickMinDegreeRoot(g, r)
	e = 0
	considered := make(map[int]struct{})

	for {
		lastLevel, eccS := g.LastLevelAndEccentricity(s)
		sort.Slice(lastLevel, func(i, j int) bool {
			return g.Degree[lastLevel[i]] < g.Degree[lastLevel[j]]
		})

		var pruned []int
		for _, v := range lastLevel {
			discard := false
			for _, j := range g.Neighbors(v) {
				if _, ok := considered[j]; ok {
					discard = true
					break
				}
			}
			if discard {
				continue
			}
			pruned = append(pruned, v)
			considered[v] = struct{}{}
			if len(pruned) >= 5 {
				break
			}
		}

		widthE := int(^uint(0) >> 1)
		restarted := false
		for _, v := range pruned {
			eccI, widthI := g.EccentricityAndWidth(v)
			if eccI > eccS && widthI < widthE {
				s = v
				restarted = true
				break
			} else if widthI < widthE {
				e = v
				widthE = widthI
			}
		}
		if !restarted {
			break
		}
	}

	// Enhanced Sloan orientation: prefer the endpoint with the deeper
	// rooted level set, or (tied) the narrower one.
	eccS, widthS := g.EccentricityAndWidth(s)
	eccE, widthE := g.EccentricityAndWidth(e)
	if eccE > eccS || (eccE == eccS && widthE < widthS) {
		s, e = e, s
	}

	return s, e
}
