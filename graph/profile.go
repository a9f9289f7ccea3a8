package graph

// EvaluateProfile computes the profile of the current Labels:
//
//	Σᵢ (Labels[i] − min(Labels[i], min_{j∈N(i)} Labels[j]))
//
// with label-0 vertices contributing 0. It stores the result in g.Profile,
// lowers g.BestProfile if improved, and returns the profile.
//
// Complexity: O(V+E), with an early exit of the inner loop once the
// smallest neighbor label reaches 0.
func (g *Graph) EvaluateProfile() uint64 {
	var profile uint64
	for i := 0; i < g.N; i++ {
		li := g.Labels[i]
		if li == 0 {
			continue
		}
		smallest := li
		for _, j := range g.Neighbors(i) {
			lj := g.Labels[j]
			if lj < smallest {
				smallest = lj
			}
			if smallest == 0 {
				break
			}
		}
		profile += uint64(li - smallest)
	}
	g.Profile = profile
	if profile < g.BestProfile {
		g.BestProfile = profile
	}

	return profile
}
