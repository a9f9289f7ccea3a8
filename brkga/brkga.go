// Package brkga implements the biased random-key genetic algorithm that
// composes every other heuristic in this module: it seeds an initial
// population from Sloan-MGPS, MPG, and multilevel constructions, then runs
// a generational loop of elitism, random mutants, and biased mating until a
// wall-clock deadline, reporting the best labeling found.
package brkga

import (
	"errors"
	"sort"
	"time"

	"github.com/sloanpr/profilereduce/graph"
	"github.com/sloanpr/profilereduce/mpg"
	"github.com/sloanpr/profilereduce/multilevel"
	"github.com/sloanpr/profilereduce/rkey"
	"github.com/sloanpr/profilereduce/rng"
	"github.com/sloanpr/profilereduce/sloan"
)

// ErrInvalidParams indicates Params violates Run's population-size or
// elite/mutant-count constraints.
var ErrInvalidParams = errors.New("brkga: invalid params")

// InitMode selects the constructive method used to fill the randomized
// tail of the initial population and every generation's mutants.
type InitMode int

const (
	// InitConstructiveSloan uses sloan.ConstructiveN(alpha) with a
	// freshly drawn alpha per individual.
	InitConstructiveSloan InitMode = iota
	// InitConstructiveMultilevel uses the multilevel constructive W-cycle.
	InitConstructiveMultilevel
)

// Params configures a Run. Population must be at least 10 (and at least 8
// to exercise every fixed seed), 0 < Elite < Population, and
// Elite+Mutants < Population.
type Params struct {
	Population int
	Elite      int
	Mutants    int
	EliteProb  float64 // probability a mating child inherits a key from the elite parent
	Init       InitMode
	Deadline   time.Duration
}

// solution is one population member: a profile, its decoded labels, and
// the random-key vector that produced it.
type solution struct {
	profile uint64
	labels  []int
	rk      []float64
}

// Result is the outcome of a Run: the best labeling found, its profile, and
// the number of generations the loop completed before the deadline.
type Result struct {
	Labels      []int
	Profile     uint64
	Generations int
}

// Run executes the BRKGA generational loop against g until p.Deadline
// elapses, returning the best labeling found. g's own Labels/Profile
// fields are left holding that same best result.
//
// Returns ErrInvalidParams without running if p violates Population >= 10,
// 0 < Elite < Population, or Elite+Mutants < Population.
func Run(g *graph.Graph, p Params, r *rng.Source) (Result, error) {
	if p.Population < 10 || p.Elite <= 0 || p.Elite >= p.Population || p.Elite+p.Mutants >= p.Population {
		return Result{}, ErrInvalidParams
	}

	population := initPopulation(g, p, r)

	deadline := time.Now().Add(p.Deadline)
	next := make([]solution, p.Population)
	generations := 0

	for {
		sort.Slice(population, func(i, j int) bool { return population[i].profile < population[j].profile })

		for i := p.Elite; i < p.Elite+p.Mutants; i++ {
			next[i] = constructOne(g, p, r)
		}

		for i := p.Elite + p.Mutants; i < p.Population; i++ {
			parent1 := population[r.IntRange(0, p.Elite-1)]
			parent2 := population[r.IntRange(0, p.Population-1)]
			rk := make([]float64, g.N)
			for k := 0; k < g.N; k++ {
				if r.Float01() < p.EliteProb {
					rk[k] = parent1.rk[k]
				} else {
					rk[k] = parent2.rk[k]
				}
			}
			labels := rkey.Decode(rk)
			g.Labels = labels
			profile := g.EvaluateProfile()
			next[i] = solution{profile: profile, labels: append([]int(nil), labels...), rk: rk}
		}

		copy(next[:p.Elite], population[:p.Elite])
		generations++

		if time.Now().After(deadline) {
			sort.Slice(next, func(i, j int) bool { return next[i].profile < next[j].profile })
			best := next[0]
			if best.profile < g.BestProfile {
				g.BestProfile = best.profile
			}
			g.Labels = best.labels
			g.Profile = best.profile
			return Result{Labels: append([]int(nil), best.labels...), Profile: best.profile, Generations: generations}, nil
		}

		population, next = next, population
	}
}

// initPopulation builds the fixed-construction seed individuals (indices
// 0-7) plus a randomized constructive tail, each encoded into a random-key
// vector so later generations can recombine them.
func initPopulation(g *graph.Graph, p Params, r *rng.Source) []solution {
	population := make([]solution, p.Population)

	record := func(i int) {
		profile := g.EvaluateProfile()
		rk := rkey.Encode(g.Labels, r.Float01)
		population[i] = solution{profile: profile, labels: append([]int(nil), g.Labels...), rk: rk}
	}

	// Index 0: natural labeling.
	record(0)

	// Indices 1-3: three independent Sloan-MGPS passes.
	for i := 1; i <= 3; i++ {
		sloan.Label(g, sloan.Weights{W1: 2, W2: 1}, false, r)
		record(i)
	}

	// Indices 4-6: three independent multilevel (W-cycle, Sloan base) passes.
	for i := 4; i <= 6; i++ {
		multilevel.MsW(g, nil, multilevel.BaseSloanMGPS, 0, r)
		record(i)
	}

	// Index 7: one MPG pass.
	mpg.Label(g, r)
	record(7)

	for i := 8; i < p.Population; i++ {
		population[i] = constructOne(g, p, r)
	}

	return population
}

// constructOne runs the randomized constructive method selected by
// p.Init and returns it as an encoded solution.
func constructOne(g *graph.Graph, p Params, r *rng.Source) solution {
	if p.Init == InitConstructiveSloan {
		sloan.ConstructiveN(g, r.UniformInclusive(), r)
	} else {
		multilevel.MsWConstructive(g, nil, 0, r)
	}
	profile := g.EvaluateProfile()
	rk := rkey.Encode(g.Labels, r.Float01)
	return solution{profile: profile, labels: append([]int(nil), g.Labels...), rk: rk}
}
