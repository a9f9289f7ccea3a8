package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sloanpr/profilereduce/graph"
)

// test1 is the canonical small fixture graph: edges {(0,1),(0,3),(1,3),(2,3)}.
func test1() *graph.Graph {
	rowPtr := []int{0, 2, 4, 5, 8}
	colIdx := []int{1, 3, 0, 3, 3, 0, 1, 2}
	return graph.New(4, rowPtr, colIdx)
}

// test2 is the canonical small fixture graph: edges {(0,2),(0,5),(1,4),(1,5),(2,3),(2,4),(4,5)}.
func test2() *graph.Graph {
	rowPtr := []int{0, 2, 4, 7, 8, 11, 14}
	colIdx := []int{2, 5, 4, 5, 0, 3, 4, 2, 1, 2, 5, 0, 1, 4}
	return graph.New(6, rowPtr, colIdx)
}

func TestEvaluateProfile_NaturalLabeling(t *testing.T) {
	g := test1()
	require.Equal(t, uint64(4), g.EvaluateProfile())

	g2 := test2()
	require.Equal(t, uint64(11), g2.EvaluateProfile())
}

func TestEvaluateProfile_RelabeledSolutions(t *testing.T) {
	g := test1()
	g.Labels = []int{1, 0, 3, 2}
	require.Equal(t, uint64(4), g.EvaluateProfile())

	g.Labels = []int{3, 2, 1, 0}
	require.Equal(t, uint64(6), g.EvaluateProfile())

	g2 := test2()
	g2.Labels = []int{3, 1, 4, 5, 2, 0}
	require.Equal(t, uint64(9), g2.EvaluateProfile())
}

func TestBestProfile_MonotoneMinimum(t *testing.T) {
	g := test1()
	require.Equal(t, uint64(4), g.EvaluateProfile())
	require.Equal(t, uint64(4), g.BestProfile)

	g.Labels = []int{3, 2, 1, 0}
	require.Equal(t, uint64(6), g.EvaluateProfile())
	require.Equal(t, uint64(4), g.BestProfile, "best profile must not regress")
}

func TestEccentricityAndWidth(t *testing.T) {
	g := test1()
	ecc, width := g.EccentricityAndWidth(0)
	require.Equal(t, 2, ecc)
	require.Equal(t, 2, width)

	ecc, width = g.EccentricityAndWidth(3)
	require.Equal(t, 1, ecc)
	require.Equal(t, 3, width)
}

func TestLastLevelAndEccentricity(t *testing.T) {
	g := test1()
	lvl, ecc := g.LastLevelAndEccentricity(0)
	require.ElementsMatch(t, []int{2}, lvl)
	require.Equal(t, 2, ecc)

	lvl, ecc = g.LastLevelAndEccentricity(3)
	require.ElementsMatch(t, []int{0, 1, 2}, lvl)
	require.Equal(t, 1, ecc)

	g2 := test2()
	lvl, ecc = g2.LastLevelAndEccentricity(0)
	require.ElementsMatch(t, []int{1, 3, 4}, lvl)
	require.Equal(t, 2, ecc)

	lvl, ecc = g2.LastLevelAndEccentricity(3)
	require.ElementsMatch(t, []int{1, 5}, lvl)
	require.Equal(t, 3, ecc)
}

func TestFeasible(t *testing.T) {
	g := test1()
	require.NoError(t, g.Feasible())

	g.Labels = []int{0, 0, 1, 2}
	require.ErrorIs(t, g.Feasible(), graph.ErrNotBijection)

	g.Labels = []int{0, 1, 2}
	require.ErrorIs(t, g.Feasible(), graph.ErrNotBijection)
}

func TestDegreesAndDegreeBounds(t *testing.T) {
	g := test1()
	require.Equal(t, []int{2, 2, 1, 3}, g.Degree)
	require.Equal(t, 1, g.MinDegree)
	require.Equal(t, 3, g.MaxDegree)
}
