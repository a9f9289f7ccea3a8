package peripheral_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sloanpr/profilereduce/graph"
	"github.com/sloanpr/profilereduce/peripheral"
	"github.com/sloanpr/profilereduce/rng"
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

func TestSloan_ReturnsEccentricMaximizingPair(t *testing.T) {
	g := test1()
	r := rng.NewSeeded(1)
	s, e := peripheral.Sloan(g, r)

	ecc, _ := g.EccentricityAndWidth(s)
	require.GreaterOrEqual(t, ecc, 1)
	require.NotEqual(t, s, e)

	g.BFS(s)
	require.Equal(t, ecc, g.Distance(e))
}

func TestMGPS_OrientsTowardDeeperEndpoint(t *testing.T) {
	g := test2()
	r := rng.NewSeeded(3)
	s, e := peripheral.MGPS(g, r)

	require.NotEqual(t, s, e)
	eccS, widthS := g.EccentricityAndWidth(s)
	eccE, widthE := g.EccentricityAndWidth(e)
	require.True(t, eccS > eccE || (eccS == eccE && widthS <= widthE))
}

func TestSloanAndMGPS_Deterministic(t *testing.T) {
	g1 := test1()
	g2 := test1()
	s1, e1 := peripheral.Sloan(g1, rng.NewSeeded(5))
	s2, e2 := peripheral.Sloan(g2, rng.NewSeeded(5))
	require.Equal(t, s1, s2)
	require.Equal(t, e1, e2)

	g3 := test2()
	g4 := test2()
	s3, e3 := peripheral.MGPS(g3, rng.NewSeeded(9))
	s4, e4 := peripheral.MGPS(g4, rng.NewSeeded(9))
	require.Equal(t, s3, s4)
	require.Equal(t, e3, e4)
}
