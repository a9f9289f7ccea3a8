package brkga_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sloanpr/profilereduce/brkga"
	"github.com/sloanpr/profilereduce/graph"
	"github.com/sloanpr/profilereduce/rng"
)

// test2 is the canonical small fixture graph: edges {(0,2),(0,5),(1,4),(1,5),(2,3),(2,4),(4,5)}.
func test2() *graph.Graph {
	rowPtr := []int{0, 2, 4, 7, 8, 11, 14}
	colIdx := []int{2, 5, 4, 5, 0, 3, 4, 2, 1, 2, 5, 0, 1, 4}
	return graph.New(6, rowPtr, colIdx)
}

func TestRun_ProducesFeasiblePermutationWithinDeadline(t *testing.T) {
	g := test2()
	natural := g.EvaluateProfile()

	params := brkga.Params{
		Population: 12,
		Elite:      3,
		Mutants:    2,
		EliteProb:  0.7,
		Init:       brkga.InitConstructiveSloan,
		Deadline:   50 * time.Millisecond,
	}

	result, err := brkga.Run(g, params, rng.NewSeeded(99))
	require.NoError(t, err)
	require.NoError(t, g.Feasible())
	require.LessOrEqual(t, result.Profile, natural)
	require.Equal(t, g.Labels, result.Labels)
	require.Greater(t, result.Generations, 0)
}

func TestRun_MultilevelConstructiveMode(t *testing.T) {
	g := test2()
	params := brkga.Params{
		Population: 10,
		Elite:      2,
		Mutants:    2,
		EliteProb:  0.6,
		Init:       brkga.InitConstructiveMultilevel,
		Deadline:   30 * time.Millisecond,
	}

	result, err := brkga.Run(g, params, rng.NewSeeded(17))
	require.NoError(t, err)
	require.NoError(t, g.Feasible())
	require.Greater(t, result.Profile, uint64(0))
}

func TestRun_RejectsInvalidParams(t *testing.T) {
	g := test2()

	_, err := brkga.Run(g, brkga.Params{Population: 5, Elite: 2, Mutants: 1, EliteProb: 0.7}, rng.NewSeeded(1))
	require.ErrorIs(t, err, brkga.ErrInvalidParams)

	_, err = brkga.Run(g, brkga.Params{Population: 10, Elite: 0, Mutants: 1, EliteProb: 0.7}, rng.NewSeeded(1))
	require.ErrorIs(t, err, brkga.ErrInvalidParams)

	_, err = brkga.Run(g, brkga.Params{Population: 10, Elite: 5, Mutants: 5, EliteProb: 0.7}, rng.NewSeeded(1))
	require.ErrorIs(t, err, brkga.ErrInvalidParams)
}
