package rkey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sloanpr/profilereduce/rkey"
	"github.com/sloanpr/profilereduce/rng"
)

func TestDecode_SortsAscendingIntoRanks(t *testing.T) {
	rk := []float64{0.5, 0.1, 0.9, 0.3}
	labels := rkey.Decode(rk)
	// rk[1]=0.1 is smallest -> label 0; rk[3]=0.3 -> label 1;
	// rk[0]=0.5 -> label 2; rk[2]=0.9 -> label 3.
	require.Equal(t, []int{2, 0, 3, 1}, labels)
}

func TestEncodeDecode_RoundTrips(t *testing.T) {
	labels := []int{2, 0, 3, 1}
	r := rng.NewSeeded(5)
	rk := rkey.Encode(labels, r.Float01)
	got := rkey.Decode(rk)
	require.Equal(t, labels, got)
}

func TestEncodeDecode_RoundTripsForManyPermutations(t *testing.T) {
	r := rng.NewSeeded(77)
	perms := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{1, 3, 0, 4, 2},
	}
	for _, labels := range perms {
		rk := rkey.Encode(labels, r.Float01)
		require.Equal(t, labels, rkey.Decode(rk))
	}
}
