package mtxio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sloanpr/profilereduce/mtxio"
)

const symmetricMtx = `%%MatrixMarket matrix coordinate real symmetric
%comment line
4 4 4
2 1 1.0
4 1 1.0
4 2 1.0
4 3 1.0
`

func TestLoad_SymmetricExpandsBothTriangles(t *testing.T) {
	g, err := mtxio.Load(strings.NewReader(symmetricMtx), false)
	require.NoError(t, err)
	require.Equal(t, 4, g.N)
	require.ElementsMatch(t, []int{1, 3}, g.Neighbors(0))
	require.ElementsMatch(t, []int{0, 3}, g.Neighbors(1))
	require.ElementsMatch(t, []int{3}, g.Neighbors(2))
	require.ElementsMatch(t, []int{0, 1, 2}, g.Neighbors(3))
}

func TestLoad_RejectsUpperTriangularEntryInSymmetric(t *testing.T) {
	bad := `%%MatrixMarket matrix coordinate real symmetric
3 3 1
1 2 1.0
`
	_, err := mtxio.Load(strings.NewReader(bad), false)
	require.ErrorIs(t, err, mtxio.ErrUpperTriangular)
}

func TestLoad_RejectsNonSquare(t *testing.T) {
	bad := `%%MatrixMarket matrix coordinate real general
2 3 1
1 1 1.0
`
	_, err := mtxio.Load(strings.NewReader(bad), false)
	require.ErrorIs(t, err, mtxio.ErrNotSquare)
}

func TestLoad_DropsDiagonalEntries(t *testing.T) {
	withDiag := `%%MatrixMarket matrix coordinate real general
3 3 3
1 1 1.0
2 1 1.0
1 2 1.0
`
	g, err := mtxio.Load(strings.NewReader(withDiag), false)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1}, g.Neighbors(0))
}

func TestLoad_RejectsEntryCountMismatch(t *testing.T) {
	bad := `%%MatrixMarket matrix coordinate real general
3 3 2
1 2 1.0
`
	_, err := mtxio.Load(strings.NewReader(bad), false)
	require.ErrorIs(t, err, mtxio.ErrEntryCountMismatch)
}

func TestLoad_ForceSymmetricMirrorsGeneralMatrix(t *testing.T) {
	general := `%%MatrixMarket matrix coordinate real general
3 3 1
1 2 1.0
`
	g, err := mtxio.Load(strings.NewReader(general), true)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1}, g.Neighbors(0))
	require.ElementsMatch(t, []int{0}, g.Neighbors(1))
}
