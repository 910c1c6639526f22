package libramsey_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ramsey-systems/goramsey/goramsey"
	"github.com/ramsey-systems/goramsey/libramsey"
)

func TestParsePattern(t *testing.T) {
	ps, err := libramsey.ParsePattern("B2:B8")
	require.NoError(t, err)
	require.Equal(t, goramsey.Books, ps.Kind)
	require.Equal(t, 2, ps.Size0)
	require.Equal(t, 8, ps.Size1)
	require.Equal(t, "B2:B8", ps.String())

	ps, err = libramsey.ParsePattern("W5:W7")
	require.NoError(t, err)
	require.Equal(t, goramsey.Wheels, ps.Kind)
	require.Equal(t, "W5:W7", ps.String())

	for _, bad := range []string{
		"", "B2", "B2:W5", "B2-B8", "B1:B8", "W4:W5", "X2:X3", "B2:B8:B9",
	} {
		_, err := libramsey.ParsePattern(bad)
		require.True(t, errors.Is(err, goramsey.ErrBadPattern), "%q: %v", bad, err)
	}
}

func TestParseGraphExpr(t *testing.T) {
	X, err := libramsey.ParseGraphExpr("1-2-3,1-3,5")
	require.NoError(t, err)
	defer X.Reclaim()

	require.Equal(t, 5, X.VtxCount())
	require.Equal(t, 3, X.NumEdges())
	require.True(t, X.HasEdge(0, 1))
	require.True(t, X.HasEdge(1, 2))
	require.True(t, X.HasEdge(0, 2))
	require.False(t, X.HasEdge(3, 4))

	_, err = libramsey.ParseGraphExpr("1-1")
	require.Error(t, err)
	_, err = libramsey.ParseGraphExpr("0-1")
	require.True(t, errors.Is(err, goramsey.ErrBadVtxID))
	_, err = libramsey.ParseGraphExpr("")
	require.Error(t, err)
}

func TestParseMatrixRoundTrip(t *testing.T) {
	X := mustParse(t, "1-2-3-4-5-1,2-5")
	defer X.Reclaim()

	var b strings.Builder
	X.WriteAsString(&b, goramsey.PrintOpts{Matrix: true})

	Y, err := libramsey.ParseMatrix(strings.NewReader(b.String()))
	require.NoError(t, err)
	defer Y.Reclaim()
	require.True(t, X.IsEqual(Y))
}

func TestParseMatrixRejectsBadInput(t *testing.T) {
	_, err := libramsey.ParseMatrix(strings.NewReader("0,1\n1,0,1\n"))
	require.Error(t, err) // ragged

	_, err = libramsey.ParseMatrix(strings.NewReader("0,1\n0,0\n"))
	require.Error(t, err) // asymmetric

	_, err = libramsey.ParseMatrix(strings.NewReader("1,0\n0,0\n"))
	require.Error(t, err) // self loop

	_, err = libramsey.ParseMatrix(strings.NewReader(""))
	require.Error(t, err)

	_, err = libramsey.ParseMatrix(strings.NewReader("0,2\n2,0\n"))
	require.Error(t, err) // not 0/1
}

func TestParseMatrixSkipsTrailingMetadata(t *testing.T) {
	in := "[[0,1],\n [1,0]]\n\nscore: 0\nsteps: 812\n"
	X, err := libramsey.ParseMatrix(strings.NewReader(in))
	require.NoError(t, err)
	defer X.Reclaim()
	require.Equal(t, 2, X.VtxCount())
	require.True(t, X.HasEdge(0, 1))
}
