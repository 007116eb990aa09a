package cubical_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JKural/mc-homology/cubical"
)

func TestNewRejectsEmptyIntervalList(t *testing.T) {
	_, err := cubical.New(nil)
	require.ErrorIs(t, err, cubical.ErrEmptyIntervalList)
}

func TestPointSimplexHasDimensionZero(t *testing.T) {
	p := cubical.PointSimplex(3)
	require.Equal(t, 0, p.Dimension())
	require.Equal(t, 1, p.AmbientDimension())
	require.Empty(t, p.Boundary())
}

func TestIntervalSimplexBoundary(t *testing.T) {
	edge := cubical.IntervalSimplex(2)
	require.Equal(t, 1, edge.Dimension())

	faces := edge.Boundary()
	require.Len(t, faces, 2)
	require.True(t, faces[0].Equal(cubical.PointSimplex(3)))
	require.True(t, faces[1].Equal(cubical.PointSimplex(2)))
}

// TestSquareBoundaryOrderAndLength covers a 2-cube built as the
// product of two unit intervals: its boundary must have four edges,
// in top-then-bottom-per-coordinate order, forming a strictly
// decreasing sequence under Compare.
func TestSquareBoundaryOrderAndLength(t *testing.T) {
	square := cubical.Product(cubical.IntervalSimplex(0), cubical.IntervalSimplex(0))
	require.Equal(t, 2, square.Dimension())

	faces := square.Boundary()
	require.Len(t, faces, 4)
	for _, f := range faces {
		require.Equal(t, 1, f.Dimension())
	}
	for i := 1; i < len(faces); i++ {
		require.Negative(t, faces[i].Compare(faces[i-1]))
	}
}

func TestCompareOrdersByDimensionFirst(t *testing.T) {
	p := cubical.PointSimplex(0)
	e := cubical.IntervalSimplex(0)
	require.Negative(t, p.Compare(e))
	require.Positive(t, e.Compare(p))
}

func TestProductAddsDimensions(t *testing.T) {
	edge := cubical.IntervalSimplex(0)
	cube := cubical.Product(edge, cubical.Product(edge, edge))
	require.Equal(t, 3, cube.Dimension())
	require.Equal(t, 3, cube.AmbientDimension())
}
