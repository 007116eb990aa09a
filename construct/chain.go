package construct

import (
	"github.com/JKural/mc-homology/algebra"
	"github.com/JKural/mc-homology/chain"
	"github.com/JKural/mc-homology/cubical"
	"github.com/JKural/mc-homology/matrix"
)

// boundarySignAt returns the sign assigned to the face at position i
// in a Simplex.Boundary() listing: the fixed pattern
// +1, -1, -1, +1 cycling with period 4, induced by emitting faces in
// top-then-bottom order per non-degenerate coordinate.
func boundarySignAt[T algebra.Ring[T]](i int) T {
	var zero T
	one := zero.One()
	switch i % 4 {
	case 0, 3:
		return one
	default:
		return one.Neg()
	}
}

// ChainComplexOver reads off a cubical complex's simplices, dimension
// by dimension in the order they were inserted, and assembles the
// boundary matrices B0, B1, ..., B(d-1) over carrier T. B0 has zero
// rows, |S0| columns; for k >= 1, Bk is |S(k-1)| x |Sk|, with column j
// holding the signed boundary of the k-simplex at index j, using the
// fixed top-then-bottom sign schedule.
//
// The column and row index assigned to each simplex is exactly
// cubical.Complex.SimplicesAt's enumeration order at that dimension,
// which is deterministic for a fixed sequence of Add/AddRecursive
// calls, so the resulting matrices (and the homology read off them)
// are reproducible across runs.
func ChainComplexOver[T algebra.Ring[T]](cc *cubical.Complex) chain.ChainComplex[T] {
	topDim := cc.Dimension()
	if topDim < 0 {
		return chain.NewUnchecked[T](nil)
	}

	levels := make([][]cubical.Simplex, topDim+1)
	indices := make([]map[string]int, topDim+1)
	for k := 0; k <= topDim; k++ {
		levels[k] = cc.SimplicesAt(k)
		idx := make(map[string]int, len(levels[k]))
		for j, s := range levels[k] {
			idx[simplexKey(s)] = j
		}
		indices[k] = idx
	}

	boundaries := make([]matrix.Matrix[T], topDim+1)
	boundaries[0] = matrix.Zero[T](0, len(levels[0]))
	for k := 1; k <= topDim; k++ {
		rows := len(levels[k-1])
		cols := len(levels[k])
		bk := matrix.Zero[T](rows, cols)
		for j, simplex := range levels[k] {
			for i, face := range simplex.Boundary() {
				row, ok := indices[k-1][simplexKey(face)]
				if !ok {
					continue
				}
				sign := boundarySignAt[T](i)
				existing, _ := bk.At(row, j)
				bk.Set(row, j, existing.Add(sign))
			}
		}
		boundaries[k] = bk
	}
	return chain.NewUnchecked(boundaries)
}

// simplexKey re-derives the canonical string a cubical.Simplex
// renders to, using its exported comparison surface: since
// Simplex does not export its internal key, this package keys
// on the String form instead, which is injective over the same
// coordinate data String renders from.
func simplexKey(s cubical.Simplex) string {
	return s.String()
}
