package reduction

import (
	"github.com/JKural/mc-homology/algebra"
	"github.com/JKural/mc-homology/matrix"
)

// RowEchelonInPlace transforms m into a row-echelon form (not
// necessarily reduced) in place and returns the rank, i.e. the
// number of non-zero rows.
//
// For each column j, left to right, it locates the topmost
// candidate pivot at or below the current pivot row, swaps it into
// place, and eliminates every entry below it using exact field
// arithmetic. Because the arithmetic is exact, pivot selection never
// needs to consider magnitude — the first non-zero candidate found is
// used.
func RowEchelonInPlace[T algebra.Field[T]](m *matrix.Matrix[T]) int {
	i := 0
	for j := 0; j < m.NCols(); j++ {
		k, found := firstNonZeroAtOrBelow(m, i, j)
		if !found {
			continue
		}
		if k != i {
			swapRowsFrom(m, i, k, j)
		}
		for kp := i + 1; kp < m.NRows(); kp++ {
			pivot, _ := m.At(i, j)
			entry, _ := m.At(kp, j)
			mu, _ := entry.Quo(pivot)
			mu = mu.Neg()
			addScaledRowFrom(m, kp, i, mu, j)
		}
		i++
	}
	return i
}

// RowEchelonFormResult holds the outcome of a non-mutating call to
// RowEchelon.
type RowEchelonFormResult[T algebra.Field[T]] struct {
	Form      matrix.Matrix[T]
	NonZeroRows int
}

// RowEchelon returns a row-echelon form of m (leaving m untouched)
// together with its rank.
func RowEchelon[T algebra.Field[T]](m matrix.Matrix[T]) RowEchelonFormResult[T] {
	clone := m.Clone()
	rank := RowEchelonInPlace(&clone)
	return RowEchelonFormResult[T]{Form: clone, NonZeroRows: rank}
}

// Rank returns the rank of m over its field of coefficients, i.e. the
// number of non-zero rows after row-echelon reduction.
func Rank[T algebra.Field[T]](m matrix.Matrix[T]) int {
	clone := m.Clone()
	return RowEchelonInPlace(&clone)
}

func firstNonZeroAtOrBelow[T algebra.Field[T]](m *matrix.Matrix[T], i, j int) (int, bool) {
	var zero T
	z := zero.Zero()
	for k := i; k < m.NRows(); k++ {
		v, _ := m.At(k, j)
		if !v.Equal(z) {
			return k, true
		}
	}
	return 0, false
}

// swapRowsFrom swaps rows r1 and r2, restricted to columns >= fromCol.
func swapRowsFrom[T algebra.Field[T]](m *matrix.Matrix[T], r1, r2, fromCol int) {
	for c := fromCol; c < m.NCols(); c++ {
		v1, _ := m.At(r1, c)
		v2, _ := m.At(r2, c)
		_ = m.Set(r1, c, v2)
		_ = m.Set(r2, c, v1)
	}
}

// addScaledRowFrom replaces row dst with row dst + mu*row src,
// restricted to columns >= fromCol.
func addScaledRowFrom[T algebra.Field[T]](m *matrix.Matrix[T], dst, src int, mu T, fromCol int) {
	for c := fromCol; c < m.NCols(); c++ {
		d, _ := m.At(dst, c)
		s, _ := m.At(src, c)
		_ = m.Set(dst, c, d.Add(mu.Mul(s)))
	}
}
