package reduction

import (
	"github.com/JKural/mc-homology/algebra"
	"github.com/JKural/mc-homology/matrix"
)

// SmithInPlace transforms m in place into a diagonal form, with all
// off-diagonal entries zero and the non-zero diagonal entries leading.
// It returns the number of non-zero diagonal entries. An earlier pivot
// is never revisited once k advances, so the leading diagonal entries
// do not necessarily divide one another: diag(2, 3) is returned as is.
//
// For each leading index k it repeatedly (1) finds the entry of
// minimum Euclidean function in the submatrix rooted at (k, k) and
// swaps it to (k, k), then (2) clears the rest of column k and row k
// using exact division. Each time that clearing leaves a non-zero
// remainder, the next pivot search finds something with a strictly
// smaller Euclidean function, so the inner loop terminates after
// finitely many iterations. If R has a total order (Int does; Zp
// does not), negative diagonal entries are flipped to non-negative by
// negating their row once the diagonal is complete.
func SmithInPlace[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T]) int {
	limit := m.NRows()
	if m.NCols() < limit {
		limit = m.NCols()
	}

	k := 0
	for k < limit {
		pi, pj, found := minPivotInSubmatrix(m, k)
		if !found {
			break
		}
		if pi != k {
			swapRows(m, pi, k)
		}
		if pj != k {
			swapCols(m, pj, k)
		}
		colClean := clearColumnBelowPivot(m, k)
		rowClean := clearRowRightOfPivot(m, k)
		if colClean && rowClean {
			k++
		}
	}

	normalizeDiagonalSigns(m, k)
	return k
}

// SmithFormResult holds the outcome of a non-mutating call to Smith.
type SmithFormResult[T algebra.EuclideanDomain[T]] struct {
	Form         matrix.Matrix[T]
	NonZeroDiagonal int
}

// Smith returns a Smith normal form of m (leaving m untouched)
// together with the number of non-zero diagonal entries.
func Smith[T algebra.EuclideanDomain[T]](m matrix.Matrix[T]) SmithFormResult[T] {
	clone := m.Clone()
	k := SmithInPlace(&clone)
	return SmithFormResult[T]{Form: clone, NonZeroDiagonal: k}
}

// minPivotInSubmatrix scans the submatrix rooted at (k, k) row-major
// for the non-zero entry with the smallest Euclidean function,
// breaking ties by the earliest position scanned. It reports
// found == false when the submatrix is entirely zero.
func minPivotInSubmatrix[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T], k int) (pi, pj int, found bool) {
	var zero T
	z := zero.Zero()
	best := -1
	for i := k; i < m.NRows(); i++ {
		for j := k; j < m.NCols(); j++ {
			v, _ := m.At(i, j)
			if v.Equal(z) {
				continue
			}
			f := v.EuclideanFunction()
			if !found || f < best {
				pi, pj, found, best = i, j, true, f
			}
		}
	}
	return pi, pj, found
}

func swapRows[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T], r1, r2 int) {
	for c := 0; c < m.NCols(); c++ {
		v1, _ := m.At(r1, c)
		v2, _ := m.At(r2, c)
		_ = m.Set(r1, c, v2)
		_ = m.Set(r2, c, v1)
	}
}

func swapCols[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T], c1, c2 int) {
	for r := 0; r < m.NRows(); r++ {
		v1, _ := m.At(r, c1)
		v2, _ := m.At(r, c2)
		_ = m.Set(r, c1, v2)
		_ = m.Set(r, c2, v1)
	}
}

// clearColumnBelowPivot zeroes out column k below the pivot (k, k)
// using exact Euclidean division, and reports whether every entry
// below the pivot was already a multiple of it (i.e. no non-zero
// remainder was produced).
func clearColumnBelowPivot[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T], k int) bool {
	pivot, _ := m.At(k, k)
	clean := true
	var zero T
	z := zero.Zero()
	for i := k + 1; i < m.NRows(); i++ {
		entry, _ := m.At(i, k)
		res, _ := entry.Divide(pivot)
		if !res.Remainder.Equal(z) {
			clean = false
		}
		subtractScaledRow(m, i, k, res.Quotient, k)
	}
	return clean
}

// clearRowRightOfPivot is the column-wise mirror of
// clearColumnBelowPivot.
func clearRowRightOfPivot[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T], k int) bool {
	pivot, _ := m.At(k, k)
	clean := true
	var zero T
	z := zero.Zero()
	for j := k + 1; j < m.NCols(); j++ {
		entry, _ := m.At(k, j)
		res, _ := entry.Divide(pivot)
		if !res.Remainder.Equal(z) {
			clean = false
		}
		subtractScaledCol(m, j, k, res.Quotient, k)
	}
	return clean
}

// subtractScaledRow replaces row dst with row dst - mult*row src,
// restricted to columns >= fromCol.
func subtractScaledRow[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T], dst, src int, mult T, fromCol int) {
	for c := fromCol; c < m.NCols(); c++ {
		d, _ := m.At(dst, c)
		s, _ := m.At(src, c)
		_ = m.Set(dst, c, d.Sub(mult.Mul(s)))
	}
}

// subtractScaledCol replaces column dst with column dst - mult*column
// src, restricted to rows >= fromRow.
func subtractScaledCol[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T], dst, src int, mult T, fromRow int) {
	for r := fromRow; r < m.NRows(); r++ {
		d, _ := m.At(r, dst)
		s, _ := m.At(r, src)
		_ = m.Set(r, dst, d.Sub(mult.Mul(s)))
	}
}

// normalizeDiagonalSigns flips the sign of every negative entry among
// the first count diagonal entries, when T has a total order. Types
// without one (such as Zp[M]) are left untouched.
func normalizeDiagonalSigns[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T], count int) {
	var zero T
	if _, ok := any(zero).(algebra.Ordered[T]); !ok {
		return
	}
	for i := 0; i < count; i++ {
		v, _ := m.At(i, i)
		ord := any(v).(algebra.Ordered[T])
		if ord.Less(v.Zero()) {
			negateRow(m, i)
		}
	}
}

func negateRow[T algebra.EuclideanDomain[T]](m *matrix.Matrix[T], row int) {
	for c := 0; c < m.NCols(); c++ {
		v, _ := m.At(row, c)
		_ = m.Set(row, c, v.Neg())
	}
}
