package matrix

import (
	"fmt"
	"strings"

	"github.com/JKural/mc-homology/algebra"
)

// Matrix is a dense nrows x ncols array of T, stored contiguously in
// row-major order. A zero-size matrix (nrows == 0 or ncols == 0) is
// permitted. T must be at least a Ring so that Zero, Identity and
// matrix multiplication are always available; algorithms that need
// more (Field, EuclideanDomain) take a Matrix[T] where T satisfies
// the stronger constraint, which automatically implies Ring[T].
type Matrix[T algebra.Ring[T]] struct {
	nrows, ncols int
	data         []T
}

// NewFromRowMajor builds a matrix from a flat, row-major slice of
// length nrows*ncols. It returns ErrShapeMismatch if the slice's
// length does not match.
func NewFromRowMajor[T algebra.Ring[T]](data []T, nrows, ncols int) (Matrix[T], error) {
	if len(data) != nrows*ncols {
		return Matrix[T]{}, ErrShapeMismatch
	}
	owned := make([]T, len(data))
	copy(owned, data)
	return Matrix[T]{nrows: nrows, ncols: ncols, data: owned}, nil
}

// Zero returns an nrows x ncols matrix of zeros.
func Zero[T algebra.Ring[T]](nrows, ncols int) Matrix[T] {
	var zero T
	data := make([]T, nrows*ncols)
	for i := range data {
		data[i] = zero.Zero()
	}
	return Matrix[T]{nrows: nrows, ncols: ncols, data: data}
}

// ZeroSquare returns the n x n zero matrix.
func ZeroSquare[T algebra.Ring[T]](n int) Matrix[T] {
	return Zero[T](n, n)
}

// Identity returns the n x n identity matrix.
func Identity[T algebra.Ring[T]](n int) Matrix[T] {
	m := ZeroSquare[T](n)
	var one T
	one = one.One()
	for i := 0; i < n; i++ {
		m.data[m.index(i, i)] = one
	}
	return m
}

// NRows returns the number of rows.
func (m Matrix[T]) NRows() int { return m.nrows }

// NCols returns the number of columns.
func (m Matrix[T]) NCols() int { return m.ncols }

func (m Matrix[T]) index(row, col int) int {
	return row*m.ncols + col
}

func (m Matrix[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.nrows && col >= 0 && col < m.ncols
}

// At returns the entry at (row, col), or ErrOutOfRange if the
// position is outside the matrix.
func (m Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if !m.inBounds(row, col) {
		return zero, ErrOutOfRange
	}
	return m.data[m.index(row, col)], nil
}

// Set writes v at (row, col), or returns ErrOutOfRange if the
// position is outside the matrix.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if !m.inBounds(row, col) {
		return ErrOutOfRange
	}
	m.data[m.index(row, col)] = v
	return nil
}

// Equal reports whether m and other have identical dimensions and
// component-wise equal entries.
func (m Matrix[T]) Equal(other Matrix[T]) bool {
	if m.nrows != other.nrows || m.ncols != other.ncols {
		return false
	}
	for i, v := range m.data {
		if !v.Equal(other.data[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of m.
func (m Matrix[T]) Clone() Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return Matrix[T]{nrows: m.nrows, ncols: m.ncols, data: data}
}

// Transpose returns a freshly allocated transpose of m.
func (m Matrix[T]) Transpose() Matrix[T] {
	t := Zero[T](m.ncols, m.nrows)
	for i := 0; i < m.nrows; i++ {
		for j := 0; j < m.ncols; j++ {
			t.data[t.index(j, i)] = m.data[m.index(i, j)]
		}
	}
	return t
}

// AddInPlace adds rhs into m, mutating m. It returns ErrShapeMismatch
// if the shapes differ.
func (m *Matrix[T]) AddInPlace(rhs Matrix[T]) error {
	if m.nrows != rhs.nrows || m.ncols != rhs.ncols {
		return ErrShapeMismatch
	}
	for i := range m.data {
		m.data[i] = m.data[i].Add(rhs.data[i])
	}
	return nil
}

// SubInPlace subtracts rhs from m, mutating m. It returns
// ErrShapeMismatch if the shapes differ.
func (m *Matrix[T]) SubInPlace(rhs Matrix[T]) error {
	if m.nrows != rhs.nrows || m.ncols != rhs.ncols {
		return ErrShapeMismatch
	}
	for i := range m.data {
		m.data[i] = m.data[i].Sub(rhs.data[i])
	}
	return nil
}

// Add returns a freshly allocated lhs + rhs.
func Add[T algebra.Ring[T]](lhs, rhs Matrix[T]) (Matrix[T], error) {
	out := lhs.Clone()
	if err := out.AddInPlace(rhs); err != nil {
		return Matrix[T]{}, err
	}
	return out, nil
}

// Sub returns a freshly allocated lhs - rhs.
func Sub[T algebra.Ring[T]](lhs, rhs Matrix[T]) (Matrix[T], error) {
	out := lhs.Clone()
	if err := out.SubInPlace(rhs); err != nil {
		return Matrix[T]{}, err
	}
	return out, nil
}

// Mul returns the standard matrix product lhs * rhs, computed with
// the usual triple loop. It returns ErrShapeMismatch when
// lhs.NCols() != rhs.NRows().
func Mul[T algebra.Ring[T]](lhs, rhs Matrix[T]) (Matrix[T], error) {
	if lhs.ncols != rhs.nrows {
		return Matrix[T]{}, ErrShapeMismatch
	}
	product := Zero[T](lhs.nrows, rhs.ncols)
	inner := lhs.ncols
	for i := 0; i < product.nrows; i++ {
		for j := 0; j < product.ncols; j++ {
			acc := product.data[product.index(i, j)]
			for k := 0; k < inner; k++ {
				acc = acc.Add(lhs.data[lhs.index(i, k)].Mul(rhs.data[rhs.index(k, j)]))
			}
			product.data[product.index(i, j)] = acc
		}
	}
	return product, nil
}

// IsZero reports whether every entry of m equals the carrier's
// additive identity.
func (m Matrix[T]) IsZero() bool {
	var zero T
	z := zero.Zero()
	for _, v := range m.data {
		if !v.Equal(z) {
			return false
		}
	}
	return true
}

// String renders the matrix as nested brackets, one row per line.
func (m Matrix[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < m.nrows; i++ {
		if i > 0 {
			b.WriteString(",\n ")
		}
		b.WriteString("[")
		for j := 0; j < m.ncols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.data[m.index(i, j)])
		}
		b.WriteString("]")
	}
	b.WriteString("]")
	return b.String()
}
