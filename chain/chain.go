package chain

import (
	"github.com/JKural/mc-homology/algebra"
	"github.com/JKural/mc-homology/matrix"
)

// ChainComplex is an ordered sequence of boundary matrices
// B0, B1, ..., B(d-1). By convention Bn maps n-dimensional chains to
// (n-1)-dimensional chains, so B0 has zero rows and
// ncols(Bn) == nrows(B(n+1)) for every consecutive pair.
type ChainComplex[T algebra.Ring[T]] struct {
	boundaries []matrix.Matrix[T]
}

// New constructs a ChainComplex and validates the chain condition
// B(n-1)*Bn == 0 for every consecutive pair, including the degenerate
// case of fewer than two boundary matrices (trivially satisfied). It
// returns ErrChainConditionViolated on the first pair that fails,
// including a pair whose shapes are incompatible for multiplication;
// the returned error does not wrap matrix.ErrShapeMismatch.
func New[T algebra.Ring[T]](boundaries []matrix.Matrix[T]) (ChainComplex[T], error) {
	cc := NewUnchecked(boundaries)
	if !cc.checkBoundaryCorrectness() {
		return ChainComplex[T]{}, ErrChainConditionViolated
	}
	return cc, nil
}

// NewUnchecked constructs a ChainComplex without validating the chain
// condition. Use only when the boundary sequence is already known to
// be correct by construction, such as the output of
// construct.ChainComplexOver.
func NewUnchecked[T algebra.Ring[T]](boundaries []matrix.Matrix[T]) ChainComplex[T] {
	owned := make([]matrix.Matrix[T], len(boundaries))
	copy(owned, boundaries)
	return ChainComplex[T]{boundaries: owned}
}

func (cc ChainComplex[T]) checkBoundaryCorrectness() bool {
	if len(cc.boundaries) < 2 {
		return true
	}
	for n := 0; n < len(cc.boundaries)-1; n++ {
		product, err := matrix.Mul(cc.boundaries[n], cc.boundaries[n+1])
		if err != nil {
			return false
		}
		if !product.IsZero() {
			return false
		}
	}
	return true
}

// Dimension returns the number of boundary matrices in the complex.
func (cc ChainComplex[T]) Dimension() int { return len(cc.boundaries) }

// Boundary returns the boundary operator Bn, or
// matrix.ErrOutOfRange if n is out of range.
func (cc ChainComplex[T]) Boundary(n int) (matrix.Matrix[T], error) {
	if n < 0 || n >= len(cc.boundaries) {
		return matrix.Matrix[T]{}, matrix.ErrOutOfRange
	}
	return cc.boundaries[n], nil
}

// Boundaries returns the full sequence of boundary operators. The
// slice is owned by the caller; mutating it does not affect cc.
func (cc ChainComplex[T]) Boundaries() []matrix.Matrix[T] {
	out := make([]matrix.Matrix[T], len(cc.boundaries))
	copy(out, cc.boundaries)
	return out
}
