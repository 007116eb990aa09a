package chain

import (
	"github.com/JKural/mc-homology/algebra"
	"github.com/JKural/mc-homology/reduction"
)

// Homology is the result of a homology computation: one Betti number
// and one (possibly empty) torsion list per dimension, ordered from
// dimension 0 up to the complex's top dimension. torsion[n] holds the
// non-unit invariant factors of the torsion subgroup of H_n; it is
// always empty for field coefficients.
type Homology[T algebra.Ring[T]] struct {
	BettiNumbers []int
	Torsion      [][]T
}

// HomologyField computes the homology of cc over a field, using only
// ranks from row-echelon reduction: betti[n] = nullity(Bn) -
// rank(B(n+1)), with rank(B_d) := 0 by convention at the top.
func HomologyField[T algebra.Field[T]](cc ChainComplex[T]) Homology[T] {
	boundaries := cc.boundaries
	d := len(boundaries)
	betti := make([]int, d)
	torsion := make([][]T, d)

	prevRank := 0
	for k := d; k > 0; k-- {
		n := k - 1
		b := boundaries[n]
		rank := reduction.Rank(b)
		nullity := b.NCols() - rank
		betti[n] = nullity - prevRank
		prevRank = rank
	}
	return Homology[T]{BettiNumbers: betti, Torsion: torsion}
}

// HomologyEuclidean computes the homology of cc over a Euclidean
// domain, using Smith normal form to recover both ranks and torsion.
// For each dimension n (processed top-down) it reduces Bn to Smith
// form, splits its non-zero diagonal into a leading run of units
// (Euclidean function 1) and a trailing run of non-unit invariant
// factors, and folds the previous dimension's split into this
// dimension's Betti number and this dimension's torsion list:
//
//	betti[n]   = nullity(Bn) - units(B(n+1)) - |nonUnits(B(n+1))|
//	torsion[n] = nonUnits(B(n+1))
//
// with units(B_d) := 0 and nonUnits(B_d) := [] at the top.
func HomologyEuclidean[T algebra.EuclideanDomain[T]](cc ChainComplex[T]) Homology[T] {
	boundaries := cc.boundaries
	d := len(boundaries)
	betti := make([]int, d)
	torsion := make([][]T, d)

	prevUnits := 0
	var prevNonUnits []T
	for k := d; k > 0; k-- {
		n := k - 1
		b := boundaries[n]
		result := reduction.Smith(b)
		rank := result.NonZeroDiagonal
		nullity := b.NCols() - rank

		firstNonUnit := rank
		for i := 0; i < rank; i++ {
			v, _ := result.Form.At(i, i)
			if v.EuclideanFunction() != 1 {
				firstNonUnit = i
				break
			}
		}
		nonUnits := make([]T, 0, rank-firstNonUnit)
		for i := firstNonUnit; i < rank; i++ {
			v, _ := result.Form.At(i, i)
			nonUnits = append(nonUnits, v)
		}
		units := rank - len(nonUnits)

		betti[n] = nullity - prevUnits - len(prevNonUnits)
		torsion[n] = prevNonUnits

		prevUnits = units
		prevNonUnits = nonUnits
	}
	return Homology[T]{BettiNumbers: betti, Torsion: torsion}
}
