package algebra_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/JKural/mc-homology/algebra"
)

func TestIntEuclideanDivision(t *testing.T) {
	res, err := algebra.NewInt(-7).Divide(algebra.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, algebra.NewInt(-3), res.Quotient)
	require.Equal(t, algebra.NewInt(2), res.Remainder)
}

func TestIntDivisionByZero(t *testing.T) {
	_, err := algebra.NewInt(5).Divide(algebra.NewInt(0))
	require.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestZpCanonicalResidue(t *testing.T) {
	z := algebra.NewZp[algebra.Z13](-1)
	require.Equal(t, 12, z.Residue())
}

func TestZpInverse(t *testing.T) {
	z := algebra.NewZp[algebra.Z13](5)
	inv, ok := z.Inverse()
	require.True(t, ok)
	require.Equal(t, algebra.NewZp[algebra.Z13](1), z.Mul(inv))

	zero := algebra.NewZp[algebra.Z13](0)
	_, ok = zero.Inverse()
	require.False(t, ok)
}

func TestZ2BitArithmetic(t *testing.T) {
	one := algebra.NewZp[algebra.Z2](1)
	zero := algebra.NewZp[algebra.Z2](0)
	require.True(t, one.Add(one).Equal(zero))  // 1 xor 1 = 0
	require.True(t, one.Mul(one).Equal(one))   // 1 and 1 = 1
	require.True(t, one.Neg().Equal(one))      // self-inverse
}

// TestFieldAxiomsZ13Property checks the field axioms for Zp[Z13] over
// randomly generated residues.
func TestFieldAxiomsZ13Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	residue := gen.IntRange(-100, 100).Map(func(n int) algebra.Zp[algebra.Z13] {
		return algebra.NewZp[algebra.Z13](n)
	})

	properties.Property("addition is commutative", prop.ForAll(
		func(x, y algebra.Zp[algebra.Z13]) bool {
			return x.Add(y).Equal(y.Add(x))
		},
		residue, residue,
	))

	properties.Property("x + (-x) == 0", prop.ForAll(
		func(x algebra.Zp[algebra.Z13]) bool {
			return x.Add(x.Neg()).Equal(x.Zero())
		},
		residue,
	))

	properties.Property("non-zero elements have a multiplicative inverse", prop.ForAll(
		func(x algebra.Zp[algebra.Z13]) bool {
			if x.Equal(x.Zero()) {
				return true
			}
			inv, ok := x.Inverse()
			return ok && x.Mul(inv).Equal(x.One())
		},
		residue,
	))

	properties.TestingRun(t)
}
