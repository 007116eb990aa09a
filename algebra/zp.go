package algebra

import (
	"fmt"

	"github.com/JKural/mc-homology/numtheory"
)

// Modulus is implemented by zero-size "witness" types that pin a
// prime P at compile time. Go has no const generics, so Zp[M] plays
// the role that the C++ source's Zp<P> template parameter plays:
// instantiating Zp with a different witness type yields a distinct,
// monomorphised type with no runtime branch on which prime is active.
type Modulus interface {
	// P returns the prime modulus. Implementations must return a
	// prime greater than or equal to 2 and must be safe to call on
	// the zero value of the witness type.
	P() int
}

// Z2, Z3, Z5, Z7 and Z13 are ready-made modulus witnesses for the
// primes this module's tests and examples exercise. Callers needing a
// different prime define their own zero-size witness type.
type (
	Z2  struct{}
	Z3  struct{}
	Z5  struct{}
	Z7  struct{}
	Z13 struct{}
)

func (Z2) P() int  { return 2 }
func (Z3) P() int  { return 3 }
func (Z5) P() int  { return 5 }
func (Z7) P() int  { return 7 }
func (Z13) P() int { return 13 }

// Zp is the field of integers modulo the prime named by M, represented
// by the canonical residue in [0, M.P()).
type Zp[M Modulus] struct {
	v int
}

// NewZp constructs the residue of n modulo M.P(). n may be negative or
// larger than the modulus.
func NewZp[M Modulus](n int) Zp[M] {
	var m M
	p := m.P()
	r := n % p
	if r < 0 {
		r += p
	}
	return Zp[M]{v: r}
}

// Residue returns the canonical representative in [0, P).
func (z Zp[M]) Residue() int { return z.v }

func (z Zp[M]) modulus() int {
	var m M
	return m.P()
}

func (z Zp[M]) Zero() Zp[M] { return Zp[M]{v: 0} }
func (z Zp[M]) One() Zp[M]  { return Zp[M]{v: 1 % z.modulus()} }

// Add returns z+other mod P. For P == 2 this degenerates to XOR on
// the underlying bit.
func (z Zp[M]) Add(other Zp[M]) Zp[M] {
	p := z.modulus()
	if p == 2 {
		return Zp[M]{v: z.v ^ other.v}
	}
	return Zp[M]{v: (z.v + other.v) % p}
}

// Sub returns z-other mod P.
func (z Zp[M]) Sub(other Zp[M]) Zp[M] {
	return z.Add(other.Neg())
}

// Neg returns -z mod P. For P == 2 a residue is its own negation.
func (z Zp[M]) Neg() Zp[M] {
	if z.v == 0 {
		return z
	}
	p := z.modulus()
	if p == 2 {
		return z
	}
	return Zp[M]{v: p - z.v}
}

// Mul returns z*other mod P. For P == 2 this degenerates to AND on
// the underlying bit.
func (z Zp[M]) Mul(other Zp[M]) Zp[M] {
	p := z.modulus()
	if p == 2 {
		return Zp[M]{v: z.v & other.v}
	}
	return Zp[M]{v: (z.v * other.v) % p}
}

func (z Zp[M]) Equal(other Zp[M]) bool { return z.v == other.v }

// EuclideanFunction is 1 for every non-zero residue and 0 for zero,
// matching a field's trivial Euclidean norm.
func (z Zp[M]) EuclideanFunction() int {
	if z.v == 0 {
		return 0
	}
	return 1
}

// Inverse returns the multiplicative inverse of z and true, or the
// zero value and false when z is zero.
func (z Zp[M]) Inverse() (Zp[M], bool) {
	if z.v == 0 {
		return Zp[M]{}, false
	}
	inv, ok := numtheory.InverseMod(z.v, z.modulus())
	if !ok {
		return Zp[M]{}, false
	}
	return Zp[M]{v: inv}, true
}

// Quo returns z/other, or ErrDivisionByZero when other is zero.
func (z Zp[M]) Quo(other Zp[M]) (Zp[M], error) {
	inv, ok := other.Inverse()
	if !ok {
		return Zp[M]{}, ErrDivisionByZero
	}
	return z.Mul(inv), nil
}

// Divide satisfies EuclideanDomain: since Zp[M] is a field, division
// is always exact and the remainder is always zero.
func (z Zp[M]) Divide(other Zp[M]) (numtheory.DivResult[Zp[M]], error) {
	q, err := z.Quo(other)
	if err != nil {
		return numtheory.DivResult[Zp[M]]{}, err
	}
	return numtheory.DivResult[Zp[M]]{Quotient: q, Remainder: z.Zero()}, nil
}

// Bit reports the residue as a boolean; only meaningful when M is Z2.
func (z Zp[M]) Bit() bool { return z.v != 0 }

// String renders the residue in decimal.
func (z Zp[M]) String() string {
	return fmt.Sprintf("%d", z.v)
}

var (
	_ Field[Zp[Z2]] = Zp[Z2]{}
)
