package algebra

import "github.com/JKural/mc-homology/numtheory"

// AdditiveGroup is the contract shared by every scalar carrier used in
// this module: a set with a commutative addition, an additive
// identity, and additive inverses.
//
// Implementations are expected to be value types satisfying, for all
// x, y, z of type T:
//
//  1. x.Add(y).Add(z) == x.Add(y.Add(z))
//  2. x.Add(x.Zero()) == x
//  3. x.Add(x.Neg()) == x.Zero()
//  4. x.Add(y) == y.Add(x)
type AdditiveGroup[T any] interface {
	// Add returns the sum of the receiver and other.
	Add(other T) T
	// Sub returns the receiver minus other.
	Sub(other T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Zero returns the additive identity. The receiver's value is
	// irrelevant; it exists only to pin down T without a separate
	// static-constructor mechanism, which Go's method sets lack.
	Zero() T
	// Equal reports whether the receiver and other denote the same
	// value.
	Equal(other T) bool
}

// Ring extends AdditiveGroup with a (not necessarily commutative)
// multiplication and a multiplicative identity.
type Ring[T any] interface {
	AdditiveGroup[T]
	// Mul returns the product of the receiver and other.
	Mul(other T) T
	// One returns the multiplicative identity.
	One() T
}

// CommutativeRing is a Ring whose multiplication is commutative.
//
// Go's generic type constraints already do the job the C++ source
// hands to a separate is_commutative_v<T> tag: every Int- and Zp[M]-
// shaped carrier defined in this package satisfies CommutativeRing,
// and any algorithm (such as Smith reduction) that requires
// commutativity simply asks for CommutativeRing in its type
// parameter list. There is no runtime tag to check.
type CommutativeRing[T any] interface {
	Ring[T]
}

// EuclideanDomain is a CommutativeRing with a Euclidean function and
// a division-with-remainder operation.
//
// For all x and non-zero y of type T:
//
//  1. x == x.Divide(y).Quotient.Mul(y).Add(x.Divide(y).Remainder)
//  2. x.EuclideanFunction() <= x.Mul(y).EuclideanFunction()
type EuclideanDomain[T any] interface {
	CommutativeRing[T]
	// EuclideanFunction returns a non-negative norm that is strictly
	// positive on non-zero values.
	EuclideanFunction() int
	// Divide performs Euclidean division of the receiver by other,
	// returning ErrDivisionByZero when other is the zero value.
	Divide(other T) (numtheory.DivResult[T], error)
}

// Field is a CommutativeRing in which every non-zero element has a
// multiplicative inverse.
type Field[T any] interface {
	CommutativeRing[T]
	// Quo returns the receiver divided by other, and
	// ErrDivisionByZero when other is the zero value.
	Quo(other T) (T, error)
}

// Ordered is satisfied by carriers with a total order, used by Smith
// reduction to normalize diagonal entries to be non-negative. Not
// every EuclideanDomain needs to implement it — Zp[M] does not, since
// "negative" is meaningless modulo a prime.
type Ordered[T any] interface {
	// Less reports whether the receiver is strictly smaller than
	// other.
	Less(other T) bool
}
