package algebra

import (
	"fmt"

	"github.com/JKural/mc-homology/numtheory"
)

// Int wraps a machine-width signed integer so it can satisfy
// EuclideanDomain and Ordered. Its Euclidean function is the absolute
// value.
type Int int

// NewInt constructs an Int from a plain int.
func NewInt(k int) Int { return Int(k) }

// Value returns the underlying int.
func (z Int) Value() int { return int(z) }

func (z Int) Zero() Int { return Int(0) }
func (z Int) One() Int  { return Int(1) }

func (z Int) Add(other Int) Int { return z + other }
func (z Int) Sub(other Int) Int { return z - other }
func (z Int) Neg() Int          { return -z }
func (z Int) Mul(other Int) Int { return z * other }

func (z Int) Equal(other Int) bool { return z == other }
func (z Int) Less(other Int) bool  { return z < other }

// EuclideanFunction returns |z|.
func (z Int) EuclideanFunction() int {
	if z < 0 {
		return int(-z)
	}
	return int(z)
}

// Divide performs Euclidean division, returning the unique (q, r)
// with z == q*other + r and 0 <= r < |other|.
func (z Int) Divide(other Int) (numtheory.DivResult[Int], error) {
	res, err := numtheory.Divide(int(z), int(other))
	if err != nil {
		return numtheory.DivResult[Int]{}, ErrDivisionByZero
	}
	return numtheory.DivResult[Int]{
		Quotient:  Int(res.Quotient),
		Remainder: Int(res.Remainder),
	}, nil
}

// String renders the integer in decimal.
func (z Int) String() string {
	return fmt.Sprintf("%d", int(z))
}

var (
	_ EuclideanDomain[Int] = Int(0)
	_ Ordered[Int]         = Int(0)
)
