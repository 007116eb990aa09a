package numtheory

// DivResult is the canonical output of Euclidean division: for
// Divide(a, b) it holds the unique (q, r) with a = q*b + r and
// 0 <= r < |b|.
type DivResult[T any] struct {
	Quotient  T
	Remainder T
}

// IsPrime reports whether n is a prime number. It returns false for
// every n < 2 and trial-divides up to sqrt(n) otherwise.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Divide performs Euclidean division of a by b, returning the unique
// quotient and remainder satisfying a = q*b + r and 0 <= r < |b|.
// It returns ErrDivisionByZero when b is zero.
//
// Go's native % and / truncate toward zero, so a negative dividend
// can produce a negative remainder; Divide corrects the naive
// quotient whenever that happens.
func Divide(a, b int) (DivResult[int], error) {
	if b == 0 {
		return DivResult[int]{}, ErrDivisionByZero
	}
	q := a / b
	r := a % b
	if r < 0 {
		if b > 0 {
			q--
			r += b
		} else {
			q++
			r -= b
		}
	}
	return DivResult[int]{Quotient: q, Remainder: r}, nil
}

// Modulo returns Divide(a, n).Remainder, i.e. the representative of a
// modulo n in [0, |n|). It returns ErrDivisionByZero when n is zero.
func Modulo(a, n int) (int, error) {
	res, err := Divide(a, n)
	if err != nil {
		return 0, err
	}
	return res.Remainder, nil
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y == g and g >= 0,
// where g is the greatest common divisor of a and b. The recurrence
// runs on the absolute values of a and b; the sign flipped away is
// folded back into the corresponding coefficient before returning, so
// the identity holds against the original, unnormalized a and b.
func ExtendedGCD(a, b int) (g, x, y int) {
	negA, negB := a < 0, b < 0
	if negA {
		a = -a
	}
	if negB {
		b = -b
	}
	x0, x1 := 1, 0
	y0, y1 := 0, 1
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	if negA {
		x0 = -x0
	}
	if negB {
		y0 = -y0
	}
	return a, x0, y0
}

// InverseMod returns the multiplicative inverse of a modulo n, and
// true, when gcd(a, n) == 1. Otherwise it returns (0, false).
func InverseMod(a, n int) (int, bool) {
	g, x, _ := ExtendedGCD(a, n)
	if g != 1 {
		return 0, false
	}
	inv, _ := Modulo(x, n)
	return inv, true
}
