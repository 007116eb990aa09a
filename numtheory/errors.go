package numtheory

import "errors"

// ErrDivisionByZero is returned by Divide and Modulo when the divisor
// is zero.
var ErrDivisionByZero = errors.New("numtheory: division by zero")
