package algebra

import "errors"

// ErrDivisionByZero is returned by Field division and EuclideanDomain
// Divide when the divisor is the additive identity.
var ErrDivisionByZero = errors.New("algebra: division by zero")
