package chain

import "errors"

// ErrChainConditionViolated is returned by the checked constructor
// when some consecutive pair of boundary matrices fails
// B(n-1)*B(n) == 0, including the case where their shapes are
// incompatible for multiplication.
var ErrChainConditionViolated = errors.New("chain: chain condition violated")
