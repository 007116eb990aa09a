package matrix

import "errors"

// ErrShapeMismatch is returned when two matrices with incompatible
// dimensions are combined (addition/subtraction between unequal
// shapes, multiplication with mismatched inner dimension, or
// construction with a data slice of the wrong length).
var ErrShapeMismatch = errors.New("matrix: shape mismatch")

// ErrOutOfRange is returned by indexed access when a row or column is
// outside [0, nrows) x [0, ncols).
var ErrOutOfRange = errors.New("matrix: index out of range")
