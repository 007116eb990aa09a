package cubical

import "errors"

// ErrEmptyIntervalList is returned when constructing a Simplex
// from an empty interval sequence.
var ErrEmptyIntervalList = errors.New("cubical: empty interval list")

// ErrAmbientDimensionMismatch is returned when adding a simplex whose
// ambient dimension differs from the complex's established ambient
// dimension.
var ErrAmbientDimensionMismatch = errors.New("cubical: ambient dimension mismatch")
