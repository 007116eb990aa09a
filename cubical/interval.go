package cubical

import "fmt"

// BasicInterval is either a degenerate interval [a] (a point) or a
// unit interval [a, a+1]. It is a plain comparable value: two basic
// intervals are equal exactly when their fields match, so Go's
// built-in == already gives the equality the C++ source implements
// by hand.
type BasicInterval struct {
	left int
	full bool
}

// Point returns the degenerate interval [p].
func Point(p int) BasicInterval { return BasicInterval{left: p} }

// Interval returns the unit interval [left, left+1].
func Interval(left int) BasicInterval { return BasicInterval{left: left, full: true} }

// Left returns the interval's left endpoint.
func (i BasicInterval) Left() int { return i.left }

// Right returns the interval's right endpoint: left+1 if non-trivial,
// left otherwise.
func (i BasicInterval) Right() int {
	if i.full {
		return i.left + 1
	}
	return i.left
}

// IsTrivial reports whether the interval is a degenerate point.
func (i BasicInterval) IsTrivial() bool { return !i.full }

// String renders the interval as "[a]" or "[a,a+1]".
func (i BasicInterval) String() string {
	if i.full {
		return fmt.Sprintf("[%d,%d]", i.left, i.Right())
	}
	return fmt.Sprintf("[%d]", i.left)
}

// compareIntervals orders two basic intervals on a single coordinate:
// a non-trivial interval is less than any point, and two intervals of
// the same kind compare by their left endpoint.
func compareIntervals(a, b BasicInterval) int {
	if a.full && !b.full {
		return -1
	}
	if !a.full && b.full {
		return 1
	}
	switch {
	case a.left < b.left:
		return -1
	case a.left > b.left:
		return 1
	default:
		return 0
	}
}
