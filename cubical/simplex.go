package cubical

import (
	"fmt"
	"strings"
)

// Simplex is a non-empty, ordered sequence of basic intervals:
// a product of intervals and points along each ambient coordinate.
// Its ambient dimension is the number of coordinates; its topological
// dimension is the number of non-degenerate (unit-interval)
// coordinates.
type Simplex struct {
	intervals []BasicInterval
	dim       int
}

// New builds a Simplex from a non-empty sequence of basic
// intervals. It returns ErrEmptyIntervalList if intervals is empty.
func New(intervals []BasicInterval) (Simplex, error) {
	if len(intervals) == 0 {
		return Simplex{}, ErrEmptyIntervalList
	}
	owned := make([]BasicInterval, len(intervals))
	copy(owned, intervals)
	dim := 0
	for _, iv := range owned {
		if !iv.IsTrivial() {
			dim++
		}
	}
	return Simplex{intervals: owned, dim: dim}, nil
}

// PointSimplex returns the 0-dimensional simplex consisting of a
// single point coordinate.
func PointSimplex(p int) Simplex {
	s, _ := New([]BasicInterval{Point(p)})
	return s
}

// IntervalSimplex returns the 1-dimensional simplex consisting of a
// single unit-interval coordinate.
func IntervalSimplex(left int) Simplex {
	s, _ := New([]BasicInterval{Interval(left)})
	return s
}

// Product concatenates s1's and s2's coordinates; the result's
// topological dimension is the sum of the two dimensions.
func Product(s1, s2 Simplex) Simplex {
	intervals := make([]BasicInterval, 0, len(s1.intervals)+len(s2.intervals))
	intervals = append(intervals, s1.intervals...)
	intervals = append(intervals, s2.intervals...)
	return Simplex{intervals: intervals, dim: s1.dim + s2.dim}
}

// Dimension returns the topological dimension: the count of
// non-degenerate coordinates.
func (s Simplex) Dimension() int { return s.dim }

// AmbientDimension returns the number of coordinates.
func (s Simplex) AmbientDimension() int { return len(s.intervals) }

// Intervals returns a copy of the coordinate sequence.
func (s Simplex) Intervals() []BasicInterval {
	out := make([]BasicInterval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Boundary enumerates the codimension-1 faces of s. For each
// non-degenerate coordinate, in order, it emits the face obtained by
// collapsing that coordinate to its right endpoint followed by the
// face obtained by collapsing it to its left endpoint; this
// "top then bottom, per coordinate" order is the signature the
// chain-complex construction reads off to assign alternating signs.
// The resulting sequence is strictly decreasing in the simplex total
// order.
func (s Simplex) Boundary() []Simplex {
	boundary := make([]Simplex, 0, 2*s.dim)
	for n, iv := range s.intervals {
		if iv.IsTrivial() {
			continue
		}
		top := make([]BasicInterval, len(s.intervals))
		copy(top, s.intervals)
		top[n] = Point(iv.Right())
		bottom := make([]BasicInterval, len(s.intervals))
		copy(bottom, s.intervals)
		bottom[n] = Point(iv.Left())
		boundary = append(boundary,
			Simplex{intervals: top, dim: s.dim - 1},
			Simplex{intervals: bottom, dim: s.dim - 1},
		)
	}
	return boundary
}

// Equal reports whether s and other have identical coordinate
// sequences.
func (s Simplex) Equal(other Simplex) bool {
	return s.Compare(other) == 0
}

// Compare orders simplices first by topological dimension, then
// lexicographically by coordinate, where on a single coordinate a
// non-degenerate interval compares less than any point and two
// intervals of the same kind compare by their left endpoint. It
// returns a negative number, zero, or a positive number as s is
// less than, equal to, or greater than other.
func (s Simplex) Compare(other Simplex) int {
	if s.dim != other.dim {
		if s.dim < other.dim {
			return -1
		}
		return 1
	}
	n := len(s.intervals)
	if len(other.intervals) < n {
		n = len(other.intervals)
	}
	for i := 0; i < n; i++ {
		if c := compareIntervals(s.intervals[i], other.intervals[i]); c != 0 {
			return c
		}
	}
	if len(s.intervals) != len(other.intervals) {
		if len(s.intervals) < len(other.intervals) {
			return -1
		}
		return 1
	}
	return 0
}

// key is the canonical string encoding Complex uses to index
// simplices in place of a hash, since Simplex's slice field
// makes it non-comparable.
func (s Simplex) key() string {
	var b strings.Builder
	for _, iv := range s.intervals {
		fmt.Fprintf(&b, "%d:%t;", iv.left, iv.full)
	}
	return b.String()
}

// String renders the simplex as its coordinate sequence.
func (s Simplex) String() string {
	parts := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		parts[i] = iv.String()
	}
	return "(" + strings.Join(parts, "x") + ")"
}
