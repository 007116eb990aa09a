package cubical

import "sort"

// Complex is a face-closed collection of cubical simplices,
// grouped by dimension for fast iteration and indexed by canonical
// key for fast membership tests.
type Complex struct {
	byDim      [][]Simplex
	index      []map[string]int
	ambientDim int
	hasAmbient bool
}

// NewComplex returns an empty complex.
func NewComplex() *Complex {
	return &Complex{}
}

// Dimension returns the highest dimension of any simplex currently in
// the complex, or -1 if the complex is empty.
func (c *Complex) Dimension() int {
	return len(c.byDim) - 1
}

// AmbientDimension returns the ambient dimension established by the
// first simplex added, or 0 if the complex is empty.
func (c *Complex) AmbientDimension() int {
	if c.Dimension() < 0 {
		return 0
	}
	return c.ambientDim
}

func (c *Complex) ensureAmbient(s Simplex) error {
	if !c.hasAmbient || c.Dimension() < 0 {
		c.ambientDim = s.AmbientDimension()
		c.hasAmbient = true
		return nil
	}
	if s.AmbientDimension() != c.ambientDim {
		return ErrAmbientDimensionMismatch
	}
	return nil
}

func (c *Complex) ensureLevel(dim int) {
	for len(c.byDim) <= dim {
		c.byDim = append(c.byDim, nil)
		c.index = append(c.index, make(map[string]int))
	}
}

// Contains reports whether s is already present in the complex.
func (c *Complex) Contains(s Simplex) bool {
	d := s.Dimension()
	if d < 0 || d >= len(c.index) {
		return false
	}
	_, ok := c.index[d][s.key()]
	return ok
}

func (c *Complex) insertAt(s Simplex) bool {
	d := s.Dimension()
	c.ensureLevel(d)
	k := s.key()
	if _, ok := c.index[d][k]; ok {
		return false
	}
	c.index[d][k] = len(c.byDim[d])
	c.byDim[d] = append(c.byDim[d], s)
	return true
}

// Add inserts s alone, without adding any face that is not already
// present. It reports whether s was newly added. Add refuses to break
// face closure: it returns false, without inserting, if s's dimension
// jumps more than one above the complex's current top dimension, or
// if any face in s's boundary is not already in the complex. It
// returns an error if s's ambient dimension conflicts with the
// complex's established ambient dimension.
func (c *Complex) Add(s Simplex) (bool, error) {
	if err := c.ensureAmbient(s); err != nil {
		return false, err
	}
	if s.Dimension() > c.Dimension()+1 {
		return false, nil
	}
	for _, face := range s.Boundary() {
		if !c.Contains(face) {
			return false, nil
		}
	}
	return c.insertAt(s), nil
}

// AddRecursive inserts s and, recursively, every face in its boundary
// closure, so the complex remains face-closed. It stops descending
// into faces of a simplex that is already present, since that
// simplex's own faces must already be present too.
func (c *Complex) AddRecursive(s Simplex) error {
	if err := c.ensureAmbient(s); err != nil {
		return err
	}
	c.addRecursiveImpl(s)
	return nil
}

func (c *Complex) addRecursiveImpl(s Simplex) {
	if !c.insertAt(s) {
		return
	}
	for _, face := range s.Boundary() {
		c.addRecursiveImpl(face)
	}
}

func (c *Complex) eraseAt(s Simplex) bool {
	d := s.Dimension()
	if d < 0 || d >= len(c.index) {
		return false
	}
	k := s.key()
	i, ok := c.index[d][k]
	if !ok {
		return false
	}
	last := len(c.byDim[d]) - 1
	moved := c.byDim[d][last]
	c.byDim[d][i] = moved
	c.byDim[d] = c.byDim[d][:last]
	delete(c.index[d], k)
	if i != last {
		c.index[d][moved.key()] = i
	}
	c.shrinkTop()
	return true
}

// shrinkTop drops trailing dimension levels that have gone empty, so
// Dimension() never reports a stale top dimension once the simplices
// that established it are all removed.
func (c *Complex) shrinkTop() {
	for len(c.byDim) > 0 && len(c.byDim[len(c.byDim)-1]) == 0 {
		c.byDim = c.byDim[:len(c.byDim)-1]
		c.index = c.index[:len(c.index)-1]
	}
}

// faceIsBoundaryOf reports whether target appears in boundary, which
// must already be sorted by Simplex.Compare in increasing
// order. Boundary() itself emits a strictly decreasing sequence, so
// callers sort it first; this mirrors and corrects the original
// implementation's unsorted binary search over that sequence.
func faceIsBoundaryOf(boundary []Simplex, target Simplex) bool {
	i := sort.Search(len(boundary), func(i int) bool {
		return boundary[i].Compare(target) >= 0
	})
	return i < len(boundary) && boundary[i].Equal(target)
}

// Remove deletes s from the complex, provided no currently-present
// simplex of dimension s.Dimension()+1 has s as a face; removing such
// an s would break face closure. It reports whether s was removed.
func (c *Complex) Remove(s Simplex) bool {
	if !c.Contains(s) {
		return false
	}
	d := s.Dimension()
	if d+1 < len(c.byDim) {
		for _, coface := range c.byDim[d+1] {
			boundary := coface.Boundary()
			sort.Slice(boundary, func(i, j int) bool {
				return boundary[i].Compare(boundary[j]) < 0
			})
			if faceIsBoundaryOf(boundary, s) {
				return false
			}
		}
	}
	return c.eraseAt(s)
}

// Simplices enumerates every simplex in the complex, ordered by
// increasing dimension and, within a dimension, by insertion order
// (insertion order is only approximate once a Remove has taken place
// at that dimension, since removal fills the gap with the last
// element; enumeration remains deterministic for a fixed sequence of
// operations).
func (c *Complex) Simplices() []Simplex {
	total := 0
	for _, level := range c.byDim {
		total += len(level)
	}
	out := make([]Simplex, 0, total)
	for _, level := range c.byDim {
		out = append(out, level...)
	}
	return out
}

// SimplicesAt enumerates every simplex of the given dimension, in the
// same order as Simplices would yield them.
func (c *Complex) SimplicesAt(dim int) []Simplex {
	if dim < 0 || dim >= len(c.byDim) {
		return nil
	}
	out := make([]Simplex, len(c.byDim[dim]))
	copy(out, c.byDim[dim])
	return out
}
