// Package cubical implements cubical complexes: basic intervals,
// cubical simplices built as products of intervals, and a complex
// that maintains face closure as simplices are added or removed.
//
// A Simplex's underlying interval slice makes it
// non-comparable with Go's == operator, so Complex indexes
// simplices by a canonical string key (see Simplex.key)
// instead of using them directly as map keys, the way the C++ source
// relies on a custom std::hash specialization.
package cubical
