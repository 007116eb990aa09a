// Package reduction implements the two canonical-form reductions the
// rest of the module builds homology on: row-echelon form over a
// field, and Smith normal form over a Euclidean domain.
package reduction
