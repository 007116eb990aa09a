// Package chain implements chain complexes over a scalar carrier and
// the two homology formulas (field coefficients via row-echelon rank,
// Euclidean-domain coefficients via Smith normal form) that derive
// Betti numbers and torsion invariants from a sequence of boundary
// matrices.
package chain
