// Package mchomology computes the homology of cubical complexes —
// finite unions of elementary cubes built from closed integer
// intervals — over a chosen scalar ring.
//
// What is mc-homology?
//
//	A small, dependency-light library that brings together:
//		- Core primitives: BasicInterval, Simplex, and a face-closed Complex
//		- Chain complex construction: boundary matrices indexed by
//		  dimension, built deterministically from a Complex
//		- Reduction: row-echelon form over a field, Smith normal form
//		  over a Euclidean domain
//		- Homology: Betti numbers and torsion coefficients, read off
//		  either reduction
//		- A façade that wires construction, reduction and reporting
//		  behind one call per coefficient ring
//
// Everything is organized under subpackages:
//
//	algebra/    — scalar carrier contracts (Ring, Field, EuclideanDomain) and two carriers, Int and Zp
//	numtheory/  — Euclidean division
//	matrix/     — dense matrix generic over an algebra.Ring
//	reduction/  — row-echelon and Smith normal form
//	chain/      — chain complexes and the two homology formulas
//	cubical/    — intervals, simplices, and face-closed complexes
//	construct/  — cubical complex to chain complex
//	homolog/    — façade over construct and chain
//	logging/    — structured logging abstraction
//	mconfig/    — functional-options policy shared by homolog
//
// Quick example: the boundary of a unit square is a thin circle, one
// connected component and one independent cycle.
//
//	unit := cubical.IntervalSimplex(0)
//	square := cubical.Product(unit, unit)
//	cc := cubical.NewComplex()
//	for _, edge := range square.Boundary() {
//		cc.AddRecursive(edge)
//	}
//	h, _ := homolog.ComputeHomologyEuclidean[algebra.Int](cc, mconfig.NewPolicy())
//	fmt.Println(h.BettiNumbers) // [1 1]
package mchomology
