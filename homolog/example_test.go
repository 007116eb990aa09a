package homolog_test

import (
	"fmt"

	"github.com/JKural/mc-homology/algebra"
	"github.com/JKural/mc-homology/cubical"
	"github.com/JKural/mc-homology/homolog"
	"github.com/JKural/mc-homology/mconfig"
)

////////////////////////////////////////////////////////////////////////////////
// Thin circle
////////////////////////////////////////////////////////////////////////////////

// ExampleComputeHomologyEuclidean_circle computes the homology of the
// boundary of a unit square: one connected component, one
// independent 1-cycle, no torsion.
func ExampleComputeHomologyEuclidean_circle() {
	unit := cubical.IntervalSimplex(0)
	square := cubical.Product(unit, unit)

	cc := cubical.NewComplex()
	for _, edge := range square.Boundary() {
		_ = cc.AddRecursive(edge)
	}

	h, _ := homolog.ComputeHomologyEuclidean[algebra.Int](cc, mconfig.NewPolicy())
	fmt.Println(h.BettiNumbers)
	// Output:
	// [1 1]
}

////////////////////////////////////////////////////////////////////////////////
// Hollow cube
////////////////////////////////////////////////////////////////////////////////

// ExampleComputeHomologyEuclidean_hollowCube computes the homology of
// the six faces of a cube's boundary: topologically a 2-sphere.
func ExampleComputeHomologyEuclidean_hollowCube() {
	unit := cubical.IntervalSimplex(0)
	cube := cubical.Product(unit, cubical.Product(unit, unit))

	cc := cubical.NewComplex()
	for _, face := range cube.Boundary() {
		_ = cc.AddRecursive(face)
	}

	h, _ := homolog.ComputeHomologyEuclidean[algebra.Int](cc, mconfig.NewPolicy())
	fmt.Println(h.BettiNumbers)
	// Output:
	// [1 0 1]
}

////////////////////////////////////////////////////////////////////////////////
// Hollow block
////////////////////////////////////////////////////////////////////////////////

// ExampleComputeHomologyEuclidean_hollowBlock computes the homology of
// a 3x3x3 block of unit cubes with the center cube removed: a solid
// shell around one central cavity, homotopy-equivalent to a 2-sphere.
func ExampleComputeHomologyEuclidean_hollowBlock() {
	cc := cubical.NewComplex()
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				cube := cubical.Product(
					cubical.Product(cubical.IntervalSimplex(x), cubical.IntervalSimplex(y)),
					cubical.IntervalSimplex(z),
				)
				_ = cc.AddRecursive(cube)
			}
		}
	}

	h, _ := homolog.ComputeHomologyEuclidean[algebra.Int](cc, mconfig.NewPolicy())
	fmt.Println(h.BettiNumbers)
	// Output:
	// [1 0 1 0]
}

////////////////////////////////////////////////////////////////////////////////
// Field coefficients
////////////////////////////////////////////////////////////////////////////////

// ExampleComputeHomologyField_singleEdge computes the homology of a
// single edge over the field Z/2: one connected component, no
// higher-dimensional cycles.
func ExampleComputeHomologyField_singleEdge() {
	cc := cubical.NewComplex()
	_ = cc.AddRecursive(cubical.IntervalSimplex(0))

	h, _ := homolog.ComputeHomologyField[algebra.Zp[algebra.Z2]](cc, mconfig.NewPolicy())
	fmt.Println(h.BettiNumbers)
	// Output:
	// [1 0]
}
