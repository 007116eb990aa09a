// Package algebra defines the small hierarchy of algebraic-structure
// contracts the rest of the module is generic over — AdditiveGroup,
// Ring, CommutativeRing, EuclideanDomain, Field — together with two
// concrete carriers: Int (the machine-width integers) and Zp[M] (the
// integers modulo a prime, where the prime is fixed at compile time
// by a zero-size "modulus witness" type M).
//
// Go has no const generics, so a C++ template like Zp<P> cannot be
// expressed by parametrizing over the integer P directly. Instead,
// each modulus gets its own witness type (Z2, Z3, Z5, ...) that
// implements Modulus, and Zp is generic over that witness:
// Zp[Z13] is monomorphised at compile time exactly like Zp<13> would
// be in C++, with no runtime branch on which prime is in play.
package algebra
