// Package numtheory provides the small set of integer-arithmetic
// primitives the rest of the module builds on: primality testing,
// Euclidean division with a non-negative remainder, the extended
// Euclidean algorithm, and modular inverses.
//
// Every function here operates on the machine int and has no
// dependency on the rest of the module, so it can be tested and
// reasoned about in isolation.
package numtheory
