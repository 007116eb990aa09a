// Package matrix provides a dense, row-major matrix generic over any
// carrier satisfying the algebraic contracts in package algebra.
//
// A Matrix owns its backing storage: every operation either mutates
// the receiver in place (documented as such) or returns a freshly
// allocated matrix, never a view that aliases the operand's storage.
package matrix
