// Package construct builds a chain complex of signed boundary
// matrices from a cubical complex.
package construct
