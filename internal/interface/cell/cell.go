// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all values stored on a tape.
package cell

// T (cell) is the basic unit of storage in bfpp.
type T interface {
	// Bool returns the truth value used by loop brackets.
	Bool() bool
	// Copy returns a deep copy. Cells are never shared between tapes.
	Copy() T
	Equal(c T) bool
	Name() string
}
