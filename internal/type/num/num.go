// Released under an MIT license. See LICENSE.

// Package num provides the numeric cell type.
package num

import (
	"strconv"

	"github.com/michaelmacinnis/bfpp/internal/interface/cell"
)

const name = "value"

// T (num) is a 16-bit unsigned value. Arithmetic wraps.
type T uint16

// Zero is the state of every newly allocated cell.
const Zero T = 0

// New creates a new num.
func New(v uint16) T {
	return T(v)
}

// Decrement returns n-1, wrapping at zero.
func (n T) Decrement() T {
	return n - 1
}

// Increment returns n+1, wrapping at 65535.
func (n T) Increment() T {
	return n + 1
}

// Byte returns the low 8 bits of n.
func (n T) Byte() byte {
	return byte(n)
}

// The num type is a cell.

// Bool returns true if n is non-zero.
func (n T) Bool() bool {
	return n != 0
}

// Copy returns n. Values have no identity.
func (n T) Copy() cell.T {
	return n
}

// Equal returns true if c is a num with the same value as n.
func (n T) Equal(c cell.T) bool {
	v, ok := c.(T)
	return ok && v == n
}

// Name returns the name of the num type.
func (n T) Name() string {
	return name
}

func (n T) String() string {
	return strconv.Itoa(int(n))
}

// Is returns true if c is a num.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}

// To returns c as a num; otherwise it panics.
func To(c cell.T) T {
	if n, ok := c.(T); ok {
		return n
	}

	panic("not a " + name)
}
