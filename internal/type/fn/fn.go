// Released under an MIT license. See LICENSE.

// Package fn provides the function cell type.
package fn

import (
	"github.com/michaelmacinnis/bfpp/internal/interface/cell"
	"github.com/michaelmacinnis/bfpp/internal/type/inst"
)

const name = "function"

// T (fn) is a captured instruction sequence. Each T owns its instructions;
// no two functions share a buffer.
type T struct {
	code []inst.T
}

type fn = T

// New creates a new function from a copy of code.
func New(code []inst.T) *fn {
	return &fn{code: inst.Clone(code)}
}

// Clone returns a deep copy of f.
func (f *fn) Clone() *fn {
	return New(f.code)
}

// Code returns the instructions of f. The caller must not modify them.
func (f *fn) Code() []inst.T {
	return f.code
}

// Len returns the number of instructions in f.
func (f *fn) Len() int {
	return len(f.code)
}

// The fn type is a cell.

// Bool returns true. A function is never zero.
func (f *fn) Bool() bool {
	return true
}

// Copy returns a deep copy of f.
func (f *fn) Copy() cell.T {
	return f.Clone()
}

// Equal returns true if c is a function with the same instructions as f.
func (f *fn) Equal(c cell.T) bool {
	g, ok := c.(*fn)
	if !ok || len(f.code) != len(g.code) {
		return false
	}

	for i := range f.code {
		if f.code[i].Op != g.code[i].Op {
			return false
		}
	}

	return true
}

// Name returns the name of the fn type.
func (f *fn) Name() string {
	return name
}

func (f *fn) String() string {
	return "{" + inst.Text(f.code) + "}"
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*fn)
	return ok
}

// To returns a *T if c is a *T; Otherwise is panics.
func To(c cell.T) *fn {
	if f, ok := c.(*fn); ok {
		return f
	}

	panic("not a " + name)
}
