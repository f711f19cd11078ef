// Released under an MIT license. See LICENSE.

// Package fault provides the error type for runtime faults.
//
// Every fault is fatal to the run that raised it. Faults are returned,
// unchanged, up through every frame to a single handler.
package fault

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/bfpp/internal/type/loc"
)

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	TypeMismatch Kind = iota + 1
	OutOfBounds
	MismatchedLoop
	MismatchedFunction
	MismatchedCall
	UnresolvableScope
	InvalidAddress
	GrowthFailure
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case OutOfBounds:
		return "out of bounds"
	case MismatchedLoop:
		return "mismatched loop brackets"
	case MismatchedFunction:
		return "mismatched function brackets"
	case MismatchedCall:
		return "mismatched call brackets"
	case UnresolvableScope:
		return "unresolvable scope"
	case InvalidAddress:
		return "invalid function address"
	case GrowthFailure:
		return "growth failure"
	}

	return "fault"
}

// T (fault) is a runtime fault.
type T struct {
	Kind    Kind
	Message string
	Source  loc.T
}

type fault = T

// New creates a new fault with no source location.
func New(k Kind, format string, args ...interface{}) *fault {
	return &fault{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// At creates a new fault raised by the instruction at source.
func At(source loc.T, k Kind, format string, args ...interface{}) *fault {
	f := New(k, format, args...)
	f.Source = source

	return f
}

func (f *fault) Error() string {
	msg := f.Kind.String() + ": " + f.Message
	if f.Source.IsZero() {
		return msg
	}

	return f.Source.String() + ": " + msg
}

// Locate sets the source of err, if err is a fault without one.
// It returns err.
func Locate(err error, source loc.T) error {
	var f *fault
	if errors.As(err, &f) && f.Source.IsZero() {
		f.Source = source
	}

	return err
}

// Is returns true if err is a fault of kind k.
func Is(err error, k Kind) bool {
	var f *fault
	return errors.As(err, &f) && f.Kind == k
}
