// Released under an MIT license. See LICENSE.

// Package inst provides the instruction type shared by the lexer and engine.
package inst

import (
	"github.com/michaelmacinnis/bfpp/internal/type/loc"
)

// Op is an opcode.
type Op byte

// Opcodes.
const (
	Increment Op = iota
	Decrement
	MoveLeft
	MoveRight
	OpenLoop
	CloseLoop
	OpenFunction
	CloseFunction
	OpenCall
	CloseCall
	ScopeUp
	ScopeGlobal
	ReadChar
	WriteChar
)

//nolint:gochecknoglobals
var (
	fromByte = map[byte]Op{
		'+':  Increment,
		'-':  Decrement,
		'<':  MoveLeft,
		'>':  MoveRight,
		'[':  OpenLoop,
		']':  CloseLoop,
		'{':  OpenFunction,
		'}':  CloseFunction,
		'(':  OpenCall,
		')':  CloseCall,
		'\'': ScopeUp,
		'@':  ScopeGlobal,
		',':  ReadChar,
		'.':  WriteChar,
	}

	toByte = func() (m [WriteChar + 1]byte) {
		for b, op := range fromByte {
			m[op] = b
		}

		return
	}()
)

// Lookup returns the opcode for the byte b, if b is an instruction character.
func Lookup(b byte) (Op, bool) {
	op, ok := fromByte[b]
	return op, ok
}

// Byte returns the source character for op.
func (op Op) Byte() byte {
	if op > WriteChar {
		return '?'
	}

	return toByte[op]
}

func (op Op) String() string {
	return string(op.Byte())
}

// T (inst) is a single instruction and the place it was read from.
type T struct {
	Op     Op
	Source loc.T
}

// New creates a new instruction.
func New(op Op, source loc.T) T {
	return T{Op: op, Source: source}
}

// Clone returns a copy of the instructions in s that shares no storage with s.
func Clone(s []T) []T {
	if s == nil {
		return nil
	}

	c := make([]T, len(s))
	copy(c, s)

	return c
}

// Text returns the source characters for the instructions in s.
func Text(s []T) string {
	b := make([]byte, len(s))
	for i, t := range s {
		b[i] = t.Op.Byte()
	}

	return string(b)
}
