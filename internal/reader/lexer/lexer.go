// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the bfpp language.
//
// Like the oh lexer, it adapts the state function approach used by Go's
// text/template lexer. The only states are code and the two comment forms:
// ! runs to the end of the line and * runs to the next *.
package lexer

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/bfpp/internal/type/inst"
	"github.com/michaelmacinnis/bfpp/internal/type/loc"
)

// ErrUnterminated is returned when text ends inside a * comment.
var ErrUnterminated = errors.New("unterminated comment")

// T holds the state of the scanner.
type T struct {
	bytes  string   // Buffer being scanned.
	code   []inst.T // Instructions scanned so far.
	index  int      // Index of the current byte.
	opened loc.T    // Start of the current * comment.
	source loc.T    // Location of the current byte.
	state  action   // Current action.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state: code,
	}
}

// Instructions returns everything scanned so far. It is an error to call
// Instructions while inside a * comment.
func (l *T) Instructions() ([]inst.T, error) {
	if l.commenting() {
		return nil, fmt.Errorf("%s: %w", l.opened.String(), ErrUnterminated)
	}

	return l.code, nil
}

// Scan passes a text buffer to the lexer. A comment may span buffers.
func (l *T) Scan(text string) {
	l.bytes = text
	l.index = 0

	for l.index < len(l.bytes) {
		l.state = l.state(l)
	}
}

type action func(*T) action

func (l *T) commenting() bool {
	// Functions are not comparable so check the saved location instead.
	return !l.opened.IsZero()
}

// next returns the current byte and its location and advances past it.
func (l *T) next() (byte, loc.T) {
	b := l.bytes[l.index]
	at := l.source

	l.index++

	if b == '\n' {
		l.source.Line++
		l.source.Char = 1
	} else {
		l.source.Char++
	}

	return b, at
}

func blockComment(l *T) action {
	for l.index < len(l.bytes) {
		if b, _ := l.next(); b == '*' {
			l.opened = loc.T{}

			return code
		}
	}

	return blockComment
}

func code(l *T) action {
	for l.index < len(l.bytes) {
		b, at := l.next()

		switch b {
		case '!':
			return lineComment
		case '*':
			l.opened = at

			return blockComment
		}

		if op, ok := inst.Lookup(b); ok {
			l.code = append(l.code, inst.New(op, at))
		}
	}

	return code
}

func lineComment(l *T) action {
	for l.index < len(l.bytes) {
		if b, _ := l.next(); b == '\n' {
			return code
		}
	}

	return lineComment
}
