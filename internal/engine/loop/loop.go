// Released under an MIT license. See LICENSE.

// Package loop provides the loop resolver: a stack of return addresses for
// open loop bodies.
package loop

import (
	"github.com/michaelmacinnis/bfpp/internal/type/inst"
)

// T (loop) holds the position of each open-loop instruction whose body is
// currently executing, innermost last.
type T struct {
	entries []int
}

type loop = T

// Empty returns true if no loop body is executing.
func (l *loop) Empty() bool {
	return len(l.entries) == 0
}

// Len returns the number of loop bodies currently executing.
func (l *loop) Len() int {
	return len(l.entries)
}

// Pop removes the innermost entry.
func (l *loop) Pop() (int, bool) {
	n := len(l.entries)
	if n == 0 {
		return 0, false
	}

	ip := l.entries[n-1]
	l.entries = l.entries[:n-1]

	return ip, true
}

// Push records the open-loop instruction at ip.
func (l *loop) Push(ip int) {
	l.entries = append(l.entries, ip)
}

// Top returns the innermost entry.
func (l *loop) Top() (int, bool) {
	n := len(l.entries)
	if n == 0 {
		return 0, false
	}

	return l.entries[n-1], true
}

// Match returns the position of the instruction that closes the bracket
// opened at ip, or -1 if code ends first.
func Match(code []inst.T, ip int, open, closing inst.Op) int {
	depth := 0

	for j := ip + 1; j < len(code); j++ {
		switch code[j].Op {
		case open:
			depth++
		case closing:
			if depth == 0 {
				return j
			}

			depth--
		}
	}

	return -1
}
