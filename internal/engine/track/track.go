// Released under an MIT license. See LICENSE.

// Package track counts live objects so that a run can report anything
// that was allocated but never released.
package track

import (
	"sort"
)

// Kinds of tracked objects.
const (
	Frame    = "frame"
	Function = "function"
)

// T (track) holds allocation counts. A nil *T tracks nothing.
type T struct {
	allocated map[string]int
	released  map[string]int
	peak      map[string]int
}

type track = T

// New creates a new tracker.
func New() *track {
	return &track{
		allocated: map[string]int{},
		released:  map[string]int{},
		peak:      map[string]int{},
	}
}

// Alloc records the allocation of an object of the given kind.
func (t *track) Alloc(kind string) {
	if t == nil {
		return
	}

	t.allocated[kind]++

	if n := t.Live(kind); n > t.peak[kind] {
		t.peak[kind] = n
	}
}

// Free records the release of an object of the given kind.
func (t *track) Free(kind string) {
	if t == nil {
		return
	}

	t.released[kind]++
}

// Live returns the number of objects of the given kind not yet released.
func (t *track) Live(kind string) int {
	if t == nil {
		return 0
	}

	return t.allocated[kind] - t.released[kind]
}

// Peak returns the largest number of simultaneously live objects of kind.
func (t *track) Peak(kind string) int {
	if t == nil {
		return 0
	}

	return t.peak[kind]
}

// Allocated returns the total number of objects of kind ever allocated.
func (t *track) Allocated(kind string) int {
	if t == nil {
		return 0
	}

	return t.allocated[kind]
}

// Leaks returns the kinds with live objects, sorted.
func (t *track) Leaks() []string {
	if t == nil {
		return nil
	}

	var kinds []string

	for k := range t.allocated {
		if t.Live(k) != 0 {
			kinds = append(kinds, k)
		}
	}

	sort.Strings(kinds)

	return kinds
}
