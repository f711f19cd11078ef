package loop

import (
	"testing"

	"github.com/michaelmacinnis/bfpp/internal/type/inst"
	"github.com/michaelmacinnis/bfpp/internal/type/loc"
)

func code(s string) []inst.T {
	var c []inst.T

	for i := 0; i < len(s); i++ {
		if op, ok := inst.Lookup(s[i]); ok {
			c = append(c, inst.New(op, loc.T{}))
		}
	}

	return c
}

func TestStack(t *testing.T) {
	l := &T{}

	if !l.Empty() {
		t.Fatal("new resolver is not empty")
	}

	if _, ok := l.Pop(); ok {
		t.Fatal("popped an empty resolver")
	}

	if _, ok := l.Top(); ok {
		t.Fatal("top of an empty resolver")
	}

	l.Push(3)
	l.Push(7)

	if top, _ := l.Top(); top != 7 || l.Len() != 2 {
		t.Fatalf("expected 7 of 2; got %d of %d", top, l.Len())
	}

	if ip, _ := l.Pop(); ip != 7 {
		t.Fatalf("expected 7; got %d", ip)
	}

	if ip, _ := l.Pop(); ip != 3 || !l.Empty() {
		t.Fatalf("expected 3 and empty; got %d", ip)
	}
}

func TestMatch(t *testing.T) {
	for _, tc := range []struct {
		code string
		ip   int
		end  int
	}{
		{"[]", 0, 1},
		{"[[]]", 0, 3},
		{"[[]]", 1, 2},
		{"+[>[-]<[]]+", 1, 9},
		{"[[]", 0, -1},
		{"[", 0, -1},
	} {
		if end := Match(code(tc.code), tc.ip, inst.OpenLoop, inst.CloseLoop); end != tc.end {
			t.Fatalf("%q at %d: expected %d; got %d", tc.code, tc.ip, tc.end, end)
		}
	}

	if end := Match(code("{{}[}"), 0, inst.OpenFunction, inst.CloseFunction); end != 4 {
		t.Fatalf("expected 4; got %d", end)
	}
}
