package tape

import (
	"testing"

	"github.com/michaelmacinnis/bfpp/internal/interface/cell"
	"github.com/michaelmacinnis/bfpp/internal/type/fault"
	"github.com/michaelmacinnis/bfpp/internal/type/fn"
	"github.com/michaelmacinnis/bfpp/internal/type/num"
)

func small() *T {
	return New(Config{Initial: 4, Max: 10, Growth: 1.5})
}

func move(t *testing.T, tp *T, delta, times int) {
	t.Helper()

	for i := 0; i < times; i++ {
		if err := tp.Move(delta); err != nil {
			t.Fatalf("move %d of %d: %v", i+1, times, err)
		}
	}
}

func TestNew(t *testing.T) {
	tp := New(DefaultConfig())

	if tp.Len() != Initial {
		t.Fatalf("expected %d cells; got %d", Initial, tp.Len())
	}

	if tp.Cursor() != 0 {
		t.Fatalf("expected cursor at 0; got %d", tp.Cursor())
	}

	tp.Each(func(i int, c cell.T) {
		if !num.Zero.Equal(c) {
			t.Fatalf("cell %d is %v", i, c)
		}
	})
}

func TestMoveLeftOfZero(t *testing.T) {
	tp := small()

	err := tp.Move(-1)
	if !fault.Is(err, fault.OutOfBounds) {
		t.Fatalf("expected out of bounds; got %v", err)
	}

	if tp.Cursor() != 0 {
		t.Fatalf("cursor moved to %d", tp.Cursor())
	}
}

func TestMoveRightOfMax(t *testing.T) {
	tp := small()

	move(t, tp, 1, 9)

	if tp.Len() != 10 {
		t.Fatalf("expected 10 cells; got %d", tp.Len())
	}

	err := tp.Move(1)
	if !fault.Is(err, fault.OutOfBounds) {
		t.Fatalf("expected out of bounds; got %v", err)
	}

	if tp.Cursor() != 9 {
		t.Fatalf("cursor moved to %d", tp.Cursor())
	}
}

func TestGrowthSequence(t *testing.T) {
	tp := New(DefaultConfig())

	var sizes []int

	tp.OnGrow = func(from, to int) {
		sizes = append(sizes, to)
	}

	move(t, tp, 1, 100)

	if len(sizes) != 1 || sizes[0] != 150 {
		t.Fatalf("expected growth to 150; got %v", sizes)
	}

	tp = small()
	sizes = nil
	tp.OnGrow = func(from, to int) {
		sizes = append(sizes, to)
	}

	move(t, tp, 1, 9)

	expected := []int{6, 9, 10}
	if len(sizes) != len(expected) {
		t.Fatalf("expected %v; got %v", expected, sizes)
	}

	for i := range expected {
		if sizes[i] != expected[i] {
			t.Fatalf("expected %v; got %v", expected, sizes)
		}
	}
}

func TestGrowthPreservesCells(t *testing.T) {
	tp := small()

	f := fn.New(nil)

	for i := 0; i < 4; i++ {
		if i == 2 {
			tp.Set(f)
		} else {
			tp.Set(num.New(uint16(i + 1)))
		}

		if i < 3 {
			move(t, tp, 1, 1)
		}
	}

	move(t, tp, 1, 1)

	if tp.Len() != 6 {
		t.Fatalf("expected 6 cells; got %d", tp.Len())
	}

	if tp.Cursor() != 4 {
		t.Fatalf("expected cursor at 4; got %d", tp.Cursor())
	}

	for i, e := range []cell.T{num.New(1), num.New(2), f, num.New(4), num.Zero, num.Zero} {
		a, err := tp.At(i)
		if err != nil {
			t.Fatal(err)
		}

		if !e.Equal(a) {
			t.Fatalf("cell %d: expected %v; got %v", i, e, a)
		}
	}

	if a, _ := tp.At(2); a != cell.T(f) {
		t.Fatal("growth replaced the function in cell 2")
	}
}

func TestAtBeyondLength(t *testing.T) {
	tp := small()

	c, err := tp.At(7)
	if err != nil {
		t.Fatal(err)
	}

	if !num.Zero.Equal(c) {
		t.Fatalf("expected zero; got %v", c)
	}

	if tp.Len() != 4 {
		t.Fatalf("reading grew the tape to %d", tp.Len())
	}

	for _, i := range []int{-1, 10} {
		_, err = tp.At(i)
		if !fault.Is(err, fault.OutOfBounds) {
			t.Fatalf("cell %d: expected out of bounds; got %v", i, err)
		}
	}
}

func TestPut(t *testing.T) {
	tp := small()

	prev, err := tp.Put(8, num.New(3))
	if err != nil {
		t.Fatal(err)
	}

	if !num.Zero.Equal(prev) {
		t.Fatalf("expected zero; got %v", prev)
	}

	if tp.Len() != 9 {
		t.Fatalf("expected 9 cells; got %d", tp.Len())
	}

	if tp.Cursor() != 0 {
		t.Fatalf("cursor moved to %d", tp.Cursor())
	}

	_, err = tp.Put(10, num.New(3))
	if !fault.Is(err, fault.OutOfBounds) {
		t.Fatalf("expected out of bounds; got %v", err)
	}
}

func TestSetReturnsPrevious(t *testing.T) {
	tp := small()

	tp.Set(num.New(7))

	prev := tp.Set(num.New(8))
	if !num.New(7).Equal(prev) {
		t.Fatalf("expected 7; got %v", prev)
	}

	if !num.New(8).Equal(tp.Get()) {
		t.Fatalf("expected 8; got %v", tp.Get())
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}

	for _, c := range []Config{
		{Initial: 0, Max: 10, Growth: 1.5},
		{Initial: 10, Max: 5, Growth: 1.5},
		{Initial: 1, Max: 5, Growth: 1},
		{Initial: 1, Max: 5, Growth: 0.5},
	} {
		if err := c.Validate(); err == nil {
			t.Fatalf("expected %+v to be invalid", c)
		}
	}
}
