package num

import (
	"testing"
)

func TestWrap(t *testing.T) {
	if Zero.Decrement() != 65535 {
		t.Fatalf("expected 65535; got %d", Zero.Decrement())
	}

	if New(65535).Increment() != Zero {
		t.Fatalf("expected 0; got %d", New(65535).Increment())
	}
}

func TestByte(t *testing.T) {
	for v, e := range map[uint16]byte{
		65:    65,
		321:   65,
		65535: 255,
		256:   0,
	} {
		if b := New(v).Byte(); b != e {
			t.Fatalf("%d: expected %d; got %d", v, e, b)
		}
	}
}

func TestCell(t *testing.T) {
	if Zero.Bool() || !New(1).Bool() {
		t.Fatal("only zero is false")
	}

	if !New(9).Equal(New(9).Copy()) || New(9).Equal(New(8)) {
		t.Fatal("unexpected equality")
	}

	if New(42).String() != "42" || !Is(Zero) || To(New(3)) != 3 {
		t.Fatal("unexpected conversion")
	}
}
