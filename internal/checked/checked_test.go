package checked

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	if sum, ok := Add(10, 5); !ok || sum != 15 {
		t.Fatalf("Add(10,5)=%d,%v want 15,true", sum, ok)
	}
	if sum, ok := Add(0, 0); !ok || sum != 0 {
		t.Fatalf("Add(0,0)=%d,%v want 0,true", sum, ok)
	}
	if _, ok := Add(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if sum, ok := Add(math.MaxInt-1, 1); !ok || sum != math.MaxInt {
		t.Fatalf("Add at the boundary should succeed, got %d,%v", sum, ok)
	}
}

func TestMul(t *testing.T) {
	if p, ok := Mul(6, 7); !ok || p != 42 {
		t.Fatalf("Mul(6,7)=%d,%v want 42,true", p, ok)
	}
	if p, ok := Mul(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("Mul by zero should succeed, got %d,%v", p, ok)
	}
	if p, ok := Mul(math.MaxInt, 0); !ok || p != 0 {
		t.Fatalf("Mul by zero should succeed, got %d,%v", p, ok)
	}
	if _, ok := Mul(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow doubling past MaxInt")
	}
	if p, ok := Mul(math.MaxInt, 1); !ok || p != math.MaxInt {
		t.Fatalf("Mul at the boundary should succeed, got %d,%v", p, ok)
	}
}
