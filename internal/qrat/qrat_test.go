package qrat

import (
	"math"
	"testing"
)

func TestFieldIdentities(t *testing.T) {
	a := FromRat(3, 4)
	b := New(nil, nil).Add(I()).Add(FromInt64(2)) // 2 + i
	if !a.Add(b).Sub(b).Equal(a) {
		t.Fatalf("a+b-b != a")
	}
	if !a.Mul(b).Div(b).Equal(a) {
		t.Fatalf("a*b/b != a")
	}
	if !b.Mul(b.Inv()).IsOne() {
		t.Fatalf("b * b^-1 != 1")
	}
	if !I().Mul(I()).Equal(FromInt64(-1)) {
		t.Fatalf("i^2 != -1")
	}
}

func TestConj(t *testing.T) {
	b := FromInt64(2).Add(I()) // 2 + i
	c := b.Conj()
	if !b.Mul(c).Equal(FromInt64(5)) {
		t.Fatalf("b * conj(b) = %v, want 5", b.Mul(c))
	}
	if !c.Conj().Equal(b) {
		t.Fatalf("double conjugation is not the identity")
	}
}

func TestPow(t *testing.T) {
	if !I().Pow(4).IsOne() {
		t.Fatalf("i^4 != 1")
	}
	if !FromInt64(3).Pow(0).IsOne() {
		t.Fatalf("3^0 != 1")
	}
	got := FromRat(1, 2).Pow(-2)
	if !got.Equal(FromInt64(4)) {
		t.Fatalf("(1/2)^-2 = %v, want 4", got)
	}
}

func TestComplexConversion(t *testing.T) {
	e := FromRat(-7, 2).Add(I().Mul(FromRat(1, 4)))
	z := e.Complex()
	if math.Abs(real(z)+3.5) > 1e-15 || math.Abs(imag(z)-0.25) > 1e-15 {
		t.Fatalf("Complex() = %v", z)
	}
}

func TestFromFloat64Exact(t *testing.T) {
	f := 0.1 + 0.2
	e := FromFloat64(f)
	got, exact := e.Re().Float64()
	if !exact || got != f {
		t.Fatalf("float round trip lost precision: %v -> %v", f, got)
	}
}

func TestKeyStable(t *testing.T) {
	a := FromRat(2, 4)
	b := FromRat(1, 2)
	if a.Key() != b.Key() {
		t.Fatalf("equal values produced different keys: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() == I().Key() {
		t.Fatalf("distinct values share a key")
	}
}

func TestZeroChecks(t *testing.T) {
	if !Zero().IsZero() || One().IsZero() {
		t.Fatalf("zero predicate broken")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("inverse of zero did not panic")
		}
	}()
	Zero().Inv()
}
