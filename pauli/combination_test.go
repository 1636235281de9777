package pauli

import (
	"testing"

	"github.com/alfooscxx/many-body-dynamics/symscalar"
)

func TestCombinationAddMergesLikeTerms(t *testing.T) {
	c := make(Combination)
	z := NewSingle(0, Z)
	c.Add(z, symscalar.One())
	c.Add(z, symscalar.FromInt(-1))
	c.Normalize()
	if len(c) != 0 {
		t.Fatalf("cancelled entry survived normalization: %v", c)
	}
}

func TestTryInsertFirstWriterWins(t *testing.T) {
	c := make(Combination)
	x := NewSingle(1, X)
	if !c.TryInsert(x, symscalar.One()) {
		t.Fatalf("first insert rejected")
	}
	if c.TryInsert(x, symscalar.FromInt(7)) {
		t.Fatalf("second insert accepted")
	}
	if !c[x].Equal(symscalar.One()) {
		t.Fatalf("first writer's coefficient was overwritten")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	c := make(Combination)
	c.Add(NewSingle(0, Z), symscalar.One())
	c.Add(NewSingle(1, X), symscalar.Zero())
	c.Normalize()
	snapshot := c.Clone()
	c.Normalize()
	if !c.Equal(snapshot) {
		t.Fatalf("normalization is not idempotent")
	}
	if len(c) != 1 {
		t.Fatalf("zero entry survived: %v", c)
	}
}

func TestSitesUnion(t *testing.T) {
	c := make(Combination)
	c.Add(Compose(SiteOp{Site: 2, Matrix: X}, SiteOp{Site: 3, Matrix: X}).P, symscalar.One())
	c.Add(NewSingle(7, Z), symscalar.One())
	want := Mask(1<<2 | 1<<3 | 1<<7)
	if c.Sites() != want {
		t.Fatalf("sites union = %b, want %b", c.Sites(), want)
	}
}

func TestSortedStringsOrder(t *testing.T) {
	c := make(Combination)
	c.Add(NewSingle(0, Z), symscalar.One())
	c.Add(NewSingle(0, X), symscalar.One())
	c.Add(NewSingle(0, Y), symscalar.One())
	sorted := c.SortedStrings()
	for i := 1; i < len(sorted); i++ {
		if !sorted[i-1].Less(sorted[i]) {
			t.Fatalf("keys out of order: %v", sorted)
		}
	}
}
