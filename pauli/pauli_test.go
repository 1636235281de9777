package pauli

import (
	"encoding/binary"
	"io"
	"math/bits"
	"testing"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// randString draws a uniform Pauli string whose support is confined to the
// given site window. Sampling is deterministic given the PRNG.
func randString(t *testing.T, prng utils.PRNG, window Mask) String {
	t.Helper()
	buf := make([]byte, 16)
	if _, err := io.ReadFull(prng, buf); err != nil {
		t.Fatalf("prng read: %v", err)
	}
	return String{
		v: Mask(binary.LittleEndian.Uint64(buf[:8])) & window,
		w: Mask(binary.LittleEndian.Uint64(buf[8:])) & window,
	}
}

func newTestPRNG(t *testing.T, key string) utils.PRNG {
	t.Helper()
	prng, err := utils.NewKeyedPRNG([]byte(key))
	if err != nil {
		t.Fatalf("keyed prng: %v", err)
	}
	return prng
}

func TestPhaseExponentRange(t *testing.T) {
	prng := newTestPRNG(t, "phase")
	for i := 0; i < 200; i++ {
		p := randString(t, prng, ^Mask(0))
		k := p.PhaseExponent()
		if k < 0 || k > 3 {
			t.Fatalf("phase exponent %d out of range for %v", k, p)
		}
		want := bits.OnesCount64(uint64(p.v&p.w)) % 4
		if k != want {
			t.Fatalf("phase exponent %d, want %d", k, want)
		}
	}
}

func TestCommutationSymmetricAndReflexive(t *testing.T) {
	prng := newTestPRNG(t, "commute")
	for i := 0; i < 200; i++ {
		p := randString(t, prng, ^Mask(0))
		q := randString(t, prng, ^Mask(0))
		if p.CommutesWith(q) != q.CommutesWith(p) {
			t.Fatalf("commutation is not symmetric for %v, %v", p, q)
		}
		if !p.CommutesWith(p) {
			t.Fatalf("%v does not commute with itself", p)
		}
	}
}

func TestProductSymmetry(t *testing.T) {
	prng := newTestPRNG(t, "product")
	for i := 0; i < 200; i++ {
		p := randString(t, prng, ^Mask(0))
		q := randString(t, prng, ^Mask(0))
		pq, signPQ := p.Mul(q)
		qp, signQP := q.Mul(p)
		if pq != qp {
			t.Fatalf("product strings differ: %v vs %v", pq, qp)
		}
		if p.CommutesWith(q) != (signPQ == signQP) {
			t.Fatalf("sign relation broken for %v, %v: signs %d %d", p, q, signPQ, signQP)
		}
	}
}

func TestProductSingleSiteTable(t *testing.T) {
	// X·Z picks up the swap sign, Z·X does not; both give the canonical Y.
	x := NewSingle(0, X)
	z := NewSingle(0, Z)
	xz, sign := x.Mul(z)
	if xz != NewSingle(0, Y) || sign != -1 {
		t.Fatalf("X*Z = (%v, %d), want (Y, -1)", xz, sign)
	}
	zx, sign := z.Mul(x)
	if zx != NewSingle(0, Y) || sign != 1 {
		t.Fatalf("Z*X = (%v, %d), want (Y, +1)", zx, sign)
	}
	// Every matrix squares to the identity string.
	for _, m := range []Matrix{X, Y, Z} {
		p := NewSingle(3, m)
		sq, _ := p.Mul(p)
		if !sq.IsIdentity() {
			t.Fatalf("%v squared is not the identity", p)
		}
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	prng := newTestPRNG(t, "translate")
	// Confine support to sites 16..47 so shifts up to 16 lose no bits.
	window := Mask(0xFFFFFFFF) << 16
	for i := 0; i < 200; i++ {
		p := randString(t, prng, window)
		for _, k := range []int{-16, -5, -1, 0, 1, 7, 16} {
			if got := p.Translate(k).Translate(-k); got != p {
				t.Fatalf("translate round trip failed for %v, k=%d: got %v", p, k, got)
			}
		}
	}
}

func TestTranslateDropsBits(t *testing.T) {
	p := NewSingle(0, X)
	if !p.Translate(-1).IsIdentity() {
		t.Fatalf("bit below site 0 did not fall off")
	}
	q := NewSingle(63, Z)
	if !q.Translate(1).IsIdentity() {
		t.Fatalf("bit above site 63 did not fall off")
	}
}

func TestPolarizeAllOnesIsPhase(t *testing.T) {
	prng := newTestPRNG(t, "polarize")
	for i := 0; i < 200; i++ {
		p := randString(t, prng, ^Mask(0))
		if got := p.Polarize(1, 1, 1); got != p.phaseComplex() {
			t.Fatalf("polarize(1,1,1) = %v, want phase %v for %v", got, p.phaseComplex(), p)
		}
	}
}

func TestPolarizeSelectsChannels(t *testing.T) {
	z := NewSingle(0, Z)
	if got := z.Polarize(0, 0, 1); got != 1 {
		t.Fatalf("Z polarized on z-channel = %v, want 1", got)
	}
	if got := z.Polarize(1, 0, 0); got != 0 {
		t.Fatalf("Z polarized on x-channel = %v, want 0", got)
	}
	y := NewSingle(2, Y)
	// phase(Y) = i, so the y-channel result is i·py.
	if got := y.Polarize(0, 1, 0); got != 1i {
		t.Fatalf("Y polarized on y-channel = %v, want i", got)
	}
}

func TestMaskBitsMatchesSupport(t *testing.T) {
	prng := newTestPRNG(t, "mask")
	for i := 0; i < 200; i++ {
		p := randString(t, prng, ^Mask(0))
		sites := p.Sites().Bits()
		if len(sites) != bits.OnesCount64(uint64(p.Sites())) {
			t.Fatalf("site list length mismatch for %v", p)
		}
		for j := 1; j < len(sites); j++ {
			if sites[j] <= sites[j-1] {
				t.Fatalf("site list not strictly ascending: %v", sites)
			}
		}
	}
}

func TestOrderingAndHash(t *testing.T) {
	prng := newTestPRNG(t, "order")
	for i := 0; i < 200; i++ {
		p := randString(t, prng, ^Mask(0))
		q := randString(t, prng, ^Mask(0))
		if p.Less(q) && q.Less(p) {
			t.Fatalf("ordering is not antisymmetric for %v, %v", p, q)
		}
		if p == q {
			if p.Hash() != q.Hash() {
				t.Fatalf("equal strings hash differently")
			}
			continue
		}
		if !p.Less(q) && !q.Less(p) {
			t.Fatalf("distinct strings compare equal: %v, %v", p, q)
		}
	}
	if NewSingle(0, X).Hash() == NewSingle(1, X).Hash() {
		t.Fatalf("trivial hash collision between X_0 and X_1")
	}
}

func TestComposeAttachesConjugatePhase(t *testing.T) {
	// A single Y has phase i, so the composed scale must be -i.
	scaled := Compose(SiteOp{Site: 0, Matrix: Y})
	z, err := scaled.Coef.Complex()
	if err != nil {
		t.Fatalf("coef: %v", err)
	}
	if z != -1i {
		t.Fatalf("Compose(Y) coef = %v, want -i", z)
	}
	// XX carries no Y factors: scale 1.
	scaled = Compose(SiteOp{Site: 0, Matrix: X}, SiteOp{Site: 1, Matrix: X})
	z, err = scaled.Coef.Complex()
	if err != nil {
		t.Fatalf("coef: %v", err)
	}
	if z != 1 {
		t.Fatalf("Compose(XX) coef = %v, want 1", z)
	}
}

func TestStringFormatting(t *testing.T) {
	if got := (String{}).String(); got != "ONE" {
		t.Fatalf("identity renders as %q", got)
	}
	if got := NewSingle(3, X).String(); got != "[X_3]" {
		t.Fatalf("X_3 renders as %q", got)
	}
	if got := NewSingle(5, Y).String(); got != "I[Y_5]" {
		t.Fatalf("Y_5 renders as %q", got)
	}
	two := Compose(SiteOp{Site: 0, Matrix: Y}, SiteOp{Site: 1, Matrix: Y}).P
	if got := two.String(); got != "-[Y_0][Y_1]" {
		t.Fatalf("Y_0 Y_1 renders as %q", got)
	}
}

func BenchmarkProduct(b *testing.B) {
	p := Compose(SiteOp{Site: 3, Matrix: X}, SiteOp{Site: 4, Matrix: Y}).P
	q := Compose(SiteOp{Site: 4, Matrix: Z}, SiteOp{Site: 5, Matrix: X}).P
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = p.Mul(q)
	}
}
