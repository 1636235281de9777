package pauli

// Package pauli implements a bit-packed algebra of multi-qubit Pauli
// operators on a 1-D chain of up to 64 sites. A string is encoded
// symplectically by two masks (v, w): bit i of each selects the matrix at
// site i via (v_i, w_i) = (0,0)→1, (0,1)→X, (1,0)→Z, (1,1)→Y. The encoding
// is phase-less; PhaseAdjustment recovers the i-powers lost by Y = iXZ.

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/alfooscxx/many-body-dynamics/symscalar"
)

// Mask is a set of lattice sites packed into one machine word. The chain
// length is therefore bounded by 64; Translate drops bits shifted past
// either end, so callers must keep their operators inside the word.
type Mask uint64

// Bits lists the set bits of m in ascending order.
func (m Mask) Bits() []int {
	out := make([]int, 0, bits.OnesCount64(uint64(m)))
	for m != 0 {
		out = append(out, bits.TrailingZeros64(uint64(m)))
		m &= m - 1
	}
	return out
}

// Matrix identifies a single-qubit Pauli matrix. The numeric values follow
// the symplectic encoding: bit 1 is the Z-component, bit 0 the X-component.
type Matrix uint8

const (
	One Matrix = iota
	X
	Z
	Y
)

// String is a tensor product of single-site Pauli matrices. The zero value
// is the identity operator. Strings are comparable and usable as map keys.
type String struct {
	v Mask
	w Mask
}

// SiteOp places a single Pauli matrix at a lattice site.
type SiteOp struct {
	Site   int
	Matrix Matrix
}

// NewSingle returns the string with a single matrix at the given site.
func NewSingle(site int, m Matrix) String {
	return String{
		v: Mask((uint64(m) & 2) >> 1 << site),
		w: Mask((uint64(m) & 1) << site),
	}
}

// Compose builds a string from site/matrix pairs by XOR-ing single-site
// masks, and scales it by the conjugated phase adjustment so that the pair
// represents the true operator rather than its phase-less canonical form.
func Compose(ops ...SiteOp) Scaled {
	var s String
	for _, op := range ops {
		single := NewSingle(op.Site, op.Matrix)
		s.v ^= single.v
		s.w ^= single.w
	}
	return Scaled{P: s, Coef: s.PhaseAdjustment().Conj()}
}

// Masks returns the symplectic representation (v, w).
func (p String) Masks() (Mask, Mask) { return p.v, p.w }

// IsIdentity reports whether p acts trivially on every site.
func (p String) IsIdentity() bool { return p.v == 0 && p.w == 0 }

// Sites returns the support mask of p.
func (p String) Sites() Mask { return p.v | p.w }

// At returns the matrix at the given site.
func (p String) At(site int) Matrix {
	return Matrix((uint64(p.v)>>site&1)<<1 | uint64(p.w)>>site&1)
}

// Mul returns the symplectic product of p and q together with the ±1 swap
// sign picked up by commuting p's X-part past q's Z-part. The i-factors of
// any Y matrices involved are not included; callers recover them through
// PhaseAdjustment on each operand and on the product.
func (p String) Mul(q String) (String, int) {
	prod := String{v: p.v ^ q.v, w: p.w ^ q.w}
	if bits.OnesCount64(uint64(p.w&q.v))%2 == 0 {
		return prod, 1
	}
	return prod, -1
}

// CommutesWith reports whether p and q commute.
func (p String) CommutesWith(q String) bool {
	swaps := bits.OnesCount64(uint64(p.v&q.w)) + bits.OnesCount64(uint64(p.w&q.v))
	return swaps%2 == 0
}

// Translate shifts p along the chain by the given offset. Sites shifted past
// bit 0 or bit 63 are silently dropped.
func (p String) Translate(shift int) String {
	if shift >= 0 {
		return String{v: p.v << shift, w: p.w << shift}
	}
	return String{v: p.v >> -shift, w: p.w >> -shift}
}

// PhaseExponent returns k such that the phase adjustment of p is i^k.
func (p String) PhaseExponent() int {
	return bits.OnesCount64(uint64(p.v&p.w)) % 4
}

// PhaseAdjustment returns i^popcount(v&w), the scalar relating the canonical
// phase-less encoding of p to the true Pauli operator.
func (p String) PhaseAdjustment() symscalar.Scalar {
	switch p.PhaseExponent() {
	case 0:
		return symscalar.One()
	case 1:
		return symscalar.I()
	case 2:
		return symscalar.FromInt(-1)
	default:
		return symscalar.I().Neg()
	}
}

// phaseComplex mirrors PhaseAdjustment for numeric evaluation.
func (p String) phaseComplex() complex128 {
	switch p.PhaseExponent() {
	case 0:
		return 1
	case 1:
		return 1i
	case 2:
		return -1
	default:
		return -1i
	}
}

// Polarize evaluates the tensor expansion of p under the per-site
// replacement 1→1, X→px, Y→py, Z→pz, multiplied by the phase adjustment.
func (p String) Polarize(px, py, pz complex128) complex128 {
	result := p.phaseComplex()
	substitution := [4]complex128{1, px, pz, py}
	for m := p.Sites(); m != 0; m &= m - 1 {
		site := bits.TrailingZeros64(uint64(m))
		result *= substitution[p.At(site)]
	}
	return result
}

// Compare orders strings lexicographically on (v, w).
func (p String) Compare(q String) int {
	switch {
	case p.v != q.v:
		if p.v < q.v {
			return -1
		}
		return 1
	case p.w != q.w:
		if p.w < q.w {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Less reports whether p precedes q in the canonical ordering.
func (p String) Less(q String) bool { return p.Compare(q) < 0 }

// Hash returns a stable, well-distributed digest of the (v, w) pair.
func (p String) Hash() uint64 {
	mix := func(x uint64) uint64 {
		x ^= x >> 30
		x *= 0xbf58476d1ce4e5b9
		x ^= x >> 27
		x *= 0x94d049bb133111eb
		x ^= x >> 31
		return x
	}
	return mix(uint64(p.v)*0x9e3779b97f4a7c15 ^ mix(uint64(p.w)))
}

var printMatrix = [4]string{"", "X", "Z", "Y"}
var printPhase = [4]string{"", "I", "-", "-I"}

// String renders p with its phase prefix, e.g. "I[X_3][Y_5]", or "ONE" for
// the identity.
func (p String) String() string {
	if p.IsIdentity() {
		return "ONE"
	}
	var b strings.Builder
	b.WriteString(printPhase[p.PhaseExponent()])
	for m := p.Sites(); m != 0; m &= m - 1 {
		site := bits.TrailingZeros64(uint64(m))
		b.WriteByte('[')
		b.WriteString(printMatrix[p.At(site)])
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(site))
		b.WriteByte(']')
	}
	return b.String()
}
