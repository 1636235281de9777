package qrat

// Package qrat implements exact complex numbers with rational real and
// imaginary parts (Gaussian rationals). It is self-contained and backs the
// coefficient arithmetic of the symscalar package, where exact zero-testing
// and decidable equality are required.

import (
	"fmt"
	"math/big"
)

// Elem is a Gaussian rational re + im·i. The zero value is not usable;
// construct through Zero, One, I, FromInt64, FromRat, FromFloat64 or New.
// All operations return fresh elements and never mutate their operands.
type Elem struct {
	re *big.Rat
	im *big.Rat
}

// Zero returns 0.
func Zero() Elem {
	return Elem{re: new(big.Rat), im: new(big.Rat)}
}

// One returns 1.
func One() Elem {
	return Elem{re: big.NewRat(1, 1), im: new(big.Rat)}
}

// I returns the imaginary unit.
func I() Elem {
	return Elem{re: new(big.Rat), im: big.NewRat(1, 1)}
}

// FromInt64 returns n as a Gaussian rational.
func FromInt64(n int64) Elem {
	return Elem{re: big.NewRat(n, 1), im: new(big.Rat)}
}

// FromRat returns num/den. It panics if den is zero.
func FromRat(num, den int64) Elem {
	if den == 0 {
		panic("qrat: zero denominator")
	}
	return Elem{re: big.NewRat(num, den), im: new(big.Rat)}
}

// FromFloat64 returns the exact rational value of f. It panics on NaN or Inf.
func FromFloat64(f float64) Elem {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic("qrat: non-finite float")
	}
	return Elem{re: r, im: new(big.Rat)}
}

// New returns re + im·i, copying both rationals. Nil arguments count as zero.
func New(re, im *big.Rat) Elem {
	e := Zero()
	if re != nil {
		e.re.Set(re)
	}
	if im != nil {
		e.im.Set(im)
	}
	return e
}

// Re returns a copy of the real part.
func (e Elem) Re() *big.Rat { return new(big.Rat).Set(e.re) }

// Im returns a copy of the imaginary part.
func (e Elem) Im() *big.Rat { return new(big.Rat).Set(e.im) }

// Add returns e + o.
func (e Elem) Add(o Elem) Elem {
	return Elem{
		re: new(big.Rat).Add(e.re, o.re),
		im: new(big.Rat).Add(e.im, o.im),
	}
}

// Sub returns e - o.
func (e Elem) Sub(o Elem) Elem {
	return Elem{
		re: new(big.Rat).Sub(e.re, o.re),
		im: new(big.Rat).Sub(e.im, o.im),
	}
}

// Neg returns -e.
func (e Elem) Neg() Elem {
	return Elem{
		re: new(big.Rat).Neg(e.re),
		im: new(big.Rat).Neg(e.im),
	}
}

// Mul returns e · o.
func (e Elem) Mul(o Elem) Elem {
	ac := new(big.Rat).Mul(e.re, o.re)
	bd := new(big.Rat).Mul(e.im, o.im)
	ad := new(big.Rat).Mul(e.re, o.im)
	bc := new(big.Rat).Mul(e.im, o.re)
	return Elem{
		re: ac.Sub(ac, bd),
		im: ad.Add(ad, bc),
	}
}

// Conj returns the complex conjugate of e.
func (e Elem) Conj() Elem {
	return Elem{
		re: new(big.Rat).Set(e.re),
		im: new(big.Rat).Neg(e.im),
	}
}

// Inv returns 1/e. It panics if e is zero.
func (e Elem) Inv() Elem {
	n2 := new(big.Rat).Mul(e.re, e.re)
	n2.Add(n2, new(big.Rat).Mul(e.im, e.im))
	if n2.Sign() == 0 {
		panic("qrat: inverse of zero")
	}
	inv := new(big.Rat).Inv(n2)
	return Elem{
		re: new(big.Rat).Mul(e.re, inv),
		im: new(big.Rat).Neg(new(big.Rat).Mul(e.im, inv)),
	}
}

// Div returns e / o. It panics if o is zero.
func (e Elem) Div(o Elem) Elem {
	return e.Mul(o.Inv())
}

// Pow returns e^k. A negative k raises the inverse of e, so it panics if e
// is zero.
func (e Elem) Pow(k int) Elem {
	if k < 0 {
		return e.Inv().Pow(-k)
	}
	result := One()
	base := e
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// IsZero reports whether e equals 0.
func (e Elem) IsZero() bool {
	return e.re.Sign() == 0 && e.im.Sign() == 0
}

// IsOne reports whether e equals 1.
func (e Elem) IsOne() bool {
	return e.im.Sign() == 0 && e.re.Cmp(ratOne) == 0
}

// Equal reports exact equality.
func (e Elem) Equal(o Elem) bool {
	return e.re.Cmp(o.re) == 0 && e.im.Cmp(o.im) == 0
}

// Complex converts e to a complex128.
func (e Elem) Complex() complex128 {
	re, _ := e.re.Float64()
	im, _ := e.im.Float64()
	return complex(re, im)
}

// Key returns a canonical textual encoding suitable for use as a map key.
// Equal elements produce identical keys.
func (e Elem) Key() string {
	return e.re.RatString() + "|" + e.im.RatString()
}

// String renders e for diagnostics, e.g. "3/2", "i", "1-2i".
func (e Elem) String() string {
	switch {
	case e.im.Sign() == 0:
		return e.re.RatString()
	case e.re.Sign() == 0:
		return imString(e.im)
	case e.im.Sign() < 0:
		return e.re.RatString() + imString(e.im)
	default:
		return e.re.RatString() + "+" + imString(e.im)
	}
}

var ratOne = big.NewRat(1, 1)

func imString(im *big.Rat) string {
	if im.Cmp(ratOne) == 0 {
		return "i"
	}
	if new(big.Rat).Neg(im).Cmp(ratOne) == 0 {
		return "-i"
	}
	return fmt.Sprintf("%si", im.RatString())
}
