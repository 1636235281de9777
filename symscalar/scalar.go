package symscalar

// Package symscalar provides exact symbolic scalars closed under the
// operations the Trotter stepper performs: sums of monomials of the form
//
//	coef · ∏ var^k · exp(c0 + Σ c_v · var)
//
// with Gaussian-rational coefficients. Named variables are real-valued.
// Scalars are immutable: every operation returns a fresh value.

import (
	"sort"
	"strconv"
	"strings"

	"github.com/alfooscxx/many-body-dynamics/internal/qrat"
)

// monomial is one additive term. vars maps variable name to a non-zero
// integer power; expo maps variable name to its non-zero coefficient inside
// the exponential, with expoC the constant offset of the exponent.
type monomial struct {
	coef  qrat.Elem
	vars  map[string]int
	expo  map[string]qrat.Elem
	expoC qrat.Elem
}

// Scalar is a normalized sum of monomials keyed by their symbolic shape.
// The zero Scalar (no terms) is the number 0 and is ready to use.
type Scalar struct {
	terms map[string]monomial
}

// key returns the canonical shape of m: sorted variable powers and sorted
// exponent entries. Monomials with equal keys are like terms.
func (m monomial) key() string {
	var b strings.Builder
	names := make([]string, 0, len(m.vars))
	for name := range m.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(m.vars[name]))
		b.WriteByte(';')
	}
	b.WriteString("exp:")
	b.WriteString(m.expoC.Key())
	names = names[:0]
	for name := range m.expo {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteByte(';')
		b.WriteString(name)
		b.WriteByte('*')
		b.WriteString(m.expo[name].Key())
	}
	return b.String()
}

func (m monomial) clone() monomial {
	out := monomial{coef: m.coef, expoC: m.expoC}
	if len(m.vars) > 0 {
		out.vars = make(map[string]int, len(m.vars))
		for k, v := range m.vars {
			out.vars[k] = v
		}
	}
	if len(m.expo) > 0 {
		out.expo = make(map[string]qrat.Elem, len(m.expo))
		for k, v := range m.expo {
			out.expo[k] = v
		}
	}
	return out
}

func fromMonomials(ms ...monomial) Scalar {
	s := Scalar{terms: make(map[string]monomial, len(ms))}
	for _, m := range ms {
		s.accumulate(m)
	}
	return s
}

// accumulate folds m into s.terms, merging like terms and dropping zeros.
// Only used while building a fresh Scalar.
func (s *Scalar) accumulate(m monomial) {
	if m.coef.IsZero() {
		return
	}
	k := m.key()
	if prev, ok := s.terms[k]; ok {
		sum := prev.coef.Add(m.coef)
		if sum.IsZero() {
			delete(s.terms, k)
			return
		}
		prev.coef = sum
		s.terms[k] = prev
		return
	}
	s.terms[k] = m.clone()
}

// Zero returns the scalar 0.
func Zero() Scalar { return Scalar{} }

// One returns the scalar 1.
func One() Scalar { return fromConst(qrat.One()) }

// I returns the imaginary unit.
func I() Scalar { return fromConst(qrat.I()) }

// FromInt returns n.
func FromInt(n int64) Scalar { return fromConst(qrat.FromInt64(n)) }

// FromRat returns num/den.
func FromRat(num, den int64) Scalar { return fromConst(qrat.FromRat(num, den)) }

// FromFloat returns the exact rational value of f.
func FromFloat(f float64) Scalar { return fromConst(qrat.FromFloat64(f)) }

// FromElem lifts a Gaussian rational into a Scalar.
func FromElem(e qrat.Elem) Scalar { return fromConst(e) }

func fromConst(e qrat.Elem) Scalar {
	if e.IsZero() {
		return Scalar{}
	}
	return fromMonomials(monomial{coef: e, expoC: qrat.Zero()})
}

// Var returns the named free variable as a scalar.
func Var(name string) Scalar {
	return fromMonomials(monomial{
		coef:  qrat.One(),
		vars:  map[string]int{name: 1},
		expoC: qrat.Zero(),
	})
}

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar {
	out := Scalar{terms: make(map[string]monomial, len(s.terms)+len(o.terms))}
	for _, m := range s.terms {
		out.accumulate(m)
	}
	for _, m := range o.terms {
		out.accumulate(m)
	}
	return out
}

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s.Add(o.Neg()) }

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	out := Scalar{terms: make(map[string]monomial, len(s.terms))}
	for _, m := range s.terms {
		n := m.clone()
		n.coef = n.coef.Neg()
		out.accumulate(n)
	}
	return out
}

// Mul returns s · o, distributing over all monomial pairs. Variable powers
// add and exponent forms add, so products of exponentials collapse.
func (s Scalar) Mul(o Scalar) Scalar {
	out := Scalar{terms: make(map[string]monomial, len(s.terms)*len(o.terms))}
	for _, a := range s.terms {
		for _, b := range o.terms {
			out.accumulate(mulMonomials(a, b))
		}
	}
	return out
}

func mulMonomials(a, b monomial) monomial {
	m := monomial{coef: a.coef.Mul(b.coef), expoC: a.expoC.Add(b.expoC)}
	if len(a.vars)+len(b.vars) > 0 {
		m.vars = make(map[string]int, len(a.vars)+len(b.vars))
		for k, v := range a.vars {
			m.vars[k] = v
		}
		for k, v := range b.vars {
			if sum := m.vars[k] + v; sum != 0 {
				m.vars[k] = sum
			} else {
				delete(m.vars, k)
			}
		}
	}
	if len(a.expo)+len(b.expo) > 0 {
		m.expo = make(map[string]qrat.Elem, len(a.expo)+len(b.expo))
		for k, v := range a.expo {
			m.expo[k] = v
		}
		for k, v := range b.expo {
			if prev, ok := m.expo[k]; ok {
				sum := prev.Add(v)
				if sum.IsZero() {
					delete(m.expo, k)
				} else {
					m.expo[k] = sum
				}
			} else {
				m.expo[k] = v
			}
		}
	}
	return m
}

// Div returns s / o. The divisor must be a single monomial (the stepper only
// divides by constants); dividing by a sum is a programming error and panics.
func (s Scalar) Div(o Scalar) Scalar {
	if len(o.terms) != 1 {
		panic("symscalar: division by non-monomial scalar")
	}
	var d monomial
	for _, m := range o.terms {
		d = m
	}
	inv := d.clone()
	inv.coef = d.coef.Inv()
	inv.expoC = d.expoC.Neg()
	if inv.vars != nil {
		for k, v := range inv.vars {
			inv.vars[k] = -v
		}
	}
	if inv.expo != nil {
		for k, v := range inv.expo {
			inv.expo[k] = v.Neg()
		}
	}
	out := Scalar{terms: make(map[string]monomial, len(s.terms))}
	for _, a := range s.terms {
		out.accumulate(mulMonomials(a, inv))
	}
	return out
}

// Conj returns the complex conjugate of s. Named variables are real, so
// conjugation acts on coefficients only.
func (s Scalar) Conj() Scalar {
	out := Scalar{terms: make(map[string]monomial, len(s.terms))}
	for _, m := range s.terms {
		n := m.clone()
		n.coef = n.coef.Conj()
		n.expoC = n.expoC.Conj()
		if n.expo != nil {
			for k, v := range n.expo {
				n.expo[k] = v.Conj()
			}
		}
		out.accumulate(n)
	}
	return out
}

// IsZero reports whether s is exactly 0.
func (s Scalar) IsZero() bool { return len(s.terms) == 0 }

// Equal reports whether s and o are the same normalized sum.
func (s Scalar) Equal(o Scalar) bool {
	if len(s.terms) != len(o.terms) {
		return false
	}
	for k, m := range s.terms {
		other, ok := o.terms[k]
		if !ok || !m.coef.Equal(other.coef) {
			return false
		}
	}
	return true
}

// String renders s deterministically for diagnostics and fingerprinting.
func (s Scalar) String() string {
	if len(s.terms) == 0 {
		return "0"
	}
	keys := make([]string, 0, len(s.terms))
	for k := range s.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" + ")
		}
		m := s.terms[k]
		b.WriteByte('(')
		b.WriteString(m.coef.String())
		b.WriteByte(')')
		if k != "exp:0|0" {
			b.WriteByte('[')
			b.WriteString(k)
			b.WriteByte(']')
		}
	}
	return b.String()
}
