package symscalar

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/alfooscxx/many-body-dynamics/internal/qrat"
)

// constValue extracts s as a plain Gaussian rational, if it is one.
func (s Scalar) constValue() (qrat.Elem, bool) {
	if len(s.terms) == 0 {
		return qrat.Zero(), true
	}
	if len(s.terms) != 1 {
		return qrat.Elem{}, false
	}
	for _, m := range s.terms {
		if len(m.vars) == 0 && len(m.expo) == 0 && m.expoC.IsZero() {
			return m.coef, true
		}
	}
	return qrat.Elem{}, false
}

// Substitute replaces every occurrence of the named variable by value, both
// in polynomial factors and inside exponents. The value must be a constant
// scalar; substituting a non-constant returns an error, per the evaluation
// contract of the sampling collaborator.
func (s Scalar) Substitute(name string, value Scalar) (Scalar, error) {
	v, ok := value.constValue()
	if !ok {
		return Scalar{}, fmt.Errorf("symscalar: substitution value for %s is not constant", name)
	}
	out := Scalar{terms: make(map[string]monomial, len(s.terms))}
	for _, m := range s.terms {
		n := m.clone()
		if pow, ok := n.vars[name]; ok {
			n.coef = n.coef.Mul(v.Pow(pow))
			delete(n.vars, name)
		}
		if c, ok := n.expo[name]; ok {
			n.expoC = n.expoC.Add(c.Mul(v))
			delete(n.expo, name)
		}
		out.accumulate(n)
	}
	return out, nil
}

// FreeVariables lists the named variables occurring in s, sorted.
func (s Scalar) FreeVariables() []string {
	seen := make(map[string]struct{})
	for _, m := range s.terms {
		for name := range m.vars {
			seen[name] = struct{}{}
		}
		for name := range m.expo {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Complex evaluates s numerically. All free variables must have been bound
// through Substitute beforehand.
func (s Scalar) Complex() (complex128, error) {
	var sum complex128
	for _, m := range s.terms {
		if len(m.vars) > 0 || len(m.expo) > 0 {
			return 0, fmt.Errorf("symscalar: cannot evaluate, free variables remain: %v", s.FreeVariables())
		}
		sum += m.coef.Complex() * cmplx.Exp(m.expoC.Complex())
	}
	return sum, nil
}
