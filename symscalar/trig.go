package symscalar

import (
	"fmt"

	"github.com/alfooscxx/many-body-dynamics/internal/qrat"
)

// linearForm is c0 + Σ coeffs[v]·v, the only shape admitted under exp.
type linearForm struct {
	c0     qrat.Elem
	coeffs map[string]qrat.Elem
}

// asLinearForm decomposes s into a linear form over its named variables.
// It fails if any monomial carries an exponential factor or a degree above one.
func (s Scalar) asLinearForm() (linearForm, error) {
	lf := linearForm{c0: qrat.Zero(), coeffs: make(map[string]qrat.Elem)}
	for _, m := range s.terms {
		if len(m.expo) > 0 || !m.expoC.IsZero() {
			return linearForm{}, fmt.Errorf("symscalar: exp argument contains an exponential factor")
		}
		switch len(m.vars) {
		case 0:
			lf.c0 = lf.c0.Add(m.coef)
		case 1:
			for name, pow := range m.vars {
				if pow != 1 {
					return linearForm{}, fmt.Errorf("symscalar: exp argument has %s^%d, want degree one", name, pow)
				}
				if prev, ok := lf.coeffs[name]; ok {
					lf.coeffs[name] = prev.Add(m.coef)
				} else {
					lf.coeffs[name] = m.coef
				}
			}
		default:
			return linearForm{}, fmt.Errorf("symscalar: exp argument is not linear")
		}
	}
	for name, c := range lf.coeffs {
		if c.IsZero() {
			delete(lf.coeffs, name)
		}
	}
	return lf, nil
}

// Exp returns e^s. The argument must reduce to a linear combination of named
// variables plus a constant; anything else panics, since the stepper never
// produces such arguments and their appearance indicates a programming error.
func Exp(s Scalar) Scalar {
	lf, err := s.asLinearForm()
	if err != nil {
		panic(err)
	}
	m := monomial{coef: qrat.One(), expoC: lf.c0}
	if len(lf.coeffs) > 0 {
		m.expo = lf.coeffs
	}
	return fromMonomials(m)
}

// Sin returns sin(s) lowered to the exponential form (e^{is} - e^{-is})/2i,
// so that repeated products collapse under monomial multiplication.
func Sin(s Scalar) Scalar {
	is := s.Mul(I())
	return Exp(is).Sub(Exp(is.Neg())).Div(I().Mul(FromInt(2)))
}

// Cos returns cos(s) lowered to (e^{is} + e^{-is})/2.
func Cos(s Scalar) Scalar {
	is := s.Mul(I())
	return Exp(is).Add(Exp(is.Neg())).Div(FromInt(2))
}
