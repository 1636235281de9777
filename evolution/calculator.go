package evolution

// Package evolution advances a Pauli-string observable through first-order
// Suzuki–Trotter steps in the Heisenberg picture, keeping the state as an
// exact sum of strings with symbolic coefficients in the per-step time tau.

import (
	"github.com/rs/zerolog"

	"github.com/alfooscxx/many-body-dynamics/hamiltonian"
	"github.com/alfooscxx/many-body-dynamics/pauli"
	"github.com/alfooscxx/many-body-dynamics/symscalar"
)

// TauName is the distinguished free variable of the state coefficients, the
// formal per-step time of the product formula.
const TauName = "tau"

// Calculator iterates Trotter steps over an observable. It owns the
// Hamiltonian and both state buffers; Advance mutates the state in place and
// is not reentrant.
type Calculator struct {
	ham      *hamiltonian.Hamiltonian
	state    pauli.Combination
	newState pauli.Combination
	n        int

	// argCoef = 2·i·tau, precomputed once; the rotation argument for a term
	// (P, coef) is argCoef·φ(P)·coef.
	argCoef symscalar.Scalar

	logger zerolog.Logger
}

// New constructs a calculator from an initial observable and a Hamiltonian.
// The Hamiltonian is owned by the calculator afterwards.
func New(observable pauli.Scaled, ham *hamiltonian.Hamiltonian) *Calculator {
	state := make(pauli.Combination)
	if !observable.Coef.IsZero() {
		state[observable.P] = observable.Coef
	}
	return &Calculator{
		ham:      ham,
		state:    state,
		newState: make(pauli.Combination),
		argCoef:  symscalar.FromInt(2).Mul(symscalar.I()).Mul(symscalar.Var(TauName)),
		logger:   zerolog.Nop(),
	}
}

// SetLogger attaches a logger for per-step diagnostics.
func (c *Calculator) SetLogger(l zerolog.Logger) { c.logger = l }

// Steps returns the number of Trotter steps applied so far.
func (c *Calculator) Steps() int { return c.n }

// State returns the current observable expansion. The returned combination
// is a live view; callers must not mutate it.
func (c *Calculator) State() pauli.Combination { return c.state }

// Advance applies count Trotter steps. Per step, for every Hamiltonian group
// and every color class, it collects the translated terms that intersect the
// current state's support and rotates the state by each in turn.
func (c *Calculator) Advance(count int) {
	for step := 0; step < count; step++ {
		c.n++
		groups := c.ham.Groups()
		for gi := range groups {
			group := &groups[gi]
			for color := 0; color < group.PeriodLength(); color++ {
				sites := c.state.Sites().Bits()
				conflicts := make(pauli.Combination)
				for _, site := range sites {
					for p, coef := range group.Filter(color, site) {
						conflicts.TryInsert(p, coef)
					}
				}
				for _, p := range conflicts.SortedStrings() {
					c.applyRotation(p, conflicts[p])
				}
			}
		}
		c.logger.Debug().
			Int("step", c.n).
			Int("terms", len(c.state)).
			Msg("trotter step applied")
	}
}

// applyRotation maps the state A ↦ exp(iθP)·A·exp(-iθP) with
// θ = tau·coef·φ(P). Entries commuting with P pass through; for the rest the
// closed form A·cos(2θ) + i·sin(2θ)·P·A applies, kept in exponential form
// because half-sums of exponentials stay closed under repeated products.
func (c *Calculator) applyRotation(p pauli.String, coef symscalar.Scalar) {
	phase := p.PhaseAdjustment()
	arg := c.argCoef.Mul(phase).Mul(coef)
	expPlus := symscalar.Exp(arg)
	expMinus := symscalar.Exp(arg.Neg())
	half := symscalar.FromRat(1, 2)
	cosPart := expPlus.Add(expMinus).Mul(half)
	sinPart := expPlus.Sub(expMinus).Mul(half)
	phaseConj := phase.Conj()

	for a, aCoef := range c.state {
		if p.CommutesWith(a) {
			c.newState.Add(a, aCoef)
			continue
		}
		c.newState.Add(a, cosPart.Mul(aCoef))
		product, sign := p.Mul(a)
		pa := sinPart.Mul(phaseConj).Mul(aCoef)
		if sign < 0 {
			pa = pa.Neg()
		}
		c.newState.Add(product, pa)
	}

	c.newState.Normalize()
	c.state, c.newState = c.newState, c.state
	clear(c.newState)
}
