package evolution

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/alfooscxx/many-body-dynamics/symscalar"
)

// Evaluate binds tau to tauValue and computes the polarized expectation of
// the current state under the single-qubit substitution (px, py, pz). This
// is the per-sample kernel of the external sampling loop.
func (c *Calculator) Evaluate(tauValue float64, px, py, pz float64) (complex128, error) {
	tau := symscalar.FromFloat(tauValue)
	var sum complex128
	for p, coef := range c.state {
		pol := p.Polarize(complex(px, 0), complex(py, 0), complex(pz, 0))
		if pol == 0 {
			continue
		}
		bound, err := coef.Substitute(TauName, tau)
		if err != nil {
			return 0, fmt.Errorf("evolution: bind tau: %w", err)
		}
		value, err := bound.Complex()
		if err != nil {
			return 0, fmt.Errorf("evolution: evaluate %v: %w", p, err)
		}
		sum += value * pol
	}
	return sum, nil
}

// Fingerprint digests the normalized state into 16 bytes of SHAKE-256
// output. Equal states produce equal fingerprints; the digest is stable
// across runs and usable for regression comparison.
func (c *Calculator) Fingerprint() [16]byte {
	h := sha3.NewShake256()
	var buf [16]byte
	for _, p := range c.state.SortedStrings() {
		v, w := p.Masks()
		binary.BigEndian.PutUint64(buf[:8], uint64(v))
		binary.BigEndian.PutUint64(buf[8:], uint64(w))
		_, _ = h.Write(buf[:])
		_, _ = h.Write([]byte(c.state[p].String()))
	}
	var out [16]byte
	_, _ = h.Read(out[:])
	return out
}
