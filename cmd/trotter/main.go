package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alfooscxx/many-body-dynamics/evolution"
	"github.com/alfooscxx/many-body-dynamics/hamiltonian"
	"github.com/alfooscxx/many-body-dynamics/pauli"
	"github.com/alfooscxx/many-body-dynamics/prof"
)

// observableOffset places the observable at an interior lattice site so that
// the expansion has translation headroom on both sides of the 64-site word.
const observableOffset = 32

type options struct {
	steps        int
	density      float64
	interval     float64
	substitution string
	hamiltonian  string
	observable   string
	plotPath     string
	verbose      bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opt options
	flag.IntVar(&opt.steps, "steps", 1, "Trotter step count")
	flag.Float64Var(&opt.density, "density", 0.1, "time grid step")
	flag.Float64Var(&opt.interval, "interval", 1.0, "end of time interval")
	flag.StringVar(&opt.substitution, "substitution", "1,0,0", "polarization x,y,z (unit L2 norm)")
	flag.StringVar(&opt.hamiltonian, "hamiltonian", "XX+Z", "Hamiltonian like XX+Z or XX+Z+X")
	flag.StringVar(&opt.observable, "observable", "Z", "observable like Z or XY")
	flag.StringVar(&opt.plotPath, "plot", "", "write an HTML chart of the sampled curve to this path")
	flag.BoolVar(&opt.verbose, "v", false, "verbose: per-step diagnostics and timing summary")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	if opt.verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	if opt.steps < 1 {
		return fmt.Errorf("steps must be >= 1, got %d", opt.steps)
	}
	if opt.density <= 0 {
		return fmt.Errorf("density must be positive, got %g", opt.density)
	}
	if opt.interval <= 0 {
		return fmt.Errorf("interval must be positive, got %g", opt.interval)
	}
	pol, err := parsePolarization(opt.substitution)
	if err != nil {
		return err
	}

	terms := make(pauli.Combination)
	for _, part := range strings.Split(opt.hamiltonian, "+") {
		ps, err := parseLiteral(part)
		if err != nil {
			return fmt.Errorf("hamiltonian term %q: %w", part, err)
		}
		terms.Add(ps.P, ps.Coef)
	}
	terms.Normalize()

	start := time.Now()
	ham := hamiltonian.New(terms)
	prof.Track(start, "grouping")
	logger.Info().
		Int("terms", len(terms)).
		Int("groups", len(ham.Groups())).
		Msg("hamiltonian grouped")

	obs, err := parseLiteral(opt.observable)
	if err != nil {
		return fmt.Errorf("observable %q: %w", opt.observable, err)
	}
	obs.P = obs.P.Translate(observableOffset)

	calc := evolution.New(obs, ham)
	calc.SetLogger(logger)
	start = time.Now()
	calc.Advance(opt.steps)
	prof.Track(start, "advance")
	logger.Info().
		Int("steps", calc.Steps()).
		Int("terms", len(calc.State())).
		Hex("fingerprint", fingerprintBytes(calc)).
		Msg("evolution complete")

	start = time.Now()
	var ts, values []float64
	for t := 0.0; t <= opt.interval+1e-12; t += opt.density {
		sum, err := calc.Evaluate(t/float64(opt.steps), pol[0], pol[1], pol[2])
		if err != nil {
			return err
		}
		fmt.Printf("%g %g\n", t, real(sum))
		ts = append(ts, t)
		values = append(values, real(sum))
	}
	prof.Track(start, "sampling")

	if opt.plotPath != "" {
		if err := renderPlot(opt.plotPath, opt.observable, ts, values); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		logger.Info().Str("path", opt.plotPath).Msg("chart written")
	}

	if opt.verbose {
		for _, s := range prof.Summarize(prof.SnapshotAndReset()) {
			logger.Debug().
				Str("phase", s.Label).
				Int("count", s.Count).
				Dur("total", s.Total).
				Msg("timing")
		}
	}
	return nil
}

func fingerprintBytes(calc *evolution.Calculator) []byte {
	fp := calc.Fingerprint()
	return fp[:]
}

// parseLiteral turns a string like "XYZ" into a scaled Pauli string starting
// at site 0.
func parseLiteral(lit string) (pauli.Scaled, error) {
	lit = strings.TrimSpace(lit)
	if lit == "" {
		return pauli.Scaled{}, fmt.Errorf("empty Pauli literal")
	}
	ops := make([]pauli.SiteOp, 0, len(lit))
	for i, ch := range lit {
		var m pauli.Matrix
		switch ch {
		case 'X':
			m = pauli.X
		case 'Y':
			m = pauli.Y
		case 'Z':
			m = pauli.Z
		default:
			return pauli.Scaled{}, fmt.Errorf("invalid Pauli character %q", ch)
		}
		ops = append(ops, pauli.SiteOp{Site: i, Matrix: m})
	}
	return pauli.Compose(ops...), nil
}

// parsePolarization parses "x,y,z" and checks the L2 norm is 1 within 1e-6.
func parsePolarization(csv string) ([3]float64, error) {
	var pol [3]float64
	fields := strings.Split(csv, ",")
	if len(fields) != 3 {
		return pol, fmt.Errorf("substitution expects x,y,z, got %q", csv)
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return pol, fmt.Errorf("substitution component %q: %w", f, err)
		}
		pol[i] = v
	}
	norm2 := pol[0]*pol[0] + pol[1]*pol[1] + pol[2]*pol[2]
	if math.Abs(norm2-1.0) > 1e-6 {
		return pol, fmt.Errorf("substitution must have unit norm, got |p|^2 = %g", norm2)
	}
	return pol, nil
}
