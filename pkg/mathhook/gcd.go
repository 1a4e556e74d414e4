package mathhook

import (
	"errors"
	"math/big"

	"github.com/mathhook/mathhook/internal/mathhook/core"
	"github.com/mathhook/mathhook/internal/mathhook/modgcd"
)

// Options configures the GCD engine
type Options struct {
	// StabilityThreshold is the number of consecutive identical
	// reconstructions required before trial division is attempted
	StabilityThreshold int

	// MaxPrimes bounds the number of prime trials
	MaxPrimes int

	// MaxEvalPoints bounds the total number of evaluation points drawn
	// across all primes of one multivariate computation
	MaxEvalPoints int

	// SparseThreshold is the density below which both inputs count as
	// sparse
	SparseThreshold float64

	// UseSparse enables sparse interpolation for sparse inputs
	UseSparse bool

	// StartingPrimeIndex selects where in the prime table trials begin
	StartingPrimeIndex int

	// MaxVariables bounds the number of variables of multivariate inputs
	MaxVariables int

	// Workers is the number of concurrent per-prime univariate trials
	Workers int
}

// DefaultOptions returns the default engine options
func DefaultOptions() *Options {
	cfg := modgcd.DefaultConfig()
	return &Options{
		StabilityThreshold: cfg.StabilityThreshold,
		MaxPrimes:          cfg.MaxPrimes,
		MaxEvalPoints:      cfg.MaxEvalPoints,
		SparseThreshold:    cfg.SparseThreshold,
		UseSparse:          cfg.UseSparse,
		StartingPrimeIndex: cfg.StartingPrimeIdx,
		MaxVariables:       cfg.MaxVariables,
		Workers:            cfg.Workers,
	}
}

// Result carries a GCD together with both cofactors, so that
// Gcd * CofactorF == f and Gcd * CofactorG == g
type Result struct {
	Gcd       *Polynomial
	CofactorF *Polynomial
	CofactorG *Polynomial
}

// Engine computes polynomial GCDs over the integers
type Engine interface {
	// PolynomialGCD returns the greatest common divisor of f and g,
	// normalized to a positive leading coefficient
	PolynomialGCD(f, g *Polynomial) (*Polynomial, error)

	// Cofactors returns the GCD together with f/gcd and g/gcd
	Cofactors(f, g *Polynomial) (*Result, error)

	// PolynomialLCM returns the least common multiple of f and g
	PolynomialLCM(f, g *Polynomial) (*Polynomial, error)

	// AreCoprime reports whether the GCD of f and g is a non-zero
	// constant
	AreCoprime(f, g *Polynomial) (bool, error)
}

// engineImpl is the internal implementation of Engine
type engineImpl struct {
	cfg *modgcd.Config
}

// NewEngine creates a GCD engine with the given options; nil selects the
// defaults
func NewEngine(opts *Options) (Engine, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	cfg := &modgcd.Config{
		StabilityThreshold: opts.StabilityThreshold,
		MaxPrimes:          opts.MaxPrimes,
		MaxEvalPoints:      opts.MaxEvalPoints,
		SparseThreshold:    opts.SparseThreshold,
		UseSparse:          opts.UseSparse,
		StartingPrimeIdx:   opts.StartingPrimeIndex,
		MaxVariables:       opts.MaxVariables,
		Workers:            opts.Workers,
	}
	if err := cfg.Validate(); err != nil {
		return nil, &GcdError{
			Code:    ErrInvalidConfig,
			Message: "invalid engine options",
			Cause:   err,
		}
	}
	return &engineImpl{cfg: cfg}, nil
}

// solved is the internal outcome of one GCD run before conversion back to
// the public types
type solved struct {
	prob *problem

	gcdU, cofFU, cofGU *core.IntPoly
	gcdM, cofFM, cofGM *core.MultiPoly
}

func (e *engineImpl) run(f, g *Polynomial) (*solved, error) {
	prob, err := unify(f, g)
	if err != nil {
		return nil, err
	}

	if prob.kind == KindMultivariate {
		if len(prob.vars) > e.cfg.MaxVariables {
			return nil, &GcdError{
				Code:    ErrInvalidInput,
				Message: "too many variables for the configured engine",
			}
		}
		gcd, cofF, cofG, err := modgcd.MultivariateGCD(prob.fm, prob.gm, e.cfg)
		if err != nil {
			return nil, wrapEngineError(err)
		}
		return &solved{prob: prob, gcdM: gcd, cofFM: cofF, cofGM: cofG}, nil
	}

	gcd, cofF, cofG, err := modgcd.UnivariateGCD(prob.fu, prob.gu, e.cfg)
	if err != nil {
		return nil, wrapEngineError(err)
	}
	return &solved{prob: prob, gcdU: gcd, cofFU: cofF, cofGU: cofG}, nil
}

func (s *solved) result() *Result {
	if s.prob.kind == KindMultivariate {
		return &Result{
			Gcd:       fromMultiPoly(s.gcdM, s.prob.vars),
			CofactorF: fromMultiPoly(s.cofFM, s.prob.vars),
			CofactorG: fromMultiPoly(s.cofGM, s.prob.vars),
		}
	}
	return &Result{
		Gcd:       fromIntPoly(s.gcdU, s.prob.kind),
		CofactorF: fromIntPoly(s.cofFU, s.prob.kind),
		CofactorG: fromIntPoly(s.cofGU, s.prob.kind),
	}
}

// PolynomialGCD returns the greatest common divisor of f and g
func (e *engineImpl) PolynomialGCD(f, g *Polynomial) (*Polynomial, error) {
	s, err := e.run(f, g)
	if err != nil {
		return nil, err
	}
	return s.result().Gcd, nil
}

// Cofactors returns the GCD together with both cofactors
func (e *engineImpl) Cofactors(f, g *Polynomial) (*Result, error) {
	s, err := e.run(f, g)
	if err != nil {
		return nil, err
	}
	return s.result(), nil
}

// PolynomialLCM returns the least common multiple of f and g, computed as
// f times the cofactor of g
func (e *engineImpl) PolynomialLCM(f, g *Polynomial) (*Polynomial, error) {
	s, err := e.run(f, g)
	if err != nil {
		return nil, err
	}

	if s.prob.kind == KindMultivariate {
		if s.gcdM.IsZero() {
			return nil, &GcdError{Code: ErrInvalidInput, Message: "lcm of two zero polynomials is undefined"}
		}
		lcm := s.prob.fm.Mul(s.cofGM)
		if _, lead := lcm.LeadingTermLex(); lead != nil && lead.Sign() < 0 {
			lcm = lcm.MulScalar(big.NewInt(-1))
		}
		return fromMultiPoly(lcm, s.prob.vars), nil
	}

	if s.gcdU.IsZero() {
		return nil, &GcdError{Code: ErrInvalidInput, Message: "lcm of two zero polynomials is undefined"}
	}
	lcm := s.prob.fu.Mul(s.cofGU)
	if lcm.LeadingCoefficient().Sign() < 0 {
		lcm = lcm.Neg()
	}
	return fromIntPoly(lcm, s.prob.kind), nil
}

// AreCoprime reports whether the GCD of f and g is a non-zero constant,
// meaning the inputs share no polynomial factor of positive degree
func (e *engineImpl) AreCoprime(f, g *Polynomial) (bool, error) {
	s, err := e.run(f, g)
	if err != nil {
		return false, err
	}
	if s.prob.kind == KindMultivariate {
		return s.gcdM.IsConstant() && !s.gcdM.IsZero(), nil
	}
	return s.gcdU.IsConstant() && !s.gcdU.IsZero(), nil
}

// wrapEngineError maps internal failures to public error codes
func wrapEngineError(err error) error {
	var maxIter *modgcd.MaxIterationsError
	if errors.As(err, &maxIter) {
		return &GcdError{
			Code:      ErrMaxIterationsExceeded,
			Message:   "iteration budget exhausted during " + maxIter.Operation,
			Operation: maxIter.Operation,
			Limit:     maxIter.Limit,
			Cause:     err,
		}
	}
	if errors.Is(err, core.ErrDivisionByZero) {
		return &GcdError{Code: ErrDivisionByZero, Message: "division by zero", Cause: err}
	}
	return &GcdError{Code: ErrUnknown, Message: "polynomial GCD failed", Cause: err}
}
