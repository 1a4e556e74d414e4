package modgcd

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// trialResult carries the outcome of one modular trial from a worker back
// to the accumulating loop
type trialResult struct {
	prime  *big.Int
	scaled *core.PolyZp
	degree int
	err    error
}

// univariateRun holds the call-local accumulation state of one modular GCD
// computation. It is discarded on return; only the prime table outlives a
// call.
type univariateRun struct {
	acc      *CRTAccumulator
	minDeg   int
	prev     *core.IntPoly
	stable   int
	verified bool
}

// UnivariateGCD computes gcd(f, g) over the integers by modular trials with
// Chinese-Remainder reconstruction, returning the gcd and both cofactors
// f/gcd and g/gcd. The result is always confirmed by trial division before
// it is returned.
func UnivariateGCD(f, g *core.IntPoly, cfg *Config) (*core.IntPoly, *core.IntPoly, *core.IntPoly, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	// Zero and constant inputs never reach the modular loop
	if f.IsZero() && g.IsZero() {
		return core.ZeroIntPoly(), core.ZeroIntPoly(), core.ZeroIntPoly(), nil
	}
	if f.IsZero() {
		return gcdWithZero(g)
	}
	if g.IsZero() {
		d, qg, qf, err := gcdWithZero(f)
		return d, qf, qg, err
	}
	if f.IsConstant() && g.IsConstant() {
		return constantGCD(f.Coefficient(0), g.Coefficient(0))
	}
	if f.IsConstant() || g.IsConstant() {
		return constantPolyGCD(f, g)
	}

	contF := f.Content()
	contG := g.Content()
	contGcd := new(big.Int).GCD(nil, nil, contF, contG)
	ppF := f.PrimitivePart()
	ppG := g.PrimitivePart()

	// Canonical leading coefficient: a field GCD is only defined up to a
	// unit, so every per-prime image is rescaled to gcd(lc f, lc g) mod p
	// before its coefficients can be CRT-combined with other primes'.
	gcdLc := new(big.Int).GCD(nil, nil,
		new(big.Int).Abs(ppF.LeadingCoefficient()),
		new(big.Int).Abs(ppG.LeadingCoefficient()))

	bound := coefficientBound(ppF, ppG, gcdLc)
	selector := NewPrimeSelector(cfg.StartingPrimeIdx, ppF.LeadingCoefficient(), ppG.LeadingCoefficient())
	run := &univariateRun{minDeg: -1}

	trials := 0
	for trials < cfg.MaxPrimes {
		batch := 1
		if cfg.Workers > 1 {
			batch = cfg.Workers
			if rest := cfg.MaxPrimes - trials; batch > rest {
				batch = rest
			}
		}
		results := runTrials(selector, batch, ppF, ppG, gcdLc)
		trials += len(results)

		for _, res := range results {
			if res.err != nil {
				return nil, nil, nil, res.err
			}

			// Degree zero mod p proves the primitive parts are coprime:
			// reduction can only inflate the GCD degree, never shrink it
			if res.degree == 0 {
				return attachContent(ppF, ppG, core.IntPolyFromInt64s([]int64{1}), contF, contG, contGcd)
			}

			switch {
			case run.acc == nil || res.degree < run.minDeg:
				// Every previously accumulated prime was unlucky: restart
				// the accumulation at the new minimum degree
				run.minDeg = res.degree
				run.acc = NewCRTAccumulator(res.prime, residuesOf(res.scaled, run.minDeg))
				run.prev = nil
				run.stable = 0
			case res.degree == run.minDeg:
				if err := run.acc.Combine(res.prime, residuesOf(res.scaled, run.minDeg)); err != nil {
					return nil, nil, nil, err
				}
			default:
				// This prime is unlucky; drop only this trial
				continue
			}

			candidate := core.NewIntPoly(run.acc.SymmetricLift()).PrimitivePart()
			if run.prev != nil && candidate.Equal(run.prev) {
				run.stable++
			} else {
				run.prev = candidate
				run.stable = 1
			}

			if run.stable < cfg.StabilityThreshold {
				continue
			}
			if run.acc.Modulus().Cmp(bound) <= 0 {
				continue
			}

			if qf, qg, ok := VerifyUnivariate(ppF, ppG, candidate); ok {
				gcd := candidate.MulScalar(contGcd)
				cofF := qf.MulScalar(new(big.Int).Quo(contF, contGcd))
				cofG := qg.MulScalar(new(big.Int).Quo(contG, contGcd))
				return gcd, cofF, cofG, nil
			}
			// Verification failed: discard the stability flag and retry
			// with more primes
			run.stable = 0
		}
	}

	return nil, nil, nil, &MaxIterationsError{Operation: "univariate modular GCD", Limit: cfg.MaxPrimes}
}

// runTrials computes a batch of independent modular trials. Each trial
// depends only on the immutable inputs and its own prime, so batches larger
// than one run concurrently; accumulation stays with the caller, which is
// the single writer.
func runTrials(selector *PrimeSelector, batch int, ppF, ppG *core.IntPoly, gcdLc *big.Int) []*trialResult {
	results := make([]*trialResult, batch)
	if batch == 1 {
		results[0] = computeTrial(selector.Next(), ppF, ppG, gcdLc)
		return results
	}

	var wg sync.WaitGroup
	for i := 0; i < batch; i++ {
		prime := selector.Next()
		wg.Add(1)
		go func(slot int, p *big.Int) {
			defer wg.Done()
			results[slot] = computeTrial(p, ppF, ppG, gcdLc)
		}(i, prime)
	}
	wg.Wait()
	return results
}

// computeTrial reduces both inputs mod one prime, computes their monic GCD
// in Z_p[x] and rescales it to the canonical leading coefficient
func computeTrial(prime *big.Int, ppF, ppG *core.IntPoly, gcdLc *big.Int) *trialResult {
	field, err := core.NewField(prime)
	if err != nil {
		return &trialResult{prime: prime, err: err}
	}

	gcdP, err := ppF.ReduceMod(field).Gcd(ppG.ReduceMod(field))
	if err != nil {
		return &trialResult{prime: prime, err: err}
	}
	if gcdP.IsZero() {
		return &trialResult{prime: prime, err: fmt.Errorf("modular gcd of non-zero inputs is zero at prime %s", prime)}
	}

	scaled := gcdP.MulScalar(field.NewElement(gcdLc))
	return &trialResult{prime: prime, scaled: scaled, degree: gcdP.Degree()}
}

// residuesOf extracts the coefficient residues of a scaled modular image as
// integers in [0, p), padded to the accumulated degree
func residuesOf(p *core.PolyZp, degree int) []*big.Int {
	out := make([]*big.Int, degree+1)
	for i := 0; i <= degree; i++ {
		out[i] = p.Coefficient(i).Big()
	}
	return out
}

// coefficientBound returns a Landau-Mignotte style bound on twice the
// largest coefficient magnitude the gcd can have. An undershoot only causes
// an earlier verification attempt; correctness rests on trial division.
func coefficientBound(ppF, ppG *core.IntPoly, gcdLc *big.Int) *big.Int {
	minDeg := ppF.Degree()
	if ppG.Degree() < minDeg {
		minDeg = ppG.Degree()
	}
	maxCoeff := ppF.MaxAbsCoefficient()
	if other := ppG.MaxAbsCoefficient(); other.Cmp(maxCoeff) > 0 {
		maxCoeff = other
	}

	bound := new(big.Int).Lsh(big.NewInt(1), uint(minDeg+2))
	bound.Mul(bound, gcdLc)
	bound.Mul(bound, maxCoeff)
	return bound
}

// gcdWithZero handles gcd(0, g): the gcd is g normalized to a positive
// leading coefficient
func gcdWithZero(g *core.IntPoly) (*core.IntPoly, *core.IntPoly, *core.IntPoly, error) {
	unit := core.IntPolyFromInt64s([]int64{1})
	if g.LeadingCoefficient().Sign() < 0 {
		return g.Neg(), core.ZeroIntPoly(), unit.Neg(), nil
	}
	return g, core.ZeroIntPoly(), unit, nil
}

// constantGCD handles two non-zero integer constants
func constantGCD(a, b *big.Int) (*core.IntPoly, *core.IntPoly, *core.IntPoly, error) {
	d := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	gcd := core.NewIntPoly([]*big.Int{d})
	cofF := core.NewIntPoly([]*big.Int{new(big.Int).Quo(a, d)})
	cofG := core.NewIntPoly([]*big.Int{new(big.Int).Quo(b, d)})
	return gcd, cofF, cofG, nil
}

// constantPolyGCD handles a non-zero constant against a non-constant
// polynomial: the gcd is gcd(constant, content)
func constantPolyGCD(f, g *core.IntPoly) (*core.IntPoly, *core.IntPoly, *core.IntPoly, error) {
	d := new(big.Int).GCD(nil, nil, f.Content(), g.Content())
	gcd := core.NewIntPoly([]*big.Int{d})
	qf, ok := f.DivExact(gcd)
	if !ok {
		return nil, nil, nil, fmt.Errorf("content division failed for %s by %s", f, d)
	}
	qg, ok := g.DivExact(gcd)
	if !ok {
		return nil, nil, nil, fmt.Errorf("content division failed for %s by %s", g, d)
	}
	return gcd, qf, qg, nil
}

// attachContent reattaches the integer content to a verified primitive
// candidate and finishes the cofactors
func attachContent(ppF, ppG, candidate *core.IntPoly, contF, contG, contGcd *big.Int) (*core.IntPoly, *core.IntPoly, *core.IntPoly, error) {
	qf, qg, ok := VerifyUnivariate(ppF, ppG, candidate)
	if !ok {
		return nil, nil, nil, fmt.Errorf("candidate %s failed trial division", candidate)
	}
	gcd := candidate.MulScalar(contGcd)
	cofF := qf.MulScalar(new(big.Int).Quo(contF, contGcd))
	cofG := qg.MulScalar(new(big.Int).Quo(contG, contGcd))
	return gcd, cofF, cofG, nil
}
