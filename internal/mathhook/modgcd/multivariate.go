package modgcd

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// Multivariate GCD by evaluation and interpolation. Dimensionality reduction
// peels one variable at a time over an iterative stage loop: fix all but the
// main variable at sampled points, solve univariate problems, interpolate
// the coefficient polynomials back across the samples. Dense coefficients
// use Lagrange interpolation; sparse ones use Zippel interpolation, which
// infers the monomial support from the previous stage and recovers only
// those coefficients from a transposed Vandermonde system. Auxiliary
// leading-coefficient and content subproblems descend on a strictly smaller
// variable set, bounded by Config.MaxVariables.

// MultivariateGCD computes the GCD and both cofactors of two sparse
// multivariate integer polynomials. The result is always confirmed by
// integer trial division before it is returned.
func MultivariateGCD(f, g *core.MultiPoly, cfg *Config) (*core.MultiPoly, *core.MultiPoly, *core.MultiPoly, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	if f.NVars() != g.NVars() {
		return nil, nil, nil, fmt.Errorf("variable count mismatch: %d vs %d", f.NVars(), g.NVars())
	}
	nvars := f.NVars()
	if nvars > cfg.MaxVariables {
		return nil, nil, nil, fmt.Errorf("input has %d variables, exceeding the configured maximum of %d", nvars, cfg.MaxVariables)
	}

	if f.IsZero() && g.IsZero() {
		zero := core.NewMultiPoly(nvars)
		return zero, core.NewMultiPoly(nvars), core.NewMultiPoly(nvars), nil
	}
	if f.IsZero() {
		return multiGcdWithZero(g)
	}
	if g.IsZero() {
		d, qg, qf, err := multiGcdWithZero(f)
		return d, qf, qg, err
	}
	if f.IsConstant() || g.IsConstant() {
		return multiConstantGCD(f, g)
	}

	// A multivariate structure that only ever uses one variable goes
	// straight to the univariate engine
	if v, single := singleUsedVariable(f, g); single {
		return delegateUnivariate(f, g, v, cfg)
	}

	contF := f.Content()
	contG := g.Content()
	contGcd := new(big.Int).GCD(nil, nil, contF, contG)
	ppF := f.PrimitivePart()
	ppG := g.PrimitivePart()

	_, lcF := ppF.LeadingTermLex()
	_, lcG := ppG.LeadingTermLex()
	gcdLc := new(big.Int).GCD(nil, nil, new(big.Int).Abs(lcF), new(big.Int).Abs(lcG))

	bound := multiCoefficientBound(ppF, ppG, gcdLc)
	selector := NewPrimeSelector(cfg.StartingPrimeIdx, lcF, lcG)
	seed := []byte("mathhook.modgcd|" + ppF.String() + "|" + ppG.String())

	var acc *multiAccum
	pointsUsed := 0

	for trials := 0; trials < cfg.MaxPrimes; trials++ {
		budget := cfg.MaxEvalPoints - pointsUsed
		if budget <= 0 {
			return nil, nil, nil, &MaxIterationsError{Operation: "evaluation point selection", Limit: cfg.MaxEvalPoints}
		}

		prime := selector.Next()
		field, err := core.NewField(prime)
		if err != nil {
			return nil, nil, nil, err
		}

		pts := NewPointSelector(field, append(seed, prime.Bytes()...), budget)
		ctx := &modCtx{field: field, cfg: cfg, pts: pts}
		image, err := ctx.gcd(ppF.ReduceMod(field), ppG.ReduceMod(field), 0)
		pointsUsed += pts.Drawn()
		if err != nil {
			return nil, nil, nil, err
		}
		if image == nil {
			// Unlucky prime or evaluation points: retry with the next prime
			continue
		}

		if image.IsConstant() {
			// A constant modular GCD proves the primitive parts coprime
			one := core.NewMultiPoly(nvars)
			one.SetTerm(make(core.Monomial, nvars), big.NewInt(1))
			return attachMultiContent(ppF, ppG, one, contF, contG, contGcd)
		}

		scaled := mpScaleMod(field, image, field.NewElement(gcdLc))
		leadMon, _ := scaled.LeadingTermLex()

		switch {
		case acc == nil || leadMon.LexLess(acc.lead):
			// All accumulated primes produced a larger image: they were
			// unlucky, restart at the new minimum
			acc = newMultiAccum(prime, scaled, leadMon)
		case leadMon.Equal(acc.lead):
			if err := acc.combine(prime, scaled); err != nil {
				return nil, nil, nil, err
			}
		default:
			// This prime is unlucky; drop only this trial
			continue
		}

		candidate := normalizeLexSign(acc.candidate().PrimitivePart())
		if acc.prev != nil && candidate.Equal(acc.prev) {
			acc.stable++
		} else {
			acc.prev = candidate
			acc.stable = 1
		}

		if acc.stable < cfg.StabilityThreshold || acc.modulus.Cmp(bound) <= 0 {
			continue
		}

		if gcd, cofF, cofG, err := attachMultiContent(ppF, ppG, candidate, contF, contG, contGcd); err == nil {
			return gcd, cofF, cofG, nil
		}
		// Verification failed: discard the stability flag and keep going
		acc.stable = 0
	}

	return nil, nil, nil, &MaxIterationsError{Operation: "multivariate modular GCD", Limit: cfg.MaxPrimes}
}

// multiAccum is the call-local CRT accumulation state over a sparse term
// support. Missing terms combine as residue zero, which is the correct
// residue whenever a coefficient vanishes mod one of the primes.
type multiAccum struct {
	modulus  *big.Int
	residues map[string]*big.Int
	mons     map[string]core.Monomial
	lead     core.Monomial
	prev     *core.MultiPoly
	stable   int
}

func newMultiAccum(prime *big.Int, image *core.MultiPoly, lead core.Monomial) *multiAccum {
	acc := &multiAccum{
		modulus:  new(big.Int).Set(prime),
		residues: make(map[string]*big.Int),
		mons:     make(map[string]core.Monomial),
		lead:     lead,
	}
	mons, coeffs := image.Terms()
	for i, m := range mons {
		acc.residues[m.Key()] = new(big.Int).Set(coeffs[i])
		acc.mons[m.Key()] = m
	}
	return acc
}

func (a *multiAccum) combine(prime *big.Int, image *core.MultiPoly) error {
	incoming := make(map[string]*big.Int)
	mons, coeffs := image.Terms()
	for i, m := range mons {
		incoming[m.Key()] = coeffs[i]
		if _, ok := a.mons[m.Key()]; !ok {
			a.mons[m.Key()] = m
			a.residues[m.Key()] = big.NewInt(0)
		}
	}
	for key := range a.residues {
		r2, ok := incoming[key]
		if !ok {
			r2 = big.NewInt(0)
		}
		combined, err := CombinePair(a.residues[key], a.modulus, r2, prime)
		if err != nil {
			return err
		}
		a.residues[key] = combined
	}
	a.modulus.Mul(a.modulus, prime)
	return nil
}

func (a *multiAccum) candidate() *core.MultiPoly {
	var nvars int
	for _, m := range a.mons {
		nvars = len(m)
		break
	}
	out := core.NewMultiPoly(nvars)
	for key, r := range a.residues {
		out.SetTerm(a.mons[key], SymmetricMod(r, a.modulus))
	}
	return out
}

// modCtx carries the per-prime state of one modular multivariate trial
type modCtx struct {
	field *core.Field
	cfg   *Config
	pts   *PointSelector
}

// image computation statuses for one evaluation point
const (
	imageOK = iota
	// imageBadPoint marks a point that annihilated a leading coefficient
	// or produced an inflated image; only that point is replaced
	imageBadPoint
	// imageRestart marks a drop in observed GCD degree: every earlier
	// point was unlucky and the whole lift restarts
	imageRestart
)

// liftAttempts bounds how often a lift restarts after unlucky points before
// the whole prime is abandoned
const liftAttempts = 3

// gcd computes a canonical (lex-monic) GCD of two non-zero mod-p
// polynomials, or nil when the evaluation points were unlucky. Auxiliary
// content and leading-coefficient subproblems recurse on strictly fewer
// effective variables; depth is guarded against that invariant breaking.
func (ctx *modCtx) gcd(fp, gp *core.MultiPoly, depth int) (*core.MultiPoly, error) {
	if depth > fp.NVars() {
		return nil, fmt.Errorf("variable elimination failed to terminate at depth %d", depth)
	}
	if fp.IsZero() {
		return mpMonicLex(ctx.field, gp)
	}
	if gp.IsZero() {
		return mpMonicLex(ctx.field, fp)
	}
	if fp.IsConstant() || gp.IsConstant() {
		return constantOne(fp.NVars()), nil
	}

	mainVar := -1
	for v := 0; v < fp.NVars(); v++ {
		if fp.DegreeIn(v) > 0 && gp.DegreeIn(v) > 0 {
			mainVar = v
			break
		}
	}
	if mainVar < 0 {
		// No shared variable: the GCD has degree zero in every variable
		return constantOne(fp.NVars()), nil
	}

	contF, err := ctx.contentWrt(fp, mainVar, depth)
	if err != nil || contF == nil {
		return nil, err
	}
	contG, err := ctx.contentWrt(gp, mainVar, depth)
	if err != nil || contG == nil {
		return nil, err
	}

	ppF, ok := mpDivExactMod(ctx.field, fp, contF)
	if !ok {
		return nil, fmt.Errorf("content %s does not divide %s", contF, fp)
	}
	ppG, ok := mpDivExactMod(ctx.field, gp, contG)
	if !ok {
		return nil, fmt.Errorf("content %s does not divide %s", contG, gp)
	}

	cont, err := ctx.gcd(contF, contG, depth+1)
	if err != nil || cont == nil {
		return nil, err
	}

	// Leading coefficients w.r.t. the main variable fix the scaling of
	// every interpolated image: a field GCD is defined only up to a unit
	gamma, err := ctx.gcd(
		ppF.CoefficientsIn(mainVar)[ppF.DegreeIn(mainVar)],
		ppG.CoefficientsIn(mainVar)[ppG.DegreeIn(mainVar)],
		depth+1,
	)
	if err != nil || gamma == nil {
		return nil, err
	}

	active := activeVariables(ppF, ppG, gamma, mainVar)
	analyzer := NewSparsityAnalyzer(ctx.cfg.SparseThreshold)
	useSparse := ctx.cfg.UseSparse && len(active) > 0 && analyzer.ShouldUseSparse(ppF, ppG)

	var lifted *core.MultiPoly
	expect := -1
	for attempt := 0; attempt < liftAttempts; attempt++ {
		if len(active) == 0 {
			lifted, err = ctx.univariateCase(ppF, ppG, mainVar)
		} else if useSparse {
			lifted, err = ctx.sparseLift(ppF, ppG, gamma, mainVar, active, &expect)
		} else {
			lifted, err = ctx.denseLift(ppF, ppG, gamma, mainVar, active, &expect)
		}
		if err != nil {
			return nil, err
		}
		if lifted != nil {
			break
		}
		ctx.pts.Reset()
	}
	if lifted == nil {
		return nil, nil
	}

	// The gamma scaling can leave extraneous content in the main variable
	contLift, err := ctx.contentWrt(lifted, mainVar, depth)
	if err != nil || contLift == nil {
		return nil, err
	}
	lifted, ok = mpDivExactMod(ctx.field, lifted, contLift)
	if !ok {
		return nil, fmt.Errorf("content %s does not divide lifted candidate", contLift)
	}

	// Modular verification: an interpolated candidate built from unlucky
	// points will not divide both inputs
	if _, ok := mpDivExactMod(ctx.field, ppF, lifted); !ok {
		return nil, nil
	}
	if _, ok := mpDivExactMod(ctx.field, ppG, lifted); !ok {
		return nil, nil
	}

	return mpMonicLex(ctx.field, mpMulMod(ctx.field, lifted, cont))
}

// contentWrt computes the content of p w.r.t. one variable: the GCD of its
// coefficient polynomials, which live on a smaller variable set. Returns
// nil when an underlying trial was unlucky.
func (ctx *modCtx) contentWrt(p *core.MultiPoly, variable, depth int) (*core.MultiPoly, error) {
	byExp := p.CoefficientsIn(variable)
	exps := make([]int, 0, len(byExp))
	for e := range byExp {
		exps = append(exps, e)
	}
	sort.Ints(exps)

	var cont *core.MultiPoly
	for _, e := range exps {
		if cont == nil {
			cont = byExp[e]
			continue
		}
		next, err := ctx.gcd(cont, byExp[e], depth+1)
		if err != nil || next == nil {
			return nil, err
		}
		cont = next
		if cont.IsConstant() {
			break
		}
	}
	if cont.IsConstant() {
		return constantOne(p.NVars()), nil
	}
	return mpMonicLex(ctx.field, cont)
}

// univariateCase handles a lift with no remaining variables: both inputs
// are univariate in the main variable mod p
func (ctx *modCtx) univariateCase(ppF, ppG *core.MultiPoly, mainVar int) (*core.MultiPoly, error) {
	empty := make([]*core.FieldElement, ppF.NVars())
	uf, err := ppF.EvalToPolyZp(ctx.field, mainVar, empty)
	if err != nil {
		return nil, err
	}
	ug, err := ppG.EvalToPolyZp(ctx.field, mainVar, empty)
	if err != nil {
		return nil, err
	}
	u, err := uf.Gcd(ug)
	if err != nil {
		return nil, err
	}
	return polyZpToMulti(u, ppF.NVars(), mainVar), nil
}

// univariateImage evaluates all remaining variables and returns the scaled
// univariate GCD image at that point
func (ctx *modCtx) univariateImage(ppF, ppG, gamma *core.MultiPoly, mainVar int, assign []*core.FieldElement, expect *int) (*core.PolyZp, int, error) {
	uf, err := ppF.EvalToPolyZp(ctx.field, mainVar, assign)
	if err != nil {
		return nil, imageBadPoint, err
	}
	if uf.Degree() != ppF.DegreeIn(mainVar) {
		return nil, imageBadPoint, nil
	}
	ug, err := ppG.EvalToPolyZp(ctx.field, mainVar, assign)
	if err != nil {
		return nil, imageBadPoint, err
	}
	if ug.Degree() != ppG.DegreeIn(mainVar) {
		return nil, imageBadPoint, nil
	}

	u, err := uf.Gcd(ug)
	if err != nil {
		return nil, imageBadPoint, err
	}

	gammaVal, err := evalAllMod(ctx.field, gamma, assign)
	if err != nil {
		return nil, imageBadPoint, err
	}
	if gammaVal.IsZero() {
		return nil, imageBadPoint, nil
	}

	switch d := u.Degree(); {
	case *expect < 0:
		*expect = d
	case d < *expect:
		// Every earlier point produced an inflated image
		*expect = d
		return nil, imageRestart, nil
	case d > *expect:
		return nil, imageBadPoint, nil
	}

	return u.MulScalar(gammaVal), imageOK, nil
}

// denseFrame is one pending reconstruction task of the dense interpolation
// worklist. Frames form an explicit stack over the variable list, so the
// peeling depth never grows the call stack.
type denseFrame struct {
	parent *denseFrame
	slot   int
	depth  int
	assign []*core.FieldElement
	nodes  []*core.FieldElement
	images []*core.MultiPoly
}

// denseLift reconstructs the gamma-scaled GCD over all active variables by
// iterated Lagrange interpolation on a tensor grid, driven by an explicit
// frame stack. It returns nil when the run hit unlucky points.
func (ctx *modCtx) denseLift(ppF, ppG, gamma *core.MultiPoly, mainVar int, active []int, expect *int) (*core.MultiPoly, error) {
	nvars := ppF.NVars()
	root := &denseFrame{depth: len(active), assign: make([]*core.FieldElement, nvars)}
	stack := []*denseFrame{root}
	var final *core.MultiPoly

	deliver := func(fr *denseFrame, img *core.MultiPoly) {
		if fr.parent == nil {
			final = img
			return
		}
		fr.parent.images[fr.slot] = img
	}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]

		if fr.depth == 0 {
			stack = stack[:len(stack)-1]
			u, status, err := ctx.univariateImage(ppF, ppG, gamma, mainVar, fr.assign, expect)
			if err != nil {
				return nil, err
			}
			switch status {
			case imageRestart:
				return nil, nil
			case imageBadPoint:
				if fr.parent == nil {
					return nil, nil
				}
				// Replace only this node and retry its image
				np, perr := ctx.pts.Next()
				if perr != nil {
					return nil, perr
				}
				fr.parent.nodes[fr.slot] = np
				stack = append(stack, childFrame(fr.parent, fr.slot, active))
			default:
				deliver(fr, polyZpToMulti(u, nvars, mainVar))
			}
			continue
		}

		if fr.nodes == nil {
			count := varBound(ppF, ppG, gamma, active[fr.depth-1]) + 1
			fr.nodes = make([]*core.FieldElement, count)
			for i := range fr.nodes {
				p, err := ctx.pts.Next()
				if err != nil {
					return nil, err
				}
				fr.nodes[i] = p
			}
			fr.images = make([]*core.MultiPoly, count)
		}

		pending := -1
		for i, img := range fr.images {
			if img == nil {
				pending = i
				break
			}
		}
		if pending >= 0 {
			stack = append(stack, childFrame(fr, pending, active))
			continue
		}

		stack = stack[:len(stack)-1]
		res, err := lagrangeLiftVar(ctx.field, fr.images, fr.nodes, active[fr.depth-1])
		if err != nil {
			return nil, err
		}
		deliver(fr, res)
	}
	return final, nil
}

// childFrame creates the frame that reconstructs one grid slice of its
// parent, with the parent's stage variable pinned to the slot's node
func childFrame(parent *denseFrame, slot int, active []int) *denseFrame {
	assign := make([]*core.FieldElement, len(parent.assign))
	copy(assign, parent.assign)
	assign[active[parent.depth-1]] = parent.nodes[slot]
	return &denseFrame{
		parent: parent,
		slot:   slot,
		depth:  parent.depth - 1,
		assign: assign,
	}
}

// sparseLift reconstructs the gamma-scaled GCD by Zippel's staged lifting:
// an anchored univariate image establishes the skeleton, then each stage
// restores one variable using sparse images at fresh nodes
func (ctx *modCtx) sparseLift(ppF, ppG, gamma *core.MultiPoly, mainVar int, active []int, expect *int) (*core.MultiPoly, error) {
	nvars := ppF.NVars()
	anchor := make([]*core.FieldElement, nvars)

	var skeleton *core.MultiPoly
	for attempt := 0; attempt < liftAttempts; attempt++ {
		for _, v := range active {
			p, err := ctx.pts.Next()
			if err != nil {
				return nil, err
			}
			anchor[v] = p
		}
		u, status, err := ctx.univariateImage(ppF, ppG, gamma, mainVar, anchor, expect)
		if err != nil {
			return nil, err
		}
		if status == imageRestart {
			return nil, nil
		}
		if status == imageOK {
			skeleton = polyZpToMulti(u, nvars, mainVar)
			break
		}
	}
	if skeleton == nil {
		return nil, nil
	}

	current := skeleton
	for idx, v := range active {
		needed := varBound(ppF, ppG, gamma, v) + 1
		nodes := []*core.FieldElement{anchor[v]}
		images := []*core.MultiPoly{current}

		tries := 0
		for len(nodes) < needed {
			if tries++; tries > needed+liftAttempts*4 {
				return nil, nil
			}
			b, err := ctx.pts.Next()
			if err != nil {
				return nil, err
			}
			fixed := make([]*core.FieldElement, nvars)
			copy(fixed, anchor)
			fixed[v] = b

			img, status, err := ctx.sparseImage(ppF, ppG, gamma, mainVar, active[:idx], current, fixed, expect)
			if err != nil {
				return nil, err
			}
			switch status {
			case imageRestart:
				return nil, nil
			case imageBadPoint:
				continue
			}
			nodes = append(nodes, b)
			images = append(images, img)
		}

		lifted, err := lagrangeLiftVar(ctx.field, images, nodes, v)
		if err != nil {
			return nil, err
		}
		current = lifted
	}
	return current, nil
}

// sparseImage recovers one image of the gamma-scaled GCD over the already
// lifted variables, assuming the monomial support of the current skeleton.
// Each main-variable coefficient is solved from a transposed Vandermonde
// system built on evaluations at geometric point sequences.
func (ctx *modCtx) sparseImage(ppF, ppG, gamma *core.MultiPoly, mainVar int, knownVars []int, skeleton *core.MultiPoly, fixed []*core.FieldElement, expect *int) (*core.MultiPoly, int, error) {
	if len(knownVars) == 0 {
		u, status, err := ctx.univariateImage(ppF, ppG, gamma, mainVar, fixed, expect)
		if err != nil || status != imageOK {
			return nil, status, err
		}
		return polyZpToMulti(u, ppF.NVars(), mainVar), imageOK, nil
	}

	// Group the skeleton support by main-variable exponent
	groups := make(map[int][]core.Monomial)
	maxGroup := 0
	mons, _ := skeleton.Terms()
	for _, m := range mons {
		e := m[mainVar]
		groups[e] = append(groups[e], m)
		if len(groups[e]) > maxGroup {
			maxGroup = len(groups[e])
		}
	}

	for attempt := 0; attempt < liftAttempts; attempt++ {
		// Per-variable multipliers for the geometric evaluation sequence
		w := make([]*core.FieldElement, ppF.NVars())
		for _, v := range knownVars {
			p, err := ctx.pts.Next()
			if err != nil {
				return nil, imageBadPoint, err
			}
			w[v] = p
		}

		nodes, distinct := groupNodes(ctx.field, groups, knownVars, w)
		if !distinct {
			continue
		}

		// Evaluate at w^1 .. w^T
		images := make([]*core.PolyZp, 0, maxGroup)
		ok := true
		for j := 1; j <= maxGroup; j++ {
			assign := make([]*core.FieldElement, len(fixed))
			copy(assign, fixed)
			for _, v := range knownVars {
				assign[v] = w[v].Exp(big.NewInt(int64(j)))
			}
			u, status, err := ctx.univariateImage(ppF, ppG, gamma, mainVar, assign, expect)
			if err != nil {
				return nil, imageBadPoint, err
			}
			if status == imageRestart {
				return nil, imageRestart, nil
			}
			if status != imageOK {
				ok = false
				break
			}
			images = append(images, u)
		}
		if !ok {
			continue
		}

		// The skeleton must cover every exponent seen in the evaluations
		for _, u := range images {
			for e := 0; e <= u.Degree(); e++ {
				if !u.Coefficient(e).IsZero() {
					if _, covered := groups[e]; !covered {
						return nil, imageRestart, nil
					}
				}
			}
		}

		result := core.NewMultiPoly(ppF.NVars())
		solved := true
		for e, ms := range groups {
			values := make([]*core.FieldElement, len(ms))
			for j := 0; j < len(ms); j++ {
				values[j] = images[j].Coefficient(e)
			}
			solution, err := solveVandermonde(ctx.field, nodes[e], values)
			if err != nil {
				solved = false
				break
			}
			for i, m := range ms {
				result.SetTerm(m, solution[i].Big())
			}
		}
		if !solved {
			continue
		}
		return result.ReduceMod(ctx.field), imageOK, nil
	}
	return nil, imageBadPoint, nil
}

// groupNodes computes the Vandermonde nodes of each support group: the
// monomials evaluated at the multiplier point. Nodes must be pairwise
// distinct within a group for the system to be solvable.
func groupNodes(field *core.Field, groups map[int][]core.Monomial, knownVars []int, w []*core.FieldElement) (map[int][]*core.FieldElement, bool) {
	nodes := make(map[int][]*core.FieldElement)
	for e, ms := range groups {
		seen := make(map[string]bool)
		list := make([]*core.FieldElement, len(ms))
		for i, m := range ms {
			val := field.One()
			for _, v := range knownVars {
				if m[v] == 0 {
					continue
				}
				val = val.Mul(w[v].Exp(big.NewInt(int64(m[v]))))
			}
			if seen[val.String()] {
				return nil, false
			}
			seen[val.String()] = true
			list[i] = val
		}
		nodes[e] = list
	}
	return nodes, true
}

// varBound bounds the degree of the scaled GCD in one variable
func varBound(ppF, ppG, gamma *core.MultiPoly, v int) int {
	bound := ppF.DegreeIn(v)
	if d := ppG.DegreeIn(v); d < bound {
		bound = d
	}
	if bound < 0 {
		bound = 0
	}
	if d := gamma.DegreeIn(v); d > 0 {
		bound += d
	}
	return bound
}

// activeVariables lists the variables, other than the main one, that the
// lift must reconstruct
func activeVariables(ppF, ppG, gamma *core.MultiPoly, mainVar int) []int {
	var active []int
	for v := 0; v < ppF.NVars(); v++ {
		if v == mainVar {
			continue
		}
		if ppF.DegreeIn(v) > 0 || ppG.DegreeIn(v) > 0 || gamma.DegreeIn(v) > 0 {
			active = append(active, v)
		}
	}
	return active
}

func constantOne(nvars int) *core.MultiPoly {
	one := core.NewMultiPoly(nvars)
	one.SetTerm(make(core.Monomial, nvars), big.NewInt(1))
	return one
}

// normalizeLexSign flips the sign so the lex-leading coefficient is positive
func normalizeLexSign(p *core.MultiPoly) *core.MultiPoly {
	if p.IsZero() {
		return p
	}
	if _, lead := p.LeadingTermLex(); lead.Sign() < 0 {
		return p.MulScalar(big.NewInt(-1))
	}
	return p
}

// multiGcdWithZero handles gcd(0, g)
func multiGcdWithZero(g *core.MultiPoly) (*core.MultiPoly, *core.MultiPoly, *core.MultiPoly, error) {
	nvars := g.NVars()
	unit := constantOne(nvars)
	if _, lead := g.LeadingTermLex(); lead.Sign() < 0 {
		return g.MulScalar(big.NewInt(-1)), core.NewMultiPoly(nvars), unit.MulScalar(big.NewInt(-1)), nil
	}
	return g.Clone(), core.NewMultiPoly(nvars), unit, nil
}

// multiConstantGCD handles the case where at least one input is a non-zero
// constant: the gcd is the gcd of the integer contents
func multiConstantGCD(f, g *core.MultiPoly) (*core.MultiPoly, *core.MultiPoly, *core.MultiPoly, error) {
	nvars := f.NVars()
	d := new(big.Int).GCD(nil, nil, f.Content(), g.Content())
	gcd := core.NewMultiPoly(nvars)
	gcd.SetTerm(make(core.Monomial, nvars), d)

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

// singleUsedVariable reports whether only one variable appears across both
// inputs
func singleUsedVariable(f, g *core.MultiPoly) (int, bool) {
	used := -1
	for v := 0; v < f.NVars(); v++ {
		if f.DegreeIn(v) > 0 || g.DegreeIn(v) > 0 {
			if used >= 0 {
				return -1, false
			}
			used = v
		}
	}
	return used, used >= 0
}

// delegateUnivariate routes an effectively univariate pair through the
// univariate engine and embeds the results back
func delegateUnivariate(f, g *core.MultiPoly, v int, cfg *Config) (*core.MultiPoly, *core.MultiPoly, *core.MultiPoly, error) {
	nvars := f.NVars()
	fu, err := multiToIntPoly(f, v)
	if err != nil {
		return nil, nil, nil, err
	}
	gu, err := multiToIntPoly(g, v)
	if err != nil {
		return nil, nil, nil, err
	}
	gcd, cofF, cofG, err := UnivariateGCD(fu, gu, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return intPolyToMulti(gcd, nvars, v), intPolyToMulti(cofF, nvars, v), intPolyToMulti(cofG, nvars, v), nil
}

// multiToIntPoly converts a polynomial that only uses one variable into a
// dense univariate integer polynomial
func multiToIntPoly(p *core.MultiPoly, v int) (*core.IntPoly, error) {
	coeffs := make([]*big.Int, p.DegreeIn(v)+1)
	for i := range coeffs {
		coeffs[i] = big.NewInt(0)
	}
	mons, cs := p.Terms()
	for i, m := range mons {
		for u, e := range m {
			if u != v && e != 0 {
				return nil, fmt.Errorf("polynomial is not univariate in variable %d", v)
			}
		}
		coeffs[m[v]] = cs[i]
	}
	return core.NewIntPoly(coeffs), nil
}

// intPolyToMulti embeds a univariate integer polynomial into the
// multivariate representation
func intPolyToMulti(p *core.IntPoly, nvars, v int) *core.MultiPoly {
	out := core.NewMultiPoly(nvars)
	for i := 0; i <= p.Degree(); i++ {
		c := p.Coefficient(i)
		if c.Sign() == 0 {
			continue
		}
		mon := make(core.Monomial, nvars)
		mon[v] = i
		out.SetTerm(mon, c)
	}
	return out
}

// attachMultiContent verifies the candidate by trial division and
// reattaches the integer content on success
func attachMultiContent(ppF, ppG, candidate *core.MultiPoly, contF, contG, contGcd *big.Int) (*core.MultiPoly, *core.MultiPoly, *core.MultiPoly, error) {
	qf, qg, ok := VerifyMultivariate(ppF, ppG, candidate)
	if !ok {
		return nil, nil, nil, fmt.Errorf("candidate %s failed trial division", candidate)
	}
	gcd := candidate.MulScalar(contGcd)
	cofF := qf.MulScalar(new(big.Int).Quo(contF, contGcd))
	cofG := qg.MulScalar(new(big.Int).Quo(contG, contGcd))
	return gcd, cofF, cofG, nil
}

// multiCoefficientBound mirrors the univariate Landau-Mignotte style bound
// for the stability check
func multiCoefficientBound(ppF, ppG *core.MultiPoly, gcdLc *big.Int) *big.Int {
	minDeg := ppF.TotalDegree()
	if d := ppG.TotalDegree(); d < minDeg {
		minDeg = d
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
