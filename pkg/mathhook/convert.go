package mathhook

import (
	"math/big"

	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// problem is a pair of polynomials promoted to a common representation.
// Constants promote freely; a univariate and a multivariate input only
// unify when the multivariate side has a single variable.
type problem struct {
	kind Kind
	vars []string

	fu, gu *core.IntPoly
	fm, gm *core.MultiPoly
}

// unify validates both inputs and promotes them to a common representation
func unify(f, g *Polynomial) (*problem, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if err := g.validate(); err != nil {
		return nil, err
	}

	fk, gk := f.Kind, g.Kind
	if fk == KindMultivariate || gk == KindMultivariate {
		vars, err := unionVars(f, g)
		if err != nil {
			return nil, err
		}
		fm, err := toMultiPoly(f, vars)
		if err != nil {
			return nil, err
		}
		gm, err := toMultiPoly(g, vars)
		if err != nil {
			return nil, err
		}
		return &problem{kind: KindMultivariate, vars: vars, fm: fm, gm: gm}, nil
	}

	kind := KindUnivariate
	if fk == KindConstant && gk == KindConstant {
		kind = KindConstant
	}
	return &problem{kind: kind, fu: toIntPoly(f), gu: toIntPoly(g)}, nil
}

// unionVars merges the variable lists, keeping f's order and appending g's
// extras
func unionVars(f, g *Polynomial) ([]string, error) {
	var vars []string
	seen := make(map[string]bool)
	add := func(list []string) {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}
	add(f.Vars)
	add(g.Vars)

	for _, p := range []*Polynomial{f, g} {
		if p.Kind == KindUnivariate && len(vars) > 1 {
			return nil, &GcdError{
				Code:    ErrInvalidInput,
				Message: "cannot unify a univariate polynomial with a multivariate one over several variables",
			}
		}
	}
	if len(vars) == 0 {
		// Both sides were constants promoted into a multivariate problem
		vars = []string{"x"}
	}
	return vars, nil
}

// toIntPoly converts a constant or univariate description to the dense
// internal form
func toIntPoly(p *Polynomial) *core.IntPoly {
	if p.Kind == KindConstant {
		return core.NewIntPoly([]*big.Int{p.Constant})
	}
	return core.NewIntPoly(p.Coeffs)
}

// toMultiPoly converts any description to the sparse internal form over the
// given variable list
func toMultiPoly(p *Polynomial, vars []string) (*core.MultiPoly, error) {
	nvars := len(vars)
	out := core.NewMultiPoly(nvars)
	switch p.Kind {
	case KindConstant:
		out.SetTerm(make(core.Monomial, nvars), p.Constant)
	case KindUnivariate:
		// The single shared variable is always the first slot
		for i, c := range p.Coeffs {
			if c.Sign() == 0 {
				continue
			}
			mon := make(core.Monomial, nvars)
			mon[0] = i
			out.AddTerm(mon, c)
		}
	case KindMultivariate:
		index := make(map[string]int, nvars)
		for i, v := range vars {
			index[v] = i
		}
		for _, t := range p.Terms {
			if t.Coeff.Sign() == 0 {
				continue
			}
			mon := make(core.Monomial, nvars)
			for i, e := range t.Exponents {
				mon[index[p.Vars[i]]] = e
			}
			out.AddTerm(mon, t.Coeff)
		}
	}
	return out, nil
}

// fromIntPoly converts an internal dense polynomial back to the public form
func fromIntPoly(p *core.IntPoly, kind Kind) *Polynomial {
	if kind == KindConstant {
		return NewConstant(p.Coefficient(0))
	}
	if p.IsZero() {
		return NewUnivariate([]*big.Int{big.NewInt(0)})
	}
	return NewUnivariate(p.Coefficients())
}

// fromMultiPoly converts an internal sparse polynomial back to the public
// form, with terms in descending lex order
func fromMultiPoly(p *core.MultiPoly, vars []string) *Polynomial {
	mons, coeffs := p.Terms()
	terms := make([]Term, len(mons))
	for i, m := range mons {
		exps := make([]int, len(m))
		copy(exps, m)
		terms[i] = Term{Exponents: exps, Coeff: coeffs[i]}
	}
	return NewMultivariate(vars, terms)
}
