package modgcd

import (
	"fmt"
	"math/big"

	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// Helpers for sparse multivariate arithmetic with coefficients held
// canonically in [0, p). They back the per-prime stage of the Zippel driver.

// mpMulMod multiplies two mod-p polynomials, renormalizing coefficients
func mpMulMod(field *core.Field, a, b *core.MultiPoly) *core.MultiPoly {
	return a.Mul(b).ReduceMod(field)
}

// mpScaleMod multiplies every coefficient by a field element
func mpScaleMod(field *core.Field, a *core.MultiPoly, s *core.FieldElement) *core.MultiPoly {
	return a.MulScalar(s.Big()).ReduceMod(field)
}

// mpMonicLex scales the polynomial so its lex-leading coefficient is one,
// giving a canonical representative of the unit class
func mpMonicLex(field *core.Field, a *core.MultiPoly) (*core.MultiPoly, error) {
	if a.IsZero() {
		return a, nil
	}
	_, lead := a.LeadingTermLex()
	inv, err := field.NewElement(lead).Inv()
	if err != nil {
		return nil, err
	}
	return mpScaleMod(field, a, inv), nil
}

// mpDivExactMod attempts exact division of mod-p polynomials by lex
// leading-term elimination. Coefficient divisions always succeed over a
// field; failure means the divisor's leading monomial stops dividing the
// remainder's, i.e. the division is not exact.
func mpDivExactMod(field *core.Field, a, b *core.MultiPoly) (*core.MultiPoly, bool) {
	if b.IsZero() {
		return nil, false
	}
	dMon, dCoeff := b.LeadingTermLex()
	dInv, err := field.NewElement(dCoeff).Inv()
	if err != nil {
		return nil, false
	}

	quot := core.NewMultiPoly(a.NVars())
	rem := a.ReduceMod(field)

	for !rem.IsZero() {
		rMon, rCoeff := rem.LeadingTermLex()
		tMon, ok := rMon.Sub(dMon)
		if !ok {
			return nil, false
		}
		q := field.NewElement(rCoeff).Mul(dInv)

		quot.AddTerm(tMon, q.Big())
		step := core.NewMultiPoly(a.NVars())
		step.SetTerm(tMon, q.Big())
		rem = rem.Sub(step.Mul(b)).ReduceMod(field)
	}
	return quot.ReduceMod(field), true
}

// evalAllMod evaluates a mod-p polynomial at a full variable assignment
func evalAllMod(field *core.Field, p *core.MultiPoly, assign []*core.FieldElement) (*core.FieldElement, error) {
	result := field.Zero()
	mons, coeffs := p.Terms()
	for i, m := range mons {
		val := field.NewElement(coeffs[i])
		for v, e := range m {
			if e == 0 {
				continue
			}
			if assign[v] == nil {
				return nil, fmt.Errorf("missing assignment for variable %d", v)
			}
			val = val.Mul(assign[v].Exp(big.NewInt(int64(e))))
		}
		result = result.Add(val)
	}
	return result, nil
}

// polyZpToMulti embeds a dense univariate polynomial as a sparse
// multivariate one supported on powers of the given variable
func polyZpToMulti(u *core.PolyZp, nvars, variable int) *core.MultiPoly {
	out := core.NewMultiPoly(nvars)
	for i := 0; i <= u.Degree(); i++ {
		c := u.Coefficient(i)
		if c.IsZero() {
			continue
		}
		mon := make(core.Monomial, nvars)
		mon[variable] = i
		out.SetTerm(mon, c.Big())
	}
	return out
}
