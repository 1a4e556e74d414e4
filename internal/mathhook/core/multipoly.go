package core

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Monomial is a fixed-length exponent vector over the variable list
type Monomial []int

// Key returns a canonical map key for the monomial
func (m Monomial) Key() string {
	parts := make([]string, len(m))
	for i, e := range m {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, ",")
}

// TotalDegree returns the sum of all exponents
func (m Monomial) TotalDegree() int {
	total := 0
	for _, e := range m {
		total += e
	}
	return total
}

// Clone returns a copy of the monomial
func (m Monomial) Clone() Monomial {
	out := make(Monomial, len(m))
	copy(out, m)
	return out
}

// Add returns the componentwise sum of two monomials
func (m Monomial) Add(other Monomial) Monomial {
	out := make(Monomial, len(m))
	for i := range m {
		out[i] = m[i] + other[i]
	}
	return out
}

// Sub returns the componentwise difference, or false if any entry would
// become negative
func (m Monomial) Sub(other Monomial) (Monomial, bool) {
	out := make(Monomial, len(m))
	for i := range m {
		out[i] = m[i] - other[i]
		if out[i] < 0 {
			return nil, false
		}
	}
	return out, true
}

// LexLess reports whether m precedes other in lexicographic order
func (m Monomial) LexLess(other Monomial) bool {
	for i := range m {
		if m[i] != other[i] {
			return m[i] < other[i]
		}
	}
	return false
}

// Equal reports whether two monomials are identical
func (m Monomial) Equal(other Monomial) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

type multiTerm struct {
	mon   Monomial
	coeff *big.Int
}

// MultiPoly represents a sparse multivariate polynomial over the integers:
// a mapping from exponent vector to arbitrary-precision coefficient.
// Zero coefficients are never stored.
type MultiPoly struct {
	nvars int
	terms map[string]*multiTerm
}

// NewMultiPoly creates the zero polynomial in the given number of variables
func NewMultiPoly(nvars int) *MultiPoly {
	return &MultiPoly{nvars: nvars, terms: make(map[string]*multiTerm)}
}

// NVars returns the number of variables
func (p *MultiPoly) NVars() int {
	return p.nvars
}

// SetTerm sets the coefficient of the given monomial, deleting the term
// when the coefficient is zero
func (p *MultiPoly) SetTerm(mon Monomial, coeff *big.Int) {
	if len(mon) != p.nvars {
		panic("monomial arity does not match polynomial")
	}
	key := mon.Key()
	if coeff.Sign() == 0 {
		delete(p.terms, key)
		return
	}
	p.terms[key] = &multiTerm{mon: mon.Clone(), coeff: new(big.Int).Set(coeff)}
}

// AddTerm adds the given coefficient onto the monomial's existing one
func (p *MultiPoly) AddTerm(mon Monomial, coeff *big.Int) {
	if coeff.Sign() == 0 {
		return
	}
	key := mon.Key()
	if t, ok := p.terms[key]; ok {
		t.coeff.Add(t.coeff, coeff)
		if t.coeff.Sign() == 0 {
			delete(p.terms, key)
		}
		return
	}
	p.terms[key] = &multiTerm{mon: mon.Clone(), coeff: new(big.Int).Set(coeff)}
}

// Coefficient returns the coefficient of the given monomial
func (p *MultiPoly) Coefficient(mon Monomial) *big.Int {
	if t, ok := p.terms[mon.Key()]; ok {
		return new(big.Int).Set(t.coeff)
	}
	return big.NewInt(0)
}

// IsZero reports whether this is the zero polynomial
func (p *MultiPoly) IsZero() bool {
	return len(p.terms) == 0
}

// IsConstant reports whether the polynomial has no variable dependence
func (p *MultiPoly) IsConstant() bool {
	for _, t := range p.terms {
		if t.mon.TotalDegree() > 0 {
			return false
		}
	}
	return true
}

// NumTerms returns the number of non-zero terms
func (p *MultiPoly) NumTerms() int {
	return len(p.terms)
}

// Terms returns the terms sorted in descending lexicographic monomial order
func (p *MultiPoly) Terms() ([]Monomial, []*big.Int) {
	mons := make([]Monomial, 0, len(p.terms))
	for _, t := range p.terms {
		mons = append(mons, t.mon)
	}
	sort.Slice(mons, func(i, j int) bool { return mons[j].LexLess(mons[i]) })

	coeffs := make([]*big.Int, len(mons))
	for i, m := range mons {
		coeffs[i] = new(big.Int).Set(p.terms[m.Key()].coeff)
	}
	return mons, coeffs
}

// LeadingTermLex returns the lexicographically greatest monomial and its
// coefficient; nil for the zero polynomial
func (p *MultiPoly) LeadingTermLex() (Monomial, *big.Int) {
	var lead Monomial
	for _, t := range p.terms {
		if lead == nil || lead.LexLess(t.mon) {
			lead = t.mon
		}
	}
	if lead == nil {
		return nil, nil
	}
	return lead.Clone(), new(big.Int).Set(p.terms[lead.Key()].coeff)
}

// DegreeIn returns the highest exponent of the given variable, -1 for zero
func (p *MultiPoly) DegreeIn(variable int) int {
	if p.IsZero() {
		return -1
	}
	deg := 0
	for _, t := range p.terms {
		if t.mon[variable] > deg {
			deg = t.mon[variable]
		}
	}
	return deg
}

// TotalDegree returns the highest monomial total degree, -1 for zero
func (p *MultiPoly) TotalDegree() int {
	if p.IsZero() {
		return -1
	}
	deg := 0
	for _, t := range p.terms {
		if d := t.mon.TotalDegree(); d > deg {
			deg = d
		}
	}
	return deg
}

// MaxDegrees returns the per-variable degree vector
func (p *MultiPoly) MaxDegrees() []int {
	degs := make([]int, p.nvars)
	for _, t := range p.terms {
		for i, e := range t.mon {
			if e > degs[i] {
				degs[i] = e
			}
		}
	}
	return degs
}

// Clone returns a deep copy of the polynomial
func (p *MultiPoly) Clone() *MultiPoly {
	out := NewMultiPoly(p.nvars)
	for _, t := range p.terms {
		out.SetTerm(t.mon, t.coeff)
	}
	return out
}

// Content returns the non-negative integer GCD of all coefficients
func (p *MultiPoly) Content() *big.Int {
	content := big.NewInt(0)
	for _, t := range p.terms {
		content.GCD(nil, nil, content, new(big.Int).Abs(t.coeff))
		if content.Cmp(big.NewInt(1)) == 0 {
			break
		}
	}
	return content
}

// PrimitivePart returns the polynomial divided by its integer content
func (p *MultiPoly) PrimitivePart() *MultiPoly {
	if p.IsZero() {
		return NewMultiPoly(p.nvars)
	}
	content := p.Content()
	out := NewMultiPoly(p.nvars)
	for _, t := range p.terms {
		out.SetTerm(t.mon, new(big.Int).Quo(t.coeff, content))
	}
	return out
}

// Add returns the sum of two polynomials
func (p *MultiPoly) Add(other *MultiPoly) *MultiPoly {
	out := p.Clone()
	for _, t := range other.terms {
		out.AddTerm(t.mon, t.coeff)
	}
	return out
}

// Sub returns the difference of two polynomials
func (p *MultiPoly) Sub(other *MultiPoly) *MultiPoly {
	out := p.Clone()
	neg := new(big.Int)
	for _, t := range other.terms {
		out.AddTerm(t.mon, neg.Neg(t.coeff))
	}
	return out
}

// Mul returns the product of two polynomials
func (p *MultiPoly) Mul(other *MultiPoly) *MultiPoly {
	out := NewMultiPoly(p.nvars)
	prod := new(big.Int)
	for _, a := range p.terms {
		for _, b := range other.terms {
			out.AddTerm(a.mon.Add(b.mon), prod.Mul(a.coeff, b.coeff))
		}
	}
	return out
}

// MulScalar multiplies every coefficient by the given integer
func (p *MultiPoly) MulScalar(scalar *big.Int) *MultiPoly {
	out := NewMultiPoly(p.nvars)
	prod := new(big.Int)
	for _, t := range p.terms {
		out.SetTerm(t.mon, prod.Mul(t.coeff, scalar))
	}
	return out
}

// DivExact attempts exact division over the integers using lex leading-term
// elimination. It returns the quotient and true on exact division, or nil
// and false when the divisor does not divide p.
func (p *MultiPoly) DivExact(divisor *MultiPoly) (*MultiPoly, bool) {
	if divisor.IsZero() {
		return nil, false
	}
	quot := NewMultiPoly(p.nvars)
	rem := p.Clone()
	dMon, dCoeff := divisor.LeadingTermLex()

	for !rem.IsZero() {
		rMon, rCoeff := rem.LeadingTermLex()
		tMon, ok := rMon.Sub(dMon)
		if !ok {
			return nil, false
		}
		q, r := new(big.Int).QuoRem(rCoeff, dCoeff, new(big.Int))
		if r.Sign() != 0 {
			return nil, false
		}

		quot.AddTerm(tMon, q)
		for _, dt := range divisor.terms {
			rem.AddTerm(tMon.Add(dt.mon), new(big.Int).Neg(new(big.Int).Mul(q, dt.coeff)))
		}
	}
	return quot, true
}

// ReduceMod reduces every coefficient into [0, p) for the given field
func (p *MultiPoly) ReduceMod(field *Field) *MultiPoly {
	out := NewMultiPoly(p.nvars)
	for _, t := range p.terms {
		out.SetTerm(t.mon, field.NewElement(t.coeff).Big())
	}
	return out
}

// CoefficientsIn decomposes the polynomial by powers of the given variable.
// The result maps each exponent to a polynomial in the remaining variables
// (same arity, with the chosen variable's exponent zeroed).
func (p *MultiPoly) CoefficientsIn(variable int) map[int]*MultiPoly {
	out := make(map[int]*MultiPoly)
	for _, t := range p.terms {
		e := t.mon[variable]
		coeff, ok := out[e]
		if !ok {
			coeff = NewMultiPoly(p.nvars)
			out[e] = coeff
		}
		reduced := t.mon.Clone()
		reduced[variable] = 0
		coeff.AddTerm(reduced, t.coeff)
	}
	return out
}

// EvalToPolyZp substitutes field values for every variable except mainVar
// and returns the resulting dense univariate polynomial over the field.
// assign must hold a value for each variable other than mainVar.
func (p *MultiPoly) EvalToPolyZp(field *Field, mainVar int, assign []*FieldElement) (*PolyZp, error) {
	if len(assign) != p.nvars {
		return nil, fmt.Errorf("assignment arity %d does not match %d variables", len(assign), p.nvars)
	}

	degree := p.DegreeIn(mainVar)
	if degree < 0 {
		return ZeroPolyZp(field), nil
	}

	coeffs := make([]*FieldElement, degree+1)
	for i := range coeffs {
		coeffs[i] = field.Zero()
	}

	for _, t := range p.terms {
		val := field.NewElement(t.coeff)
		for v, e := range t.mon {
			if v == mainVar || e == 0 {
				continue
			}
			if assign[v] == nil {
				return nil, fmt.Errorf("missing assignment for variable %d", v)
			}
			val = val.Mul(assign[v].Exp(big.NewInt(int64(e))))
		}
		coeffs[t.mon[mainVar]] = coeffs[t.mon[mainVar]].Add(val)
	}
	return NewPolyZp(field, coeffs), nil
}

// MaxAbsCoefficient returns the largest coefficient magnitude
func (p *MultiPoly) MaxAbsCoefficient() *big.Int {
	max := big.NewInt(0)
	abs := new(big.Int)
	for _, t := range p.terms {
		abs.Abs(t.coeff)
		if abs.Cmp(max) > 0 {
			max.Set(abs)
		}
	}
	return max
}

// Equal reports whether two polynomials have identical terms
func (p *MultiPoly) Equal(other *MultiPoly) bool {
	if p.nvars != other.nvars || len(p.terms) != len(other.terms) {
		return false
	}
	for key, t := range p.terms {
		o, ok := other.terms[key]
		if !ok || t.coeff.Cmp(o.coeff) != 0 {
			return false
		}
	}
	return true
}

// String returns a human-readable representation using x1..xn
func (p *MultiPoly) String() string {
	if p.IsZero() {
		return "0"
	}
	mons, coeffs := p.Terms()
	var terms []string
	for i, m := range mons {
		var b strings.Builder
		c := coeffs[i]
		if c.Cmp(big.NewInt(1)) != 0 || m.TotalDegree() == 0 {
			b.WriteString(c.String())
		}
		for v, e := range m {
			if e == 0 {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("*")
			}
			if e == 1 {
				fmt.Fprintf(&b, "x%d", v+1)
			} else {
				fmt.Fprintf(&b, "x%d^%d", v+1, e)
			}
		}
		terms = append(terms, b.String())
	}
	return strings.Join(terms, " + ")
}
