package core

import (
	"fmt"
	"math/big"
	"strings"
)

// PolyZp represents a dense univariate polynomial with coefficients in Z_p,
// indexed by degree. The zero polynomial has no coefficients and degree -1.
type PolyZp struct {
	coeffs []*FieldElement
	field  *Field
}

// NewPolyZp creates a polynomial from field elements, trimming leading zeros
func NewPolyZp(field *Field, coeffs []*FieldElement) *PolyZp {
	for _, c := range coeffs {
		if !c.Field().Equals(field) {
			panic("coefficient from a different field")
		}
	}

	end := len(coeffs)
	for end > 0 && coeffs[end-1].IsZero() {
		end--
	}

	trimmed := make([]*FieldElement, end)
	copy(trimmed, coeffs[:end])

	return &PolyZp{coeffs: trimmed, field: field}
}

// PolyZpFromBigInts creates a polynomial from raw integer coefficients,
// reducing each one mod p
func PolyZpFromBigInts(field *Field, coeffs []*big.Int) *PolyZp {
	fieldCoeffs := make([]*FieldElement, len(coeffs))
	for i, c := range coeffs {
		fieldCoeffs[i] = field.NewElement(c)
	}
	return NewPolyZp(field, fieldCoeffs)
}

// PolyZpFromInt64s creates a polynomial from int64 coefficients
func PolyZpFromInt64s(field *Field, coeffs []int64) *PolyZp {
	fieldCoeffs := make([]*FieldElement, len(coeffs))
	for i, c := range coeffs {
		fieldCoeffs[i] = field.NewElementFromInt64(c)
	}
	return NewPolyZp(field, fieldCoeffs)
}

// ZeroPolyZp returns the zero polynomial over the given field
func ZeroPolyZp(field *Field) *PolyZp {
	return &PolyZp{coeffs: nil, field: field}
}

// Degree returns the degree of the polynomial, -1 for the zero polynomial
func (p *PolyZp) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether this is the zero polynomial
func (p *PolyZp) IsZero() bool {
	return len(p.coeffs) == 0
}

// Field returns the field the polynomial is defined over
func (p *PolyZp) Field() *Field {
	return p.field
}

// Coefficient returns the coefficient of the given degree
func (p *PolyZp) Coefficient(degree int) *FieldElement {
	if degree < 0 || degree >= len(p.coeffs) {
		return p.field.Zero()
	}
	return p.coeffs[degree]
}

// LeadingCoefficient returns the coefficient of the highest degree term,
// zero for the zero polynomial
func (p *PolyZp) LeadingCoefficient() *FieldElement {
	if p.IsZero() {
		return p.field.Zero()
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Coefficients returns a copy of the polynomial coefficients
func (p *PolyZp) Coefficients() []*FieldElement {
	coeffs := make([]*FieldElement, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return coeffs
}

// Eval evaluates the polynomial at the given point using Horner's rule
func (p *PolyZp) Eval(point *FieldElement) *FieldElement {
	if !point.Field().Equals(p.field) {
		panic("cannot evaluate polynomial at point from different field")
	}

	result := p.field.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(point).Add(p.coeffs[i])
	}
	return result
}

// Add adds two polynomials
func (p *PolyZp) Add(other *PolyZp) *PolyZp {
	if !p.field.Equals(other.field) {
		panic("cannot add polynomials from different fields")
	}

	maxLen := len(p.coeffs)
	if len(other.coeffs) > maxLen {
		maxLen = len(other.coeffs)
	}

	coeffs := make([]*FieldElement, maxLen)
	for i := 0; i < maxLen; i++ {
		coeffs[i] = p.Coefficient(i).Add(other.Coefficient(i))
	}
	return NewPolyZp(p.field, coeffs)
}

// Sub subtracts two polynomials
func (p *PolyZp) Sub(other *PolyZp) *PolyZp {
	if !p.field.Equals(other.field) {
		panic("cannot subtract polynomials from different fields")
	}

	maxLen := len(p.coeffs)
	if len(other.coeffs) > maxLen {
		maxLen = len(other.coeffs)
	}

	coeffs := make([]*FieldElement, maxLen)
	for i := 0; i < maxLen; i++ {
		coeffs[i] = p.Coefficient(i).Sub(other.Coefficient(i))
	}
	return NewPolyZp(p.field, coeffs)
}

// Mul multiplies two polynomials
func (p *PolyZp) Mul(other *PolyZp) *PolyZp {
	if !p.field.Equals(other.field) {
		panic("cannot multiply polynomials from different fields")
	}

	if p.IsZero() || other.IsZero() {
		return ZeroPolyZp(p.field)
	}

	coeffs := make([]*FieldElement, p.Degree()+other.Degree()+1)
	for i := range coeffs {
		coeffs[i] = p.field.Zero()
	}
	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(a.Mul(b))
		}
	}
	return NewPolyZp(p.field, coeffs)
}

// MulScalar multiplies the polynomial by a scalar
func (p *PolyZp) MulScalar(scalar *FieldElement) *PolyZp {
	coeffs := make([]*FieldElement, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c.Mul(scalar)
	}
	return NewPolyZp(p.field, coeffs)
}

// DivRem performs polynomial long division, returning quotient and remainder
// with f = q*divisor + r and deg(r) < deg(divisor). Dividing by the zero
// polynomial returns ErrDivisionByZero.
func (p *PolyZp) DivRem(divisor *PolyZp) (*PolyZp, *PolyZp, error) {
	if !p.field.Equals(divisor.field) {
		return nil, nil, fmt.Errorf("cannot divide polynomials from different fields")
	}
	if divisor.IsZero() {
		return nil, nil, fmt.Errorf("polynomial division by the zero polynomial: %w", ErrDivisionByZero)
	}
	if p.Degree() < divisor.Degree() {
		return ZeroPolyZp(p.field), p, nil
	}

	// The divisor's leading coefficient is always invertible over a field
	lcInv, err := divisor.LeadingCoefficient().Inv()
	if err != nil {
		return nil, nil, err
	}

	rem := make([]*FieldElement, len(p.coeffs))
	copy(rem, p.coeffs)
	quot := make([]*FieldElement, p.Degree()-divisor.Degree()+1)
	for i := range quot {
		quot[i] = p.field.Zero()
	}

	for len(rem) >= len(divisor.coeffs) && len(rem) > 0 {
		shift := len(rem) - len(divisor.coeffs)
		factor := rem[len(rem)-1].Mul(lcInv)
		quot[shift] = factor

		for i, dc := range divisor.coeffs {
			rem[shift+i] = rem[shift+i].Sub(factor.Mul(dc))
		}
		for len(rem) > 0 && rem[len(rem)-1].IsZero() {
			rem = rem[:len(rem)-1]
		}
	}

	return NewPolyZp(p.field, quot), NewPolyZp(p.field, rem), nil
}

// Monic scales the polynomial so its leading coefficient is one
func (p *PolyZp) Monic() (*PolyZp, error) {
	if p.IsZero() {
		return p, nil
	}
	lcInv, err := p.LeadingCoefficient().Inv()
	if err != nil {
		return nil, err
	}
	return p.MulScalar(lcInv), nil
}

// Gcd computes the monic greatest common divisor via the Euclidean algorithm.
// The result is normalized monic so gcds from different primes are comparable.
func (p *PolyZp) Gcd(other *PolyZp) (*PolyZp, error) {
	f, g := p, other
	for !g.IsZero() {
		_, r, err := f.DivRem(g)
		if err != nil {
			return nil, err
		}
		f, g = g, r
	}
	return f.Monic()
}

// ExtendedGcd computes the monic gcd together with Bezout coefficients
// (s, t) such that gcd = s*p + t*other
func (p *PolyZp) ExtendedGcd(other *PolyZp) (gcd, s, t *PolyZp, err error) {
	one := NewPolyZp(p.field, []*FieldElement{p.field.One()})
	zero := ZeroPolyZp(p.field)

	rPrev, rCur := p, other
	sPrev, sCur := one, zero
	tPrev, tCur := zero, one

	for !rCur.IsZero() {
		q, r, derr := rPrev.DivRem(rCur)
		if derr != nil {
			return nil, nil, nil, derr
		}
		rPrev, rCur = rCur, r
		sPrev, sCur = sCur, sPrev.Sub(q.Mul(sCur))
		tPrev, tCur = tCur, tPrev.Sub(q.Mul(tCur))
	}

	if rPrev.IsZero() {
		return rPrev, sPrev, tPrev, nil
	}

	// Normalize so the gcd is monic, scaling the Bezout pair to match
	lcInv, ierr := rPrev.LeadingCoefficient().Inv()
	if ierr != nil {
		return nil, nil, nil, ierr
	}
	return rPrev.MulScalar(lcInv), sPrev.MulScalar(lcInv), tPrev.MulScalar(lcInv), nil
}

// Equal reports whether two polynomials have identical coefficients
func (p *PolyZp) Equal(other *PolyZp) bool {
	if !p.field.Equals(other.field) || len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if !c.Equal(other.coeffs[i]) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the polynomial
func (p *PolyZp) String() string {
	if p.IsZero() {
		return "0"
	}

	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, c.String())
		case i == 1 && c.IsOne():
			terms = append(terms, "x")
		case i == 1:
			terms = append(terms, c.String()+"x")
		case c.IsOne():
			terms = append(terms, fmt.Sprintf("x^%d", i))
		default:
			terms = append(terms, fmt.Sprintf("%sx^%d", c.String(), i))
		}
	}
	return strings.Join(terms, " + ")
}

// InterpolatePolyZp performs dense Lagrange interpolation through the given
// sample points. The x-coordinates must be pairwise distinct.
func InterpolatePolyZp(field *Field, xs, ys []*FieldElement) (*PolyZp, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, fmt.Errorf("interpolation needs matching non-empty sample slices, got %d/%d", len(xs), len(ys))
	}

	result := ZeroPolyZp(field)
	for i := range xs {
		// Lagrange basis polynomial L_i scaled by y_i
		basis := NewPolyZp(field, []*FieldElement{field.One()})
		denom := field.One()
		for j := range xs {
			if i == j {
				continue
			}
			// basis *= (x - x_j)
			basis = basis.Mul(NewPolyZp(field, []*FieldElement{xs[j].Neg(), field.One()}))
			d := xs[i].Sub(xs[j])
			if d.IsZero() {
				return nil, fmt.Errorf("duplicate interpolation node %s", xs[i])
			}
			denom = denom.Mul(d)
		}
		scale, err := ys[i].Div(denom)
		if err != nil {
			return nil, err
		}
		result = result.Add(basis.MulScalar(scale))
	}
	return result, nil
}
