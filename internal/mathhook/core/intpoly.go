package core

import (
	"fmt"
	"math/big"
	"strings"
)

// IntPoly represents a dense univariate polynomial with arbitrary-precision
// integer coefficients, indexed by degree. The zero polynomial has no
// coefficients and degree -1.
type IntPoly struct {
	coeffs []*big.Int
}

// NewIntPoly creates an integer polynomial, trimming leading zeros
func NewIntPoly(coeffs []*big.Int) *IntPoly {
	end := len(coeffs)
	for end > 0 && coeffs[end-1].Sign() == 0 {
		end--
	}
	trimmed := make([]*big.Int, end)
	for i := 0; i < end; i++ {
		trimmed[i] = new(big.Int).Set(coeffs[i])
	}
	return &IntPoly{coeffs: trimmed}
}

// IntPolyFromInt64s creates an integer polynomial from int64 coefficients
func IntPolyFromInt64s(coeffs []int64) *IntPoly {
	bigCoeffs := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		bigCoeffs[i] = big.NewInt(c)
	}
	return NewIntPoly(bigCoeffs)
}

// ZeroIntPoly returns the zero polynomial
func ZeroIntPoly() *IntPoly {
	return &IntPoly{}
}

// Degree returns the degree, -1 for the zero polynomial
func (p *IntPoly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether this is the zero polynomial
func (p *IntPoly) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsConstant reports whether the polynomial has degree at most zero
func (p *IntPoly) IsConstant() bool {
	return len(p.coeffs) <= 1
}

// Coefficient returns the coefficient of the given degree
func (p *IntPoly) Coefficient(degree int) *big.Int {
	if degree < 0 || degree >= len(p.coeffs) {
		return big.NewInt(0)
	}
	return new(big.Int).Set(p.coeffs[degree])
}

// LeadingCoefficient returns the highest-degree coefficient, zero for the
// zero polynomial
func (p *IntPoly) LeadingCoefficient() *big.Int {
	if p.IsZero() {
		return big.NewInt(0)
	}
	return new(big.Int).Set(p.coeffs[len(p.coeffs)-1])
}

// Coefficients returns a copy of the coefficient slice
func (p *IntPoly) Coefficients() []*big.Int {
	coeffs := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Int).Set(c)
	}
	return coeffs
}

// Content returns the non-negative integer GCD of all non-zero coefficients.
// The content of the zero polynomial is zero; the sign of the polynomial
// stays with the primitive part.
func (p *IntPoly) Content() *big.Int {
	content := big.NewInt(0)
	for _, c := range p.coeffs {
		if c.Sign() == 0 {
			continue
		}
		content.GCD(nil, nil, content, new(big.Int).Abs(c))
		if content.Cmp(big.NewInt(1)) == 0 {
			break
		}
	}
	return content
}

// PrimitivePart returns the polynomial divided by its content.
// content(f) * primitivePart(f) == f for any non-zero f.
func (p *IntPoly) PrimitivePart() *IntPoly {
	if p.IsZero() {
		return ZeroIntPoly()
	}
	content := p.Content()
	coeffs := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Int).Quo(c, content)
	}
	return NewIntPoly(coeffs)
}

// Add adds two integer polynomials
func (p *IntPoly) Add(other *IntPoly) *IntPoly {
	maxLen := len(p.coeffs)
	if len(other.coeffs) > maxLen {
		maxLen = len(other.coeffs)
	}
	coeffs := make([]*big.Int, maxLen)
	for i := 0; i < maxLen; i++ {
		coeffs[i] = new(big.Int).Add(p.Coefficient(i), other.Coefficient(i))
	}
	return NewIntPoly(coeffs)
}

// Mul multiplies two integer polynomials
func (p *IntPoly) Mul(other *IntPoly) *IntPoly {
	if p.IsZero() || other.IsZero() {
		return ZeroIntPoly()
	}
	coeffs := make([]*big.Int, p.Degree()+other.Degree()+1)
	for i := range coeffs {
		coeffs[i] = big.NewInt(0)
	}
	tmp := new(big.Int)
	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			coeffs[i+j].Add(coeffs[i+j], tmp.Mul(a, b))
		}
	}
	return NewIntPoly(coeffs)
}

// MulScalar multiplies every coefficient by the given integer
func (p *IntPoly) MulScalar(scalar *big.Int) *IntPoly {
	coeffs := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Int).Mul(c, scalar)
	}
	return NewIntPoly(coeffs)
}

// DivExact attempts exact polynomial division over the integers. It returns
// the quotient and true when the divisor divides p with zero remainder and
// integer quotient coefficients, or nil and false otherwise.
func (p *IntPoly) DivExact(divisor *IntPoly) (*IntPoly, bool) {
	if divisor.IsZero() {
		return nil, false
	}
	if p.IsZero() {
		return ZeroIntPoly(), true
	}
	if p.Degree() < divisor.Degree() {
		return nil, false
	}

	rem := p.Coefficients()
	quot := make([]*big.Int, p.Degree()-divisor.Degree()+1)
	for i := range quot {
		quot[i] = big.NewInt(0)
	}
	lc := divisor.LeadingCoefficient()

	for len(rem) >= len(divisor.coeffs) && len(rem) > 0 {
		shift := len(rem) - len(divisor.coeffs)
		q, r := new(big.Int).QuoRem(rem[len(rem)-1], lc, new(big.Int))
		if r.Sign() != 0 {
			return nil, false
		}
		quot[shift] = q

		tmp := new(big.Int)
		for i, dc := range divisor.coeffs {
			rem[shift+i].Sub(rem[shift+i], tmp.Mul(q, dc))
		}
		for len(rem) > 0 && rem[len(rem)-1].Sign() == 0 {
			rem = rem[:len(rem)-1]
		}
	}

	if len(rem) != 0 {
		return nil, false
	}
	return NewIntPoly(quot), true
}

// ReduceMod reduces the polynomial coefficient-wise into the given field
func (p *IntPoly) ReduceMod(field *Field) *PolyZp {
	return PolyZpFromBigInts(field, p.coeffs)
}

// MaxAbsCoefficient returns the largest coefficient magnitude
func (p *IntPoly) MaxAbsCoefficient() *big.Int {
	max := big.NewInt(0)
	abs := new(big.Int)
	for _, c := range p.coeffs {
		abs.Abs(c)
		if abs.Cmp(max) > 0 {
			max.Set(abs)
		}
	}
	return max
}

// Equal reports whether two integer polynomials are identical
func (p *IntPoly) Equal(other *IntPoly) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if c.Cmp(other.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// Neg returns the polynomial with every coefficient negated
func (p *IntPoly) Neg() *IntPoly {
	coeffs := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Int).Neg(c)
	}
	return NewIntPoly(coeffs)
}

// String returns a human-readable representation of the polynomial
func (p *IntPoly) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		c := p.coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, c.String())
		case i == 1 && c.Cmp(big.NewInt(1)) == 0:
			terms = append(terms, "x")
		case i == 1:
			terms = append(terms, c.String()+"x")
		case c.Cmp(big.NewInt(1)) == 0:
			terms = append(terms, fmt.Sprintf("x^%d", i))
		default:
			terms = append(terms, fmt.Sprintf("%sx^%d", c.String(), i))
		}
	}
	return strings.Join(terms, " + ")
}
