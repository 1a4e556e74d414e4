package mathhook

import (
	"fmt"
	"math/big"
)

// Kind identifies the shape of a polynomial's coefficient structure
type Kind int

const (
	// KindConstant is a single integer
	KindConstant Kind = iota

	// KindUnivariate is a dense coefficient list in one variable
	KindUnivariate

	// KindMultivariate is a sparse term list over named variables
	KindMultivariate
)

// String returns a readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindUnivariate:
		return "univariate"
	case KindMultivariate:
		return "multivariate"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Term is one monomial of a sparse multivariate polynomial. Exponents is
// indexed parallel to the polynomial's Vars list.
type Term struct {
	Exponents []int
	Coeff     *big.Int
}

// Polynomial is the public description of an integer polynomial. Exactly
// one of the payload fields is meaningful, selected by Kind:
//
//   - KindConstant:     Constant
//   - KindUnivariate:   Coeffs, dense and ordered by ascending degree
//   - KindMultivariate: Vars and Terms
type Polynomial struct {
	Kind     Kind
	Constant *big.Int
	Coeffs   []*big.Int
	Vars     []string
	Terms    []Term
}

// NewConstant builds a constant polynomial
func NewConstant(value *big.Int) *Polynomial {
	return &Polynomial{Kind: KindConstant, Constant: new(big.Int).Set(value)}
}

// NewConstantInt64 builds a constant polynomial from an int64
func NewConstantInt64(value int64) *Polynomial {
	return NewConstant(big.NewInt(value))
}

// NewUnivariate builds a univariate polynomial from dense coefficients
// ordered by ascending degree
func NewUnivariate(coeffs []*big.Int) *Polynomial {
	cs := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		cs[i] = new(big.Int).Set(c)
	}
	return &Polynomial{Kind: KindUnivariate, Coeffs: cs}
}

// NewUnivariateInt64 builds a univariate polynomial from int64 coefficients
// ordered by ascending degree
func NewUnivariateInt64(coeffs []int64) *Polynomial {
	cs := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		cs[i] = big.NewInt(c)
	}
	return &Polynomial{Kind: KindUnivariate, Coeffs: cs}
}

// NewMultivariate builds a sparse multivariate polynomial over the named
// variables
func NewMultivariate(vars []string, terms []Term) *Polynomial {
	vs := make([]string, len(vars))
	copy(vs, vars)
	ts := make([]Term, len(terms))
	for i, t := range terms {
		exps := make([]int, len(t.Exponents))
		copy(exps, t.Exponents)
		ts[i] = Term{Exponents: exps, Coeff: new(big.Int).Set(t.Coeff)}
	}
	return &Polynomial{Kind: KindMultivariate, Vars: vs, Terms: ts}
}

// IsZero reports whether the polynomial is identically zero
func (p *Polynomial) IsZero() bool {
	switch p.Kind {
	case KindConstant:
		return p.Constant == nil || p.Constant.Sign() == 0
	case KindUnivariate:
		for _, c := range p.Coeffs {
			if c != nil && c.Sign() != 0 {
				return false
			}
		}
		return true
	case KindMultivariate:
		for _, t := range p.Terms {
			if t.Coeff != nil && t.Coeff.Sign() != 0 {
				return false
			}
		}
		return true
	}
	return false
}

// validate checks structural well-formedness
func (p *Polynomial) validate() error {
	if p == nil {
		return &GcdError{Code: ErrNotPolynomial, Message: "nil polynomial"}
	}
	switch p.Kind {
	case KindConstant:
		if p.Constant == nil {
			return &GcdError{Code: ErrNotPolynomial, Message: "constant polynomial without a value"}
		}
	case KindUnivariate:
		for i, c := range p.Coeffs {
			if c == nil {
				return &GcdError{Code: ErrNotPolynomial, Message: fmt.Sprintf("nil coefficient at degree %d", i)}
			}
		}
	case KindMultivariate:
		if len(p.Vars) == 0 {
			return &GcdError{Code: ErrNotPolynomial, Message: "multivariate polynomial without variables"}
		}
		seen := make(map[string]bool, len(p.Vars))
		for _, v := range p.Vars {
			if v == "" {
				return &GcdError{Code: ErrNotPolynomial, Message: "empty variable name"}
			}
			if seen[v] {
				return &GcdError{Code: ErrNotPolynomial, Message: "duplicate variable " + v}
			}
			seen[v] = true
		}
		for i, t := range p.Terms {
			if t.Coeff == nil {
				return &GcdError{Code: ErrNotPolynomial, Message: fmt.Sprintf("nil coefficient in term %d", i)}
			}
			if len(t.Exponents) != len(p.Vars) {
				return &GcdError{
					Code:    ErrNotPolynomial,
					Message: fmt.Sprintf("term %d has %d exponents for %d variables", i, len(t.Exponents), len(p.Vars)),
				}
			}
			for _, e := range t.Exponents {
				if e < 0 {
					return &GcdError{Code: ErrNotPolynomial, Message: fmt.Sprintf("negative exponent in term %d", i)}
				}
			}
		}
	default:
		return &GcdError{Code: ErrNotPolynomial, Message: "unknown polynomial kind " + p.Kind.String()}
	}
	return nil
}
