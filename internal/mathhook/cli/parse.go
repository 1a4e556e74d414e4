package cli

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/mathhook/mathhook/pkg/mathhook"
)

// parsePolynomial parses a polynomial description. With an empty variable
// list the input is a dense comma-separated coefficient list by ascending
// degree ("-1,0,1" is x^2 - 1). With variables it is a term list: terms
// separated by ';', each "coeff:e1,e2,..." with one exponent per variable
// ("1:1,1; -2:0,1" over x,y is x*y - 2y).
func parsePolynomial(spec string, vars []string) (*mathhook.Polynomial, error) {
	if len(vars) == 0 {
		return parseUnivariate(spec)
	}
	return parseMultivariate(spec, vars)
}

func parseUnivariate(spec string) (*mathhook.Polynomial, error) {
	parts := strings.Split(spec, ",")
	coeffs := make([]*big.Int, len(parts))
	for i, part := range parts {
		c, ok := new(big.Int).SetString(strings.TrimSpace(part), 10)
		if !ok {
			return nil, fmt.Errorf("invalid coefficient %q at degree %d", strings.TrimSpace(part), i)
		}
		coeffs[i] = c
	}
	return mathhook.NewUnivariate(coeffs), nil
}

func parseMultivariate(spec string, vars []string) (*mathhook.Polynomial, error) {
	var terms []mathhook.Term
	for _, raw := range strings.Split(spec, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		coeffStr, expStr, found := strings.Cut(raw, ":")
		if !found {
			return nil, fmt.Errorf("term %q is missing the coefficient separator ':'", raw)
		}
		coeff, ok := new(big.Int).SetString(strings.TrimSpace(coeffStr), 10)
		if !ok {
			return nil, fmt.Errorf("invalid coefficient %q", strings.TrimSpace(coeffStr))
		}
		expParts := strings.Split(expStr, ",")
		if len(expParts) != len(vars) {
			return nil, fmt.Errorf("term %q has %d exponents for %d variables", raw, len(expParts), len(vars))
		}
		exps := make([]int, len(expParts))
		for i, part := range expParts {
			e, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || e < 0 {
				return nil, fmt.Errorf("invalid exponent %q in term %q", strings.TrimSpace(part), raw)
			}
			exps[i] = e
		}
		terms = append(terms, mathhook.Term{Exponents: exps, Coeff: coeff})
	}
	return mathhook.NewMultivariate(vars, terms), nil
}

// formatPolynomial renders a polynomial in conventional notation
func formatPolynomial(p *mathhook.Polynomial) string {
	switch p.Kind {
	case mathhook.KindConstant:
		return p.Constant.String()
	case mathhook.KindUnivariate:
		return formatUnivariate(p)
	case mathhook.KindMultivariate:
		return formatMultivariate(p)
	}
	return "?"
}

func formatUnivariate(p *mathhook.Polynomial) string {
	var b strings.Builder
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		c := p.Coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		writeTerm(&b, c, monomialString([]string{"x"}, []int{i}))
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

func formatMultivariate(p *mathhook.Polynomial) string {
	var b strings.Builder
	for _, t := range p.Terms {
		if t.Coeff.Sign() == 0 {
			continue
		}
		writeTerm(&b, t.Coeff, monomialString(p.Vars, t.Exponents))
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

func writeTerm(b *strings.Builder, coeff *big.Int, mono string) {
	c := new(big.Int).Set(coeff)
	if b.Len() == 0 {
		if c.Sign() < 0 {
			b.WriteString("-")
			c.Neg(c)
		}
	} else if c.Sign() < 0 {
		b.WriteString(" - ")
		c.Neg(c)
	} else {
		b.WriteString(" + ")
	}

	if mono == "" {
		b.WriteString(c.String())
		return
	}
	if c.Cmp(big.NewInt(1)) != 0 {
		b.WriteString(c.String())
		b.WriteString("*")
	}
	b.WriteString(mono)
}

func monomialString(vars []string, exps []int) string {
	var parts []string
	for i, e := range exps {
		switch {
		case e == 1:
			parts = append(parts, vars[i])
		case e > 1:
			parts = append(parts, fmt.Sprintf("%s^%d", vars[i], e))
		}
	}
	return strings.Join(parts, "*")
}
