package core

import (
	"math/big"
	"strconv"
	"strings"
	"testing"
)

// mp2 builds a two-variable polynomial from "e0,e1" exponent keys
func mp2(t *testing.T, terms map[string]int64) *MultiPoly {
	t.Helper()
	p := NewMultiPoly(2)
	for key, c := range terms {
		parts := strings.Split(key, ",")
		e0, err := strconv.Atoi(parts[0])
		if err != nil {
			t.Fatalf("bad term key %q: %v", key, err)
		}
		e1, err := strconv.Atoi(parts[1])
		if err != nil {
			t.Fatalf("bad term key %q: %v", key, err)
		}
		p.AddTerm(Monomial{e0, e1}, big.NewInt(c))
	}
	return p
}

// TestMonomialLexOrder tests the lexicographic comparison
func TestMonomialLexOrder(t *testing.T) {
	cases := []struct {
		a, b Monomial
		less bool
	}{
		{Monomial{1, 0}, Monomial{2, 0}, true},
		{Monomial{2, 0}, Monomial{1, 5}, false},
		{Monomial{1, 1}, Monomial{1, 2}, true},
		{Monomial{3, 2}, Monomial{3, 2}, false},
	}
	for _, c := range cases {
		if got := c.a.LexLess(c.b); got != c.less {
			t.Errorf("LexLess(%v, %v): expected %v, got %v", c.a, c.b, c.less, got)
		}
	}
}

// TestMultiPolyTermBookkeeping tests zero-deleting term updates
func TestMultiPolyTermBookkeeping(t *testing.T) {
	p := NewMultiPoly(2)
	xy := Monomial{1, 1}

	p.SetTerm(xy, big.NewInt(3))
	if p.NumTerms() != 1 {
		t.Fatalf("Expected 1 term, got %d", p.NumTerms())
	}

	p.AddTerm(xy, big.NewInt(-3))
	if !p.IsZero() {
		t.Error("Cancelling the only term should leave the zero polynomial")
	}

	p.SetTerm(xy, big.NewInt(0))
	if p.NumTerms() != 0 {
		t.Error("Setting a zero coefficient should not create a term")
	}
}

// TestMultiPolyDegrees tests per-variable and total degrees
func TestMultiPolyDegrees(t *testing.T) {
	// p = x^2*y + y^3
	p := mp2(t, map[string]int64{"2,1": 1, "0,3": 1})

	if got := p.DegreeIn(0); got != 2 {
		t.Errorf("DegreeIn(x): expected 2, got %d", got)
	}
	if got := p.DegreeIn(1); got != 3 {
		t.Errorf("DegreeIn(y): expected 3, got %d", got)
	}
	if got := p.TotalDegree(); got != 3 {
		t.Errorf("TotalDegree: expected 3, got %d", got)
	}
}

// TestMultiPolyMul tests sparse multiplication
func TestMultiPolyMul(t *testing.T) {
	// (x + y)(x - y) = x^2 - y^2
	a := mp2(t, map[string]int64{"1,0": 1, "0,1": 1})
	b := mp2(t, map[string]int64{"1,0": 1, "0,1": -1})

	prod := a.Mul(b)
	want := mp2(t, map[string]int64{"2,0": 1, "0,2": -1})
	if !prod.Equal(want) {
		t.Errorf("(x+y)(x-y): expected %s, got %s", want, prod)
	}
}

// TestMultiPolyContent tests integer content and primitive part
func TestMultiPolyContent(t *testing.T) {
	// p = 4x + 6y
	p := mp2(t, map[string]int64{"1,0": 4, "0,1": 6})

	if got := p.Content(); got.Int64() != 2 {
		t.Errorf("Expected content 2, got %s", got)
	}
	pp := p.PrimitivePart()
	if !pp.MulScalar(big.NewInt(2)).Equal(p) {
		t.Error("content * primitive part != p")
	}
}

// TestMultiPolyDivExact tests exact division over the integers
func TestMultiPolyDivExact(t *testing.T) {
	// f = x^2*y + x*y^2 = x*y*(x + y)
	f := mp2(t, map[string]int64{"2,1": 1, "1,2": 1})
	d := mp2(t, map[string]int64{"1,1": 1})

	q, ok := f.DivExact(d)
	if !ok {
		t.Fatal("x*y should divide x^2*y + x*y^2")
	}
	want := mp2(t, map[string]int64{"1,0": 1, "0,1": 1})
	if !q.Equal(want) {
		t.Errorf("Expected quotient x + y, got %s", q)
	}

	// x^2 does not divide f
	if _, ok := f.DivExact(mp2(t, map[string]int64{"2,0": 1})); ok {
		t.Error("x^2 should not divide x^2*y + x*y^2")
	}
}

// TestMultiPolyCoefficientsIn tests grouping by one variable's exponent
func TestMultiPolyCoefficientsIn(t *testing.T) {
	// p = x^2*y + 3x^2 + y
	p := mp2(t, map[string]int64{"2,1": 1, "2,0": 3, "0,1": 1})

	byExp := p.CoefficientsIn(0)
	if len(byExp) != 2 {
		t.Fatalf("Expected 2 exponent groups, got %d", len(byExp))
	}

	// Coefficient of x^2 is y + 3
	c2 := byExp[2]
	want := mp2(t, map[string]int64{"0,1": 1, "0,0": 3})
	if !c2.Equal(want) {
		t.Errorf("Coefficient of x^2: expected %s, got %s", want, c2)
	}
}

// TestMultiPolyEvalToPolyZp tests partial evaluation down to one variable
func TestMultiPolyEvalToPolyZp(t *testing.T) {
	field := testField(t, 17)

	// p = x^2*y + x, evaluated at y = 3 gives 3x^2 + x
	p := mp2(t, map[string]int64{"2,1": 1, "1,0": 1})
	assign := []*FieldElement{nil, field.NewElementFromInt64(3)}

	u, err := p.EvalToPolyZp(field, 0, assign)
	if err != nil {
		t.Fatalf("EvalToPolyZp failed: %v", err)
	}

	want := PolyZpFromInt64s(field, []int64{0, 1, 3})
	if !u.Equal(want) {
		t.Errorf("Expected %s, got %s", want, u)
	}
}

// TestMultiPolyLeadingTermLex tests the lex leading term
func TestMultiPolyLeadingTermLex(t *testing.T) {
	// p = 2x^2*y - 5x*y^3
	p := mp2(t, map[string]int64{"2,1": 2, "1,3": -5})

	mon, coeff := p.LeadingTermLex()
	if !mon.Equal(Monomial{2, 1}) {
		t.Errorf("Expected leading monomial x^2*y, got %v", mon)
	}
	if coeff.Int64() != 2 {
		t.Errorf("Expected leading coefficient 2, got %s", coeff)
	}

	mon, coeff = NewMultiPoly(2).LeadingTermLex()
	if mon != nil || coeff != nil {
		t.Error("Zero polynomial should have nil leading term")
	}
}
