package core

import (
	"testing"
)

// TestIntPolyContent tests content extraction with mixed signs
func TestIntPolyContent(t *testing.T) {
	cases := []struct {
		name   string
		coeffs []int64
		want   int64
	}{
		{"common factor", []int64{4, 2}, 2},
		{"primitive", []int64{3, 2}, 1},
		{"negative leading", []int64{-4, -2}, 2},
		{"all same", []int64{6, 6, 6}, 6},
		{"single", []int64{-5}, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := IntPolyFromInt64s(c.coeffs)
			if got := p.Content(); got.Int64() != c.want {
				t.Errorf("Content(%v): expected %d, got %s", c.coeffs, c.want, got)
			}
		})
	}

	if got := ZeroIntPoly().Content(); got.Sign() != 0 {
		t.Errorf("Content of zero polynomial should be 0, got %s", got)
	}
}

// TestIntPolyPrimitivePart tests that content times primitive part restores
// the polynomial, with the sign staying on the primitive part
func TestIntPolyPrimitivePart(t *testing.T) {
	p := IntPolyFromInt64s([]int64{4, -2, 6})
	cont := p.Content()
	pp := p.PrimitivePart()

	if cont.Int64() != 2 {
		t.Errorf("Expected content 2, got %s", cont)
	}
	if !pp.MulScalar(cont).Equal(p) {
		t.Errorf("content * primitive part != p")
	}
	if pp.Content().Int64() != 1 {
		t.Errorf("Primitive part should have content 1, got %s", pp.Content())
	}

	// Negative leading coefficient stays negative
	neg := IntPolyFromInt64s([]int64{2, -4})
	if neg.PrimitivePart().LeadingCoefficient().Sign() >= 0 {
		t.Error("Primitive part should keep the sign of the input")
	}
}

// TestIntPolyMul tests integer polynomial multiplication
func TestIntPolyMul(t *testing.T) {
	a := IntPolyFromInt64s([]int64{-1, 1}) // x - 1
	b := IntPolyFromInt64s([]int64{1, 1})  // x + 1

	prod := a.Mul(b)
	want := IntPolyFromInt64s([]int64{-1, 0, 1}) // x^2 - 1
	if !prod.Equal(want) {
		t.Errorf("(x-1)(x+1): expected %s, got %s", want, prod)
	}

	if !a.Mul(ZeroIntPoly()).IsZero() {
		t.Error("Product with zero should be zero")
	}
}

// TestIntPolyDivExact tests exact division and its failure on non-divisors
func TestIntPolyDivExact(t *testing.T) {
	f := IntPolyFromInt64s([]int64{-1, 0, 0, 1}) // x^3 - 1
	g := IntPolyFromInt64s([]int64{-1, 1})       // x - 1

	q, ok := f.DivExact(g)
	if !ok {
		t.Fatal("x - 1 should divide x^3 - 1")
	}
	want := IntPolyFromInt64s([]int64{1, 1, 1}) // x^2 + x + 1
	if !q.Equal(want) {
		t.Errorf("Expected quotient %s, got %s", want, q)
	}

	// x + 2 does not divide x^3 - 1
	if _, ok := f.DivExact(IntPolyFromInt64s([]int64{2, 1})); ok {
		t.Error("x + 2 should not divide x^3 - 1")
	}

	// Inexact leading coefficient division must be detected
	if _, ok := IntPolyFromInt64s([]int64{0, 3}).DivExact(IntPolyFromInt64s([]int64{0, 2})); ok {
		t.Error("2x should not exactly divide 3x")
	}
}

// TestIntPolyReduceMod tests reduction into a prime field
func TestIntPolyReduceMod(t *testing.T) {
	field := testField(t, 7)

	p := IntPolyFromInt64s([]int64{-1, 9, 14}) // 14x^2 + 9x - 1
	r := p.ReduceMod(field)

	// mod 7: 2x + 6, the quadratic term vanishes
	if r.Degree() != 1 {
		t.Fatalf("Expected degree 1 after reduction, got %d", r.Degree())
	}
	if r.Coefficient(1).Big().Int64() != 2 {
		t.Errorf("Expected linear coefficient 2, got %s", r.Coefficient(1))
	}
	if r.Coefficient(0).Big().Int64() != 6 {
		t.Errorf("Expected constant term 6, got %s", r.Coefficient(0))
	}
}

// TestIntPolyMaxAbsCoefficient tests the coefficient magnitude helper
func TestIntPolyMaxAbsCoefficient(t *testing.T) {
	p := IntPolyFromInt64s([]int64{3, -17, 5})
	if got := p.MaxAbsCoefficient(); got.Int64() != 17 {
		t.Errorf("Expected 17, got %s", got)
	}
}
