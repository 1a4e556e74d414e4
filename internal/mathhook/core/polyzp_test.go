package core

import (
	"math/big"
	"testing"
)

func testField(t *testing.T, p int64) *Field {
	t.Helper()
	field, err := NewField(big.NewInt(p))
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	return field
}

// TestPolyZpDegree tests degree computation and leading coefficient trimming
func TestPolyZpDegree(t *testing.T) {
	field := testField(t, 17)

	p := PolyZpFromInt64s(field, []int64{1, 2, 3})
	if p.Degree() != 2 {
		t.Errorf("Expected degree 2, got %d", p.Degree())
	}

	// Trailing zeros above the true degree must be trimmed
	trimmed := PolyZpFromInt64s(field, []int64{1, 2, 0, 0})
	if trimmed.Degree() != 1 {
		t.Errorf("Expected degree 1 after trimming, got %d", trimmed.Degree())
	}

	zero := ZeroPolyZp(field)
	if zero.Degree() != -1 {
		t.Errorf("Zero polynomial should have degree -1, got %d", zero.Degree())
	}
	if !zero.IsZero() {
		t.Error("Zero polynomial should report IsZero")
	}
}

// TestPolyZpEval tests Horner evaluation
func TestPolyZpEval(t *testing.T) {
	field := testField(t, 17)

	// p(x) = x^2 + 2x + 3
	p := PolyZpFromInt64s(field, []int64{3, 2, 1})
	got := p.Eval(field.NewElementFromInt64(2))
	// p(2) = 4 + 4 + 3 = 11
	if got.Big().Int64() != 11 {
		t.Errorf("p(2): expected 11, got %s", got)
	}

	if got := p.Eval(field.Zero()); got.Big().Int64() != 3 {
		t.Errorf("p(0): expected 3, got %s", got)
	}
}

// TestPolyZpArithmetic tests add, sub and mul
func TestPolyZpArithmetic(t *testing.T) {
	field := testField(t, 17)

	a := PolyZpFromInt64s(field, []int64{1, 1})  // x + 1
	b := PolyZpFromInt64s(field, []int64{16, 1}) // x - 1

	sum := a.Add(b)
	if sum.Degree() != 1 || sum.Coefficient(1).Big().Int64() != 2 || !sum.Coefficient(0).IsZero() {
		t.Errorf("(x+1) + (x-1): expected 2x, got %s", sum)
	}

	// (x+1)(x-1) = x^2 - 1
	prod := a.Mul(b)
	if prod.Degree() != 2 {
		t.Fatalf("Expected degree 2 product, got %d", prod.Degree())
	}
	if prod.Coefficient(0).Big().Int64() != 16 {
		t.Errorf("Product constant term: expected -1 (16 mod 17), got %s", prod.Coefficient(0))
	}
	if !prod.Coefficient(1).IsZero() {
		t.Errorf("Product linear term should vanish, got %s", prod.Coefficient(1))
	}

	// Cancellation must trim the result
	diff := a.Sub(a)
	if !diff.IsZero() {
		t.Errorf("a - a should be zero, got %s", diff)
	}
}

// TestPolyZpDivRem tests long division and the remainder invariant
func TestPolyZpDivRem(t *testing.T) {
	field := testField(t, 17)

	// f = x^3 + 2x + 5, g = x + 3
	f := PolyZpFromInt64s(field, []int64{5, 2, 0, 1})
	g := PolyZpFromInt64s(field, []int64{3, 1})

	q, r, err := f.DivRem(g)
	if err != nil {
		t.Fatalf("DivRem failed: %v", err)
	}
	if r.Degree() >= g.Degree() {
		t.Errorf("Remainder degree %d not below divisor degree %d", r.Degree(), g.Degree())
	}

	// f must equal q*g + r
	back := q.Mul(g).Add(r)
	if !back.Equal(f) {
		t.Errorf("q*g + r != f: got %s, want %s", back, f)
	}

	if _, _, err := f.DivRem(ZeroPolyZp(field)); err == nil {
		t.Error("Division by the zero polynomial should fail")
	}
}

// TestPolyZpGcd tests the Euclidean GCD with a known common factor
func TestPolyZpGcd(t *testing.T) {
	field := testField(t, 17)

	// f = (x-1)(x+1) = x^2 - 1, g = (x-1)^2 = x^2 - 2x + 1
	f := PolyZpFromInt64s(field, []int64{16, 0, 1})
	g := PolyZpFromInt64s(field, []int64{1, 15, 1})

	d, err := f.Gcd(g)
	if err != nil {
		t.Fatalf("Gcd failed: %v", err)
	}

	// Monic gcd is x - 1 = x + 16
	if d.Degree() != 1 {
		t.Fatalf("Expected gcd degree 1, got %d", d.Degree())
	}
	if !d.LeadingCoefficient().IsOne() {
		t.Errorf("Gcd should be monic, leading coefficient %s", d.LeadingCoefficient())
	}
	if d.Coefficient(0).Big().Int64() != 16 {
		t.Errorf("Expected constant term -1 (16 mod 17), got %s", d.Coefficient(0))
	}
}

// TestPolyZpGcdCoprime tests that coprime inputs give gcd one
func TestPolyZpGcdCoprime(t *testing.T) {
	field := testField(t, 17)

	f := PolyZpFromInt64s(field, []int64{1, 1}) // x + 1
	g := PolyZpFromInt64s(field, []int64{2, 1}) // x + 2

	d, err := f.Gcd(g)
	if err != nil {
		t.Fatalf("Gcd failed: %v", err)
	}
	if d.Degree() != 0 || !d.LeadingCoefficient().IsOne() {
		t.Errorf("Expected gcd 1, got %s", d)
	}
}

// TestPolyZpExtendedGcd tests the Bezout identity
func TestPolyZpExtendedGcd(t *testing.T) {
	field := testField(t, 17)

	f := PolyZpFromInt64s(field, []int64{16, 0, 1}) // x^2 - 1
	g := PolyZpFromInt64s(field, []int64{1, 1})     // x + 1

	d, s, u, err := f.ExtendedGcd(g)
	if err != nil {
		t.Fatalf("ExtendedGcd failed: %v", err)
	}

	// s*f + u*g must equal d
	lhs := s.Mul(f).Add(u.Mul(g))
	if !lhs.Equal(d) {
		t.Errorf("s*f + u*g != d: got %s, want %s", lhs, d)
	}
	if d.Degree() != 1 {
		t.Errorf("Expected gcd degree 1, got %d", d.Degree())
	}
}

// TestInterpolatePolyZp tests dense Lagrange interpolation
func TestInterpolatePolyZp(t *testing.T) {
	field := testField(t, 17)

	// p(x) = 3x^2 + 1 sampled at 0, 1, 2
	target := PolyZpFromInt64s(field, []int64{1, 0, 3})
	nodes := []*FieldElement{
		field.NewElementFromInt64(0),
		field.NewElementFromInt64(1),
		field.NewElementFromInt64(2),
	}
	values := make([]*FieldElement, len(nodes))
	for i, x := range nodes {
		values[i] = target.Eval(x)
	}

	got, err := InterpolatePolyZp(field, nodes, values)
	if err != nil {
		t.Fatalf("InterpolatePolyZp failed: %v", err)
	}
	if !got.Equal(target) {
		t.Errorf("Interpolation mismatch: got %s, want %s", got, target)
	}

	// Duplicate nodes must be rejected
	dup := []*FieldElement{field.One(), field.One()}
	if _, err := InterpolatePolyZp(field, dup, values[:2]); err == nil {
		t.Error("Interpolation with duplicate nodes should fail")
	}
}

// TestPolyZpMonic tests monic normalization
func TestPolyZpMonic(t *testing.T) {
	field := testField(t, 17)

	p := PolyZpFromInt64s(field, []int64{6, 0, 3}) // 3x^2 + 6
	m, err := p.Monic()
	if err != nil {
		t.Fatalf("Monic failed: %v", err)
	}
	if !m.LeadingCoefficient().IsOne() {
		t.Errorf("Expected monic leading coefficient, got %s", m.LeadingCoefficient())
	}
	if m.Coefficient(0).Big().Int64() != 2 {
		t.Errorf("Expected constant term 2, got %s", m.Coefficient(0))
	}
}
