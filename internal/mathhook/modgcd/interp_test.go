package modgcd

import (
	"math/big"
	"testing"

	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// TestLagrangeLiftVar tests restoring one variable from point images
func TestLagrangeLiftVar(t *testing.T) {
	field, err := core.NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}

	// Target: p(x, y) = x*y + 3x. Images fix y at the nodes 1 and 2:
	// p(x, 1) = 4x, p(x, 2) = 5x.
	img1 := core.NewMultiPoly(2)
	img1.SetTerm(core.Monomial{1, 0}, big.NewInt(4))
	img2 := core.NewMultiPoly(2)
	img2.SetTerm(core.Monomial{1, 0}, big.NewInt(5))

	nodes := []*core.FieldElement{
		field.NewElementFromInt64(1),
		field.NewElementFromInt64(2),
	}

	got, err := lagrangeLiftVar(field, []*core.MultiPoly{img1, img2}, nodes, 1)
	if err != nil {
		t.Fatalf("lagrangeLiftVar failed: %v", err)
	}

	want := core.NewMultiPoly(2)
	want.SetTerm(core.Monomial{1, 1}, big.NewInt(1))
	want.SetTerm(core.Monomial{1, 0}, big.NewInt(3))
	if !got.Equal(want.ReduceMod(field)) {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

// TestSolveVandermonde tests recovering sparse coefficients from geometric
// evaluations
func TestSolveVandermonde(t *testing.T) {
	field, err := core.NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}

	// Coefficients c = (7, 9) at nodes (2, 5): values_j = sum c_i * n_i^(j+1)
	nodes := []*core.FieldElement{
		field.NewElementFromInt64(2),
		field.NewElementFromInt64(5),
	}
	c1 := field.NewElementFromInt64(7)
	c2 := field.NewElementFromInt64(9)

	values := make([]*core.FieldElement, 2)
	for j := 0; j < 2; j++ {
		e := big.NewInt(int64(j + 1))
		values[j] = c1.Mul(nodes[0].Exp(e)).Add(c2.Mul(nodes[1].Exp(e)))
	}

	got, err := solveVandermonde(field, nodes, values)
	if err != nil {
		t.Fatalf("solveVandermonde failed: %v", err)
	}
	if !got[0].Equal(c1) || !got[1].Equal(c2) {
		t.Errorf("Expected (7, 9), got (%s, %s)", got[0], got[1])
	}
}

// TestSolveVandermondeSingular tests rejection of repeated nodes
func TestSolveVandermondeSingular(t *testing.T) {
	field, err := core.NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}

	nodes := []*core.FieldElement{
		field.NewElementFromInt64(2),
		field.NewElementFromInt64(2),
	}
	values := []*core.FieldElement{field.One(), field.One()}

	if _, err := solveVandermonde(field, nodes, values); err == nil {
		t.Error("Repeated nodes should make the system singular")
	}
}
