package modgcd

import (
	"math/big"
	"testing"

	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// TestSparsityDensity tests the density ratio against the full tensor grid
func TestSparsityDensity(t *testing.T) {
	analyzer := NewSparsityAnalyzer(0.3)

	// x^2*y^2 + 1 has 2 terms out of a 3x3 grid
	p := core.NewMultiPoly(2)
	p.SetTerm(core.Monomial{2, 2}, big.NewInt(1))
	p.SetTerm(core.Monomial{0, 0}, big.NewInt(1))

	got := analyzer.Density(p)
	want := 2.0 / 9.0
	if got < want-1e-9 || got > want+1e-9 {
		t.Errorf("Density: expected %f, got %f", want, got)
	}
}

// TestSparsityDecision tests that both inputs must be sparse
func TestSparsityDecision(t *testing.T) {
	analyzer := NewSparsityAnalyzer(0.3)

	sparse := core.NewMultiPoly(2)
	sparse.SetTerm(core.Monomial{3, 3}, big.NewInt(1))
	sparse.SetTerm(core.Monomial{0, 0}, big.NewInt(1))

	dense := core.NewMultiPoly(2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			dense.SetTerm(core.Monomial{i, j}, big.NewInt(1))
		}
	}

	if !analyzer.ShouldUseSparse(sparse, sparse) {
		t.Error("Two sparse inputs should select sparse interpolation")
	}
	if analyzer.ShouldUseSparse(sparse, dense) {
		t.Error("A dense input should force dense interpolation")
	}
	if analyzer.ShouldUseSparse(dense, dense) {
		t.Error("Two dense inputs should not select sparse interpolation")
	}
}
