package modgcd

import (
	"math/big"
	"testing"
)

// TestCombinePair tests a textbook CRT combination
func TestCombinePair(t *testing.T) {
	// x = 3 mod 7, x = 5 mod 11 gives x = 38 mod 77
	got, err := CombinePair(big.NewInt(3), big.NewInt(7), big.NewInt(5), big.NewInt(11))
	if err != nil {
		t.Fatalf("CombinePair failed: %v", err)
	}
	if got.Int64() != 38 {
		t.Errorf("Expected 38, got %s", got)
	}

	// Non-coprime moduli must be rejected
	if _, err := CombinePair(big.NewInt(1), big.NewInt(6), big.NewInt(2), big.NewInt(4)); err == nil {
		t.Error("CombinePair should fail for non-coprime moduli")
	}
}

// TestSymmetricMod tests lifting into the symmetric residue range
func TestSymmetricMod(t *testing.T) {
	cases := []struct {
		r, m, want int64
	}{
		{3, 7, 3},
		{4, 7, -3},
		{6, 7, -1},
		{0, 7, 0},
		{5, 10, 5},  // m/2 itself stays positive
		{6, 10, -4}, // above m/2 wraps negative
		{38, 77, 38},
		{39, 77, -38},
	}
	for _, c := range cases {
		got := SymmetricMod(big.NewInt(c.r), big.NewInt(c.m))
		if got.Int64() != c.want {
			t.Errorf("SymmetricMod(%d, %d): expected %d, got %d", c.r, c.m, c.want, got.Int64())
		}
	}
}

// TestCRTAccumulator tests multi-prime accumulation of a residue vector
func TestCRTAccumulator(t *testing.T) {
	// Reconstruct the coefficient vector (-2, 5) from images mod 7 and 11
	acc := NewCRTAccumulator(big.NewInt(7), []*big.Int{big.NewInt(5), big.NewInt(5)})

	if err := acc.Combine(big.NewInt(11), []*big.Int{big.NewInt(9), big.NewInt(5)}); err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	if acc.Modulus().Int64() != 77 {
		t.Errorf("Expected modulus 77, got %s", acc.Modulus())
	}

	lifted := acc.SymmetricLift()
	if lifted[0].Int64() != -2 {
		t.Errorf("Expected -2, got %s", lifted[0])
	}
	if lifted[1].Int64() != 5 {
		t.Errorf("Expected 5, got %s", lifted[1])
	}

	// Mismatched residue lengths must be rejected
	if err := acc.Combine(big.NewInt(13), []*big.Int{big.NewInt(1)}); err == nil {
		t.Error("Combine with a short residue vector should fail")
	}
}
