package modgcd

import (
	"fmt"
	"math/big"
)

// CombinePair merges x ≡ r1 (mod m1) and x ≡ r2 (mod m2) for coprime moduli
// into the unique residue in [0, m1*m2)
func CombinePair(r1, m1, r2, m2 *big.Int) (*big.Int, error) {
	m1Inv := new(big.Int).ModInverse(m1, m2)
	if m1Inv == nil {
		return nil, fmt.Errorf("CRT moduli %s and %s are not coprime", m1, m2)
	}

	// x = r1 + m1 * ((r2 - r1) * m1^-1 mod m2)
	diff := new(big.Int).Sub(r2, r1)
	diff.Mul(diff, m1Inv)
	diff.Mod(diff, m2)

	x := new(big.Int).Mul(m1, diff)
	x.Add(x, r1)

	modulus := new(big.Int).Mul(m1, m2)
	x.Mod(x, modulus)
	return x, nil
}

// SymmetricMod maps a residue in [0, m) into the symmetric range (-m/2, m/2]
// so negative integer coefficients reconstruct correctly
func SymmetricMod(r, m *big.Int) *big.Int {
	half := new(big.Int).Rsh(m, 1)
	out := new(big.Int).Set(r)
	if out.Cmp(half) > 0 {
		out.Sub(out, m)
	}
	return out
}

// CRTAccumulator combines per-prime residue slices into a running integer
// coefficient vector. Residues are held canonically in [0, M); SymmetricLift
// exposes them in the symmetric range for candidate comparison.
type CRTAccumulator struct {
	modulus  *big.Int
	residues []*big.Int
}

// NewCRTAccumulator starts an accumulation from the residues of a single
// prime trial
func NewCRTAccumulator(prime *big.Int, residues []*big.Int) *CRTAccumulator {
	coeffs := make([]*big.Int, len(residues))
	for i, r := range residues {
		coeffs[i] = new(big.Int).Mod(r, prime)
	}
	return &CRTAccumulator{
		modulus:  new(big.Int).Set(prime),
		residues: coeffs,
	}
}

// Modulus returns the product of the primes combined so far
func (a *CRTAccumulator) Modulus() *big.Int {
	return new(big.Int).Set(a.modulus)
}

// Combine folds in the residues of one more prime trial. The slice lengths
// must agree: the caller aligns coefficient positions before combining.
func (a *CRTAccumulator) Combine(prime *big.Int, residues []*big.Int) error {
	if len(residues) != len(a.residues) {
		return fmt.Errorf("residue count mismatch: accumulated %d, incoming %d", len(a.residues), len(residues))
	}
	for i, r := range residues {
		combined, err := CombinePair(a.residues[i], a.modulus, r, prime)
		if err != nil {
			return err
		}
		a.residues[i] = combined
	}
	a.modulus.Mul(a.modulus, prime)
	return nil
}

// SymmetricLift returns the accumulated coefficients lifted into the
// symmetric range (-M/2, M/2]
func (a *CRTAccumulator) SymmetricLift() []*big.Int {
	out := make([]*big.Int, len(a.residues))
	for i, r := range a.residues {
		out[i] = SymmetricMod(r, a.modulus)
	}
	return out
}
