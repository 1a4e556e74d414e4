package modgcd

import (
	"math/big"
)

// primeTable is the fixed process-wide table of 31-bit primes used for
// modular trials. It is immutable after initialization, so concurrent calls
// share it without synchronization. Products of a handful of these exceed
// any realistic coefficient bound quickly while single residues stay cheap.
var primeTable = []uint64{
	2147483647, 2147483629, 2147483587, 2147483579,
	2147483563, 2147483549, 2147483543, 2147483497,
	2147483489, 2147483477, 2147483423, 2147483399,
	2147483353, 2147483323, 2147483269, 2147483249,
	2147483237, 2147483179, 2147483171, 2147483137,
	2147483123, 2147483077, 2147483069, 2147483059,
	2147483053, 2147483033, 2147483029, 2147482951,
	2147482949, 2147482943, 2147482937, 2147482921,
	2147482877, 2147482873, 2147482867, 2147482859,
	2147482819, 2147482817, 2147482811, 2147482801,
	2147482763, 2147482739, 2147482697, 2147482693,
	2147482681, 2147482663, 2147482661, 2147482621,
}

// PrimeSelector supplies usable primes for modular trials. A prime dividing
// either leading coefficient would make the reduced GCD degree spuriously
// large, so such primes are skipped. On table exhaustion the selector
// extends the sequence by deterministic downward search.
type PrimeSelector struct {
	idx  int
	next *big.Int // candidate for extension beyond the table
	lcF  *big.Int
	lcG  *big.Int
}

// NewPrimeSelector creates a selector starting at the given table index that
// skips primes dividing lcF or lcG
func NewPrimeSelector(startIdx int, lcF, lcG *big.Int) *PrimeSelector {
	return &PrimeSelector{
		idx: startIdx,
		lcF: new(big.Int).Abs(lcF),
		lcG: new(big.Int).Abs(lcG),
	}
}

// usable reports whether p divides neither leading coefficient
func (s *PrimeSelector) usable(p *big.Int) bool {
	rem := new(big.Int)
	if s.lcF.Sign() != 0 && rem.Mod(s.lcF, p).Sign() == 0 {
		return false
	}
	if s.lcG.Sign() != 0 && rem.Mod(s.lcG, p).Sign() == 0 {
		return false
	}
	return true
}

// Next returns the next usable prime
func (s *PrimeSelector) Next() *big.Int {
	for s.idx < len(primeTable) {
		p := new(big.Int).SetUint64(primeTable[s.idx])
		s.idx++
		if s.usable(p) {
			return p
		}
	}

	// Table exhausted: continue downward from the smallest table entry.
	// ProbablyPrime is exact for inputs below 2^64.
	if s.next == nil {
		s.next = new(big.Int).SetUint64(primeTable[len(primeTable)-1])
	}
	for {
		s.next.Sub(s.next, big.NewInt(2))
		if !s.next.ProbablyPrime(32) {
			continue
		}
		p := new(big.Int).Set(s.next)
		if s.usable(p) {
			return p
		}
	}
}

// PrimeTableSize returns the number of entries in the fixed prime table
func PrimeTableSize() int {
	return len(primeTable)
}

// PrimeAt returns the table entry at the given index
func PrimeAt(idx int) uint64 {
	return primeTable[idx]
}
