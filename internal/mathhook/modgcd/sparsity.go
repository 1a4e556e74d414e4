package modgcd

import (
	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// SparsityAnalyzer chooses between dense Lagrange and sparse Zippel
// interpolation based on the fraction of non-zero terms in the inputs.
type SparsityAnalyzer struct {
	threshold float64
}

// NewSparsityAnalyzer creates an analyzer with the given density threshold
func NewSparsityAnalyzer(threshold float64) *SparsityAnalyzer {
	return &SparsityAnalyzer{threshold: threshold}
}

// Density returns the ratio of non-zero terms to the dense term count
// implied by the per-variable degrees. A polynomial with every possible
// term populated has density 1.
func (s *SparsityAnalyzer) Density(p *core.MultiPoly) float64 {
	if p.IsZero() {
		return 0
	}
	denseTerms := 1.0
	for _, d := range p.MaxDegrees() {
		denseTerms *= float64(d + 1)
	}
	if denseTerms == 0 {
		return 1
	}
	return float64(p.NumTerms()) / denseTerms
}

// ShouldUseSparse recommends sparse interpolation when both inputs fall
// below the density threshold
func (s *SparsityAnalyzer) ShouldUseSparse(f, g *core.MultiPoly) bool {
	return s.Density(f) < s.threshold && s.Density(g) < s.threshold
}
