package modgcd

import (
	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// Trial division is the final gatekeeper: no candidate is ever returned to a
// caller unless it exactly divides both inputs. A failed check sends the
// caller back into its retry loop.

// VerifyUnivariate attempts exact division of both primitive parts by the
// candidate. On success it returns both cofactor quotients.
func VerifyUnivariate(ppF, ppG, candidate *core.IntPoly) (qf, qg *core.IntPoly, ok bool) {
	if candidate.IsZero() {
		return nil, nil, false
	}
	qf, ok = ppF.DivExact(candidate)
	if !ok {
		return nil, nil, false
	}
	qg, ok = ppG.DivExact(candidate)
	if !ok {
		return nil, nil, false
	}
	return qf, qg, true
}

// VerifyMultivariate is the multivariate analogue of VerifyUnivariate
func VerifyMultivariate(ppF, ppG, candidate *core.MultiPoly) (qf, qg *core.MultiPoly, ok bool) {
	if candidate.IsZero() {
		return nil, nil, false
	}
	qf, ok = ppF.DivExact(candidate)
	if !ok {
		return nil, nil, false
	}
	qg, ok = ppG.DivExact(candidate)
	if !ok {
		return nil, nil, false
	}
	return qf, qg, true
}
