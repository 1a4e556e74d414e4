package modgcd

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// PointSelector yields distinct non-zero evaluation points from a SHAKE-128
// stream seeded by the inputs, so runs are reproducible. Points consumed
// count against the per-call evaluation budget; exhausting it surfaces as a
// MaxIterationsError, never as a partial answer.
type PointSelector struct {
	field  *core.Field
	stream sha3.ShakeHash
	used   map[string]bool
	drawn  int
	budget int
}

// NewPointSelector creates a selector over the given field. The seed
// determines the point sequence.
func NewPointSelector(field *core.Field, seed []byte, budget int) *PointSelector {
	stream := sha3.NewShake128()
	stream.Write(seed)
	return &PointSelector{
		field:  field,
		stream: stream,
		used:   make(map[string]bool),
		budget: budget,
	}
}

// Drawn returns the number of points consumed so far
func (s *PointSelector) Drawn() int {
	return s.drawn
}

// Next returns the next distinct non-zero point, or a MaxIterationsError
// when the evaluation budget is exhausted
func (s *PointSelector) Next() (*core.FieldElement, error) {
	var buf [8]byte
	for {
		if s.drawn >= s.budget {
			return nil, &MaxIterationsError{Operation: "evaluation point selection", Limit: s.budget}
		}
		s.drawn++

		if _, err := s.stream.Read(buf[:]); err != nil {
			return nil, err
		}
		raw := binary.BigEndian.Uint64(buf[:])

		// Map into [1, p-1]
		pMinusOne := new(big.Int).Sub(s.field.Modulus(), big.NewInt(1))
		if pMinusOne.Sign() <= 0 {
			return nil, &MaxIterationsError{Operation: "evaluation point selection", Limit: s.budget}
		}
		val := new(big.Int).SetUint64(raw)
		val.Mod(val, pMinusOne)
		val.Add(val, big.NewInt(1))

		point := s.field.NewElement(val)
		key := point.String()
		if s.used[key] {
			continue
		}
		s.used[key] = true
		return point, nil
	}
}

// Reset forgets which points were handed out but keeps the stream position
// and the budget counter, so a retry after an unlucky run sees fresh points
func (s *PointSelector) Reset() {
	s.used = make(map[string]bool)
}
