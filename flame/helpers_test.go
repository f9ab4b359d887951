package flame

import (
	"math/rand/v2"
)

// scriptedSource replays slots in a loop.
type scriptedSource struct {
	slots []int
	next  int
}

func (s *scriptedSource) IntN(n int) int {
	slot := s.slots[s.next%len(s.slots)] % n
	s.next++
	return slot
}

func (s *scriptedSource) Float64() float64 {
	return 0.5
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
