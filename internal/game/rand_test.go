package game

// stubRand returns queued draws in order. IntN pops from ints, Float64 from
// floats; an exhausted queue returns zero.
type stubRand struct {
	ints   []int
	floats []float64
}

func (s *stubRand) IntN(int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *stubRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}
