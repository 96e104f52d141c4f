package gen

// scriptedRand replays fixed draws. Once a script runs out it keeps
// returning its fallback so tests only spell out the draws they care about.
type scriptedRand struct {
	floats        []float64
	ints          []int
	floatFallback float64
	intFallback   int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return s.floatFallback
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) IntN(n int) int {
	v := s.intFallback
	if len(s.ints) > 0 {
		v = s.ints[0]
		s.ints = s.ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}
