package util

import "math/rand"

// Entropy is the only source of randomness the battle sees.
type Entropy interface {
	// Pick returns an index in [0, n).
	Pick(n int) int
	// Between returns an integer in [lo, hi], both inclusive.
	Between(lo, hi int) int
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Rand adapts a *rand.Rand to Entropy.
type Rand struct {
	R *rand.Rand
}

func NewRand(seed int64) *Rand { return &Rand{R: New(seed)} }

func (r *Rand) Pick(n int) int { return r.R.Intn(n) }

func (r *Rand) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.R.Intn(hi-lo+1)
}

// Fixed always picks the first element and the lower bound of a range.
type Fixed struct{}

func (Fixed) Pick(int) int           { return 0 }
func (Fixed) Between(lo, _ int) int { return lo }

// Scripted replays queued answers in call order and falls back to Fixed
// once a queue runs dry.
type Scripted struct {
	Picks  []int
	Ranges []int
}

func (s *Scripted) Pick(n int) int {
	if len(s.Picks) == 0 {
		return 0
	}
	v := s.Picks[0]
	s.Picks = s.Picks[1:]
	if v < 0 || v >= n {
		return 0
	}
	return v
}

func (s *Scripted) Between(lo, hi int) int {
	if len(s.Ranges) == 0 {
		return lo
	}
	v := s.Ranges[0]
	s.Ranges = s.Ranges[1:]
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Choice returns one element of items chosen by e. items must be non-empty.
func Choice[T any](e Entropy, items []T) T {
	return items[e.Pick(len(items))]
}
