package bingo

import "math/rand"

// Pool holds the numbers not yet drawn this round.
type Pool struct {
	rng       *rand.Rand
	remaining []int
}

// NewPool returns a full pool of 1..90.
func NewPool(rng *rand.Rand) *Pool {
	p := &Pool{rng: rng, remaining: make([]int, 0, MaxNumber)}
	for n := MinNumber; n <= MaxNumber; n++ {
		p.remaining = append(p.remaining, n)
	}
	return p
}

// Draw removes and returns a uniformly random number.
// It returns false once the pool is empty.
func (p *Pool) Draw() (int, bool) {
	if len(p.remaining) == 0 {
		return 0, false
	}
	i := p.rng.Intn(len(p.remaining))
	n := p.remaining[i]
	last := len(p.remaining) - 1
	p.remaining[i] = p.remaining[last]
	p.remaining = p.remaining[:last]
	return n, true
}

// Remove takes n out of the pool without drawing it.
func (p *Pool) Remove(n int) bool {
	for i, v := range p.remaining {
		if v == n {
			last := len(p.remaining) - 1
			p.remaining[i] = p.remaining[last]
			p.remaining = p.remaining[:last]
			return true
		}
	}
	return false
}

// Contains reports whether n has not been drawn yet.
func (p *Pool) Contains(n int) bool {
	for _, v := range p.remaining {
		if v == n {
			return true
		}
	}
	return false
}

// Len returns how many numbers are left.
func (p *Pool) Len() int {
	return len(p.remaining)
}
