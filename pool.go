package sinosc

import (
	"errors"
	"math/rand/v2"
	"time"
)

var ErrEmptyPool = errors.New("pool has no oscillators")

// A Pool is a Source that, for each sample, picks one of its oscillators
// uniformly at random and returns that oscillator's next sample.
type Pool struct {
	oscs []*Oscillator
	rng  *rand.Rand
}

// NewPool returns a pool drawing from rng. If rng is nil, a time-seeded
// source is used.
func NewPool(rng *rand.Rand, oscs ...*Oscillator) (*Pool, error) {
	if len(oscs) == 0 {
		return nil, ErrEmptyPool
	}
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Pool{
		oscs: append([]*Oscillator(nil), oscs...),
		rng:  rng,
	}, nil
}

// NewSeededPool returns a pool whose selections are reproducible for a given
// seed.
func NewSeededPool(seed uint64, oscs ...*Oscillator) (*Pool, error) {
	return NewPool(rand.New(rand.NewPCG(seed, seed)), oscs...)
}

// Pick returns the index of the oscillator selected for the next sample.
func (p *Pool) Pick() int {
	return p.rng.IntN(len(p.oscs))
}

func (p *Pool) Process() float64 {
	return p.oscs[p.Pick()].Process()
}

func (p *Pool) Len() int { return len(p.oscs) }

func (p *Pool) At(i int) *Oscillator { return p.oscs[i] }
