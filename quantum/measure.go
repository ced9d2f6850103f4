package quantum

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Result is the classical outcome of measuring one qubit.
type Result uint8

const (
	Zero Result = 0
	One  Result = 1
)

func (r Result) String() string {
	if r == One {
		return "One"
	}
	return "Zero"
}

// Digit returns '0' or '1'.
func (r Result) Digit() byte {
	if r == One {
		return '1'
	}
	return '0'
}

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSource returns a PCG generator seeded from seed. Nearby seeds give
// unrelated streams.
func NewSource(seed uint64) *rand.Rand {
	hi := splitmix64(seed)
	return rand.New(rand.NewPCG(hi, splitmix64(hi)))
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// MeasureQubit performs a projective measurement of qubit q in the
// computational basis and collapses the register onto the outcome.
func (r *Register) MeasureQubit(q int, rng RandomSource) (Result, error) {
	if err := r.checkQubit(q); err != nil {
		return Zero, err
	}
	bit := 1 << q

	p0, p1 := 0.0, 0.0
	for i, a := range r.amplitudes {
		if i&bit != 0 {
			p1 += prob(a)
		} else {
			p0 += prob(a)
		}
	}

	// Scaling the draw by p0+p1 keeps a certain outcome certain when the
	// sums drift below 1.
	outcome := Zero
	surviving := p0
	if rng.Float64()*(p0+p1) < p1 {
		outcome = One
		surviving = p1
	}
	if surviving <= r.epsilon*r.epsilon {
		return outcome, fmt.Errorf("%w: qubit %d outcome %s has probability %g", ErrDegenerateState, q, outcome, surviving)
	}

	scale := complex(1/math.Sqrt(surviving), 0)
	for i := range r.amplitudes {
		if (i&bit != 0) == (outcome == One) {
			r.amplitudes[i] *= scale
		} else {
			r.amplitudes[i] = 0
		}
	}
	return outcome, nil
}

// MeasureAll measures every qubit in increasing index order. After it
// returns the register holds a single basis state.
func (r *Register) MeasureAll(rng RandomSource) ([]Result, error) {
	results := make([]Result, r.numQubits)
	for q := range r.numQubits {
		res, err := r.MeasureQubit(q, rng)
		if err != nil {
			return nil, err
		}
		results[q] = res
	}
	return results, nil
}
