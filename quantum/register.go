// Package quantum implements a state-vector simulator: a qubit register,
// gate application by index pairing, projective measurement and the
// Quantum Fourier Transform circuit.
//
// Qubit 0 is the least-significant bit of a basis index, so amplitude i of
// a 3-qubit register belongs to the basis state whose qubit q is (i>>q)&1.
package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
)

type Complex = complex128

const (
	// MaxQubits bounds register allocation (2^24 amplitudes, 256 MiB).
	MaxQubits = 24

	// DefaultEpsilon is the norm tolerance used when none is configured.
	DefaultEpsilon = 1e-9
)

// Register is an n-qubit state vector. A Register is owned by a single run
// and is not safe for concurrent use.
type Register struct {
	amplitudes []Complex
	numQubits  int
	epsilon    float64
}

// RegisterOption configures a Register.
type RegisterOption func(*Register)

// WithEpsilon sets the norm tolerance checked after every gate.
func WithEpsilon(eps float64) RegisterOption {
	return func(r *Register) {
		if eps > 0 {
			r.epsilon = eps
		}
	}
}

// NewRegister allocates numQubits qubits in the |0...0> state.
func NewRegister(numQubits int, opts ...RegisterOption) (*Register, error) {
	if numQubits < 1 || numQubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrQubitCount, numQubits, MaxQubits)
	}
	amps := make([]Complex, 1<<numQubits)
	amps[0] = 1
	r := &Register{amplitudes: amps, numQubits: numQubits, epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Register) NumQubits() int { return r.numQubits }

// Len returns the number of amplitudes, 2^NumQubits.
func (r *Register) Len() int { return len(r.amplitudes) }

func (r *Register) Epsilon() float64 { return r.epsilon }

// AmplitudeAt returns the amplitude of the given basis index.
func (r *Register) AmplitudeAt(index int) (Complex, error) {
	if index < 0 || index >= len(r.amplitudes) {
		return 0, fmt.Errorf("%w: basis index %d not in [0, %d)", ErrIndex, index, len(r.amplitudes))
	}
	return r.amplitudes[index], nil
}

// Amplitudes returns a copy of the state vector.
func (r *Register) Amplitudes() []Complex {
	amps := make([]Complex, len(r.amplitudes))
	copy(amps, r.amplitudes)
	return amps
}

// Clone returns an independent copy of the register.
func (r *Register) Clone() *Register {
	return &Register{amplitudes: r.Amplitudes(), numQubits: r.numQubits, epsilon: r.epsilon}
}

// Norm returns the sum of squared amplitude magnitudes.
func (r *Register) Norm() float64 {
	total := 0.0
	for _, a := range r.amplitudes {
		total += prob(a)
	}
	return total
}

// Probabilities returns |a|^2 for every basis index.
func (r *Register) Probabilities() []float64 {
	probs := make([]float64, len(r.amplitudes))
	for i, a := range r.amplitudes {
		probs[i] = prob(a)
	}
	return probs
}

type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginal distribution of every qubit.
func (r *Register) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, r.numQubits)
	for i, a := range r.amplitudes {
		p := prob(a)
		for q := 0; q < r.numQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += p
			} else {
				probs[q].Prob0 += p
			}
		}
	}
	return probs
}

// ApplyUnitary applies matrix to the listed qubits. The first listed qubit
// is the least-significant bit of the matrix's local index.
func (r *Register) ApplyUnitary(qubits []int, matrix Matrix) error {
	return r.ApplyControlled(nil, qubits, matrix)
}

// checkNorm restores backup and fails if the norm left the tolerance band.
func (r *Register) checkNorm(backup []Complex) error {
	norm := r.Norm()
	if math.Abs(norm-1) > r.epsilon {
		copy(r.amplitudes, backup)
		return fmt.Errorf("%w: norm %.12f deviates from 1 by more than %g", ErrInvalidState, norm, r.epsilon)
	}
	return nil
}

func (r *Register) checkQubit(q int) error {
	if q < 0 || q >= r.numQubits {
		return fmt.Errorf("%w: qubit %d not in [0, %d)", ErrIndex, q, r.numQubits)
	}
	return nil
}

func prob(a Complex) float64 {
	return real(a * cmplx.Conj(a))
}
