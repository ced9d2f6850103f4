package quantum

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Simulator runs circuits on freshly allocated registers and measures
// them. It holds configuration only; every run owns its own Register.
type Simulator struct {
	logger  zerolog.Logger
	epsilon float64
	reverse bool
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger used for run and gate tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Simulator) { s.logger = logger }
}

// WithTolerance sets the norm tolerance of allocated registers.
func WithTolerance(eps float64) Option {
	return func(s *Simulator) {
		if eps > 0 {
			s.epsilon = eps
		}
	}
}

// WithSwapNetwork sets whether QFT runs append the bit-reversal swaps.
func WithSwapNetwork(reverse bool) Option {
	return func(s *Simulator) { s.reverse = reverse }
}

// NewSimulator returns a Simulator with a no-op logger and DefaultEpsilon.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		logger:  zerolog.Nop(),
		epsilon: DefaultEpsilon,
		reverse: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run allocates a register for c, applies every gate and measures all
// qubits. The returned outcomes are in allocation order.
func (s *Simulator) Run(c *Circuit, rng RandomSource) ([]Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	reg, err := NewRegister(c.NumQubits, WithEpsilon(s.epsilon))
	if err != nil {
		return nil, err
	}
	if err := c.Apply(reg, s.logger); err != nil {
		return nil, err
	}
	if e := s.logger.Trace(); e.Enabled() {
		marginals := zerolog.Arr()
		for _, p := range reg.QubitProbabilities() {
			marginals.Float64(p.Prob1)
		}
		e.Array("p1", marginals).Msg("qubit marginals before measurement")
	}
	results, err := reg.MeasureAll(rng)
	if err != nil {
		return nil, fmt.Errorf("measure: %w", err)
	}
	s.logger.Debug().
		Int("qubits", c.NumQubits).
		Int("gates", len(c.Gates)).
		Str("outcome", FormatResults(results)).
		Str("basis", BasisLabel(results)).
		Msg("run complete")
	return results, nil
}

// RunQFTAndMeasure allocates an n-qubit register, applies the QFT, and
// measures every qubit.
func (s *Simulator) RunQFTAndMeasure(n int, rng RandomSource) ([]Result, error) {
	c, err := QFT(n, WithReversal(s.reverse))
	if err != nil {
		return nil, err
	}
	return s.Run(c, rng)
}

// RunQFTAndMeasure is a convenience wrapper around a Simulator built from
// opts.
func RunQFTAndMeasure(n int, rng RandomSource, opts ...Option) ([]Result, error) {
	return NewSimulator(opts...).RunQFTAndMeasure(n, rng)
}
