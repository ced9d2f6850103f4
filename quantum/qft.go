package quantum

import "math"

type qftConfig struct {
	reverse bool
}

// QFTOption configures the QFT builder.
type QFTOption func(*qftConfig)

// WithoutReversal omits the final bit-reversal swap network.
func WithoutReversal() QFTOption {
	return func(c *qftConfig) { c.reverse = false }
}

// WithReversal sets whether the bit-reversal swap network is appended.
func WithReversal(reverse bool) QFTOption {
	return func(c *qftConfig) { c.reverse = reverse }
}

// QFT returns the n-qubit Quantum Fourier Transform circuit.
//
// Qubits are processed most-significant first (qubit n-1 down to 0): a
// Hadamard on qubit k is followed by a controlled phase of pi/2^(k-j) from
// every lower qubit j onto k. The swap network SWAP(i, n-1-i), i < n/2,
// then restores output order, so the circuit maps |x> to
// sum_y e^{2*pi*i*x*y/2^n}|y> / sqrt(2^n) on basis indices.
func QFT(n int, opts ...QFTOption) (*Circuit, error) {
	cfg := qftConfig{reverse: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := NewCircuit(n)
	if err != nil {
		return nil, err
	}
	for k := n - 1; k >= 0; k-- {
		c.AddGate(GateH, k)
		for j := k - 1; j >= 0; j-- {
			c.AddParameterizedGate(GateCP, k, math.Pi/float64(uint64(1)<<(k-j)), j)
		}
	}
	if cfg.reverse {
		for i := 0; i < n/2; i++ {
			c.AddSwap(i, n-1-i)
		}
	}
	return c, nil
}

// InverseQFT returns the adjoint of QFT(n, opts...).
func InverseQFT(n int, opts ...QFTOption) (*Circuit, error) {
	c, err := QFT(n, opts...)
	if err != nil {
		return nil, err
	}
	return c.Inverse(), nil
}
