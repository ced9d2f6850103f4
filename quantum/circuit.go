package quantum

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Circuit is an ordered gate list over a fixed number of qubits. It holds
// no state and can be applied to any number of registers.
type Circuit struct {
	NumQubits int
	Gates     []Gate
}

// NewCircuit returns an empty circuit.
func NewCircuit(numQubits int) (*Circuit, error) {
	if numQubits < 1 || numQubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrQubitCount, numQubits, MaxQubits)
	}
	return &Circuit{NumQubits: numQubits}, nil
}

// AddGate appends an unparameterized gate. A control qubit turns it into a
// controlled gate.
func (c *Circuit) AddGate(gateType GateType, target int, control ...int) {
	c.Gates = append(c.Gates, Gate{
		Type:     gateType,
		Targets:  []int{target},
		Controls: append([]int(nil), control...),
	})
}

// AddParameterizedGate appends a phase gate, controlled when control is
// given. A P with one control is stored as CP.
func (c *Circuit) AddParameterizedGate(gateType GateType, target int, angle float64, control ...int) {
	if gateType == GateP && len(control) == 1 {
		gateType = GateCP
	}
	c.Gates = append(c.Gates, Gate{
		Type:     gateType,
		Targets:  []int{target},
		Controls: append([]int(nil), control...),
		Angle:    angle,
	})
}

// AddSwap appends a SWAP of two qubits.
func (c *Circuit) AddSwap(q1, q2 int) {
	c.Gates = append(c.Gates, Gate{Type: GateSwap, Targets: []int{q1, q2}})
}

// Validate checks every gate against the qubit count and the vocabulary.
func (c *Circuit) Validate() error {
	for i, g := range c.Gates {
		want := 1
		if g.Type == GateSwap {
			want = 2
		}
		if len(g.Targets) != want {
			return fmt.Errorf("%w: gate %d (%s) has %d targets, want %d", ErrIndex, i, g.Type, len(g.Targets), want)
		}
		switch {
		case g.Type == GateCP && len(g.Controls) != 1:
			return fmt.Errorf("%w: gate %d (CP) needs one control", ErrIndex, i)
		case g.Type == GateSwap && len(g.Controls) != 0:
			return fmt.Errorf("%w: gate %d (SWAP) cannot be controlled", ErrIndex, i)
		case len(g.Controls) > 1:
			return fmt.Errorf("%w: gate %d (%s) has %d controls, at most one is supported", ErrIndex, i, g.Type, len(g.Controls))
		}
		if _, err := g.Matrix(); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
		for _, q := range g.Qubits() {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("%w: gate %d (%s) uses qubit %d of %d", ErrIndex, i, g.Type, q, c.NumQubits)
			}
		}
	}
	return nil
}

// Counts returns the number of gates of each type.
func (c *Circuit) Counts() map[GateType]int {
	counts := make(map[GateType]int)
	for _, g := range c.Gates {
		counts[g.Type]++
	}
	return counts
}

// Inverse returns the adjoint circuit: gates reversed, each inverted.
func (c *Circuit) Inverse() *Circuit {
	inv := &Circuit{NumQubits: c.NumQubits, Gates: make([]Gate, 0, len(c.Gates))}
	for i := len(c.Gates) - 1; i >= 0; i-- {
		inv.Gates = append(inv.Gates, c.Gates[i].Inverse())
	}
	return inv
}

// Apply runs every gate on reg in order and stops at the first error.
func (c *Circuit) Apply(reg *Register, logger zerolog.Logger) error {
	if reg.NumQubits() != c.NumQubits {
		return fmt.Errorf("%w: circuit has %d qubits, register has %d", ErrQubitCount, c.NumQubits, reg.NumQubits())
	}
	for i, g := range c.Gates {
		if err := reg.Apply(g); err != nil {
			return fmt.Errorf("apply gate %d (%s): %w", i, g, err)
		}
		if e := logger.Trace(); e.Enabled() {
			e.Int("step", i).Stringer("gate", g).Float64("norm", reg.Norm()).Msg("gate applied")
		}
	}
	return nil
}
