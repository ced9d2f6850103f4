package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Matrix is a square local operator of size 2^k acting on k qubits.
type Matrix [][]Complex

// Dim returns the row count.
func (m Matrix) Dim() int { return len(m) }

func (m Matrix) isDiagonal() bool {
	for i, row := range m {
		for j, v := range row {
			if i != j && v != 0 {
				return false
			}
		}
	}
	return true
}

// GateType names an operation of the gate vocabulary.
type GateType string

const (
	GateH    GateType = "H"
	GateX    GateType = "X"
	GateZ    GateType = "Z"
	GateP    GateType = "P"
	GateCP   GateType = "CP"
	GateSwap GateType = "SWAP"
)

// Gate describes a unitary operation. Gates are values; applying one does
// not retain the register.
type Gate struct {
	Type     GateType
	Targets  []int
	Controls []int
	Angle    float64 // phase angle for P and CP
}

// Qubits returns controls followed by targets.
func (g Gate) Qubits() []int {
	qs := make([]int, 0, len(g.Controls)+len(g.Targets))
	qs = append(qs, g.Controls...)
	return append(qs, g.Targets...)
}

// References reports whether the gate touches the given qubit.
func (g Gate) References(qubit int) bool {
	for _, q := range g.Qubits() {
		if q == qubit {
			return true
		}
	}
	return false
}

// Inverse returns the adjoint gate.
func (g Gate) Inverse() Gate {
	inv := g
	inv.Targets = append([]int(nil), g.Targets...)
	inv.Controls = append([]int(nil), g.Controls...)
	if g.Type == GateP || g.Type == GateCP {
		inv.Angle = -g.Angle
	}
	return inv
}

// String renders the gate as "X q[1]", or "CX q[0], q[1]" when controlled.
func (g Gate) String() string {
	switch {
	case g.Type == GateSwap:
		return fmt.Sprintf("SWAP q[%d], q[%d]", g.Targets[0], g.Targets[1])
	case g.isControlledPhase():
		return fmt.Sprintf("CP(%s) q[%d], q[%d]", formatParam(g.Angle), g.Controls[0], g.Targets[0])
	case g.Type == GateP:
		return fmt.Sprintf("P(%s) q[%d]", formatParam(g.Angle), g.Targets[0])
	case len(g.Controls) == 1:
		return fmt.Sprintf("C%s q[%d], q[%d]", g.Type, g.Controls[0], g.Targets[0])
	default:
		return fmt.Sprintf("%s q[%d]", g.Type, g.Targets[0])
	}
}

// isControlledPhase reports whether the gate is a phase with one control,
// whether it was built as CP or as a controlled P.
func (g Gate) isControlledPhase() bool {
	return (g.Type == GateCP || g.Type == GateP) && len(g.Controls) == 1
}

// Matrix returns the local unitary acting on the gate's targets.
func (g Gate) Matrix() (Matrix, error) {
	switch g.Type {
	case GateH:
		return Hadamard(), nil
	case GateX:
		return PauliX(), nil
	case GateZ:
		return PauliZ(), nil
	case GateP, GateCP:
		return Phase(g.Angle), nil
	case GateSwap:
		return Swap(), nil
	default:
		return nil, fmt.Errorf("unknown gate type %q", g.Type)
	}
}

func Hadamard() Matrix {
	h := complex(1/math.Sqrt2, 0)
	return Matrix{{h, h}, {h, -h}}
}

func PauliX() Matrix { return Matrix{{0, 1}, {1, 0}} }

func PauliZ() Matrix { return Matrix{{1, 0}, {0, -1}} }

// Phase returns diag(1, e^{i*theta}).
func Phase(theta float64) Matrix {
	return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, theta))}}
}

func Swap() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
}

// Apply applies the gate to the register.
func (r *Register) Apply(g Gate) error {
	m, err := g.Matrix()
	if err != nil {
		return err
	}
	return r.ApplyControlled(g.Controls, g.Targets, m)
}

// ApplyControlled applies matrix to targets on the subspace where every
// control qubit is 1.
//
// Basis indices are visited in ascending order. An index is a group base
// when all its target bits are 0; every other index is a partner of an
// earlier base and is skipped, so each group of 2^k amplitudes is
// transformed exactly once.
func (r *Register) ApplyControlled(controls, targets []int, matrix Matrix) error {
	if len(targets) == 0 {
		return fmt.Errorf("%w: gate has no target qubit", ErrIndex)
	}
	seen := make(map[int]bool, len(controls)+len(targets))
	for _, q := range append(append([]int(nil), controls...), targets...) {
		if err := r.checkQubit(q); err != nil {
			return err
		}
		if seen[q] {
			return fmt.Errorf("%w: qubit %d listed twice", ErrIndex, q)
		}
		seen[q] = true
	}
	dim := 1 << len(targets)
	if matrix.Dim() != dim {
		return fmt.Errorf("%w: got %d rows for %d qubit(s), want %d", ErrDimension, matrix.Dim(), len(targets), dim)
	}
	for i, row := range matrix {
		if len(row) != dim {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimension, i, len(row), dim)
		}
	}

	cMask := 0
	for _, c := range controls {
		cMask |= 1 << c
	}
	tMask := 0
	for _, t := range targets {
		tMask |= 1 << t
	}

	// offsets[l] is the global bit pattern of local index l.
	offsets := make([]int, dim)
	for l := range dim {
		for b, t := range targets {
			if l&(1<<b) != 0 {
				offsets[l] |= 1 << t
			}
		}
	}

	backup := r.Amplitudes()
	if matrix.isDiagonal() {
		r.applyDiagonal(cMask, tMask, offsets, matrix)
	} else {
		r.applyDense(cMask, tMask, offsets, matrix)
	}
	return r.checkNorm(backup)
}

func (r *Register) applyDense(cMask, tMask int, offsets []int, m Matrix) {
	dim := len(offsets)
	buf := make([]Complex, dim)
	n := len(r.amplitudes)
	for i := 0; i < n; i++ {
		if i&tMask != 0 || i&cMask != cMask {
			continue
		}
		for l, off := range offsets {
			buf[l] = r.amplitudes[i|off]
		}
		for row := range dim {
			var sum Complex
			for col, v := range buf {
				sum += m[row][col] * v
			}
			r.amplitudes[i|offsets[row]] = sum
		}
	}
}

func (r *Register) applyDiagonal(cMask, tMask int, offsets []int, m Matrix) {
	n := len(r.amplitudes)
	for i := 0; i < n; i++ {
		if i&tMask != 0 || i&cMask != cMask {
			continue
		}
		for l, off := range offsets {
			if d := m[l][l]; d != 1 {
				r.amplitudes[i|off] *= d
			}
		}
	}
}
