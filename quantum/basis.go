package quantum

import (
	"fmt"
	"strings"
)

// BitOrder selects which qubit's digit leads a basis-state label.
type BitOrder int

const (
	// HighestQubitFirst prints the last-allocated qubit first, so the
	// label reads as the binary basis index.
	HighestQubitFirst BitOrder = iota
	// LowestQubitFirst prints qubits in allocation order.
	LowestQubitFirst
)

// LabelOrder is the display convention used by BasisLabel. It only
// affects rendering, never measurement.
const LabelOrder = HighestQubitFirst

// BasisLabel renders outcomes (index 0 = first-allocated qubit) as a ket
// such as "|110>" using LabelOrder.
func BasisLabel(outcomes []Result) string {
	return FormatBasisLabel(outcomes, LabelOrder)
}

// FormatBasisLabel renders outcomes as a ket in the given order.
func FormatBasisLabel(outcomes []Result, order BitOrder) string {
	digits := make([]byte, len(outcomes))
	for i, r := range outcomes {
		pos := i
		if order == HighestQubitFirst {
			pos = len(outcomes) - 1 - i
		}
		digits[pos] = r.Digit()
	}
	return "|" + string(digits) + ">"
}

// FormatResults renders outcomes in allocation order, e.g. "[Zero,One,One]".
func FormatResults(outcomes []Result) string {
	parts := make([]string, len(outcomes))
	for i, r := range outcomes {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// BasisIndex returns the basis index encoded by outcomes, qubit 0 being the
// least-significant bit.
func BasisIndex(outcomes []Result) int {
	idx := 0
	for q, r := range outcomes {
		if r == One {
			idx |= 1 << q
		}
	}
	return idx
}

// ResultsFromIndex decodes a basis index into per-qubit outcomes.
func ResultsFromIndex(index, numQubits int) ([]Result, error) {
	if numQubits < 1 || numQubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrQubitCount, numQubits, MaxQubits)
	}
	if index < 0 || index >= 1<<numQubits {
		return nil, fmt.Errorf("%w: basis index %d not in [0, %d)", ErrIndex, index, 1<<numQubits)
	}
	results := make([]Result, numQubits)
	for q := range numQubits {
		if index&(1<<q) != 0 {
			results[q] = One
		}
	}
	return results, nil
}
