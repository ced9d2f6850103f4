package main

import (
	"math"
	"strings"
	"testing"

	"qftsim/quantum"
)

func TestRenderResults(t *testing.T) {
	out := renderResults([]quantum.Result{quantum.Zero, quantum.One, quantum.One})

	for _, want := range []string{
		"Post-QFT measurement results [qubit0, qubit1, qubit2]:",
		"[Zero,One,One]",
		"Corresponding basis state in binary:",
		"|110>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRenderHistogram(t *testing.T) {
	h := &quantum.Histogram{NumQubits: 2, Shots: 4, Counts: []int{2, 0, 1, 1}}
	out := renderHistogram(h)

	for _, want := range []string{"4 shots", "|00>", "|01>", "|10>", "|11>", "50.00%", "25.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in histogram, got:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "█"); got != histBarW+2*(histBarW/2) {
		t.Errorf("bar cells = %d, want %d", got, histBarW+2*(histBarW/2))
	}
}

func TestRotationIndex(t *testing.T) {
	tests := []struct {
		angle float64
		want  int
		ok    bool
	}{
		{math.Pi, 1, true},
		{math.Pi / 2, 2, true},
		{math.Pi / 4, 3, true},
		{-math.Pi / 8, 4, true},
		{0, 0, false},
		{1.0, 0, false},
		{2 * math.Pi, 0, false},
	}
	for _, tt := range tests {
		got, ok := rotationIndex(tt.angle)
		if ok != tt.ok || got != tt.want {
			t.Errorf("rotationIndex(%g) = (%d, %v), want (%d, %v)", tt.angle, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGateDisplayName(t *testing.T) {
	tests := []struct {
		gate quantum.Gate
		want string
	}{
		{quantum.Gate{Type: quantum.GateH, Targets: []int{0}}, "H"},
		{quantum.Gate{Type: quantum.GateCP, Targets: []int{1}, Controls: []int{0}, Angle: math.Pi / 2}, "R2"},
		{quantum.Gate{Type: quantum.GateCP, Targets: []int{1}, Controls: []int{0}, Angle: -math.Pi / 4}, "R3†"},
		{quantum.Gate{Type: quantum.GateP, Targets: []int{0}, Angle: 0.3}, "P"},
	}
	for _, tt := range tests {
		if got := gateDisplayName(tt.gate); got != tt.want {
			t.Errorf("gateDisplayName(%s) = %q, want %q", tt.gate, got, tt.want)
		}
	}
}

func TestCellAt(t *testing.T) {
	c, err := quantum.QFT(3)
	if err != nil {
		t.Fatalf("QFT(3) error: %v", err)
	}
	moments := c.Moments()

	// moment 2 holds CP(q[0] -> q[2]), which passes over q[1]
	ctrl := cellAt(c, moments[2], 0)
	if !ctrl.isControl || ctrl.vertAbove || !ctrl.vertBelow {
		t.Errorf("q[0] in moment 2: %+v", ctrl)
	}
	pass := cellAt(c, moments[2], 1)
	if !pass.passThrough || !pass.vertAbove || !pass.vertBelow {
		t.Errorf("q[1] in moment 2: %+v", pass)
	}
	target := cellAt(c, moments[2], 2)
	if !target.isTarget || !target.vertAbove || target.vertBelow {
		t.Errorf("q[2] in moment 2: %+v", target)
	}

	// moment 0 only holds H on q[2]
	if empty := cellAt(c, moments[0], 0); empty.gate != nil || empty.passThrough {
		t.Errorf("q[0] in moment 0 should be an empty wire: %+v", empty)
	}
}

func TestRenderCellWidths(t *testing.T) {
	g := quantum.Gate{Type: quantum.GateCP, Targets: []int{2}, Controls: []int{0}, Angle: math.Pi / 4}
	cells := []cellInfo{
		{},
		{passThrough: true, vertAbove: true, vertBelow: true},
		{gate: &g, isControl: true, vertBelow: true},
		{gate: &g, isTarget: true, vertAbove: true},
	}
	for i, info := range cells {
		top, mid, bot := renderCell(info)
		for _, line := range []string{top, mid, bot} {
			if w := visibleWidth(line); w != cellW {
				t.Errorf("cell %d: line %q has width %d, want %d", i, line, w, cellW)
			}
		}
	}
}

func TestRenderCircuit(t *testing.T) {
	c, err := quantum.QFT(3)
	if err != nil {
		t.Fatalf("QFT(3) error: %v", err)
	}
	out := renderCircuit(c, true)

	for _, want := range []string{
		"3 qubits, 7 gates, depth 7",
		"q[0]", "q[1]", "q[2]",
		"●", "×", "┼", "R2", "R3", "M",
		"Hadamard", "Controlled phase", "SWAP",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in circuit diagram, got:\n%s", want, out)
		}
	}
}

func TestRenderLegendOnlyListsPresentGates(t *testing.T) {
	c, err := quantum.QFT(1)
	if err != nil {
		t.Fatalf("QFT(1) error: %v", err)
	}
	out := renderLegend(c)
	if !strings.Contains(out, "Hadamard") {
		t.Errorf("legend should list Hadamard, got:\n%s", out)
	}
	for _, absent := range []string{"SWAP", "Controlled phase", "Rk ="} {
		if strings.Contains(out, absent) {
			t.Errorf("legend should not list %q for a single qubit, got:\n%s", absent, out)
		}
	}
}

// visibleWidth counts runes outside ANSI escape sequences.
func visibleWidth(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
