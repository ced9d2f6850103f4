package main

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qftsim/quantum"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given visual width.
func padCenter(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	total := width - w
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// padRight pads s with spaces up to the given visual width.
func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// rotationIndex returns k when |angle| == 2π/2^k.
func rotationIndex(angle float64) (int, bool) {
	if angle == 0 {
		return 0, false
	}
	k := math.Log2(2 * math.Pi / math.Abs(angle))
	r := math.Round(k)
	if r < 1 || math.Abs(k-r) > 1e-9 {
		return 0, false
	}
	return int(r), true
}

// gateDisplayName returns a short display name for a gate. Phase gates use
// the R_k notation of the QFT literature.
func gateDisplayName(g quantum.Gate) string {
	switch g.Type {
	case quantum.GateP, quantum.GateCP:
		k, ok := rotationIndex(g.Angle)
		if !ok {
			return "P"
		}
		if g.Angle < 0 {
			return fmt.Sprintf("R%d†", k)
		}
		return fmt.Sprintf("R%d", k)
	default:
		return string(g.Type)
	}
}

// ──────────────────────────── Cell rendering ────────────────────────────

// cellInfo describes what occupies one (moment, qubit) cell of the diagram.
type cellInfo struct {
	gate        *quantum.Gate
	isControl   bool
	isTarget    bool
	passThrough bool
	vertAbove   bool
	vertBelow   bool
}

func cellAt(c *quantum.Circuit, moment quantum.Moment, qubit int) cellInfo {
	for _, gi := range moment {
		g := &c.Gates[gi]
		qs := g.Qubits()
		lo, hi := slices.Min(qs), slices.Max(qs)
		if qubit < lo || qubit > hi {
			continue
		}
		info := cellInfo{vertAbove: qubit > lo, vertBelow: qubit < hi}
		switch {
		case !g.References(qubit):
			info.passThrough = true
		case slices.Contains(g.Controls, qubit):
			info.gate, info.isControl = g, true
		default:
			info.gate, info.isTarget = g, true
		}
		return info
	}
	return cellInfo{}
}

// boxCell draws a gate box, joining the vertical connector of a
// multi-qubit gate into its top or bottom edge.
func boxCell(name string, vertAbove, vertBelow bool, style lipgloss.Style) (top, mid, bot string) {
	margin := (cellW - gateBoxW) / 2
	rightMargin := cellW - margin - gateBoxW
	half := gateNameW / 2

	topEdge := strings.Repeat("─", gateNameW)
	if vertAbove {
		topEdge = strings.Repeat("─", half) + "┴" + strings.Repeat("─", gateNameW-half-1)
	}
	botEdge := strings.Repeat("─", gateNameW)
	if vertBelow {
		botEdge = strings.Repeat("─", half) + "┬" + strings.Repeat("─", gateNameW-half-1)
	}

	top = strings.Repeat(" ", margin) + style.Render("┌"+topEdge+"┐") + strings.Repeat(" ", rightMargin)
	mid = strings.Repeat("─", margin) + style.Render("┤"+padCenter(name, gateNameW)+"├") + strings.Repeat("─", rightMargin)
	bot = strings.Repeat(" ", margin) + style.Render("└"+botEdge+"┘") + strings.Repeat(" ", rightMargin)
	return
}

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW visual characters wide.
func renderCell(info cellInfo) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	wire := func(sym string) (string, string, string) {
		top, bot := emptyRow, emptyRow
		if info.vertAbove {
			top = vertRow
		}
		if info.vertBelow {
			bot = vertRow
		}
		return top, strings.Repeat("─", dashL) + sym + strings.Repeat("─", dashR), bot
	}

	switch {
	case info.passThrough:
		return wire("┼")
	case info.gate == nil:
		return wire("─")
	case info.isControl:
		return wire(gateStyle.Render("●"))
	case info.gate.Type == quantum.GateSwap:
		return wire(gateStyle.Render("×"))
	default:
		return boxCell(gateDisplayName(*info.gate), info.vertAbove, info.vertBelow, gateStyle)
	}
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuit draws c one moment per column, optionally followed by a
// measurement column, inside a bordered panel.
func renderCircuit(c *quantum.Circuit, measure bool) string {
	moments := c.Moments()
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("QFT circuit: %d qubits, %d gates, depth %d", c.NumQubits, len(c.Gates), len(moments))))
	sb.WriteString("\n\n")

	// Step number header
	header := strings.Repeat(" ", labelVisualW)
	for step := range moments {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", step), cellW))
	}
	sb.WriteString(header + "\n")

	// Render each qubit as 3 lines
	for qubit := range c.NumQubits {
		topLine := strings.Repeat(" ", labelVisualW)
		label := fmt.Sprintf("q[%d]", qubit)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for _, moment := range moments {
			top, mid, bot := renderCell(cellAt(c, moment, qubit))
			topLine += top
			midLine += mid
			botLine += bot
		}
		if measure {
			top, mid, bot := boxCell("M", false, false, measureStyle)
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(renderLegend(c))

	return circuitStyle.Render(sb.String())
}

// ──────────────────────────── Result rendering ────────────────────────────

// renderResults prints the measured outcomes and the basis state they
// encode.
func renderResults(results []quantum.Result) string {
	names := make([]string, len(results))
	for i := range results {
		names[i] = fmt.Sprintf("qubit%d", i)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Post-QFT measurement results [%s]:", strings.Join(names, ", "))))
	sb.WriteString("\n")
	sb.WriteString(resultStyle.Render(quantum.FormatResults(results)))
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("Corresponding basis state in binary:"))
	sb.WriteString("\n")
	sb.WriteString(basisStyle.Render(quantum.BasisLabel(results)))
	sb.WriteString("\n")
	return sb.String()
}

// renderHistogram prints one bar per basis state, scaled to the most
// frequent outcome.
func renderHistogram(h *quantum.Histogram) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Measurement histogram over %d shots:", h.Shots)))
	sb.WriteString("\n")

	peak := 0
	if len(h.Counts) > 0 {
		peak = slices.Max(h.Counts)
	}
	for i, n := range h.Counts {
		bar := 0
		if peak > 0 {
			bar = n * histBarW / peak
		}
		fmt.Fprintf(&sb, "%s %8d %7.2f%% %s\n",
			basisStyle.Render(h.Label(i)),
			n,
			100*h.Frequency(i),
			barStyle.Render(strings.Repeat("█", bar)))
	}
	return sb.String()
}
