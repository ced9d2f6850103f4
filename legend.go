package main

import (
	"fmt"
	"strings"

	"qftsim/quantum"
)

// legendItem describes how one gate type is drawn.
type legendItem struct {
	name        string
	gateType    quantum.GateType
	symbol      string
	needsTarget bool
}

// gateLegend lists the gate vocabulary in display order.
var gateLegend = []legendItem{
	{name: "Hadamard", gateType: quantum.GateH, symbol: "H"},
	{name: "Pauli-X (NOT)", gateType: quantum.GateX, symbol: "X"},
	{name: "Pauli-Z", gateType: quantum.GateZ, symbol: "Z"},
	{name: "Phase shift", gateType: quantum.GateP, symbol: "Rk"},
	{name: "Controlled phase", gateType: quantum.GateCP, symbol: "●─Rk", needsTarget: true},
	{name: "SWAP", gateType: quantum.GateSwap, symbol: "×─×", needsTarget: true},
}

// renderLegend lists the gate types present in c with their counts.
func renderLegend(c *quantum.Circuit) string {
	counts := c.Counts()

	var sb strings.Builder
	sb.WriteString(dimStyle.Render("Gates"))
	sb.WriteString("\n")
	phase := false
	for _, item := range gateLegend {
		n := counts[item.gateType]
		if n == 0 {
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(gateStyle.Render(padRight(item.symbol, 6)))
		sb.WriteString(padRight(item.name, 18))
		sb.WriteString(dimStyle.Render(fmt.Sprintf("×%d", n)))
		if item.needsTarget {
			sb.WriteString(dimStyle.Render(" (2 qubits)"))
		}
		sb.WriteString("\n")
		if item.gateType == quantum.GateP || item.gateType == quantum.GateCP {
			phase = true
		}
	}
	if phase {
		sb.WriteString(dimStyle.Render("  Rk = phase 2π/2^k, † = inverse"))
		sb.WriteString("\n")
	}
	return sb.String()
}
