package quantum

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for QASM parsing.
var (
	singleGateRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	singleGateParamRegex = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex        = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	twoQubitParamRegex   = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	measureRegex         = regexp.MustCompile(`^measure\s+q\[(\d+)\]\s*->\s*(\w+)\[(\d+)\];?$`)
	qregRegex            = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\];?$`)
	cregRegex            = regexp.MustCompile(`^creg\s+(\w+)\[(\d+)\];?$`)
	barrierRegex         = regexp.MustCompile(`^barrier\s+`)
)

// ToQASM renders the circuit as OpenQASM 2.0. When measure is set every
// qubit q is measured into c[q] at the end.
func (c *Circuit) ToQASM(measure bool) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", c.NumQubits)

	for _, g := range c.Gates {
		switch {
		case g.Type == GateSwap:
			fmt.Fprintf(&sb, "swap q[%d], q[%d];\n", g.Targets[0], g.Targets[1])
		case g.isControlledPhase():
			fmt.Fprintf(&sb, "cu1(%s) q[%d], q[%d];\n", formatParam(g.Angle), g.Controls[0], g.Targets[0])
		case g.Type == GateP:
			fmt.Fprintf(&sb, "u1(%s) q[%d];\n", formatParam(g.Angle), g.Targets[0])
		case len(g.Controls) == 1:
			fmt.Fprintf(&sb, "c%s q[%d], q[%d];\n", strings.ToLower(string(g.Type)), g.Controls[0], g.Targets[0])
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(string(g.Type)), g.Targets[0])
		}
	}

	if measure {
		sb.WriteString("\n")
		for q := range c.NumQubits {
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", q, q)
		}
	}
	return sb.String()
}

// ParseQASM builds a circuit from OpenQASM 2.0 text restricted to the gate
// vocabulary: h, x, z, p/u1, their controlled forms cx, ch, cz, cp/cu1,
// and swap. Measurements and barriers
// are accepted and skipped since runs always measure every qubit.
func ParseQASM(qasm string) (*Circuit, error) {
	var c *Circuit
	for lineNo, raw := range strings.Split(qasm, "\n") {
		line := strings.TrimSpace(raw)
		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" || strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}

		if m := qregRegex.FindStringSubmatch(line); m != nil {
			if c != nil {
				return nil, fmt.Errorf("%w: line %d: only one qreg is supported", ErrParse, lineNo+1)
			}
			n, _ := strconv.Atoi(m[2])
			var err error
			if c, err = NewCircuit(n); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			continue
		}
		if cregRegex.MatchString(line) || barrierRegex.MatchString(line) || measureRegex.MatchString(line) {
			continue
		}
		if c == nil {
			return nil, fmt.Errorf("%w: line %d: gate before qreg declaration", ErrParse, lineNo+1)
		}
		if err := c.parseGateLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
	}

	if c == nil {
		return nil, fmt.Errorf("%w: missing qreg declaration", ErrParse)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Circuit) parseGateLine(line string) error {
	if m := singleGateParamRegex.FindStringSubmatch(line); m != nil {
		angle, ok := parseParamExpr(m[2])
		if !ok {
			return fmt.Errorf("%w: bad angle %q", ErrParse, m[2])
		}
		target, _ := strconv.Atoi(m[3])
		switch strings.ToLower(m[1]) {
		case "p", "u1":
			c.AddParameterizedGate(GateP, target, angle)
			return nil
		}
		return fmt.Errorf("%w: unsupported gate %q", ErrParse, m[1])
	}

	if m := twoQubitParamRegex.FindStringSubmatch(line); m != nil {
		angle, ok := parseParamExpr(m[2])
		if !ok {
			return fmt.Errorf("%w: bad angle %q", ErrParse, m[2])
		}
		control, _ := strconv.Atoi(m[3])
		target, _ := strconv.Atoi(m[4])
		switch strings.ToLower(m[1]) {
		case "cp", "cu1":
			c.AddParameterizedGate(GateCP, target, angle, control)
			return nil
		}
		return fmt.Errorf("%w: unsupported gate %q", ErrParse, m[1])
	}

	if m := twoQubitRegex.FindStringSubmatch(line); m != nil {
		q1, _ := strconv.Atoi(m[2])
		q2, _ := strconv.Atoi(m[3])
		switch strings.ToLower(m[1]) {
		case "swap":
			c.AddSwap(q1, q2)
		case "cx", "cnot":
			c.AddGate(GateX, q2, q1)
		case "ch":
			c.AddGate(GateH, q2, q1)
		case "cz":
			c.AddGate(GateZ, q2, q1)
		default:
			return fmt.Errorf("%w: unsupported gate %q", ErrParse, m[1])
		}
		return nil
	}

	if m := singleGateRegex.FindStringSubmatch(line); m != nil {
		target, _ := strconv.Atoi(m[2])
		switch strings.ToLower(m[1]) {
		case "h":
			c.AddGate(GateH, target)
		case "x":
			c.AddGate(GateX, target)
		case "z":
			c.AddGate(GateZ, target)
		default:
			return fmt.Errorf("%w: unsupported gate %q", ErrParse, m[1])
		}
		return nil
	}

	return fmt.Errorf("%w: unrecognised statement %q", ErrParse, line)
}
