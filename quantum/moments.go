package quantum

// Moment is a set of gates, by index into Circuit.Gates, whose qubit spans
// do not overlap and can therefore be drawn in one column.
type Moment []int

// span returns the lowest and highest qubit a gate touches. A multi-qubit
// gate occupies every wire in between when drawn.
func span(g Gate) (lo, hi int) {
	qs := g.Qubits()
	lo, hi = qs[0], qs[0]
	for _, q := range qs[1:] {
		lo = min(lo, q)
		hi = max(hi, q)
	}
	return lo, hi
}

// Moments layers the circuit greedily: each gate is placed one step after
// the latest gate already on any wire of its span, keeping circuit order on
// every wire.
func (c *Circuit) Moments() []Moment {
	lastStep := make([]int, c.NumQubits)
	for i := range lastStep {
		lastStep[i] = -1
	}

	var moments []Moment
	for i, g := range c.Gates {
		lo, hi := span(g)
		step := 0
		for q := lo; q <= hi; q++ {
			step = max(step, lastStep[q]+1)
		}
		for q := lo; q <= hi; q++ {
			lastStep[q] = step
		}
		for len(moments) <= step {
			moments = append(moments, nil)
		}
		moments[step] = append(moments[step], i)
	}
	return moments
}

// Depth returns the number of moments.
func (c *Circuit) Depth() int {
	return len(c.Moments())
}
