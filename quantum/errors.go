package quantum

import "errors"

// Error kinds returned by the simulator. Callers match them with errors.Is;
// the returned errors wrap these with the offending values.
var (
	// ErrIndex reports an out-of-range or repeated qubit, or an
	// out-of-range basis index.
	ErrIndex = errors.New("index out of range")

	// ErrDimension reports a gate matrix whose size does not match
	// 2^len(qubits).
	ErrDimension = errors.New("matrix dimension mismatch")

	// ErrInvalidState reports norm drift beyond epsilon after a unitary
	// application, usually a non-unitary matrix.
	ErrInvalidState = errors.New("invalid state norm")

	// ErrDegenerateState reports a measurement branch with zero surviving
	// probability.
	ErrDegenerateState = errors.New("degenerate state")

	// ErrQubitCount reports a register size outside [1, MaxQubits].
	ErrQubitCount = errors.New("invalid qubit count")

	// ErrParse reports malformed OpenQASM input.
	ErrParse = errors.New("qasm parse error")
)
