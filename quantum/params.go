package quantum

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// paramPattern matches a single angle: a number or a pi expression such as
// "pi/2", "3*pi/4", "-pi" or "3.14e-2".
const paramPattern = `-?(?:\d*\.?\d*\*?pi(?:/\d+\.?\d*)?|\d+\.?\d*(?:[eE][+\-]?\d+)?)`

var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// maxPiDenominator bounds the fractions formatParam recognises. QFT angles
// are pi/2^m, so powers of two up to 2^23 are covered.
const maxPiDenominator = 1 << 23

// parseParamExpr parses a plain number or a pi expression.
//
// Supported formats:
//   - Plain numbers: "1.5707", "-0.5"
//   - Pi constant: "pi"
//   - Pi fractions: "pi/2", "pi/16"
//   - Coefficients: "2pi", "3*pi/4"
//   - Negative: "-pi/2"
func parseParamExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	s = strings.ToLower(s)
	matches := piExprRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, false
	}

	coeff := 1.0
	if matches[2] != "" {
		var err error
		coeff, err = strconv.ParseFloat(matches[2], 64)
		if err != nil {
			return 0, false
		}
	}
	result := coeff * math.Pi

	if matches[3] != "" {
		denom, err := strconv.ParseFloat(matches[3], 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		result /= denom
	}

	if matches[1] == "-" {
		result = -result
	}
	return result, true
}

// formatParam formats an angle in pi notation when it is a rational
// multiple of pi with a power-of-two or small denominator.
func formatParam(val float64) string {
	if val == 0 {
		return "0"
	}
	sign := ""
	abs := val
	if val < 0 {
		sign = "-"
		abs = -val
	}

	ratio := abs / math.Pi
	for _, denom := range piDenominators() {
		num := math.Round(ratio * float64(denom))
		if num < 1 || math.Abs(num*math.Pi/float64(denom)-abs) > 1e-10 {
			continue
		}
		switch {
		case num == 1 && denom == 1:
			return sign + "pi"
		case denom == 1:
			return fmt.Sprintf("%s%g*pi", sign, num)
		case num == 1:
			return fmt.Sprintf("%spi/%d", sign, denom)
		default:
			return fmt.Sprintf("%s%g*pi/%d", sign, num, denom)
		}
	}

	return fmt.Sprintf("%g", val)
}

// piDenominators lists 1, 2, 3, 4, 6, 8 and further powers of two.
func piDenominators() []int {
	denoms := []int{1, 2, 3, 4, 6, 8}
	for d := 16; d <= maxPiDenominator; d <<= 1 {
		denoms = append(denoms, d)
	}
	return denoms
}
