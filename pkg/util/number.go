package util

import (
	"math/big"
	"strconv"
	"strings"
)

// RoundHalfUp rounds v to scale decimal places, ties away from zero. Rounding
// works on the shortest decimal representation of v, so 0.0000005 becomes
// 0.000001 instead of suffering from binary error.
func RoundHalfUp(v float64, scale int) float64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) <= scale {
		return v
	}

	digits := new(big.Int)
	digits.SetString(intPart+frac[:scale], 10)
	if frac[scale] >= '5' {
		digits.Add(digits, big.NewInt(1))
	}

	out := digits.String()
	if len(out) <= scale {
		out = strings.Repeat("0", scale-len(out)+1) + out
	}
	out = out[:len(out)-scale] + "." + out[len(out)-scale:]
	if neg {
		out = "-" + out
	}
	r, err := strconv.ParseFloat(out, 64)
	if err != nil {
		return v
	}
	return r
}

// RoundHalfUp6 rounds v to 6 decimal places, ties away from zero.
func RoundHalfUp6(v float64) float64 {
	return RoundHalfUp(v, 6)
}
