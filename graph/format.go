package graph

import (
	"math"
	"strconv"
	"strings"
)

// Format renders v for on-screen labels: rounded half-up to 5 decimals, no
// trailing ".0", and commas between groups of 3 integer digits.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	r := math.Floor(v*1e5+0.5) / 1e5
	if math.IsInf(r, 0) || math.IsNaN(r) {
		r = v
	}
	if r == 0 {
		r = 0 // drop the sign of -0
	}

	s := strconv.FormatFloat(r, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if frac == "" || strings.Trim(frac, "0") == "" {
		return sign + groupThousands(whole)
	}
	return sign + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// formatPlain prints a slope or intercept the way the trace log shows them.
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
