package money

import (
	"math"
	"strconv"
	"strings"
)

// Centavos is a monetary amount in integer centavos (R$ 1,00 = 100).
//
// All pricing arithmetic runs on this type so that sums and percentages never
// accumulate binary-float rounding drift. Conversion to float happens only at
// the edges (request payloads, provider SDKs).
type Centavos int64

// FromFloat converts a decimal amount in reais to centavos, rounding half away
// from zero.
func FromFloat(v float64) Centavos {
	return Centavos(math.Round(v * 100))
}

// Float64 returns the amount as decimal reais.
func (c Centavos) Float64() float64 {
	return float64(c) / 100
}

// Reais returns the whole-reais part and the centavos remainder.
// For negative amounts both parts carry the sign of the total.
func (c Centavos) Reais() (int64, int64) {
	return int64(c) / 100, int64(c) % 100
}

// Format renders the amount in the Brazilian convention used across the
// generated documents: plain integer part, comma, exactly two digits.
// No thousands separator.
func (c Centavos) Format() string {
	v := int64(c)
	neg := v < 0
	if neg {
		v = -v
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(v/100, 10))
	b.WriteByte(',')
	cents := v % 100
	if cents < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(cents, 10))
	return b.String()
}

// Percent applies pct% to the amount, rounding half up on the centavo.
func (c Centavos) Percent(pct int) Centavos {
	v := int64(c) * int64(pct)
	if v >= 0 {
		return Centavos((v + 50) / 100)
	}
	return Centavos((v - 50) / 100)
}

// PercentOf computes round(c / total * 100). A zero total degrades to 0
// instead of a division error.
func (c Centavos) PercentOf(total Centavos) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(c) / float64(total) * 100))
}

// ParseDecimal parses a decimal amount such as "55.00", "55,00" or "55" into
// centavos. Returns false when the input is not a plain decimal number; the
// caller decides the fallback.
func ParseDecimal(s string) (Centavos, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return FromFloat(v), true
}
