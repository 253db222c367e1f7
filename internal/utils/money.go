package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxCents is the largest amount a price column holds: 99,999,999.99.
const MaxCents int64 = 9_999_999_999

// FormatCents renders minor units as a decimal amount, e.g. 12345 -> "123.45".
func FormatCents(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%s.%02d", sign, formatThousand(amount/100), amount%100)
}

// ParseCents parses "123.45", "123,45" or "123" into minor units.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	s = strings.Replace(s, ",", ".", 1)
	whole, frac, hasFrac := strings.Cut(s, ".")
	if !isDigits(whole) || (hasFrac && !isDigits(frac)) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if len(strings.TrimLeft(whole, "0")) > 8 {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	var f int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}
	return w*100 + f, nil
}

// MulCents returns n * cents. It reports false for negative operands or
// when the product does not fit in an int64.
func MulCents(n, cents int64) (int64, bool) {
	if n < 0 || cents < 0 {
		return 0, false
	}
	if n != 0 && cents > math.MaxInt64/n {
		return 0, false
	}
	return n * cents, true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
