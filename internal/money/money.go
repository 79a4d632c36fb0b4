// Package money provides currency rounding and formatting helpers.
//
// Pricing computations run in full float64 precision; values are rounded
// to cents only when they are recorded into a breakdown or displayed, so
// rounding never compounds across a multi-rule chain.
package money

import (
	"math"
	"strconv"
)

// Round2 rounds a currency amount to two decimal places (half away from zero).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Cents converts a currency amount to an integer number of cents.
func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// FromCents converts an integer number of cents to a currency amount.
func FromCents(c int64) float64 {
	return float64(c) / 100
}

// FormatUSD formats an amount as a string like "$1,234.50".
func FormatUSD(amount float64) string {
	neg := amount < 0
	c := Cents(math.Abs(amount))
	whole := c / 100
	frac := c % 100

	digits := strconv.FormatInt(whole, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	s := "$" + string(out) + "."
	if frac < 10 {
		s += "0"
	}
	s += strconv.FormatInt(frac, 10)
	if neg {
		s = "-" + s
	}
	return s
}
