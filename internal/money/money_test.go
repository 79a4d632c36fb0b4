package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0},
		{1.015, 1.02},
		{1.875, 1.88},
		{0.844999, 0.84},
		{-1.875, -1.88},
		{20, 20},
		{0, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round2(tt.in), 1e-12, "Round2(%v)", tt.in)
	}
}

func TestCentsRoundTrip(t *testing.T) {
	assert.Equal(t, int64(125), Cents(1.25))
	assert.Equal(t, int64(-125), Cents(-1.25))
	assert.Equal(t, 1.25, FromCents(125))
	assert.Equal(t, 0.01, FromCents(1))
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1.25, "$1.25"},
		{20, "$20.00"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-42.07, "-$42.07"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.in))
	}
}
