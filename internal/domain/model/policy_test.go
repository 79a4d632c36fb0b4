package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestChargingPolicy_Valid tests policy well-formedness checks.
func TestChargingPolicy_Valid(t *testing.T) {
	tests := []struct {
		name   string
		policy ChargingPolicy
		want   bool
	}{
		{name: "default", policy: DefaultChargingPolicy(), want: true},
		{name: "exact fraction quarter", policy: ChargingPolicy{RoundingMode: RoundExactFraction, MinSheetFraction: 0.25}, want: true},
		{name: "nearest fraction half", policy: ChargingPolicy{RoundingMode: RoundNearestFraction, MinSheetFraction: 0.5}, want: true},
		{name: "full sheet ignores fraction", policy: ChargingPolicy{RoundingMode: RoundCeilFullSheet}, want: true},
		{name: "with kerf", policy: ChargingPolicy{RoundingMode: RoundCeilFullSheet, Kerf: 0.125}, want: true},
		{name: "unknown mode", policy: ChargingPolicy{RoundingMode: "half_sheets"}},
		{name: "zero fraction", policy: ChargingPolicy{RoundingMode: RoundExactFraction}},
		{name: "fraction above one", policy: ChargingPolicy{RoundingMode: RoundExactFraction, MinSheetFraction: 1.5}},
		{name: "negative kerf", policy: ChargingPolicy{RoundingMode: RoundCeilFullSheet, Kerf: -0.1}},
		{name: "NaN kerf", policy: ChargingPolicy{RoundingMode: RoundCeilFullSheet, Kerf: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Valid())
		})
	}
}

// TestOversizeRule_Matches tests axis matching.
func TestOversizeRule_Matches(t *testing.T) {
	any := OversizeRule{Axis: OversizeAxisAny, Action: OversizeSplit}
	assert.True(t, any.Matches(OversizeAxisWidth))
	assert.True(t, any.Matches(OversizeAxisHeight))

	width := OversizeRule{Axis: OversizeAxisWidth, Action: OversizeReject}
	assert.True(t, width.Matches(OversizeAxisWidth))
	assert.False(t, width.Matches(OversizeAxisHeight))
}

// TestSelectVolumeTier tests threshold selection and tie-breaking.
func TestSelectVolumeTier(t *testing.T) {
	tiers := []VolumeTier{
		{MinQuantity: 50, Mode: TierMultiplier, Value: 0.9, Label: "50+"},
		{MinQuantity: 200, Mode: TierOverride, Value: 15, Label: "200+"},
		{MinQuantity: 50, Mode: TierMultiplier, Value: 0.85, Label: "50+ promo"},
	}

	tests := []struct {
		name      string
		quantity  int
		wantLabel string
		wantFound bool
	}{
		{name: "below every threshold", quantity: 49},
		{name: "at the lowest threshold ties to the later entry", quantity: 50, wantLabel: "50+ promo", wantFound: true},
		{name: "between thresholds", quantity: 199, wantLabel: "50+ promo", wantFound: true},
		{name: "highest threshold wins", quantity: 200, wantLabel: "200+", wantFound: true},
		{name: "far above", quantity: 10000, wantLabel: "200+", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, found := SelectVolumeTier(tiers, tt.quantity)
			assert.Equal(t, tt.wantFound, found)
			if found {
				assert.Equal(t, tt.wantLabel, tier.Label)
			}
		})
	}

	_, found := SelectVolumeTier(nil, 1000)
	assert.False(t, found)
}

// TestSpecs_Valid tests sheet and piece validation.
func TestSpecs_Valid(t *testing.T) {
	assert.True(t, SheetSpec{Width: 48, Height: 96, BaseCost: 20}.Valid())
	assert.True(t, SheetSpec{Width: 48, Height: 96}.Valid())
	assert.False(t, SheetSpec{Width: 0, Height: 96, BaseCost: 20}.Valid())
	assert.False(t, SheetSpec{Width: 48, Height: 96, BaseCost: -1}.Valid())
	assert.False(t, SheetSpec{Width: math.Inf(1), Height: 96, BaseCost: 20}.Valid())

	assert.True(t, PieceSpec{Width: 12, Height: 12, Quantity: 1}.Valid())
	assert.False(t, PieceSpec{Width: 12, Height: 12}.Valid())
	assert.False(t, PieceSpec{Width: -12, Height: 12, Quantity: 1}.Valid())
}

// TestPieceSpec_AreaSqFt verifies the inch to square-foot conversion.
func TestPieceSpec_AreaSqFt(t *testing.T) {
	assert.InDelta(t, 1.0, PieceSpec{Width: 12, Height: 12}.AreaSqFt(), 1e-12)
	assert.InDelta(t, 32.0, PieceSpec{Width: 48, Height: 96}.AreaSqFt(), 1e-12)
}
