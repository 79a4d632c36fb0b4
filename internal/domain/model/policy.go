package model

import "math"

// RoundingMode controls how partial sheet usage is billed.
type RoundingMode string

const (
	// RoundCeilFullSheet always bills whole sheets.
	RoundCeilFullSheet RoundingMode = "ceil_full_sheet"
	// RoundNearestFraction rounds usage to the nearest multiple of the
	// minimum billable fraction.
	RoundNearestFraction RoundingMode = "nearest_fraction"
	// RoundExactFraction rounds usage up to the nearest multiple of the
	// minimum billable fraction and bills the fractional amount.
	RoundExactFraction RoundingMode = "exact_fraction"
)

// Valid reports whether the rounding mode is one of the known values.
func (m RoundingMode) Valid() bool {
	switch m {
	case RoundCeilFullSheet, RoundNearestFraction, RoundExactFraction:
		return true
	}
	return false
}

// OversizeAxis identifies which sheet axis an oversize rule applies to.
type OversizeAxis string

const (
	// OversizeAxisAny matches an overflow on either axis.
	OversizeAxisAny OversizeAxis = "any"
	// OversizeAxisWidth matches an overflow on the sheet width.
	OversizeAxisWidth OversizeAxis = "width"
	// OversizeAxisHeight matches an overflow on the sheet height.
	OversizeAxisHeight OversizeAxis = "height"
)

// OversizeAction describes how an oversize piece is handled.
type OversizeAction string

const (
	// OversizeSplit cuts the overflowing dimension into equal segments
	// that fit the sheet; the piece is produced from multiple segments.
	OversizeSplit OversizeAction = "split"
	// OversizeSurcharge bills the piece as one full sheet and adds a flat
	// surcharge to the effective sheet cost.
	OversizeSurcharge OversizeAction = "surcharge"
	// OversizeReject refuses the piece.
	OversizeReject OversizeAction = "reject"
)

// OversizeRule describes one organization-configured handling for a piece
// whose dimension exceeds the sheet on a single axis. Rules are evaluated
// in list order; the first applicable rule wins.
type OversizeRule struct {
	// Axis selects which overflow axis this rule applies to.
	Axis OversizeAxis `json:"axis" bson:"axis"`
	// Action is what to do when the rule applies.
	Action OversizeAction `json:"action" bson:"action"`
	// Value is the surcharge amount for the surcharge action; unused otherwise.
	Value float64 `json:"value,omitempty" bson:"value,omitempty"`
	// Label is a human-readable audit string.
	Label string `json:"label,omitempty" bson:"label,omitempty"`
}

// Matches reports whether the rule applies to an overflow on the given axis.
func (r OversizeRule) Matches(axis OversizeAxis) bool {
	return r.Axis == OversizeAxisAny || r.Axis == axis
}

// ChargingPolicy describes how partial sheet usage is billed.
type ChargingPolicy struct {
	// RoundingMode selects the billing rounding behavior.
	RoundingMode RoundingMode `json:"rounding_mode" bson:"rounding_mode"`
	// MinSheetFraction is the smallest billable increment, e.g. 0.25 for
	// quarter-sheet granularity. Used by the fractional rounding modes.
	MinSheetFraction float64 `json:"min_sheet_fraction" bson:"min_sheet_fraction"`
	// Kerf is the cut spacing between adjacent pieces in inches.
	Kerf float64 `json:"kerf,omitempty" bson:"kerf,omitempty"`
	// OversizeRules is the ordered list of oversize handling rules.
	OversizeRules []OversizeRule `json:"oversize_rules,omitempty" bson:"oversize_rules,omitempty"`
}

// DefaultChargingPolicy returns the policy most shops start with: whole
// sheets only, quarter-sheet granularity for the fractional modes, no kerf.
func DefaultChargingPolicy() ChargingPolicy {
	return ChargingPolicy{
		RoundingMode:     RoundCeilFullSheet,
		MinSheetFraction: 0.25,
	}
}

// Valid reports whether the policy is well-formed.
func (p ChargingPolicy) Valid() bool {
	if !p.RoundingMode.Valid() {
		return false
	}
	if p.RoundingMode != RoundCeilFullSheet {
		if p.MinSheetFraction <= 0 || p.MinSheetFraction > 1 || math.IsNaN(p.MinSheetFraction) {
			return false
		}
	}
	return p.Kerf >= 0 && !math.IsNaN(p.Kerf) && !math.IsInf(p.Kerf, 0)
}

// TierMode describes how a volume tier adjusts the billed sheet cost.
type TierMode string

const (
	// TierMultiplier scales the sheet cost by the tier value.
	TierMultiplier TierMode = "multiplier"
	// TierOverride replaces the sheet cost with the tier value.
	TierOverride TierMode = "override"
)

// VolumeTier is one quantity-break tier. The selected tier is the one with
// the highest MinQuantity that is still at or below the requested quantity.
type VolumeTier struct {
	// MinQuantity is the quantity threshold at which the tier activates.
	MinQuantity int `json:"min_quantity" bson:"min_quantity"`
	// Mode selects between a cost multiplier and a cost override.
	Mode TierMode `json:"mode" bson:"mode"`
	// Value is the multiplier or the override sheet cost.
	Value float64 `json:"value" bson:"value"`
	// Label is a human-readable audit string.
	Label string `json:"label,omitempty" bson:"label,omitempty"`
}

// SelectVolumeTier returns the applicable tier for the given quantity, or
// false when no tier threshold is met. Ties on MinQuantity resolve to the
// later tier in the list.
func SelectVolumeTier(tiers []VolumeTier, quantity int) (VolumeTier, bool) {
	var best VolumeTier
	found := false
	for _, t := range tiers {
		if t.MinQuantity <= quantity && (!found || t.MinQuantity >= best.MinQuantity) {
			best = t
			found = true
		}
	}
	return best, found
}
