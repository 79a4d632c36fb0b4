package model

import (
	"errors"
	"fmt"
	"math"
)

// Stage identifies whether a pricing rule runs before or after nesting.
type Stage string

const (
	// StagePre applies to the sheet cost before nesting.
	StagePre Stage = "pre"
	// StagePost applies to the item or order price after nesting.
	StagePost Stage = "post"
)

// Basis is the quantity a rule's adjustment is computed against.
type Basis string

const (
	// BasisSheet adjusts the sheet cost. Pre-stage only.
	BasisSheet Basis = "sheet"
	// BasisSqFt adjusts the item price per square foot of the piece.
	// Post-stage, flat-add only.
	BasisSqFt Basis = "sqft"
	// BasisItem adjusts the per-item price. Post-stage only.
	BasisItem Basis = "item"
	// BasisOrder adjusts the order total. Post-stage only.
	BasisOrder Basis = "order"
)

// Mode is the arithmetic a rule performs on its target value.
type Mode string

const (
	// ModeMultiplier multiplies the target by the rule value.
	ModeMultiplier Mode = "multiplier"
	// ModeFlatAdd adds the rule value to the target.
	ModeFlatAdd Mode = "flat_add"
	// ModeOverrideBase replaces the target with the rule value. Pre-stage
	// only; a later override silently wins over an earlier one.
	ModeOverrideBase Mode = "override_base"
)

// ErrInvalidRule is returned when a pricing rule's stage, basis, and mode
// do not form a legal combination.
var ErrInvalidRule = errors.New("invalid pricing rule")

// PricingRule is one configurable pricing adjustment. Rule list order is
// caller-significant: rules of the same stage and basis apply strictly in
// the order supplied.
//
// @Description One pricing adjustment applied before or after nesting
// @Example {"stage": "pre", "basis": "sheet", "mode": "multiplier", "value": 1.5, "label": "gloss laminate"}
type PricingRule struct {
	// Stage is pre (sheet cost, before nesting) or post (after nesting)
	Stage Stage `json:"stage" bson:"stage" example:"pre"`
	// Basis is sheet, sqft, item, or order
	Basis Basis `json:"basis" bson:"basis" example:"sheet"`
	// Mode is multiplier, flat_add, or override_base
	Mode Mode `json:"mode" bson:"mode" example:"multiplier"`
	// Value is the numeric operand
	Value float64 `json:"value" bson:"value" example:"1.5"`
	// Label is a human-readable audit string, not used in computation
	Label string `json:"label,omitempty" bson:"label,omitempty" example:"gloss laminate"`
}

// NewPricingRule builds a rule, rejecting illegal stage/basis/mode
// combinations so they cannot reach the pipeline.
func NewPricingRule(stage Stage, basis Basis, mode Mode, value float64, label string) (PricingRule, error) {
	r := PricingRule{Stage: stage, Basis: basis, Mode: mode, Value: value, Label: label}
	if err := r.Validate(); err != nil {
		return PricingRule{}, err
	}
	return r, nil
}

// Validate checks the rule's stage/basis/mode combination and operand.
func (r PricingRule) Validate() error {
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return fmt.Errorf("%w: value must be finite", ErrInvalidRule)
	}
	switch r.Stage {
	case StagePre:
		if r.Basis != BasisSheet {
			return fmt.Errorf("%w: pre-stage rules use the sheet basis, got %q", ErrInvalidRule, r.Basis)
		}
		switch r.Mode {
		case ModeMultiplier, ModeFlatAdd, ModeOverrideBase:
			return nil
		}
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRule, r.Mode)
	case StagePost:
		switch r.Basis {
		case BasisItem, BasisOrder:
			switch r.Mode {
			case ModeMultiplier, ModeFlatAdd:
				return nil
			case ModeOverrideBase:
				return fmt.Errorf("%w: override_base is not valid post-stage", ErrInvalidRule)
			}
			return fmt.Errorf("%w: unknown mode %q", ErrInvalidRule, r.Mode)
		case BasisSqFt:
			if r.Mode == ModeFlatAdd {
				return nil
			}
			return fmt.Errorf("%w: sqft basis supports flat_add only, got %q", ErrInvalidRule, r.Mode)
		case BasisSheet:
			return fmt.Errorf("%w: sheet basis is pre-stage only", ErrInvalidRule)
		}
		return fmt.Errorf("%w: unknown basis %q", ErrInvalidRule, r.Basis)
	}
	return fmt.Errorf("%w: unknown stage %q", ErrInvalidRule, r.Stage)
}

// ValidateRules validates every rule in a list, reporting the index of the
// first offender.
func ValidateRules(rules []PricingRule) error {
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %d (%s): %w", i, r.Label, err)
		}
	}
	return nil
}
