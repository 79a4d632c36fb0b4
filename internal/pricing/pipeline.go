// Package pricing orchestrates configurable option pricing rules around a
// single nesting computation and assembles the audited price.
//
// The pipeline is a deterministic single pass: pre-stage rules fold over
// the sheet cost in list order, nesting runs once against the adjusted
// cost, post-stage rules fold over the item price and order adjustment,
// the price floor clamps, and totals are assembled. Running values stay
// unrounded; only recorded breakdown values are rounded to cents.
package pricing

import (
	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
	"github.com/signcraft/sheet-pricing-service/internal/money"
	"github.com/signcraft/sheet-pricing-service/internal/nesting"
)

// QuoteInput carries everything one pricing call needs. It is supplied by
// the calling business logic (resolved product and option configuration)
// and validated only for numeric well-formedness.
type QuoteInput struct {
	BaseSheetCost   float64
	SheetWidth      float64
	SheetHeight     float64
	PieceWidth      float64
	PieceHeight     float64
	Quantity        int
	MinPricePerItem float64
	VolumeTiers     []model.VolumeTier
	Policy          model.ChargingPolicy
	Rules           []model.PricingRule
}

// Execute runs the full pricing pipeline. The only failure paths are a
// malformed rule list and a nesting error; either short-circuits with no
// partial breakdown. Given fixed inputs the output is bit-identical
// across calls.
func Execute(in QuoteInput) (model.QuoteResult, error) {
	if err := model.ValidateRules(in.Rules); err != nil {
		return model.QuoteResult{}, err
	}

	adjustedSheetCost, preLog := applyPreRules(in.BaseSheetCost, in.Rules)

	calc, err := nesting.NewCalculator(
		in.SheetWidth, in.SheetHeight, adjustedSheetCost,
		in.MinPricePerItem, in.VolumeTiers, in.Policy,
	)
	if err != nil {
		return model.QuoteResult{}, err
	}

	nested, err := calc.CalculateWithWaste(in.PieceWidth, in.PieceHeight, in.Quantity)
	if err != nil {
		return model.QuoteResult{}, err
	}

	baseItemPrice := nested.AverageCostPerPiece
	pieceAreaSqFt := model.PieceSpec{Width: in.PieceWidth, Height: in.PieceHeight}.AreaSqFt()

	itemPrice, itemLog := applyItemRules(baseItemPrice, pieceAreaSqFt, in.Rules)
	orderAdjustment, orderLog := applyOrderRules(itemPrice, in.Quantity, in.Rules)

	finalItemPrice := itemPrice
	floorApplied := false
	if floor := calc.MinPricePerItem(); floor > 0 && itemPrice < floor {
		finalItemPrice = floor
		floorApplied = true
	}

	finalTotal := finalItemPrice*float64(in.Quantity) + orderAdjustment

	roundedNesting := nested
	roundedNesting.EffectiveSheetCost = money.Round2(nested.EffectiveSheetCost)
	roundedNesting.AverageCostPerPiece = money.Round2(nested.AverageCostPerPiece)

	return model.QuoteResult{
		BaseSheetCost:      money.Round2(in.BaseSheetCost),
		AdjustedSheetCost:  money.Round2(adjustedSheetCost),
		RawSheetsUsed:      nested.RawSheetsUsed,
		BillableSheets:     nested.BillableSheets,
		EffectiveSheetCost: money.Round2(nested.EffectiveSheetCost),
		BaseItemPrice:      money.Round2(baseItemPrice),
		FinalItemPrice:     money.Round2(finalItemPrice),
		OrderAdjustment:    money.Round2(orderAdjustment),
		FinalTotal:         money.Round2(finalTotal),
		FloorApplied:       floorApplied,
		Breakdown: model.PriceBreakdown{
			BaseSheetCost:     money.Round2(in.BaseSheetCost),
			PreAdjustments:    preLog,
			AdjustedSheetCost: money.Round2(adjustedSheetCost),
			Nesting:           roundedNesting,
			BaseItemPrice:     money.Round2(baseItemPrice),
			ItemAdjustments:   itemLog,
			OrderAdjustments:  orderLog,
			FloorApplied:      floorApplied,
			FinalItemPrice:    money.Round2(finalItemPrice),
			FinalTotal:        money.Round2(finalTotal),
		},
	}, nil
}

// applyPreRules folds the pre-stage sheet rules over the base sheet cost
// in list order. A later override_base silently wins over an earlier one;
// this is what lets callers layer organization-level and product-level
// rule sets deterministically.
func applyPreRules(baseSheetCost float64, rules []model.PricingRule) (float64, []model.RuleApplication) {
	cost := baseSheetCost
	log := []model.RuleApplication{}
	for _, r := range rules {
		if r.Stage != model.StagePre {
			continue
		}
		before := cost
		switch r.Mode {
		case model.ModeMultiplier:
			cost *= r.Value
		case model.ModeFlatAdd:
			cost += r.Value
		case model.ModeOverrideBase:
			cost = r.Value
		}
		log = append(log, record(r, before, cost))
	}
	return cost, log
}

// applyItemRules folds post-stage item and sqft rules over the per-item
// price in list order. Sqft rules add their value per square foot of the
// piece.
func applyItemRules(baseItemPrice, pieceAreaSqFt float64, rules []model.PricingRule) (float64, []model.RuleApplication) {
	price := baseItemPrice
	log := []model.RuleApplication{}
	for _, r := range rules {
		if r.Stage != model.StagePost || (r.Basis != model.BasisItem && r.Basis != model.BasisSqFt) {
			continue
		}
		before := price
		switch {
		case r.Basis == model.BasisSqFt:
			price += r.Value * pieceAreaSqFt
		case r.Mode == model.ModeMultiplier:
			price *= r.Value
		case r.Mode == model.ModeFlatAdd:
			price += r.Value
		}
		log = append(log, record(r, before, price))
	}
	return price, log
}

// applyOrderRules folds post-stage order rules into a cumulative order
// adjustment. A multiplier scales the already-computed order subtotal, so
// it contributes itemPrice * quantity * (value - 1); a flat add
// contributes its value directly. Each recorded After is the cumulative
// adjustment so far.
func applyOrderRules(itemPrice float64, quantity int, rules []model.PricingRule) (float64, []model.RuleApplication) {
	adjustment := 0.0
	log := []model.RuleApplication{}
	for _, r := range rules {
		if r.Stage != model.StagePost || r.Basis != model.BasisOrder {
			continue
		}
		before := adjustment
		switch r.Mode {
		case model.ModeMultiplier:
			adjustment += itemPrice * float64(quantity) * (r.Value - 1)
		case model.ModeFlatAdd:
			adjustment += r.Value
		}
		log = append(log, record(r, before, adjustment))
	}
	return adjustment, log
}

func record(r model.PricingRule, before, after float64) model.RuleApplication {
	return model.RuleApplication{
		Label:  r.Label,
		Stage:  r.Stage,
		Basis:  r.Basis,
		Mode:   r.Mode,
		Value:  r.Value,
		Before: money.Round2(before),
		After:  money.Round2(after),
	}
}
