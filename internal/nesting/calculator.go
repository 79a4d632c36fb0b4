// Package nesting computes how many pieces fit on a stock sheet and what
// the billed sheet usage costs under a charging policy.
//
// Packing rule: pieces are laid out in a row-major greedy grid. Full
// piece-widths are packed across the sheet width per row and rows are
// stacked to the sheet height; the same layout is computed for the piece
// rotated 90 degrees and the orientation that yields more pieces wins.
// Mixed-orientation and guillotine layouts are deliberately out of scope:
// the grid rule is deterministic, cheap, and matches how shop operators
// actually batch-cut rectangular pieces.
package nesting

import (
	"math"
	"strconv"

	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
)

// floatSlack absorbs float64 division noise so that e.g. 96/12 cannot
// land at 7.9999999 and drop a row.
const floatSlack = 1e-9

// Calculator answers "how many sheets, at what effective cost per sheet,
// for N pieces of W x H". It is a pure function of its construction
// inputs and call arguments; a single instance is safe for concurrent use.
type Calculator struct {
	sheetWidth      float64
	sheetHeight     float64
	sheetCost       float64
	minPricePerItem float64
	tiers           []model.VolumeTier
	policy          model.ChargingPolicy
}

// NewCalculator builds a Calculator. sheetCost is expected to already
// carry any pre-stage rule adjustments. Zero or negative sheet dimensions
// are a construction-time error.
func NewCalculator(sheetWidth, sheetHeight, sheetCost, minPricePerItem float64, tiers []model.VolumeTier, policy model.ChargingPolicy) (*Calculator, error) {
	if !positiveFinite(sheetWidth) {
		return nil, &ConfigError{Field: "sheet_width", Reason: "must be a positive finite number"}
	}
	if !positiveFinite(sheetHeight) {
		return nil, &ConfigError{Field: "sheet_height", Reason: "must be a positive finite number"}
	}
	if sheetCost < 0 || math.IsNaN(sheetCost) || math.IsInf(sheetCost, 0) {
		return nil, &ConfigError{Field: "sheet_cost", Reason: "must be finite and non-negative"}
	}
	if minPricePerItem < 0 || math.IsNaN(minPricePerItem) || math.IsInf(minPricePerItem, 0) {
		return nil, &ConfigError{Field: "min_price_per_item", Reason: "must be finite and non-negative"}
	}
	if !policy.Valid() {
		return nil, &ConfigError{Field: "charging_policy", Reason: "malformed rounding mode, fraction, or kerf"}
	}
	for i, t := range tiers {
		if t.Mode != model.TierMultiplier && t.Mode != model.TierOverride {
			return nil, &ConfigError{Field: "volume_tiers", Reason: "unknown tier mode at index " + strconv.Itoa(i)}
		}
		if t.Value < 0 || math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
			return nil, &ConfigError{Field: "volume_tiers", Reason: "tier value must be finite and non-negative at index " + strconv.Itoa(i)}
		}
	}
	return &Calculator{
		sheetWidth:      sheetWidth,
		sheetHeight:     sheetHeight,
		sheetCost:       sheetCost,
		minPricePerItem: minPricePerItem,
		tiers:           tiers,
		policy:          policy,
	}, nil
}

// MinPricePerItem returns the configured per-item price floor.
func (c *Calculator) MinPricePerItem() float64 {
	return c.minPricePerItem
}

// CalculateWithWaste computes sheet usage and per-piece cost for the
// requested piece. All failures are reported as error values; the
// computation has no side effects and never partially populates a result.
func (c *Calculator) CalculateWithWaste(pieceWidth, pieceHeight float64, quantity int) (model.NestingResult, error) {
	if !positiveFinite(pieceWidth) {
		return model.NestingResult{}, &ConfigError{Field: "piece_width", Reason: "must be a positive finite number"}
	}
	if !positiveFinite(pieceHeight) {
		return model.NestingResult{}, &ConfigError{Field: "piece_height", Reason: "must be a positive finite number"}
	}
	if quantity <= 0 {
		return model.NestingResult{}, &ConfigError{Field: "quantity", Reason: "must be a positive integer"}
	}

	res := model.NestingResult{SegmentsPerPiece: 1}
	var surcharge float64

	normal := c.gridCount(pieceWidth, pieceHeight)
	rotated := c.gridCount(pieceHeight, pieceWidth)

	switch {
	case normal == 0 && rotated == 0:
		over, err := c.nestOversize(pieceWidth, pieceHeight, quantity)
		if err != nil {
			return model.NestingResult{}, err
		}
		res = over.result
		surcharge = over.surcharge
	case rotated > normal:
		res.PiecesPerSheet = rotated
		res.Rotated = true
		res.RawSheetsUsed = float64(quantity) / float64(rotated)
	default:
		res.PiecesPerSheet = normal
		res.RawSheetsUsed = float64(quantity) / float64(normal)
	}

	res.BillableSheets = c.billableSheets(res.RawSheetsUsed)

	effective := c.sheetCost
	if tier, ok := model.SelectVolumeTier(c.tiers, quantity); ok {
		switch tier.Mode {
		case model.TierMultiplier:
			effective *= tier.Value
		case model.TierOverride:
			effective = tier.Value
		}
		res.VolumeTierLabel = tier.Label
	}
	effective += surcharge

	res.EffectiveSheetCost = effective
	res.AverageCostPerPiece = res.BillableSheets * effective / float64(quantity)
	return res, nil
}

// gridCount returns how many pw x ph placements fit the sheet in the
// row-major grid layout, honoring the kerf spacing between placements.
// A grid of n placements along one axis consumes n*dim + (n-1)*kerf.
func (c *Calculator) gridCount(pw, ph float64) int {
	kerf := c.policy.Kerf
	across := int(math.Floor((c.sheetWidth+kerf)/(pw+kerf) + floatSlack))
	down := int(math.Floor((c.sheetHeight+kerf)/(ph+kerf) + floatSlack))
	if across <= 0 || down <= 0 {
		return 0
	}
	return across * down
}

// billableSheets applies the charging policy's rounding mode to raw usage.
func (c *Calculator) billableSheets(raw float64) float64 {
	switch c.policy.RoundingMode {
	case model.RoundCeilFullSheet:
		return math.Ceil(raw - floatSlack)
	case model.RoundExactFraction:
		f := c.policy.MinSheetFraction
		return math.Ceil(raw/f-floatSlack) * f
	case model.RoundNearestFraction:
		f := c.policy.MinSheetFraction
		b := math.Round(raw/f) * f
		if b == 0 && raw > 0 {
			// Never bill zero for a real cut; charge one increment.
			b = f
		}
		return b
	}
	// Unreachable: the policy is validated at construction.
	return math.Ceil(raw - floatSlack)
}

// oversizeNesting is the outcome of handling a piece that overflows the
// sheet on a single axis.
type oversizeNesting struct {
	result    model.NestingResult
	surcharge float64
}

// nestOversize handles a piece that does not fit the sheet whole. A piece
// overflowing on both axes in every orientation is always rejected; a
// single-axis overflow is delegated to the first matching oversize rule.
func (c *Calculator) nestOversize(pieceWidth, pieceHeight float64, quantity int) (oversizeNesting, error) {
	type orientation struct {
		w, h    float64
		rotated bool
	}
	candidates := []orientation{
		{w: pieceWidth, h: pieceHeight},
		{w: pieceHeight, h: pieceWidth, rotated: true},
	}

	singleAxisSeen := false
	for _, o := range candidates {
		overWidth := o.w > c.sheetWidth+floatSlack
		overHeight := o.h > c.sheetHeight+floatSlack
		if overWidth && overHeight {
			continue
		}
		singleAxisSeen = true

		axis := model.OversizeAxisWidth
		overflowDim, capacity := o.w, c.sheetWidth
		if overHeight {
			axis = model.OversizeAxisHeight
			overflowDim, capacity = o.h, c.sheetHeight
		}

		rule, ok := firstMatching(c.policy.OversizeRules, axis)
		if !ok {
			// The rotated orientation may overflow an axis that does
			// have a rule, so keep looking before rejecting.
			continue
		}

		switch rule.Action {
		case model.OversizeReject:
			reason := "piece rejected by oversize rule"
			if rule.Label != "" {
				reason += " " + rule.Label
			}
			return oversizeNesting{}, &GeometryError{Reason: reason}

		case model.OversizeSplit:
			segments := int(math.Ceil(overflowDim/capacity - floatSlack))
			segW, segH := o.w, o.h
			if axis == model.OversizeAxisWidth {
				segW = o.w / float64(segments)
			} else {
				segH = o.h / float64(segments)
			}
			perSheet := c.gridCount(segW, segH)
			if perSheet == 0 {
				return oversizeNesting{}, &GeometryError{
					Reason: "split segment does not fit the sheet with the configured kerf",
				}
			}
			return oversizeNesting{
				result: model.NestingResult{
					PiecesPerSheet:       perSheet,
					Rotated:              o.rotated,
					SegmentsPerPiece:     segments,
					RawSheetsUsed:        float64(quantity) * float64(segments) / float64(perSheet),
					OversizeRulesApplied: 1,
				},
			}, nil

		case model.OversizeSurcharge:
			return oversizeNesting{
				result: model.NestingResult{
					PiecesPerSheet:       1,
					Rotated:              o.rotated,
					SegmentsPerPiece:     1,
					RawSheetsUsed:        float64(quantity),
					OversizeRulesApplied: 1,
				},
				surcharge: rule.Value,
			}, nil
		}

		return oversizeNesting{}, &ConfigError{Field: "oversize_rules", Reason: "unknown action " + string(rule.Action)}
	}

	if singleAxisSeen {
		return oversizeNesting{}, &GeometryError{
			Reason: "piece exceeds the sheet and no oversize rule authorizes it",
		}
	}
	return oversizeNesting{}, &GeometryError{
		Reason: "piece exceeds the sheet on both axes in every orientation",
	}
}

func firstMatching(rules []model.OversizeRule, axis model.OversizeAxis) (model.OversizeRule, bool) {
	for _, r := range rules {
		if r.Matches(axis) {
			return r, true
		}
	}
	return model.OversizeRule{}, false
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
