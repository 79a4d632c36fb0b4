package model

// NestingResult is the aggregate output of the nesting computation: how
// many pieces fit per sheet and what the billed sheet usage costs.
//
// @Description Sheet usage and effective cost for one nesting computation
type NestingResult struct {
	// PiecesPerSheet is the number of placements that fit one sheet under
	// the row-major grid layout. When the piece is split across sheets,
	// this counts segments rather than whole pieces.
	PiecesPerSheet int `json:"pieces_per_sheet" example:"32"`
	// Rotated is true when the 90-degree orientation packed more pieces.
	Rotated bool `json:"rotated"`
	// SegmentsPerPiece is greater than 1 when an oversize split rule cut
	// each piece into multiple segments.
	SegmentsPerPiece int `json:"segments_per_piece,omitempty"`
	// RawSheetsUsed is the fractional sheet usage before rounding.
	RawSheetsUsed float64 `json:"raw_sheets_used" example:"0.5"`
	// BillableSheets is the sheet quantity charged after the rounding policy.
	BillableSheets float64 `json:"billable_sheets" example:"1"`
	// EffectiveSheetCost is the billed cost of one sheet after volume
	// tiers and oversize surcharges.
	EffectiveSheetCost float64 `json:"effective_sheet_cost" example:"20"`
	// AverageCostPerPiece is billable sheet cost spread across the quantity.
	AverageCostPerPiece float64 `json:"average_cost_per_piece" example:"1.25"`
	// VolumeTierLabel names the applied volume tier, if any.
	VolumeTierLabel string `json:"volume_tier_label,omitempty"`
	// OversizeRulesApplied counts the oversize rules that fired.
	OversizeRulesApplied int `json:"oversize_rules_applied"`
}

// RuleApplication records one pricing rule firing: the rule identity plus
// the value it saw and the value it left behind. Before and After are
// rounded to cents when recorded; the running computation is not.
type RuleApplication struct {
	Label  string  `json:"label,omitempty"`
	Stage  Stage   `json:"stage"`
	Basis  Basis   `json:"basis"`
	Mode   Mode    `json:"mode"`
	Value  float64 `json:"value"`
	Before float64 `json:"before"`
	After  float64 `json:"after"`
}

// PriceBreakdown is the full audit record for one pricing call. It is
// constructed fresh on every call and owned entirely by the caller;
// consumers must treat it as opaque audit data, not re-derive pricing
// from it.
//
// @Description Full audit trail for a priced quote
type PriceBreakdown struct {
	// BaseSheetCost is the sheet cost before pre-stage rules.
	BaseSheetCost float64 `json:"base_sheet_cost"`
	// PreAdjustments are the pre-stage rule applications in order.
	PreAdjustments []RuleApplication `json:"pre_adjustments"`
	// AdjustedSheetCost is the sheet cost handed to nesting.
	AdjustedSheetCost float64 `json:"adjusted_sheet_cost"`
	// Nesting is the nesting computation's aggregate output.
	Nesting NestingResult `json:"nesting"`
	// BaseItemPrice is the per-piece cost straight out of nesting.
	BaseItemPrice float64 `json:"base_item_price"`
	// ItemAdjustments are post-stage item and sqft rule applications in order.
	ItemAdjustments []RuleApplication `json:"item_adjustments"`
	// OrderAdjustments are post-stage order rule applications in order;
	// each After is the cumulative order adjustment so far.
	OrderAdjustments []RuleApplication `json:"order_adjustments"`
	// FloorApplied is true when the price floor clamped the item price.
	FloorApplied bool `json:"floor_applied"`
	// FinalItemPrice is the authoritative per-item price.
	FinalItemPrice float64 `json:"final_item_price"`
	// FinalTotal is the authoritative order total.
	FinalTotal float64 `json:"final_total"`
}

// QuoteResult is the complete priced output of one pipeline execution.
// FinalItemPrice and FinalTotal are the authoritative numbers the rest of
// the system stores and displays.
//
// @Description Priced quote with audit breakdown
type QuoteResult struct {
	BaseSheetCost      float64        `json:"base_sheet_cost" example:"20"`
	AdjustedSheetCost  float64        `json:"adjusted_sheet_cost" example:"30"`
	RawSheetsUsed      float64        `json:"raw_sheets_used" example:"0.5"`
	BillableSheets     float64        `json:"billable_sheets" example:"1"`
	EffectiveSheetCost float64        `json:"effective_sheet_cost" example:"30"`
	BaseItemPrice      float64        `json:"base_item_price" example:"1.88"`
	FinalItemPrice     float64        `json:"final_item_price" example:"1.88"`
	OrderAdjustment    float64        `json:"order_adjustment"`
	FinalTotal         float64        `json:"final_total" example:"30"`
	FloorApplied       bool           `json:"floor_applied"`
	Breakdown          PriceBreakdown `json:"price_breakdown"`
}
