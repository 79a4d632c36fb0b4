// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
)

// QuoteRequest represents the JSON request body for the quote endpoint.
//
// The sheet may be given inline or referenced by a stored material ID;
// exactly one of the two is required. Rules are optional: when absent the
// active stored rule set applies, and an empty list explicitly disables
// rules. Structural validation is performed with gin's binding tags,
// domain validation in Validate.
//
// @Description Request to price a quantity of cut pieces on stock sheets
// @Example {"piece": {"width": 12, "height": 12, "quantity": 16}, "sheet": {"width": 48, "height": 96, "base_cost": 20}}
// @Example {"piece": {"width": 12, "height": 12, "quantity": 16}, "material_id": "acm-3mm-white"}
type QuoteRequest struct {
	// Piece is the requested cut size and quantity.
	Piece model.PieceSpec `json:"piece" binding:"required"`
	// Sheet is an inline stock sheet. Mutually exclusive with MaterialID.
	Sheet *model.SheetSpec `json:"sheet,omitempty"`
	// MaterialID references a stored material. Mutually exclusive with Sheet.
	MaterialID string `json:"material_id,omitempty" example:"acm-3mm-white"`
	// MinPricePerItem is the per-item price floor. Zero disables the floor.
	MinPricePerItem float64 `json:"min_price_per_item,omitempty" example:"1.00" minimum:"0"`
	// Policy overrides the charging policy; when nil the material's policy
	// or the default (whole sheets) applies.
	Policy *model.ChargingPolicy `json:"charging_policy,omitempty"`
	// VolumeTiers are optional quantity-break tiers.
	VolumeTiers []model.VolumeTier `json:"volume_tiers,omitempty"`
	// Rules are inline pricing rules. Nil means "use the active rule set".
	Rules []model.PricingRule `json:"rules,omitempty"`
	// RuleSetID references a stored rule set instead of the active one.
	RuleSetID string `json:"rule_set_id,omitempty"`
} // @name QuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidPiece is returned when the piece spec is invalid.
	ErrInvalidPiece = &ValidationError{
		Field:   "piece",
		Message: "width and height must be positive and quantity at least 1",
	}
	// ErrInvalidSheet is returned when the inline sheet spec is invalid.
	ErrInvalidSheet = &ValidationError{
		Field:   "sheet",
		Message: "width and height must be positive and base_cost non-negative",
	}
	// ErrSheetSourceRequired is returned when neither a sheet nor a
	// material reference is given, or both are.
	ErrSheetSourceRequired = &ValidationError{
		Field:   "sheet",
		Message: "exactly one of sheet or material_id is required",
	}
	// ErrInvalidMinPrice is returned when the floor is negative.
	ErrInvalidMinPrice = &ValidationError{
		Field:   "min_price_per_item",
		Message: "must not be negative",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *QuoteRequest) Validate() error {
	if !r.Piece.Valid() {
		return ErrInvalidPiece
	}
	if (r.Sheet == nil) == (r.MaterialID == "") {
		return ErrSheetSourceRequired
	}
	if r.Sheet != nil && !r.Sheet.Valid() {
		return ErrInvalidSheet
	}
	if r.MinPricePerItem < 0 {
		return ErrInvalidMinPrice
	}
	if r.Policy != nil && !r.Policy.Valid() {
		return &ValidationError{Field: "charging_policy", Message: "malformed rounding mode, fraction, or kerf"}
	}
	if r.Rules != nil {
		if err := model.ValidateRules(r.Rules); err != nil {
			return &ValidationError{Field: "rules", Message: err.Error()}
		}
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// UpdateMaterialRequest represents the JSON request body for storing
// a material.
type UpdateMaterialRequest struct {
	// Name is a human-readable material name.
	Name string `json:"name" binding:"required"`
	// Sheet is the stock sheet this material is cut from.
	Sheet model.SheetSpec `json:"sheet" binding:"required"`
	// Policy is the material's default charging policy; nil keeps the
	// service default.
	Policy *model.ChargingPolicy `json:"charging_policy,omitempty"`
	// VolumeTiers are the material's quantity-break tiers.
	VolumeTiers []model.VolumeTier `json:"volume_tiers,omitempty"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateMaterialRequest

// Validate performs custom validation on the request.
func (r *UpdateMaterialRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !r.Sheet.Valid() {
		return ErrInvalidSheet
	}
	if r.Policy != nil && !r.Policy.Valid() {
		return &ValidationError{Field: "charging_policy", Message: "malformed rounding mode, fraction, or kerf"}
	}
	return nil
}

// UpdateRuleSetRequest represents the JSON request body for replacing the
// active pricing rule set.
type UpdateRuleSetRequest struct {
	// Rules is the ordered rule list. An empty list is allowed and means
	// no adjustments.
	Rules []model.PricingRule `json:"rules"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateRuleSetRequest

// Validate performs custom validation on the request.
func (r *UpdateRuleSetRequest) Validate() error {
	if err := model.ValidateRules(r.Rules); err != nil {
		return &ValidationError{Field: "rules", Message: err.Error()}
	}
	return nil
}
