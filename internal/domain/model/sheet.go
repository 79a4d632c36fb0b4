// Package model defines the core domain entities for the sheet pricing service.
package model

import "math"

// SheetSpec describes one unit of stock material: a fixed-size sheet
// with a base cost. Dimensions are in inches.
//
// @Description Stock sheet dimensions and base cost
// @Example {"width": 48, "height": 96, "base_cost": 20}
type SheetSpec struct {
	// Width is the sheet width in inches
	Width float64 `json:"width" bson:"width" example:"48"`
	// Height is the sheet height in inches
	Height float64 `json:"height" bson:"height" example:"96"`
	// BaseCost is the cost of one sheet before any pricing rules
	BaseCost float64 `json:"base_cost" bson:"base_cost" example:"20"`
}

// Area returns the sheet area in square inches.
func (s SheetSpec) Area() float64 {
	return s.Width * s.Height
}

// Valid reports whether the sheet has positive, finite dimensions and a
// non-negative, finite cost.
func (s SheetSpec) Valid() bool {
	return isPositiveFinite(s.Width) && isPositiveFinite(s.Height) &&
		s.BaseCost >= 0 && !math.IsInf(s.BaseCost, 0) && !math.IsNaN(s.BaseCost)
}

// PieceSpec describes the customer's requested piece: cut dimensions in
// inches and the quantity ordered.
//
// @Description Requested piece dimensions and quantity
// @Example {"width": 12, "height": 12, "quantity": 16}
type PieceSpec struct {
	// Width is the piece width in inches
	Width float64 `json:"width" example:"12"`
	// Height is the piece height in inches
	Height float64 `json:"height" example:"12"`
	// Quantity is the number of pieces ordered
	Quantity int `json:"quantity" example:"16"`
}

// Area returns the piece area in square inches.
func (p PieceSpec) Area() float64 {
	return p.Width * p.Height
}

// AreaSqFt returns the piece area in square feet.
func (p PieceSpec) AreaSqFt() float64 {
	return p.Area() / 144.0
}

// Valid reports whether the piece has positive, finite dimensions and a
// positive quantity.
func (p PieceSpec) Valid() bool {
	return isPositiveFinite(p.Width) && isPositiveFinite(p.Height) && p.Quantity > 0
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
