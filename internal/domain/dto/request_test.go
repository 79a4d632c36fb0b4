package dto

import (
	"testing"

	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuoteRequest() QuoteRequest {
	return QuoteRequest{
		Piece: model.PieceSpec{Width: 12, Height: 12, Quantity: 16},
		Sheet: &model.SheetSpec{Width: 48, Height: 96, BaseCost: 20},
	}
}

func TestQuoteRequest_Validate(t *testing.T) {
	t.Run("valid inline sheet", func(t *testing.T) {
		r := validQuoteRequest()
		assert.NoError(t, r.Validate())
	})

	t.Run("valid material reference", func(t *testing.T) {
		r := validQuoteRequest()
		r.Sheet = nil
		r.MaterialID = "acm-3mm-white"
		assert.NoError(t, r.Validate())
	})

	t.Run("invalid piece", func(t *testing.T) {
		r := validQuoteRequest()
		r.Piece.Quantity = 0
		assert.ErrorIs(t, r.Validate(), ErrInvalidPiece)
	})

	t.Run("neither sheet nor material", func(t *testing.T) {
		r := validQuoteRequest()
		r.Sheet = nil
		assert.ErrorIs(t, r.Validate(), ErrSheetSourceRequired)
	})

	t.Run("both sheet and material", func(t *testing.T) {
		r := validQuoteRequest()
		r.MaterialID = "acm-3mm-white"
		assert.ErrorIs(t, r.Validate(), ErrSheetSourceRequired)
	})

	t.Run("invalid sheet", func(t *testing.T) {
		r := validQuoteRequest()
		r.Sheet.Width = 0
		assert.ErrorIs(t, r.Validate(), ErrInvalidSheet)
	})

	t.Run("negative floor", func(t *testing.T) {
		r := validQuoteRequest()
		r.MinPricePerItem = -0.5
		assert.ErrorIs(t, r.Validate(), ErrInvalidMinPrice)
	})

	t.Run("malformed policy", func(t *testing.T) {
		r := validQuoteRequest()
		r.Policy = &model.ChargingPolicy{RoundingMode: "half_sheets"}
		err := r.Validate()
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "charging_policy", vErr.Field)
	})

	t.Run("invalid inline rule", func(t *testing.T) {
		r := validQuoteRequest()
		r.Rules = []model.PricingRule{
			{Stage: model.StagePost, Basis: model.BasisSheet, Mode: model.ModeMultiplier, Value: 2},
		}
		err := r.Validate()
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "rules", vErr.Field)
	})

	t.Run("empty rule list disables rules", func(t *testing.T) {
		r := validQuoteRequest()
		r.Rules = []model.PricingRule{}
		assert.NoError(t, r.Validate())
	})
}

func TestUpdateMaterialRequest_Validate(t *testing.T) {
	r := UpdateMaterialRequest{
		Name:  "3mm white ACM",
		Sheet: model.SheetSpec{Width: 48, Height: 96, BaseCost: 20},
	}
	assert.NoError(t, r.Validate())

	r.Name = ""
	assert.Error(t, r.Validate())

	r.Name = "3mm white ACM"
	r.Sheet.BaseCost = -1
	assert.ErrorIs(t, r.Validate(), ErrInvalidSheet)
}

func TestUpdateRuleSetRequest_Validate(t *testing.T) {
	r := UpdateRuleSetRequest{}
	assert.NoError(t, r.Validate())

	r.Rules = []model.PricingRule{
		{Stage: model.StagePre, Basis: model.BasisSheet, Mode: model.ModeMultiplier, Value: 1.5},
	}
	assert.NoError(t, r.Validate())

	r.Rules = append(r.Rules, model.PricingRule{Stage: model.StagePost, Basis: model.BasisSqFt, Mode: model.ModeMultiplier, Value: 2})
	assert.Error(t, r.Validate())
}
