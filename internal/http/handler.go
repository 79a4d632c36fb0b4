package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signcraft/sheet-pricing-service/internal/domain/dto"
	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
	"github.com/signcraft/sheet-pricing-service/internal/i18n"
	"github.com/signcraft/sheet-pricing-service/internal/nesting"
	"github.com/signcraft/sheet-pricing-service/internal/service"
)

// Handler provides HTTP handlers for quote routes.
type Handler struct {
	quotes service.QuoteService
}

// NewHandler creates a new Handler instance.
func NewHandler(quotes service.QuoteService) *Handler {
	return &Handler{quotes: quotes}
}

// Quote handles POST /api/quote requests.
//
// @Summary      Price a cut-to-size order
// @Description  Nests the requested piece on the stock sheet, applies the charging policy, volume tiers, and the configured pricing rules, and returns the priced quote with a full audit breakdown.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Piece, sheet or material reference, and pricing options"
// @Success      200 {object} dto.SuccessResponse "Priced quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or configuration"
// @Failure      404 {object} dto.ErrorResponse "Referenced material or rule set not found"
// @Failure      422 {object} dto.ErrorResponse "Piece cannot be produced on the selected sheet"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.QuoteRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, vErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	result, err := h.quotes.Quote(c.Request.Context(), *req)
	if err != nil {
		h.quoteError(builder, err)
		return
	}

	builder.SuccessOK(result)
}

// quoteError maps domain errors to HTTP status codes and translated messages.
func (h *Handler) quoteError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrMaterialNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyMaterialNotFound, err)
	case errors.Is(err, service.ErrRuleSetNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyRuleSetNotFound, err)
	case errors.Is(err, model.ErrInvalidRule):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidConfiguration, err)
	default:
		var geoErr *nesting.GeometryError
		var cfgErr *nesting.ConfigError
		switch {
		case errors.As(err, &geoErr):
			builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyCannotProduce, err)
		case errors.As(err, &cfgErr):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidConfiguration, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
	}
}
