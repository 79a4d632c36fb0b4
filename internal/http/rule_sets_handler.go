package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/signcraft/sheet-pricing-service/internal/domain/dto"
	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
	"github.com/signcraft/sheet-pricing-service/internal/i18n"
	"github.com/signcraft/sheet-pricing-service/internal/service"
)

// RuleSetsHandler provides HTTP handlers for pricing rule set routes.
type RuleSetsHandler struct {
	ruleSets service.RuleSetsService
}

// NewRuleSetsHandler creates a new RuleSetsHandler instance.
func NewRuleSetsHandler(ruleSets service.RuleSetsService) *RuleSetsHandler {
	return &RuleSetsHandler{ruleSets: ruleSets}
}

// GetActive handles GET /api/rule-sets requests.
//
// @Summary      Get the active pricing rule set
// @Description  Returns the currently active ordered list of pricing rules.
// @Tags         RuleSets
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active rule set"
// @Failure      404 {object} dto.ErrorResponse "No active rule set configured"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/rule-sets [get]
func (h *RuleSetsHandler) GetActive(c *gin.Context) {
	builder := NewResponseBuilder(c)

	ruleSet, err := h.ruleSets.GetActive(c.Request.Context())
	if err != nil {
		h.ruleSetError(builder, err)
		return
	}
	if ruleSet == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyRuleSetNotFound, nil)
		return
	}

	builder.SuccessOK(ruleSet)
}

// Create handles PUT /api/rule-sets requests.
//
// @Summary      Replace the active pricing rule set
// @Description  Validates the rule list, stores it as a new version, and marks it active. Cached quotes are invalidated.
// @Tags         RuleSets
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateRuleSetRequest true "Ordered pricing rules"
// @Success      201 {object} dto.SuccessResponse "Stored rule set"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid rules"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/rule-sets [put]
func (h *RuleSetsHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateRuleSetRequest](c)
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	ruleSet, err := h.ruleSets.Create(c.Request.Context(), req.Rules, req.CreatedBy)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRule) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidConfiguration, err)
			return
		}
		h.ruleSetError(builder, err)
		return
	}

	builder.SuccessCreated(ruleSet)
}

// History handles GET /api/rule-sets/history requests.
//
// @Summary      List pricing rule set versions
// @Description  Returns rule set versions in reverse chronological order, active first.
// @Tags         RuleSets
// @Produce      json
// @Param        limit query int false "Maximum number of versions to return" default(20)
// @Success      200 {object} dto.SuccessResponse "Rule set versions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/rule-sets/history [get]
func (h *RuleSetsHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		builder.ErrorWithMessage(http.StatusBadRequest, "limit must be a positive integer", err)
		return
	}

	ruleSets, err := h.ruleSets.List(c.Request.Context(), limit)
	if err != nil {
		h.ruleSetError(builder, err)
		return
	}

	builder.SuccessOK(ruleSets)
}

func (h *RuleSetsHandler) ruleSetError(builder *ResponseBuilder, err error) {
	if errors.Is(err, service.ErrRepositoryNotConfigured) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}
