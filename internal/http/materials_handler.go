package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/signcraft/sheet-pricing-service/internal/domain/dto"
	"github.com/signcraft/sheet-pricing-service/internal/i18n"
	"github.com/signcraft/sheet-pricing-service/internal/repository"
	"github.com/signcraft/sheet-pricing-service/internal/service"
)

// MaterialsHandler provides HTTP handlers for material configuration routes.
type MaterialsHandler struct {
	materials service.MaterialsService
}

// NewMaterialsHandler creates a new MaterialsHandler instance.
func NewMaterialsHandler(materials service.MaterialsService) *MaterialsHandler {
	return &MaterialsHandler{materials: materials}
}

// Get handles GET /api/materials/:id requests.
//
// @Summary      Get a material configuration
// @Description  Returns the stock sheet, charging policy, and volume tiers for a material.
// @Tags         Materials
// @Produce      json
// @Param        id path string true "Material identifier"
// @Success      200 {object} dto.SuccessResponse "Material configuration"
// @Failure      404 {object} dto.ErrorResponse "Material not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/materials/{id} [get]
func (h *MaterialsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	material, err := h.materials.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.materialError(builder, err)
		return
	}
	if material == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyMaterialNotFound, nil)
		return
	}

	builder.SuccessOK(material)
}

// List handles GET /api/materials requests.
//
// @Summary      List material configurations
// @Description  Returns all configured materials sorted by name.
// @Tags         Materials
// @Produce      json
// @Param        limit query int false "Maximum number of materials to return" default(100)
// @Success      200 {object} dto.SuccessResponse "Material configurations"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/materials [get]
func (h *MaterialsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		builder.ErrorWithMessage(http.StatusBadRequest, "limit must be a positive integer", err)
		return
	}

	materials, err := h.materials.List(c.Request.Context(), limit)
	if err != nil {
		h.materialError(builder, err)
		return
	}

	builder.SuccessOK(materials)
}

// Upsert handles PUT /api/materials/:id requests.
//
// @Summary      Create or update a material configuration
// @Description  Replaces the material's sheet, charging policy, and volume tiers, bumping its version. Cached quotes are invalidated.
// @Tags         Materials
// @Accept       json
// @Produce      json
// @Param        id path string true "Material identifier"
// @Param        request body dto.UpdateMaterialRequest true "Material configuration"
// @Success      200 {object} dto.SuccessResponse "Stored material configuration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid configuration"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/materials/{id} [put]
func (h *MaterialsHandler) Upsert(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateMaterialRequest](c)
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	material, err := h.materials.Upsert(c.Request.Context(), c.Param("id"), repository.MaterialConfig{
		Name:        req.Name,
		Sheet:       req.Sheet,
		Policy:      req.Policy,
		VolumeTiers: req.VolumeTiers,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		h.materialError(builder, err)
		return
	}

	builder.SuccessOK(material)
}

// Delete handles DELETE /api/materials/:id requests.
//
// @Summary      Delete a material configuration
// @Description  Removes the material. Cached quotes are invalidated.
// @Tags         Materials
// @Produce      json
// @Param        id path string true "Material identifier"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      404 {object} dto.ErrorResponse "Material not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/materials/{id} [delete]
func (h *MaterialsHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	deleted, err := h.materials.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.materialError(builder, err)
		return
	}
	if !deleted {
		builder.Error(http.StatusNotFound, i18n.ErrKeyMaterialNotFound, nil)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}

func (h *MaterialsHandler) materialError(builder *ResponseBuilder, err error) {
	if errors.Is(err, service.ErrRepositoryNotConfigured) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}
