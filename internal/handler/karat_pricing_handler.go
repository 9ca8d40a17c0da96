package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/pricing"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// KaratPricingHandler handles per-karat pricing terms and the calculator.
type KaratPricingHandler struct {
	pricingService service.KaratPricingService
}

// NewKaratPricingHandler creates a new KaratPricingHandler.
func NewKaratPricingHandler(pricingService service.KaratPricingService) *KaratPricingHandler {
	return &KaratPricingHandler{pricingService: pricingService}
}

// Upsert handles POST /api/v1/karat-pricing
// @Summary Create or replace karat terms
// @Tags karat-pricing
// @Accept json
// @Produce json
// @Param request body service.UpsertKaratPricingInput true "Terms"
// @Success 200 {object} Response{data=domain.KaratPricing} "Saved terms"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /karat-pricing [post]
func (h *KaratPricingHandler) Upsert(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.UpsertKaratPricingInput
	if !bindJSON(c, &input) {
		return
	}

	kp, err := h.pricingService.Upsert(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, kp)
}

// Patch handles PATCH /api/v1/karat-pricing/:karat
// @Summary Update some karat terms
// @Tags karat-pricing
// @Accept json
// @Produce json
// @Param karat path string true "Karat, e.g. 22K"
// @Param request body service.PatchKaratPricingInput true "Fields to update"
// @Success 200 {object} Response{data=domain.KaratPricing} "Updated terms"
// @Failure 404 {object} ErrorResponseBody "Karat not configured"
// @Security BearerAuth
// @Router /karat-pricing/{karat} [patch]
func (h *KaratPricingHandler) Patch(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.PatchKaratPricingInput
	if !bindJSON(c, &input) {
		return
	}

	kp, err := h.pricingService.Patch(c.Request.Context(), tenantID, c.Param("karat"), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, kp)
}

// Get handles GET /api/v1/karat-pricing/:karat
// @Summary Get karat terms
// @Tags karat-pricing
// @Produce json
// @Param karat path string true "Karat, e.g. 22K"
// @Success 200 {object} Response{data=domain.KaratPricing} "Terms"
// @Failure 404 {object} ErrorResponseBody "Karat not configured"
// @Security BearerAuth
// @Router /karat-pricing/{karat} [get]
func (h *KaratPricingHandler) Get(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	kp, err := h.pricingService.Get(c.Request.Context(), tenantID, c.Param("karat"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, kp)
}

// List handles GET /api/v1/karat-pricing
// @Summary List karat terms
// @Tags karat-pricing
// @Produce json
// @Success 200 {object} Response{data=[]domain.KaratPricing} "All configured karats"
// @Security BearerAuth
// @Router /karat-pricing [get]
func (h *KaratPricingHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	list, err := h.pricingService.List(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, list)
}

// Calculate handles POST /api/v1/karat-pricing/calculate
// @Summary Price a piece
// @Description Gold value, making, wastage, stone, discount and GST for a weight at a karat
// @Tags karat-pricing
// @Accept json
// @Produce json
// @Param request body pricing.Input true "Piece"
// @Success 200 {object} Response{data=pricing.Breakdown} "Breakdown"
// @Failure 404 {object} ErrorResponseBody "Karat not configured"
// @Security BearerAuth
// @Router /karat-pricing/calculate [post]
func (h *KaratPricingHandler) Calculate(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input pricing.Input
	if !bindJSON(c, &input) {
		return
	}

	b, err := h.pricingService.Calculate(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, b)
}

// InitializeDefaults handles POST /api/v1/karat-pricing/initialize-defaults
// @Summary Seed default karat terms
// @Description Derives each karat's base rate from the 24K gold rate
// @Tags karat-pricing
// @Produce json
// @Success 201 {object} Response{data=[]domain.KaratPricing} "Seeded terms"
// @Security BearerAuth
// @Router /karat-pricing/initialize-defaults [post]
func (h *KaratPricingHandler) InitializeDefaults(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	list, err := h.pricingService.InitializeDefaults(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, list)
}
