package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// GoldRateHandler handles daily gold rate endpoints.
type GoldRateHandler struct {
	goldRateService service.GoldRateService
}

// NewGoldRateHandler creates a new GoldRateHandler.
func NewGoldRateHandler(goldRateService service.GoldRateService) *GoldRateHandler {
	return &GoldRateHandler{goldRateService: goldRateService}
}

// SetRates handles POST /api/v1/gold-rates
// @Summary Publish today's rates
// @Description Replaces today's active rates and broadcasts them to connected clients
// @Tags gold-rates
// @Accept json
// @Produce json
// @Param request body service.SetRatesInput true "Rates per purity"
// @Success 201 {object} Response{data=service.CurrentRates} "Rates published"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /gold-rates [post]
func (h *GoldRateHandler) SetRates(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.SetRatesInput
	if !bindJSON(c, &input) {
		return
	}

	rates, err := h.goldRateService.SetRates(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rates)
}

// Current handles GET /api/v1/gold-rates/current
// @Summary Current rates
// @Tags gold-rates
// @Produce json
// @Success 200 {object} Response{data=service.CurrentRates} "Latest active rates"
// @Failure 404 {object} ErrorResponseBody "No rates set"
// @Security BearerAuth
// @Router /gold-rates/current [get]
func (h *GoldRateHandler) Current(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	rates, err := h.goldRateService.Current(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rates)
}

// History handles GET /api/v1/gold-rates/history
// @Summary Rate history
// @Tags gold-rates
// @Produce json
// @Param purity query string false "Karat, e.g. 22K"
// @Param days query int false "Look-back window in days" default(30)
// @Success 200 {object} Response{data=[]service.RateHistoryItem} "History with day-on-day change"
// @Security BearerAuth
// @Router /gold-rates/history [get]
func (h *GoldRateHandler) History(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 || days > 365 {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "days must be between 1 and 365")
		return
	}

	items, err := h.goldRateService.History(c.Request.Context(), tenantID, c.Query("purity"), days)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, items)
}

// Latest handles GET /api/v1/gold-rates/latest/:purity
// @Summary Latest rate of a purity
// @Tags gold-rates
// @Produce json
// @Param purity path string true "Karat, e.g. 22K"
// @Success 200 {object} Response{data=domain.GoldRate} "Rate"
// @Failure 404 {object} ErrorResponseBody "No rate for purity"
// @Security BearerAuth
// @Router /gold-rates/latest/{purity} [get]
func (h *GoldRateHandler) Latest(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	rate, err := h.goldRateService.Latest(c.Request.Context(), tenantID, c.Param("purity"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rate)
}

// ApplyToProducts handles POST /api/v1/gold-rates/apply-to-products
// @Summary Reprice products
// @Description Queues a background job that re-derives product prices from the current rates
// @Tags gold-rates
// @Produce json
// @Success 202 {object} Response{data=service.ApplyRatesResult} "Job queued"
// @Failure 404 {object} ErrorResponseBody "No rates set"
// @Security BearerAuth
// @Router /gold-rates/apply-to-products [post]
func (h *GoldRateHandler) ApplyToProducts(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	res, err := h.goldRateService.ApplyToProducts(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondAccepted(c, res)
}
