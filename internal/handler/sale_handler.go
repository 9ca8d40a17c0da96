package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// SaleHandler handles billing endpoints.
type SaleHandler struct {
	saleService service.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles POST /api/v1/sales
// @Summary Bill a sale
// @Description Prices each line, splits GST by place of supply, reserves stock and assigns the next invoice number in one transaction
// @Tags sales
// @Accept json
// @Produce json
// @Param request body service.CreateSaleInput true "Sale"
// @Success 201 {object} Response{data=domain.Sale} "Sale created"
// @Failure 400 {object} ErrorResponseBody "Validation error or insufficient stock"
// @Failure 404 {object} ErrorResponseBody "Customer or product not found"
// @Security BearerAuth
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateSaleInput
	if !bindJSON(c, &input) {
		return
	}

	sale, err := h.saleService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, sale)
}

// List handles GET /api/v1/sales
// @Summary List sales
// @Tags sales
// @Produce json
// @Param status query string false "pending, completed or cancelled"
// @Param from_date query string false "YYYY-MM-DD"
// @Param to_date query string false "YYYY-MM-DD"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Sale,meta=PagMeta} "Sales"
// @Failure 400 {object} ErrorResponseBody "Invalid date"
// @Security BearerAuth
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	filter := domain.SaleFilter{Status: domain.SaleStatus(c.Query("status"))}
	if v := c.Query("from_date"); v != "" {
		from, err := time.Parse(dateLayout, v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "from_date must be YYYY-MM-DD")
			return
		}
		filter.From = &from
	}
	if v := c.Query("to_date"); v != "" {
		to, err := time.Parse(dateLayout, v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "to_date must be YYYY-MM-DD")
			return
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}

	sales, total, err := h.saleService.List(c.Request.Context(), tenantID, filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, sales, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/sales/:id
// @Summary Get sale with items
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID (UUID)"
// @Success 200 {object} Response{data=domain.Sale} "Sale"
// @Failure 404 {object} ErrorResponseBody "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *SaleHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, sale)
}

// Summary handles GET /api/v1/sales/summary
// @Summary Sales totals
// @Description All-time and today's sale count and revenue
// @Tags sales
// @Produce json
// @Success 200 {object} Response{data=domain.SalesSummary} "Summary"
// @Security BearerAuth
// @Router /sales/summary [get]
func (h *SaleHandler) Summary(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	sum, err := h.saleService.Summary(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, sum)
}
