package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /api/v1/customers
// @Summary Create a customer
// @Description Phone is validated as an Indian number, GSTIN when present
// @Tags customers
// @Accept json
// @Produce json
// @Param request body service.CreateCustomerInput true "Customer"
// @Success 201 {object} Response{data=domain.Customer} "Customer created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Duplicate phone"
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateCustomerInput
	if !bindJSON(c, &input) {
		return
	}

	cust, err := h.customerService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, cust)
}

// List handles GET /api/v1/customers
// @Summary List customers
// @Tags customers
// @Produce json
// @Param search query string false "Name, phone or email"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Customer,meta=PagMeta} "Customers"
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	customers, total, err := h.customerService.List(c.Request.Context(), tenantID, c.Query("search"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, customers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/customers/:id
// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} Response{data=domain.Customer} "Customer"
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cust, err := h.customerService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cust)
}
