package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// PurchaseHandler handles suppliers, purchase orders and old gold exchange.
type PurchaseHandler struct {
	purchaseService service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// CreateSupplier handles POST /api/v1/purchases/suppliers
// @Summary Create a supplier
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body service.CreateSupplierInput true "Supplier"
// @Success 201 {object} Response{data=domain.Supplier} "Supplier created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Duplicate phone"
// @Security BearerAuth
// @Router /purchases/suppliers [post]
func (h *PurchaseHandler) CreateSupplier(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateSupplierInput
	if !bindJSON(c, &input) {
		return
	}

	s, err := h.purchaseService.CreateSupplier(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, s)
}

// ListSuppliers handles GET /api/v1/purchases/suppliers
// @Summary List suppliers
// @Tags purchases
// @Produce json
// @Param search query string false "Name, phone or GSTIN"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Supplier,meta=PagMeta} "Suppliers"
// @Security BearerAuth
// @Router /purchases/suppliers [get]
func (h *PurchaseHandler) ListSuppliers(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	list, total, err := h.purchaseService.ListSuppliers(c.Request.Context(), tenantID, c.Query("search"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetSupplier handles GET /api/v1/purchases/suppliers/:id
// @Summary Get supplier
// @Tags purchases
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Success 200 {object} Response{data=domain.Supplier} "Supplier"
// @Failure 404 {object} ErrorResponseBody "Supplier not found"
// @Security BearerAuth
// @Router /purchases/suppliers/{id} [get]
func (h *PurchaseHandler) GetSupplier(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	s, err := h.purchaseService.GetSupplier(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, s)
}

// UpdateSupplier handles PUT /api/v1/purchases/suppliers/:id
// @Summary Update supplier
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Param request body service.UpdateSupplierInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Supplier} "Supplier updated"
// @Failure 404 {object} ErrorResponseBody "Supplier not found"
// @Security BearerAuth
// @Router /purchases/suppliers/{id} [put]
func (h *PurchaseHandler) UpdateSupplier(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateSupplierInput
	if !bindJSON(c, &input) {
		return
	}

	s, err := h.purchaseService.UpdateSupplier(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, s)
}

// CreateOrder handles POST /api/v1/purchases/orders
// @Summary Raise a purchase order
// @Description Supplier GSTIN and state are snapshotted onto the order
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body service.CreatePurchaseOrderInput true "Order"
// @Success 201 {object} Response{data=domain.PurchaseOrder} "Order created"
// @Failure 404 {object} ErrorResponseBody "Supplier or product not found"
// @Security BearerAuth
// @Router /purchases/orders [post]
func (h *PurchaseHandler) CreateOrder(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreatePurchaseOrderInput
	if !bindJSON(c, &input) {
		return
	}

	po, err := h.purchaseService.CreateOrder(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, po)
}

// ListOrders handles GET /api/v1/purchases/orders
// @Summary List purchase orders
// @Tags purchases
// @Produce json
// @Param status query string false "pending, partial, received or cancelled"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.PurchaseOrder,meta=PagMeta} "Orders"
// @Security BearerAuth
// @Router /purchases/orders [get]
func (h *PurchaseHandler) ListOrders(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	list, total, err := h.purchaseService.ListOrders(c.Request.Context(), tenantID, domain.POStatus(c.Query("status")), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetOrder handles GET /api/v1/purchases/orders/:id
// @Summary Get purchase order
// @Tags purchases
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} Response{data=domain.PurchaseOrder} "Order with lines"
// @Failure 404 {object} ErrorResponseBody "Order not found"
// @Security BearerAuth
// @Router /purchases/orders/{id} [get]
func (h *PurchaseHandler) GetOrder(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	po, err := h.purchaseService.GetOrder(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, po)
}

// ReceiveOrder handles POST /api/v1/purchases/orders/:id/receive
// @Summary Receive a purchase order
// @Description Adds every line to stock once. A second receive is a conflict.
// @Tags purchases
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} Response{data=domain.PurchaseOrder} "Order received"
// @Failure 404 {object} ErrorResponseBody "Order not found"
// @Failure 409 {object} ErrorResponseBody "Already received or cancelled"
// @Security BearerAuth
// @Router /purchases/orders/{id}/receive [post]
func (h *PurchaseHandler) ReceiveOrder(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	po, err := h.purchaseService.ReceiveOrder(c.Request.Context(), tenantID, userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, po)
}

// CreateOldGold handles POST /api/v1/purchases/old-gold
// @Summary Record an old gold buy-back
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body service.CreateOldGoldInput true "Exchange"
// @Success 201 {object} Response{data=domain.OldGoldExchange} "Exchange recorded"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /purchases/old-gold [post]
func (h *PurchaseHandler) CreateOldGold(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateOldGoldInput
	if !bindJSON(c, &input) {
		return
	}

	ex, err := h.purchaseService.CreateOldGold(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, ex)
}

// ListOldGold handles GET /api/v1/purchases/old-gold
// @Summary List old gold exchanges
// @Tags purchases
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.OldGoldExchange,meta=PagMeta} "Exchanges"
// @Security BearerAuth
// @Router /purchases/old-gold [get]
func (h *PurchaseHandler) ListOldGold(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	list, total, err := h.purchaseService.ListOldGold(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
}
