package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// InventoryHandler handles categories, products and stock.
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// CreateCategory handles POST /api/v1/inventory/categories
// @Summary Create a category
// @Description HSN defaults to 71131900 when omitted
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body service.CreateCategoryInput true "Category"
// @Success 201 {object} Response{data=domain.Category} "Category created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /inventory/categories [post]
func (h *InventoryHandler) CreateCategory(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateCategoryInput
	if !bindJSON(c, &input) {
		return
	}

	cat, err := h.inventoryService.CreateCategory(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, cat)
}

// ListCategories handles GET /api/v1/inventory/categories
// @Summary List categories
// @Tags inventory
// @Produce json
// @Success 200 {object} Response{data=[]domain.Category} "Categories"
// @Security BearerAuth
// @Router /inventory/categories [get]
func (h *InventoryHandler) ListCategories(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	cats, err := h.inventoryService.ListCategories(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cats)
}

// CreateProduct handles POST /api/v1/inventory/products
// @Summary Create a product
// @Description Selling price and low-stock flag are derived on create
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body service.CreateProductInput true "Product"
// @Success 201 {object} Response{data=domain.Product} "Product created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Duplicate SKU"
// @Security BearerAuth
// @Router /inventory/products [post]
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateProductInput
	if !bindJSON(c, &input) {
		return
	}

	p, err := h.inventoryService.CreateProduct(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, p)
}

// ListProducts handles GET /api/v1/inventory/products
// @Summary List products
// @Tags inventory
// @Produce json
// @Param search query string false "Name, SKU or hallmark search"
// @Param category query string false "Category name"
// @Param low_stock query bool false "Only low-stock products"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Product,meta=PagMeta} "Products"
// @Security BearerAuth
// @Router /inventory/products [get]
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)
	lowStock, _ := strconv.ParseBool(c.DefaultQuery("low_stock", "false"))

	filter := domain.ProductFilter{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		LowStockOnly: lowStock,
	}
	products, total, err := h.inventoryService.ListProducts(c.Request.Context(), tenantID, filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, products, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetProduct handles GET /api/v1/inventory/products/:id
// @Summary Get product
// @Tags inventory
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} Response{data=domain.Product} "Product"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Security BearerAuth
// @Router /inventory/products/{id} [get]
func (h *InventoryHandler) GetProduct(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.inventoryService.GetProduct(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, p)
}

// UpdateProduct handles PUT /api/v1/inventory/products/:id
// @Summary Update product
// @Description Recomputes selling price and low-stock flag
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param request body service.UpdateProductInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Product} "Product updated"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Failure 409 {object} ErrorResponseBody "Duplicate SKU"
// @Security BearerAuth
// @Router /inventory/products/{id} [put]
func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateProductInput
	if !bindJSON(c, &input) {
		return
	}

	p, err := h.inventoryService.UpdateProduct(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, p)
}

// DeleteProduct handles DELETE /api/v1/inventory/products/:id
// @Summary Delete product
// @Tags inventory
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Product deleted"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Security BearerAuth
// @Router /inventory/products/{id} [delete]
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteProduct(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "product deleted"})
}

// AdjustStock handles POST /api/v1/inventory/products/:id/stock
// @Summary Adjust stock
// @Description Apply a signed quantity change. Stock never goes negative.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param request body service.StockAdjustmentInput true "Adjustment"
// @Success 200 {object} Response{data=domain.StockChange} "New stock level"
// @Failure 400 {object} ErrorResponseBody "Insufficient stock"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Security BearerAuth
// @Router /inventory/products/{id}/stock [post]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input service.StockAdjustmentInput
	if !bindJSON(c, &input) {
		return
	}

	change, err := h.inventoryService.AdjustStock(c.Request.Context(), tenantID, userID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, change)
}

// ListMovements handles GET /api/v1/inventory/products/:id/movements
// @Summary Stock movements of a product
// @Tags inventory
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.StockMovement,meta=PagMeta} "Movements"
// @Security BearerAuth
// @Router /inventory/products/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	offset, limit := pagination(c)

	moves, total, err := h.inventoryService.ListMovements(c.Request.Context(), tenantID, id, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, moves, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListLowStock handles GET /api/v1/inventory/low-stock
// @Summary Low-stock products
// @Tags inventory
// @Produce json
// @Success 200 {object} Response{data=[]domain.Product} "Products at or below threshold"
// @Security BearerAuth
// @Router /inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	products, err := h.inventoryService.ListLowStock(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, products)
}
