package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// TenantHandler handles business (tenant) management endpoints.
type TenantHandler struct {
	tenantService service.TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenantService service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Create handles POST /api/v1/admin/tenants
// @Summary Create a business
// @Description Register a new jewellery business. The state code is derived from the state.
// @Tags tenants
// @Accept json
// @Produce json
// @Param request body service.CreateTenantInput true "Business details"
// @Success 201 {object} Response{data=domain.Tenant} "Business created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 409 {object} ErrorResponseBody "Slug already exists"
// @Security BearerAuth
// @Router /admin/tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var input service.CreateTenantInput
	if !bindJSON(c, &input) {
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, tenant)
}

// List handles GET /api/v1/admin/tenants
// @Summary List businesses
// @Tags tenants
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Tenant,meta=PagMeta} "List of businesses"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	tenants, total, err := h.tenantService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, tenants, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/admin/tenants/:id
// @Summary Get business by ID
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} Response{data=domain.Tenant} "Business details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Business not found"
// @Security BearerAuth
// @Router /admin/tenants/{id} [get]
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tenant)
}

// Update handles PUT /api/v1/admin/tenants/:id
// @Summary Update a business
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param request body service.UpdateTenantInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Tenant} "Business updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Business not found"
// @Security BearerAuth
// @Router /admin/tenants/{id} [put]
func (h *TenantHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateTenantInput
	if !bindJSON(c, &input) {
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tenant)
}

// Delete handles DELETE /api/v1/admin/tenants/:id
// @Summary Delete a business
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Business deleted"
// @Failure 404 {object} ErrorResponseBody "Business not found"
// @Security BearerAuth
// @Router /admin/tenants/{id} [delete]
func (h *TenantHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "tenant deleted"})
}

// GetBusiness handles GET /api/v1/settings/business
// @Summary Get business settings
// @Description Settings of the caller's own business
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=domain.Tenant} "Business settings"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /settings/business [get]
func (h *TenantHandler) GetBusiness(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tenant)
}

// UpdateBusiness handles PUT /api/v1/settings/business
// @Summary Update business settings
// @Description Update the caller's own business. Changing the state re-derives the state code.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body service.UpdateTenantInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Tenant} "Business updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /settings/business [put]
func (h *TenantHandler) UpdateBusiness(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.UpdateTenantInput
	if !bindJSON(c, &input) {
		return
	}
	// Activation is an admin concern.
	input.IsActive = nil

	tenant, err := h.tenantService.Update(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tenant)
}
