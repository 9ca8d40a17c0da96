package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// KarigarHandler handles karigars and their job cards.
type KarigarHandler struct {
	karigarService service.KarigarService
}

// NewKarigarHandler creates a new KarigarHandler.
func NewKarigarHandler(karigarService service.KarigarService) *KarigarHandler {
	return &KarigarHandler{karigarService: karigarService}
}

// Create handles POST /api/v1/karigars
// @Summary Register a karigar
// @Tags karigars
// @Accept json
// @Produce json
// @Param request body service.CreateKarigarInput true "Karigar"
// @Success 201 {object} Response{data=domain.Karigar} "Karigar created"
// @Failure 409 {object} ErrorResponseBody "Duplicate phone"
// @Security BearerAuth
// @Router /karigars [post]
func (h *KarigarHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateKarigarInput
	if !bindJSON(c, &input) {
		return
	}

	k, err := h.karigarService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, k)
}

// List handles GET /api/v1/karigars
// @Summary List karigars
// @Tags karigars
// @Produce json
// @Param status query string false "active, inactive or on_leave"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Karigar,meta=PagMeta} "Karigars"
// @Security BearerAuth
// @Router /karigars [get]
func (h *KarigarHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	list, total, err := h.karigarService.List(c.Request.Context(), tenantID, domain.KarigarStatus(c.Query("status")), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/karigars/:id
// @Summary Get karigar
// @Tags karigars
// @Produce json
// @Param id path string true "Karigar ID (UUID)"
// @Success 200 {object} Response{data=domain.Karigar} "Karigar"
// @Failure 404 {object} ErrorResponseBody "Karigar not found"
// @Security BearerAuth
// @Router /karigars/{id} [get]
func (h *KarigarHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	k, err := h.karigarService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, k)
}

// Update handles PUT /api/v1/karigars/:id
// @Summary Update karigar
// @Tags karigars
// @Accept json
// @Produce json
// @Param id path string true "Karigar ID (UUID)"
// @Param request body service.UpdateKarigarInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Karigar} "Karigar updated"
// @Failure 404 {object} ErrorResponseBody "Karigar not found"
// @Failure 409 {object} ErrorResponseBody "Duplicate phone"
// @Security BearerAuth
// @Router /karigars/{id} [put]
func (h *KarigarHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateKarigarInput
	if !bindJSON(c, &input) {
		return
	}

	k, err := h.karigarService.Update(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, k)
}

// Summary handles GET /api/v1/karigars/:id/summary
// @Summary Karigar work summary
// @Description Job counts, weight issued and lost, earnings and balance due
// @Tags karigars
// @Produce json
// @Param id path string true "Karigar ID (UUID)"
// @Success 200 {object} Response{data=domain.KarigarSummary} "Summary"
// @Failure 404 {object} ErrorResponseBody "Karigar not found"
// @Security BearerAuth
// @Router /karigars/{id}/summary [get]
func (h *KarigarHandler) Summary(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	sum, err := h.karigarService.Summary(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, sum)
}

// CreateJob handles POST /api/v1/karigars/jobs
// @Summary Issue a job
// @Description Assigns the next JOB-NNNNNN number
// @Tags karigars
// @Accept json
// @Produce json
// @Param request body service.CreateJobInput true "Job"
// @Success 201 {object} Response{data=domain.KarigarJob} "Job created"
// @Failure 404 {object} ErrorResponseBody "Karigar not found"
// @Security BearerAuth
// @Router /karigars/jobs [post]
func (h *KarigarHandler) CreateJob(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateJobInput
	if !bindJSON(c, &input) {
		return
	}

	job, err := h.karigarService.CreateJob(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, job)
}

// ListJobs handles GET /api/v1/karigars/jobs
// @Summary List jobs
// @Tags karigars
// @Produce json
// @Param karigar_id query string false "Karigar ID (UUID)"
// @Param status query string false "Job status"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.KarigarJob,meta=PagMeta} "Jobs"
// @Security BearerAuth
// @Router /karigars/jobs [get]
func (h *KarigarHandler) ListJobs(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	filter := domain.JobFilter{Status: domain.JobStatus(c.Query("status"))}
	if v := c.Query("karigar_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid karigar_id")
			return
		}
		filter.KarigarID = &id
	}

	jobs, total, err := h.karigarService.ListJobs(c.Request.Context(), tenantID, filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, jobs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetJob handles GET /api/v1/karigars/jobs/:job_id
// @Summary Get job
// @Tags karigars
// @Produce json
// @Param job_id path string true "Job ID (UUID)"
// @Success 200 {object} Response{data=domain.KarigarJob} "Job"
// @Failure 404 {object} ErrorResponseBody "Job not found"
// @Security BearerAuth
// @Router /karigars/jobs/{job_id} [get]
func (h *KarigarHandler) GetJob(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "job_id")
	if !ok {
		return
	}

	job, err := h.karigarService.GetJob(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, job)
}

// UpdateJob handles PUT /api/v1/karigars/jobs/:job_id
// @Summary Progress a job
// @Description Status transition, returned weight and notes
// @Tags karigars
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID (UUID)"
// @Param request body service.UpdateJobInput true "Changes"
// @Success 200 {object} Response{data=domain.KarigarJob} "Job updated"
// @Failure 400 {object} ErrorResponseBody "Invalid status transition"
// @Failure 404 {object} ErrorResponseBody "Job not found"
// @Security BearerAuth
// @Router /karigars/jobs/{job_id} [put]
func (h *KarigarHandler) UpdateJob(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "job_id")
	if !ok {
		return
	}

	var input service.UpdateJobInput
	if !bindJSON(c, &input) {
		return
	}

	job, err := h.karigarService.UpdateJob(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, job)
}
