package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// NotificationHandler handles the notification log and invoice sharing.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /api/v1/notifications
// @Summary Notification log
// @Tags notifications
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Notification,meta=PagMeta} "Notifications"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	list, total, err := h.notificationService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Stats handles GET /api/v1/notifications/stats
// @Summary Delivery statistics
// @Tags notifications
// @Produce json
// @Success 200 {object} Response{data=domain.NotificationStats} "Stats"
// @Security BearerAuth
// @Router /notifications/stats [get]
func (h *NotificationHandler) Stats(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	st, err := h.notificationService.Stats(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, st)
}

// ShareInvoice handles POST /api/v1/notifications/invoice/:sale_id
// @Summary Email an invoice
// @Description Queues the invoice email. The address defaults to the customer's email.
// @Tags notifications
// @Accept json
// @Produce json
// @Param sale_id path string true "Sale ID (UUID)"
// @Param request body service.ShareInvoiceInput false "Recipient override"
// @Success 202 {object} Response{data=domain.Notification} "Queued"
// @Failure 400 {object} ErrorResponseBody "No email address"
// @Failure 404 {object} ErrorResponseBody "Sale not found"
// @Security BearerAuth
// @Router /notifications/invoice/{sale_id} [post]
func (h *NotificationHandler) ShareInvoice(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	saleID, ok := parseUUIDParam(c, "sale_id")
	if !ok {
		return
	}

	var input service.ShareInvoiceInput
	if c.Request.ContentLength != 0 && !bindJSON(c, &input) {
		return
	}

	n, err := h.notificationService.ShareInvoice(c.Request.Context(), tenantID, saleID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondAccepted(c, n)
}
