package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondAccepted sends a 202 response for work handed to the job queue.
func RespondAccepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// Checked in order; the first errors.Is match wins. The message is the
// wrapped error's text so details such as the product name reach the client.
var errorMappings = []errorMapping{
	{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrTenantInactive, http.StatusForbidden, "TENANT_INACTIVE"},
	{domain.ErrUserInactive, http.StatusForbidden, "USER_INACTIVE"},

	{domain.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
	{domain.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
	{domain.ErrSupplierNotFound, http.StatusNotFound, "SUPPLIER_NOT_FOUND"},
	{domain.ErrKarigarNotFound, http.StatusNotFound, "KARIGAR_NOT_FOUND"},
	{domain.ErrSaleNotFound, http.StatusNotFound, "SALE_NOT_FOUND"},
	{domain.ErrGoldRateNotFound, http.StatusNotFound, "GOLD_RATE_NOT_FOUND"},
	{domain.ErrBarcodeNotFound, http.StatusNotFound, "BARCODE_NOT_FOUND"},
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},

	{domain.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
	{domain.ErrDuplicateTenantSlug, http.StatusConflict, "DUPLICATE_SLUG"},
	{domain.ErrDuplicateSKU, http.StatusConflict, "DUPLICATE_SKU"},
	{domain.ErrDuplicatePhone, http.StatusConflict, "DUPLICATE_PHONE"},
	{domain.ErrPOAlreadyReceived, http.StatusConflict, "PO_ALREADY_RECEIVED"},
	{domain.ErrPOCancelled, http.StatusConflict, "PO_CANCELLED"},
	{domain.ErrEInvoiceExists, http.StatusConflict, "EINVOICE_EXISTS"},
	{domain.ErrEInvoiceCancelled, http.StatusConflict, "EINVOICE_CANCELLED"},
	{domain.ErrBarcodeExists, http.StatusConflict, "BARCODE_EXISTS"},
	{domain.ErrDuplicateBarcode, http.StatusConflict, "DUPLICATE_BARCODE"},
	{domain.ErrLockHeld, http.StatusConflict, "OPERATION_IN_PROGRESS"},

	{domain.ErrInsufficientStock, http.StatusBadRequest, "INSUFFICIENT_STOCK"},
	{domain.ErrInvalidFilingPeriod, http.StatusBadRequest, "INVALID_FILING_PERIOD"},
	{domain.ErrInvalidKarat, http.StatusBadRequest, "INVALID_KARAT"},
	{domain.ErrInvalidGSTIN, http.StatusBadRequest, "INVALID_GSTIN"},
	{domain.ErrInvalidHSN, http.StatusBadRequest, "INVALID_HSN"},
	{domain.ErrInvalidPhone, http.StatusBadRequest, "INVALID_PHONE"},
	{domain.ErrInvalidRole, http.StatusBadRequest, "INVALID_ROLE"},
	{domain.ErrInvalidStatusTransition, http.StatusBadRequest, "INVALID_STATUS_TRANSITION"},
	{domain.ErrInvalidDateRange, http.StatusBadRequest, "INVALID_DATE_RANGE"},
	{domain.ErrInvalidPaymentMethod, http.StatusBadRequest, "INVALID_PAYMENT_METHOD"},
	{domain.ErrInvalidImportFile, http.StatusBadRequest, "INVALID_IMPORT_FILE"},
	{domain.ErrCancelReasonTooShort, http.StatusBadRequest, "CANCEL_REASON_TOO_SHORT"},
	{domain.ErrEmptySale, http.StatusBadRequest, "EMPTY_SALE"},
	{domain.ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},

	{domain.ErrMalformedDocumentNumber, http.StatusInternalServerError, "MALFORMED_DOCUMENT_NUMBER"},
	{domain.ErrUploadFailed, http.StatusInternalServerError, "UPLOAD_FAILED"},
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			if m.status >= 500 {
				return m.status, m.code, m.err.Error()
			}
			return m.status, m.code, err.Error()
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
}

// extractAuthContext extracts tenant ID, user ID, and role from the request context.
// Returns false if auth context is missing (error response already written).
func extractAuthContext(c *gin.Context) (tenantID, userID uuid.UUID, role domain.UserRole, ok bool) {
	var err error
	tenantID, err = middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return uuid.Nil, uuid.Nil, "", false
	}
	userID, err = middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, uuid.Nil, "", false
	}
	role = domain.UserRole(middleware.GetRole(c))
	return tenantID, userID, role, true
}

// parseUUIDParam reads a path parameter as a UUID, writing a 400 on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

const dateLayout = "2006-01-02"

// pagination reads offset and limit query params. Limit defaults to 20 and
// is capped at 100.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return offset, limit
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return false
	}
	return true
}

// Logger receives 5xx errors. Replaced at startup with the process logger.
var Logger logrus.FieldLogger = logrus.StandardLogger()

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get(middleware.ContextKeyRequestID)
		Logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("internal error")
	}
	RespondError(c, status, code, msg)
}
