package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTenantInactive      = errors.New("tenant is inactive")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug = errors.New("tenant slug already exists")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidRole         = errors.New("invalid user role")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrKarigarNotFound  = errors.New("karigar not found")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrGoldRateNotFound = errors.New("gold rate not found")
	ErrBarcodeNotFound  = errors.New("barcode not found")

	ErrDuplicateSKU      = errors.New("product with this SKU already exists")
	ErrDuplicatePhone    = errors.New("phone number already registered")
	ErrPOAlreadyReceived = errors.New("purchase order already received")
	ErrPOCancelled       = errors.New("purchase order is cancelled")
	ErrEInvoiceExists    = errors.New("e-invoice already generated for this sale")
	ErrEInvoiceCancelled = errors.New("e-invoice already cancelled")
	ErrBarcodeExists     = errors.New("barcode already exists for this product")
	ErrDuplicateBarcode  = errors.New("barcode value already in use")

	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrInvalidFilingPeriod     = errors.New("filing period must be MMYYYY")
	ErrInvalidKarat            = errors.New("unsupported karat")
	ErrInvalidGSTIN            = errors.New("invalid GSTIN")
	ErrInvalidHSN              = errors.New("invalid HSN code")
	ErrInvalidPhone            = errors.New("invalid phone number")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrMalformedDocumentNumber = errors.New("last document number is malformed")
	ErrInvalidImportFile       = errors.New("invalid GST return file")
	ErrInvalidInput            = errors.New("invalid input")
	ErrCancelReasonTooShort    = errors.New("cancellation reason must be at least 10 characters")
	ErrEmptySale               = errors.New("sale must contain at least one item")

	ErrLockHeld = errors.New("operation already in progress")
)
