package domain

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// ValidUserRoles is the set of roles accepted on user create/update.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:   true,
	RoleManager: true,
	RoleStaff:   true,
}

// PaymentMethod is how a sale was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentUPI          PaymentMethod = "upi"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// ValidPaymentMethods is the set of accepted payment methods.
var ValidPaymentMethods = map[PaymentMethod]bool{
	PaymentCash:         true,
	PaymentUPI:          true,
	PaymentCard:         true,
	PaymentBankTransfer: true,
}

// SaleStatus is the lifecycle state of a sale.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// POStatus is the lifecycle state of a purchase order.
type POStatus string

const (
	POStatusPending   POStatus = "pending"
	POStatusPartial   POStatus = "partial"
	POStatusReceived  POStatus = "received"
	POStatusCancelled POStatus = "cancelled"
)

// MakingChargeType selects how a karigar's making charge is computed.
type MakingChargeType string

const (
	MakingChargePerGram    MakingChargeType = "per_gram"
	MakingChargeFixed      MakingChargeType = "fixed"
	MakingChargePercentage MakingChargeType = "percentage"
)

// KarigarStatus is the availability of a karigar.
type KarigarStatus string

const (
	KarigarActive   KarigarStatus = "active"
	KarigarInactive KarigarStatus = "inactive"
	KarigarOnLeave  KarigarStatus = "on_leave"
)

// JobStatus is the lifecycle state of a karigar job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobDelivered  JobStatus = "delivered"
	JobCancelled  JobStatus = "cancelled"
)

var jobTransitions = map[JobStatus][]JobStatus{
	JobPending:    {JobInProgress, JobCompleted, JobCancelled},
	JobInProgress: {JobCompleted, JobCancelled},
	JobCompleted:  {JobDelivered},
}

// CanTransitionTo reports whether a job may move from s to next.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// EInvoiceStatus is the registration state of an e-invoice.
type EInvoiceStatus string

const (
	EInvoiceGenerated EInvoiceStatus = "generated"
	EInvoiceCancelled EInvoiceStatus = "cancelled"
)

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationStockAlert    NotificationType = "stock_alert"
	NotificationRateUpdate    NotificationType = "rate_update"
	NotificationInvoiceShared NotificationType = "invoice_shared"
)

// NotificationChannel is the delivery route.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelInApp NotificationChannel = "in_app"
)

// NotificationStatus is the delivery state.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// ReturnKind distinguishes GSTR-2A from GSTR-2B imports.
type ReturnKind string

const (
	ReturnGSTR2A ReturnKind = "gstr2a"
	ReturnGSTR2B ReturnKind = "gstr2b"
)

// CounterKind names a document number sequence.
type CounterKind string

const (
	CounterInvoice CounterKind = "invoice"
	CounterPO      CounterKind = "purchase_order"
	CounterJob     CounterKind = "karigar_job"
)

// BarcodeType is the symbology a product label is printed in.
type BarcodeType string

const (
	BarcodeCode128 BarcodeType = "barcode"
	BarcodeQR      BarcodeType = "qr_code"
)

// Valid reports whether t is a known symbology.
func (t BarcodeType) Valid() bool {
	return t == BarcodeCode128 || t == BarcodeQR
}
