package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a jewellery business. Its State is the home state used to decide
// between intra-state (CGST+SGST) and inter-state (IGST) supplies.
type Tenant struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Slug          string    `db:"slug" json:"slug"`
	GSTIN         string    `db:"gstin" json:"gstin"`
	State         string    `db:"state" json:"state"`
	StateCode     string    `db:"state_code" json:"state_code"`
	Address       string    `db:"address" json:"address"`
	Phone         string    `db:"phone" json:"phone"`
	Email         string    `db:"email" json:"email"`
	InvoicePrefix string    `db:"invoice_prefix" json:"invoice_prefix"`
	POPrefix      string    `db:"po_prefix" json:"po_prefix"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Category groups products and carries a default HSN code.
type Category struct {
	ID          uuid.UUID `db:"id" json:"id"`
	TenantID    uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	HSNCode     string    `db:"hsn_code" json:"hsn_code"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Product is a stocked jewellery item.
type Product struct {
	ID                uuid.UUID `db:"id" json:"id"`
	TenantID          uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name              string    `db:"name" json:"name"`
	SKU               string    `db:"sku" json:"sku"`
	Description       string    `db:"description" json:"description"`
	Category          string    `db:"category" json:"category"`
	GoldWeight        float64   `db:"gold_weight" json:"gold_weight"`
	Purity            string    `db:"purity" json:"purity"`
	MakingCharges     float64   `db:"making_charges" json:"making_charges"`
	StoneWeight       float64   `db:"stone_weight" json:"stone_weight"`
	StoneCharges      float64   `db:"stone_charges" json:"stone_charges"`
	HallmarkNumber    string    `db:"hallmark_number" json:"hallmark_number"`
	HSNCode           string    `db:"hsn_code" json:"hsn_code"`
	BasePrice         float64   `db:"base_price" json:"base_price"`
	GSTRate           float64   `db:"gst_rate" json:"gst_rate"`
	SellingPrice      float64   `db:"selling_price" json:"selling_price"`
	Quantity          int       `db:"quantity" json:"quantity"`
	LowStockThreshold int       `db:"low_stock_threshold" json:"low_stock_threshold"`
	IsLowStock        bool      `db:"is_low_stock" json:"is_low_stock"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// StockMovement records a single change to a product's quantity.
type StockMovement struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	TenantID      uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	ProductID     uuid.UUID  `db:"product_id" json:"product_id"`
	Change        int        `db:"change" json:"change"`
	QuantityAfter int        `db:"quantity_after" json:"quantity_after"`
	Reason        string     `db:"reason" json:"reason"`
	Reference     string     `db:"reference" json:"reference"`
	CreatedBy     *uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// StockChange is the result of an atomic stock adjustment.
type StockChange struct {
	ProductID     uuid.UUID `db:"id" json:"product_id"`
	Name          string    `db:"name" json:"name"`
	SKU           string    `db:"sku" json:"sku"`
	Quantity      int       `db:"quantity" json:"quantity"`
	Threshold     int       `db:"low_stock_threshold" json:"low_stock_threshold"`
	IsLowStock    bool      `db:"is_low_stock" json:"is_low_stock"`
	WasLowStock   bool      `db:"was_low_stock" json:"was_low_stock"`
	PreviousCount int       `db:"previous_quantity" json:"previous_quantity"`
}

// CrossedLowStock reports whether the change moved the product into low stock.
func (c StockChange) CrossedLowStock() bool {
	return c.IsLowStock && !c.WasLowStock
}

// Customer is a retail or business buyer.
type Customer struct {
	ID             uuid.UUID `db:"id" json:"id"`
	TenantID       uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	GSTIN          string    `db:"gstin" json:"gstin"`
	Address        string    `db:"address" json:"address"`
	City           string    `db:"city" json:"city"`
	State          string    `db:"state" json:"state"`
	Pincode        string    `db:"pincode" json:"pincode"`
	TotalPurchases float64   `db:"total_purchases" json:"total_purchases"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Sale is a completed retail invoice. Items are loaded separately.
type Sale struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	TenantID      uuid.UUID     `db:"tenant_id" json:"tenant_id"`
	InvoiceNumber string        `db:"invoice_number" json:"invoice_number"`
	CustomerID    uuid.UUID     `db:"customer_id" json:"customer_id"`
	CustomerName  string        `db:"customer_name" json:"customer_name"`
	CustomerGSTIN string        `db:"customer_gstin" json:"customer_gstin"`
	CustomerState string        `db:"customer_state" json:"customer_state"`
	Items         []SaleItem    `db:"-" json:"items"`
	Subtotal      float64       `db:"subtotal" json:"subtotal"`
	CGST          float64       `db:"cgst" json:"cgst"`
	SGST          float64       `db:"sgst" json:"sgst"`
	IGST          float64       `db:"igst" json:"igst"`
	TotalTax      float64       `db:"total_tax" json:"total_tax"`
	GrandTotal    float64       `db:"grand_total" json:"grand_total"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"payment_method"`
	Status        SaleStatus    `db:"status" json:"status"`
	Notes         string        `db:"notes" json:"notes"`
	CreatedBy     uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

// IsB2B reports whether the buyer is GST registered.
func (s *Sale) IsB2B() bool {
	return s.CustomerGSTIN != ""
}

// SaleItem is one priced line of a sale.
type SaleItem struct {
	ID             uuid.UUID `db:"id" json:"id"`
	SaleID         uuid.UUID `db:"sale_id" json:"sale_id"`
	LineNo         int       `db:"line_no" json:"line_no"`
	ProductID      uuid.UUID `db:"product_id" json:"product_id"`
	ProductName    string    `db:"product_name" json:"product_name"`
	SKU            string    `db:"sku" json:"sku"`
	Quantity       int       `db:"quantity" json:"quantity"`
	UnitPrice      float64   `db:"unit_price" json:"unit_price"`
	HSNCode        string    `db:"hsn_code" json:"hsn_code"`
	GSTRate        float64   `db:"gst_rate" json:"gst_rate"`
	TotalBeforeTax float64   `db:"total_before_tax" json:"total_before_tax"`
	TaxAmount      float64   `db:"tax_amount" json:"tax_amount"`
	TotalAfterTax  float64   `db:"total_after_tax" json:"total_after_tax"`
}

// SalesSummary is the dashboard view of sales.
type SalesSummary struct {
	TotalSales   int     `db:"total_sales" json:"total_sales"`
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
	TodaySales   int     `db:"today_sales" json:"today_sales"`
	TodayRevenue float64 `db:"today_revenue" json:"today_revenue"`
}

// Supplier is a vendor of gold, stones or finished goods.
type Supplier struct {
	ID             uuid.UUID `db:"id" json:"id"`
	TenantID       uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name           string    `db:"name" json:"name"`
	ContactPerson  string    `db:"contact_person" json:"contact_person"`
	Phone          string    `db:"phone" json:"phone"`
	Email          string    `db:"email" json:"email"`
	GSTIN          string    `db:"gstin" json:"gstin"`
	Address        string    `db:"address" json:"address"`
	City           string    `db:"city" json:"city"`
	State          string    `db:"state" json:"state"`
	Pincode        string    `db:"pincode" json:"pincode"`
	PaymentTerms   string    `db:"payment_terms" json:"payment_terms"`
	TotalPurchases float64   `db:"total_purchases" json:"total_purchases"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	ID               uuid.UUID           `db:"id" json:"id"`
	TenantID         uuid.UUID           `db:"tenant_id" json:"tenant_id"`
	PONumber         string              `db:"po_number" json:"po_number"`
	SupplierID       uuid.UUID           `db:"supplier_id" json:"supplier_id"`
	SupplierName     string              `db:"supplier_name" json:"supplier_name"`
	SupplierGSTIN    string              `db:"supplier_gstin" json:"supplier_gstin"`
	SupplierState    string              `db:"supplier_state" json:"supplier_state"`
	Items            []PurchaseOrderItem `db:"-" json:"items"`
	Subtotal         float64             `db:"subtotal" json:"subtotal"`
	GSTTotal         float64             `db:"gst_total" json:"gst_total"`
	GrandTotal       float64             `db:"grand_total" json:"grand_total"`
	Status           POStatus            `db:"status" json:"status"`
	OrderDate        time.Time           `db:"order_date" json:"order_date"`
	ExpectedDelivery *time.Time          `db:"expected_delivery" json:"expected_delivery"`
	ReceivedDate     *time.Time          `db:"received_date" json:"received_date"`
	Notes            string              `db:"notes" json:"notes"`
	CreatedBy        uuid.UUID           `db:"created_by" json:"created_by"`
	CreatedAt        time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at" json:"updated_at"`
}

// PurchaseOrderItem is one line of a purchase order.
type PurchaseOrderItem struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PurchaseID     uuid.UUID `db:"purchase_order_id" json:"purchase_order_id"`
	LineNo         int       `db:"line_no" json:"line_no"`
	ProductID      uuid.UUID `db:"product_id" json:"product_id"`
	ProductName    string    `db:"product_name" json:"product_name"`
	Quantity       int       `db:"quantity" json:"quantity"`
	UnitPrice      float64   `db:"unit_price" json:"unit_price"`
	GSTRate        float64   `db:"gst_rate" json:"gst_rate"`
	TotalBeforeTax float64   `db:"total_before_tax" json:"total_before_tax"`
	TaxAmount      float64   `db:"tax_amount" json:"tax_amount"`
	TotalAfterTax  float64   `db:"total_after_tax" json:"total_after_tax"`
}

// OldGoldExchange records gold bought back from a customer.
type OldGoldExchange struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantID     uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	CustomerID   *uuid.UUID `db:"customer_id" json:"customer_id"`
	CustomerName string     `db:"customer_name" json:"customer_name"`
	Purity       string     `db:"purity" json:"purity"`
	Weight       float64    `db:"weight" json:"weight"`
	RatePerGram  float64    `db:"rate_per_gram" json:"rate_per_gram"`
	TotalValue   float64    `db:"total_value" json:"total_value"`
	Notes        string     `db:"notes" json:"notes"`
	CreatedBy    uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// GoldRate is the published per-gram rate for a purity on a date.
type GoldRate struct {
	ID          uuid.UUID `db:"id" json:"id"`
	TenantID    uuid.UUID `db:"tenant_id" json:"tenant_id"`
	RateDate    time.Time `db:"rate_date" json:"rate_date"`
	Purity      string    `db:"purity" json:"purity"`
	RatePerGram float64   `db:"rate_per_gram" json:"rate_per_gram"`
	Notes       string    `db:"notes" json:"notes"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// KaratPricing holds the pricing terms for one karat of one business.
type KaratPricing struct {
	ID                     uuid.UUID `db:"id" json:"id"`
	TenantID               uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Karat                  string    `db:"karat" json:"karat"`
	PurityPercentage       float64   `db:"purity_percentage" json:"purity_percentage"`
	BaseRatePerGram        float64   `db:"base_rate_per_gram" json:"base_rate_per_gram"`
	MakingChargePerGram    float64   `db:"making_charge_per_gram" json:"making_charge_per_gram"`
	MakingChargePercentage *float64  `db:"making_charge_percentage" json:"making_charge_percentage"`
	WastagePercentage      float64   `db:"wastage_percentage" json:"wastage_percentage"`
	GSTPercentage          float64   `db:"gst_percentage" json:"gst_percentage"`
	EffectiveDate          time.Time `db:"effective_date" json:"effective_date"`
	Notes                  string    `db:"notes" json:"notes"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time `db:"updated_at" json:"updated_at"`
}

// Karigar is a contracted artisan.
type Karigar struct {
	ID                   uuid.UUID     `db:"id" json:"id"`
	TenantID             uuid.UUID     `db:"tenant_id" json:"tenant_id"`
	Name                 string        `db:"name" json:"name"`
	Phone                string        `db:"phone" json:"phone"`
	Email                string        `db:"email" json:"email"`
	Address              string        `db:"address" json:"address"`
	Specialization       string        `db:"specialization" json:"specialization"`
	ExperienceYears      int           `db:"experience_years" json:"experience_years"`
	PerGramRate          float64       `db:"per_gram_rate" json:"per_gram_rate"`
	CommissionPercentage float64       `db:"commission_percentage" json:"commission_percentage"`
	Status               KarigarStatus `db:"status" json:"status"`
	Notes                string        `db:"notes" json:"notes"`
	TotalJobs            int           `db:"total_jobs" json:"total_jobs"`
	TotalEarnings        float64       `db:"total_earnings" json:"total_earnings"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at" json:"updated_at"`
}

// KarigarJob is a work order issuing gold to a karigar.
type KarigarJob struct {
	ID                     uuid.UUID        `db:"id" json:"id"`
	TenantID               uuid.UUID        `db:"tenant_id" json:"tenant_id"`
	JobNumber              string           `db:"job_number" json:"job_number"`
	KarigarID              uuid.UUID        `db:"karigar_id" json:"karigar_id"`
	KarigarName            string           `db:"karigar_name" json:"karigar_name"`
	JobDescription         string           `db:"job_description" json:"job_description"`
	ProductType            string           `db:"product_type" json:"product_type"`
	GoldPurity             string           `db:"gold_purity" json:"gold_purity"`
	GoldWeightIssued       float64          `db:"gold_weight_issued" json:"gold_weight_issued"`
	ExpectedWeightReturn   float64          `db:"expected_weight_return" json:"expected_weight_return"`
	ActualWeightReturn     *float64         `db:"actual_weight_return" json:"actual_weight_return"`
	WeightLoss             *float64         `db:"weight_loss" json:"weight_loss"`
	MakingChargeType       MakingChargeType `db:"making_charge_type" json:"making_charge_type"`
	MakingChargeRate       float64          `db:"making_charge_rate" json:"making_charge_rate"`
	AdvancePaid            float64          `db:"advance_paid" json:"advance_paid"`
	TotalMakingCharge      *float64         `db:"total_making_charge" json:"total_making_charge"`
	BalanceDue             *float64         `db:"balance_due" json:"balance_due"`
	Status                 JobStatus        `db:"status" json:"status"`
	ExpectedCompletionDate *time.Time       `db:"expected_completion_date" json:"expected_completion_date"`
	ActualCompletionDate   *time.Time       `db:"actual_completion_date" json:"actual_completion_date"`
	Notes                  string           `db:"notes" json:"notes"`
	CreatedAt              time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time        `db:"updated_at" json:"updated_at"`
}

// KarigarSummary aggregates a karigar's job history.
type KarigarSummary struct {
	KarigarID          uuid.UUID `json:"karigar_id"`
	KarigarName        string    `json:"karigar_name"`
	TotalJobs          int       `json:"total_jobs"`
	CompletedJobs      int       `json:"completed_jobs"`
	PendingJobs        int       `json:"pending_jobs"`
	TotalWeightIssued  float64   `json:"total_weight_issued"`
	TotalWeightLoss    float64   `json:"total_weight_loss"`
	AverageLossPercent float64   `json:"average_loss_percentage"`
	TotalEarnings      float64   `json:"total_earnings"`
	TotalBalanceDue    float64   `json:"total_balance_due"`
}

// GSTR2ARecord is one invoice line auto-populated from a supplier's GSTR-1.
type GSTR2ARecord struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TenantID      uuid.UUID `db:"tenant_id" json:"tenant_id"`
	FilingPeriod  string    `db:"filing_period" json:"filing_period"`
	SupplierGSTIN string    `db:"supplier_gstin" json:"supplier_gstin"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   string    `db:"invoice_date" json:"invoice_date"`
	InvoiceValue  float64   `db:"invoice_value" json:"invoice_value"`
	PlaceOfSupply string    `db:"place_of_supply" json:"place_of_supply"`
	ReverseCharge bool      `db:"reverse_charge" json:"reverse_charge"`
	TaxableValue  float64   `db:"taxable_value" json:"taxable_value"`
	CGST          float64   `db:"cgst" json:"cgst"`
	SGST          float64   `db:"sgst" json:"sgst"`
	IGST          float64   `db:"igst" json:"igst"`
	Cess          float64   `db:"cess" json:"cess"`
	Matched       bool      `db:"matched" json:"matched"`
	ImportedAt    time.Time `db:"imported_at" json:"imported_at"`
}

// GSTR2BRecord is one invoice from the static monthly ITC statement.
type GSTR2BRecord struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TenantID      uuid.UUID `db:"tenant_id" json:"tenant_id"`
	FilingPeriod  string    `db:"filing_period" json:"filing_period"`
	SupplierGSTIN string    `db:"supplier_gstin" json:"supplier_gstin"`
	SupplierName  string    `db:"supplier_name" json:"supplier_name"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   string    `db:"invoice_date" json:"invoice_date"`
	InvoiceValue  float64   `db:"invoice_value" json:"invoice_value"`
	TaxableValue  float64   `db:"taxable_value" json:"taxable_value"`
	CGST          float64   `db:"cgst" json:"cgst"`
	SGST          float64   `db:"sgst" json:"sgst"`
	IGST          float64   `db:"igst" json:"igst"`
	ITCAvailable  float64   `db:"itc_available" json:"itc_available"`
	ImportedAt    time.Time `db:"imported_at" json:"imported_at"`
}

// EInvoice is a (simulated) IRN registration for a sale.
type EInvoice struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	TenantID      uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	SaleID        uuid.UUID      `db:"sale_id" json:"sale_id"`
	InvoiceNumber string         `db:"invoice_number" json:"invoice_number"`
	IRN           string         `db:"irn" json:"irn"`
	AckNumber     string         `db:"ack_number" json:"ack_number"`
	AckDate       time.Time      `db:"ack_date" json:"ack_date"`
	SignedQRCode  string         `db:"signed_qr_code" json:"signed_qr_code"`
	Status        EInvoiceStatus `db:"status" json:"status"`
	CancelReason  string         `db:"cancel_reason" json:"cancel_reason"`
	CancelledAt   *time.Time     `db:"cancelled_at" json:"cancelled_at"`
	CreatedBy     uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// Notification is an outbound message queued for delivery.
type Notification struct {
	ID             uuid.UUID           `db:"id" json:"id"`
	TenantID       uuid.UUID           `db:"tenant_id" json:"tenant_id"`
	Type           NotificationType    `db:"type" json:"type"`
	Channel        NotificationChannel `db:"channel" json:"channel"`
	RecipientID    *uuid.UUID          `db:"recipient_id" json:"recipient_id"`
	RecipientEmail string              `db:"recipient_email" json:"recipient_email"`
	Subject        string              `db:"subject" json:"subject"`
	Message        string              `db:"message" json:"message"`
	Status         NotificationStatus  `db:"status" json:"status"`
	Attempts       int                 `db:"attempts" json:"attempts"`
	LastError      string              `db:"last_error" json:"last_error"`
	SentAt         *time.Time          `db:"sent_at" json:"sent_at"`
	CreatedAt      time.Time           `db:"created_at" json:"created_at"`
}

// NotificationStats summarises delivery.
type NotificationStats struct {
	TotalSent    int            `json:"total_sent"`
	SentToday    int            `json:"sent_today"`
	FailedCount  int            `json:"failed_count"`
	PendingCount int            `json:"pending_count"`
	ByType       map[string]int `json:"by_type"`
}

// GSTReturnImport records an uploaded GSTR-2A/2B file archived in object storage.
type GSTReturnImport struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantID     uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	Kind         ReturnKind `db:"kind" json:"kind"`
	FilingPeriod string     `db:"filing_period" json:"filing_period"`
	ObjectKey    string     `db:"object_key" json:"object_key"`
	FileName     string     `db:"file_name" json:"file_name"`
	RecordCount  int        `db:"record_count" json:"record_count"`
	ImportedBy   uuid.UUID  `db:"imported_by" json:"imported_by"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	DownloadURL  string     `db:"-" json:"download_url,omitempty"`
}

// Barcode is the label code assigned to a product. A product has at most one.
// QRData holds the JSON encoded QR content for QR labels.
type Barcode struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	TenantID    uuid.UUID   `db:"tenant_id" json:"tenant_id"`
	ProductID   uuid.UUID   `db:"product_id" json:"product_id"`
	ProductName string      `db:"product_name" json:"product_name"`
	Type        BarcodeType `db:"barcode_type" json:"barcode_type"`
	Value       string      `db:"barcode_value" json:"barcode_value"`
	QRData      string      `db:"qr_data" json:"qr_data,omitempty"`
	CreatedBy   uuid.UUID   `db:"created_by" json:"created_by"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}
