// Package reconcile matches GSTR-2A supplier invoices against the business's
// purchase orders for a filing period and summarises input tax credit from
// GSTR-2B.
package reconcile

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
)

// MatchTolerance is the absolute rupee difference below which an invoice value
// and a purchase order total are considered equal.
const MatchTolerance = 1.0

// DefaultDiscrepancyLimit caps the discrepancies returned in a report.
const DefaultDiscrepancyLimit = 20

// DiscrepancyUnmatched2A marks a 2A invoice with no matching purchase order.
const DiscrepancyUnmatched2A = "unmatched_gstr2a"

// PurchaseScope selects which purchase orders take part in matching.
type PurchaseScope string

const (
	// ScopeAll matches against every purchase order of the business.
	ScopeAll PurchaseScope = "all"
	// ScopePeriod matches only purchase orders dated in the filing month.
	ScopePeriod PurchaseScope = "period"
)

var filingPeriodRe = regexp.MustCompile(`^\d{2}\d{4}$`)

// FilingPeriod is a parsed MMYYYY return period.
type FilingPeriod struct {
	Month int
	Year  int
}

// ParseFilingPeriod validates an MMYYYY string.
func ParseFilingPeriod(s string) (FilingPeriod, error) {
	if !filingPeriodRe.MatchString(s) {
		return FilingPeriod{}, fmt.Errorf("%w: %q", domain.ErrInvalidFilingPeriod, s)
	}
	month, _ := strconv.Atoi(s[:2])
	year, _ := strconv.Atoi(s[2:])
	if month < 1 || month > 12 {
		return FilingPeriod{}, fmt.Errorf("%w: month %02d", domain.ErrInvalidFilingPeriod, month)
	}
	return FilingPeriod{Month: month, Year: year}, nil
}

// String formats the period back to MMYYYY.
func (p FilingPeriod) String() string {
	return fmt.Sprintf("%02d%04d", p.Month, p.Year)
}

// Bounds returns the half-open UTC interval [start, end) covering the month.
func (p FilingPeriod) Bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether t falls within the filing month.
func (p FilingPeriod) Contains(t time.Time) bool {
	start, end := p.Bounds()
	t = t.UTC()
	return !t.Before(start) && t.Before(end)
}

// Discrepancy is a reconciliation finding.
type Discrepancy struct {
	Type          string  `json:"type"`
	SupplierGSTIN string  `json:"supplier_gstin"`
	InvoiceNumber string  `json:"invoice_number"`
	Amount        float64 `json:"amount"`
	Reason        string  `json:"reason"`
}

// OutOfPeriodMatch is a 2A invoice matched to a purchase order dated outside
// the filing month.
type OutOfPeriodMatch struct {
	InvoiceNumber string    `json:"invoice_number"`
	SupplierGSTIN string    `json:"supplier_gstin"`
	PONumber      string    `json:"po_number"`
	OrderDate     time.Time `json:"order_date"`
}

// Report is the reconciliation summary for one filing period.
type Report struct {
	FilingPeriod       string             `json:"filing_period"`
	PurchaseScope      PurchaseScope      `json:"purchase_scope"`
	GSTR2ACount        int                `json:"gstr2a_count"`
	GSTR2BCount        int                `json:"gstr2b_count"`
	PurchaseCount      int                `json:"purchase_count"`
	MatchedCount       int                `json:"matched_count"`
	UnmatchedCount     int                `json:"unmatched_count"`
	TotalGSTR2AValue   float64            `json:"total_gstr2a_value"`
	TotalPurchaseValue float64            `json:"total_purchase_value"`
	VarianceAmount     float64            `json:"variance_amount"`
	ITCClaimable       float64            `json:"itc_claimable"`
	ITCNotClaimable    float64            `json:"itc_not_claimable"`
	DiscrepancyCount   int                `json:"discrepancy_count"`
	Discrepancies      []Discrepancy      `json:"discrepancies"`
	OutOfPeriodMatches []OutOfPeriodMatch `json:"out_of_period_matches"`
	// MatchedIDs are the 2A record ids to flag as matched.
	MatchedIDs []uuid.UUID `json:"-"`
}

// Options tunes a reconciliation run.
type Options struct {
	Scope            PurchaseScope
	DiscrepancyLimit int
}

func normGSTIN(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Match reconciles the period's 2A and 2B records against purchase orders.
// A 2A record matches the first purchase order from the same supplier GSTIN
// whose grand total is within MatchTolerance of the invoice value. A purchase
// order may satisfy several records.
func Match(period FilingPeriod, r2a []domain.GSTR2ARecord, r2b []domain.GSTR2BRecord, purchases []domain.PurchaseOrder, opts Options) *Report {
	if opts.Scope == "" {
		opts.Scope = ScopeAll
	}
	if opts.DiscrepancyLimit <= 0 {
		opts.DiscrepancyLimit = DefaultDiscrepancyLimit
	}

	pos := purchases
	if opts.Scope == ScopePeriod {
		pos = make([]domain.PurchaseOrder, 0, len(purchases))
		for i := range purchases {
			if period.Contains(purchases[i].OrderDate) {
				pos = append(pos, purchases[i])
			}
		}
	}

	rep := &Report{
		FilingPeriod:       period.String(),
		PurchaseScope:      opts.Scope,
		GSTR2ACount:        len(r2a),
		GSTR2BCount:        len(r2b),
		PurchaseCount:      len(pos),
		Discrepancies:      []Discrepancy{},
		OutOfPeriodMatches: []OutOfPeriodMatch{},
	}

	var discrepancies []Discrepancy
	values2A := make([]float64, 0, len(r2a))
	for i := range r2a {
		rec := &r2a[i]
		values2A = append(values2A, rec.InvoiceValue)

		po := findMatch(rec, pos)
		if po == nil {
			discrepancies = append(discrepancies, Discrepancy{
				Type:          DiscrepancyUnmatched2A,
				SupplierGSTIN: rec.SupplierGSTIN,
				InvoiceNumber: rec.InvoiceNumber,
				Amount:        rec.InvoiceValue,
				Reason:        "No matching purchase found",
			})
			continue
		}
		rep.MatchedCount++
		rep.MatchedIDs = append(rep.MatchedIDs, rec.ID)
		if !period.Contains(po.OrderDate) {
			rep.OutOfPeriodMatches = append(rep.OutOfPeriodMatches, OutOfPeriodMatch{
				InvoiceNumber: rec.InvoiceNumber,
				SupplierGSTIN: rec.SupplierGSTIN,
				PONumber:      po.PONumber,
				OrderDate:     po.OrderDate,
			})
		}
	}
	rep.UnmatchedCount = len(r2a) - rep.MatchedCount

	poValues := make([]float64, 0, len(pos))
	for i := range pos {
		poValues = append(poValues, pos[i].GrandTotal)
	}
	itc := make([]float64, 0, len(r2b))
	for i := range r2b {
		itc = append(itc, r2b[i].ITCAvailable)
	}

	total2A := money.Sum(values2A...)
	totalPO := money.Sum(poValues...)
	claimable := money.Sum(itc...)

	rep.TotalGSTR2AValue = money.Round(total2A)
	rep.TotalPurchaseValue = money.Round(totalPO)
	rep.VarianceAmount = money.Round(math.Abs(money.Sum(total2A, -totalPO)))
	rep.ITCClaimable = money.Round(claimable)
	rep.ITCNotClaimable = money.Round(money.Sum(total2A, -claimable))

	rep.DiscrepancyCount = len(discrepancies)
	if len(discrepancies) > opts.DiscrepancyLimit {
		discrepancies = discrepancies[:opts.DiscrepancyLimit]
	}
	if discrepancies != nil {
		rep.Discrepancies = discrepancies
	}
	return rep
}

func findMatch(rec *domain.GSTR2ARecord, pos []domain.PurchaseOrder) *domain.PurchaseOrder {
	gstin := normGSTIN(rec.SupplierGSTIN)
	for i := range pos {
		po := &pos[i]
		if normGSTIN(po.SupplierGSTIN) != gstin {
			continue
		}
		if math.Abs(money.Sum(po.GrandTotal, -rec.InvoiceValue)) < MatchTolerance {
			return po
		}
	}
	return nil
}
