// Package gstreport builds the GST filing views (GSTR-1, HSN summary, GSTR-3B
// and the ITC reconciliation) from already-fetched sales and purchase
// snapshots. Builders never touch storage.
package gstreport

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/tax"
)

// DefaultUQC is the unit quantity code reported for jewellery pieces.
const DefaultUQC = "NOS"

// Period is the inclusive ISO date window a report covers.
type Period struct {
	From string `json:"period_from"`
	To   string `json:"period_to"`
}

// B2BInvoice is a GSTR-1 row for a GST-registered buyer.
type B2BInvoice struct {
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	CustomerName  string  `json:"customer_name"`
	CustomerGSTIN string  `json:"customer_gstin"`
	CustomerState string  `json:"customer_state"`
	InvoiceValue  float64 `json:"invoice_value"`
	TaxableValue  float64 `json:"taxable_value"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	TotalTax      float64 `json:"total_tax"`
}

// B2CInvoice is a GSTR-1 row for an unregistered buyer.
type B2CInvoice struct {
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	CustomerState string  `json:"customer_state"`
	InvoiceValue  float64 `json:"invoice_value"`
	TaxableValue  float64 `json:"taxable_value"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	TotalTax      float64 `json:"total_tax"`
}

// GSTR1 is the outward supplies return.
type GSTR1 struct {
	Period
	B2BInvoices       []B2BInvoice `json:"b2b_invoices"`
	B2CInvoices       []B2CInvoice `json:"b2c_invoices"`
	InvoiceCount      int          `json:"invoice_count"`
	B2BCount          int          `json:"b2b_count"`
	B2CCount          int          `json:"b2c_count"`
	TotalTaxableValue float64      `json:"total_taxable_value"`
	TotalCGST         float64      `json:"total_cgst"`
	TotalSGST         float64      `json:"total_sgst"`
	TotalIGST         float64      `json:"total_igst"`
	TotalTax          float64      `json:"total_tax"`
	TotalInvoiceValue float64      `json:"total_invoice_value"`
}

// HSNItem is one HSN code's aggregate.
type HSNItem struct {
	HSNCode       string  `json:"hsn_code"`
	Description   string  `json:"description"`
	UQC           string  `json:"uqc"`
	TotalQuantity int     `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
	TaxableValue  float64 `json:"taxable_value"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	TotalTax      float64 `json:"total_tax"`
}

// HSNSummary is the HSN-wise summary of outward supplies.
type HSNSummary struct {
	Period
	Items             []HSNItem `json:"items"`
	TotalTaxableValue float64   `json:"total_taxable_value"`
	TotalTax          float64   `json:"total_tax"`
}

// GSTR3B is the monthly summary return.
type GSTR3B struct {
	Period
	OutwardTaxableSupplies float64 `json:"outward_taxable_supplies"`
	OutwardTaxAmount       float64 `json:"outward_tax_amount"`
	OutwardCGST            float64 `json:"outward_cgst"`
	OutwardSGST            float64 `json:"outward_sgst"`
	OutwardIGST            float64 `json:"outward_igst"`
	InwardTaxableSupplies  float64 `json:"inward_taxable_supplies"`
	InwardTaxAmount        float64 `json:"inward_tax_amount"`
	ITCCGST                float64 `json:"itc_cgst"`
	ITCSGST                float64 `json:"itc_sgst"`
	ITCIGST                float64 `json:"itc_igst"`
	NetCGST                float64 `json:"net_cgst"`
	NetSGST                float64 `json:"net_sgst"`
	NetIGST                float64 `json:"net_igst"`
	NetTaxPayable          float64 `json:"net_tax_payable"`
}

// ITCReconciliation restates GSTR-3B with sales and purchase totals.
type ITCReconciliation struct {
	Period
	ITCAvailableCGST  float64 `json:"itc_available_cgst"`
	ITCAvailableSGST  float64 `json:"itc_available_sgst"`
	ITCAvailableIGST  float64 `json:"itc_available_igst"`
	TotalITCAvailable float64 `json:"total_itc_available"`
	OutputCGST        float64 `json:"output_cgst"`
	OutputSGST        float64 `json:"output_sgst"`
	OutputIGST        float64 `json:"output_igst"`
	TotalOutputTax    float64 `json:"total_output_tax"`
	NetCGST           float64 `json:"net_cgst"`
	NetSGST           float64 `json:"net_sgst"`
	NetIGST           float64 `json:"net_igst"`
	NetTaxPayable     float64 `json:"net_tax_payable"`
	TotalPurchases    float64 `json:"total_purchases"`
	TotalSales        float64 `json:"total_sales"`
}

func invoiceDate(s *domain.Sale) string {
	return s.CreatedAt.Format("2006-01-02")
}

// BuildGSTR1 splits sales into B2B and B2C rows and totals them.
func BuildGSTR1(p Period, sales []domain.Sale) *GSTR1 {
	r := &GSTR1{
		Period:      p,
		B2BInvoices: []B2BInvoice{},
		B2CInvoices: []B2CInvoice{},
	}

	var taxable, cgst, sgst, igst, value []float64
	for i := range sales {
		s := &sales[i]
		taxable = append(taxable, s.Subtotal)
		cgst = append(cgst, s.CGST)
		sgst = append(sgst, s.SGST)
		igst = append(igst, s.IGST)
		value = append(value, s.GrandTotal)

		if s.IsB2B() {
			r.B2BInvoices = append(r.B2BInvoices, B2BInvoice{
				InvoiceNumber: s.InvoiceNumber,
				InvoiceDate:   invoiceDate(s),
				CustomerName:  s.CustomerName,
				CustomerGSTIN: s.CustomerGSTIN,
				CustomerState: s.CustomerState,
				InvoiceValue:  s.GrandTotal,
				TaxableValue:  s.Subtotal,
				CGST:          s.CGST,
				SGST:          s.SGST,
				IGST:          s.IGST,
				TotalTax:      s.TotalTax,
			})
			continue
		}
		r.B2CInvoices = append(r.B2CInvoices, B2CInvoice{
			InvoiceNumber: s.InvoiceNumber,
			InvoiceDate:   invoiceDate(s),
			CustomerState: s.CustomerState,
			InvoiceValue:  s.GrandTotal,
			TaxableValue:  s.Subtotal,
			CGST:          s.CGST,
			SGST:          s.SGST,
			IGST:          s.IGST,
			TotalTax:      s.TotalTax,
		})
	}

	r.InvoiceCount = len(sales)
	r.B2BCount = len(r.B2BInvoices)
	r.B2CCount = len(r.B2CInvoices)
	r.TotalTaxableValue = money.Round(money.Sum(taxable...))
	r.TotalCGST = money.Round(money.Sum(cgst...))
	r.TotalSGST = money.Round(money.Sum(sgst...))
	r.TotalIGST = money.Round(money.Sum(igst...))
	r.TotalTax = money.Round(money.Sum(r.TotalCGST, r.TotalSGST, r.TotalIGST))
	r.TotalInvoiceValue = money.Round(money.Sum(value...))
	return r
}

func scale(v, share float64) float64 {
	f, _ := decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(share)).Float64()
	return f
}

type hsnAcc struct {
	description string
	quantity    int
	value       []float64
	taxable     []float64
	cgst        []float64
	sgst        []float64
	igst        []float64
}

// BuildHSNSummary groups sale lines by HSN code. A sale's tax components are
// apportioned to its lines by each line's share of the sale subtotal, which
// approximates per-line tax when lines carry different rates.
func BuildHSNSummary(p Period, sales []domain.Sale) *HSNSummary {
	acc := map[string]*hsnAcc{}
	for i := range sales {
		s := &sales[i]
		for _, it := range s.Items {
			a, ok := acc[it.HSNCode]
			if !ok {
				a = &hsnAcc{}
				acc[it.HSNCode] = a
			}
			if a.description == "" {
				a.description = it.ProductName
			}
			share := money.Share(it.TotalBeforeTax, s.Subtotal)
			a.quantity += it.Quantity
			a.value = append(a.value, it.TotalAfterTax)
			a.taxable = append(a.taxable, it.TotalBeforeTax)
			a.cgst = append(a.cgst, scale(s.CGST, share))
			a.sgst = append(a.sgst, scale(s.SGST, share))
			a.igst = append(a.igst, scale(s.IGST, share))
		}
	}

	codes := make([]string, 0, len(acc))
	for code := range acc {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	r := &HSNSummary{Period: p, Items: make([]HSNItem, 0, len(codes))}
	var totalTaxable, totalTax []float64
	for _, code := range codes {
		a := acc[code]
		cgst := money.Sum(a.cgst...)
		sgst := money.Sum(a.sgst...)
		igst := money.Sum(a.igst...)
		taxAmt := money.Sum(cgst, sgst, igst)
		taxable := money.Sum(a.taxable...)
		totalTaxable = append(totalTaxable, taxable)
		totalTax = append(totalTax, taxAmt)

		r.Items = append(r.Items, HSNItem{
			HSNCode:       code,
			Description:   a.description,
			UQC:           DefaultUQC,
			TotalQuantity: a.quantity,
			TotalValue:    money.Round(money.Sum(a.value...)),
			TaxableValue:  money.Round(taxable),
			CGST:          money.Round(cgst),
			SGST:          money.Round(sgst),
			IGST:          money.Round(igst),
			TotalTax:      money.Round(taxAmt),
		})
	}
	r.TotalTaxableValue = money.Round(money.Sum(totalTaxable...))
	r.TotalTax = money.Round(money.Sum(totalTax...))
	return r
}

// BuildGSTR3B nets outward tax against input tax credit from received
// purchases. Purchase tax is split using the supplier's state; supplierStates
// overrides the state snapshot stored on the order when present. Net figures
// are floored at zero per component.
func BuildGSTR3B(p Period, sales []domain.Sale, purchases []domain.PurchaseOrder, supplierStates map[uuid.UUID]string, businessState string) *GSTR3B {
	var outTaxable, outCGST, outSGST, outIGST []float64
	for i := range sales {
		s := &sales[i]
		outTaxable = append(outTaxable, s.Subtotal)
		outCGST = append(outCGST, s.CGST)
		outSGST = append(outSGST, s.SGST)
		outIGST = append(outIGST, s.IGST)
	}

	var inTaxable, itcCGST, itcSGST, itcIGST []float64
	for i := range purchases {
		po := &purchases[i]
		state := po.SupplierState
		if st, ok := supplierStates[po.SupplierID]; ok {
			state = st
		}
		split := tax.SplitTax(po.GSTTotal, state, businessState)
		inTaxable = append(inTaxable, po.Subtotal)
		itcCGST = append(itcCGST, split.CGST)
		itcSGST = append(itcSGST, split.SGST)
		itcIGST = append(itcIGST, split.IGST)
	}

	oc, os, oi := money.Sum(outCGST...), money.Sum(outSGST...), money.Sum(outIGST...)
	ic, is, ii := money.Sum(itcCGST...), money.Sum(itcSGST...), money.Sum(itcIGST...)
	nc := money.NonNegative(money.Sum(oc, -ic))
	ns := money.NonNegative(money.Sum(os, -is))
	ni := money.NonNegative(money.Sum(oi, -ii))

	return &GSTR3B{
		Period:                 p,
		OutwardTaxableSupplies: money.Round(money.Sum(outTaxable...)),
		OutwardTaxAmount:       money.Round(money.Sum(oc, os, oi)),
		OutwardCGST:            money.Round(oc),
		OutwardSGST:            money.Round(os),
		OutwardIGST:            money.Round(oi),
		InwardTaxableSupplies:  money.Round(money.Sum(inTaxable...)),
		InwardTaxAmount:        money.Round(money.Sum(ic, is, ii)),
		ITCCGST:                money.Round(ic),
		ITCSGST:                money.Round(is),
		ITCIGST:                money.Round(ii),
		NetCGST:                money.Round(nc),
		NetSGST:                money.Round(ns),
		NetIGST:                money.Round(ni),
		NetTaxPayable:          money.Round(money.Sum(nc, ns, ni)),
	}
}

// BuildITCReconciliation restates a GSTR-3B alongside sales and purchase totals.
func BuildITCReconciliation(g *GSTR3B, sales []domain.Sale, purchases []domain.PurchaseOrder) *ITCReconciliation {
	saleTotals := make([]float64, 0, len(sales))
	for i := range sales {
		saleTotals = append(saleTotals, sales[i].GrandTotal)
	}
	poTotals := make([]float64, 0, len(purchases))
	for i := range purchases {
		poTotals = append(poTotals, purchases[i].GrandTotal)
	}

	return &ITCReconciliation{
		Period:            g.Period,
		ITCAvailableCGST:  g.ITCCGST,
		ITCAvailableSGST:  g.ITCSGST,
		ITCAvailableIGST:  g.ITCIGST,
		TotalITCAvailable: g.InwardTaxAmount,
		OutputCGST:        g.OutwardCGST,
		OutputSGST:        g.OutwardSGST,
		OutputIGST:        g.OutwardIGST,
		TotalOutputTax:    g.OutwardTaxAmount,
		NetCGST:           g.NetCGST,
		NetSGST:           g.NetSGST,
		NetIGST:           g.NetIGST,
		NetTaxPayable:     g.NetTaxPayable,
		TotalPurchases:    money.Round(money.Sum(poTotals...)),
		TotalSales:        money.Round(money.Sum(saleTotals...)),
	}
}
