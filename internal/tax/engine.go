// Package tax implements the GST arithmetic shared by sales, purchases and the
// filing reports. Every function is pure; the business (home) state is always
// passed in by the caller.
package tax

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
)

// LineItem is the minimum a line must carry for GST aggregation.
type LineItem struct {
	TaxAmount float64
}

// Breakdown is the GST split of a document.
type Breakdown struct {
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	IGST     float64 `json:"igst"`
	TotalTax float64 `json:"total_tax"`
}

// Line holds the computed amounts of one priced line.
type Line struct {
	TotalBeforeTax float64 `json:"total_before_tax"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAfterTax  float64 `json:"total_after_tax"`
}

// IsIntraState reports whether a supply between the two states is intra-state.
// Blank states never match, so a missing state is treated as inter-state.
func IsIntraState(partyState, businessState string) bool {
	a := strings.TrimSpace(partyState)
	b := strings.TrimSpace(businessState)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}

// ComputeGST sums the tax of all items and splits it into CGST+SGST for an
// intra-state supply or IGST otherwise.
func ComputeGST(items []LineItem, customerState, businessState string) Breakdown {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(it.TaxAmount))
	}
	t, _ := total.Float64()
	return SplitTax(t, customerState, businessState)
}

// SplitTax splits an already-summed tax amount.
func SplitTax(totalTax float64, partyState, businessState string) Breakdown {
	total := decimal.NewFromFloat(totalTax)
	if IsIntraState(partyState, businessState) {
		half, _ := total.Div(decimal.NewFromInt(2)).Round(money.Places).Float64()
		return Breakdown{
			CGST:     half,
			SGST:     half,
			TotalTax: money.Round(totalTax),
		}
	}
	rounded := money.Round(totalTax)
	return Breakdown{IGST: rounded, TotalTax: rounded}
}

// ComputeLine prices a line of quantity units at unitPrice with gstRate percent.
func ComputeLine(quantity, unitPrice, gstRate float64) Line {
	before := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice)).Round(money.Places)
	taxAmt := before.Mul(decimal.NewFromFloat(gstRate)).Div(decimal.NewFromInt(100)).Round(money.Places)
	b, _ := before.Float64()
	t, _ := taxAmt.Float64()
	a, _ := before.Add(taxAmt).Float64()
	return Line{TotalBeforeTax: b, TaxAmount: t, TotalAfterTax: a}
}

// SellingPrice is the GST-inclusive price derived from a base price.
func SellingPrice(basePrice, gstRate float64) float64 {
	base := decimal.NewFromFloat(basePrice)
	gst := base.Mul(decimal.NewFromFloat(gstRate)).Div(decimal.NewFromInt(100))
	f, _ := base.Add(gst).Round(money.Places).Float64()
	return f
}

// IsLowStock reports whether quantity has reached the low-stock threshold.
func IsLowStock(quantity, threshold int) bool {
	return quantity <= threshold
}

// GrandTotal returns round(subtotal + total_tax). The CGST and SGST halves are
// rounded separately and may sum to one paisa more than TotalTax on an odd-paise
// total, so they are never added back in.
func GrandTotal(subtotal float64, b Breakdown) float64 {
	return money.Round(money.Sum(subtotal, b.TotalTax))
}
