package gstreport_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/gstreport"
)

var period = gstreport.Period{From: "2025-01-01", To: "2025-01-31"}

func sampleSales() []domain.Sale {
	day := time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC)
	return []domain.Sale{
		{
			InvoiceNumber: "INV-2025-00001",
			CustomerName:  "Asha Traders",
			CustomerGSTIN: "27AAPFU0939F1ZV",
			CustomerState: "Maharashtra",
			Subtotal:      10000,
			CGST:          150,
			SGST:          150,
			TotalTax:      300,
			GrandTotal:    10300,
			CreatedAt:     day,
			Items: []domain.SaleItem{
				{ProductName: "Gold Ring", HSNCode: "71131910", Quantity: 1, TotalBeforeTax: 6000, TotalAfterTax: 6180},
				{ProductName: "Gold Chain", HSNCode: "71131920", Quantity: 2, TotalBeforeTax: 4000, TotalAfterTax: 4120},
			},
		},
		{
			InvoiceNumber: "INV-2025-00002",
			CustomerName:  "Walk-in",
			CustomerState: "Karnataka",
			Subtotal:      5000,
			IGST:          150,
			TotalTax:      150,
			GrandTotal:    5150,
			CreatedAt:     day.Add(24 * time.Hour),
			Items: []domain.SaleItem{
				{ProductName: "Gold Earring", HSNCode: "71131910", Quantity: 1, TotalBeforeTax: 5000, TotalAfterTax: 5150},
			},
		},
	}
}

func TestBuildGSTR1(t *testing.T) {
	r := gstreport.BuildGSTR1(period, sampleSales())

	require.Len(t, r.B2BInvoices, 1)
	require.Len(t, r.B2CInvoices, 1)
	assert.Equal(t, 2, r.InvoiceCount)
	assert.Equal(t, 1, r.B2BCount)
	assert.Equal(t, 1, r.B2CCount)

	b2b := r.B2BInvoices[0]
	assert.Equal(t, "27AAPFU0939F1ZV", b2b.CustomerGSTIN)
	assert.Equal(t, "2025-01-15", b2b.InvoiceDate)
	assert.Equal(t, 10300.0, b2b.InvoiceValue)

	assert.Equal(t, "Karnataka", r.B2CInvoices[0].CustomerState)
	assert.Equal(t, 15000.0, r.TotalTaxableValue)
	assert.Equal(t, 150.0, r.TotalCGST)
	assert.Equal(t, 150.0, r.TotalSGST)
	assert.Equal(t, 150.0, r.TotalIGST)
	assert.Equal(t, 450.0, r.TotalTax)
	assert.Equal(t, 15450.0, r.TotalInvoiceValue)
}

func TestBuildGSTR1_Empty(t *testing.T) {
	r := gstreport.BuildGSTR1(period, nil)

	assert.NotNil(t, r.B2BInvoices)
	assert.NotNil(t, r.B2CInvoices)
	assert.Equal(t, 0, r.InvoiceCount)
	assert.Equal(t, 0.0, r.TotalTax)
}

func TestBuildHSNSummary_ProportionalTax(t *testing.T) {
	r := gstreport.BuildHSNSummary(period, sampleSales())

	require.Len(t, r.Items, 2)
	assert.Equal(t, "71131910", r.Items[0].HSNCode)
	assert.Equal(t, "71131920", r.Items[1].HSNCode)

	ring := r.Items[0]
	assert.Equal(t, "Gold Ring", ring.Description)
	assert.Equal(t, gstreport.DefaultUQC, ring.UQC)
	assert.Equal(t, 2, ring.TotalQuantity)
	assert.Equal(t, 11000.0, ring.TaxableValue)
	assert.Equal(t, 11330.0, ring.TotalValue)
	// 60% of the first sale's 150/150 split plus all of the second sale's IGST
	assert.Equal(t, 90.0, ring.CGST)
	assert.Equal(t, 90.0, ring.SGST)
	assert.Equal(t, 150.0, ring.IGST)
	assert.Equal(t, 330.0, ring.TotalTax)

	chain := r.Items[1]
	assert.Equal(t, 60.0, chain.CGST)
	assert.Equal(t, 60.0, chain.SGST)
	assert.Equal(t, 0.0, chain.IGST)

	assert.Equal(t, 15000.0, r.TotalTaxableValue)
	assert.Equal(t, 450.0, r.TotalTax)
}

func TestBuildHSNSummary_ZeroSubtotal(t *testing.T) {
	sales := []domain.Sale{{
		Subtotal: 0,
		CGST:     10,
		Items:    []domain.SaleItem{{HSNCode: "7113", Quantity: 1}},
	}}
	r := gstreport.BuildHSNSummary(period, sales)

	require.Len(t, r.Items, 1)
	assert.Equal(t, 0.0, r.Items[0].CGST)
}

func TestBuildGSTR3B(t *testing.T) {
	supplierID := uuid.New()
	purchases := []domain.PurchaseOrder{
		{SupplierID: supplierID, SupplierState: "Gujarat", Subtotal: 4000, GSTTotal: 120, GrandTotal: 4120},
	}

	tests := []struct {
		name     string
		states   map[uuid.UUID]string
		wantITC  [3]float64
		wantNet  [3]float64
		wantDues float64
	}{
		{
			name:     "inter-state supplier from order snapshot",
			states:   nil,
			wantITC:  [3]float64{0, 0, 120},
			wantNet:  [3]float64{150, 150, 30},
			wantDues: 330,
		},
		{
			name:     "intra-state supplier from current supplier record",
			states:   map[uuid.UUID]string{supplierID: "maharashtra"},
			wantITC:  [3]float64{60, 60, 0},
			wantNet:  [3]float64{90, 90, 150},
			wantDues: 330,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gstreport.BuildGSTR3B(period, sampleSales(), purchases, tt.states, "Maharashtra")

			assert.Equal(t, 15000.0, r.OutwardTaxableSupplies)
			assert.Equal(t, 450.0, r.OutwardTaxAmount)
			assert.Equal(t, 4000.0, r.InwardTaxableSupplies)
			assert.Equal(t, 120.0, r.InwardTaxAmount)
			assert.Equal(t, tt.wantITC, [3]float64{r.ITCCGST, r.ITCSGST, r.ITCIGST})
			assert.Equal(t, tt.wantNet, [3]float64{r.NetCGST, r.NetSGST, r.NetIGST})
			assert.Equal(t, tt.wantDues, r.NetTaxPayable)
		})
	}
}

func TestBuildGSTR3B_NetNeverNegative(t *testing.T) {
	sales := []domain.Sale{{Subtotal: 1000, CGST: 15, SGST: 15, TotalTax: 30, GrandTotal: 1030}}
	purchases := []domain.PurchaseOrder{
		{SupplierState: "Maharashtra", Subtotal: 50000, GSTTotal: 1500, GrandTotal: 51500},
	}

	r := gstreport.BuildGSTR3B(period, sales, purchases, nil, "Maharashtra")

	assert.Equal(t, 750.0, r.ITCCGST)
	assert.Equal(t, 0.0, r.NetCGST)
	assert.Equal(t, 0.0, r.NetSGST)
	assert.Equal(t, 0.0, r.NetIGST)
	assert.Equal(t, 0.0, r.NetTaxPayable)
}

func TestBuildITCReconciliation(t *testing.T) {
	sales := sampleSales()
	purchases := []domain.PurchaseOrder{
		{SupplierState: "Maharashtra", Subtotal: 4000, GSTTotal: 120, GrandTotal: 4120},
		{SupplierState: "Goa", Subtotal: 1000, GSTTotal: 30, GrandTotal: 1030},
	}
	g := gstreport.BuildGSTR3B(period, sales, purchases, nil, "Maharashtra")

	r := gstreport.BuildITCReconciliation(g, sales, purchases)

	assert.Equal(t, period, r.Period)
	assert.Equal(t, g.InwardTaxAmount, r.TotalITCAvailable)
	assert.Equal(t, g.OutwardTaxAmount, r.TotalOutputTax)
	assert.Equal(t, g.NetTaxPayable, r.NetTaxPayable)
	assert.Equal(t, 15450.0, r.TotalSales)
	assert.Equal(t, 5150.0, r.TotalPurchases)
}
