package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGST_IntraState(t *testing.T) {
	items := []LineItem{{TaxAmount: 100}, {TaxAmount: 200}}

	b := ComputeGST(items, "Maharashtra", "Maharashtra")

	assert.Equal(t, 150.0, b.CGST)
	assert.Equal(t, 150.0, b.SGST)
	assert.Equal(t, 0.0, b.IGST)
	assert.Equal(t, 300.0, b.TotalTax)
}

func TestComputeGST_CaseInsensitiveState(t *testing.T) {
	b := ComputeGST([]LineItem{{TaxAmount: 300}}, " maharashtra ", "MAHARASHTRA")
	assert.Equal(t, 150.0, b.CGST)
	assert.Equal(t, 150.0, b.SGST)
	assert.Zero(t, b.IGST)
}

func TestComputeGST_InterState(t *testing.T) {
	b := ComputeGST([]LineItem{{TaxAmount: 300}}, "Karnataka", "Maharashtra")

	assert.Zero(t, b.CGST)
	assert.Zero(t, b.SGST)
	assert.Equal(t, 300.0, b.IGST)
	assert.Equal(t, 300.0, b.TotalTax)
}

func TestComputeGST_MissingStateIsInterState(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		business string
	}{
		{"empty customer", "", "Maharashtra"},
		{"empty business", "Maharashtra", ""},
		{"both empty", "", ""},
		{"whitespace", "   ", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeGST([]LineItem{{TaxAmount: 90}}, tt.customer, tt.business)
			assert.Equal(t, 90.0, b.IGST)
			assert.Zero(t, b.CGST)
			assert.Zero(t, b.SGST)
		})
	}
}

func TestComputeGST_SplitInvariant(t *testing.T) {
	amounts := []float64{0, 0.01, 1.5, 33.33, 1050, 2163.27, 99999.99}
	for _, amt := range amounts {
		intra := ComputeGST([]LineItem{{TaxAmount: amt}}, "Gujarat", "gujarat")
		assert.Equal(t, intra.CGST, intra.SGST, "amount %v", amt)
		assert.Zero(t, intra.IGST)

		inter := ComputeGST([]LineItem{{TaxAmount: amt}}, "Delhi", "Gujarat")
		assert.Zero(t, inter.CGST)
		assert.Zero(t, inter.SGST)
		assert.Equal(t, inter.TotalTax, inter.IGST)
	}
}

func TestComputeGST_NoItems(t *testing.T) {
	b := ComputeGST(nil, "Kerala", "Kerala")
	assert.Equal(t, Breakdown{}, b)
}

func TestComputeGST_RoundsSum(t *testing.T) {
	b := ComputeGST([]LineItem{{TaxAmount: 0.1}, {TaxAmount: 0.2}}, "Goa", "Delhi")
	assert.Equal(t, 0.3, b.IGST)
}

func TestComputeLine(t *testing.T) {
	l := ComputeLine(2, 35000, 3)
	assert.Equal(t, 70000.0, l.TotalBeforeTax)
	assert.Equal(t, 2100.0, l.TaxAmount)
	assert.Equal(t, 72100.0, l.TotalAfterTax)

	l = ComputeLine(1, 999.99, 3)
	assert.Equal(t, 999.99, l.TotalBeforeTax)
	assert.Equal(t, 30.0, l.TaxAmount)
	assert.Equal(t, 1029.99, l.TotalAfterTax)
}

func TestSellingPrice(t *testing.T) {
	assert.Equal(t, 36050.00, SellingPrice(35000, 3))
	assert.Equal(t, 1000.0, SellingPrice(1000, 0))
	assert.Equal(t, 118.0, SellingPrice(100, 18))
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, IsLowStock(5, 5))
	assert.True(t, IsLowStock(0, 5))
	assert.False(t, IsLowStock(6, 5))
}

func TestGrandTotal_Identity(t *testing.T) {
	b := ComputeGST([]LineItem{{TaxAmount: 1050}}, "Maharashtra", "Maharashtra")
	assert.Equal(t, 36050.0, GrandTotal(35000, b))

	b = ComputeGST([]LineItem{{TaxAmount: 0.15}}, "Delhi", "Maharashtra")
	assert.Equal(t, 5.15, GrandTotal(5, b))
}

func TestGrandTotal_OddPaiseIntraState(t *testing.T) {
	line := ComputeLine(1, 10000.33, 3)
	b := ComputeGST([]LineItem{{TaxAmount: line.TaxAmount}}, "Maharashtra", "Maharashtra")

	assert.Equal(t, 300.01, b.TotalTax)
	assert.Equal(t, 150.01, b.CGST)
	assert.Equal(t, 150.01, b.SGST)
	assert.Equal(t, 10300.34, GrandTotal(line.TotalBeforeTax, b))
	assert.Equal(t, line.TotalAfterTax, GrandTotal(line.TotalBeforeTax, b))
}
