package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/gstreport"
)

func sampleGSTR1() *gstreport.GSTR1 {
	return &gstreport.GSTR1{
		B2BInvoices: []gstreport.B2BInvoice{{
			InvoiceNumber: "INV-2025-00001",
			InvoiceDate:   "2025-01-15",
			CustomerName:  "Asha Traders, Pune",
			CustomerGSTIN: "27AAPFU0939F1ZV",
			CustomerState: "Maharashtra",
			InvoiceValue:  10300,
			TaxableValue:  10000,
			CGST:          150,
			SGST:          150,
			TotalTax:      300,
		}},
		B2CInvoices: []gstreport.B2CInvoice{{
			InvoiceNumber: "INV-2025-00002",
			InvoiceDate:   "2025-01-16",
			CustomerState: "Karnataka",
			InvoiceValue:  5150,
			TaxableValue:  5000,
			IGST:          150,
			TotalTax:      150,
		}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleGSTR1()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), BOM))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, []string{"B2B", "INV-2025-00001", "2025-01-15", "Asha Traders, Pune", "27AAPFU0939F1ZV", "Maharashtra",
		"10300.00", "10000.00", "150.00", "150.00", "0.00", "300.00"}, rows[1])
	assert.Equal(t, "B2C", rows[2][0])
	assert.Empty(t, rows[2][3])
	assert.Equal(t, "150.00", rows[2][10])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &gstreport.GSTR1{}))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteXLSX(t *testing.T) {
	hsn := &gstreport.HSNSummary{Items: []gstreport.HSNItem{
		{HSNCode: "71131910", Description: "Gold Ring", UQC: "NOS", TotalQuantity: 3, TaxableValue: 15000, TotalTax: 450},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleGSTR1(), hsn))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetB2B, SheetB2C, SheetHSN}, f.GetSheetList())

	b2b, err := f.GetRows(SheetB2B)
	require.NoError(t, err)
	require.Len(t, b2b, 2)
	assert.Equal(t, "Invoice Number", b2b[0][0])
	assert.Equal(t, "27AAPFU0939F1ZV", b2b[1][3])

	b2c, err := f.GetRows(SheetB2C)
	require.NoError(t, err)
	require.Len(t, b2c, 2)
	assert.Equal(t, "Karnataka", b2c[1][2])

	h, err := f.GetRows(SheetHSN)
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, "71131910", h[1][0])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Lakshmi Jewellers", "Lakshmi_Jewellers"},
		{"  A & B / Sons  ", "A_B_Sons"},
		{"already-clean_name", "already-clean_name"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}

func TestBuildFilename(t *testing.T) {
	assert.Equal(t, "Lakshmi_Jewellers_GSTR1_2025-01-01_2025-01-31.csv",
		BuildFilename("Lakshmi Jewellers", "2025-01-01", "2025-01-31", "csv"))
	assert.Equal(t, "business_GSTR1_2025-01-01_2025-01-31.xlsx",
		BuildFilename("!!!", "2025-01-01", "2025-01-31", "xlsx"))
}
