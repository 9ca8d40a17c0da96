package csvexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/gstreport"
)

// Sheet names of the GSTR-1 workbook.
const (
	SheetB2B = "B2B"
	SheetB2C = "B2C"
	SheetHSN = "HSN"
)

var (
	b2bHeader = []any{"Invoice Number", "Invoice Date", "Customer Name", "Customer GSTIN", "Customer State", "Invoice Value", "Taxable Value", "CGST", "SGST", "IGST", "Total Tax"}
	b2cHeader = []any{"Invoice Number", "Invoice Date", "Customer State", "Invoice Value", "Taxable Value", "CGST", "SGST", "IGST", "Total Tax"}
	hsnHeader = []any{"HSN Code", "Description", "UQC", "Total Quantity", "Total Value", "Taxable Value", "CGST", "SGST", "IGST", "Total Tax"}
)

// WriteXLSX writes a workbook with B2B, B2C and HSN sheets to out.
func WriteXLSX(out io.Writer, r *gstreport.GSTR1, hsn *gstreport.HSNSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetB2B); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetB2C, SheetHSN} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	b2b := make([][]any, 0, len(r.B2BInvoices)+1)
	b2b = append(b2b, b2bHeader)
	for _, inv := range r.B2BInvoices {
		b2b = append(b2b, []any{inv.InvoiceNumber, inv.InvoiceDate, inv.CustomerName, inv.CustomerGSTIN, inv.CustomerState,
			inv.InvoiceValue, inv.TaxableValue, inv.CGST, inv.SGST, inv.IGST, inv.TotalTax})
	}
	b2c := make([][]any, 0, len(r.B2CInvoices)+1)
	b2c = append(b2c, b2cHeader)
	for _, inv := range r.B2CInvoices {
		b2c = append(b2c, []any{inv.InvoiceNumber, inv.InvoiceDate, inv.CustomerState,
			inv.InvoiceValue, inv.TaxableValue, inv.CGST, inv.SGST, inv.IGST, inv.TotalTax})
	}
	h := [][]any{hsnHeader}
	if hsn != nil {
		for _, it := range hsn.Items {
			h = append(h, []any{it.HSNCode, it.Description, it.UQC, it.TotalQuantity,
				it.TotalValue, it.TaxableValue, it.CGST, it.SGST, it.IGST, it.TotalTax})
		}
	}

	for sheet, rows := range map[string][][]any{SheetB2B: b2b, SheetB2C: b2c, SheetHSN: h} {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("opening %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return sw.Flush()
}
