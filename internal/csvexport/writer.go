// Package csvexport renders GSTR-1 reports as CSV or XLSX downloads.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/gstreport"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Section labels in the CSV "Type" column.
const (
	SectionB2B = "B2B"
	SectionB2C = "B2C"
)

// columns defines the GSTR-1 CSV header row.
var columns = []string{
	"Type",
	"Invoice Number",
	"Invoice Date",
	"Customer Name",
	"Customer GSTIN",
	"Customer State",
	"Invoice Value",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Total Tax",
}

// Writer wraps csv.Writer for exporting GSTR-1 rows.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteGSTR1 writes every B2B row followed by every B2C row.
func (w *Writer) WriteGSTR1(r *gstreport.GSTR1) error {
	for i := range r.B2BInvoices {
		if err := w.csv.Write(b2bRow(&r.B2BInvoices[i])); err != nil {
			return err
		}
	}
	for i := range r.B2CInvoices {
		if err := w.csv.Write(b2cRow(&r.B2CInvoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, header and all rows of r to out.
func WriteCSV(out io.Writer, r *gstreport.GSTR1) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteGSTR1(r); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func b2bRow(inv *gstreport.B2BInvoice) []string {
	return []string{
		SectionB2B,
		inv.InvoiceNumber,
		inv.InvoiceDate,
		inv.CustomerName,
		inv.CustomerGSTIN,
		inv.CustomerState,
		formatMoney(inv.InvoiceValue),
		formatMoney(inv.TaxableValue),
		formatMoney(inv.CGST),
		formatMoney(inv.SGST),
		formatMoney(inv.IGST),
		formatMoney(inv.TotalTax),
	}
}

func b2cRow(inv *gstreport.B2CInvoice) []string {
	return []string{
		SectionB2C,
		inv.InvoiceNumber,
		inv.InvoiceDate,
		"",
		"",
		inv.CustomerState,
		formatMoney(inv.InvoiceValue),
		formatMoney(inv.TaxableValue),
		formatMoney(inv.CGST),
		formatMoney(inv.SGST),
		formatMoney(inv.IGST),
		formatMoney(inv.TotalTax),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename makes name safe for a Content-Disposition header and
// truncates it to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns "{business}_GSTR1_{from}_{to}.{ext}".
func BuildFilename(business, from, to, ext string) string {
	name := SanitizeFilename(business)
	if name == "" {
		name = "business"
	}
	return fmt.Sprintf("%s_GSTR1_%s_%s.%s", name, from, to, ext)
}
