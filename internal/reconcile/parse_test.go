package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/reconcile"
)

const gstr2aJSON = `{
  "b2b": [{
    "ctin": "27aapfu0939f1zv",
    "inv": [{
      "inum": "S-101",
      "idt": "05-01-2025",
      "val": 10300,
      "pos": "27",
      "rchrg": "N",
      "itms": [
        {"itm_det": {"txval": 6000, "camt": 90, "samt": 90, "iamt": 0, "csamt": 0}},
        {"itm_det": {"txval": 4000, "camt": 60, "samt": 60, "iamt": 0, "csamt": 0}}
      ]
    }]
  }]
}`

const gstr2bJSON = `{
  "docdata": {
    "b2b": [{
      "ctin": "27AAPFU0939F1ZV",
      "trdnm": "Shree Bullion",
      "inv": [
        {"inum": "S-101", "dt": "05-01-2025", "val": 10300, "items": [{"txval": 10000, "camt": 150, "samt": 150, "iamt": 0}]},
        {"inum": "S-102", "dt": "06-01-2025", "val": 5150, "itcavl": "N", "items": [{"txval": 5000, "iamt": 150}]},
        {"inum": "S-103", "dt": "07-01-2025", "val": 1030, "items": [{"txval": 1000, "camt": 15, "samt": 15, "itcavl": {"camt": 10, "samt": 10}}]}
      ]
    }]
  }
}`

func TestParseGSTR2A(t *testing.T) {
	p := mustPeriod(t, "012025")

	recs, err := reconcile.ParseGSTR2A([]byte(gstr2aJSON), p)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, "012025", r.FilingPeriod)
	assert.Equal(t, "27AAPFU0939F1ZV", r.SupplierGSTIN)
	assert.Equal(t, "S-101", r.InvoiceNumber)
	assert.Equal(t, 10300.0, r.InvoiceValue)
	assert.Equal(t, 10000.0, r.TaxableValue)
	assert.Equal(t, 150.0, r.CGST)
	assert.Equal(t, 150.0, r.SGST)
	assert.False(t, r.ReverseCharge)
	assert.False(t, r.Matched)
}

func TestParseGSTR2B_ITCAvailability(t *testing.T) {
	p := mustPeriod(t, "012025")

	recs, err := reconcile.ParseGSTR2B([]byte(gstr2bJSON), p)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Shree Bullion", recs[0].SupplierName)
	assert.Equal(t, 300.0, recs[0].ITCAvailable)
	assert.Equal(t, 0.0, recs[1].ITCAvailable)
	assert.Equal(t, 150.0, recs[1].IGST)
	assert.Equal(t, 20.0, recs[2].ITCAvailable)
}

func TestParse_InvalidJSON(t *testing.T) {
	p := mustPeriod(t, "012025")

	_, err := reconcile.ParseGSTR2A([]byte("{not json"), p)
	assert.ErrorIs(t, err, domain.ErrInvalidImportFile)

	_, err = reconcile.ParseGSTR2B([]byte("   "), p)
	assert.ErrorIs(t, err, domain.ErrInvalidImportFile)
}

func TestParse_EmptyDocument(t *testing.T) {
	p := mustPeriod(t, "012025")

	recs, err := reconcile.ParseGSTR2A([]byte(`{}`), p)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestParseGSTR2B_ITCAvailableCountsIGST(t *testing.T) {
	p := mustPeriod(t, "012025")
	doc := `{"docdata": {"b2b": [{"ctin": "29AABCT1332L1ZT", "trdnm": "Karnataka Refiners", "inv": [
	  {"inum": "K-1", "dt": "08-01-2025", "val": 3090, "items": [{"txval": 3000, "iamt": 90, "itcavl": {"iamt": 60}}]},
	  {"inum": "K-2", "dt": "09-01-2025", "val": 2060, "items": [{"txval": 2000, "iamt": 60}]}
	]}]}}`

	recs, err := reconcile.ParseGSTR2B([]byte(doc), p)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 60.0, recs[0].ITCAvailable)
	assert.Equal(t, 60.0, recs[1].ITCAvailable)
	assert.Equal(t, 60.0, recs[1].IGST)
}
