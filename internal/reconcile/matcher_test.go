package reconcile_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/reconcile"
)

const supplierGSTIN = "27AAPFU0939F1ZV"

func mustPeriod(t *testing.T, s string) reconcile.FilingPeriod {
	t.Helper()
	p, err := reconcile.ParseFilingPeriod(s)
	require.NoError(t, err)
	return p
}

func TestParseFilingPeriod(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"012025", false},
		{"122024", false},
		{"132025", true},
		{"002025", true},
		{"2025-01", true},
		{"12025", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := reconcile.ParseFilingPeriod(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidFilingPeriod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, p.String())
		})
	}
}

func TestFilingPeriod_Contains(t *testing.T) {
	p := mustPeriod(t, "022025")

	assert.True(t, p.Contains(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)))
}

func TestMatch_WithinTolerance(t *testing.T) {
	p := mustPeriod(t, "012025")
	r2a := []domain.GSTR2ARecord{
		{ID: uuid.New(), SupplierGSTIN: supplierGSTIN, InvoiceNumber: "S-1", InvoiceValue: 1000},
	}
	pos := []domain.PurchaseOrder{
		{PONumber: "PO-2025-00001", SupplierGSTIN: " 27aapfu0939f1zv ", GrandTotal: 1000.50, OrderDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	}

	rep := reconcile.Match(p, r2a, nil, pos, reconcile.Options{})

	assert.Equal(t, 1, rep.MatchedCount)
	assert.Equal(t, 0, rep.UnmatchedCount)
	assert.Empty(t, rep.Discrepancies)
	assert.Equal(t, []uuid.UUID{r2a[0].ID}, rep.MatchedIDs)
	assert.Empty(t, rep.OutOfPeriodMatches)
	assert.Equal(t, 0.5, rep.VarianceAmount)
}

func TestMatch_OutsideToleranceIsDiscrepancy(t *testing.T) {
	p := mustPeriod(t, "012025")
	r2a := []domain.GSTR2ARecord{
		{ID: uuid.New(), SupplierGSTIN: supplierGSTIN, InvoiceNumber: "S-1", InvoiceValue: 1000},
	}
	pos := []domain.PurchaseOrder{
		{SupplierGSTIN: supplierGSTIN, GrandTotal: 1002, OrderDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	}

	rep := reconcile.Match(p, r2a, nil, pos, reconcile.Options{})

	assert.Equal(t, 0, rep.MatchedCount)
	assert.Equal(t, 1, rep.UnmatchedCount)
	require.Len(t, rep.Discrepancies, 1)
	d := rep.Discrepancies[0]
	assert.Equal(t, reconcile.DiscrepancyUnmatched2A, d.Type)
	assert.Equal(t, "S-1", d.InvoiceNumber)
	assert.Equal(t, 1000.0, d.Amount)
	assert.Equal(t, "No matching purchase found", d.Reason)
}

func TestMatch_DifferentSupplierDoesNotMatch(t *testing.T) {
	p := mustPeriod(t, "012025")
	r2a := []domain.GSTR2ARecord{{SupplierGSTIN: supplierGSTIN, InvoiceValue: 500}}
	pos := []domain.PurchaseOrder{{SupplierGSTIN: "29AAACB1234C1Z5", GrandTotal: 500}}

	rep := reconcile.Match(p, r2a, nil, pos, reconcile.Options{})

	assert.Equal(t, 0, rep.MatchedCount)
	assert.Equal(t, 1, rep.DiscrepancyCount)
}

func TestMatch_OnePurchaseSatisfiesSeveralRecords(t *testing.T) {
	p := mustPeriod(t, "012025")
	r2a := []domain.GSTR2ARecord{
		{SupplierGSTIN: supplierGSTIN, InvoiceValue: 750},
		{SupplierGSTIN: supplierGSTIN, InvoiceValue: 750.4},
	}
	pos := []domain.PurchaseOrder{{SupplierGSTIN: supplierGSTIN, GrandTotal: 750, OrderDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}}

	rep := reconcile.Match(p, r2a, nil, pos, reconcile.Options{})

	assert.Equal(t, 2, rep.MatchedCount)
}

func TestMatch_DiscrepanciesCapped(t *testing.T) {
	p := mustPeriod(t, "012025")
	var r2a []domain.GSTR2ARecord
	for i := 0; i < 25; i++ {
		r2a = append(r2a, domain.GSTR2ARecord{SupplierGSTIN: supplierGSTIN, InvoiceNumber: fmt.Sprintf("S-%d", i), InvoiceValue: 100})
	}

	rep := reconcile.Match(p, r2a, nil, nil, reconcile.Options{})

	assert.Equal(t, 25, rep.DiscrepancyCount)
	assert.Len(t, rep.Discrepancies, reconcile.DefaultDiscrepancyLimit)
	assert.Equal(t, 25, rep.UnmatchedCount)

	rep = reconcile.Match(p, r2a, nil, nil, reconcile.Options{DiscrepancyLimit: 5})
	assert.Len(t, rep.Discrepancies, 5)
}

func TestMatch_ScopeAllReportsOutOfPeriodMatches(t *testing.T) {
	p := mustPeriod(t, "012025")
	r2a := []domain.GSTR2ARecord{{SupplierGSTIN: supplierGSTIN, InvoiceNumber: "S-9", InvoiceValue: 2000}}
	pos := []domain.PurchaseOrder{
		{PONumber: "PO-2024-00042", SupplierGSTIN: supplierGSTIN, GrandTotal: 2000, OrderDate: time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC)},
	}

	rep := reconcile.Match(p, r2a, nil, pos, reconcile.Options{Scope: reconcile.ScopeAll})

	assert.Equal(t, 1, rep.MatchedCount)
	assert.Equal(t, 1, rep.PurchaseCount)
	require.Len(t, rep.OutOfPeriodMatches, 1)
	assert.Equal(t, "PO-2024-00042", rep.OutOfPeriodMatches[0].PONumber)
}

func TestMatch_ScopePeriodExcludesOtherMonths(t *testing.T) {
	p := mustPeriod(t, "012025")
	r2a := []domain.GSTR2ARecord{{SupplierGSTIN: supplierGSTIN, InvoiceValue: 2000}}
	pos := []domain.PurchaseOrder{
		{SupplierGSTIN: supplierGSTIN, GrandTotal: 2000, OrderDate: time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC)},
		{SupplierGSTIN: supplierGSTIN, GrandTotal: 300, OrderDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
	}

	rep := reconcile.Match(p, r2a, nil, pos, reconcile.Options{Scope: reconcile.ScopePeriod})

	assert.Equal(t, reconcile.ScopePeriod, rep.PurchaseScope)
	assert.Equal(t, 1, rep.PurchaseCount)
	assert.Equal(t, 0, rep.MatchedCount)
	assert.Equal(t, 300.0, rep.TotalPurchaseValue)
}

func TestMatch_Totals(t *testing.T) {
	p := mustPeriod(t, "012025")
	r2a := []domain.GSTR2ARecord{
		{SupplierGSTIN: supplierGSTIN, InvoiceValue: 1030},
		{SupplierGSTIN: supplierGSTIN, InvoiceValue: 2060},
	}
	r2b := []domain.GSTR2BRecord{{ITCAvailable: 30}, {ITCAvailable: 60}}
	pos := []domain.PurchaseOrder{{SupplierGSTIN: supplierGSTIN, GrandTotal: 1030}}

	rep := reconcile.Match(p, r2a, r2b, pos, reconcile.Options{})

	assert.Equal(t, 2, rep.GSTR2ACount)
	assert.Equal(t, 2, rep.GSTR2BCount)
	assert.Equal(t, 3090.0, rep.TotalGSTR2AValue)
	assert.Equal(t, 1030.0, rep.TotalPurchaseValue)
	assert.Equal(t, 2060.0, rep.VarianceAmount)
	assert.Equal(t, 90.0, rep.ITCClaimable)
	assert.Equal(t, 3000.0, rep.ITCNotClaimable)
}
