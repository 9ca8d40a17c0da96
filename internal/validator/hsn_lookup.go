package validator

import (
	"context"
	"fmt"
	"math"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// HSNRateEntry holds a valid GST rate and optional condition for an HSN code.
type HSNRateEntry struct {
	Rate          float64
	ConditionDesc string
}

// HSNLookup provides in-memory lookups against the HSN master. It is immutable
// after construction and safe for concurrent access.
type HSNLookup struct {
	byCode map[string][]HSNRateEntry
	desc   map[string]string
}

// NewHSNLookup builds an HSNLookup from entries loaded from the database.
func NewHSNLookup(entries []port.HSNEntry) *HSNLookup {
	m := make(map[string][]HSNRateEntry, len(entries))
	d := make(map[string]string, len(entries))
	for idx := range entries {
		e := &entries[idx]
		m[e.Code] = append(m[e.Code], HSNRateEntry{
			Rate:          e.GSTRate,
			ConditionDesc: e.ConditionDesc,
		})
		if _, ok := d[e.Code]; !ok {
			d[e.Code] = e.Description
		}
	}
	return &HSNLookup{byCode: m, desc: d}
}

// LoadHSNLookup reads the HSN master from repo. An empty table yields a lookup
// that reports Loaded() == false, which disables HSN checks.
func LoadHSNLookup(ctx context.Context, repo port.HSNRepository) (*HSNLookup, error) {
	entries, err := repo.LoadAll(ctx)
	if err != nil {
		return NewHSNLookup(nil), fmt.Errorf("loading hsn master: %w", err)
	}
	return NewHSNLookup(entries), nil
}

// Loaded reports whether the master list has any entries.
func (h *HSNLookup) Loaded() bool {
	return h != nil && len(h.byCode) > 0
}

func (h *HSNLookup) resolve(code string) (string, bool) {
	if !h.Loaded() || code == "" {
		return "", false
	}
	if _, ok := h.byCode[code]; ok {
		return code, true
	}
	// 8 -> 6 -> 4 digit prefix fallback
	for _, prefixLen := range []int{6, 4} {
		if len(code) > prefixLen {
			if _, ok := h.byCode[code[:prefixLen]]; ok {
				return code[:prefixLen], true
			}
		}
	}
	return "", false
}

// Exists returns true if the HSN code (or a prefix of it) is in the master list.
func (h *HSNLookup) Exists(code string) bool {
	_, ok := h.resolve(code)
	return ok
}

// Description returns the master description of the code or its nearest prefix.
func (h *HSNLookup) Description(code string) string {
	key, ok := h.resolve(code)
	if !ok {
		return ""
	}
	return h.desc[key]
}

// Rates returns valid rate entries for the given HSN code, with prefix fallback.
func (h *HSNLookup) Rates(code string) []HSNRateEntry {
	key, ok := h.resolve(code)
	if !ok {
		return nil
	}
	return h.byCode[key]
}

// RateMatches checks if the given GST rate matches any valid rate for this HSN code.
func (h *HSNLookup) RateMatches(code string, gstRate float64) (matched bool, validRates []HSNRateEntry) {
	validRates = h.Rates(code)
	if len(validRates) == 0 {
		return false, nil
	}
	for idx := range validRates {
		if math.Abs(validRates[idx].Rate-gstRate) < 0.01 {
			return true, validRates
		}
	}
	return false, validRates
}
