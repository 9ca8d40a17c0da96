// Package validator holds the Indian tax identifier and contact checks used
// on request input, plus their registration as gin binding tags.
package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

var (
	gstinPattern  = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern    = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	hsnPattern    = regexp.MustCompile(`^\d{4,8}$`)
	periodPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])\d{4}$`)
)

// IsGSTIN reports whether s is a syntactically valid 15-character GSTIN with a
// valid state prefix.
func IsGSTIN(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !gstinPattern.MatchString(s) {
		return false
	}
	return IsStateCode(s[:2])
}

// IsPAN reports whether s is a 10-character PAN.
func IsPAN(s string) bool {
	return panPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// IsHSN reports whether s is a 4 to 8 digit HSN code.
func IsHSN(s string) bool {
	return hsnPattern.MatchString(strings.TrimSpace(s))
}

// IsFilingPeriod reports whether s is an MMYYYY period with a valid month.
func IsFilingPeriod(s string) bool {
	return periodPattern.MatchString(s)
}

// IsStateCode reports whether s is a 2-digit GST state code (01-38).
func IsStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	code, err := strconv.Atoi(s)
	return err == nil && code >= 1 && code <= 38
}

// PANFromGSTIN extracts the embedded PAN of a GSTIN.
func PANFromGSTIN(gstin string) string {
	gstin = strings.ToUpper(strings.TrimSpace(gstin))
	if len(gstin) != 15 {
		return ""
	}
	return gstin[2:12]
}

// NormalizeGSTIN validates an optional GSTIN and returns it upper-cased.
// An empty input is allowed and returned as-is.
func NormalizeGSTIN(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	if !IsGSTIN(s) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidGSTIN, s)
	}
	return s, nil
}
