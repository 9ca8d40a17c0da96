package validator

import (
	"fmt"
	"strings"

	"github.com/ttacon/libphonenumber"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// DefaultRegion is used when a number is given without a country prefix.
const DefaultRegion = "IN"

// NormalizePhone validates a phone number and returns it in E.164 form.
func NormalizePhone(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", fmt.Errorf("%w: empty", domain.ErrInvalidPhone)
	}
	p, err := libphonenumber.Parse(number, DefaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidPhone, err)
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidPhone, number)
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}

// IsPhone reports whether number is a valid phone number.
func IsPhone(number string) bool {
	_, err := NormalizePhone(number)
	return err == nil
}
