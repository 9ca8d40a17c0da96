package validator

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/pricing"
)

var registerOnce sync.Once

// RegisterBindings installs the custom struct tags on gin's validator:
// gstin, hsn, filing_period, karat and phone. Empty values pass; combine with
// required where a value is mandatory.
func RegisterBindings() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*playground.Validate)
		if !ok {
			return
		}
		err = Register(v)
	})
	return err
}

// Register installs the custom tags on v.
func Register(v *playground.Validate) error {
	tags := map[string]func(string) bool{
		"gstin":         IsGSTIN,
		"hsn":           IsHSN,
		"filing_period": IsFilingPeriod,
		"karat": func(s string) bool {
			_, ok := pricing.Purity(s)
			return ok
		},
		"phone": IsPhone,
	}
	for tag, fn := range tags {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl playground.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || fn(s)
		}); err != nil {
			return err
		}
	}
	return nil
}
