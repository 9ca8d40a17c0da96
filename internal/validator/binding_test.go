package validator_test

import (
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
)

type taggedInput struct {
	GSTIN  string `validate:"gstin"`
	HSN    string `validate:"hsn"`
	Period string `validate:"filing_period"`
	Karat  string `validate:"karat"`
	Phone  string `validate:"phone"`
}

func TestRegister_CustomTags(t *testing.T) {
	v := playground.New()
	require.NoError(t, validator.Register(v))

	ok := taggedInput{GSTIN: "27AAPFU0939F1ZV", HSN: "7113", Period: "042025", Karat: "22k", Phone: "9876543210"}
	assert.NoError(t, v.Struct(ok))

	assert.NoError(t, v.Struct(taggedInput{}), "empty values are left to required")

	bad := taggedInput{GSTIN: "X", HSN: "12", Period: "2025", Karat: "23K", Phone: "1"}
	err := v.Struct(bad)
	require.Error(t, err)
	var verrs playground.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 5)
}

func TestRegisterBindings_Idempotent(t *testing.T) {
	assert.NoError(t, validator.RegisterBindings())
	assert.NoError(t, validator.RegisterBindings())
}
