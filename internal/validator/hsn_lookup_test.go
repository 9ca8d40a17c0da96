package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func newLookup() *validator.HSNLookup {
	return validator.NewHSNLookup([]port.HSNEntry{
		{Code: "7113", Description: "Articles of jewellery", GSTRate: 3},
		{Code: "711319", Description: "Of other precious metal", GSTRate: 3},
		{Code: "7108", Description: "Gold, unwrought", GSTRate: 3},
		{Code: "7108", Description: "Gold, unwrought", GSTRate: 0.25, ConditionDesc: "for export processing"},
	})
}

func TestHSNLookup_PrefixFallback(t *testing.T) {
	h := newLookup()

	assert.True(t, h.Loaded())
	assert.True(t, h.Exists("7113"))
	assert.True(t, h.Exists("71131910"))
	assert.Equal(t, "Of other precious metal", h.Description("71131910"))
	assert.True(t, h.Exists("71131100"))
	assert.Equal(t, "Articles of jewellery", h.Description("71131100"))
	assert.False(t, h.Exists("9999"))
	assert.False(t, h.Exists(""))
}

func TestHSNLookup_RateMatches(t *testing.T) {
	h := newLookup()

	ok, rates := h.RateMatches("71081200", 0.25)
	assert.True(t, ok)
	assert.Len(t, rates, 2)

	ok, rates = h.RateMatches("71131910", 18)
	assert.False(t, ok)
	assert.Len(t, rates, 1)

	ok, rates = h.RateMatches("9999", 3)
	assert.False(t, ok)
	assert.Nil(t, rates)
}

func TestHSNLookup_Empty(t *testing.T) {
	h := validator.NewHSNLookup(nil)
	assert.False(t, h.Loaded())
	assert.False(t, h.Exists("7113"))

	var nilLookup *validator.HSNLookup
	assert.False(t, nilLookup.Loaded())
}

func TestLoadHSNLookup(t *testing.T) {
	repo := new(mocks.MockHSNRepo)
	repo.On("LoadAll", mock.Anything).Return([]port.HSNEntry{
		{Code: "7113", Description: "Articles of jewellery", GSTRate: 3},
	}, nil)

	l, err := validator.LoadHSNLookup(context.Background(), repo)

	require.NoError(t, err)
	assert.True(t, l.Loaded())
	assert.True(t, l.Exists("7113"))
}

func TestLoadHSNLookup_ErrorDisablesChecks(t *testing.T) {
	repo := new(mocks.MockHSNRepo)
	repo.On("LoadAll", mock.Anything).Return(nil, errors.New("relation \"hsn_codes\" does not exist"))

	l, err := validator.LoadHSNLookup(context.Background(), repo)

	assert.Error(t, err)
	require.NotNil(t, l)
	assert.False(t, l.Loaded())
}
