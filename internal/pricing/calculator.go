// Package pricing derives jewellery selling prices from the metal rate, making
// and wastage charges, stones, discount and GST.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
)

// MakingChargeType selects how making charges are applied.
type MakingChargeType string

const (
	MakingPerGram    MakingChargeType = "per_gram"
	MakingPercentage MakingChargeType = "percentage"
)

// ErrUnknownKarat is returned for karats outside the purity table.
var ErrUnknownKarat = errors.New("unknown karat")

// Params are the pricing terms for one karat.
type Params struct {
	BaseRatePerGram     float64
	MakingChargePerGram float64
	// MakingChargePercentage is nil when the pricing record never set it.
	MakingChargePercentage *float64
	WastagePercentage      float64
	GSTPercentage          float64
}

// Input is a price request.
type Input struct {
	Karat              string           `json:"karat" binding:"required"`
	WeightGrams        float64          `json:"weight_grams" binding:"required,gt=0"`
	MakingChargeType   MakingChargeType `json:"making_charge_type"`
	IncludeGST         *bool            `json:"include_gst"`
	StoneValue         float64          `json:"stone_value" binding:"gte=0"`
	DiscountPercentage float64          `json:"discount_percentage" binding:"gte=0,lte=100"`
}

// GSTIncluded reports whether GST applies; it defaults to true.
func (in Input) GSTIncluded() bool {
	return in.IncludeGST == nil || *in.IncludeGST
}

// Breakdown is the full price derivation.
type Breakdown struct {
	Karat              string             `json:"karat"`
	Purity             float64            `json:"purity"`
	WeightGrams        float64            `json:"weight_grams"`
	RatePerGram        float64            `json:"rate_per_gram"`
	GoldValue          float64            `json:"gold_value"`
	MakingCharges      float64            `json:"making_charges"`
	WastageCharges     float64            `json:"wastage_charges"`
	StoneValue         float64            `json:"stone_value"`
	Subtotal           float64            `json:"subtotal"`
	DiscountPercentage float64            `json:"discount_percentage"`
	DiscountAmount     float64            `json:"discount_amount"`
	TaxableAmount      float64            `json:"taxable_amount"`
	GSTPercentage      float64            `json:"gst_percentage"`
	CGST               float64            `json:"cgst"`
	SGST               float64            `json:"sgst"`
	TotalGST           float64            `json:"total_gst"`
	GrandTotal         float64            `json:"grand_total"`
	Items              map[string]float64 `json:"breakdown"`
}

// FallbackParams derives terms for karat from the 24K rate when no pricing
// record exists.
func FallbackParams(karat string, rate24K float64) (Params, error) {
	p, ok := Purity(karat)
	if !ok {
		return Params{}, fmt.Errorf("%w: %s", ErrUnknownKarat, karat)
	}
	return Params{
		BaseRatePerGram:     rateForPurity(rate24K, p),
		MakingChargePerGram: fallbackMakingPerGram,
		WastagePercentage:   fallbackWastage,
		GSTPercentage:       DefaultGSTPercentage,
	}, nil
}

// DefaultParams returns the seed terms for d derived from the 24K rate.
func DefaultParams(d Default, rate24K float64) Params {
	p, _ := Purity(d.Karat)
	pct := DefaultMakingPercentage
	return Params{
		BaseRatePerGram:        rateForPurity(rate24K, p),
		MakingChargePerGram:    d.MakingChargePerGram,
		MakingChargePercentage: &pct,
		WastagePercentage:      d.WastagePercentage,
		GSTPercentage:          DefaultGSTPercentage,
	}
}

func rateForPurity(rate24K, purityPct float64) float64 {
	f, _ := decimal.NewFromFloat(rate24K).
		Mul(decimal.NewFromFloat(purityPct)).
		Div(decimal.NewFromInt(100)).
		Round(money.Places).Float64()
	return f
}

// Calculate prices in against p. GST on this path is always split as
// CGST+SGST.
func Calculate(p Params, in Input) (*Breakdown, error) {
	karat := NormalizeKarat(in.Karat)
	pur, ok := Purity(karat)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKarat, in.Karat)
	}

	d := decimal.NewFromFloat
	hundred := decimal.NewFromInt(100)
	round := func(v decimal.Decimal) decimal.Decimal { return v.Round(money.Places) }

	weight := d(in.WeightGrams)
	goldValue := round(weight.Mul(d(p.BaseRatePerGram)))

	var making decimal.Decimal
	if in.MakingChargeType == MakingPerGram || in.MakingChargeType == "" {
		making = round(weight.Mul(d(p.MakingChargePerGram)))
	} else {
		pct := DefaultMakingPercentage
		if p.MakingChargePercentage != nil {
			pct = *p.MakingChargePercentage
		}
		making = round(goldValue.Mul(d(pct)).Div(hundred))
	}

	wastage := round(goldValue.Mul(d(p.WastagePercentage)).Div(hundred))
	stone := round(d(in.StoneValue))
	subtotal := goldValue.Add(making).Add(wastage).Add(stone)
	discount := round(subtotal.Mul(d(in.DiscountPercentage)).Div(hundred))
	taxable := subtotal.Sub(discount)

	cgst := decimal.Zero
	gstPct := 0.0
	if in.GSTIncluded() {
		gstPct = p.GSTPercentage
		cgst = round(taxable.Mul(d(p.GSTPercentage)).Div(decimal.NewFromInt(200)))
	}
	sgst := cgst
	grand := taxable.Add(cgst).Add(sgst)

	f := func(v decimal.Decimal) float64 { x, _ := v.Float64(); return x }
	b := &Breakdown{
		Karat:              karat,
		Purity:             pur,
		WeightGrams:        in.WeightGrams,
		RatePerGram:        p.BaseRatePerGram,
		GoldValue:          f(goldValue),
		MakingCharges:      f(making),
		WastageCharges:     f(wastage),
		StoneValue:         f(stone),
		Subtotal:           f(subtotal),
		DiscountPercentage: in.DiscountPercentage,
		DiscountAmount:     f(discount),
		TaxableAmount:      f(taxable),
		GSTPercentage:      gstPct,
		CGST:               f(cgst),
		SGST:               f(sgst),
		TotalGST:           f(cgst.Add(sgst)),
		GrandTotal:         f(grand),
	}
	b.Items = map[string]float64{
		"gold_value":      b.GoldValue,
		"making_charges":  b.MakingCharges,
		"wastage_charges": b.WastageCharges,
		"stone_value":     b.StoneValue,
		"discount":        b.DiscountAmount,
		"cgst":            b.CGST,
		"sgst":            b.SGST,
	}
	return b, nil
}
