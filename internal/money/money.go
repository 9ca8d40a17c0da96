// Package money holds the rounding and summing rules used for every rupee
// amount. Values travel as float64 but all arithmetic that feeds a persisted
// or reported figure goes through shopspring/decimal so that binary float
// error never leaks into a rounded result.
package money

import "github.com/shopspring/decimal"

// Places is the number of decimal places kept for currency amounts.
const Places = 2

// Round rounds v to two decimals, half away from zero.
func Round(v float64) float64 {
	return RoundTo(v, Places)
}

// RoundTo rounds v to the given number of decimals, half away from zero.
func RoundTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Sum adds values exactly and returns the unrounded total.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Float64()
	return f
}

// Mul multiplies a by b exactly and rounds to two decimals.
func Mul(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(Places).Float64()
	return f
}

// Percent returns pct percent of base, rounded to two decimals.
func Percent(base, pct float64) float64 {
	f, _ := decimal.NewFromFloat(base).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(Places).Float64()
	return f
}

// Share returns part/whole, or 0 when whole is zero. The result is unrounded.
func Share(part, whole float64) float64 {
	w := decimal.NewFromFloat(whole)
	if w.IsZero() {
		return 0
	}
	f, _ := decimal.NewFromFloat(part).Div(w).Float64()
	return f
}

// NonNegative returns max(0, v).
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
