package pricing

import (
	"sort"
	"strings"
)

// Purity percentages by karat.
var purity = map[string]float64{
	"24K": 99.9,
	"22K": 91.6,
	"21K": 87.5,
	"18K": 75.0,
	"14K": 58.5,
	"10K": 41.7,
	"9K":  37.5,
}

// NormalizeKarat upper-cases and trims a karat label ("22k" -> "22K").
func NormalizeKarat(k string) string {
	return strings.ToUpper(strings.TrimSpace(k))
}

// Purity returns the purity percentage for karat.
func Purity(karat string) (float64, bool) {
	p, ok := purity[NormalizeKarat(karat)]
	return p, ok
}

// Karats lists the supported karats from purest down.
func Karats() []string {
	out := make([]string, 0, len(purity))
	for k := range purity {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return purity[out[i]] > purity[out[j]] })
	return out
}

// Default is a seed row used by initialize-defaults.
type Default struct {
	Karat               string
	MakingChargePerGram float64
	WastagePercentage   float64
}

// Defaults lists the karats seeded when a business initialises pricing.
var Defaults = []Default{
	{Karat: "24K", MakingChargePerGram: 800, WastagePercentage: 2.0},
	{Karat: "22K", MakingChargePerGram: 600, WastagePercentage: 2.5},
	{Karat: "21K", MakingChargePerGram: 550, WastagePercentage: 2.5},
	{Karat: "18K", MakingChargePerGram: 500, WastagePercentage: 3.0},
	{Karat: "14K", MakingChargePerGram: 400, WastagePercentage: 3.5},
}

const (
	// DefaultBase24KRate is used by initialize-defaults when no gold rate exists.
	DefaultBase24KRate = 7500.0
	// DefaultMakingPercentage applies when percentage making is requested but unset.
	DefaultMakingPercentage = 10.0
	// DefaultGSTPercentage is the GST rate on jewellery.
	DefaultGSTPercentage = 3.0

	fallbackMakingPerGram = 500.0
	fallbackWastage       = 3.0
)
