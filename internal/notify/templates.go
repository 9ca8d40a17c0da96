// Package notify renders notification subjects and bodies. Amounts are
// formatted for an Indian English locale.
package notify

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// INR formats an amount as rupees with two decimals.
func INR(amount float64) string {
	return printer.Sprintf("₹%.2f", amount)
}

// Content is a rendered subject and body.
type Content struct {
	Subject string
	Body    string
}

// LowStock renders the alert sent when a product drops to its threshold.
func LowStock(productName, sku string, quantity, threshold int) Content {
	return Content{
		Subject: printer.Sprintf("Low stock: %s", productName),
		Body: printer.Sprintf("%s (SKU %s) is down to %d units. The reorder threshold is %d.",
			productName, sku, quantity, threshold),
	}
}

// RateUpdate renders the announcement of new gold rates. Purities are listed
// in descending order.
func RateUpdate(rates []domain.GoldRate) Content {
	sorted := append([]domain.GoldRate(nil), rates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Purity > sorted[j].Purity })

	var b strings.Builder
	b.WriteString("Today's gold rates per gram:\n")
	for _, r := range sorted {
		b.WriteString(printer.Sprintf("  %s: %s\n", r.Purity, INR(r.RatePerGram)))
	}
	return Content{Subject: "Gold rates updated", Body: b.String()}
}

// Invoice renders the email sharing a sale invoice with a customer.
func Invoice(businessName string, sale *domain.Sale) Content {
	var b strings.Builder
	b.WriteString(printer.Sprintf("Dear %s,\n\n", sale.CustomerName))
	b.WriteString(printer.Sprintf("Thank you for shopping with %s. Invoice %s dated %s:\n\n",
		businessName, sale.InvoiceNumber, sale.CreatedAt.Format("02 Jan 2006")))
	for _, it := range sale.Items {
		b.WriteString(printer.Sprintf("  %s x%d  %s\n", it.ProductName, it.Quantity, INR(it.TotalAfterTax)))
	}
	b.WriteString(printer.Sprintf("\nSubtotal: %s\n", INR(sale.Subtotal)))
	if sale.IGST > 0 {
		b.WriteString(printer.Sprintf("IGST: %s\n", INR(sale.IGST)))
	} else {
		b.WriteString(printer.Sprintf("CGST: %s\nSGST: %s\n", INR(sale.CGST), INR(sale.SGST)))
	}
	b.WriteString(printer.Sprintf("Total: %s\n", INR(sale.GrandTotal)))
	return Content{
		Subject: printer.Sprintf("Invoice %s from %s", sale.InvoiceNumber, businessName),
		Body:    b.String(),
	}
}
