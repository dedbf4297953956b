// Package pricing computes order totals. The same function backs the
// interactive cart preview and the server-side commit, so the two totals
// always agree to the paisa.
package pricing

import "github.com/shopspring/decimal"

// GST on food orders is levied as two equal 9% components (CGST + SGST).
var (
	CGSTRate = decimal.NewFromFloat(0.09)
	SGSTRate = decimal.NewFromFloat(0.09)
)

// LineItem is the pricing view of one order line
type LineItem struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// ChargeLine is the pricing view of one applied charge
type ChargeLine struct {
	Amount    decimal.Decimal
	IsTaxable bool
}

// Quote is the full price breakdown of an order
type Quote struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxableCharges    decimal.Decimal `json:"taxable_charges"`
	NonTaxableCharges decimal.Decimal `json:"non_taxable_charges"`
	Discount          decimal.Decimal `json:"discount"`
	TaxableAmount     decimal.Decimal `json:"taxable_amount"`
	CGST              decimal.Decimal `json:"cgst"`
	SGST              decimal.Decimal `json:"sgst"`
	Total             decimal.Decimal `json:"total"`
}

// Price computes the breakdown for the given lines, charges and discount.
//
// Rounding is half-up to two places and happens only at the tax components
// and the grand total; intermediate sums stay exact. The taxable amount is
// intentionally not clamped at zero: a discount exceeding subtotal plus
// taxable charges yields a negative base and negative tax components,
// matching the reference behavior until the business rules say otherwise.
func Price(items []LineItem, charges []ChargeLine, discount decimal.Decimal) Quote {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	taxableCharges := decimal.Zero
	nonTaxableCharges := decimal.Zero
	for _, c := range charges {
		if c.IsTaxable {
			taxableCharges = taxableCharges.Add(c.Amount)
		} else {
			nonTaxableCharges = nonTaxableCharges.Add(c.Amount)
		}
	}

	taxableAmount := subtotal.Sub(discount).Add(taxableCharges)
	cgst := taxableAmount.Mul(CGSTRate).Round(2)
	sgst := taxableAmount.Mul(SGSTRate).Round(2)
	total := taxableAmount.Add(cgst).Add(sgst).Add(nonTaxableCharges).Round(2)

	return Quote{
		Subtotal:          subtotal,
		TaxableCharges:    taxableCharges,
		NonTaxableCharges: nonTaxableCharges,
		Discount:          discount,
		TaxableAmount:     taxableAmount,
		CGST:              cgst,
		SGST:              sgst,
		Total:             total,
	}
}
