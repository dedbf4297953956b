package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestPriceReferenceScenario(t *testing.T) {
	// items 100x2, taxable charge 10, discount 20
	q := Price(
		[]LineItem{{UnitPrice: d("100"), Quantity: 2}},
		[]ChargeLine{{Amount: d("10"), IsTaxable: true}},
		d("20"),
	)

	require.True(t, q.Subtotal.Equal(d("200")), "subtotal = %s", q.Subtotal)
	require.True(t, q.TaxableAmount.Equal(d("190")), "taxable = %s", q.TaxableAmount)
	assert.True(t, q.CGST.Equal(d("17.10")), "cgst = %s", q.CGST)
	assert.True(t, q.SGST.Equal(d("17.10")), "sgst = %s", q.SGST)
	assert.True(t, q.Total.Equal(d("224.20")), "total = %s", q.Total)
	assert.True(t, q.NonTaxableCharges.IsZero())
}

func TestPriceEmptyOrder(t *testing.T) {
	q := Price(nil, nil, decimal.Zero)
	assert.True(t, q.Subtotal.IsZero())
	assert.True(t, q.Total.IsZero())
}

func TestPriceTaxComponentsAlwaysEqual(t *testing.T) {
	cases := []struct {
		name     string
		items    []LineItem
		charges  []ChargeLine
		discount decimal.Decimal
	}{
		{"plain", []LineItem{{UnitPrice: d("99.99"), Quantity: 3}}, nil, decimal.Zero},
		{"with charges", []LineItem{{UnitPrice: d("12.50"), Quantity: 1}}, []ChargeLine{{Amount: d("5"), IsTaxable: true}, {Amount: d("7"), IsTaxable: false}}, d("1.25")},
		{"rounding edge", []LineItem{{UnitPrice: d("0.50"), Quantity: 1}}, nil, decimal.Zero},
		{"discount exceeds subtotal", []LineItem{{UnitPrice: d("10"), Quantity: 1}}, nil, d("100")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Price(tc.items, tc.charges, tc.discount)
			assert.True(t, q.CGST.Equal(q.SGST), "cgst %s != sgst %s", q.CGST, q.SGST)
		})
	}
}

func TestPriceSubtotalCommutative(t *testing.T) {
	items := []LineItem{
		{UnitPrice: d("10.25"), Quantity: 2},
		{UnitPrice: d("3.10"), Quantity: 5},
		{UnitPrice: d("99"), Quantity: 1},
	}
	reversed := []LineItem{items[2], items[1], items[0]}

	a := Price(items, nil, decimal.Zero)
	b := Price(reversed, nil, decimal.Zero)
	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.Total.Equal(b.Total))
}

func TestPriceNegativeTaxableNotClamped(t *testing.T) {
	// Discount larger than subtotal plus taxable charges produces a negative
	// base and negative tax; the calculator passes it through untouched.
	q := Price(
		[]LineItem{{UnitPrice: d("10"), Quantity: 1}},
		nil,
		d("50"),
	)
	assert.True(t, q.TaxableAmount.Equal(d("-40")))
	assert.True(t, q.CGST.Equal(d("-3.60")))
	assert.True(t, q.Total.Equal(d("-47.20")))
}

func TestPriceMonotonicity(t *testing.T) {
	base := Price(
		[]LineItem{{UnitPrice: d("50"), Quantity: 2}},
		[]ChargeLine{{Amount: d("10"), IsTaxable: true}, {Amount: d("5"), IsTaxable: false}},
		d("8"),
	)

	moreItems := Price(
		[]LineItem{{UnitPrice: d("50"), Quantity: 3}},
		[]ChargeLine{{Amount: d("10"), IsTaxable: true}, {Amount: d("5"), IsTaxable: false}},
		d("8"),
	)
	assert.True(t, moreItems.Total.GreaterThanOrEqual(base.Total))

	moreTaxableCharge := Price(
		[]LineItem{{UnitPrice: d("50"), Quantity: 2}},
		[]ChargeLine{{Amount: d("12"), IsTaxable: true}, {Amount: d("5"), IsTaxable: false}},
		d("8"),
	)
	assert.True(t, moreTaxableCharge.Total.GreaterThanOrEqual(base.Total))

	moreNonTaxableCharge := Price(
		[]LineItem{{UnitPrice: d("50"), Quantity: 2}},
		[]ChargeLine{{Amount: d("10"), IsTaxable: true}, {Amount: d("6"), IsTaxable: false}},
		d("8"),
	)
	assert.True(t, moreNonTaxableCharge.Total.GreaterThanOrEqual(base.Total))

	moreDiscount := Price(
		[]LineItem{{UnitPrice: d("50"), Quantity: 2}},
		[]ChargeLine{{Amount: d("10"), IsTaxable: true}, {Amount: d("5"), IsTaxable: false}},
		d("9"),
	)
	assert.True(t, moreDiscount.Total.LessThanOrEqual(base.Total))
}

func TestPriceRoundsHalfUpAtTwoPlaces(t *testing.T) {
	// taxable 0.50 -> tax component 0.045 each, rounds to 0.05 (half-up)
	q := Price([]LineItem{{UnitPrice: d("0.50"), Quantity: 1}}, nil, decimal.Zero)
	assert.True(t, q.CGST.Equal(d("0.05")), "cgst = %s", q.CGST)
	assert.True(t, q.Total.Equal(d("0.60")), "total = %s", q.Total)
}
