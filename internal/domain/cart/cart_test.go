package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(variantID uuid.UUID, price string) Item {
	return Item{
		VariantID:   variantID,
		ProductID:   uuid.New(),
		ProductName: "Masala Dosa",
		VariantName: "Regular",
		Quantity:    1,
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func TestSelectStoreDiscardsDraft(t *testing.T) {
	storeA := uuid.New()
	storeB := uuid.New()

	d := Reduce(Draft{}, SelectStore{StoreID: storeA})
	d = Reduce(d, AddItem{Item: testItem(uuid.New(), "120")})
	d = Reduce(d, SetDiscount{Value: decimal.RequireFromString("10")})
	d = Reduce(d, SetPaymentMethod{Method: enum.PaymentMethodCard})

	d = Reduce(d, SelectStore{StoreID: storeB})

	require.NotNil(t, d.StoreID)
	assert.Equal(t, storeB, *d.StoreID)
	assert.Empty(t, d.Items)
	assert.Empty(t, d.Charges)
	assert.True(t, d.Discount.IsZero())
	assert.Empty(t, string(d.PaymentMethod))
	assert.Nil(t, d.AmountReceived)
}

func TestAddItemMergesByVariant(t *testing.T) {
	variantID := uuid.New()
	d := Reduce(Draft{}, AddItem{Item: testItem(variantID, "120")})
	d = Reduce(d, AddItem{Item: testItem(variantID, "120")})

	require.Len(t, d.Items, 1)
	assert.Equal(t, 2, d.Items[0].Quantity)

	// a different variant gets its own line, appended in insertion order
	other := uuid.New()
	d = Reduce(d, AddItem{Item: testItem(other, "60")})
	require.Len(t, d.Items, 2)
	assert.Equal(t, other, d.Items[1].VariantID)
	assert.Equal(t, 1, d.Items[1].Quantity)
}

func TestIncrementThenDecrementRestoresDraft(t *testing.T) {
	variantID := uuid.New()
	d := Reduce(Draft{}, AddItem{Item: testItem(variantID, "120")})
	d = Reduce(d, IncrementItem{VariantID: variantID})
	before := d.Totals()

	d = Reduce(d, IncrementItem{VariantID: variantID})
	d = Reduce(d, DecrementItem{VariantID: variantID})

	require.Len(t, d.Items, 1)
	assert.Equal(t, 2, d.Items[0].Quantity)
	after := d.Totals()
	assert.True(t, before.Total.Equal(after.Total))
	assert.True(t, before.Subtotal.Equal(after.Subtotal))
}

func TestDecrementAtOneRemovesItem(t *testing.T) {
	variantID := uuid.New()
	d := Reduce(Draft{}, AddItem{Item: testItem(variantID, "120")})

	d = Reduce(d, DecrementItem{VariantID: variantID})

	assert.Empty(t, d.Items)
}

func TestRemoveItemUnconditional(t *testing.T) {
	variantID := uuid.New()
	d := Reduce(Draft{}, AddItem{Item: testItem(variantID, "120")})
	d = Reduce(d, IncrementItem{VariantID: variantID})
	d = Reduce(d, RemoveItem{VariantID: variantID})

	assert.Empty(t, d.Items)
}

func TestChargeToggleKeepsKeysUnique(t *testing.T) {
	chargeID := uuid.New()
	charge := AppliedCharge{
		ChargeID:  chargeID,
		Name:      "Packing",
		Amount:    decimal.RequireFromString("10"),
		IsTaxable: true,
	}

	d := Reduce(Draft{}, AddCharge{Charge: charge})
	d = Reduce(d, AddCharge{Charge: charge})
	require.Len(t, d.Charges, 1)
	assert.True(t, d.HasCharge(chargeID))

	d = Reduce(d, RemoveCharge{ChargeID: chargeID})
	assert.Empty(t, d.Charges)
	assert.False(t, d.HasCharge(chargeID))
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	variantID := uuid.New()
	d := Reduce(Draft{}, AddItem{Item: testItem(variantID, "120")})

	_ = Reduce(d, IncrementItem{VariantID: variantID})

	assert.Equal(t, 1, d.Items[0].Quantity)
}

func TestResetKeepsStore(t *testing.T) {
	storeID := uuid.New()
	received := decimal.RequireFromString("500")

	d := Reduce(Draft{}, SelectStore{StoreID: storeID})
	d = Reduce(d, AddItem{Item: testItem(uuid.New(), "120")})
	d = Reduce(d, SetPaymentMethod{Method: enum.PaymentMethodCash})
	d = Reduce(d, SetAmountReceived{Value: received})
	d = Reduce(d, SetCustomerName{Value: "Asha"})
	d = Reduce(d, SetNotes{Value: "no onion"})

	d = Reduce(d, Reset{})

	require.NotNil(t, d.StoreID)
	assert.Equal(t, storeID, *d.StoreID)
	assert.Empty(t, d.Items)
	assert.Empty(t, d.Charges)
	assert.Nil(t, d.AmountReceived)
	assert.Empty(t, d.CustomerName)
	assert.Empty(t, d.Notes)
	assert.Empty(t, string(d.PaymentMethod))
}

func TestTotalsMatchPricingScenario(t *testing.T) {
	variantID := uuid.New()
	d := Reduce(Draft{}, AddItem{Item: testItem(variantID, "100")})
	d = Reduce(d, IncrementItem{VariantID: variantID})
	d = Reduce(d, AddCharge{Charge: AppliedCharge{
		ChargeID:  uuid.New(),
		Name:      "Packing",
		Amount:    decimal.RequireFromString("10"),
		IsTaxable: true,
	}})
	d = Reduce(d, SetDiscount{Value: decimal.RequireFromString("20")})

	q := d.Totals()
	assert.True(t, q.Subtotal.Equal(decimal.RequireFromString("200")))
	assert.True(t, q.TaxableAmount.Equal(decimal.RequireFromString("190")))
	assert.True(t, q.CGST.Equal(decimal.RequireFromString("17.10")))
	assert.True(t, q.SGST.Equal(decimal.RequireFromString("17.10")))
	assert.True(t, q.Total.Equal(decimal.RequireFromString("224.20")))
}
