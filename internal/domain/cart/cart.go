// Package cart holds the in-progress order draft and the pure reducer that
// advances it. Every transition is total: reducing never fails, it only
// returns the next draft value.
package cart

import (
	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/enum"
	"github.com/quickserve/pos-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// Item is one product variant line in the draft. Identity key is VariantID.
type Item struct {
	VariantID   uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	VariantName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// AppliedCharge is a catalog charge toggled onto the draft. Identity key is ChargeID.
type AppliedCharge struct {
	ChargeID  uuid.UUID
	Name      string
	Amount    decimal.Decimal
	IsTaxable bool
}

// Draft is the clerk's not-yet-submitted order. The zero value is an empty
// draft with no store selected.
type Draft struct {
	StoreID        *uuid.UUID
	Items          []Item
	Charges        []AppliedCharge
	Discount       decimal.Decimal
	PaymentMethod  enum.PaymentMethod
	AmountReceived *decimal.Decimal
	CustomerName   string
	CustomerPhone  string
	AggregatorID   string
	Notes          string
}

// Totals derives the price breakdown for the current draft
func (d Draft) Totals() pricing.Quote {
	items := make([]pricing.LineItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = pricing.LineItem{UnitPrice: it.UnitPrice, Quantity: it.Quantity}
	}
	charges := make([]pricing.ChargeLine, len(d.Charges))
	for i, c := range d.Charges {
		charges[i] = pricing.ChargeLine{Amount: c.Amount, IsTaxable: c.IsTaxable}
	}
	return pricing.Price(items, charges, d.Discount)
}

// HasCharge reports whether a charge with the given id is applied
func (d Draft) HasCharge(chargeID uuid.UUID) bool {
	for _, c := range d.Charges {
		if c.ChargeID == chargeID {
			return true
		}
	}
	return false
}

// Action is a cart transition. The set is closed; see the concrete types below.
type Action interface {
	isAction()
}

type SelectStore struct{ StoreID uuid.UUID }

// AddItem appends a catalog tap; an existing line with the same variant is
// incremented by one instead.
type AddItem struct{ Item Item }

type IncrementItem struct{ VariantID uuid.UUID }
type DecrementItem struct{ VariantID uuid.UUID }
type RemoveItem struct{ VariantID uuid.UUID }

type AddCharge struct{ Charge AppliedCharge }
type RemoveCharge struct{ ChargeID uuid.UUID }

type SetDiscount struct{ Value decimal.Decimal }
type SetPaymentMethod struct{ Method enum.PaymentMethod }
type SetAmountReceived struct{ Value decimal.Decimal }
type SetCustomerName struct{ Value string }
type SetCustomerPhone struct{ Value string }
type SetAggregatorID struct{ Value string }
type SetNotes struct{ Value string }

// Reset clears everything except the selected store
type Reset struct{}

func (SelectStore) isAction()       {}
func (AddItem) isAction()           {}
func (IncrementItem) isAction()     {}
func (DecrementItem) isAction()     {}
func (RemoveItem) isAction()        {}
func (AddCharge) isAction()         {}
func (RemoveCharge) isAction()      {}
func (SetDiscount) isAction()       {}
func (SetPaymentMethod) isAction()  {}
func (SetAmountReceived) isAction() {}
func (SetCustomerName) isAction()   {}
func (SetCustomerPhone) isAction()  {}
func (SetAggregatorID) isAction()   {}
func (SetNotes) isAction()          {}
func (Reset) isAction()             {}

// Reduce maps (draft, action) to the next draft. It never mutates its input:
// item and charge slices are copied before changing.
func Reduce(d Draft, a Action) Draft {
	switch act := a.(type) {
	case SelectStore:
		id := act.StoreID
		return Draft{StoreID: &id, Discount: decimal.Zero}

	case AddItem:
		for i, it := range d.Items {
			if it.VariantID == act.Item.VariantID {
				items := copyItems(d.Items)
				items[i].Quantity++
				d.Items = items
				return d
			}
		}
		item := act.Item
		item.Quantity = 1
		d.Items = append(copyItems(d.Items), item)
		return d

	case IncrementItem:
		items := copyItems(d.Items)
		for i := range items {
			if items[i].VariantID == act.VariantID {
				items[i].Quantity++
			}
		}
		d.Items = items
		return d

	case DecrementItem:
		items := make([]Item, 0, len(d.Items))
		for _, it := range d.Items {
			if it.VariantID == act.VariantID {
				it.Quantity--
			}
			if it.Quantity > 0 {
				items = append(items, it)
			}
		}
		d.Items = items
		return d

	case RemoveItem:
		items := make([]Item, 0, len(d.Items))
		for _, it := range d.Items {
			if it.VariantID != act.VariantID {
				items = append(items, it)
			}
		}
		d.Items = items
		return d

	case AddCharge:
		// set semantics: a second add of the same charge is a no-op
		if d.HasCharge(act.Charge.ChargeID) {
			return d
		}
		d.Charges = append(copyCharges(d.Charges), act.Charge)
		return d

	case RemoveCharge:
		charges := make([]AppliedCharge, 0, len(d.Charges))
		for _, c := range d.Charges {
			if c.ChargeID != act.ChargeID {
				charges = append(charges, c)
			}
		}
		d.Charges = charges
		return d

	case SetDiscount:
		d.Discount = act.Value
		return d

	case SetPaymentMethod:
		d.PaymentMethod = act.Method
		return d

	case SetAmountReceived:
		v := act.Value
		d.AmountReceived = &v
		return d

	case SetCustomerName:
		d.CustomerName = act.Value
		return d

	case SetCustomerPhone:
		d.CustomerPhone = act.Value
		return d

	case SetAggregatorID:
		d.AggregatorID = act.Value
		return d

	case SetNotes:
		d.Notes = act.Value
		return d

	case Reset:
		return Draft{StoreID: d.StoreID, Discount: decimal.Zero}
	}
	return d
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func copyCharges(charges []AppliedCharge) []AppliedCharge {
	out := make([]AppliedCharge, len(charges))
	copy(out, charges)
	return out
}
