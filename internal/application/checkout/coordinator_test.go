package checkout_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/application/checkout"
	"github.com/quickserve/pos-api/internal/domain/cart"
	"github.com/quickserve/pos-api/internal/domain/entity"
	"github.com/quickserve/pos-api/internal/domain/enum"
	"github.com/quickserve/pos-api/internal/presentation/http/dto/request"
	"github.com/quickserve/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCommitter records whether Commit was called and returns a canned result
type fakeCommitter struct {
	called  bool
	lastReq *request.CreateOrderRequest
	order   *entity.Order
	err     error
}

func (f *fakeCommitter) Commit(ctx context.Context, req *request.CreateOrderRequest) (*entity.Order, error) {
	f.called = true
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

func submittableDraft() cart.Draft {
	d := cart.Draft{}
	d = cart.Reduce(d, cart.SelectStore{StoreID: uuid.New()})
	d = cart.Reduce(d, cart.AddItem{Item: cart.Item{
		VariantID: uuid.New(),
		Quantity:  1,
		UnitPrice: decimal.RequireFromString("100"),
	}})
	d = cart.Reduce(d, cart.SetPaymentMethod{Method: enum.PaymentMethodCard})
	return d
}

func TestValidateFailsFastWithoutCommit(t *testing.T) {
	tests := []struct {
		name  string
		draft func() cart.Draft
	}{
		{"no store selected", func() cart.Draft {
			d := submittableDraft()
			d.StoreID = nil
			return d
		}},
		{"empty cart", func() cart.Draft {
			d := submittableDraft()
			return cart.Reduce(d, cart.Reset{})
		}},
		{"no payment method", func() cart.Draft {
			d := submittableDraft()
			d.PaymentMethod = ""
			return d
		}},
		{"cash without amount received", func() cart.Draft {
			d := submittableDraft()
			return cart.Reduce(d, cart.SetPaymentMethod{Method: enum.PaymentMethodCash})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			committer := &fakeCommitter{}
			co := checkout.NewCoordinator(committer)

			draft := tt.draft()
			next, order, err := co.Submit(context.Background(), draft)

			require.Error(t, err)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation))
			assert.False(t, committer.called, "validation failure must not reach the committer")
			assert.Nil(t, order)
			assert.Equal(t, draft, next, "draft unchanged on failure")
		})
	}
}

func TestSubmitResetsDraftOnSuccess(t *testing.T) {
	committer := &fakeCommitter{order: &entity.Order{ID: uuid.New()}}
	co := checkout.NewCoordinator(committer)

	draft := submittableDraft()
	storeID := *draft.StoreID

	next, order, err := co.Submit(context.Background(), draft)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, committer.order.ID, order.ID)

	// Reset keeps the store, clears everything else
	require.NotNil(t, next.StoreID)
	assert.Equal(t, storeID, *next.StoreID)
	assert.Empty(t, next.Items)
	assert.Empty(t, next.Charges)
	assert.Equal(t, enum.PaymentMethod(""), next.PaymentMethod)
	assert.Nil(t, next.AmountReceived)
}

func TestSubmitKeepsDraftOnCommitFailure(t *testing.T) {
	committer := &fakeCommitter{err: apperror.NewInsufficientStockError(uuid.New().String())}
	co := checkout.NewCoordinator(committer)

	draft := submittableDraft()
	next, order, err := co.Submit(context.Background(), draft)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))
	assert.Nil(t, order)
	assert.True(t, committer.called)
	assert.Equal(t, draft, next, "a failed commit leaves the cart intact for retry")
}

func TestSubmitSerializesDraft(t *testing.T) {
	committer := &fakeCommitter{order: &entity.Order{ID: uuid.New()}}
	co := checkout.NewCoordinator(committer)

	chargeID := uuid.New()
	d := submittableDraft()
	d = cart.Reduce(d, cart.AddCharge{Charge: cart.AppliedCharge{
		ChargeID:  chargeID,
		Name:      "Packing",
		Amount:    decimal.RequireFromString("10"),
		IsTaxable: true,
	}})
	d = cart.Reduce(d, cart.SetDiscount{Value: decimal.RequireFromString("20")})
	d = cart.Reduce(d, cart.SetCustomerName{Value: "Asha"})

	_, _, err := co.Submit(context.Background(), d)
	require.NoError(t, err)

	req := committer.lastReq
	require.NotNil(t, req)
	assert.Equal(t, *d.StoreID, req.StoreID)
	require.Len(t, req.Items, 1)
	assert.Equal(t, d.Items[0].VariantID, req.Items[0].VariantID)
	assert.Equal(t, 1, req.Items[0].Quantity)
	require.Len(t, req.AppliedCharges, 1)
	assert.Equal(t, chargeID, req.AppliedCharges[0].ChargeID)
	assert.True(t, req.AppliedCharges[0].AmountCharged.Equal(decimal.RequireFromString("10")))
	assert.True(t, req.DiscountAmount.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, "Card", req.PaymentMethod)
	assert.Equal(t, "Asha", req.CustomerName)
}
