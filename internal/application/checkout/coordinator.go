// Package checkout bridges the cart draft and the order commit endpoint. It
// validates what can be validated without a network call, serializes the
// draft into a commit request, and resets the cart only after a successful
// commit.
package checkout

import (
	"context"

	"github.com/quickserve/pos-api/internal/domain/cart"
	"github.com/quickserve/pos-api/internal/domain/entity"
	"github.com/quickserve/pos-api/internal/presentation/http/dto/request"
	"github.com/quickserve/pos-api/pkg/apperror"
)

// Committer executes the atomic server-side commit. pkg/client provides the
// HTTP implementation; tests use in-memory fakes.
type Committer interface {
	Commit(ctx context.Context, req *request.CreateOrderRequest) (*entity.Order, error)
}

// Coordinator serializes drafts and drives submission
type Coordinator struct {
	committer Committer
}

// NewCoordinator creates a new submission coordinator
func NewCoordinator(committer Committer) *Coordinator {
	return &Coordinator{committer: committer}
}

// Validate runs the fail-fast preconditions. A returned error is always a
// validation AppError and means no commit was attempted.
func (co *Coordinator) Validate(d cart.Draft) error {
	if d.StoreID == nil {
		return apperror.NewBadRequestError("Select a store before submitting")
	}
	if len(d.Items) == 0 {
		return apperror.NewBadRequestError("Order must contain at least one item")
	}
	if d.PaymentMethod == "" {
		return apperror.NewBadRequestError("Select a payment method before submitting")
	}
	if d.PaymentMethod.IsCash() && d.AmountReceived == nil {
		return apperror.NewBadRequestError("Cash payments require the amount received")
	}
	return nil
}

// Submit validates the draft, commits it, and returns the draft to carry
// forward: reset (store retained) on success, bit-for-bit unchanged on any
// failure. The persisted order is returned for receipt display.
func (co *Coordinator) Submit(ctx context.Context, d cart.Draft) (cart.Draft, *entity.Order, error) {
	if err := co.Validate(d); err != nil {
		return d, nil, err
	}

	order, err := co.committer.Commit(ctx, serialize(d))
	if err != nil {
		return d, nil, err
	}

	return cart.Reduce(d, cart.Reset{}), order, nil
}

// serialize reduces the draft to the wire shape: items to
// {variantId, quantity, unit_price}, charges to {chargeId, amount_charged}.
func serialize(d cart.Draft) *request.CreateOrderRequest {
	items := make([]request.OrderItemRequest, len(d.Items))
	for i, it := range d.Items {
		items[i] = request.OrderItemRequest{
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}

	charges := make([]request.AppliedChargeRequest, len(d.Charges))
	for i, c := range d.Charges {
		charges[i] = request.AppliedChargeRequest{
			ChargeID:      c.ChargeID,
			AmountCharged: c.Amount,
		}
	}

	return &request.CreateOrderRequest{
		StoreID:        *d.StoreID,
		Items:          items,
		AppliedCharges: charges,
		DiscountAmount: d.Discount,
		PaymentMethod:  d.PaymentMethod.String(),
		AmountReceived: d.AmountReceived,
		CustomerName:   d.CustomerName,
		CustomerPhone:  d.CustomerPhone,
		AggregatorID:   d.AggregatorID,
		Notes:          d.Notes,
	}
}
