package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"freshcart/internal/domain"
)

// CheckoutService runs the checkout pipeline: strict price reconciliation, discount
// revalidation, per-vendor delivery fees, then composition into an OrderGroupDraft.
type CheckoutService struct {
	reconciler  ReconcilerInterface
	discounts   DiscountStore
	coupons     DiscountRevalidator
	fees        *DeliveryFeeService
	publisher   DraftPublisher
	qrEncoder   QRGenerator
	generations *Generations
}

func NewCheckoutService(reconciler ReconcilerInterface, discounts DiscountStore, coupons DiscountRevalidator, fees *DeliveryFeeService, publisher DraftPublisher, qrEncoder QRGenerator, generations *Generations) *CheckoutService {
	return &CheckoutService{
		reconciler:  reconciler,
		discounts:   discounts,
		coupons:     coupons,
		fees:        fees,
		publisher:   publisher,
		qrEncoder:   qrEncoder,
		generations: generations,
	}
}

// Quote produces the final checkout breakdown. Stale prices never reach the quote: the
// strict reconcile runs first and a catalog failure blocks checkout with a retryable
// error. If the cart, coupon or address changed while the quote was being computed the
// result is discarded and ErrQuoteSuperseded returned.
func (s *CheckoutService) Quote(ctx context.Context, userID string, address domain.LatLng) (*domain.OrderGroupDraft, error) {
	generation := s.generations.Current(userID)

	cart, err := s.reconciler.RefreshStrict(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Recompute the discount against reconciled prices before it is trusted.
	if err := s.coupons.Revalidate(ctx, userID, cart); err != nil {
		return nil, fmt.Errorf("revalidate discount: %w", err)
	}

	discount, err := s.discounts.Load(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrDiscountNotFound) {
			return nil, err
		}
		discount = nil
	}

	couponFreeDelivery := discount != nil && discount.Coupon.IncludesFreeDelivery
	quote, err := s.fees.Quote(ctx, cart, address, couponFreeDelivery)
	if err != nil {
		return nil, fmt.Errorf("delivery quote: %w", err)
	}

	draft := ComposeOrder(cart, discount, quote, address)

	if s.generations.Current(userID) != generation {
		return nil, ErrQuoteSuperseded
	}
	return draft, nil
}

// PlaceOrder publishes the composed draft to the order-creation collaborator. The cart
// is cleared by the order-events consumer once the order is actually persisted.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, address domain.LatLng) (*domain.OrderGroupDraft, error) {
	draft, err := s.Quote(ctx, userID, address)
	if err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(userID, draft.GrandTotal); err == nil {
			draft.QRCode = qr
		} else {
			log.Printf("qr generation failed for user %s: %v", userID, err)
		}
	}

	if err := s.publisher.PublishDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("publish order draft: %w", err)
	}
	return draft, nil
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)
