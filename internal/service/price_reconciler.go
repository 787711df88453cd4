package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"freshcart/internal/domain"
)

// PriceReconciler keeps cart line prices from drifting from the authoritative catalog.
// The client triggers Refresh on start and on every background-to-foreground transition;
// checkout uses RefreshStrict so stale prices can never reach payment.
type PriceReconciler struct {
	catalog CatalogRepository
	store   CartStore
}

func NewPriceReconciler(catalog CatalogRepository, store CartStore) *PriceReconciler {
	return &PriceReconciler{catalog: catalog, store: store}
}

// Refresh overwrites each cart line's embedded price fields from one batched catalog
// call. A fetch failure keeps the last-known prices and is not surfaced; the operation
// is idempotent and retried on the next trigger.
func (r *PriceReconciler) Refresh(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := r.refresh(ctx, userID)
	if err != nil {
		log.Printf("price refresh for user %s kept last-known prices: %v", userID, err)
		cart, loadErr := r.store.Load(ctx, userID)
		if loadErr != nil {
			return nil, loadErr
		}
		return cart, nil
	}
	return cart, nil
}

// RefreshStrict is the checkout-time variant: a fetch failure blocks checkout.
func (r *PriceReconciler) RefreshStrict(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := r.refresh(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPriceRefreshFailed, err)
	}
	return cart, nil
}

func (r *PriceReconciler) refresh(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := r.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return emptyCart(userID), nil
		}
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return cart, nil
	}

	ids := make([]int64, 0, len(cart.Lines))
	for id := range cart.Lines {
		ids = append(ids, id)
	}

	updates, err := r.catalog.GetPrices(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("batched price lookup: %w", err)
	}

	// Quantities are untouched; only the embedded snapshots are rewritten.
	for id, line := range cart.Lines {
		update, ok := updates[id]
		if !ok {
			continue
		}
		line.Product.Price = update.Price
		line.Product.DiscountPrice = update.DiscountPrice
	}

	cart.Recompute()
	cart.UpdatedAt = time.Now()

	if err := r.store.Save(ctx, userID, cart); err != nil {
		return nil, fmt.Errorf("persist reconciled cart: %w", err)
	}
	return cart, nil
}

var _ ReconcilerInterface = (*PriceReconciler)(nil)
