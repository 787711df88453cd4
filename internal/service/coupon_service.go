package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freshcart/internal/domain"
)

// CouponService applies, removes and ranks coupons against a user's cart, and keeps the
// active discount consistent with the cart as it changes.
type CouponService struct {
	coupons     CouponRepository
	catalog     CatalogRepository
	carts       CartStore
	discounts   DiscountStore
	generations *Generations
}

func NewCouponService(coupons CouponRepository, catalog CatalogRepository, carts CartStore, discounts DiscountStore, generations *Generations) *CouponService {
	return &CouponService{
		coupons:     coupons,
		catalog:     catalog,
		carts:       carts,
		discounts:   discounts,
		generations: generations,
	}
}

func (s *CouponService) Apply(ctx context.Context, userID, code string) (*domain.ActiveDiscount, error) {
	coupon, err := s.coupons.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	categories, err := s.cartCategories(ctx, cart)
	if err != nil {
		return nil, err
	}

	eligibility := CheckEligibility(*coupon, cart, categories)
	if !eligibility.IsEligible {
		return nil, fmt.Errorf("%w: %s", ErrCouponNotEligible, eligibility.Reason)
	}

	discount := &domain.ActiveDiscount{
		Coupon:         *coupon,
		DiscountAmount: DiscountAmount(*coupon, cart.TotalPrice),
		AppliedAt:      time.Now(),
	}
	if err := s.discounts.Save(ctx, userID, discount); err != nil {
		return nil, err
	}
	s.generations.Bump(userID)
	return discount, nil
}

func (s *CouponService) Remove(ctx context.Context, userID string) error {
	if err := s.discounts.Delete(ctx, userID); err != nil {
		return err
	}
	s.generations.Bump(userID)
	return nil
}

func (s *CouponService) ListForCart(ctx context.Context, userID string) ([]RankedCoupon, error) {
	coupons, err := s.coupons.ListCoupons(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Load(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrCartNotFound) {
			return nil, err
		}
		cart = emptyCart(userID)
	}

	categories, err := s.cartCategories(ctx, cart)
	if err != nil {
		return nil, err
	}

	return RankCoupons(coupons, cart, categories), nil
}

// Revalidate recomputes the active discount against the changed cart, dropping it when
// the coupon no longer qualifies. The frozen amount is never reused.
func (s *CouponService) Revalidate(ctx context.Context, userID string, cart *domain.Cart) error {
	discount, err := s.discounts.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrDiscountNotFound) {
			return nil
		}
		return err
	}

	if len(cart.Lines) == 0 {
		return s.discounts.Delete(ctx, userID)
	}

	categories, err := s.cartCategories(ctx, cart)
	if err != nil {
		return err
	}

	eligibility := CheckEligibility(discount.Coupon, cart, categories)
	if !eligibility.IsEligible {
		return s.discounts.Delete(ctx, userID)
	}

	discount.DiscountAmount = DiscountAmount(discount.Coupon, cart.TotalPrice)
	return s.discounts.Save(ctx, userID, discount)
}

func (s *CouponService) cartCategories(ctx context.Context, cart *domain.Cart) (map[int64]domain.Category, error) {
	seen := make(map[int64]bool)
	var ids []int64
	for _, line := range cart.Lines {
		if !seen[line.Product.CategoryID] {
			seen[line.Product.CategoryID] = true
			ids = append(ids, line.Product.CategoryID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	categories, err := s.catalog.GetCategories(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("category metadata lookup: %w", err)
	}
	return categories, nil
}

var (
	_ CouponServiceInterface = (*CouponService)(nil)
	_ DiscountRevalidator    = (*CouponService)(nil)
)
