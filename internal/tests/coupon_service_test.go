package tests

import (
	"context"
	"testing"

	"freshcart/internal/domain"
	"freshcart/internal/mocks"
	"freshcart/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type couponFixture struct {
	coupons   *mocks.CouponRepository
	catalog   *mocks.CatalogRepository
	carts     *memCartStore
	discounts *mocks.DiscountStore
	svc       *service.CouponService
}

func newCouponFixture(t *testing.T) *couponFixture {
	f := &couponFixture{
		coupons:   mocks.NewCouponRepository(t),
		catalog:   mocks.NewCatalogRepository(t),
		carts:     newMemCartStore(),
		discounts: mocks.NewDiscountStore(t),
	}
	f.svc = service.NewCouponService(f.coupons, f.catalog, f.carts, f.discounts, service.NewGenerations())
	return f
}

func TestCouponService_Apply(t *testing.T) {
	f := newCouponFixture(t)
	ctx := context.Background()

	seedCart(t, f.carts, "u1",
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, CategoryID: 7, Price: 125}, Quantity: 2},
	)

	coupon := &domain.Coupon{
		ID: 5, Code: "TEN", DiscountType: domain.DiscountPercent, DiscountValue: 10,
		MaxDiscount: floatPtr(20), MinOrderAmount: 100, ApplicableTo: domain.ScopeAll,
	}
	f.coupons.On("GetCouponByCode", ctx, "TEN").Return(coupon, nil).Once()
	f.catalog.On("GetCategories", ctx, []int64{7}).Return(map[int64]domain.Category{}, nil).Once()
	f.discounts.On("Save", ctx, "u1", mock.MatchedBy(func(d *domain.ActiveDiscount) bool {
		return d.Coupon.Code == "TEN" && d.DiscountAmount == 20
	})).Return(nil).Once()

	discount, err := f.svc.Apply(ctx, "u1", "TEN")
	require.NoError(t, err)
	assert.Equal(t, 20.0, discount.DiscountAmount)
}

func TestCouponService_ApplyIneligible(t *testing.T) {
	f := newCouponFixture(t)
	ctx := context.Background()

	seedCart(t, f.carts, "u1",
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, CategoryID: 7, Price: 50}, Quantity: 1},
	)

	coupon := &domain.Coupon{Code: "BIGMIN", MinOrderAmount: 500, ApplicableTo: domain.ScopeAll}
	f.coupons.On("GetCouponByCode", ctx, "BIGMIN").Return(coupon, nil).Once()
	f.catalog.On("GetCategories", ctx, []int64{7}).Return(map[int64]domain.Category{}, nil).Once()

	_, err := f.svc.Apply(ctx, "u1", "BIGMIN")
	assert.ErrorIs(t, err, service.ErrCouponNotEligible)
}

func TestCouponService_ApplyEmptyCart(t *testing.T) {
	f := newCouponFixture(t)
	ctx := context.Background()

	coupon := &domain.Coupon{Code: "TEN", ApplicableTo: domain.ScopeAll}
	f.coupons.On("GetCouponByCode", ctx, "TEN").Return(coupon, nil).Once()

	_, err := f.svc.Apply(ctx, "u1", "TEN")
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestCouponService_RevalidateRecomputesAmount(t *testing.T) {
	f := newCouponFixture(t)
	ctx := context.Background()

	cart := cartWith(
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, CategoryID: 7, Price: 50}, Quantity: 2},
	)
	active := &domain.ActiveDiscount{
		Coupon:         domain.Coupon{Code: "TEN", DiscountType: domain.DiscountPercent, DiscountValue: 10, ApplicableTo: domain.ScopeAll},
		DiscountAmount: 25, // stale amount from a bigger cart
	}

	f.discounts.On("Load", ctx, "u1").Return(active, nil).Once()
	f.catalog.On("GetCategories", ctx, []int64{7}).Return(map[int64]domain.Category{}, nil).Once()
	f.discounts.On("Save", ctx, "u1", mock.MatchedBy(func(d *domain.ActiveDiscount) bool {
		return d.DiscountAmount == 10
	})).Return(nil).Once()

	require.NoError(t, f.svc.Revalidate(ctx, "u1", cart))
}

func TestCouponService_RevalidateDropsIneligibleCoupon(t *testing.T) {
	f := newCouponFixture(t)
	ctx := context.Background()

	cart := cartWith(
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, CategoryID: 7, Price: 50}, Quantity: 1},
	)
	active := &domain.ActiveDiscount{
		Coupon: domain.Coupon{Code: "BIGMIN", MinOrderAmount: 500, ApplicableTo: domain.ScopeAll},
	}

	f.discounts.On("Load", ctx, "u1").Return(active, nil).Once()
	f.catalog.On("GetCategories", ctx, []int64{7}).Return(map[int64]domain.Category{}, nil).Once()
	f.discounts.On("Delete", ctx, "u1").Return(nil).Once()

	require.NoError(t, f.svc.Revalidate(ctx, "u1", cart))
}

func TestCouponService_RevalidateNoActiveDiscount(t *testing.T) {
	f := newCouponFixture(t)
	ctx := context.Background()

	f.discounts.On("Load", ctx, "u1").Return(nil, service.ErrDiscountNotFound).Once()

	require.NoError(t, f.svc.Revalidate(ctx, "u1", cartWith()))
}

func TestCouponService_ListForCartRanksCandidates(t *testing.T) {
	f := newCouponFixture(t)
	ctx := context.Background()

	seedCart(t, f.carts, "u1",
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, CategoryID: 7, Price: 100}, Quantity: 2},
	)

	f.coupons.On("ListCoupons", ctx).Return([]domain.Coupon{
		{ID: 1, Code: "FAR", MinOrderAmount: 900, ApplicableTo: domain.ScopeAll},
		{ID: 2, Code: "BIG", DiscountType: domain.DiscountFlat, DiscountValue: 50, ApplicableTo: domain.ScopeAll},
	}, nil).Once()
	f.catalog.On("GetCategories", ctx, []int64{7}).Return(map[int64]domain.Category{}, nil).Once()

	ranked, err := f.svc.ListForCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "BIG", ranked[0].Coupon.Code)
	assert.True(t, ranked[0].Eligibility.IsEligible)
	assert.Equal(t, "FAR", ranked[1].Coupon.Code)
	assert.False(t, ranked[1].Eligibility.IsEligible)
}
