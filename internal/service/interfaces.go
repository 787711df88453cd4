package service

import (
	"context"

	"freshcart/internal/domain"
)

// CatalogRepository is the authoritative catalog collaborator.
type CatalogRepository interface {
	GetPrices(ctx context.Context, productIDs []int64) (map[int64]domain.PriceUpdate, error)
	GetVendorLocation(ctx context.Context, vendorID int64) (domain.LatLng, error)
	GetCategories(ctx context.Context, categoryIDs []int64) (map[int64]domain.Category, error)
}

// CouponRepository looks up coupon definitions.
type CouponRepository interface {
	GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
}

// FeeQuoter maps a distance to a delivery fee. The pricing tiers behind it are opaque.
type FeeQuoter interface {
	FeeForDistance(ctx context.Context, distanceKm float64) (float64, error)
}

type CartStore interface {
	Load(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, userID string, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

type DiscountStore interface {
	Load(ctx context.Context, userID string) (*domain.ActiveDiscount, error)
	Save(ctx context.Context, userID string, discount *domain.ActiveDiscount) error
	Delete(ctx context.Context, userID string) error
}

type WishlistStore interface {
	Load(ctx context.Context, userID string) ([]int64, error)
	Save(ctx context.Context, userID string, productIDs []int64) error
}

// DraftPublisher hands the composed order group off to the order-creation collaborator.
type DraftPublisher interface {
	PublishDraft(ctx context.Context, draft *domain.OrderGroupDraft) error
}

// DiscountRevalidator recomputes or drops the active discount after a cart change.
type DiscountRevalidator interface {
	Revalidate(ctx context.Context, userID string, cart *domain.Cart) error
}

type CartServiceInterface interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddToCart(ctx context.Context, userID string, product domain.Product) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID string, productID int64, delta int) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type WishlistServiceInterface interface {
	List(ctx context.Context, userID string) ([]int64, error)
	Contains(ctx context.Context, userID string, productID int64) (bool, error)
	Add(ctx context.Context, userID string, productID int64) error
	Remove(ctx context.Context, userID string, productID int64) error
}

type CouponServiceInterface interface {
	Apply(ctx context.Context, userID, code string) (*domain.ActiveDiscount, error)
	Remove(ctx context.Context, userID string) error
	ListForCart(ctx context.Context, userID string) ([]RankedCoupon, error)
}

type CheckoutServiceInterface interface {
	Quote(ctx context.Context, userID string, address domain.LatLng) (*domain.OrderGroupDraft, error)
	PlaceOrder(ctx context.Context, userID string, address domain.LatLng) (*domain.OrderGroupDraft, error)
}

type ReconcilerInterface interface {
	Refresh(ctx context.Context, userID string) (*domain.Cart, error)
	RefreshStrict(ctx context.Context, userID string) (*domain.Cart, error)
}
