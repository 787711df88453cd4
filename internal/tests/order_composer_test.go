package tests

import (
	"testing"

	"freshcart/internal/domain"
	"freshcart/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeOrder_VendorPartition(t *testing.T) {
	cart := cartWith(
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, Name: "Rice", Price: 100}, Quantity: 2},
		domain.CartLine{Product: domain.Product{ID: 2, VendorID: 200, Name: "Milk", Price: 50}, Quantity: 1},
	)
	quote := &domain.DeliveryQuote{
		Vendors: []domain.VendorDeliveryInfo{
			{VendorID: 100, OriginalFee: 25, DeliveryFee: 25},
			{VendorID: 200, OriginalFee: 40, DeliveryFee: 40},
		},
	}

	draft := service.ComposeOrder(cart, nil, quote, domain.LatLng{Latitude: 1, Longitude: 2})

	require.Len(t, draft.Vendors, 2)
	assert.Equal(t, int64(100), draft.Vendors[0].VendorID)
	assert.Equal(t, 200.0, draft.Vendors[0].Subtotal)
	assert.Equal(t, 25.0, draft.Vendors[0].DeliveryFee)
	assert.Equal(t, int64(200), draft.Vendors[1].VendorID)
	assert.Equal(t, 50.0, draft.Vendors[1].Subtotal)
	assert.Equal(t, 250.0, draft.ItemsSubtotal)
	assert.Equal(t, 65.0, draft.DeliveryFee)
	assert.Equal(t, 315.0, draft.GrandTotal)
}

func TestComposeOrder_WholeOrderDiscount(t *testing.T) {
	cart := cartWith(
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, Price: 100}, Quantity: 2},
		domain.CartLine{Product: domain.Product{ID: 2, VendorID: 200, Price: 50}, Quantity: 1},
	)
	discount := &domain.ActiveDiscount{
		Coupon:         domain.Coupon{Code: "SAVE20", ApplicableTo: domain.ScopeAll},
		DiscountAmount: 20,
	}

	draft := service.ComposeOrder(cart, discount, &domain.DeliveryQuote{}, domain.LatLng{})

	assert.Equal(t, "SAVE20", draft.CouponCode)
	assert.Equal(t, 20.0, draft.DiscountAmount)
	assert.Equal(t, 230.0, draft.GrandTotal)
}

func TestComposeOrder_VendorScopedDiscountLimitedToVendorSubtotal(t *testing.T) {
	cart := cartWith(
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, Price: 40}, Quantity: 1},
		domain.CartLine{Product: domain.Product{ID: 2, VendorID: 200, Price: 300}, Quantity: 1},
	)
	discount := &domain.ActiveDiscount{
		Coupon:         domain.Coupon{Code: "V100", ApplicableTo: domain.ScopeVendor, ApplicableID: 100},
		DiscountAmount: 100,
	}

	draft := service.ComposeOrder(cart, discount, &domain.DeliveryQuote{}, domain.LatLng{})

	// Discount base is vendor 100's subtotal (40), not the whole order.
	assert.Equal(t, 40.0, draft.DiscountAmount)
	assert.Equal(t, 300.0, draft.GrandTotal)
}

func TestComposeOrder_GrandTotalFlooredAtZero(t *testing.T) {
	cart := cartWith(
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, Price: 10}, Quantity: 1},
	)
	discount := &domain.ActiveDiscount{
		Coupon:         domain.Coupon{Code: "HUGE", ApplicableTo: domain.ScopeAll},
		DiscountAmount: 10,
	}
	quote := &domain.DeliveryQuote{Vendors: []domain.VendorDeliveryInfo{{VendorID: 100}}}

	draft := service.ComposeOrder(cart, discount, quote, domain.LatLng{})
	assert.GreaterOrEqual(t, draft.GrandTotal, 0.0)
	assert.Equal(t, 0.0, draft.GrandTotal)
}

func TestComposeOrder_DegradedFlagPropagates(t *testing.T) {
	cart := cartWith(domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, Price: 10}, Quantity: 1})
	quote := &domain.DeliveryQuote{
		Degraded: true,
		Vendors:  []domain.VendorDeliveryInfo{{VendorID: 100, OriginalFee: 30, DeliveryFee: 30, LookupFailed: true}},
	}

	draft := service.ComposeOrder(cart, nil, quote, domain.LatLng{})
	assert.True(t, draft.Degraded)
}
