package service

import (
	"math"
	"sort"
	"time"

	"freshcart/internal/domain"
)

// ComposeOrder assembles the vendor-partitioned checkout breakdown. It is a pure
// function over its inputs: no I/O, no persistence, no payment calls.
func ComposeOrder(cart *domain.Cart, discount *domain.ActiveDiscount, quote *domain.DeliveryQuote, address domain.LatLng) *domain.OrderGroupDraft {
	draft := &domain.OrderGroupDraft{
		UserID:          cart.UserID,
		DeliveryAddress: address,
		CreatedAt:       time.Now(),
	}

	byVendor := make(map[int64]*domain.VendorOrder)
	for _, line := range cart.Lines {
		vendorID := line.Product.VendorID
		order, ok := byVendor[vendorID]
		if !ok {
			order = &domain.VendorOrder{VendorID: vendorID}
			byVendor[vendorID] = order
		}
		order.Lines = append(order.Lines, *line)
		order.Subtotal += line.Product.EffectivePrice() * float64(line.Quantity)
	}

	fees := make(map[int64]domain.VendorDeliveryInfo)
	if quote != nil {
		draft.Degraded = quote.Degraded
		for _, info := range quote.Vendors {
			fees[info.VendorID] = info
		}
	}

	for _, order := range byVendor {
		if info, ok := fees[order.VendorID]; ok {
			order.DeliveryFee = info.DeliveryFee
			order.OriginalFee = info.OriginalFee
		}
		sort.Slice(order.Lines, func(i, j int) bool {
			return order.Lines[i].Product.ID < order.Lines[j].Product.ID
		})
		draft.Vendors = append(draft.Vendors, *order)
		draft.ItemsSubtotal += order.Subtotal
		draft.DeliveryFee += order.DeliveryFee
	}
	sort.Slice(draft.Vendors, func(i, j int) bool {
		return draft.Vendors[i].VendorID < draft.Vendors[j].VendorID
	})

	if discount != nil {
		draft.CouponCode = discount.Coupon.Code
		draft.DiscountAmount = allocateDiscount(discount, draft)
	}

	draft.GrandTotal = math.Max(0, draft.ItemsSubtotal+draft.DeliveryFee-draft.DiscountAmount)
	return draft
}

// allocateDiscount attributes the discount to the order as a whole. Only a
// vendor-scoped coupon narrows the discount base to that vendor's subtotal;
// pro-rating across vendors is deliberately not done.
func allocateDiscount(discount *domain.ActiveDiscount, draft *domain.OrderGroupDraft) float64 {
	amount := discount.DiscountAmount

	if discount.Coupon.ApplicableTo == domain.ScopeVendor {
		for _, order := range draft.Vendors {
			if order.VendorID == discount.Coupon.ApplicableID {
				return math.Min(amount, order.Subtotal)
			}
		}
		return 0
	}

	return math.Min(amount, draft.ItemsSubtotal)
}
