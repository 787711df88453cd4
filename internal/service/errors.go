package service

import "errors"

var (
	ErrCartNotFound       = errors.New("cart not found")
	ErrDiscountNotFound   = errors.New("no active discount")
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrCouponNotEligible  = errors.New("coupon is not eligible for this cart")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrPriceRefreshFailed = errors.New("could not refresh catalog prices")
	ErrQuoteSuperseded    = errors.New("checkout quote superseded by a newer cart change")
)
