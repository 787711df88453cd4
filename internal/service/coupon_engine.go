package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"freshcart/internal/domain"
)

// ConflictingItem identifies a cart line that blocks a coupon, so the caller can show
// "remove these items" guidance.
type ConflictingItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
}

type Eligibility struct {
	IsEligible       bool              `json:"is_eligible"`
	Reason           string            `json:"reason,omitempty"`
	Shortfall        float64           `json:"shortfall,omitempty"`
	ConflictingItems []ConflictingItem `json:"conflicting_items,omitempty"`
}

type RankedCoupon struct {
	Coupon         domain.Coupon `json:"coupon"`
	Eligibility    Eligibility   `json:"eligibility"`
	DiscountAmount float64       `json:"discount_amount"`
}

var (
	vegKeywords  = []string{"veg", "vegetable"}
	meatKeywords = []string{"meat", "chicken", "fish", "seafood", "non-veg"}
)

// CheckEligibility decides whether the coupon can be applied to the cart, checking in
// order and short-circuiting on the first failure. categories carries metadata for the
// category ids present in the cart (may be nil when no category coupon is involved).
func CheckEligibility(coupon domain.Coupon, cart *domain.Cart, categories map[int64]domain.Category) Eligibility {
	if cart.TotalPrice < coupon.MinOrderAmount {
		shortfall := math.Round(coupon.MinOrderAmount - cart.TotalPrice)
		return Eligibility{
			IsEligible: false,
			Reason:     fmt.Sprintf("add %.0f more to use this coupon", shortfall),
			Shortfall:  shortfall,
		}
	}

	switch coupon.ApplicableTo {
	case domain.ScopeAll:
		return Eligibility{IsEligible: true}

	case domain.ScopeCategory:
		return checkCategoryScope(coupon, cart, categories)

	case domain.ScopeProduct:
		if _, ok := cart.Lines[coupon.ApplicableID]; ok {
			return Eligibility{IsEligible: true}
		}
		return Eligibility{IsEligible: false, Reason: "required product is not in the cart"}

	case domain.ScopeVendor:
		for _, line := range cart.Lines {
			if line.Product.VendorID == coupon.ApplicableID {
				return Eligibility{IsEligible: true}
			}
		}
		return Eligibility{IsEligible: false, Reason: "no items from this vendor"}
	}

	return Eligibility{IsEligible: false, Reason: "unknown coupon scope"}
}

func checkCategoryScope(coupon domain.Coupon, cart *domain.Cart, categories map[int64]domain.Category) Eligibility {
	matched := false
	for _, line := range cart.Lines {
		if line.Product.CategoryID == coupon.ApplicableID {
			matched = true
			break
		}
	}
	if !matched {
		return Eligibility{IsEligible: false, Reason: "no items from category"}
	}

	category, ok := categories[coupon.ApplicableID]
	if !ok || !isVegOriented(category) {
		return Eligibility{IsEligible: true}
	}

	// A veg-oriented coupon conflicts with any explicitly non-veg line in the cart.
	var conflicts []ConflictingItem
	for _, line := range cart.Lines {
		if !line.Product.IsVeg {
			conflicts = append(conflicts, ConflictingItem{
				ProductID: line.Product.ID,
				Name:      line.Product.Name,
			})
		}
	}
	if len(conflicts) > 0 {
		sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].ProductID < conflicts[j].ProductID })
		return Eligibility{
			IsEligible:       false,
			Reason:           "remove non-veg items to use this coupon",
			ConflictingItems: conflicts,
		}
	}
	return Eligibility{IsEligible: true}
}

// isVegOriented classifies a category by keyword matching against its name and slug.
// This is a heuristic, not a modeled attribute: meat keywords take precedence because
// "non-veg" itself contains "veg".
func isVegOriented(category domain.Category) bool {
	haystack := strings.ToLower(category.Name + " " + category.Slug)
	for _, kw := range meatKeywords {
		if strings.Contains(haystack, kw) {
			return false
		}
	}
	for _, kw := range vegKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// DiscountAmount computes the achievable discount, never exceeding the order amount.
func DiscountAmount(coupon domain.Coupon, orderAmount float64) float64 {
	if orderAmount <= 0 {
		return 0
	}

	var raw float64
	switch coupon.DiscountType {
	case domain.DiscountFlat:
		raw = coupon.DiscountValue
	case domain.DiscountPercent:
		raw = orderAmount * coupon.DiscountValue / 100
		if coupon.MaxDiscount != nil && raw > *coupon.MaxDiscount {
			raw = *coupon.MaxDiscount
		}
	default:
		return 0
	}

	return math.Min(raw, orderAmount)
}

// RankCoupons orders candidates for presentation: eligible first by discount descending,
// then ineligible by shortfall ascending (closest to qualifying first). The sort is
// stable and the input slice is not mutated.
func RankCoupons(coupons []domain.Coupon, cart *domain.Cart, categories map[int64]domain.Category) []RankedCoupon {
	ranked := make([]RankedCoupon, 0, len(coupons))
	for _, coupon := range coupons {
		eligibility := CheckEligibility(coupon, cart, categories)
		entry := RankedCoupon{Coupon: coupon, Eligibility: eligibility}
		if eligibility.IsEligible {
			entry.DiscountAmount = DiscountAmount(coupon, cart.TotalPrice)
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Eligibility.IsEligible != b.Eligibility.IsEligible {
			return a.Eligibility.IsEligible
		}
		if a.Eligibility.IsEligible {
			return a.DiscountAmount > b.DiscountAmount
		}
		return a.Eligibility.Shortfall < b.Eligibility.Shortfall
	})

	return ranked
}
