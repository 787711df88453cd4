package domain

import "time"

type StockStatus string

const (
	StockIn  StockStatus = "in_stock"
	StockOut StockStatus = "out_of_stock"
)

// Product is an immutable catalog snapshot; the authoritative copy lives server-side.
type Product struct {
	ID            int64       `json:"id"`
	VendorID      int64       `json:"vendor_id"`
	CategoryID    int64       `json:"category_id"`
	Name          string      `json:"name"`
	Unit          string      `json:"unit"`
	Price         float64     `json:"price"`
	DiscountPrice *float64    `json:"discount_price,omitempty"`
	IsVeg         bool        `json:"is_veg"`
	StockStatus   StockStatus `json:"stock_status"`
}

// EffectivePrice is the discount price when present and lower, else the list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice < p.Price {
		return *p.DiscountPrice
	}
	return p.Price
}

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	UserID     string              `json:"user_id"`
	Lines      map[int64]*CartLine `json:"lines"`
	TotalItems int                 `json:"total_items"`
	TotalPrice float64             `json:"total_price"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// Recompute rebuilds the derived aggregates from the lines. Aggregates are never
// incrementally adjusted, so they cannot drift from the line set.
func (c *Cart) Recompute() {
	c.TotalItems = 0
	c.TotalPrice = 0
	for _, line := range c.Lines {
		c.TotalItems += line.Quantity
		c.TotalPrice += line.Product.EffectivePrice() * float64(line.Quantity)
	}
}

// VendorIDs returns the distinct vendors present in the cart.
func (c *Cart) VendorIDs() []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, line := range c.Lines {
		if !seen[line.Product.VendorID] {
			seen[line.Product.VendorID] = true
			ids = append(ids, line.Product.VendorID)
		}
	}
	return ids
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFlat    DiscountType = "flat"
)

type CouponScope string

const (
	ScopeAll      CouponScope = "all"
	ScopeCategory CouponScope = "category"
	ScopeProduct  CouponScope = "product"
	ScopeVendor   CouponScope = "vendor"
)

type Coupon struct {
	ID                   int64        `json:"id"`
	Code                 string       `json:"code"`
	DiscountType         DiscountType `json:"discount_type"`
	DiscountValue        float64      `json:"discount_value"`
	MaxDiscount          *float64     `json:"max_discount,omitempty"`
	MinOrderAmount       float64      `json:"min_order_amount"`
	ApplicableTo         CouponScope  `json:"applicable_to"`
	ApplicableID         int64        `json:"applicable_id,omitempty"`
	IncludesFreeDelivery bool         `json:"includes_free_delivery"`
}

// ActiveDiscount freezes the applied coupon's terms. DiscountAmount is recomputed on
// every cart change, never carried over.
type ActiveDiscount struct {
	Coupon         Coupon    `json:"coupon"`
	DiscountAmount float64   `json:"discount_amount"`
	AppliedAt      time.Time `json:"applied_at"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PriceUpdate is one row of the batched catalog price lookup.
type PriceUpdate struct {
	ID            int64    `json:"id"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`
}

type VendorDeliveryInfo struct {
	VendorID     int64   `json:"vendor_id"`
	DistanceKm   float64 `json:"distance_km"`
	OriginalFee  float64 `json:"original_fee"`
	DeliveryFee  float64 `json:"delivery_fee"`
	LookupFailed bool    `json:"lookup_failed,omitempty"`
}

type FreeDeliveryReason string

const (
	FreeDeliveryCoupon   FreeDeliveryReason = "coupon"
	FreeDeliveryMinOrder FreeDeliveryReason = "min_order"
)

type DeliveryQuote struct {
	Vendors              []VendorDeliveryInfo `json:"vendors"`
	TotalFee             float64              `json:"total_fee"`
	OriginalTotalFee     float64              `json:"original_total_fee"`
	FreeDelivery         bool                 `json:"free_delivery"`
	FreeDeliveryReasons  []FreeDeliveryReason `json:"free_delivery_reasons,omitempty"`
	AmountToFreeDelivery float64              `json:"amount_to_free_delivery"`
	Degraded             bool                 `json:"degraded,omitempty"`
}

type VendorOrder struct {
	VendorID    int64      `json:"vendor_id"`
	Lines       []CartLine `json:"lines"`
	Subtotal    float64    `json:"subtotal"`
	DeliveryFee float64    `json:"delivery_fee"`
	OriginalFee float64    `json:"original_fee"`
}

// OrderGroupDraft is the vendor-partitioned checkout breakdown handed to the external
// order-creation collaborator. It is a pure value: nothing here is persisted.
type OrderGroupDraft struct {
	UserID          string        `json:"user_id"`
	Vendors         []VendorOrder `json:"vendors"`
	ItemsSubtotal   float64       `json:"items_subtotal"`
	DeliveryFee     float64       `json:"delivery_fee"`
	DiscountAmount  float64       `json:"discount_amount"`
	CouponCode      string        `json:"coupon_code,omitempty"`
	GrandTotal      float64       `json:"grand_total"`
	DeliveryAddress LatLng        `json:"delivery_address"`
	Degraded        bool          `json:"degraded,omitempty"`
	QRCode          []byte        `json:"qr_code,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type OrderEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	OrderID   int64     `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}
