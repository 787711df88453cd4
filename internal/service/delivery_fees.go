package service

import (
	"context"
	"log"
	"math"
	"sort"
	"strconv"
	"time"

	"freshcart/config"
	"freshcart/internal/domain"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const earthRadiusKm = 6371

// DeliveryFeeService computes per-vendor delivery fees for the cart. Vendor lookups run
// concurrently so latency is bounded by the slowest vendor, not the sum; a single
// vendor's failure degrades to a fallback fee without aborting the others.
type DeliveryFeeService struct {
	catalog CatalogRepository
	quoter  FeeQuoter
	pricing config.Pricing
	breaker *gobreaker.CircuitBreaker[float64]
	sfg     singleflight.Group
}

func NewDeliveryFeeService(catalog CatalogRepository, quoter FeeQuoter, pricing config.Pricing) *DeliveryFeeService {
	breaker := gobreaker.NewCircuitBreaker[float64](gobreaker.Settings{
		Name:    "fee-quoter",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &DeliveryFeeService{
		catalog: catalog,
		quoter:  quoter,
		pricing: pricing,
		breaker: breaker,
	}
}

// Quote resolves a delivery fee per distinct vendor in the cart.
func (s *DeliveryFeeService) Quote(ctx context.Context, cart *domain.Cart, address domain.LatLng, couponFreeDelivery bool) (*domain.DeliveryQuote, error) {
	quote := &domain.DeliveryQuote{
		AmountToFreeDelivery: math.Max(0, s.pricing.FreeDeliveryMinimum-cart.TotalPrice),
	}

	if couponFreeDelivery {
		quote.FreeDelivery = true
		quote.FreeDeliveryReasons = append(quote.FreeDeliveryReasons, domain.FreeDeliveryCoupon)
	}
	if cart.TotalPrice >= s.pricing.FreeDeliveryMinimum {
		quote.FreeDelivery = true
		quote.FreeDeliveryReasons = append(quote.FreeDeliveryReasons, domain.FreeDeliveryMinOrder)
	}

	vendorIDs := cart.VendorIDs()
	if len(vendorIDs) == 0 {
		return quote, nil
	}

	results := make([]domain.VendorDeliveryInfo, len(vendorIDs))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, vendorID := range vendorIDs {
		i, vendorID := i, vendorID
		group.Go(func() error {
			results[i] = s.vendorFee(groupCtx, vendorID, address)
			return nil
		})
	}
	// Failures are mapped to fallbacks before the join, so Wait never errors.
	_ = group.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].VendorID < results[j].VendorID })

	for i := range results {
		if results[i].LookupFailed {
			quote.Degraded = true
		}
		quote.OriginalTotalFee += results[i].OriginalFee
		if quote.FreeDelivery {
			results[i].DeliveryFee = 0
		} else {
			results[i].DeliveryFee = results[i].OriginalFee
		}
		quote.TotalFee += results[i].DeliveryFee
	}
	quote.Vendors = results

	return quote, nil
}

func (s *DeliveryFeeService) vendorFee(ctx context.Context, vendorID int64, address domain.LatLng) domain.VendorDeliveryInfo {
	info := domain.VendorDeliveryInfo{VendorID: vendorID}

	location, err := s.vendorLocation(ctx, vendorID)
	if err != nil {
		log.Printf("vendor %d location lookup failed, using fallback fee: %v", vendorID, err)
		info.DistanceKm = s.pricing.FallbackDistanceKm
		info.OriginalFee = s.pricing.FallbackDeliveryFee
		info.LookupFailed = true
		return info
	}

	info.DistanceKm = Haversine(location, address)

	fee, err := s.breaker.Execute(func() (float64, error) {
		return s.quoter.FeeForDistance(ctx, info.DistanceKm)
	})
	if err != nil {
		log.Printf("fee lookup for vendor %d failed, using fallback fee: %v", vendorID, err)
		info.OriginalFee = s.pricing.FallbackDeliveryFee
		info.LookupFailed = true
		return info
	}

	info.OriginalFee = fee
	return info
}

// vendorLocation collapses concurrent duplicate lookups for the same vendor.
func (s *DeliveryFeeService) vendorLocation(ctx context.Context, vendorID int64) (domain.LatLng, error) {
	v, err, _ := s.sfg.Do("vendor:"+strconv.FormatInt(vendorID, 10), func() (interface{}, error) {
		return s.catalog.GetVendorLocation(ctx, vendorID)
	})
	if err != nil {
		return domain.LatLng{}, err
	}
	return v.(domain.LatLng), nil
}

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(a, b domain.LatLng) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
