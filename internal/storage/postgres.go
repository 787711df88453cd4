package storage

import (
	"context"
	"database/sql"
	"fmt"

	"freshcart/internal/domain"
	"freshcart/internal/service"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// GetPrices fetches current price/discount_price for all requested products in one
// batched query.
func (r *PostgresRepository) GetPrices(ctx context.Context, productIDs []int64) (map[int64]domain.PriceUpdate, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, price, discount_price
		FROM products
		WHERE id = ANY($1)
	`, pq.Array(productIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := make(map[int64]domain.PriceUpdate)
	for rows.Next() {
		var update domain.PriceUpdate
		var discountPrice sql.NullFloat64
		if err := rows.Scan(&update.ID, &update.Price, &discountPrice); err != nil {
			continue
		}
		if discountPrice.Valid {
			v := discountPrice.Float64
			update.DiscountPrice = &v
		}
		updates[update.ID] = update
	}
	return updates, rows.Err()
}

func (r *PostgresRepository) GetVendorLocation(ctx context.Context, vendorID int64) (domain.LatLng, error) {
	var location domain.LatLng
	err := r.DB.QueryRowContext(ctx, `
		SELECT latitude, longitude
		FROM vendors
		WHERE id = $1
	`, vendorID).Scan(&location.Latitude, &location.Longitude)
	if err != nil {
		return domain.LatLng{}, fmt.Errorf("vendor %d location: %w", vendorID, err)
	}
	return location, nil
}

func (r *PostgresRepository) GetCategories(ctx context.Context, categoryIDs []int64) (map[int64]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, slug
		FROM categories
		WHERE id = ANY($1)
	`, pq.Array(categoryIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make(map[int64]domain.Category)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug); err != nil {
			continue
		}
		categories[category.ID] = category
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	var maxDiscount sql.NullFloat64
	var applicableID sql.NullInt64
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, code, discount_type, discount_value, max_discount,
		       min_order_amount, applicable_to, applicable_id, includes_free_delivery
		FROM coupons
		WHERE code = $1 AND active = true
	`, code).Scan(&coupon.ID, &coupon.Code, &coupon.DiscountType, &coupon.DiscountValue,
		&maxDiscount, &coupon.MinOrderAmount, &coupon.ApplicableTo, &applicableID,
		&coupon.IncludesFreeDelivery)
	if err == sql.ErrNoRows {
		return nil, service.ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	if maxDiscount.Valid {
		v := maxDiscount.Float64
		coupon.MaxDiscount = &v
	}
	if applicableID.Valid {
		coupon.ApplicableID = applicableID.Int64
	}
	return &coupon, nil
}

func (r *PostgresRepository) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, code, discount_type, discount_value, max_discount,
		       min_order_amount, applicable_to, applicable_id, includes_free_delivery
		FROM coupons
		WHERE active = true
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		var coupon domain.Coupon
		var maxDiscount sql.NullFloat64
		var applicableID sql.NullInt64
		if err := rows.Scan(&coupon.ID, &coupon.Code, &coupon.DiscountType, &coupon.DiscountValue,
			&maxDiscount, &coupon.MinOrderAmount, &coupon.ApplicableTo, &applicableID,
			&coupon.IncludesFreeDelivery); err != nil {
			continue
		}
		if maxDiscount.Valid {
			v := maxDiscount.Float64
			coupon.MaxDiscount = &v
		}
		if applicableID.Valid {
			coupon.ApplicableID = applicableID.Int64
		}
		coupons = append(coupons, coupon)
	}
	return coupons, rows.Err()
}

// FeeForDistance resolves the fee from server-side pricing tiers. The tier table is
// opaque to the cart core; it only sees the resulting amount.
func (r *PostgresRepository) FeeForDistance(ctx context.Context, distanceKm float64) (float64, error) {
	var fee float64
	err := r.DB.QueryRowContext(ctx, `
		SELECT fee
		FROM delivery_fee_tiers
		WHERE max_distance_km >= $1
		ORDER BY max_distance_km ASC
		LIMIT 1
	`, distanceKm).Scan(&fee)
	if err != nil {
		return 0, fmt.Errorf("fee tier for %.2f km: %w", distanceKm, err)
	}
	return fee, nil
}

var (
	_ service.CatalogRepository = (*PostgresRepository)(nil)
	_ service.CouponRepository  = (*PostgresRepository)(nil)
	_ service.FeeQuoter         = (*PostgresRepository)(nil)
)
