package tests

import (
	"context"
	"regexp"
	"testing"

	"freshcart/internal/service"
	"freshcart/internal/storage"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_GetPrices(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "price", "discount_price"}).
		AddRow(int64(1), 100.0, 90.0).
		AddRow(int64(2), 55.0, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, price, discount_price")).
		WithArgs(pq.Array([]int64{1, 2})).
		WillReturnRows(rows)

	updates, err := repo.GetPrices(context.Background(), []int64{1, 2})
	require.NoError(t, err)

	require.Len(t, updates, 2)
	assert.Equal(t, 100.0, updates[1].Price)
	require.NotNil(t, updates[1].DiscountPrice)
	assert.Equal(t, 90.0, *updates[1].DiscountPrice)
	assert.Nil(t, updates[2].DiscountPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetCouponByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	columns := []string{
		"id", "code", "discount_type", "discount_value", "max_discount",
		"min_order_amount", "applicable_to", "applicable_id", "includes_free_delivery",
	}
	mock.ExpectQuery(regexp.QuoteMeta("FROM coupons")).
		WithArgs("TEN").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(5), "TEN", "percent", 10.0, 20.0, 100.0, "all", nil, false))

	coupon, err := repo.GetCouponByCode(context.Background(), "TEN")
	require.NoError(t, err)
	assert.Equal(t, int64(5), coupon.ID)
	require.NotNil(t, coupon.MaxDiscount)
	assert.Equal(t, 20.0, *coupon.MaxDiscount)
	assert.Equal(t, int64(0), coupon.ApplicableID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetCouponByCodeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM coupons")).
		WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetCouponByCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, service.ErrCouponNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FeeForDistance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM delivery_fee_tiers")).
		WithArgs(3.2).
		WillReturnRows(sqlmock.NewRows([]string{"fee"}).AddRow(25.0))

	fee, err := repo.FeeForDistance(context.Background(), 3.2)
	require.NoError(t, err)
	assert.Equal(t, 25.0, fee)
	assert.NoError(t, mock.ExpectationsWereMet())
}
