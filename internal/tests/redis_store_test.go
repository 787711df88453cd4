package tests

import (
	"context"
	"testing"
	"time"

	"freshcart/internal/domain"
	"freshcart/internal/service"
	"freshcart/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	server := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: server.Addr()})
}

func TestRedisCartStore_RoundTrip(t *testing.T) {
	client := newTestRedis(t)
	store := storage.NewRedisCartStore(client, time.Hour)
	ctx := context.Background()

	original := cartWith(
		domain.CartLine{Product: domain.Product{ID: 1, VendorID: 100, Name: "Rice", Price: 100}, Quantity: 2},
		domain.CartLine{Product: domain.Product{ID: 2, VendorID: 200, Name: "Milk", Price: 50}, Quantity: 1},
	)
	require.NoError(t, store.Save(ctx, "u1", original))

	loaded, err := store.Load(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, loaded.Lines, 2)
	for id, line := range original.Lines {
		assert.Equal(t, line.Quantity, loaded.Lines[id].Quantity)
		assert.Equal(t, line.Product, loaded.Lines[id].Product)
	}
	// Aggregates match a fresh recomputation from the reloaded pairs.
	assert.Equal(t, original.TotalItems, loaded.TotalItems)
	assert.Equal(t, original.TotalPrice, loaded.TotalPrice)
}

func TestRedisCartStore_MissingCart(t *testing.T) {
	store := storage.NewRedisCartStore(newTestRedis(t), time.Hour)

	_, err := store.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, service.ErrCartNotFound)
}

func TestRedisCartStore_MigratesLegacyDocument(t *testing.T) {
	client := newTestRedis(t)
	store := storage.NewRedisCartStore(client, time.Hour)
	ctx := context.Background()

	legacy := `{"items":{"1":{"item":{"vendor_id":100,"name":"Rice","price":100},"qty":2},"2":{"item":{"vendor_id":200,"name":"Milk","price":50},"qty":1}}}`
	require.NoError(t, client.Set(ctx, "cart-store:u1", legacy, 0).Err())

	cart, err := store.Load(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[1].Quantity)
	assert.Equal(t, "Rice", cart.Lines[1].Product.Name)
	assert.Equal(t, int64(1), cart.Lines[1].Product.ID)
	assert.Equal(t, 3, cart.TotalItems)
	assert.Equal(t, 250.0, cart.TotalPrice)

	// The migrated flat shape is written back; a second load sees schema v2.
	raw, err := client.Get(ctx, "cart-store:u1").Result()
	require.NoError(t, err)
	assert.Contains(t, raw, `"schema_version":2`)
}

func TestRedisCartStore_UnrecognizedDocumentFallsBackToEmptyCart(t *testing.T) {
	client := newTestRedis(t)
	store := storage.NewRedisCartStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "cart-store:u1", `{"totally":"different"}`, 0).Err())

	cart, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.TotalItems)
}

func TestRedisDiscountStore(t *testing.T) {
	store := storage.NewRedisDiscountStore(newTestRedis(t), time.Hour)
	ctx := context.Background()

	_, err := store.Load(ctx, "u1")
	assert.ErrorIs(t, err, service.ErrDiscountNotFound)

	discount := &domain.ActiveDiscount{
		Coupon:         domain.Coupon{ID: 1, Code: "TEN", DiscountType: domain.DiscountPercent, DiscountValue: 10},
		DiscountAmount: 20,
	}
	require.NoError(t, store.Save(ctx, "u1", discount))

	loaded, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "TEN", loaded.Coupon.Code)
	assert.Equal(t, 20.0, loaded.DiscountAmount)

	require.NoError(t, store.Delete(ctx, "u1"))
	_, err = store.Load(ctx, "u1")
	assert.ErrorIs(t, err, service.ErrDiscountNotFound)
}

func TestRedisWishlistStore(t *testing.T) {
	store := storage.NewRedisWishlistStore(newTestRedis(t))
	ctx := context.Background()

	ids, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, store.Save(ctx, "u1", []int64{5, 3, 9}))

	ids, err = store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5, 9}, ids)
}
