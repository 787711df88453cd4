package main

import (
	"context"
	"os"
	"time"

	"freshcart/config"
	httpapi "freshcart/internal/api/http"
	"freshcart/internal/service"
	"freshcart/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	draftWriter := config.NewKafkaWriter("checkout")
	defer draftWriter.Close()

	orderReader := config.NewKafkaReader("order-events", "cart-service")
	defer orderReader.Close()

	pricing := config.LoadPricing()

	catalog := storage.NewPostgresRepository(db)
	carts := storage.NewRedisCartStore(rdb, 30*24*time.Hour)
	discounts := storage.NewRedisDiscountStore(rdb, 24*time.Hour)
	wishlist := storage.NewRedisWishlistStore(rdb)
	publisher := storage.NewKafkaDraftPublisher(draftWriter)

	generations := service.NewGenerations()
	couponSvc := service.NewCouponService(catalog, catalog, carts, discounts, generations)
	cartSvc := service.NewCartService(carts, couponSvc, generations)
	wishlistSvc := service.NewWishlistService(wishlist)
	reconciler := service.NewPriceReconciler(catalog, carts)
	feeSvc := service.NewDeliveryFeeService(catalog, catalog, pricing)
	qr := service.DefaultQRGenerator{BaseURL: os.Getenv("PUBLIC_BASE_URL")}
	checkoutSvc := service.NewCheckoutService(reconciler, discounts, couponSvc, feeSvc, publisher, qr, generations)

	consumer := service.NewConsumer(orderReader, carts, discounts)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(cartSvc, wishlistSvc, couponSvc, checkoutSvc, reconciler)
	httpapi.StartServer(":8084", httpapi.NewRouter(handler))
}
