package main

import (
	"context"
	"log"

	"gocart-be/internal/blob"
	"gocart-be/internal/config"
	"gocart-be/internal/coupon"
	"gocart-be/internal/dashboard"
	"gocart-be/internal/db"
	"gocart-be/internal/logger"
	"gocart-be/internal/order"
	"gocart-be/internal/product"
	"gocart-be/internal/store"
	"gocart-be/internal/transport"

	cloudblob "gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	bucket, err := cloudblob.OpenBucket(context.Background(), cfg.BlobBucketURL)
	if err != nil {
		log.Fatalf("Failed to open blob bucket: %v", err)
	}
	defer bucket.Close()
	storage := blob.NewStorage(bucket, cfg.BlobPublicBaseURL)

	storeRepo := store.NewRepository(database)
	storeSvc := store.NewService(storeRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo, storeRepo)

	couponRepo := coupon.NewRepository(database)
	couponSvc := coupon.NewService(couponRepo, storeRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, storeRepo)

	dashboardRepo := dashboard.NewRepository(database)
	dashboardSvc := dashboard.NewService(dashboardRepo)

	e := transport.NewRouter(cfg, transport.Handlers{
		Auth:      transport.NewAuthHandler(cfg),
		Store:     transport.NewStoreHandler(storeSvc, productSvc),
		Product:   transport.NewProductHandler(productSvc, storage),
		Coupon:    transport.NewCouponHandler(couponSvc),
		Order:     transport.NewOrderHandler(orderSvc),
		Dashboard: transport.NewDashboardHandler(dashboardSvc),
	})

	log.Printf("marketplace API listening on :%s", cfg.AppPort)
	log.Fatal(e.Start(":" + cfg.AppPort))
}
