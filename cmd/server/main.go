package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hometown-industries/warehouse-service/config"
	billinghandler "github.com/hometown-industries/warehouse-service/internal/billing/handler"
	billingrepo "github.com/hometown-industries/warehouse-service/internal/billing/repository"
	"github.com/hometown-industries/warehouse-service/internal/billing/stripe"
	billinguc "github.com/hometown-industries/warehouse-service/internal/billing/usecase"
	inventoryhandler "github.com/hometown-industries/warehouse-service/internal/inventory/handler"
	inventoryrepo "github.com/hometown-industries/warehouse-service/internal/inventory/repository"
	inventoryuc "github.com/hometown-industries/warehouse-service/internal/inventory/usecase"
	"github.com/hometown-industries/warehouse-service/internal/mailer"
	mailerhandler "github.com/hometown-industries/warehouse-service/internal/mailer/handler"
	ordershandler "github.com/hometown-industries/warehouse-service/internal/orders/handler"
	ordersuc "github.com/hometown-industries/warehouse-service/internal/orders/usecase"
	"github.com/hometown-industries/warehouse-service/internal/server"
	shipmenthandler "github.com/hometown-industries/warehouse-service/internal/shipment/handler"
	shipmentrepo "github.com/hometown-industries/warehouse-service/internal/shipment/repository"
	shipmentuc "github.com/hometown-industries/warehouse-service/internal/shipment/usecase"
	"github.com/hometown-industries/warehouse-service/internal/shipstation"
	storehandler "github.com/hometown-industries/warehouse-service/internal/shipstation/handler"
	skumappinghandler "github.com/hometown-industries/warehouse-service/internal/skumapping/handler"
	skumappingrepo "github.com/hometown-industries/warehouse-service/internal/skumapping/repository"
	skumappinguc "github.com/hometown-industries/warehouse-service/internal/skumapping/usecase"
	userhandler "github.com/hometown-industries/warehouse-service/internal/user/handler"
	userrepo "github.com/hometown-industries/warehouse-service/internal/user/repository"
	useruc "github.com/hometown-industries/warehouse-service/internal/user/usecase"
	"github.com/hometown-industries/warehouse-service/pkg/cache"
	"github.com/hometown-industries/warehouse-service/pkg/database/postgres"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger := logger.NewZapLogger(&logger.Config{
		IsDevelopment:     cfg.Server.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	appLogger.Info("starting warehouse service",
		zap.String("env", cfg.Server.AppEnv),
		zap.String("port", cfg.Server.HTTPPort))

	db, err := postgres.New(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	platform := shipstation.NewClient(shipstation.Config{
		BaseURL:   cfg.ShipStation.BaseURL,
		APIKey:    cfg.ShipStation.APIKey,
		APISecret: cfg.ShipStation.APISecret,
	})

	mail := mailer.NewSendGridMailer(mailer.Config{
		APIKey:    cfg.SendGrid.APIKey,
		Endpoint:  cfg.SendGrid.Endpoint,
		FromEmail: cfg.SendGrid.FromEmail,
		FromName:  cfg.SendGrid.FromName,
	})

	stripeClient := stripe.NewClient(cfg.Stripe.BaseURL, cfg.Stripe.PrivateKey)

	inventoryRepo := inventoryrepo.NewPGRepository(db)
	skuMappingRepo := skumappingrepo.NewPGRepository(db)
	outboundRepo := shipmentrepo.NewOutboundPGRepository(db)
	inboundRepo := shipmentrepo.NewInboundPGRepository(db)
	userRepo := userrepo.NewPGRepository(db)
	billingRepo := billingrepo.NewPGRepository(db)

	inventoryUC := inventoryuc.NewInventoryUseCase(inventoryRepo, redisClient, mail, cfg.Routing.OpsEmail, appLogger)
	skuMappingUC := skumappinguc.NewSKUMappingUseCase(skuMappingRepo, mail, cfg.Routing.OpsEmail, appLogger)
	shipmentUC := shipmentuc.NewShipmentUseCase(outboundRepo, inboundRepo, inventoryUC, appLogger)
	userUC := useruc.NewUserUseCase(userRepo, appLogger)
	billingUC := billinguc.NewBillingUseCase(billingRepo, userRepo, stripeClient, appLogger)
	ordersUC := ordersuc.NewOrderUseCase(platform, skuMappingUC, inventoryUC, shipmentUC, mail, redisClient, cfg.Routing, appLogger)

	webhookTimeout := time.Duration(cfg.Server.WebhookTimeout) * time.Second
	router := server.NewRouter(server.Handlers{
		Webhook:      ordershandler.NewWebhookHandler(ordersUC, webhookTimeout, appLogger),
		Inventory:    inventoryhandler.NewInventoryHandler(inventoryUC, appLogger),
		SKUMapping:   skumappinghandler.NewSKUMappingHandler(skuMappingUC, appLogger),
		Shipment:     shipmenthandler.NewShipmentHandler(shipmentUC, appLogger),
		User:         userhandler.NewUserHandler(userUC, appLogger),
		Billing:      billinghandler.NewBillingHandler(billingUC, appLogger),
		Notification: mailerhandler.NewNotificationHandler(mail, appLogger),
		Stores:       storehandler.NewStoreHandler(platform, appLogger),
	}, appLogger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: webhookTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
