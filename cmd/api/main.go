package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/CardonaSantos/gustito-pos/api/routes"
	"github.com/CardonaSantos/gustito-pos/internal/catalog"
	"github.com/CardonaSantos/gustito-pos/internal/customers"
	"github.com/CardonaSantos/gustito-pos/internal/packaging"
	"github.com/CardonaSantos/gustito-pos/internal/pricerequests"
	"github.com/CardonaSantos/gustito-pos/internal/registers"
	"github.com/CardonaSantos/gustito-pos/internal/sales"
	"github.com/CardonaSantos/gustito-pos/internal/users"
	"github.com/CardonaSantos/gustito-pos/pkg/config"
	"github.com/CardonaSantos/gustito-pos/pkg/db"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
	"github.com/CardonaSantos/gustito-pos/pkg/metrics"
	"github.com/CardonaSantos/gustito-pos/pkg/migrate"
	"github.com/CardonaSantos/gustito-pos/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	salesMetrics := metrics.NewSalesMetrics(registry)

	usersService, err := users.NewService(users.NewRepository(dbClient.DB()), cfg.JWT, cfg.Password, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	packagingService, err := packaging.NewService(packaging.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create packaging service", err)
		os.Exit(1)
	}

	customersService, err := customers.NewService(customers.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create customers service", err)
		os.Exit(1)
	}

	salesService, err := sales.NewService(
		sales.NewRepository(dbClient.DB()),
		catalogService,
		dbClient,
		sales.NewAssembler(cfg.Sales.CustomerRequiredThreshold),
		salesMetrics,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create sales service", err)
		os.Exit(1)
	}

	priceRequestsService, err := pricerequests.NewService(pricerequests.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create price requests service", err)
		os.Exit(1)
	}

	registersService, err := registers.NewService(registers.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create registers service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:        cfg,
			Logger:        logg,
			DBPinger:      dbClient,
			RedisPinger:   redisClient,
			Idempotency:   redisClient,
			HTTPMetrics:   httpMetrics,
			PromRegistry:  registry,
			Users:         usersService,
			Catalog:       catalogService,
			Packaging:     packagingService,
			Customers:     customersService,
			Sales:         salesService,
			PriceRequests: priceRequestsService,
			Registers:     registersService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
