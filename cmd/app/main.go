package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/cmd"
	storefront_http "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/http/middleware"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root, closer, err := cmd.NewCompositionRoot(context.Background(), configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer closer()

	jobManager := jobs.NewJobManager(root.CreateGetOrderStatsQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs)
}

func getConfigs() cmd.Config {
	// A missing .env is fine: plain environment variables take over.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		StorageBackend:          getEnv("STORAGE_BACKEND", cmd.BackendLocal),
		DBHost:                  getEnv("DB_HOST", "localhost"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBUser:                  getEnv("DB_USER", "postgres"),
		DBPassword:              getEnv("DB_PASSWORD", "postgres"),
		DBName:                  getEnv("DB_NAME", "storefront"),
		DBSslMode:               getEnv("DB_SSLMODE", "disable"),
		MongoURI:                getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:                 getEnv("MONGO_DB", "storefront"),
		MongoOrdersCollection:   getEnv("MONGO_ORDERS_COLLECTION", "orders"),
		MongoCountersCollection: getEnv("MONGO_COUNTERS_COLLECTION", "counters"),
		LocalStorePath:          getEnv("LOCAL_STORE_PATH", "data/orders.json"),
		AmqpURL:                 getEnv("AMQP_URL", ""),
		AmqpExchange:            getEnv("AMQP_EXCHANGE", "storefront.orders"),
		JWTSecret:               getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	if configs.JWTSecret == "" {
		log.Fatalf("JWT_SECRET must be set")
	}

	e := echo.New()
	e.Use(middleware.Prometheus())

	server := storefront_http.NewServer(
		root.Catalog(),
		root.CreatePlaceOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateListProductsQueryHandler(),
		root.CreateListRegionsQueryHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetOrderStatsQueryHandler(),
		root.CreateExportOrdersQueryHandler(),
	)
	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
