package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"foodorder/cmd"
	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/eventlog"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/rabbitmq"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleOrderMaxAge = 15 * time.Minute

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	publisher, closePublisher, err := createEventPublisher(configs, logger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		configs.StaleOrderMaxAge,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           envOrDefault("DB_HOST", "localhost"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           envOrDefault("DB_USER", "postgres"),
		DBPassword:       envOrDefault("DB_PASSWORD", "postgres"),
		DBName:           envOrDefault("DB_NAME", "foodorder"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		AmqpURL:          os.Getenv("AMQP_URL"),
		AmqpExchange:     envOrDefault("AMQP_EXCHANGE", "order_events"),
		StaleOrderMaxAge: durationEnvOrDefault("STALE_ORDER_MAX_AGE", defaultStaleOrderMaxAge, logger),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnvOrDefault(key string, fallback time.Duration, logger *slog.Logger) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn("Invalid duration in environment, using default",
			"key", key, "value", value, "default", fallback.String())
		return fallback
	}
	return parsed
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
}

func createEventPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func(), error) {
	if configs.AmqpURL == "" {
		logger.Info("AMQP_URL not set, publishing events to log")
		return eventlog.NewPublisher(logger), func() {}, nil
	}

	publisher, err := rabbitmq.NewEventPublisher(configs.AmqpURL, configs.AmqpExchange, logger)
	if err != nil {
		return nil, nil, err
	}
	return publisher, func() { _ = publisher.Close() }, nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddOrderItemCommandHandler(),
		app.CreateRemoveOrderItemCommandHandler(),
		app.CreateUpdateItemQuantityCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
