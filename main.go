package main

import (
	"fmt"
	"log/slog"
	"os"

	"restaurant-orders-api/config"
	"restaurant-orders-api/events"
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/logging"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/routes"
	"restaurant-orders-api/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	if err := run(cfg, logger, newPublisher(cfg.Kafka, logger)); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func newPublisher(cfg config.Kafka, logger *slog.Logger) events.Publisher {
	if len(cfg.Brokers) == 0 {
		return events.NopPublisher{}
	}
	logger.Info("order events enabled", slog.Any("brokers", cfg.Brokers), slog.String("topic", cfg.Topic))
	return events.NewKafkaPublisher(cfg.Brokers, cfg.Topic, logger)
}

// run serves until the listener fails. publisher is closed before run
// returns, flushing any buffered events.
func run(cfg *config.Config, logger *slog.Logger, publisher events.Publisher) error {
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close order events publisher", slog.Any("error", err))
		}
	}()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.OpenDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("open %s database: %w", cfg.Database.Driver, err)
	}
	logger.Info("database connected and migrated", slog.String("driver", cfg.Database.Driver))

	store := repository.NewStore(db)
	orders := services.NewOrderService(store, publisher, logger)
	r := routes.NewRouter(handlers.New(store, orders, logger), logger)

	logger.Info("server running", slog.String("addr", "http://localhost:"+cfg.Port))
	return r.Run(":" + cfg.Port)
}
