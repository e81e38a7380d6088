package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/easytripzy/tripbooking/api"
	"github.com/easytripzy/tripbooking/config"
	"github.com/easytripzy/tripbooking/internal/bootstrap"
	"github.com/easytripzy/tripbooking/internal/cache"
	"github.com/easytripzy/tripbooking/internal/kafka"
	"github.com/easytripzy/tripbooking/internal/repository"
	"github.com/easytripzy/tripbooking/internal/service/booking"
	"github.com/easytripzy/tripbooking/internal/service/catalog"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.CatalogCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)

	catalogService := catalog.NewCatalogService(catalogRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		catalogService,
		producer,
		cfg.Kafka.BookingTopic,
		cfg.Booking.CancelNoticeDays,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	router := bootstrap.NewRouter(cfg, api.NewBookingHandler(bookingService), api.NewCatalogHandler(catalogService))

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
