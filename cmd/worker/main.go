package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/easytripzy/tripbooking/config"
	"github.com/easytripzy/tripbooking/internal/email"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	catalogService := catalog.NewCatalogService(catalogRepo, nil)
	bookingService := booking.NewBookingService(
		bookingRepo,
		catalogService,
		producer,
		cfg.Kafka.BookingTopic,
		cfg.Booking.CancelNoticeDays,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, emailSender.Send); err != nil {
			logrus.WithError(err).Info("consumer stopped")
		}
	}()

	sweepEvery := time.Duration(cfg.Worker.ReminderSweepMinutes) * time.Minute
	if sweepEvery <= 0 {
		sweepEvery = time.Hour
	}
	reminderTicker := time.NewTicker(sweepEvery)
	defer reminderTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-reminderTicker.C:
			due, err := bookingService.PublishReminders(ctx, cfg.Booking.ReminderDays)
			if err != nil {
				logrus.WithError(err).Error("reminder sweep")
				continue
			}
			if len(due) > 0 {
				logrus.Infof("published %d booking reminders", len(due))
			}
		case s := <-sig:
			logrus.Infof("received signal %v, shutting down", s)
			return
		}
	}
}
