package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/lab-booking/booking/config"
	"github.com/Astemirdum/lab-booking/booking/internal/cache"
	"github.com/Astemirdum/lab-booking/booking/internal/events"
	"github.com/Astemirdum/lab-booking/booking/internal/handler"
	"github.com/Astemirdum/lab-booking/booking/internal/repository"
	"github.com/Astemirdum/lab-booking/booking/internal/server"
	"github.com/Astemirdum/lab-booking/booking/internal/service"
	"github.com/Astemirdum/lab-booking/booking/internal/slot"
	"github.com/Astemirdum/lab-booking/booking/migrations"
	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"github.com/Astemirdum/lab-booking/pkg/logger"
	"github.com/Astemirdum/lab-booking/pkg/postgres"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "booking")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		log.Fatal("time.LoadLocation", zap.String("tz", cfg.Booking.TimeZone), zap.Error(err))
	}
	source := uuid.NewString()

	pub := events.Noop()
	if cfg.Kafka.Enable {
		if err := kafka.CreateTopics(cfg.Kafka, kafka.BookingTopic); err != nil {
			log.Fatal("kafka.CreateTopics", zap.Error(err))
		}
		producer, err := kafka.NewSyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewSyncProducer", zap.Error(err))
		}
		defer producer.Close()
		pub = events.NewPublisher(producer, kafka.BookingTopic, log)
	}

	svc := service.NewService(repo, slot.New(loc), log,
		service.WithCache(cache.New(cfg.Booking.CacheSize, cfg.Booking.CacheTTL)),
		service.WithPublisher(pub, source),
		service.WithMaxSeriesDays(cfg.Booking.MaxSeriesDays),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Kafka.Enable {
		consumer, err := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.Group+"-"+source)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		defer consumer.Close()
		go func() {
			if err := kafka.Consume(ctx, consumer, handler.NewConsumer(svc.Cache(), source, log), kafka.BookingTopic); err != nil {
				log.Error("kafka.Consume", zap.Error(err))
			}
		}()
	}

	h := handler.New(svc, svc, svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		zap.String("tz", loc.String()),
		zap.Bool("kafka", cfg.Kafka.Enable))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	db.Close()
	log.Info("Graceful shutdown finished")
}
