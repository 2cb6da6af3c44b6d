package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/srgjo27/hotel_booking/internal/adapter/cache"
	"github.com/srgjo27/hotel_booking/internal/adapter/handler"
	"github.com/srgjo27/hotel_booking/internal/adapter/publisher/rabbitmq"
	"github.com/srgjo27/hotel_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
	"github.com/srgjo27/hotel_booking/internal/core/services"
	"github.com/srgjo27/hotel_booking/internal/platform/config"
	"github.com/srgjo27/hotel_booking/internal/platform/database"
	"github.com/srgjo27/hotel_booking/internal/platform/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db after retries")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}
	log.Info().Msg("migrations applied")

	var roomRepo ports.RoomRepository = postgres.NewRoomRepository(db)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, room cache will fall back to postgres")
		} else {
			log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
		}
		roomRepo = cache.NewRoomCache(redisClient, roomRepo, cfg.Redis.RoomTTL, log)
	}

	publisher := newPublisher(cfg.RabbitMQ, log)

	bookingService := services.NewBookingService(
		postgres.NewEnrollmentRepository(db),
		postgres.NewTicketRepository(db),
		roomRepo,
		postgres.NewBookingRepository(db),
		publisher,
		log,
	)

	bookingHandler := handler.NewBookingHandler(bookingService, log)
	router := handler.NewRouter(bookingHandler, postgres.NewSessionRepository(db), cfg.Server.RequestTimeout, log)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server startup failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if closer, ok := publisher.(*rabbitmq.Publisher); ok {
		closer.Close()
	}

	log.Info().Msg("server exiting")
}

func newPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) ports.BookingEventPublisher {
	if cfg.URL == "" {
		log.Info().Msg("rabbitmq url not set, booking events disabled")
		return rabbitmq.NopPublisher{}
	}

	p, err := rabbitmq.NewPublisher(cfg.URL, cfg.Exchange, log)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq unavailable, booking events disabled")
		return rabbitmq.NopPublisher{}
	}
	return p
}
