package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/experience_booking/internal/adapter/cache"
	"github.com/srgjo27/experience_booking/internal/adapter/handler"
	"github.com/srgjo27/experience_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/experience_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/experience_booking/internal/config"
	"github.com/srgjo27/experience_booking/internal/core/ports"
	"github.com/srgjo27/experience_booking/internal/core/services"
	"github.com/srgjo27/experience_booking/internal/platform/database"
	"github.com/srgjo27/experience_booking/internal/platform/logger"
	"github.com/srgjo27/experience_booking/internal/platform/metrics"
	"github.com/srgjo27/experience_booking/internal/platform/mq"
	"github.com/srgjo27/experience_booking/internal/seed"
)

type stores struct {
	bookings    ports.BookingRepository
	experiences ports.ExperienceRepository
	promos      ports.PromoRepository
	seeder      ports.CatalogSeeder
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	metrics.Register()
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	readiness := map[string]handler.Pinger{}

	var st stores
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgresDB(ctx, cfg.Database(), &log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres after retries")
		}
		defer db.Close()

		if cfg.AutoMigrate {
			if err := database.Migrate(ctx, db); err != nil {
				log.Fatal().Err(err).Msg("failed to apply schema")
			}
		}

		st = postgresStores(db)
		readiness["postgres"] = db.PingContext
	default:
		s := memory.NewStore()
		st = stores{bookings: s, experiences: s, promos: s, seeder: s}
		log.Warn().Msg("using in-memory store, bookings are lost on restart")
	}

	if cfg.SeedOnStart || cfg.StoreDriver == config.StoreDriverMemory {
		catalog, err := seed.Build(time.Now().UTC())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build seed catalog")
		}
		if err := seed.Apply(ctx, st.seeder, catalog, &log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed catalog")
		}
	}

	var experienceCache ports.ExperienceCache = cache.NopCache{}
	if cfg.CacheEnabled() {
		log.Info().Str("addr", cfg.Redis.Addr()).Msg("connecting to redis")

		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}

		experienceCache = cache.NewExperienceCache(rdb, cfg.Redis.CacheTTL)
		readiness["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	var publisher ports.EventPublisher = mq.NopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := mq.NewPublisher(cfg.RabbitURL, cfg.BookingExchange)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}
		defer p.Close()

		publisher = p
		log.Info().Str("exchange", cfg.BookingExchange).Msg("publishing booking events")
	}

	catalogService := services.NewCatalogService(st.experiences, experienceCache, &log)
	promoService := services.NewPromoService(st.promos, catalogService, cfg.Taxes, &log)
	bookingService := services.NewBookingService(st.bookings, experienceCache, publisher, &log)

	router := handler.NewRouter(
		handler.RouterConfig{AllowedOrigins: cfg.HTTP.AllowedOrigins, Readiness: readiness},
		&log,
		handler.NewBookingHandler(bookingService, &log),
		handler.NewExperienceHandler(catalogService, promoService, &log),
		handler.NewPromoHandler(promoService, &log),
	)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Str("store", cfg.StoreDriver).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		log.Error().Err(err).Msg("server startup failed")
		stop()
	}

	shutdown(server, &log)
}

func postgresStores(db *sql.DB) stores {
	catalog := postgres.NewSeeder(db)

	return stores{
		bookings:    postgres.NewBookingRepository(db),
		experiences: catalog,
		promos:      catalog,
		seeder:      catalog,
	}
}

func shutdown(server *http.Server, log *zerolog.Logger) {
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server exiting")
}
