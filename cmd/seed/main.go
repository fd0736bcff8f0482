// Command seed loads the demo catalog into postgres. Running it again is a
// no-op for rows that already exist.
package main

import (
	"context"
	"time"

	"github.com/srgjo27/experience_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/experience_booking/internal/config"
	"github.com/srgjo27/experience_booking/internal/platform/database"
	"github.com/srgjo27/experience_booking/internal/platform/logger"
	"github.com/srgjo27/experience_booking/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg.Database(), &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	catalog, err := seed.Build(time.Now().UTC())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build catalog")
	}

	if err := seed.Apply(ctx, postgres.NewSeeder(db), catalog, &log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Int("experiences", len(catalog.Experiences)).Msg("seed complete")
}
