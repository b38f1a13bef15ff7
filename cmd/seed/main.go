// Command seed loads the competition catalog from a YAML file into postgres.
// Competitions are keyed by id, so running it twice updates them in place.
//
//	go run ./cmd/seed -file ./cmd/seed/seed.yml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campusarena/competition-api/internal/config"
	"github.com/campusarena/competition-api/internal/db"
	"github.com/campusarena/competition-api/internal/logger"
	"github.com/campusarena/competition-api/internal/repository"
	"github.com/campusarena/competition-api/internal/repository/dao"
)

func main() {
	configPath := flag.String("config", "./cmd/app/config.yml", "application config")
	seedPath := flag.String("file", "./cmd/seed/seed.yml", "competitions to load")
	flag.Parse()

	if err := run(*configPath, *seedPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, seedPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	competitions, err := loadCompetitions(seedPath)
	if err != nil {
		return fmt.Errorf("failed to load %s -> %w", seedPath, err)
	}

	var postgresDB *gorm.DB
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	repo := repository.NewCompetitionRepository(dao.NewCompetitionDAO(postgresDB))
	ctx := context.Background()

	for _, c := range competitions {
		if _, err = repo.Save(ctx, c); err != nil {
			return fmt.Errorf("repo.Save %s -> %w", c.ID, err)
		}
		zap.L().Info("competition seeded",
			zap.String("competition_id", c.ID),
			zap.String("title", c.Title),
		)
	}

	zap.L().Info(fmt.Sprintf("seeded %d competitions", len(competitions)))

	return nil
}
