package main

import (
	"context"
	"time"

	"github.com/studioledger/studioledger/internal/config"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/migrations"
)

func init() {
	time.Local = time.UTC
}

func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.NewDB(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	names, err := migrations.Names()
	if err != nil {
		log.Fatalf("Failed to read migrations: %v", err)
	}

	for _, name := range names {
		ddl, err := migrations.FS.ReadFile(name)
		if err != nil {
			log.Fatalf("Failed to read migration %s: %v", name, err)
		}
		if _, err := db.ExecContext(ctx, string(ddl)); err != nil {
			log.Fatalf("Migration %s failed: %v", name, err)
		}
		log.Infof("Applied migration %s", name)
	}

	log.Info("Migrations complete")
}
