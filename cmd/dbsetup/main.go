package main

import (
	"context"
	"os"
	"time"

	"eventcollection/config"
	"eventcollection/internal/repository/postgres"
)

// Drops the application tables, recreates them, and loads the sample data set.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.SetupDatabase(ctx, db); err != nil {
		logger.Error("setup failed", "err", err)
		os.Exit(1)
	}
	logger.Info("database initialized with sample data")
}
