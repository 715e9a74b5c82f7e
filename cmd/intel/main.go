package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"liftout/internal/config"
	dbpostgres "liftout/internal/database/postgres"
	"liftout/internal/infrastructure/cache"
	"liftout/internal/intel"
	"liftout/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	limit := flag.Int("limit", 50, "max companies to refresh in one run")
	timeout := flag.Duration("timeout", 15*time.Minute, "overall run timeout")
	flag.Parse()

	logger := log.New(os.Stdout, "[liftout-intel] ", log.LstdFlags|log.Lmsgprefix)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	companies := repository.NewPostgresCompanyRepository(db)
	refresher := intel.NewRefresher(companies, cfg.Intel, logger)

	if err := refresher.Refresh(ctx, *limit); err != nil {
		logger.Fatalf("refresh failed: %v", err)
	}

	// Refreshed culture inputs can shift downstream assessments; start
	// the next requests from a clean slate.
	if err := cache.NewRedis(logger).InvalidateMatches(ctx); err != nil {
		logger.Printf("cache invalidation error: %v", err)
	}
}
