package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storedemo/store-api/internal/api"
	"github.com/storedemo/store-api/internal/core/service"
	"github.com/storedemo/store-api/internal/infrastructure/config"
	mongostore "github.com/storedemo/store-api/internal/infrastructure/db/mongo"
	redisstore "github.com/storedemo/store-api/internal/infrastructure/db/redis"
	"github.com/storedemo/store-api/internal/infrastructure/queue"
	"github.com/storedemo/store-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokens, err := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpirationMinutes)
	if err != nil {
		log.Fatal().Err(err).Msg("token service init failed")
	}

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	activityRepo := mongostore.NewActivityRepository(db)
	dispatcher := queue.NewActivityDispatcher(cfg.ActivityWorkers, activityRepo,
		logger.Component("activity-dispatcher"))
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, tokens, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongostore.NewCustomerRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongostore.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongostore.NewCartRepository(db).EnsureIndexes(ctx)
}
