package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carlosmateus/maintenance-system/internal/api"
	"github.com/carlosmateus/maintenance-system/internal/infrastructure/config"
	mongodb "github.com/carlosmateus/maintenance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/carlosmateus/maintenance-system/internal/infrastructure/db/redis"
	"github.com/carlosmateus/maintenance-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	// --- Redis (session cache; resolution falls back to the store on a miss) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, sessions resolve from the store only")
		rdb = nil
	} else {
		defer func() {
			_ = rdb.Close()
		}()
	}

	// --- Indexes and role seed ---
	if err := ensureStore(ctx, client, db); err != nil {
		log.Fatal().Err(err).Msg("store initialisation failed")
	}

	e := api.NewRouter(client, db, rdb, cfg.SessionTTL, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureStore creates the indexes the repositories rely on and seeds the
// fixed role set. Provisioning treats a missing role as a deployment fault,
// so the seed runs before the server accepts traffic.
func ensureStore(ctx context.Context, client *mongo.Client, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewSessionRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewReportRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewTechnicianRepository(client, db).EnsureIndexes(ctx); err != nil {
		return err
	}
	roles := mongodb.NewRoleRepository(db)
	if err := roles.EnsureIndexes(ctx); err != nil {
		return err
	}
	return roles.EnsureSeed(ctx)
}
