package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/99minutos/user-catalog-api/internal/api"
	"github.com/99minutos/user-catalog-api/internal/api/handler"
	"github.com/99minutos/user-catalog-api/internal/api/metrics"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
	"github.com/99minutos/user-catalog-api/internal/core/service"
	"github.com/99minutos/user-catalog-api/internal/infrastructure/auth"
	"github.com/99minutos/user-catalog-api/internal/infrastructure/config"
	"github.com/99minutos/user-catalog-api/internal/infrastructure/db/redis"
	"github.com/99minutos/user-catalog-api/internal/infrastructure/db/sqlstore"
	"github.com/99minutos/user-catalog-api/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "user-catalog-api",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		SlowQuery:       cfg.Database.SlowQuery,
	}, logger.Component("sqlstore"))
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlstore.Close(db); err != nil {
			log.Warn().Err(err).Msg("closing database pool")
		}
	}()

	if err := sqlstore.Migrate(ctx, db, sqlstore.MigrateOptions{UniqueUserName: cfg.Database.UniqueUserName}); err != nil {
		return err
	}

	health := map[string]handler.Pinger{
		"database": handler.PingerFunc(func(ctx context.Context) error { return sqlstore.Ping(ctx, db) }),
	}

	// --- Optional catalog cache ---
	var cache ports.ProductCache
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer closeRedis(rdb, log)

		cache = redis.NewProductCache(rdb, cfg.Redis.CacheTTL, metrics.CatalogCacheLookupsTotal)
		health["redis"] = handler.PingerFunc(func(ctx context.Context) error { return redis.Ping(ctx, rdb) })
		log.Info().Str("addr", cfg.Redis.Addr).Msg("catalog cache enabled")
	}

	// --- Services ---
	sessions := sqlstore.NewSessionProvider(db)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTCodec(cfg.Auth.JWTSecret)
	catalog := service.NewCatalogService(sessions, cache, logger.Component("catalog"))

	if cfg.Database.SeedProducts {
		if _, err := catalog.Seed(ctx, service.SampleProducts()); err != nil {
			return err
		}
	}

	e := api.NewRouter(api.Deps{
		Accounts:     service.NewAccountService(sessions, hasher, tokens, cfg.Auth.AccessTokenTTL, logger.Component("accounts")),
		Users:        service.NewUserService(sessions, hasher, logger.Component("users")),
		Catalog:      catalog,
		Access:       service.NewAccessChain(sessions, tokens),
		Health:       health,
		Log:          logger.Component("http"),
		AllowOrigins: cfg.HTTP.AllowOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("closing redis client")
	}
}
