package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/smart-erp/identity-service/internal/api"
	"github.com/smart-erp/identity-service/internal/core/service"
	"github.com/smart-erp/identity-service/internal/core/token"
	mongodb "github.com/smart-erp/identity-service/internal/infrastructure/db/mongo"
	redisdb "github.com/smart-erp/identity-service/internal/infrastructure/db/redis"
	"github.com/smart-erp/identity-service/internal/pkg/config"
	"github.com/smart-erp/identity-service/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "identity",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Token configuration (fatal when the signing key is absent) ---
	tokenCfg := token.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL(),
	}
	issuer, err := token.NewIssuer(tokenCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("token issuer configuration invalid")
	}
	validator, err := token.NewValidator(tokenCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("token validator configuration invalid")
	}

	// --- Credential store ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Cache ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Services ---
	roleRepo := mongodb.NewRoleRepository(db)
	userRepo := mongodb.NewUserRepository(db, roleRepo)
	userCache := redisdb.NewUserCache(rdb, log)

	accounts := service.NewAccountService(userRepo, roleRepo, userCache, issuer, log)
	roles := service.NewRoleService(roleRepo, userRepo, userCache, log)

	if err := roles.EnsureDefaultRoles(ctx); err != nil {
		log.Fatal().Err(err).Msg("default role seeding failed")
	}

	e := api.NewRouter(api.Dependencies{
		Accounts:  accounts,
		Roles:     roles,
		Validator: validator,
		Mongo:     db,
		Redis:     rdb,
		Logger:    log,
	})

	// --- Serve with graceful shutdown ---
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting identity service")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
