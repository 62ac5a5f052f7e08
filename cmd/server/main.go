package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/userhub/account-service/internal/api"
	"github.com/userhub/account-service/internal/core/ports"
	"github.com/userhub/account-service/internal/core/service"
	"github.com/userhub/account-service/internal/infrastructure/config"
	"github.com/userhub/account-service/internal/infrastructure/db/mongo"
	"github.com/userhub/account-service/internal/infrastructure/db/redis"
	"github.com/userhub/account-service/internal/infrastructure/mailer"
	"github.com/userhub/account-service/internal/infrastructure/queue"
	"github.com/userhub/account-service/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	repo := mongo.NewAccountRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Collaborators ---
	var mail ports.Mailer
	if cfg.Mail.APIKey != "" {
		mail = mailer.NewMailerSend(cfg.Mail.APIKey)
	} else {
		log.Warn().Msg("MAILERSEND_API_KEY not set, mail is logged instead of delivered")
		mail = mailer.NewDevMailer(log)
	}

	limiter := redis.NewOTPLimiter(rdb, cfg.OTPMaxTries, cfg.OTPTryWindow)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	auditor := queue.NewDispatcher(0, repo, log)
	auditor.Start(ctx)

	accounts := service.NewAccountService(repo, mail, tokens, limiter, auditor, service.Options{
		EmailFrom: cfg.Mail.From,
		OTPDigits: cfg.OTPDigits,
	}, log)

	// --- HTTP ---
	e := api.NewRouter(accounts, tokens, db, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("account service started")

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	cancel()
	log.Info().Msg("account service stopped")
}
