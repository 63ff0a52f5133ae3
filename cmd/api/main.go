package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"card-exchange/config"
	httpHandler "card-exchange/internal/adapter/http/handler"
	"card-exchange/internal/adapter/ledger"
	"card-exchange/internal/adapter/registry"
	pgStorage "card-exchange/internal/adapter/storage/postgres"
	redisStorage "card-exchange/internal/adapter/storage/redis"
	"card-exchange/internal/core/ports"
	"card-exchange/internal/service"
	"card-exchange/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Card Exchange")

	ctx := context.Background()

	// Parse the platform's ledger principals up front; a bad account ID in
	// config must never reach a settlement path.
	treasuryID, err := cfg.Exchange.TreasuryAccountID()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid treasury account in config")
	}
	escrowID, err := cfg.Exchange.EscrowAccountID()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid escrow account in config")
	}
	adminID, err := cfg.Exchange.AdminAccountID()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid admin account in config")
	}
	poolID, err := cfg.Vault.PoolAccountID()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid yield pool account in config")
	}

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	listingRepo := pgStorage.NewListingRepo(pool)
	bidRepo := pgStorage.NewBidRepo(pool)
	stakeRepo := pgStorage.NewStakeRepo(pool)
	yieldRepo := pgStorage.NewYieldRepo(pool)
	stateRepo := pgStorage.NewStateRepo(pool)
	accountRepo := pgStorage.NewAccountRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize external clients and event stream
	ledgerClient := ledger.NewClient(cfg.Ledger, nil, log)
	registryClient := registry.NewClient(cfg.Registry, nil, log)
	eventPublisher := redisStorage.NewEventPublisher(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	clock := service.NewSystemClock()

	// Initialize business services
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc)
	listingSvc := service.NewListingService(
		listingRepo,
		bidRepo,
		stakeRepo,
		stateRepo,
		ledgerClient,
		registryClient,
		eventPublisher,
		transactor,
		clock,
		treasuryID,
		escrowID,
		log,
	)
	vaultSvc := service.NewVaultService(
		stakeRepo,
		yieldRepo,
		listingRepo,
		stateRepo,
		ledgerClient,
		registryClient,
		eventPublisher,
		transactor,
		clock,
		service.VaultConfig{
			PoolAccount:     poolID,
			LockPeriod:      cfg.Vault.LockPeriod,
			BaseYieldRate:   cfg.Vault.BaseYieldRate,
			TierMultipliers: cfg.Vault.TierMultipliers,
		},
		log,
	)
	adminSvc := service.NewAdminService(stateRepo, eventPublisher, transactor, clock, adminID, log)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		ListingSvc:     listingSvc,
		VaultSvc:       vaultSvc,
		AdminSvc:       adminSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
