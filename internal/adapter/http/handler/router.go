package handler

import (
	"card-exchange/internal/adapter/http/middleware"
	redisStore "card-exchange/internal/adapter/storage/redis"
	"card-exchange/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	ListingSvc     ports.ListingService
	VaultSvc       ports.VaultService
	AdminSvc       ports.AdminService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	listingHandler := NewListingHandler(deps.ListingSvc)
	vaultHandler := NewVaultHandler(deps.VaultSvc)
	adminHandler := NewAdminHandler(deps.AdminSvc)

	listings := v1.Group("/listings", jwtAuth)
	{
		listings.POST("", rl("listings"), listingHandler.Create)
		listings.GET("/:id", rl("queries"), listingHandler.Get)
		listings.POST("/:id/buy", rl("listings"), listingHandler.Buy)
		listings.POST("/:id/cancel", rl("listings"), listingHandler.Cancel)
		listings.POST("/:id/bids", rl("bids"), listingHandler.PlaceBid)
		listings.POST("/:id/end", rl("listings"), listingHandler.EndAuction)
		listings.GET("/:id/bids/:seq", rl("queries"), listingHandler.GetBid)
	}

	vault := v1.Group("/vault", jwtAuth)
	{
		vault.POST("/stake", rl("vault"), vaultHandler.Stake)
		vault.POST("/unstake", rl("vault"), vaultHandler.Unstake)
		vault.POST("/claim", rl("vault"), vaultHandler.Claim)
		vault.GET("/yield", rl("queries"), vaultHandler.GetYield)
		vault.GET("/stakes/:cardId", rl("queries"), vaultHandler.GetStake)
	}

	// Admin authorization happens in the service layer (admin account check).
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/pause", adminHandler.Pause)
		admin.POST("/unpause", adminHandler.Unpause)
		admin.PUT("/fee", adminHandler.SetFee)
		admin.GET("/state", rl("queries"), adminHandler.GetState)
	}

	return r
}
