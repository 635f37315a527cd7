package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	velvetHTTP "velvet/internal/controller/http"
	"velvet/internal/repo/geo"
	"velvet/internal/repo/persistent"
	"velvet/internal/repo/token"
	"velvet/internal/usecase"
	"velvet/pkg/config"
	"velvet/pkg/jwt"
	"velvet/pkg/logger"
	"velvet/pkg/middleware"
	"velvet/pkg/queue"
	"velvet/pkg/realtime"
	"velvet/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "velvet/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	hub := realtime.NewHub(log)
	go hub.Run()

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	profileRepo := persistent.NewProfileRepository(db)
	postRepo := persistent.NewPostRepository(db)
	edgeRepo := persistent.NewEdgeRepository(db)
	txRepo := persistent.NewTransactionRepository(db)
	verificationRepo := persistent.NewVerificationRepository(db)
	messageRepo := persistent.NewMessageRepository(db)
	geoIndex := geo.NewRedisIndex(redisClient)
	resetStore := token.NewRedisResetStore(redisClient)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, profileRepo, resetStore, jwtService, queueClient, log)
	accessUseCase := usecase.NewAccessUseCase(profileRepo, postRepo, edgeRepo, log)
	registryUseCase := usecase.NewRegistryUseCase(profileRepo, postRepo, edgeRepo, txRepo, queueClient, log)
	walletUseCase := usecase.NewWalletUseCase(profileRepo, txRepo, cfg.PayoutChannelHandle, cfg.DepositMinCents, log)
	discoveryUseCase := usecase.NewDiscoveryUseCase(profileRepo, edgeRepo, geoIndex, log)
	verificationUseCase := usecase.NewVerificationUseCase(verificationRepo, profileRepo, s3Client, queueClient, log)
	messagingUseCase := usecase.NewMessagingUseCase(messageRepo, profileRepo, edgeRepo, accessUseCase, s3Client, hub, log)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, userRepo, edgeRepo, geoIndex, s3Client, log)
	postUseCase := usecase.NewPostUseCase(postRepo, profileRepo, accessUseCase, s3Client, log)
	studioUseCase := usecase.NewStudioUseCase(profileRepo, postRepo, edgeRepo, txRepo, messageRepo, log)
	adminUseCase := usecase.NewAdminUseCase(profileRepo, txRepo, verificationRepo, log)

	// Initialize HTTP handlers
	authHandler := velvetHTTP.NewAuthHandler(authUseCase, log)
	profileHandler := velvetHTTP.NewProfileHandler(profileUseCase, discoveryUseCase, log)
	postHandler := velvetHTTP.NewPostHandler(postUseCase, accessUseCase, log)
	registryHandler := velvetHTTP.NewRegistryHandler(registryUseCase, log)
	walletHandler := velvetHTTP.NewWalletHandler(walletUseCase, log)
	discoveryHandler := velvetHTTP.NewDiscoveryHandler(discoveryUseCase, cfg.LocationTimeout, log)
	verificationHandler := velvetHTTP.NewVerificationHandler(verificationUseCase, log)
	messageHandler := velvetHTTP.NewMessageHandler(messagingUseCase, log)
	studioHandler := velvetHTTP.NewStudioHandler(studioUseCase, log)
	adminHandler := velvetHTTP.NewAdminHandler(adminUseCase, log)
	wsHandler := velvetHTTP.NewWSHandler(hub, jwtService, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Realtime change feed
	r.GET("/ws", wsHandler.Serve)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, middleware.RateLimit{
		Requests: cfg.RateLimitRequests,
		Window:   cfg.RateLimitWindow,
	}))

	// Public routes
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)
		api.POST("/auth/age", authHandler.AcknowledgeAge)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))

	// Account routes, reachable before the age acknowledgement
	{
		authed.GET("/profiles/me", profileHandler.GetMe)
		authed.PATCH("/profiles/me", profileHandler.UpdateProfile)
		authed.DELETE("/profiles/me", profileHandler.DeleteAccount)
		authed.POST("/profiles/me/avatar", profileHandler.UploadAvatar)
		authed.POST("/profiles/me/banner", profileHandler.UploadBanner)
		authed.PUT("/profiles/me/ghost-mode", profileHandler.SetGhostMode)
		authed.POST("/profiles/:user_id/block", profileHandler.Block)
		authed.DELETE("/profiles/:user_id/block", profileHandler.Unblock)

		authed.GET("/wallet", walletHandler.GetWallet)
		authed.POST("/wallet/deposit", walletHandler.Deposit)
		authed.POST("/wallet/cashout", walletHandler.CashOut)

		authed.POST("/verification", verificationHandler.Submit)

		authed.GET("/admin/overview", adminHandler.GetOverview)
		authed.POST("/admin/transactions/:transaction_id/settle", adminHandler.Settle)
		authed.GET("/admin/wallets/:user_id/reconcile", adminHandler.Reconcile)
		authed.GET("/admin/verification", verificationHandler.ListPending)
		authed.POST("/admin/verification/:request_id/approve", verificationHandler.Approve)
		authed.POST("/admin/verification/:request_id/reject", verificationHandler.Reject)
	}

	// Content routes sit behind the age gate
	content := authed.Group("")
	content.Use(middleware.AgeGateMiddleware())
	{
		content.GET("/profiles/:user_id", profileHandler.GetProfile)
		content.GET("/profiles/by-username/:username", profileHandler.GetByUsername)

		content.POST("/posts", postHandler.CreatePost)
		content.GET("/posts/feed", postHandler.GetFeed)
		content.GET("/posts/user/:user_id", postHandler.GetUserPosts)
		content.GET("/posts/:post_id/access", postHandler.GetAccess)
		content.DELETE("/posts/:post_id", postHandler.DeletePost)
		content.POST("/posts/:post_id/comments", postHandler.AddComment)
		content.GET("/posts/:post_id/comments", postHandler.GetComments)

		content.GET("/subscriptions", registryHandler.ListSubscriptions)
		content.POST("/subscriptions/:creator_id", registryHandler.Subscribe)
		content.DELETE("/subscriptions/:creator_id", registryHandler.Unsubscribe)
		content.GET("/subscriptions/:creator_id", registryHandler.GetSubscription)
		content.GET("/unlocks", registryHandler.ListUnlocks)
		content.POST("/unlocks/:post_id", registryHandler.UnlockPost)

		content.POST("/discovery", discoveryHandler.Discover)
		content.PUT("/discovery/location", discoveryHandler.UpdateLocation)

		content.GET("/messages", messageHandler.GetConversations)
		content.GET("/messages/:user_id", messageHandler.GetThread)
		content.POST("/messages/:user_id", messageHandler.Send)
		content.POST("/messages/:user_id/media", messageHandler.SendWithMedia)

		content.GET("/studio/stats", studioHandler.GetStats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Velvet starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Velvet exited")
}
