package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/learnhub/learnhub-api/api/swagger"
	"github.com/learnhub/learnhub-api/internal/billing"
	"github.com/learnhub/learnhub-api/internal/catalog"
	"github.com/learnhub/learnhub-api/internal/gateway"
	"github.com/learnhub/learnhub-api/internal/handler"
	"github.com/learnhub/learnhub-api/internal/middleware"
	"github.com/learnhub/learnhub-api/internal/repository"
	"github.com/learnhub/learnhub-api/internal/service"
	"github.com/learnhub/learnhub-api/internal/session"
	"github.com/learnhub/learnhub-api/pkg/cache"
	"github.com/learnhub/learnhub-api/pkg/config"
	"github.com/learnhub/learnhub-api/pkg/database"
	"github.com/learnhub/learnhub-api/pkg/logger"
	corsmiddleware "github.com/learnhub/learnhub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/learnhub/learnhub-api/pkg/middleware/requestid"
)

// @title LearnHub API
// @version 0.1.0
// @description Course catalog, enrollment and checkout API
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	validate := validator.New()
	sessions := session.NewBroker()
	store := catalog.Default()
	products := billing.DefaultRegistry()

	userRepo := repository.NewUserRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	communityRepo := repository.NewCommunityRepository(db)

	var paymentGateway gateway.PaymentGateway
	if cfg.Checkout.GatewayURL != "" {
		paymentGateway = gateway.NewHTTPGateway(cfg.Checkout.GatewayURL, cfg.Checkout.RequestTimeout, logr)
	} else {
		logr.Info("no checkout gateway configured, using offline stand-in")
		paymentGateway = gateway.NewOfflineGateway(cfg.Checkout.SiteURL)
	}

	authSvc := service.NewAuthService(userRepo, sessions, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	catalogSvc := service.NewCatalogService(store, cacheSvc, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, store, sessions, logr)
	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo, products, sessions, logr)
	checkoutSvc := service.NewCheckoutService(store, products, paymentGateway, metricsSvc, logr, service.CheckoutConfig{
		SiteURL: cfg.Checkout.SiteURL,
	})
	communitySvc := service.NewCommunityService(store, communityRepo, cacheSvc, logr)
	orderSvc := service.NewOrderService(orderRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionSvc)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc)
	communityHandler := handler.NewCommunityHandler(communitySvc)
	orderHandler := handler.NewOrderHandler(orderSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
			auth.POST("/signout", middleware.JWT(authSvc), authHandler.SignOut)
			auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)
			auth.PUT("/me/learning-level", middleware.JWT(authSvc), authHandler.UpdateLearningLevel)
		}

		api.GET("/courses", catalogHandler.ListCourses)
		api.GET("/courses/:id", catalogHandler.GetCourse)
		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/learning-paths", catalogHandler.ListLearningPaths)
		api.GET("/learning-paths/:id", catalogHandler.GetLearningPath)
		api.GET("/instructors", catalogHandler.ListInstructors)

		enrollments := api.Group("/enrollments", middleware.JWT(authSvc))
		{
			enrollments.GET("", enrollmentHandler.List)
			enrollments.POST("", enrollmentHandler.Enroll)
			enrollments.GET("/stats", enrollmentHandler.Stats)
			enrollments.PUT("/:courseId/progress", enrollmentHandler.UpdateProgress)
		}

		api.GET("/subscription", middleware.JWT(authSvc), subscriptionHandler.Get)
		api.POST("/checkout", middleware.JWT(authSvc), checkoutHandler.Create)
		api.GET("/orders/latest", middleware.JWT(authSvc), orderHandler.Latest)

		community := api.Group("/community")
		{
			community.GET("/posts", middleware.OptionalJWT(authSvc), communityHandler.ListPosts)
			community.POST("/posts/:id/like", middleware.JWT(authSvc), communityHandler.ToggleLike)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
