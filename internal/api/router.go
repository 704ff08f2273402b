package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/goodmart/ecommerce-api/docs"
	"github.com/goodmart/ecommerce-api/internal/api/handler"
	"github.com/goodmart/ecommerce-api/internal/api/middleware"
	"github.com/goodmart/ecommerce-api/internal/core/service"
	mongodb "github.com/goodmart/ecommerce-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/goodmart/ecommerce-api/internal/infrastructure/db/redis"
	"github.com/goodmart/ecommerce-api/internal/infrastructure/queue"
	"github.com/goodmart/ecommerce-api/internal/pkg/config"
	"github.com/goodmart/ecommerce-api/internal/pkg/token"
)

// NewRouter builds the Echo instance with all routes registered and returns it
// together with the rating dispatcher, which the caller must Start.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret)

	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)

	throttle := redisinfra.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window)

	ratingService := service.NewRatingService(reviewRepo, productRepo, log)
	dispatcher := queue.NewDispatcher(0, ratingService, log)

	authService := service.NewAuthService(userRepo, codec, throttle, cfg.TokenTTL, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, log)
	reviewService := service.NewReviewService(reviewRepo, productRepo, dispatcher, log)

	authHandler := handler.NewAuthHandler(authService)
	permissionHandler := handler.NewPermissionHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	authenticated := middleware.Auth(codec)
	adminOnly := middleware.RequireAdmin()
	supplierOrAdmin := middleware.RequireSupplierOrAdmin()
	customerOnly := middleware.RequireCustomer()

	// --- Auth routes ---
	e.POST("/auth", authHandler.Register)
	e.POST("/auth/token", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authenticated)

	// --- Permission routes (admin only) ---
	perm := e.Group("/permission", authenticated, adminOnly)
	perm.PATCH("", permissionHandler.SupplierPermission)
	perm.DELETE("/delete", permissionHandler.DeleteUser)

	// --- Category routes ---
	e.GET("/categories", categoryHandler.List)
	e.POST("/categories", categoryHandler.Create, authenticated, adminOnly)
	e.PUT("/categories/:category_slug", categoryHandler.Update, authenticated, adminOnly)
	e.DELETE("/categories/:category_slug", categoryHandler.Delete, authenticated, adminOnly)

	// --- Product routes ---
	e.GET("/products", productHandler.List)
	e.GET("/products/detail/:product_slug", productHandler.Detail)
	e.GET("/products/:category_slug", productHandler.ByCategory)
	e.POST("/products", productHandler.Create, authenticated, supplierOrAdmin)
	e.PUT("/products/:product_slug", productHandler.Update, authenticated, supplierOrAdmin)
	e.DELETE("/products/:product_slug", productHandler.Delete, authenticated, supplierOrAdmin)

	// --- Review routes ---
	e.GET("/reviews", reviewHandler.List)
	e.GET("/reviews/:product_id", reviewHandler.ByProduct)
	e.POST("/reviews", reviewHandler.Add, authenticated, customerOnly)
	e.DELETE("/reviews/:review_id", reviewHandler.Delete, authenticated, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, dispatcher
}
