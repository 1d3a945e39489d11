package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storedemo/store-api/internal/api/handler"
	"github.com/storedemo/store-api/internal/api/middleware"
	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
	"github.com/storedemo/store-api/internal/core/service"
	"github.com/storedemo/store-api/internal/infrastructure/config"
	mongostore "github.com/storedemo/store-api/internal/infrastructure/db/mongo"
	redisstore "github.com/storedemo/store-api/internal/infrastructure/db/redis"
	"github.com/storedemo/store-api/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// tokens must be a fully constructed codec; key validation happens before
// the router exists.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	tokens ports.TokenCodec,
	dispatcher *queue.ActivityDispatcher,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	customerRepo := mongostore.NewCustomerRepository(db)
	categoryRepo := mongostore.NewCategoryRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	cartRepo := mongostore.NewCartRepository(db)

	hasher := service.BcryptHasher{}
	throttle := redisstore.NewLoginThrottle(rdb, cfg.LoginMaxAttempts,
		time.Duration(cfg.LoginWindowMinutes)*time.Minute)

	authService := service.NewAuthService(customerRepo, tokens, hasher, throttle, dispatcher, log)
	customerService := service.NewCustomerService(customerRepo, hasher, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, dispatcher, log)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// Every request gets a chance to carry a principal; route groups below
	// decide whether one is required.
	e.Use(middleware.Authenticate(authService))

	// --- Auth ---
	e.POST("/api/auth/customers/login", authHandler.Login)
	e.GET("/api/auth", authHandler.Current)

	// --- Customers (admin only; admin login is not implemented, so these
	// deny until it is) ---
	customers := e.Group("/api/customers", middleware.RequireRole(domain.RoleAdmin))
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.POST("", customerHandler.Register)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Disable)
	customers.PATCH("/:id/enable", customerHandler.Enable)

	// --- Categories (registered before /api/products/:id so the literal
	// segment wins) ---
	categories := e.Group("/api/products/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	// --- Products ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Cart (customer only) ---
	cart := e.Group("/api/cart", middleware.RequireRole(domain.RoleCustomer))
	cart.GET("", cartHandler.Get)
	cart.POST("/:productId/:quantity", cartHandler.Add)
	cart.DELETE("/:productId", cartHandler.Remove)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	return e
}
