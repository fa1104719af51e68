package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"go-enterprise-ops/internal/handler"
	"go-enterprise-ops/internal/middleware"
	"go-enterprise-ops/internal/model"
	"go-enterprise-ops/internal/repository"
	"go-enterprise-ops/internal/service"
	"go-enterprise-ops/internal/ws"
	"go-enterprise-ops/pkg/database"
	"go-enterprise-ops/pkg/logger"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	zlog := logger.New()
	defer zlog.Sync()

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Employee{}, &model.Product{}, &model.Stock{}, &model.Order{}, &model.OrderDetails{})

	// 3. Token blacklist with periodic sweep
	blacklist := service.NewTokenBlacklist(5 * time.Minute)

	// 4. Stock-update broadcast hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	employeeRepo := repository.NewEmployeeRepo(db)
	productRepo := repository.NewProductRepo(db)
	stockRepo := repository.NewStockRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	authService := service.NewAuthService(employeeRepo, blacklist, zlog)
	employeeService := service.NewEmployeeService(employeeRepo, zlog)
	stockService := service.NewStockService(stockRepo, productRepo, orderRepo, wsHub, zlog)
	productService := service.NewProductService(productRepo, stockService, zlog)
	orderService := service.NewOrderService(orderRepo, employeeRepo, productRepo, zlog)

	// 6. Seed super admin account
	if err := employeeService.EnsureSuperAdmin(); err != nil {
		zlog.Warnw("failed to seed super admin", "error", err)
	}

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	productHandler := handler.NewProductHandler(productService)
	stockHandler := handler.NewStockHandler(stockService)
	orderHandler := handler.NewOrderHandler(orderService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Enterprise Ops v1.0",
		ErrorHandler: handler.ErrorHandler(zlog),
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(),
		AllowHeaders: "Content-Type, Authorization, X-Tenant-Id, X-Requested-With",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:          200,
		Expiration:   15 * time.Minute,
		LimitReached: handler.RateLimitReached(900),
	}))

	// 8. Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "connected"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			status = "disconnected"
		}
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Health check OK",
			"service":   "enterprise-ops",
			"db":        fiber.Map{"status": status},
			"timestamp": time.Now().UTC(),
		})
	})

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	signinLimiter := limiter.New(limiter.Config{
		Max:          5,
		Expiration:   15 * time.Minute,
		LimitReached: handler.RateLimitReached(900),
	})
	auth := api.Group("/auth")
	auth.Post("/signin", signinLimiter, authHandler.SignIn)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(blacklist))

	auth.Post("/signout", middleware.RequireAuth(blacklist), authHandler.SignOut)

	signupLimiter := limiter.New(limiter.Config{
		Max:          5,
		Expiration:   time.Hour,
		LimitReached: handler.RateLimitReached(3600),
	})
	protected.Post("/employees", signupLimiter, employeeHandler.Signup)
	protected.Get("/employees", employeeHandler.List)
	protected.Get("/employees/:employeeId", employeeHandler.GetProfile)
	protected.Put("/employees/:employeeId", employeeHandler.UpdateProfile)

	protected.Post("/products", productHandler.Create)
	protected.Get("/products", productHandler.List)
	protected.Get("/products/:productId", productHandler.GetByProductID)
	protected.Put("/products/:productId", productHandler.Update)

	protected.Post("/products/:productId/stock", stockHandler.Apply)
	protected.Get("/products/:productId/stock", stockHandler.GetByProduct)
	protected.Post("/stocks/batch", stockHandler.ApplyBatch)

	protected.Post("/orders", orderHandler.Create)
	protected.Get("/orders", orderHandler.List)
	protected.Get("/orders/:orderNumber", orderHandler.GetByOrderNumber)

	// WebSocket route for live stock updates
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatalw("server forced to shutdown", "error", err)
	}
	blacklist.Stop()
	zlog.Info("server exited")
}

func allowedOrigins() string {
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		return origins
	}
	return "*"
}
